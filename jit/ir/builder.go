package ir

import "github.com/wutdasheep/armjit/arm"

// Builder emits micro-instructions into the Block it owns. Every
// constructor appends the new node to the body, so emission order is
// body order.
type Builder struct {
	Block *Block
}

func NewBuilder(loc Location) *Builder {
	return &Builder{
		Block: &Block{Location: loc},
	}
}

func (b *Builder) append(v Value) {
	b.Block.Code = append(b.Block.Code, v)
}

// ConstU32 emits a 32-bit immediate.
func (b *Builder) ConstU32(v uint32) *Const {
	n := NewConst(v)
	b.append(n)

	return n
}

// GetGPR emits a guest register read.
func (b *Builder) GetGPR(r arm.Reg) *GetGPR {
	n := NewGetGPR(r)
	b.append(n)

	return n
}

// SetGPR emits a guest register write.
func (b *Builder) SetGPR(r arm.Reg, v Value) *SetGPR {
	n := NewSetGPR(r, v)
	b.append(n)

	return n
}

// Inst emits a generic micro-instruction with the opcode's default
// write flags.
func (b *Builder) Inst(op Op, args ...Value) *Inst {
	n := NewInst(op, args...)
	b.append(n)

	return n
}

// SetTerm finalises the block. A block has exactly one terminal;
// setting a second is a contract violation.
func (b *Builder) SetTerm(t Term) {
	if b.Block.Term != nil {
		bug("block %v already terminated", b.Block.Location)
	}

	b.Block.Term = t
}

// Terminated reports whether the terminal has been set.
func (b *Builder) Terminated() bool { return b.Block.Term != nil }
