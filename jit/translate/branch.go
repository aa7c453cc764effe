package translate

import (
	"github.com/wutdasheep/armjit/arm"
	"github.com/wutdasheep/armjit/jit/ir"
)

// branchTarget computes the target of an immediate branch: imm24
// sign-extended, shifted left two, relative to the pipeline PC.
func (t *Translator) branchTarget(imm24 uint32) uint32 {
	return t.current.PC + 8 + arm.SignExtend(imm24, 24)<<2
}

// B translates an immediate branch into a block link.
func (t *Translator) B(cond arm.Cond, imm24 uint32) {
	if !t.condPassed(cond) {
		return
	}

	next := t.current
	next.PC = t.branchTarget(imm24)

	t.ir.SetTerm(ir.LinkBlock{Next: next})
	t.stop = true
}

// BL links to the target and pushes the return address onto the
// return stack buffer. PushRSBHint stores LR itself, so any cached
// r14 value is dropped: it is dead after the call.
func (t *Translator) BL(cond arm.Cond, imm24 uint32) {
	if !t.condPassed(cond) {
		return
	}

	lr := t.ir.ConstU32(t.current.PC + 4)
	t.ir.Inst(ir.OpPushRSBHint, lr)

	t.regs[arm.LR] = nil
	t.entry[arm.LR] = nil

	next := t.current
	next.PC = t.branchTarget(imm24)

	t.ir.SetTerm(ir.LinkBlock{Next: next})
	t.stop = true
}

// BX branches to a register with interworking. A branch through LR is
// a return, so the return stack hint is consulted.
func (t *Translator) BX(cond arm.Cond, m arm.Reg) {
	if !t.condPassed(cond) {
		return
	}

	var term ir.Term = ir.ReturnToDispatch{}
	if m == arm.LR {
		term = ir.PopRSBHint{}
	}

	t.loadWritePC(t.getReg(m), term)
}

// BLXImm switches instruction set on the way; left to the interpreter.
func (t *Translator) BLXImm(h bool, imm24 uint32) {
	t.fallback()
}

// BLXReg is left to the interpreter.
func (t *Translator) BLXReg(cond arm.Cond, m arm.Reg) {
	t.fallback()
}
