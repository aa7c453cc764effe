package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wutdasheep/armjit/arm"
)

func TestLeafValues(t *testing.T) {
	c := NewConst(42)

	assert.Equal(t, OpConstU32, c.Op())
	assert.Equal(t, U32, c.Type())
	assert.Equal(t, 0, c.NumArgs())
	assert.Equal(t, FlagsNone, c.ReadFlags())
	assert.Equal(t, FlagsNone, c.WriteFlags())
	assert.False(t, c.HasUses())

	g := NewGetGPR(arm.R3)

	assert.Equal(t, OpGetGPR, g.Op())
	assert.Equal(t, U32, g.Type())
	assert.Equal(t, arm.R3, g.Reg)

	assert.Panics(t, func() { c.Arg(0) })
}

func TestUseEdges(t *testing.T) {
	a := NewConst(1)
	b := NewConst(2)

	add := NewInst(OpAdd, a, b)

	require.Equal(t, 2, add.NumArgs())
	assert.Same(t, Value(a), add.Arg(0))
	assert.Same(t, Value(b), add.Arg(1))

	require.Len(t, a.Uses(), 1)
	assert.Same(t, Value(add), a.Uses()[0])
	require.Len(t, b.Uses(), 1)

	s := NewSetGPR(arm.R1, add)

	require.Len(t, add.Uses(), 1)
	assert.Same(t, Value(s), add.Uses()[0])
	assert.Equal(t, Void, s.Type())
}

func TestSetArgRewires(t *testing.T) {
	a := NewConst(1)
	b := NewConst(2)
	c := NewConst(3)

	add := NewInst(OpAdd, a, b)
	add.SetArg(1, c)

	assert.False(t, b.HasUses())
	require.Len(t, c.Uses(), 1)
	assert.Same(t, Value(add), c.Uses()[0])
	assert.Same(t, Value(c), add.Arg(1))

	assert.Panics(t, func() { add.Arg(2) })
	assert.Panics(t, func() { add.SetArg(2, c) })
}

func TestDuplicateOperands(t *testing.T) {
	a := NewConst(1)
	add := NewInst(OpAdd, a, a)

	// One use edge per operand position.
	assert.Len(t, a.Uses(), 2)

	b := NewConst(2)
	ReplaceUses(a, b)

	assert.False(t, a.HasUses())
	assert.Len(t, b.Uses(), 2)
	assert.Same(t, Value(b), add.Arg(0))
	assert.Same(t, Value(b), add.Arg(1))
}

func TestReplaceUses(t *testing.T) {
	a := NewConst(1)
	b := NewConst(2)
	r := NewConst(3)

	add := NewInst(OpAdd, a, b)
	s := NewSetGPR(arm.R0, a)

	ReplaceUses(a, r)

	assert.False(t, a.HasUses())
	assert.Len(t, r.Uses(), 2)
	assert.Same(t, Value(r), add.Arg(0))
	assert.Same(t, Value(r), s.Arg(0))

	// Replacing a node with itself or a detached node is a no-op.
	ReplaceUses(r, r)
	assert.Len(t, r.Uses(), 2)

	ReplaceUses(a, b)
	assert.False(t, a.HasUses())
}

func TestInstContracts(t *testing.T) {
	a := NewConst(1)

	assert.Panics(t, func() { NewInst(OpAdd, a) })
	assert.Panics(t, func() { NewInst(OpNot) })

	void := NewInst(OpClearExclusive)
	assert.Panics(t, func() { NewInst(OpRead32, void) })
}

func TestWriteFlagsNarrowing(t *testing.T) {
	a := NewConst(1)
	b := NewConst(2)

	add := NewInst(OpAdd, a, b)
	assert.Equal(t, FlagsNZCV, add.WriteFlags())

	add.SetWriteFlags(FlagsNone)
	assert.Equal(t, FlagsNone, add.WriteFlags())

	// Narrowing is monotonic: the default cannot be re-widened past
	// the opcode contract, and a widening attempt is a bug.
	not := NewInst(OpNot, a)
	assert.Panics(t, func() { not.SetWriteFlags(FlagC) })
}

func TestOpInfoConsistency(t *testing.T) {
	for op := Op(0); op < numOps; op++ {
		info := Info(op)

		assert.NotEmpty(t, op.String(), "op %d", op)

		for _, at := range info.Args {
			assert.Equal(t, U32, at, "op %v has a non-u32 operand", op)
		}
	}

	assert.Equal(t, U32, Info(OpConstU32).Ret)
	assert.Empty(t, Info(OpConstU32).Args)
	assert.Equal(t, Void, Info(OpSetGPR).Ret)
	assert.Equal(t, FlagsNZCV, Info(OpAdd).WriteFlags)
	assert.Equal(t, FlagsNZC, Info(OpAnd).WriteFlags)
	assert.Equal(t, FlagC, Info(OpLSL).WriteFlags)
	assert.Equal(t, FlagC, Info(OpAddWithCarry).ReadFlags)
	assert.Equal(t, FlagC, Info(OpRRX).ReadFlags)
	assert.Equal(t, FlagsNone, Info(OpRead32).WriteFlags)
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(Location{PC: 0x1000, Cond: arm.AL})

	v0 := b.GetGPR(arm.R2)
	v1 := b.ConstU32(5)
	v2 := b.Inst(OpAdd, v0, v1)
	b.SetGPR(arm.R1, v2)

	require.Len(t, b.Block.Code, 4)
	assert.False(t, b.Terminated())

	b.SetTerm(LinkBlock{Next: Location{PC: 0x1004, Cond: arm.AL}})
	assert.True(t, b.Terminated())

	assert.Panics(t, func() { b.SetTerm(ReturnToDispatch{}) })
}
