package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wutdasheep/armjit/arm"
)

func TestAppendBlock(t *testing.T) {
	b := NewBuilder(Location{PC: 0x1000, Cond: arm.AL})

	v0 := b.GetGPR(arm.R2)
	v1 := b.ConstU32(5)
	v2 := b.Inst(OpAdd, v0, v1)
	v2.SetWriteFlags(FlagsNone)
	b.SetGPR(arm.R1, v2)
	b.SetTerm(LinkBlock{Next: Location{PC: 0x1004, Cond: arm.AL}})

	want := `block 00001000 arm al
	%0 = GetGPR r2
	%1 = ConstU32 0x5
	%2 = Add %0, %1
	SetGPR r1, %2
	-> LinkBlock 00001004 arm al
`

	assert.Equal(t, want, b.Block.String())
}

func TestAppendBlockFlags(t *testing.T) {
	b := NewBuilder(Location{PC: 0x2000, Cond: arm.EQ})

	v0 := b.GetGPR(arm.R0)
	v1 := b.ConstU32(1)
	b.Inst(OpSub, v0, v1)
	b.SetTerm(Interpret{Next: Location{PC: 0x2004, Cond: arm.EQ}})

	s := b.Block.String()

	assert.Contains(t, s, "Sub %0, %1 ; writes NZCV")
	assert.Contains(t, s, "-> Interpret 00002004 arm eq")
}

func TestAppendTermIf(t *testing.T) {
	f := If{
		Cond: arm.EQ,
		Then: LinkBlock{Next: Location{PC: 0x3000, Cond: arm.EQ}},
		Else: ReturnToDispatch{},
	}

	s := string(AppendTerm(nil, f))

	assert.Equal(t, "If eq (LinkBlock 00003000 arm eq) (ReturnToDispatch)", s)
}
