package translate

import (
	"github.com/wutdasheep/armjit/arm"
	"github.com/wutdasheep/armjit/jit/decode"
	"github.com/wutdasheep/armjit/jit/ir"
)

// HintInsn translates the NOP-space hints. NOP and YIELD have no
// observable effect in a block; the wait-and-event hints interact
// with the scheduler and fall back.
func (t *Translator) HintInsn(cond arm.Cond, h decode.Hint) {
	switch h {
	case decode.HintNOP, decode.HintYIELD:
	default:
		t.fallback()
		return
	}

	if !t.condPassed(cond) {
		return
	}

	t.advance()
}

// PLD is a memory hint with no architectural effect.
func (t *Translator) PLD() {
	t.advance()
}

// CLREX clears the exclusive access record.
func (t *Translator) CLREX() {
	t.ir.Inst(ir.OpClearExclusive)
	t.advance()
}

// LDREX establishes an exclusive monitor; left to the interpreter.
func (t *Translator) LDREX(cond arm.Cond, n, d arm.Reg) {
	t.fallback()
}

// STREX is left to the interpreter.
func (t *Translator) STREX(cond arm.Cond, n, d, m arm.Reg) {
	t.fallback()
}

// SWP is left to the interpreter.
func (t *Translator) SWP(cond arm.Cond, byteSize bool, n, d, m arm.Reg) {
	t.fallback()
}

// SVC raises a supervisor call; left to the interpreter.
func (t *Translator) SVC(cond arm.Cond, imm24 uint32) {
	t.fallback()
}

// BKPT is left to the interpreter.
func (t *Translator) BKPT(cond arm.Cond, imm12 uint32, imm4 uint8) {
	t.fallback()
}

// UDF is left to the interpreter, which raises the undefined
// instruction exception.
func (t *Translator) UDF() {
	t.fallback()
}
