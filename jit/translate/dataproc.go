package translate

import (
	"github.com/wutdasheep/armjit/arm"
	"github.com/wutdasheep/armjit/jit/decode"
	"github.com/wutdasheep/armjit/jit/ir"
)

// DataProcImm translates the data-processing immediate family.
func (t *Translator) DataProcImm(cond arm.Cond, op decode.DataOp, s bool, n, d arm.Reg, rotate int, imm8 uint8) {
	if !dataSupported(op, s) {
		t.fallback()
		return
	}

	if !t.condPassed(cond) {
		return
	}

	var rn ir.Value
	if dataUsesRn(op) {
		rn = t.getReg(n)
	}

	op2 := t.ir.ConstU32(arm.ExpandImm(imm8, rotate))
	t.dataProc(op, s, rn, d, op2)
}

// DataProcReg translates the shift-by-immediate register family.
func (t *Translator) DataProcReg(cond arm.Cond, op decode.DataOp, s bool, n, d arm.Reg, imm5 uint8, shift arm.ShiftType, m arm.Reg) {
	if !dataSupported(op, s) {
		t.fallback()
		return
	}

	if !t.condPassed(cond) {
		return
	}

	var rn ir.Value
	if dataUsesRn(op) {
		rn = t.getReg(n)
	}

	op2 := t.emitImmShift(shift, imm5, t.getReg(m))
	t.dataProc(op, s, rn, d, op2)
}

// DataProcRSR is the register-shifted-register family. The shift
// amount lives in the low byte of a register; the micro-op shifts are
// not defined for amounts past the word size, so this form is left to
// the interpreter.
func (t *Translator) DataProcRSR(cond arm.Cond, op decode.DataOp, s bool, n, d arm.Reg, rs arm.Reg, shift arm.ShiftType, m arm.Reg) {
	t.fallback()
}

// dataSupported reports whether the (op, S) combination is
// expressible in the micro-op set. There is no Or micro-op, and
// nothing derives NZ from a moved value, so ORR and flag-setting
// MOV/MVN fall back.
func dataSupported(op decode.DataOp, s bool) bool {
	switch op {
	case decode.OpORR:
		return false
	case decode.OpMOV, decode.OpMVN:
		return !s
	}

	return true
}

// dataUsesRn reports whether the opcode reads the first operand
// register.
func dataUsesRn(op decode.DataOp) bool {
	switch op {
	case decode.OpMOV, decode.OpMVN:
		return false
	}

	return true
}

// dataProc emits the ALU body shared by the immediate and register
// forms: compute, narrow flags, store (or write PC) and advance.
func (t *Translator) dataProc(op decode.DataOp, s bool, rn ir.Value, d arm.Reg, op2 ir.Value) {
	var result ir.Value
	var flags *ir.Inst

	inst := func(mop ir.Op, a, b ir.Value) ir.Value {
		flags = t.ir.Inst(mop, a, b)
		return flags
	}
	not := func(v ir.Value) ir.Value {
		return t.ir.Inst(ir.OpNot, v)
	}

	switch op {
	case decode.OpAND, decode.OpTST:
		result = inst(ir.OpAnd, rn, op2)
	case decode.OpEOR, decode.OpTEQ:
		result = inst(ir.OpEor, rn, op2)
	case decode.OpSUB, decode.OpCMP:
		result = inst(ir.OpSub, rn, op2)
	case decode.OpRSB:
		result = inst(ir.OpSub, op2, rn)
	case decode.OpADD, decode.OpCMN:
		result = inst(ir.OpAdd, rn, op2)
	case decode.OpADC:
		result = inst(ir.OpAddWithCarry, rn, op2)
	case decode.OpSBC:
		result = inst(ir.OpAddWithCarry, rn, not(op2))
	case decode.OpRSC:
		result = inst(ir.OpAddWithCarry, not(rn), op2)
	case decode.OpMOV:
		result = op2
	case decode.OpMVN:
		result = not(op2)
	case decode.OpBIC:
		result = inst(ir.OpAnd, rn, not(op2))
	default:
		t.fallback()
		return
	}

	if flags != nil && !s {
		flags.SetWriteFlags(ir.FlagsNone)
	}

	switch op {
	case decode.OpTST, decode.OpTEQ, decode.OpCMP, decode.OpCMN:
		// Compare and test write flags only.
	default:
		if d == arm.PC {
			if s {
				// Flag-setting PC write is the exception-return
				// form; not handled here.
				t.fallback()
				return
			}

			t.aluWritePC(result)
			return
		}

		t.setReg(d, result)
	}

	t.advance()
}

// emitImmShift applies the barrel shifter with an immediate amount,
// following the DecodeImmShift rules: a zero immediate means no shift
// for LSL, a 32-bit shift for LSR/ASR and RRX for ROR. Shifter nodes
// publish no flags; the ALU op owns the flag write.
func (t *Translator) emitImmShift(shift arm.ShiftType, imm5 uint8, v ir.Value) ir.Value {
	narrowed := func(op ir.Op, amount uint32) ir.Value {
		in := t.ir.Inst(op, v, t.ir.ConstU32(amount))
		in.SetWriteFlags(ir.FlagsNone)

		return in
	}

	switch {
	case shift == arm.LSL && imm5 == 0:
		return v
	case shift == arm.LSL:
		return narrowed(ir.OpLSL, uint32(imm5))
	case shift == arm.LSR && imm5 == 0:
		return narrowed(ir.OpLSR, 32)
	case shift == arm.LSR:
		return narrowed(ir.OpLSR, uint32(imm5))
	case shift == arm.ASR && imm5 == 0:
		return narrowed(ir.OpASR, 32)
	case shift == arm.ASR:
		return narrowed(ir.OpASR, uint32(imm5))
	case shift == arm.ROR && imm5 == 0:
		return t.ir.Inst(ir.OpRRX, v)
	default:
		return narrowed(ir.OpROR, uint32(imm5))
	}
}

// CLZ translates the count-leading-zeros instruction.
func (t *Translator) CLZ(cond arm.Cond, d, m arm.Reg) {
	if d == arm.PC || m == arm.PC {
		t.fallback()
		return
	}

	if !t.condPassed(cond) {
		return
	}

	t.setReg(d, t.ir.Inst(ir.OpCountLeadingZeros, t.getReg(m)))
	t.advance()
}
