package translate

import (
	"github.com/wutdasheep/armjit/arm"
	"github.com/wutdasheep/armjit/jit/ir"
)

// LoadStoreImm translates word loads with an immediate offset. Stores
// and byte transfers have no micro-op yet and fall back.
func (t *Translator) LoadStoreImm(cond arm.Cond, load, byteSize, p, u, w bool, n, d arm.Reg, imm12 uint32) {
	if !load || byteSize {
		t.fallback()
		return
	}
	if !p && w {
		// LDRT: user-mode translated access.
		t.fallback()
		return
	}
	if n == arm.PC && (w || !p) {
		// Writeback to PC is UNPREDICTABLE.
		t.fallback()
		return
	}

	if !t.condPassed(cond) {
		return
	}

	rn := t.getReg(n)

	offsetOp := ir.OpSub
	if u {
		offsetOp = ir.OpAdd
	}

	addr := t.ir.Inst(offsetOp, rn, t.ir.ConstU32(imm12))
	addr.SetWriteFlags(ir.FlagsNone)

	base := ir.Value(addr)
	if !p {
		base = rn
	}

	data := t.ir.Inst(ir.OpRead32, base)

	if w || !p {
		t.setReg(n, addr)
	}

	if d == arm.PC {
		t.loadWritePC(data, ir.ReturnToDispatch{})
		return
	}

	t.setReg(d, data)
	t.advance()
}

// LoadStoreReg translates word loads with a shifted register offset.
func (t *Translator) LoadStoreReg(cond arm.Cond, load, byteSize, p, u, w bool, n, d arm.Reg, imm5 uint8, shift arm.ShiftType, m arm.Reg) {
	if !load || byteSize {
		t.fallback()
		return
	}
	if !p && w {
		t.fallback()
		return
	}
	if n == arm.PC && (w || !p) || m == arm.PC {
		t.fallback()
		return
	}

	if !t.condPassed(cond) {
		return
	}

	rn := t.getReg(n)
	offset := t.emitImmShift(shift, imm5, t.getReg(m))

	offsetOp := ir.OpSub
	if u {
		offsetOp = ir.OpAdd
	}

	addr := t.ir.Inst(offsetOp, rn, offset)
	addr.SetWriteFlags(ir.FlagsNone)

	base := ir.Value(addr)
	if !p {
		base = rn
	}

	data := t.ir.Inst(ir.OpRead32, base)

	if w || !p {
		t.setReg(n, addr)
	}

	if d == arm.PC {
		t.loadWritePC(data, ir.ReturnToDispatch{})
		return
	}

	t.setReg(d, data)
	t.advance()
}

// LoadStoreMulti translates LDM. Registers load from ascending
// addresses in index order; a PC in the list turns the block into an
// interworking return. STM has no store micro-op and falls back.
func (t *Translator) LoadStoreMulti(cond arm.Cond, load, p, u, w bool, n arm.Reg, list arm.RegList) {
	if !load {
		t.fallback()
		return
	}
	if n == arm.PC || list.Count() == 0 {
		t.fallback()
		return
	}
	if w && list.Has(n) {
		// Loading the base with writeback is UNPREDICTABLE.
		t.fallback()
		return
	}

	if !t.condPassed(cond) {
		return
	}

	rn := t.getReg(n)
	count := uint32(list.Count())

	// Lowest address touched, per the four addressing modes.
	var start ir.Value
	switch {
	case u && !p: // IA
		start = rn
	case u && p: // IB
		start = t.addOffset(rn, 4)
	case !u && !p: // DA
		start = t.addOffset(rn, -4*int32(count)+4)
	default: // DB
		start = t.addOffset(rn, -4*int32(count))
	}

	var pcData ir.Value

	addr := start
	remaining := list.Count()

	for r := arm.R0; r <= arm.PC; r++ {
		if !list.Has(r) {
			continue
		}

		data := t.ir.Inst(ir.OpRead32, addr)

		if r == arm.PC {
			pcData = data
		} else {
			t.setReg(r, data)
		}

		if remaining--; remaining > 0 {
			addr = t.addOffset(addr, 4)
		}
	}

	if w {
		delta := int32(4 * count)
		if !u {
			delta = -delta
		}

		t.setReg(n, t.addOffset(rn, delta))
	}

	if pcData != nil {
		term := ir.Term(ir.ReturnToDispatch{})
		if w && n == arm.SP {
			term = ir.PopRSBHint{}
		}

		t.loadWritePC(pcData, term)
		return
	}

	t.advance()
}

// addOffset emits base+delta with flag writes suppressed, folding a
// zero delta away.
func (t *Translator) addOffset(base ir.Value, delta int32) ir.Value {
	if delta == 0 {
		return base
	}

	op := ir.OpAdd
	if delta < 0 {
		op = ir.OpSub
		delta = -delta
	}

	in := t.ir.Inst(op, base, t.ir.ConstU32(uint32(delta)))
	in.SetWriteFlags(ir.FlagsNone)

	return in
}
