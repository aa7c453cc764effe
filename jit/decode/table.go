package decode

import "github.com/wutdasheep/armjit/arm"

// entry parses the bit pattern of an ARM ARM encoding diagram.
// '0' and '1' are fixed bits, letters are fields; the string covers
// bits 31 down to 0.
func entry(name, pattern string, visit func(v Visitor, w uint32)) Instruction {
	if len(pattern) != 32 {
		panic("decode: pattern must name all 32 bits: " + name)
	}

	var mask, value uint32

	for i := 0; i < 32; i++ {
		b := uint32(1) << (31 - i)

		switch pattern[i] {
		case '0':
			mask |= b
		case '1':
			mask |= b
			value |= b
		}
	}

	return Instruction{name: name, mask: mask, value: value, visit: visit}
}

// The table is ordered: unconditional-space (cond=1111) encodings and
// the AL-only UDF first, then the specific conditional encodings that live inside the
// data-processing miscellaneous space, then the generic families.
var table = []Instruction{
	// Unconditional space.
	entry("blx", "1111101hvvvvvvvvvvvvvvvvvvvvvvvv", func(v Visitor, w uint32) {
		v.BLXImm(bit(w, 24), bits(w, 23, 0))
	}),
	entry("pld", "11110101u101nnnn1111vvvvvvvvvvvv", func(v Visitor, w uint32) {
		v.PLD()
	}),
	entry("clrex", "11110101011111111111000000011111", func(v Visitor, w uint32) {
		v.CLREX()
	}),
	entry("udf", "111001111111vvvvvvvvvvvv1111kkkk", func(v Visitor, w uint32) {
		v.UDF()
	}),

	// Miscellaneous space.
	entry("bx", "cccc000100101111111111110001mmmm", func(v Visitor, w uint32) {
		v.BX(cond(w), reg(w, 0))
	}),
	entry("blx_reg", "cccc000100101111111111110011mmmm", func(v Visitor, w uint32) {
		v.BLXReg(cond(w), reg(w, 0))
	}),
	entry("clz", "cccc000101101111dddd11110001mmmm", func(v Visitor, w uint32) {
		v.CLZ(cond(w), reg(w, 12), reg(w, 0))
	}),
	entry("bkpt", "cccc00010010vvvvvvvvvvvv0111kkkk", func(v Visitor, w uint32) {
		v.BKPT(cond(w), bits(w, 19, 8), uint8(bits(w, 3, 0)))
	}),
	entry("hint", "cccc00110010000011110000hhhhhhhh", func(v Visitor, w uint32) {
		v.HintInsn(cond(w), Hint(bits(w, 7, 0)))
	}),

	// Synchronisation.
	entry("ldrex", "cccc00011001nnnndddd111110011111", func(v Visitor, w uint32) {
		v.LDREX(cond(w), reg(w, 16), reg(w, 12))
	}),
	entry("strex", "cccc00011000nnnndddd11111001mmmm", func(v Visitor, w uint32) {
		v.STREX(cond(w), reg(w, 16), reg(w, 12), reg(w, 0))
	}),
	entry("swp", "cccc00010b00nnnndddd00001001mmmm", func(v Visitor, w uint32) {
		v.SWP(cond(w), bit(w, 22), reg(w, 16), reg(w, 12), reg(w, 0))
	}),

	// Data processing, immediate. Compare opcodes without S are
	// MSR/hint space, so the family is split into three patterns.
	entry("dataproc_imm", "cccc0010ooosnnnnddddrrrrvvvvvvvv", dataProcImm),
	entry("dataproc_imm", "cccc00110oo1nnnnddddrrrrvvvvvvvv", dataProcImm),
	entry("dataproc_imm", "cccc00111oosnnnnddddrrrrvvvvvvvv", dataProcImm),

	// Data processing, register (shift by immediate).
	entry("dataproc_reg", "cccc0000ooosnnnnddddvvvvvtt0mmmm", dataProcReg),
	entry("dataproc_reg", "cccc00010oo1nnnnddddvvvvvtt0mmmm", dataProcReg),
	entry("dataproc_reg", "cccc00011oosnnnnddddvvvvvtt0mmmm", dataProcReg),

	// Data processing, register-shifted register.
	entry("dataproc_rsr", "cccc0000ooosnnnnddddqqqq0tt1mmmm", dataProcRSR),
	entry("dataproc_rsr", "cccc00010oo1nnnnddddqqqq0tt1mmmm", dataProcRSR),
	entry("dataproc_rsr", "cccc00011oosnnnnddddqqqq0tt1mmmm", dataProcRSR),

	// Branch.
	entry("b", "cccc1010vvvvvvvvvvvvvvvvvvvvvvvv", func(v Visitor, w uint32) {
		v.B(cond(w), bits(w, 23, 0))
	}),
	entry("bl", "cccc1011vvvvvvvvvvvvvvvvvvvvvvvv", func(v Visitor, w uint32) {
		v.BL(cond(w), bits(w, 23, 0))
	}),

	// Load/store.
	entry("loadstore_imm", "cccc010pubwlnnnnddddvvvvvvvvvvvv", func(v Visitor, w uint32) {
		v.LoadStoreImm(cond(w), bit(w, 20), bit(w, 22), bit(w, 24), bit(w, 23), bit(w, 21), reg(w, 16), reg(w, 12), bits(w, 11, 0))
	}),
	entry("loadstore_reg", "cccc011pubwlnnnnddddvvvvvtt0mmmm", func(v Visitor, w uint32) {
		v.LoadStoreReg(cond(w), bit(w, 20), bit(w, 22), bit(w, 24), bit(w, 23), bit(w, 21), reg(w, 16), reg(w, 12), uint8(bits(w, 11, 7)), shiftType(w, 5), reg(w, 0))
	}),
	entry("loadstore_multi", "cccc100pu0wlnnnnrrrrrrrrrrrrrrrr", func(v Visitor, w uint32) {
		v.LoadStoreMulti(cond(w), bit(w, 20), bit(w, 24), bit(w, 23), bit(w, 21), reg(w, 16), arm.RegList(w))
	}),

	// Exception generation.
	entry("svc", "cccc1111vvvvvvvvvvvvvvvvvvvvvvvv", func(v Visitor, w uint32) {
		v.SVC(cond(w), bits(w, 23, 0))
	}),
}

func dataProcImm(v Visitor, w uint32) {
	v.DataProcImm(cond(w), DataOp(bits(w, 24, 21)), bit(w, 20), reg(w, 16), reg(w, 12), int(bits(w, 11, 8)), uint8(w))
}

func dataProcReg(v Visitor, w uint32) {
	v.DataProcReg(cond(w), DataOp(bits(w, 24, 21)), bit(w, 20), reg(w, 16), reg(w, 12), uint8(bits(w, 11, 7)), shiftType(w, 5), reg(w, 0))
}

func dataProcRSR(v Visitor, w uint32) {
	v.DataProcRSR(cond(w), DataOp(bits(w, 24, 21)), bit(w, 20), reg(w, 16), reg(w, 12), reg(w, 8), shiftType(w, 5), reg(w, 0))
}
