// Package decode matches raw A32 instruction words against the opcode
// families the translator knows and dispatches decoded fields to a
// Visitor. Matching is table driven: each entry carries the bit
// pattern of the ARM ARM encoding diagram, parsed once at program
// start into a mask/value pair. Decoding is pure and stateless.
package decode

import "github.com/wutdasheep/armjit/arm"

type (
	// DataOp is the 4-bit opcode field of data-processing
	// instructions.
	DataOp uint8

	// Hint is the low hint field of the NOP-space encodings.
	Hint uint8

	// Visitor receives decoded instruction fields, one callback per
	// opcode family.
	Visitor interface {
		// Branch.
		B(cond arm.Cond, imm24 uint32)
		BL(cond arm.Cond, imm24 uint32)
		BLXImm(h bool, imm24 uint32)
		BLXReg(cond arm.Cond, m arm.Reg)
		BX(cond arm.Cond, m arm.Reg)

		// Data processing.
		DataProcImm(cond arm.Cond, op DataOp, s bool, n, d arm.Reg, rotate int, imm8 uint8)
		DataProcReg(cond arm.Cond, op DataOp, s bool, n, d arm.Reg, imm5 uint8, shift arm.ShiftType, m arm.Reg)
		DataProcRSR(cond arm.Cond, op DataOp, s bool, n, d arm.Reg, rs arm.Reg, shift arm.ShiftType, m arm.Reg)

		// Miscellaneous.
		CLZ(cond arm.Cond, d, m arm.Reg)
		HintInsn(cond arm.Cond, h Hint)
		PLD()

		// Load/store.
		LoadStoreImm(cond arm.Cond, load, byteSize, p, u, w bool, n, d arm.Reg, imm12 uint32)
		LoadStoreReg(cond arm.Cond, load, byteSize, p, u, w bool, n, d arm.Reg, imm5 uint8, shift arm.ShiftType, m arm.Reg)
		LoadStoreMulti(cond arm.Cond, load, p, u, w bool, n arm.Reg, list arm.RegList)

		// Synchronisation.
		CLREX()
		LDREX(cond arm.Cond, n, d arm.Reg)
		STREX(cond arm.Cond, n, d, m arm.Reg)
		SWP(cond arm.Cond, byteSize bool, n, d, m arm.Reg)

		// Exception generation.
		SVC(cond arm.Cond, imm24 uint32)
		BKPT(cond arm.Cond, imm12 uint32, imm4 uint8)
		UDF()
	}

	// Instruction is a matched table entry. Visit re-extracts the
	// fields from the word and invokes the family callback.
	Instruction struct {
		name  string
		mask  uint32
		value uint32
		visit func(v Visitor, w uint32)
	}
)

const (
	OpAND DataOp = iota
	OpEOR
	OpSUB
	OpRSB
	OpADD
	OpADC
	OpSBC
	OpRSC
	OpTST
	OpTEQ
	OpCMP
	OpCMN
	OpORR
	OpMOV
	OpBIC
	OpMVN
)

const (
	HintNOP Hint = iota
	HintYIELD
	HintWFE
	HintWFI
	HintSEV
)

var dataOpNames = [16]string{
	"and", "eor", "sub", "rsb", "add", "adc", "sbc", "rsc",
	"tst", "teq", "cmp", "cmn", "orr", "mov", "bic", "mvn",
}

func (op DataOp) String() string { return dataOpNames[op&15] }

// Decode returns the matching table entry for w, or nil if the word
// is not an encoding this front-end recognises.
func Decode(w uint32) *Instruction {
	for i := range table {
		in := &table[i]

		if w&in.mask == in.value {
			return in
		}
	}

	return nil
}

// Name is the table name of the matched family.
func (in *Instruction) Name() string { return in.name }

// Visit extracts the fields of w and calls the family callback on v.
func (in *Instruction) Visit(v Visitor, w uint32) { in.visit(v, w) }

// field extraction helpers

func bits(w uint32, hi, lo uint) uint32 { return w >> lo & (1<<(hi-lo+1) - 1) }

func bit(w uint32, n uint) bool { return w>>n&1 != 0 }

func cond(w uint32) arm.Cond { return arm.Cond(w >> 28) }

func reg(w uint32, lo uint) arm.Reg { return arm.Reg(bits(w, lo+3, lo)) }

func shiftType(w uint32, lo uint) arm.ShiftType { return arm.ShiftType(bits(w, lo+1, lo)) }
