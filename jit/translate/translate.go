// Package translate drives the ARM-to-SSA front-end: it fetches guest
// instructions linearly from memory, decodes them and builds a
// micro-block through the ir.Builder, stopping at the first
// instruction that resists linear translation.
package translate

import (
	"context"

	"tlog.app/go/tlog"

	"github.com/wutdasheep/armjit/arm"
	"github.com/wutdasheep/armjit/jit/decode"
	"github.com/wutdasheep/armjit/jit/ir"
	"github.com/wutdasheep/armjit/jit/memory"
)

// Translator walks one basic block of guest instructions. It is owned
// by a single goroutine; the emitted block is self-contained once
// Translate returns.
type Translator struct {
	ir  *ir.Builder
	mem memory.Memory

	current ir.Location

	// Latest SSA value per guest register at the current point, and
	// the entry read it started from. PC is never cached.
	regs  [arm.NumCachedRegs]ir.Value
	entry [arm.NumCachedRegs]ir.Value

	stop   bool
	ninsts int
}

// Translate builds the micro-block entered at loc. It never fails: on
// any condition the front-end cannot handle it terminates the block
// with an Interpret terminal and returns what was built so far.
func Translate(ctx context.Context, loc ir.Location, mem memory.Memory) *ir.Block {
	t := &Translator{
		ir:      ir.NewBuilder(loc),
		mem:     mem,
		current: loc,
	}

	return t.translate(ctx)
}

func (t *Translator) translate(ctx context.Context) *ir.Block {
	if t.stop {
		panic("translate: translator already stopped")
	}

	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "translate block", "loc", t.current)
	defer func() {
		tr.Finish("insts", t.ninsts, "values", len(t.ir.Block.Code))
	}()

	if t.current.Thumb {
		// Thumb decoding is not wired up yet.
		t.fallback()
	}

	for !t.stop {
		t.step(tr)
		t.ninsts++

		if t.stop {
			break
		}

		if t.current.PC&0xFFF == 0 {
			// Do not translate across a page boundary.
			t.ir.SetTerm(ir.LinkBlock{Next: t.current})
			t.stop = true
		}
	}

	t.writeback()

	if tr.If("dump_block") {
		tr.Printw("translated", "block", t.ir.Block.String())
	}

	return t.ir.Block
}

// step fetches, decodes and dispatches a single guest instruction.
func (t *Translator) step(tr tlog.Span) {
	w := t.mem.Read32(t.current.PC &^ 3)

	in := decode.Decode(w)
	if in == nil {
		tr.Printw("unknown instruction", "pc", tlog.FormatNext("%08x"), t.current.PC, "word", tlog.FormatNext("%08x"), w)
		t.fallback()
		return
	}

	in.Visit(t, w)
}

// getReg returns the SSA value of register r at the current point.
// PC is special: it always reads as a fresh constant pc+8.
func (t *Translator) getReg(r arm.Reg) ir.Value {
	if r == arm.PC {
		return t.ir.ConstU32(t.current.PC + 8)
	}

	if t.regs[r] == nil {
		g := t.ir.GetGPR(r)
		t.regs[r] = g
		t.entry[r] = g
	}

	return t.regs[r]
}

// setReg records v as the latest value of r. No store is emitted
// here; the writeback pass materialises only the final value.
func (t *Translator) setReg(r arm.Reg, v ir.Value) {
	if r == arm.PC {
		panic("translate: PC is written through AluWritePC/LoadWritePC")
	}

	t.regs[r] = v
}

// writeback appends a SetGPR for every register whose latest value
// differs from its entry read. Stores of the entry read are elided.
func (t *Translator) writeback() {
	for r, v := range t.regs {
		if v == nil || v == t.entry[r] {
			continue
		}

		t.ir.SetGPR(arm.Reg(r), v)
	}
}

// condPassed implements the static-condition short-circuit. If the
// instruction condition matches the block's entry condition the
// instruction executes unconditionally here. Otherwise the block
// links out to a sibling specialised to the new condition, and the
// instruction is not translated in this block.
func (t *Translator) condPassed(cond arm.Cond) bool {
	if cond == arm.NV {
		// Unconditional space reaching a conditional handler is an
		// encoding this front-end does not model.
		t.fallback()
		return false
	}

	if cond == t.current.Cond {
		return true
	}

	next := t.current
	next.Cond = cond

	t.ir.SetTerm(ir.LinkBlock{Next: next})
	t.stop = true

	return false
}

// fallback defers execution of the current instruction (and all that
// follow) to the interpreter.
func (t *Translator) fallback() {
	t.ir.SetTerm(ir.Interpret{Next: t.current})
	t.stop = true
}

// advance bumps the PC past the instruction just translated.
func (t *Translator) advance() {
	t.current.PC += 4
}

// aluWritePC emits an ALU-style PC write and terminates the block.
func (t *Translator) aluWritePC(v ir.Value) {
	t.ir.Inst(ir.OpAluWritePC, v)
	t.ir.SetTerm(ir.ReturnToDispatch{})
	t.stop = true
}

// loadWritePC emits a load-style (interworking) PC write and
// terminates the block with term.
func (t *Translator) loadWritePC(v ir.Value, term ir.Term) {
	t.ir.Inst(ir.OpLoadWritePC, v)
	t.ir.SetTerm(term)
	t.stop = true
}
