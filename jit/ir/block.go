package ir

import (
	"fmt"

	"tlog.app/go/tlog/tlwire"

	"github.com/wutdasheep/armjit/arm"
)

type (
	// Location identifies a guest execution point: program counter,
	// instruction-set mode bits and the static condition context the
	// block was entered under. It is the identity key used to link
	// blocks; equality is structural.
	Location struct {
		PC        uint32
		Thumb     bool
		BigEndian bool
		Cond      arm.Cond
	}

	// Block is a single-entry micro-block: an entry Location, the
	// body in emission order (which is a topological order of the
	// value graph) and exactly one terminal.
	Block struct {
		Location Location

		Code []Value

		Term Term
	}
)

func (l Location) String() string {
	mode := "arm"
	if l.Thumb {
		mode = "thumb"
	}

	e := ""
	if l.BigEndian {
		e = " be"
	}

	return fmt.Sprintf("%08x %s%s %v", l.PC, mode, e, l.Cond)
}

func (l Location) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	mode := "arm"
	if l.Thumb {
		mode = "thumb"
	}

	b = e.AppendMap(b, 3)
	b = e.AppendKeyInt64(b, "pc", int64(l.PC))
	b = e.AppendKeyString(b, "cond", l.Cond.String())
	b = e.AppendKeyString(b, "mode", mode)

	return b
}
