package ir

import "fmt"

// AppendBlock renders a block in a readable text form. U32 values are
// numbered %0, %1, ... in body order; void nodes are unnumbered.
func AppendBlock(b []byte, blk *Block) []byte {
	b = app(b, 0, "block %v\n", blk.Location)

	names := map[Value]int{}

	for _, v := range blk.Code {
		b = appendValue(b, names, v)
		b = append(b, '\n')
	}

	b = app(b, 1, "-> ")
	b = AppendTerm(b, blk.Term)
	b = append(b, '\n')

	return b
}

func appendValue(b []byte, names map[Value]int, v Value) []byte {
	b = app(b, 1, "")

	if v.Type() != Void {
		names[v] = len(names)
		b = app(b, 0, "%%%d = ", names[v])
	}

	switch v := v.(type) {
	case *Const:
		b = app(b, 0, "ConstU32 %#x", v.Imm)
	case *GetGPR:
		b = app(b, 0, "GetGPR %v", v.Reg)
	case *SetGPR:
		b = app(b, 0, "SetGPR %v, ", v.Reg)
		b = ref(b, names, v.Arg(0))
	case *Inst:
		b = app(b, 0, "%v", v.Op())

		for i := 0; i < v.NumArgs(); i++ {
			if i != 0 {
				b = append(b, ","...)
			}

			b = append(b, ' ')
			b = ref(b, names, v.Arg(i))
		}

		if f := v.WriteFlags(); f != FlagsNone {
			b = app(b, 0, " ; writes %v", f)
		}
	}

	return b
}

// AppendTerm renders a terminal, recursing into If branches.
func AppendTerm(b []byte, t Term) []byte {
	switch t := t.(type) {
	case ReturnToDispatch:
		b = append(b, "ReturnToDispatch"...)
	case PopRSBHint:
		b = append(b, "PopRSBHint"...)
	case Interpret:
		b = app(b, 0, "Interpret %v", t.Next)
	case LinkBlock:
		b = app(b, 0, "LinkBlock %v", t.Next)
	case LinkBlockFast:
		b = app(b, 0, "LinkBlockFast %v", t.Next)
	case If:
		b = app(b, 0, "If %v (", t.Cond)
		b = AppendTerm(b, t.Then)
		b = append(b, ") ("...)
		b = AppendTerm(b, t.Else)
		b = append(b, ')')
	case nil:
		b = append(b, "<unset>"...)
	default:
		b = app(b, 0, "term(%T)", t)
	}

	return b
}

func (blk *Block) String() string { return string(AppendBlock(nil, blk)) }

func ref(b []byte, names map[Value]int, v Value) []byte {
	return app(b, 0, "%%%d", names[v])
}

func app(b []byte, d int, f string, args ...any) []byte {
	for i := 0; i < d; i++ {
		b = append(b, '\t')
	}

	return fmt.Appendf(b, f, args...)
}
