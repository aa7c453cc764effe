package ir

import "github.com/wutdasheep/armjit/arm"

type (
	// Term is the terminal instruction of a Block: the one way
	// control leaves after the body has been evaluated. The set is
	// closed; If composes two sub-terminals on a runtime condition.
	//
	// Terminals never reference body values, only the register and
	// flag state at block exit.
	Term interface {
		isTerm()
	}

	// ReturnToDispatch returns control to the dispatcher.
	ReturnToDispatch struct{}

	// PopRSBHint checks the top of the return stack buffer. If the
	// prediction fails, control returns to the dispatcher. A backend
	// may implement this as ReturnToDispatch.
	PopRSBHint struct{}

	// Interpret defers execution from Next to the interpreter.
	Interpret struct {
		Next Location
	}

	// LinkBlock jumps to the block at Next if enough cycles remain.
	LinkBlock struct {
		Next Location
	}

	// LinkBlockFast jumps to the block at Next unconditionally,
	// regardless of cycles remaining.
	LinkBlockFast struct {
		Next Location
	}

	// If executes Then or Else depending on the runtime state of the
	// ARM flags.
	If struct {
		Cond arm.Cond

		Then Term
		Else Term
	}
)

func (ReturnToDispatch) isTerm() {}
func (PopRSBHint) isTerm()       {}
func (Interpret) isTerm()        {}
func (LinkBlock) isTerm()        {}
func (LinkBlockFast) isTerm()    {}
func (If) isTerm()               {}

// NormalizeTerm collapses trivial If nodes: an always-passing
// condition or two identical branches. Backends accept any
// well-formed tree; this only shrinks it.
func NormalizeTerm(t Term) Term {
	f, ok := t.(If)
	if !ok {
		return t
	}

	f.Then = NormalizeTerm(f.Then)
	f.Else = NormalizeTerm(f.Else)

	if f.Cond == arm.AL || f.Then == f.Else {
		return f.Then
	}

	return f
}
