package ir

import (
	"fmt"

	"tlog.app/go/loc"
)

// bug reports a contract violation. These are programming errors with
// no recovery path.
func bug(f string, args ...any) {
	panic(fmt.Sprintf("ir: %v (at %v)", fmt.Sprintf(f, args...), loc.Caller(2)))
}
