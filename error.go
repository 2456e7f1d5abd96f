// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

import (
	"errors"
	"fmt"

	"code.hybscloud.com/kont"
)

// Every failure is terminal for its invocation: the driver aborts, discards
// the remaining frames, and returns no partial result. Panics raised by
// caller code propagate unchanged — the driver neither catches nor
// reinterprets them.

// ErrAlreadyCompleted reports a resume request on a computation that has
// already produced its final value. Programming error, fatal to the run.
var ErrAlreadyCompleted = errors.New("rec: computation already completed")

// ErrNilCallee reports a Call constructed with no callee at all.
var ErrNilCallee = errors.New("rec: call has no callee")

// ErrRunning reports a result request on an execution that has not yet
// reached its final Return.
var ErrRunning = errors.New("rec: execution has not completed")

// UnresolvedCalleeError reports an identifier callee that is absent from
// the registry supplied to the driver.
type UnresolvedCalleeError struct {
	// Name is the missing identifier.
	Name string
}

func (e *UnresolvedCalleeError) Error() string {
	return fmt.Sprintf("rec: unresolved callee %q", e.Name)
}

// MalformedSignalError reports a computation that suspended on an operation
// outside the signal protocol — neither Recurse nor TailCall. This usually
// means a foreign kont effect leaked into a computation run under the
// recursion driver.
type MalformedSignalError struct {
	// Op is the unrecognized operation the computation suspended on.
	Op kont.Operation
}

func (e *MalformedSignalError) Error() string {
	return fmt.Sprintf("rec: malformed signal %T", e.Op)
}
