// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

import (
	"code.hybscloud.com/kont"
)

// Step advances the execution across exactly one signal boundary:
// it launches the pending call or resumes the top frame with the
// propagated value, then applies the transition for the signal produced.
//
//   - Recurse(c): the frame's suspension is pushed beneath a fresh frame
//     for c; its next resume value will be c's final result.
//   - TailCall(c): the frame's suspension is discarded first, then c
//     becomes pending — stack depth does not increase.
//   - completion: the value propagates to the frame below; with no frame
//     left to receive it, the execution is done and the value is final.
//
// Step returns true when the execution has reached a terminal state.
// Stepping a terminal execution returns ErrAlreadyCompleted; driver
// errors (UnresolvedCalleeError, MalformedSignalError) abandon the
// remaining frames and are returned from the failing Step.
//
// Exposed so external schedulers can interleave executions one signal at
// a time and tests can observe Depth between boundaries; Run and RunWith
// wrap Step in a loop to completion.
func (x *Execution) Step() (bool, error) {
	if x.state != execActive {
		return true, ErrAlreadyCompleted
	}

	var result kont.Resumed
	var susp *kont.Suspension[kont.Resumed]
	if x.pending != nil {
		comp, err := resolve(*x.pending, x.reg)
		if err != nil {
			return true, x.fail(err)
		}
		x.pending = nil
		result, susp = launch(comp)
	} else {
		top := x.stack[len(x.stack)-1]
		x.stack = x.stack[:len(x.stack)-1]
		var ok bool
		result, susp, ok = top.TryResume(x.value)
		if !ok {
			return true, x.fail(ErrAlreadyCompleted)
		}
	}

	if susp == nil {
		// Frame returned; propagate downward. The final value keeps
		// kont's nil completion convention (nil means zero), but a resume
		// value cannot be nil, so implicit completion reaches the waiting
		// frame as Unit.
		if len(x.stack) == 0 {
			x.value = result
			x.state = execDone
			return true, nil
		}
		if result == nil {
			result = Unit{}
		}
		x.value = result
		return false, nil
	}

	switch op := susp.Op().(type) {
	case Recurse:
		x.stack = append(x.stack, susp)
		call := op.Call
		x.pending = &call
	case TailCall:
		susp.Discard()
		call := op.Call
		x.pending = &call
	default:
		susp.Discard()
		return true, x.fail(&MalformedSignalError{Op: op})
	}
	return false, nil
}
