// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

import (
	"code.hybscloud.com/kont"
)

// Execution states.
const (
	execActive uint8 = iota
	execDone
	execFailed
)

// Execution is the explicit-stack interpreter state for one top-level run.
//
// The stack holds paused frames strictly LIFO: only the top frame is ever
// resumed, every frame below it is waiting for a value. Maximum depth is
// bounded by available memory, not by the native call stack — the driver
// performs no native recursive call at any point.
//
// An Execution is owned by a single goroutine; no computation may observe
// or mutate frames other than its own local state.
type Execution struct {
	reg     Registry
	stack   []*kont.Suspension[kont.Resumed]
	pending *Call
	value   kont.Resumed
	err     error
	state   uint8
	serial  Serial
}

// Begin creates an execution for the initial call. The first frame is not
// launched until the first Step, so Begin itself runs no caller code.
func Begin(initial Call, reg Registry) *Execution {
	c := initial
	return &Execution{
		reg:     reg,
		pending: &c,
		serial:  nextSerial(),
	}
}

// Serial returns the serial number assigned to this execution.
func (x *Execution) Serial() Serial {
	return x.serial
}

// Depth returns the number of live frames: paused parents plus the frame
// currently active or about to launch. During a chain of tail calls the
// depth stays constant; each Recurse adds one until its result returns.
func (x *Execution) Depth() int {
	d := len(x.stack)
	if x.pending != nil {
		d++
	}
	return d
}

// Result returns the final value once the execution has completed, the
// terminal error if it failed, or ErrRunning while frames remain.
func (x *Execution) Result() (kont.Resumed, error) {
	switch x.state {
	case execDone:
		return x.value, nil
	case execFailed:
		return nil, x.err
	}
	return nil, ErrRunning
}

// fail transitions to the terminal failed state, abandoning all frames.
func (x *Execution) fail(err error) error {
	x.state = execFailed
	x.err = err
	x.abandon()
	return err
}

// abandon discards every paused suspension and the pending call.
// Discard releases pooled frame state without resuming caller code; no
// finalization beyond the host's own scoped-resource rules is attempted.
func (x *Execution) abandon() {
	for _, s := range x.stack {
		s.Discard()
	}
	x.stack = nil
	x.pending = nil
}
