// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

import (
	"code.hybscloud.com/kont"
)

// Comp is a resumable recursive computation.
// The untyped result flows through the driver as kont.Resumed; Run recovers
// the concrete type at the end of the run.
type Comp = kont.Eff[kont.Resumed]

// Body is the shape of an ordinary recursive function rewritten for the
// driver: it receives the call's arguments and returns a computation whose
// call sites are wrapped in the signal protocol (Recurse/TailCall/Done).
//
// A Body must not call itself or its peers natively — nested calls go
// through Call descriptors so that nesting is the driver's responsibility.
type Body func(args ...any) Comp

// ExprBody is the defunctionalized counterpart of Body, returning an
// explicit frame chain instead of closures.
type ExprBody func(args ...any) kont.Expr[kont.Resumed]

// Unit is the result of computations run for their side effects only.
// A body that has nothing to return finishes with Done(Unit{}) rather than
// relying on implicit fall-through.
type Unit struct{}

// launch begins a frame's computation and advances it to its first signal
// boundary. The body runs exactly once, with the descriptor's original
// arguments; later resumes inject values at the suspension points.
func launch(c Comp) (kont.Resumed, *kont.Suspension[kont.Resumed]) {
	return kont.Step(c)
}
