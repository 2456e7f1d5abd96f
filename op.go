// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

import (
	"code.hybscloud.com/kont"
)

// Recurse is the effect operation for a nested call.
// Perform(Recurse{Call: c}) suspends the current frame, evaluates c on a
// fresh frame above it, and resumes the suspension with c's final value.
// Stack depth grows by one until the nested call returns.
type Recurse struct {
	kont.Phantom[kont.Resumed]
	Call Call
}

// TailCall is the effect operation for frame replacement.
// Perform(TailCall{Call: c}) discards the current frame before c runs;
// the suspension is never resumed and c's result is delivered to whatever
// frame was waiting below. A chain of N tail calls occupies one frame.
type TailCall struct {
	kont.Phantom[kont.Resumed]
	Call Call
}
