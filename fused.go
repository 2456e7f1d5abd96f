// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

import (
	"code.hybscloud.com/kont"
)

// Done completes the current frame with v.
// This is the Return signal: the value propagates to whichever frame is
// waiting below, or becomes the overall result when the stack is empty.
func Done(v any) Comp {
	return kont.Pure(kont.Resumed(v))
}

// RecurseBind evaluates the nested call c and passes its result to f.
// Fuses Perform(Recurse{Call: c}) + Bind.
func RecurseBind(c Call, f func(kont.Resumed) Comp) Comp {
	return kont.Bind(kont.Perform(Recurse{Call: c}), f)
}

// RecurseThen evaluates the nested call c for effect, discarding its
// result, and continues with next.
// Fuses Perform(Recurse{Call: c}) + Then.
func RecurseThen(c Call, next Comp) Comp {
	return kont.Then(kont.Perform(Recurse{Call: c}), next)
}

// TailTo replaces the current frame with the nested call c.
// The frame contributes nothing further; its suspension is discarded
// before c runs, so stack depth does not increase.
func TailTo(c Call) Comp {
	return kont.Perform(TailCall{Call: c})
}
