// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

import (
	"code.hybscloud.com/kont"
)

// Loop builds an iterative computation as a chain of tail calls.
// step returns Left(nextState) to continue or Right(result) to finish.
// Each continuation replaces the previous frame via TailCall, so the
// driver holds one live frame regardless of iteration count.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) Call {
	var body Body
	body = func(args ...any) Comp {
		s := args[0].(S)
		return kont.Bind(step(s), func(e kont.Either[S, A]) Comp {
			if left, ok := e.GetLeft(); ok {
				return TailTo(To(body, left))
			}
			right, _ := e.GetRight()
			return Done(right)
		})
	}
	return To(body, initial)
}
