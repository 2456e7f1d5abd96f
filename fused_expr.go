// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

import (
	"code.hybscloud.com/kont"
)

// ExprDone completes the current frame with v (Expr-world).
func ExprDone(v any) kont.Expr[kont.Resumed] {
	return kont.ExprReturn(kont.Resumed(v))
}

// ExprRecurseBind evaluates the nested call c and passes its result to f
// (Expr-world). Fuses ExprPerform(Recurse{Call: c}) + ExprBind.
func ExprRecurseBind(c Call, f func(kont.Resumed) kont.Expr[kont.Resumed]) kont.Expr[kont.Resumed] {
	return kont.ExprBind(kont.ExprPerform(Recurse{Call: c}), f)
}

// ExprTailTo replaces the current frame with the nested call c (Expr-world).
func ExprTailTo(c Call) kont.Expr[kont.Resumed] {
	return kont.ExprPerform(TailCall{Call: c})
}
