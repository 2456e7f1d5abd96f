// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

import (
	"code.hybscloud.com/kont"
)

// FromExpr adapts a defunctionalized body to Cont-world, making it
// registrable in a Registry. Conversion is lazy: each signal is bridged
// on demand as the driver evaluates the frame chain.
func FromExpr(fn ExprBody) Body {
	return func(args ...any) Comp {
		return kont.Reflect(fn(args...))
	}
}

// ToComp embeds a Cont-world computation behind the Body shape, ignoring
// call arguments. Useful for registering a fixed computation by name.
func ToComp(c Comp) Body {
	return func(...any) Comp {
		return c
	}
}
