// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/rec"
)

// nativeFactorial is the native-recursion reference for equivalence tests.
func nativeFactorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * nativeFactorial(n-1)
}

// nativeCountdown records 1..n in the order the native recursive printer
// would produce them (recurse first, then emit).
func nativeCountdown(n int, out *[]int) {
	if n == 0 {
		return
	}
	nativeCountdown(n-1, out)
	*out = append(*out, n)
}

// naiveFactorialBody builds a Recurse-based factorial: the multiplication
// happens after the nested call returns, so each call occupies a frame.
func naiveFactorialBody() rec.Body {
	var body rec.Body
	body = func(args ...any) rec.Comp {
		n := args[0].(int)
		if n <= 1 {
			return rec.Done(1)
		}
		return rec.RecurseBind(rec.To(body, n-1), func(v kont.Resumed) rec.Comp {
			return rec.Done(n * v.(int))
		})
	}
	return body
}

// tailFactorialBody builds a TailCall-based accumulator factorial: each
// call replaces its frame, so the whole chain occupies one frame.
func tailFactorialBody() rec.Body {
	var body rec.Body
	body = func(args ...any) rec.Comp {
		n := args[0].(int)
		acc := args[1].(int)
		if n <= 1 {
			return rec.Done(acc)
		}
		return rec.TailTo(rec.To(body, n-1, acc*n))
	}
	return body
}

// countdownBody builds a side-effecting body that records 1..n into out
// after recursing, mirroring nativeCountdown.
func countdownBody(out *[]int) rec.Body {
	var body rec.Body
	body = func(args ...any) rec.Comp {
		n := args[0].(int)
		if n == 0 {
			return rec.Done(rec.Unit{})
		}
		return rec.RecurseBind(rec.To(body, n-1), func(kont.Resumed) rec.Comp {
			*out = append(*out, n)
			return rec.Done(rec.Unit{})
		})
	}
	return body
}

// parityRegistry builds the even/odd mutual-recursion registry.
// Both sides reference each other only by identifier.
func parityRegistry() rec.Registry {
	even := func(args ...any) rec.Comp {
		n := args[0].(int)
		if n == 0 {
			return rec.Done(true)
		}
		return rec.TailTo(rec.Ref("odd", n-1))
	}
	odd := func(args ...any) rec.Comp {
		n := args[0].(int)
		if n == 0 {
			return rec.Done(false)
		}
		return rec.TailTo(rec.Ref("even", n-1))
	}
	return rec.Registry{"even": even, "odd": odd}
}

// drive steps an execution to completion, returning the final value and
// the maximum frame depth observed between signal boundaries.
func drive(tb testing.TB, x *rec.Execution) (any, int) {
	tb.Helper()
	maxDepth := x.Depth()
	for {
		done, err := x.Step()
		if err != nil {
			tb.Fatalf("step: %v", err)
		}
		if d := x.Depth(); d > maxDepth {
			maxDepth = d
		}
		if done {
			break
		}
	}
	v, err := x.Result()
	if err != nil {
		tb.Fatalf("result: %v", err)
	}
	return v, maxDepth
}
