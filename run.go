// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

// Run drives the initial call to completion with no registry and returns
// the final value. The callee graph must consist of direct references
// only; identifier callees need RunWith.
func Run[R any](initial Call) (R, error) {
	return RunWith[R](initial, nil)
}

// RunWith drives the initial call to completion, resolving identifier
// callees against reg, and returns the final value.
//
// Re-running the same initial call and registry on a pure computation
// yields the same result every time; descriptors and signals are created
// fresh on each run and retain no identity across runs.
func RunWith[R any](initial Call, reg Registry) (R, error) {
	x := Begin(initial, reg)
	for {
		done, err := x.Step()
		if err != nil {
			var zero R
			return zero, err
		}
		if done {
			break
		}
	}
	return resultAs[R](x.value), nil
}

// resultAs recovers the typed final value, mapping nil completion to the
// zero value (kont's nil completion convention).
func resultAs[R any](v any) R {
	if v == nil {
		var zero R
		return zero
	}
	return v.(R)
}
