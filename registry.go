// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

import (
	"code.hybscloud.com/kont"
)

// Registry maps identifiers to function bodies for out-of-band resolution
// of mutually recursive callees. Two routines written as ordinary functions
// capture each other only inside their source bodies; the registry makes
// that linkage explicit and caller-supplied.
//
// A Registry is supplied once per driver invocation and must not be
// mutated for the lifetime of that invocation.
type Registry map[string]Body

// resolve instantiates a Call's computation. Lookup order: embedded
// computation, direct function body, defunctionalized body, registry
// identifier. An identifier absent from the registry fails with
// UnresolvedCalleeError; an empty Call fails with ErrNilCallee.
//
// Direct callees never consult the registry, so a nil Registry is valid
// for runs without identifier references.
func resolve(c Call, reg Registry) (Comp, error) {
	switch {
	case c.comp != nil:
		return c.comp, nil
	case c.fn != nil:
		return c.fn(c.args...), nil
	case c.expr != nil:
		return kont.Reflect(c.expr(c.args...)), nil
	case c.name != "":
		fn, ok := reg[c.name]
		if !ok {
			return nil, &UnresolvedCalleeError{Name: c.name}
		}
		return fn(c.args...), nil
	}
	return nil, ErrNilCallee
}
