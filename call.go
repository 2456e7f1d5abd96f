// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec

// Call describes the next computation to run: a callee plus an ordered
// argument sequence. A Call is pure data, immutable once constructed, and
// never executed until the driver decides to.
//
// Arguments are evaluated at the constructor call site (Go variadic
// evaluation is strict). Callers must not pass values whose evaluation is
// deferred behind the construction point — the result a frame is replaced
// with must be fixed before the frame is discarded.
type Call struct {
	fn   Body
	expr ExprBody
	comp Comp
	name string
	args []any
}

// To constructs a Call targeting a function body directly.
func To(fn Body, args ...any) Call {
	return Call{fn: fn, args: args}
}

// Ref constructs a Call targeting a callee known only by identifier.
// The identifier is resolved against the Registry supplied to the driver;
// an absent entry fails the run with UnresolvedCalleeError.
func Ref(name string, args ...any) Call {
	return Call{name: name, args: args}
}

// Of constructs a Call embedding an already-resumable computation.
// The computation is used as-is; no arguments apply.
func Of(c Comp) Call {
	return Call{comp: c}
}

// ToExpr constructs a Call targeting a defunctionalized body.
// The body's frame chain is bridged to the driver via kont.Reflect.
func ToExpr(fn ExprBody, args ...any) Call {
	return Call{expr: fn, args: args}
}

// Name returns the identifier of a Ref call, or "" for direct callees.
func (c Call) Name() string { return c.name }

// Args returns the argument sequence of the call.
func (c Call) Args() []any { return c.args }
