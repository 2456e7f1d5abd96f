// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rec provides stack-safe execution of recursive computations via
// algebraic effects on [code.hybscloud.com/kont].
//
// A logically recursive function is rewritten so that, instead of calling
// itself, it performs an effect describing the next call. An explicit-stack
// driver resolves those calls iteratively, substituting each computed result
// back into the waiting parent. Recursion depth is bounded by heap memory,
// not by the native call stack.
//
// # Architecture
//
//   - Descriptors: [Call] names a callee (function, identifier, or embedded
//     computation) with strictly evaluated arguments. [To], [Ref], [Of],
//     [ToExpr] construct descriptors.
//   - Signals: [Recurse] grows the stack and resumes the caller with the
//     nested result. [TailCall] replaces the caller's frame before the
//     nested call runs, so a chain of N tail calls occupies one frame.
//     Completion carries the final value ([Done]). Any other suspended
//     operation is a protocol violation ([MalformedSignalError]).
//   - Resolution: [Registry] maps identifiers to function bodies for
//     mutually recursive routines that reference each other only by name.
//     A missing entry fails with [UnresolvedCalleeError].
//   - Driver: [Execution] owns a heap-allocated LIFO stack of paused
//     [code.hybscloud.com/kont.Suspension] values and advances one signal
//     boundary per [Execution.Step], with no native recursive call anywhere
//     in the loop. [Run] and [RunWith] drive an execution to completion.
//
// # API Topologies
//
//   - Cont-world bodies: [Body] returning [Comp], composed with
//     [RecurseBind], [RecurseThen], [TailTo], [Done].
//   - Expr-world bodies: [ExprBody] returning kont.Expr, composed with
//     [ExprRecurseBind], [ExprTailTo], [ExprDone]; bridged via [FromExpr].
//   - Iterative: [Loop] runs a step function as a chain of tail calls.
//
// # Concurrency
//
// Execution is single-threaded and cooperative: exactly one computation is
// active at a time, suspension occurs only at signal boundaries, and the
// stack is owned exclusively by one [Execution]. There is no blocking,
// cancellation, or timeout primitive; termination is solely a function of
// whether the recursive description is finite.
//
// # Example
//
//	var fact rec.Body
//	fact = func(args ...any) rec.Comp {
//		n, acc := args[0].(int), args[1].(int)
//		if n <= 1 {
//			return rec.Done(acc)
//		}
//		return rec.TailTo(rec.To(fact, n-1, acc*n))
//	}
//	result, err := rec.Run[int](rec.To(fact, 10, 1))
//	// result == 3628800, with one live frame regardless of n
package rec
