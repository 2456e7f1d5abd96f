// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rec_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/rec"
)

func TestRegistryEvenOdd(t *testing.T) {
	reg := parityRegistry()

	result, err := rec.RunWith[bool](rec.Ref("even", 10000), reg)
	if err != nil {
		t.Fatalf("even(10000): %v", err)
	}
	if !result {
		t.Fatal("even(10000) = false, want true")
	}

	result, err = rec.RunWith[bool](rec.Ref("even", 10001), reg)
	if err != nil {
		t.Fatalf("even(10001): %v", err)
	}
	if result {
		t.Fatal("even(10001) = true, want false")
	}
}

func TestRegistryUnresolvedCallee(t *testing.T) {
	// Omitting the unreferenced side must fail naming the missing
	// identifier, with no partial result.
	reg := parityRegistry()
	delete(reg, "odd")

	_, err := rec.RunWith[bool](rec.Ref("even", 3), reg)
	var unresolved *rec.UnresolvedCalleeError
	if !errors.As(err, &unresolved) {
		t.Fatalf("got %v, want UnresolvedCalleeError", err)
	}
	if unresolved.Name != "odd" {
		t.Fatalf("missing identifier %q, want %q", unresolved.Name, "odd")
	}
}

func TestRegistryNilWithoutRefs(t *testing.T) {
	// Direct callees never consult the registry; nil is valid.
	result, err := rec.RunWith[int](rec.To(tailFactorialBody(), 5, 1), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result != 120 {
		t.Fatalf("got %d, want 120", result)
	}
}

func TestRegistryNilWithRef(t *testing.T) {
	_, err := rec.Run[bool](rec.Ref("even", 2))
	var unresolved *rec.UnresolvedCalleeError
	if !errors.As(err, &unresolved) {
		t.Fatalf("got %v, want UnresolvedCalleeError", err)
	}
	if unresolved.Name != "even" {
		t.Fatalf("missing identifier %q, want %q", unresolved.Name, "even")
	}
}

func TestRegistryDirectCalleeBypassesLookup(t *testing.T) {
	// A descriptor carrying its callee directly resolves without the
	// registry even when an identifier of the same routine is absent.
	var body rec.Body
	body = func(args ...any) rec.Comp {
		n := args[0].(int)
		if n == 0 {
			return rec.Done("bottom")
		}
		return rec.TailTo(rec.To(body, n-1))
	}
	result, err := rec.RunWith[string](rec.To(body, 3), rec.Registry{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result != "bottom" {
		t.Fatalf("got %q, want %q", result, "bottom")
	}
}
