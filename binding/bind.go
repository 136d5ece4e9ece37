// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package binding resolves the externally compiled support functions which
// generated code calls for reference counting and value comparison.
package binding

import (
	"golang.org/x/xerrors"

	internal "github.com/talc-lang/nback/internal/errors"
)

// CallConv of a support-library entry point.
type CallConv uint8

const (
	// CallC is the platform's plain C calling convention.  Wrappers invoked
	// from outside generated function bodies use it.
	CallC = CallConv(iota)

	// CallFast is the compiler's internal calling convention.
	CallFast
)

func (cc CallConv) String() string {
	switch cc {
	case CallC:
		return "c"

	case CallFast:
		return "fast"

	default:
		return "<invalid calling convention>"
	}
}

// Library looks up functions of an externally compiled support library by
// symbol name.
type Library interface {
	Func(symbol string) (addr uintptr, err error)
}

// SupportFuncs are the entry points which a value layout's generated code
// needs.  The comments give each function's C signature; Compare is exposed
// under the plain C calling convention since it is called from outside the
// generated code's own function bodies.
type SupportFuncs struct {
	Inc     uintptr // void (*)(void *value)
	IncN    uintptr // void (*)(void *value, size_t n)
	Dec     uintptr // void (*)(void *value)
	Eq      uintptr // bool (*)(void const *a, void const *b)
	Compare uintptr // uint8_t (*)(void *closure, void const *a, void const *b)
}

// Conv returns the calling convention of the named entry point.
func (SupportFuncs) Conv(suffix string) CallConv {
	if suffix == suffixCompare {
		return CallC
	}
	return CallFast
}

// Wrapper name suffixes.  The full symbol is the layout's base symbol
// followed by a suffix.
const (
	suffixInc     = "_inc"
	suffixIncN    = "_inc_n"
	suffixDec     = "_dec"
	suffixEq      = "_eq"
	suffixCompare = "_compare_wrapper"
)

// BindSupport resolves all support functions of a value layout identified by
// its base symbol.  A missing symbol is a configuration error: the returned
// error names it and implements errors.ResolveError.
func BindSupport(lib Library, base string) (funcs SupportFuncs, err error) {
	for _, bind := range [...]struct {
		suffix string
		addr   *uintptr
	}{
		{suffixInc, &funcs.Inc},
		{suffixIncN, &funcs.IncN},
		{suffixDec, &funcs.Dec},
		{suffixEq, &funcs.Eq},
		{suffixCompare, &funcs.Compare},
	} {
		*bind.addr, err = resolve(lib, base+bind.suffix)
		if err != nil {
			return
		}
	}

	return
}

func resolve(lib Library, symbol string) (addr uintptr, err error) {
	addr, err = lib.Func(symbol)
	if err != nil {
		err = xerrors.Errorf("binding support library: %w", internal.SymbolError(symbol, err))
	}
	return
}
