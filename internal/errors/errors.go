// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
)

// ResolveError indicates that a support-library symbol is missing.
type ResolveError interface {
	error
	Symbol() string
	ResolveError() bool
}

type resolveError struct {
	symbol string
	cause  error
}

// SymbolError about a missing support-library function.  It may wrap an
// underlying lookup error.
func SymbolError(symbol string, cause error) error {
	return &resolveError{symbol, cause}
}

func (e *resolveError) Error() string {
	return fmt.Sprintf("support function %q is missing - is the support library build up to date?", e.symbol)
}

func (e *resolveError) PublicError() string { return e.Error() }
func (e *resolveError) Symbol() string      { return e.symbol }
func (e *resolveError) ResolveError() bool  { return true }
func (e *resolveError) Unwrap() error       { return e.cause }
