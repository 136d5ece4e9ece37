// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors exports common error types without unnecessary
// dependencies.
package errors

import (
	internal "github.com/talc-lang/nback/internal/errors"
)

// ResolveError indicates that a support-library function required by
// generated code is missing.  It names the offending symbol and may wrap an
// underlying lookup error.
type ResolveError = internal.ResolveError
