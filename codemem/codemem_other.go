// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package codemem

import (
	"golang.org/x/xerrors"
)

// Code is a function body mapped for execution.
type Code struct{}

// Load is not supported on this platform.
func Load(text []byte) (*Code, error) {
	return nil, xerrors.New("executable code memory is not supported on this platform")
}

// Bytes is a read-only view of the executable code.
func (c *Code) Bytes() []byte { return nil }

// Addr of the first instruction.
func (c *Code) Addr() uintptr { return 0 }

// Close unmaps the code.
func (c *Code) Close() error { return nil }
