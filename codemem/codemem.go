// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

// Package codemem places finished machine code in executable memory.
package codemem

import (
	"unsafe"

	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

// Code is a function body mapped for execution.
type Code struct {
	mem []byte
}

// Load copies a finished function body into an anonymous mapping and seals
// it read-execute.  The input buffer can be reused or discarded afterwards.
func Load(text []byte) (*Code, error) {
	if len(text) == 0 {
		return nil, xerrors.New("no machine code to load")
	}

	mem, err := unix.Mmap(-1, 0, len(text), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}

	copy(mem, text)

	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		unix.Munmap(mem)
		return nil, err
	}

	return &Code{mem}, nil
}

// Bytes is a read-only view of the executable code.
func (c *Code) Bytes() []byte {
	return c.mem
}

// Addr of the first instruction.
func (c *Code) Addr() uintptr {
	return uintptr(unsafe.Pointer(&c.mem[0]))
}

// Close unmaps the code.  The Code must not be used afterwards.
func (c *Code) Close() error {
	mem := c.mem
	c.mem = nil
	return unix.Munmap(mem)
}
