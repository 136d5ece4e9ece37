// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package regalloc hands out general-purpose registers in the order
// preferred by a calling convention.
package regalloc

import (
	"fmt"

	"github.com/talc-lang/nback/amd64"
)

// Allocator tracks which general-purpose registers are in use.  Registers
// are claimed from the end of the convention's free-register list, so
// caller-saved scratch registers are exhausted before any callee-saved
// register is touched.  The stack and frame pointers are never handed out.
type Allocator struct {
	free []amd64.Reg
	used amd64.RegSet
}

// MakeAllocator for a calling convention.
//
// This function can be used in field initializer expressions.  The
// initialized field must not be copied.
func MakeAllocator(conv *amd64.Conv) Allocator {
	free := make([]amd64.Reg, len(conv.FreeRegs))
	copy(free, conv.FreeRegs)
	return Allocator{free: free}
}

// NewAllocator for a calling convention.
func NewAllocator(conv *amd64.Conv) *Allocator {
	a := MakeAllocator(conv)
	return &a
}

// Alloc the most preferred free register.  ok is false if all registers are
// in use.
func (a *Allocator) Alloc() (r amd64.Reg, ok bool) {
	n := len(a.free)
	if n == 0 {
		return
	}

	r = a.free[n-1]
	a.free = a.free[:n-1]
	a.used |= amd64.MakeRegSet(r)
	ok = true
	return
}

// AllocSpecific register.  It panics if the register is not free.
func (a *Allocator) AllocSpecific(r amd64.Reg) {
	for i, free := range a.free {
		if free == r {
			a.free = append(a.free[:i], a.free[i+1:]...)
			a.used |= amd64.MakeRegSet(r)
			return
		}
	}

	panic(fmt.Sprintf("register %s is not free", r))
}

// Free a register.  It becomes the most preferred register.  Free panics if
// the register is not allocated.
func (a *Allocator) Free(r amd64.Reg) {
	if !a.used.Has(r) {
		panic(fmt.Sprintf("register %s is not allocated", r))
	}

	a.used &^= amd64.MakeRegSet(r)
	a.free = append(a.free, r)
}

// Allocated tells whether the register is in use.
func (a *Allocator) Allocated(r amd64.Reg) bool {
	return a.used.Has(r)
}

// AssertNoneAllocated panics if registers are still allocated at the end of
// a function.
func (a *Allocator) AssertNoneAllocated() {
	if a.used != 0 {
		panic(fmt.Sprintf("registers still allocated at end of function: %s", a.used))
	}
}
