// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package amd64 defines the x86-64 general-purpose register set and the
// calling conventions of the supported target platforms.
package amd64

// Reg is a general-purpose register.  Its value is the 4-bit number used to
// encode the register in instruction bytes.
type Reg uint8

const (
	RAX = Reg(0)
	RCX = Reg(1)
	RDX = Reg(2)
	RBX = Reg(3)
	RSP = Reg(4)
	RBP = Reg(5)
	RSI = Reg(6)
	RDI = Reg(7)
	R8  = Reg(8)
	R9  = Reg(9)
	R10 = Reg(10)
	R11 = Reg(11)
	R12 = Reg(12)
	R13 = Reg(13)
	R14 = Reg(14)
	R15 = Reg(15)
)

// NumRegs is the number of general-purpose registers.
const NumRegs = 16

// Encoding returns the hardware register number.
func (r Reg) Encoding() uint8 {
	return uint8(r)
}

var regNames = [NumRegs]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return "<invalid register>"
}
