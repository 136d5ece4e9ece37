// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amd64

// Conv describes how registers are divided between caller and callee on a
// target platform.  Instances are immutable; the register allocator and code
// generator only read them.
type Conv struct {
	Name string

	// ParamRegs pass the first integer and pointer arguments, in argument
	// order.
	ParamRegs []Reg

	// ResultRegs return integer and pointer results, in result order.
	ResultRegs []Reg

	// FreeRegs is the default allocation order.  Registers are claimed from
	// the end of the list: caller-saved scratch registers go at the back so
	// that they are used first, and callee-saved registers go at the front
	// so that they are touched only as a last resort.  The stack and frame
	// pointers are not listed.
	FreeRegs []Reg

	// CallerSaved registers may be clobbered by a call.  The stack pointer
	// is included where the ABI makes its value the caller's responsibility,
	// even though it is never allocated.
	CallerSaved RegSet

	// CalleeSaved registers must be restored by a function that uses them.
	CalleeSaved RegSet

	StackPtr Reg
	FramePtr Reg

	// ShadowSpace is the number of stack bytes the caller must reserve
	// before a call for the callee's use.
	ShadowSpace int32

	// RedZone is the number of bytes below the stack pointer which a leaf
	// function may use without adjusting the stack pointer.
	RedZone int32
}

// SystemV is the x86-64 System V convention used by Linux, BSD and macOS.
var SystemV = &Conv{
	Name: "systemv",

	ParamRegs:  []Reg{RDI, RSI, RDX, RCX, R8, R9},
	ResultRegs: []Reg{RAX, RDX},

	// Claimed from the end.  RBP and RSP are reserved.
	FreeRegs: []Reg{
		RBX, R12, R13, R14, R15,
		RAX, RCX, RDX, RSI, RDI, R8, R9, R10, R11,
	},

	CallerSaved: MakeRegSet(RAX, RCX, RDX, RSP, RSI, RDI, R8, R9, R10, R11),
	CalleeSaved: MakeRegSet(RBX, RBP, R12, R13, R14, R15),

	StackPtr: RSP,
	FramePtr: RBP,

	ShadowSpace: 0,
	RedZone:     128,
}

// Win64 is the Windows x64 convention.
var Win64 = &Conv{
	Name: "win64",

	ParamRegs:  []Reg{RCX, RDX, R8, R9},
	ResultRegs: []Reg{RAX},

	// Claimed from the end.  RBP and RSP are reserved.
	FreeRegs: []Reg{
		RBX, RSI, RDI, R12, R13, R14, R15,
		RAX, RCX, RDX, R8, R9, R10, R11,
	},

	CallerSaved: MakeRegSet(RAX, RCX, RDX, R8, R9, R10, R11),
	CalleeSaved: MakeRegSet(RBX, RBP, RSI, RSP, RDI, R12, R13, R14, R15),

	StackPtr: RSP,
	FramePtr: RBP,

	ShadowSpace: 32,
	RedZone:     0,
}
