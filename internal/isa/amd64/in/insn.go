// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"github.com/talc-lang/nback/amd64"
	"github.com/talc-lang/nback/internal/code"
)

const (
	// Opcode bits of some instructions are located at this offset in the
	// ModRM byte (ModRO part).
	opcodeBase = 3
)

const (
	// GP opcodes.  All operations use 64-bit operand size.
	ADDmr  = RM(0x01)                    // ADD r/m64, r64
	PUSHo  = O(0x50)                     // PUSH r64
	POPo   = O(0x58)                     // POP r64
	ADDi   = MI(0x81<<8 | 0<<opcodeBase) // ADD r/m64, imm32
	SUBi   = MI(0x81<<8 | 5<<opcodeBase) // SUB r/m64, imm32
	MOVmr  = RM(0x89)                    // MOV r/m64, r64
	MOV    = RM(0x8b)                    // MOV r64, r/m64
	MOV64i = OI(0xb8)                    // MOV r64, imm64
	RET    = NP(0xc3)                    // RET near
	MOVi   = MI(0xc7<<8 | 0<<opcodeBase) // MOV r/m64, imm32
	NEG    = M(0xf7<<8 | 3<<opcodeBase)  // NEG r/m64
	CMOVL  = RM2(0x0f<<8 | 0x4c)         // CMOVL r64, r/m64 (SF != OF)
)

// MoveImm loads a 64-bit immediate into a register.  A value which survives
// sign-extension from 32 bits takes the 7-byte MOVi form; only values
// strictly outside the int32 range take the 10-byte MOV64i form.
func MoveImm(text *code.Buf, r amd64.Reg, val int64) {
	if imm32(val) {
		MOVi.RegImm32(text, r, int32(val))
	} else {
		MOV64i.RegImm64(text, r, val)
	}
}
