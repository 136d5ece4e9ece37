// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package in encodes x86-64 instructions.
package in

import (
	"github.com/talc-lang/nback/amd64"
)

type rexWRXB byte

const (
	Rex  = byte(64)
	RexW = rexWRXB(8) // 64-bit operand size
	RexR = rexWRXB(4) // extension of the ModRM reg field
	RexX = rexWRXB(2) // extension of the SIB index field
	RexB = rexWRXB(1) // extension of the ModRM r/m field, SIB base field, or Opcode reg field
)

func regRexR(r amd64.Reg) rexWRXB { return rexWRXB(r>>3) << 2 } // 8..15 => 4
func regRexX(r amd64.Reg) rexWRXB { return rexWRXB(r>>3) << 1 } // 8..15 => 2
func regRexB(r amd64.Reg) rexWRXB { return rexWRXB(r>>3) << 0 } // 8..15 => 1
