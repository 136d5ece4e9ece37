// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"github.com/talc-lang/nback/amd64"
)

type (
	Mod   byte
	ModRO byte
	ModRM byte
)

const (
	ModMem       = Mod(0)
	ModMemDisp8  = Mod(64)
	ModMemDisp32 = Mod(128)
	ModReg       = Mod(192)
)

const (
	ModRMSIB = ModRM(4)
)

type (
	Scale byte
	Index byte
	Base  byte
)

const (
	Scale0 = Scale(0 << 6)

	noIndex = Index(4 << 3)

	baseStack = Base(amd64.RSP & 7)
)

func regRO(r amd64.Reg) ModRO { return ModRO((r & 7) << 3) }
func regRM(r amd64.Reg) ModRM { return ModRM(r & 7) }
