// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package amd64

import (
	"math/bits"
	"strings"
)

// RegSet is a set of general-purpose registers.  The zero value is the empty
// set.
type RegSet uint16

// MakeRegSet containing the given registers.
func MakeRegSet(regs ...Reg) (set RegSet) {
	for _, r := range regs {
		set |= 1 << r
	}
	return
}

// Has tells whether the register is in the set.
func (set RegSet) Has(r Reg) bool {
	return set&(1<<r) != 0
}

// Len is the number of registers in the set.
func (set RegSet) Len() int {
	return bits.OnesCount16(uint16(set))
}

func (set RegSet) String() string {
	var names []string
	for r := Reg(0); r < NumRegs; r++ {
		if set.Has(r) {
			names = append(names, r.String())
		}
	}
	return "{" + strings.Join(names, " ") + "}"
}
