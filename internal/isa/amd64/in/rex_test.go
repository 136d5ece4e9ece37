// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"testing"

	"github.com/talc-lang/nback/amd64"
)

func TestRegRexR(t *testing.T) {
	for r := amd64.Reg(0); r <= amd64.Reg(7); r++ {
		if bit := regRexR(r); bit != 0 {
			t.Errorf("regRexR(%s) = 0x%x", r, bit)
		}
	}
	for r := amd64.Reg(8); r <= amd64.Reg(15); r++ {
		if bit := regRexR(r); bit != RexR {
			t.Errorf("regRexR(%s) = 0x%x", r, bit)
		}
	}
}

func TestRegRexX(t *testing.T) {
	for r := amd64.Reg(0); r <= amd64.Reg(7); r++ {
		if bit := regRexX(r); bit != 0 {
			t.Errorf("regRexX(%s) = 0x%x", r, bit)
		}
	}
	for r := amd64.Reg(8); r <= amd64.Reg(15); r++ {
		if bit := regRexX(r); bit != RexX {
			t.Errorf("regRexX(%s) = 0x%x", r, bit)
		}
	}
}

func TestRegRexB(t *testing.T) {
	for r := amd64.Reg(0); r <= amd64.Reg(7); r++ {
		if bit := regRexB(r); bit != 0 {
			t.Errorf("regRexB(%s) = 0x%x", r, bit)
		}
	}
	for r := amd64.Reg(8); r <= amd64.Reg(15); r++ {
		if bit := regRexB(r); bit != RexB {
			t.Errorf("regRexB(%s) = 0x%x", r, bit)
		}
	}
}
