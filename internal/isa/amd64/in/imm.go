// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

// imm32 tells whether the value survives a round-trip through a
// sign-extended 32-bit immediate.  The int32 bounds themselves are in range.
func imm32(val int64) bool {
	return int64(int32(val)) == val
}
