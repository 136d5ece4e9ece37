// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code

// Buffer of machine code.  The encoder only appends; it never reads bytes
// back and never retains the buffer between calls.
type Buffer interface {
	Bytes() []byte
	Extend(n int) []byte
	PutByte(byte)
	PutUint32(uint32) // Little-endian byte order.
}

// Buf is an optimized Buffer.  The cached length (Addr) avoids interface
// function calls.
type Buf struct {
	Buffer
	Addr int32
}

func (text *Buf) Extend(n int) (b []byte) {
	b = text.Buffer.Extend(n)
	text.Addr += int32(n)
	return
}

func (text *Buf) PutByte(x byte) {
	text.Buffer.PutByte(x)
	text.Addr++
}

func (text *Buf) PutUint32(x uint32) {
	text.Buffer.PutUint32(x)
	text.Addr += 4
}
