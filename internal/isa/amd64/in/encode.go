// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"encoding/binary"

	"github.com/talc-lang/nback/amd64"
	"github.com/talc-lang/nback/internal/code"
)

func bit(condition bool) (n uint8) {
	if condition {
		n = 1
	}
	return
}

// output is scratch space for one instruction.  The finished bytes are
// copied into the code buffer with a single Extend call, so the buffer
// grows at most once per instruction.
type output struct {
	buf    [16]byte
	offset uint8
}

func (o *output) len() int           { return int(o.offset) }
func (o *output) copy(target []byte) { copy(target, o.buf[:o.offset]) }

func (o *output) byte(b byte) {
	o.buf[o.offset] = b
	o.offset++
}

// word appends the two bytes of a big-endian word.
func (o *output) word(w uint16) {
	binary.BigEndian.PutUint16(o.buf[o.offset:], w)
	o.offset += 2
}

func (o *output) rex(wrxb rexWRXB) {
	o.buf[o.offset] = Rex | byte(wrxb)
	o.offset++
}

func (o *output) rexIf(wrxb rexWRXB) {
	o.buf[o.offset] = Rex | byte(wrxb)
	o.offset += bit(wrxb != 0)
}

func (o *output) mod(mod Mod, ro ModRO, rm ModRM) {
	o.buf[o.offset] = byte(mod) | byte(ro) | byte(rm)
	o.offset++
}

func (o *output) sib(s Scale, i Index, b Base) {
	o.buf[o.offset] = byte(s) | byte(i) | byte(b)
	o.offset++
}

func (o *output) int32(val int32) {
	binary.LittleEndian.PutUint32(o.buf[o.offset:], uint32(val))
	o.offset += 4
}

func (o *output) int64(val int64) {
	binary.LittleEndian.PutUint64(o.buf[o.offset:], uint64(val))
	o.offset += 8
}

// NP
//
// Opcode with no operands.

type NP byte

func (op NP) Simple(text *code.Buf) {
	text.PutByte(byte(op))
}

// O
//
// Register in the low bits of the opcode byte; no ModRM.  Operand size is
// fixed, so the REX prefix is emitted only for the high registers: an
// unnumbered register gets no prefix byte at all.

type O byte

func (op O) Reg(text *code.Buf, r amd64.Reg) {
	var o output
	o.rexIf(regRexB(r))
	o.byte(byte(op) + byte(r&7))
	o.copy(text.Extend(o.len()))
}

// M
//
// Opcode extension in the ModRO field; one register operand.

type M uint16 // opcode byte and ModRO byte

func (op M) Reg(text *code.Buf, r amd64.Reg) {
	var o output
	o.rex(RexW | regRexB(r))
	o.byte(byte(op >> 8))
	o.mod(ModReg, ModRO(op), regRM(r))
	o.copy(text.Extend(o.len()))
}

// RM (MR)

type RM byte    // opcode byte
type RM2 uint16 // two opcode bytes

func (op RM) RegReg(text *code.Buf, r, r2 amd64.Reg) {
	var o output
	o.rex(RexW | regRexR(r) | regRexB(r2))
	o.byte(byte(op))
	o.mod(ModReg, regRO(r), regRM(r2))
	o.copy(text.Extend(o.len()))
}

// RegStackDisp32 accesses [rsp+disp] through the SIB form.  The 32-bit
// displacement is always used, even when the offset would fit in the
// shorter encodings.
func (op RM) RegStackDisp32(text *code.Buf, r amd64.Reg, disp int32) {
	var o output
	o.rex(RexW | regRexR(r))
	o.byte(byte(op))
	o.mod(ModMemDisp32, regRO(r), ModRMSIB)
	o.sib(Scale0, noIndex, baseStack)
	o.int32(disp)
	o.copy(text.Extend(o.len()))
}

func (op RM2) RegReg(text *code.Buf, r, r2 amd64.Reg) {
	var o output
	o.rex(RexW | regRexR(r) | regRexB(r2))
	o.word(uint16(op))
	o.mod(ModReg, regRO(r), regRM(r2))
	o.copy(text.Extend(o.len()))
}

// MI
//
// Opcode extension in the ModRO field; register operand and 32-bit
// immediate which the processor sign-extends to 64 bits.

type MI uint16 // opcode byte and ModRO byte

func (op MI) RegImm32(text *code.Buf, r amd64.Reg, val int32) {
	var o output
	o.rex(RexW | regRexB(r))
	o.byte(byte(op >> 8))
	o.mod(ModReg, ModRO(op), regRM(r))
	o.int32(val)
	o.copy(text.Extend(o.len()))
}

// OI
//
// Register in the low bits of the opcode byte; 64-bit immediate.

type OI byte

func (op OI) RegImm64(text *code.Buf, r amd64.Reg, val int64) {
	var o output
	o.rex(RexW | regRexB(r))
	o.byte(byte(op) + byte(r&7))
	o.int64(val)
	o.copy(text.Extend(o.len()))
}
