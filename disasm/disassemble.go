// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm decodes generated machine code, primarily for debugging
// and for cross-checking the encoder in tests.
package disasm

import (
	"fmt"
	"io"

	"golang.org/x/arch/x86/x86asm"
)

// Disassemble the 64-bit instructions of a function body.  The text must
// consist of whole instructions.
func Disassemble(text []byte) (insns []x86asm.Inst, err error) {
	for addr := 0; addr < len(text); {
		insn, err := x86asm.Decode(text[addr:], 64)
		if err != nil {
			return insns, fmt.Errorf("decoding instruction at %#x: %w", addr, err)
		}

		insns = append(insns, insn)
		addr += insn.Len
	}

	return
}

// Fprint writes an assembly listing of the function body.
func Fprint(w io.Writer, text []byte) (err error) {
	for addr := 0; addr < len(text); {
		insn, err := x86asm.Decode(text[addr:], 64)
		if err != nil {
			return fmt.Errorf("decoding instruction at %#x: %w", addr, err)
		}

		_, err = fmt.Fprintf(w, "%6x:\t%s\n", addr, x86asm.GNUSyntax(insn, uint64(addr), nil))
		if err != nil {
			return err
		}

		addr += insn.Len
	}

	return
}
