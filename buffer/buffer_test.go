// Copyright (c) 2024 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"bytes"
	"testing"
)

func TestDynamic(t *testing.T) {
	d := NewDynamic(nil)

	d.PutByte(0x48)
	d.PutUint32(0x12345678)
	copy(d.Extend(3), []byte{1, 2, 3})

	if d.Len() != 8 {
		t.Error(d.Len())
	}
	if !bytes.Equal(d.Bytes(), []byte{0x48, 0x78, 0x56, 0x34, 0x12, 1, 2, 3}) {
		t.Errorf("%x", d.Bytes())
	}
}

func TestDynamicGrowth(t *testing.T) {
	d := NewDynamicHint(nil, 16)

	for i := 0; i < 1000; i++ {
		d.PutByte(byte(i))
	}
	if d.Len() != 1000 {
		t.Error(d.Len())
	}
	i := 999
	if d.Bytes()[i] != byte(i) {
		t.Error(d.Bytes()[i])
	}
}

func TestStatic(t *testing.T) {
	s := NewStatic(make([]byte, 0, 4))

	s.PutUint32(0xdeadbeef)
	if s.Len() != 4 {
		t.Error(s.Len())
	}

	defer func() {
		if recover() == nil {
			t.Error("full static buffer did not panic")
		}
	}()
	s.PutByte(0)
}

func TestLimited(t *testing.T) {
	l := NewLimited(nil, 2)

	l.PutByte(1)
	l.PutByte(2)

	defer func() {
		if recover() == nil {
			t.Error("full limited buffer did not panic")
		}
	}()
	l.PutByte(3)
}
