// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wire

import (
	"bytes"
	"io"
	"testing"
)

func TestUint32(t *testing.T) {
	vectors := []struct {
		value uint32
		data  []byte
	}{
		{0x00000000, []byte{0x00, 0x00, 0x00, 0x00}},
		{0x00000001, []byte{0x01, 0x00, 0x00, 0x00}},
		{0x12345678, []byte{0x78, 0x56, 0x34, 0x12}},
		{0xffffffff, []byte{0xff, 0xff, 0xff, 0xff}},
	}

	for _, v := range vectors {
		bb := new(bytes.Buffer)
		if err := WriteUint32(bb, v.value); err != nil {
			t.Fatalf("unexpected WriteUint32 error: %v", err)
		}
		if !bytes.Equal(bb.Bytes(), v.data) {
			t.Errorf("WriteUint32(%#08x): got %x, want %x", v.value, bb.Bytes(), v.data)
		}

		got, err := ReadUint32(bytes.NewReader(v.data))
		if err != nil {
			t.Fatalf("unexpected ReadUint32 error: %v", err)
		}
		if got != v.value {
			t.Errorf("ReadUint32(%x): got %#08x, want %#08x", v.data, got, v.value)
		}
	}
}

func TestReadUint32EOF(t *testing.T) {
	// A zero-byte read is a clean boundary.
	if _, err := ReadUint32(bytes.NewReader(nil)); err != io.EOF {
		t.Errorf("empty read: got %v, want io.EOF", err)
	}

	// A partial read is a truncated field.
	for n := 1; n <= 3; n++ {
		data := make([]byte, n)
		if _, err := ReadUint32(bytes.NewReader(data)); err != io.ErrUnexpectedEOF {
			t.Errorf("%d-byte read: got %v, want io.ErrUnexpectedEOF", n, err)
		}
	}
}
