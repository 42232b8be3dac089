// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package wire provides the little-endian integer helpers that all of the
// codec headers and the RLE record format are built from.
package wire

import (
	"encoding/binary"
	"io"
)

// WriteUint32 emits v as four bytes, low-order byte first.
func WriteUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// ReadUint32 consumes four bytes and reconstructs a little-endian uint32.
//
// The error result is three-way: nil on success, io.EOF if the source was
// already exhausted (a clean boundary), and io.ErrUnexpectedEOF if the
// source ended after 1..3 bytes (a truncated field). Any other source error
// is returned as is.
func ReadUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}
