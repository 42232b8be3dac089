// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitstream provides the MSB-first bit layer shared by the entropy
// codecs. The first bit written occupies bit 7 of the first byte emitted,
// and Flush zero-pads any final partial byte on the low side.
//
// The packing itself is delegated to github.com/icza/bitio, which uses the
// same highest-bits-first order. This package adds the termination contract
// the codecs rely on: a Reader never fails, it simply returns 0 for every
// bit past the end of the source and records that it did so.
package bitstream

import (
	"io"

	"github.com/icza/bitio"
)

// Writer packs bits MSB-first into an io.Writer.
type Writer struct {
	bw *bitio.Writer
}

// NewWriter creates a new Writer.
// For efficiency, w should be buffered; bytes are emitted one at a time.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// WriteBit writes the low bit of b.
func (w *Writer) WriteBit(b int) error {
	return w.bw.WriteBool(b&1 == 1)
}

// WriteBits writes the n lowest bits of v, most-significant first.
func (w *Writer) WriteBits(v uint64, n uint8) error {
	return w.bw.WriteBits(v, n)
}

// Flush emits any buffered partial byte, padded with 0 bits on the low
// side. It is a no-op at a byte boundary.
func (w *Writer) Flush() error {
	_, err := w.bw.Align()
	return err
}

// Reader unpacks bits MSB-first from an io.Reader.
//
// Termination is signaled in-band by the codecs (the EOS symbol), so the
// Reader never reports a read failure. Once the source is exhausted every
// subsequent ReadBit returns 0; EOF reports whether that has happened, and
// TailBits counts how many fabricated zero bits were handed out.
type Reader struct {
	br   *bitio.Reader
	eof  bool
	tail int
}

// NewReader creates a new Reader.
// For efficiency, r should be buffered; bytes are consumed one at a time.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// ReadBit returns the next bit, or 0 if the source is exhausted.
func (r *Reader) ReadBit() int {
	if r.eof {
		r.tail++
		return 0
	}
	b, err := r.br.ReadBool()
	if err != nil {
		r.eof = true
		r.tail++
		return 0
	}
	if b {
		return 1
	}
	return 0
}

// EOF reports whether the source has ever been observed to be exhausted.
func (r *Reader) EOF() bool { return r.eof }

// TailBits reports the number of zero bits returned past the end of the
// source.
func (r *Reader) TailBits() int { return r.tail }
