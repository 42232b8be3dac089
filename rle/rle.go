// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rle implements the run-length codec.
//
// The encoded stream is a bare sequence of records, each a little-endian
// uint32 run length (always nonzero) followed by the repeated byte. There
// is no magic and no header; a clean end of input between records
// terminates the stream, while a record cut short is truncation.
package rle

import (
	"bufio"
	"bytes"
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/LessUp/Encoding/internal/wire"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "rle: " + string(e) }

var (
	ErrCorrupt   error = Error("stream is corrupted")
	ErrTruncated error = Error("truncated stream")
)

// maxRunLength caps a single record; longer runs split into several.
const maxRunLength = ^uint32(0)

// Encode consumes src to completion and writes its run-length encoding to
// dst. Unlike the entropy codecs, encoding is a single streaming pass.
func Encode(dst io.Writer, src io.Reader) (err error) {
	defer errs.Recover(&err)

	rd := bufio.NewReader(src)
	bw := bufio.NewWriter(dst)

	first, rerr := rd.ReadByte()
	if rerr == io.EOF {
		return bw.Flush() // Empty input encodes to an empty stream
	}
	if rerr != nil {
		return rerr
	}

	current, count := first, uint32(1)
	for {
		b, rerr := rd.ReadByte()
		if rerr == io.EOF {
			writeRun(bw, count, current)
			break
		}
		if rerr != nil {
			return rerr
		}
		if b == current && count < maxRunLength {
			count++
		} else {
			writeRun(bw, count, current)
			current, count = b, 1
		}
	}
	return bw.Flush()
}

// EncodeBytes returns the run-length encoding of input.
func EncodeBytes(input []byte) ([]byte, error) {
	bb := new(bytes.Buffer)
	if err := Encode(bb, bytes.NewReader(input)); err != nil {
		return nil, err
	}
	return bb.Bytes(), nil
}

// writeRun emits a single (count, value) record.
// This function panics if an error occurs.
func writeRun(bw *bufio.Writer, count uint32, value byte) {
	errs.Panic(wire.WriteUint32(bw, count))
	errs.Panic(bw.WriteByte(value))
}

// Decode reads a run-length-encoded stream from src and expands it to dst.
func Decode(dst io.Writer, src io.Reader) (err error) {
	defer errs.Recover(&err)

	rd := bufio.NewReader(src)
	bw := bufio.NewWriter(dst)

	var buf [4096]byte
	for {
		count, rerr := wire.ReadUint32(rd)
		if rerr == io.EOF {
			break // Clean boundary between records
		}
		if rerr == io.ErrUnexpectedEOF {
			return ErrTruncated
		}
		if rerr != nil {
			return rerr
		}
		errs.Assert(count != 0, ErrCorrupt)

		value, rerr := rd.ReadByte()
		if rerr == io.EOF {
			return ErrTruncated
		}
		if rerr != nil {
			return rerr
		}

		// Expand the run through a fixed buffer rather than a byte at a
		// time.
		for i := range buf {
			buf[i] = value
		}
		for count > 0 {
			chunk := uint32(len(buf))
			if chunk > count {
				chunk = count
			}
			_, werr := bw.Write(buf[:chunk])
			errs.Panic(werr)
			count -= chunk
		}
	}
	return bw.Flush()
}

// DecodeBytes returns the decoding of a run-length-encoded input.
func DecodeBytes(input []byte) ([]byte, error) {
	bb := new(bytes.Buffer)
	if err := Decode(bb, bytes.NewReader(input)); err != nil {
		return nil, err
	}
	return bb.Bytes(), nil
}
