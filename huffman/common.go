// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a static Huffman codec.
//
// The encoded stream starts with the magic "HFMN", followed by the raw
// frequency table (a little-endian uint32 count of 257, then 257
// little-endian uint32 counts in symbol order), followed by the MSB-first
// code stream. The end-of-stream symbol is coded exactly once, after the
// last data symbol; the final partial byte is zero-padded.
//
// The model is static: the frequency table is computed in one pass over
// the input and transmitted verbatim, so decoding rebuilds the identical
// code tree from the header alone.
package huffman

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	ErrCorrupt   error = Error("stream is corrupted")
	ErrTruncated error = Error("truncated stream")
	ErrBadMagic  error = Error("bad magic number")
	ErrBadHeader error = Error("bad frequency header")
)

const magic = "HFMN"
