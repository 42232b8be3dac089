// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rangecoder implements a static-model range codec.
//
// The encoded stream starts with the magic "RCNC", followed by the scaled
// frequency table (a little-endian uint32 count of 257, then 257
// little-endian uint32 counts in symbol order, total at most 1<<24 + 257),
// followed by the coded body. Unlike the arithmetic codec, the range coder
// renormalizes a byte at a time: whenever the top bytes of low and high
// agree the settled byte is emitted, and the tail is flushed as the four
// bytes of low. The end-of-stream symbol is coded once, after the last
// data symbol.
package rangecoder

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "rangecoder: " + string(e) }

var (
	ErrCorrupt   error = Error("stream is corrupted")
	ErrTruncated error = Error("truncated stream")
	ErrBadMagic  error = Error("bad magic number")
	ErrBadHeader error = Error("bad frequency header")
)

const magic = "RCNC"

// renormThreshold is the byte-renormalization bound: while low and high
// share their top byte, (low XOR high) < 1<<24 and that byte is settled.
const renormThreshold = uint32(1) << 24
