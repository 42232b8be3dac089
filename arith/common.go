// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package arith implements a static-model arithmetic codec.
//
// The encoded stream starts with the magic "AENC", followed by the scaled
// frequency table (a little-endian uint32 count of 257, then 257
// little-endian uint32 counts in symbol order, total at most 1<<24 + 257),
// followed by the MSB-first bit stream. The coder narrows a 32-bit
// interval [low, high], emitting bits as the top of the interval settles;
// the end-of-stream symbol is coded once after the last data symbol, and
// the finish step disambiguates the final interval.
package arith

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "arith: " + string(e) }

var (
	ErrCorrupt   error = Error("stream is corrupted")
	ErrTruncated error = Error("truncated stream")
	ErrBadMagic  error = Error("bad magic number")
	ErrBadHeader error = Error("bad frequency header")
)

const magic = "AENC"

// Interval constants. State is 32 bits wide, held in uint64 containers so
// that range*total products and the shifted bounds never overflow.
const (
	stateBits = 32
	full      = uint64(1) << stateBits
	half      = full >> 1
	quarter1  = half >> 1
	quarter3  = quarter1 * 3
)
