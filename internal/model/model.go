// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package model implements the static symbol model shared by the entropy
// codecs: a frequency table over 257 symbols and its cumulative form.
//
// Symbols 0..255 are literal bytes; symbol 256 is the end-of-stream marker
// (EOS), which always has a frequency of at least 1 so that every stream
// can be terminated. Tables are immutable once built and may be shared
// across coder instances.
package model

const (
	// NumSymbols is the size of the coding alphabet: 256 literals plus EOS.
	NumSymbols = 257

	// EOS is the end-of-stream symbol, emitted exactly once per stream.
	EOS = NumSymbols - 1

	// MaxTotal bounds the cumulative total for the interval coders so that
	// range*total products fit comfortably in 64 bits.
	MaxTotal = 1 << 24
)

// FreqTable holds one frequency count per symbol.
type FreqTable []uint32

// CountFrequencies scans data and returns its frequency table with the EOS
// frequency forced to 1.
func CountFrequencies(data []byte) FreqTable {
	freq := make(FreqTable, NumSymbols)
	for _, b := range data {
		freq[b]++
	}
	freq[EOS] = 1
	return freq
}

// Total returns the sum of all frequencies.
func (f FreqTable) Total() uint64 {
	var total uint64
	for _, v := range f {
		total += uint64(v)
	}
	return total
}

// Scale caps the total frequency at MaxTotal for the interval coders.
//
// Every symbol with a positive count keeps a positive count, so any byte
// present in the input (and EOS) remains representable; the up-to-1 clamp
// means the scaled total can exceed MaxTotal by at most NumSymbols. A zero
// total is replaced by an all-ones table.
func (f FreqTable) Scale() {
	total := f.Total()
	if total == 0 {
		for i := range f {
			f[i] = 1
		}
		return
	}
	if total <= MaxTotal {
		return
	}

	var newTotal uint64
	for i, v := range f {
		if v == 0 {
			continue
		}
		scaled := uint64(v) * MaxTotal / total
		if scaled == 0 {
			scaled = 1
		}
		f[i] = uint32(scaled)
		newTotal += scaled
	}
	if newTotal == 0 {
		base := uint32(MaxTotal / len(f))
		if base == 0 {
			base = 1
		}
		for i := range f {
			f[i] = base
		}
	}
}

// CumTable is the prefix sum of a FreqTable. Entry i is the sum of the
// frequencies of symbols 0..i-1, so entry 0 is 0 and the final entry is
// the total.
type CumTable []uint32

// Cumulative builds the cumulative table for f. A zero total degenerates
// to the identity table (0, 1, 2, ..., NumSymbols) so that every symbol
// still owns a non-empty interval.
func (f FreqTable) Cumulative() CumTable {
	cum := make(CumTable, len(f)+1)
	for i, v := range f {
		cum[i+1] = cum[i] + v
	}
	if cum[len(cum)-1] == 0 {
		for i := range f {
			cum[i+1] = uint32(i + 1)
		}
	}
	return cum
}

// Total returns the cumulative total.
func (c CumTable) Total() uint32 { return c[len(c)-1] }

// Find returns the largest symbol s with c[s] <= value.
// The caller must ensure that value < c.Total().
func (c CumTable) Find(value uint32) int {
	lo, hi := 0, len(c)-1
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		if c[mid] > value {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}
