// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package arith

import (
	"bufio"
	"bytes"
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/LessUp/Encoding/internal/bitstream"
	"github.com/LessUp/Encoding/internal/model"
	"github.com/LessUp/Encoding/internal/wire"
)

// decoder mirrors the encoder's interval walk, steering by a 32-bit
// look-ahead window into the bit stream.
type decoder struct {
	bs   *bitstream.Reader
	low  uint64
	high uint64
	code uint64
}

func newDecoder(bs *bitstream.Reader) *decoder {
	d := &decoder{bs: bs, low: 0, high: full - 1}
	for i := 0; i < stateBits; i++ {
		d.code = d.code<<1 | uint64(bs.ReadBit())
	}
	return d
}

// decodeSymbol recovers the next symbol and renormalizes.
// This function panics if an error occurs.
func (d *decoder) decodeSymbol(cum model.CumTable) int {
	// A code word outside [low, high] cannot have been produced by the
	// encoder. The bounds also keep the products below overflow.
	errs.Assert(d.code >= d.low && d.code <= d.high, ErrCorrupt)

	rng := d.high - d.low + 1
	total := uint64(cum.Total())
	value := ((d.code-d.low+1)*total - 1) / rng
	sym := cum.Find(uint32(value))

	d.high = d.low + rng*uint64(cum[sym+1])/total - 1
	d.low = d.low + rng*uint64(cum[sym])/total

	for {
		if d.high < half {
			// High-order bit settled at 0; no bias change.
		} else if d.low >= half {
			d.low -= half
			d.high -= half
			d.code -= half
		} else if d.low >= quarter1 && d.high < quarter3 {
			d.low -= quarter1
			d.high -= quarter1
			d.code -= quarter1
		} else {
			return sym
		}
		d.low <<= 1
		d.high = d.high<<1 | 1
		d.code = d.code<<1 | uint64(d.bs.ReadBit())
	}
}

// Decode reads an arithmetic-encoded stream from src and writes the
// decoded bytes to dst. Decoding stops at the end-of-stream symbol.
func Decode(dst io.Writer, src io.Reader) (err error) {
	defer errs.Recover(&err)

	rd := bufio.NewReader(src)
	freq, err := readHeader(rd)
	if err != nil {
		return err
	}
	cum := freq.Cumulative()

	bw := bufio.NewWriter(dst)
	bs := bitstream.NewReader(rd)
	dec := newDecoder(bs)
	for {
		// A valid stream never needs more than the 32-bit look-ahead worth
		// of bits beyond its end; consuming more means the stream was cut.
		errs.Assert(bs.TailBits() <= stateBits, ErrTruncated)
		sym := dec.decodeSymbol(cum)
		if sym == model.EOS {
			break
		}
		errs.Panic(bw.WriteByte(byte(sym)))
	}
	return bw.Flush()
}

// DecodeBytes returns the decoding of an arithmetic-encoded input.
func DecodeBytes(input []byte) ([]byte, error) {
	bb := new(bytes.Buffer)
	if err := Decode(bb, bytes.NewReader(input)); err != nil {
		return nil, err
	}
	return bb.Bytes(), nil
}

// readHeader verifies the magic and reads the 257-entry frequency table.
// The table total must fit the coder's precision.
func readHeader(rd io.Reader) (model.FreqTable, error) {
	var m [len(magic)]byte
	if _, err := io.ReadFull(rd, m[:]); err != nil {
		return nil, ErrTruncated
	}
	if string(m[:]) != magic {
		return nil, ErrBadMagic
	}

	count, err := wire.ReadUint32(rd)
	if err != nil {
		return nil, ErrTruncated
	}
	if count != model.NumSymbols {
		return nil, ErrBadHeader
	}
	freq := make(model.FreqTable, model.NumSymbols)
	for i := range freq {
		if freq[i], err = wire.ReadUint32(rd); err != nil {
			return nil, ErrTruncated
		}
	}
	// Scaling clamps small counts up to 1, so a legitimate table can land
	// at most NumSymbols above MaxTotal.
	if freq.Total() > model.MaxTotal+model.NumSymbols {
		return nil, ErrBadHeader
	}
	return freq, nil
}
