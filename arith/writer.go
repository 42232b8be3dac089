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

// encoder narrows the coding interval one symbol at a time, emitting bits
// as the top of the interval settles. Straddle states are remembered in
// pending and resolved by the next settled bit.
type encoder struct {
	bw      *bitstream.Writer
	low     uint64
	high    uint64
	pending int
}

func newEncoder(bw *bitstream.Writer) *encoder {
	return &encoder{bw: bw, low: 0, high: full - 1}
}

// emit writes bit followed by any pending complementary bits.
// This function panics if an error occurs.
func (e *encoder) emit(bit int) {
	errs.Panic(e.bw.WriteBit(bit))
	for ; e.pending > 0; e.pending-- {
		errs.Panic(e.bw.WriteBit(bit ^ 1))
	}
}

// encodeSymbol narrows [low, high] to sym's slice of the cumulative table
// and renormalizes. This function panics if an error occurs.
func (e *encoder) encodeSymbol(sym int, cum model.CumTable) {
	rng := e.high - e.low + 1
	total := uint64(cum.Total())
	e.high = e.low + rng*uint64(cum[sym+1])/total - 1
	e.low = e.low + rng*uint64(cum[sym])/total

	for {
		if e.high < half {
			e.emit(0)
		} else if e.low >= half {
			e.emit(1)
			e.low -= half
			e.high -= half
		} else if e.low >= quarter1 && e.high < quarter3 {
			e.pending++
			e.low -= quarter1
			e.high -= quarter1
		} else {
			return
		}
		e.low <<= 1
		e.high = e.high<<1 | 1
	}
}

// finish disambiguates the final interval and flushes the bit stream.
// This function panics if an error occurs.
func (e *encoder) finish() {
	e.pending++
	if e.low < quarter1 {
		e.emit(0)
	} else {
		e.emit(1)
	}
	errs.Panic(e.bw.Flush())
}

// Encode consumes src to completion and writes its arithmetic encoding to
// dst. The model is static, so the whole input is buffered to count
// frequencies before coding begins.
func Encode(dst io.Writer, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	return encode(dst, data)
}

// EncodeBytes returns the arithmetic encoding of input.
func EncodeBytes(input []byte) ([]byte, error) {
	bb := new(bytes.Buffer)
	if err := encode(bb, input); err != nil {
		return nil, err
	}
	return bb.Bytes(), nil
}

func encode(dst io.Writer, data []byte) (err error) {
	defer errs.Recover(&err)

	freq := model.CountFrequencies(data)
	freq.Scale()
	cum := freq.Cumulative()

	bw := bufio.NewWriter(dst)
	_, err = bw.WriteString(magic)
	errs.Panic(err)
	errs.Panic(wire.WriteUint32(bw, model.NumSymbols))
	for _, v := range freq {
		errs.Panic(wire.WriteUint32(bw, v))
	}

	enc := newEncoder(bitstream.NewWriter(bw))
	for _, b := range data {
		enc.encodeSymbol(int(b), cum)
	}
	enc.encodeSymbol(model.EOS, cum)
	enc.finish()
	return bw.Flush()
}
