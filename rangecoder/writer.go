// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rangecoder

import (
	"bufio"
	"bytes"
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/LessUp/Encoding/internal/model"
	"github.com/LessUp/Encoding/internal/wire"
)

type encoder struct {
	bw   *bufio.Writer
	low  uint32
	high uint32
}

func newEncoder(bw *bufio.Writer) *encoder {
	return &encoder{bw: bw, low: 0, high: 0xffffffff}
}

// encodeSymbol narrows [low, high] to sym's slice of the cumulative table
// and emits every byte the narrowing settles.
// This function panics if an error occurs.
func (e *encoder) encodeSymbol(sym int, cum model.CumTable) {
	rng := uint64(e.high) - uint64(e.low) + 1
	total := uint64(cum.Total())
	e.high = e.low + uint32(rng*uint64(cum[sym+1])/total-1)
	e.low = e.low + uint32(rng*uint64(cum[sym])/total)

	for e.low^e.high < renormThreshold {
		errs.Panic(e.bw.WriteByte(byte(e.low >> 24)))
		e.low <<= 8
		e.high = e.high<<8 | 0xff
	}
}

// finish emits the four bytes of low, which pin the final interval.
// This function panics if an error occurs.
func (e *encoder) finish() {
	for i := 0; i < 4; i++ {
		errs.Panic(e.bw.WriteByte(byte(e.low >> 24)))
		e.low <<= 8
	}
}

// Encode consumes src to completion and writes its range encoding to dst.
// The model is static, so the whole input is buffered to count frequencies
// before coding begins.
func Encode(dst io.Writer, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	return encode(dst, data)
}

// EncodeBytes returns the range encoding of input.
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

	enc := newEncoder(bw)
	for _, b := range data {
		enc.encodeSymbol(int(b), cum)
	}
	enc.encodeSymbol(model.EOS, cum)
	enc.finish()
	return bw.Flush()
}
