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

// byteSource feeds the decoder one byte at a time, substituting zeros once
// the input is exhausted. The encoder emits exactly as many body bytes as
// the decoder consumes, so touching a fabricated zero byte means the
// stream was cut short.
type byteSource struct {
	rd  io.ByteReader
	eof bool
}

func (s *byteSource) readByte() byte {
	if s.eof {
		return 0
	}
	b, err := s.rd.ReadByte()
	if err != nil {
		s.eof = true
		return 0
	}
	return b
}

type decoder struct {
	src  *byteSource
	low  uint32
	high uint32
	code uint32
}

func newDecoder(src *byteSource) *decoder {
	d := &decoder{src: src, low: 0, high: 0xffffffff}
	for i := 0; i < 4; i++ {
		d.code = d.code<<8 | uint32(src.readByte())
	}
	return d
}

// decodeSymbol recovers the next symbol and renormalizes byte-wise.
// This function panics if an error occurs.
func (d *decoder) decodeSymbol(cum model.CumTable) int {
	// A code word outside [low, high] cannot have been produced by the
	// encoder.
	errs.Assert(d.code >= d.low && d.code <= d.high, ErrCorrupt)

	rng := uint64(d.high) - uint64(d.low) + 1
	total := uint64(cum.Total())
	value := (uint64(d.code-d.low)+1)*total - 1
	value /= rng
	sym := cum.Find(uint32(value))

	d.high = d.low + uint32(rng*uint64(cum[sym+1])/total-1)
	d.low = d.low + uint32(rng*uint64(cum[sym])/total)

	for d.low^d.high < renormThreshold {
		d.low <<= 8
		d.high = d.high<<8 | 0xff
		d.code = d.code<<8 | uint32(d.src.readByte())
	}
	return sym
}

// Decode reads a range-encoded stream from src and writes the decoded
// bytes to dst. Decoding stops at the end-of-stream symbol.
func Decode(dst io.Writer, src io.Reader) (err error) {
	defer errs.Recover(&err)

	rd := bufio.NewReader(src)
	freq, err := readHeader(rd)
	if err != nil {
		return err
	}
	cum := freq.Cumulative()

	bw := bufio.NewWriter(dst)
	dec := newDecoder(&byteSource{rd: rd})
	for {
		sym := dec.decodeSymbol(cum)
		// The body and the decoder's reads are in one-to-one
		// correspondence, so a fabricated byte can only mean truncation.
		errs.Assert(!dec.src.eof, ErrTruncated)
		if sym == model.EOS {
			break
		}
		errs.Panic(bw.WriteByte(byte(sym)))
	}
	return bw.Flush()
}

// DecodeBytes returns the decoding of a range-encoded input.
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
