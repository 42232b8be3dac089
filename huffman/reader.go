// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bufio"
	"bytes"
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/LessUp/Encoding/internal/bitstream"
	"github.com/LessUp/Encoding/internal/model"
	"github.com/LessUp/Encoding/internal/wire"
)

// Decode reads a Huffman-encoded stream from src and writes the decoded
// bytes to dst. Decoding stops at the end-of-stream symbol; trailing
// padding bits are not consumed.
func Decode(dst io.Writer, src io.Reader) (err error) {
	defer errs.Recover(&err)

	rd := bufio.NewReader(src)
	freq, err := readHeader(rd)
	if err != nil {
		return err
	}
	root := buildTree(freq)

	bw := bufio.NewWriter(dst)
	bs := bitstream.NewReader(rd)
	walker := root
	for {
		if bs.ReadBit() == 0 {
			walker = walker.left
		} else {
			walker = walker.right
		}
		errs.Assert(walker != nil, ErrCorrupt)
		if walker.isLeaf() {
			if walker.sym == model.EOS {
				// EOS reached through fabricated zero bits means the
				// real stream ended early.
				errs.Assert(!bs.EOF(), ErrTruncated)
				break
			}
			errs.Panic(bw.WriteByte(byte(walker.sym)))
			walker = root
		}
		errs.Assert(!(bs.EOF() && walker == root), ErrTruncated)
	}
	return bw.Flush()
}

// DecodeBytes returns the decoding of a Huffman-encoded input.
func DecodeBytes(input []byte) ([]byte, error) {
	bb := new(bytes.Buffer)
	if err := Decode(bb, bytes.NewReader(input)); err != nil {
		return nil, err
	}
	return bb.Bytes(), nil
}

// readHeader verifies the magic and reads the 257-entry frequency table.
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
	return freq, nil
}
