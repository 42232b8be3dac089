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

// Encode consumes src to completion and writes its Huffman encoding to
// dst. The model is static, so the whole input is buffered to count
// frequencies before coding begins.
func Encode(dst io.Writer, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	return encode(dst, data)
}

// EncodeBytes returns the Huffman encoding of input.
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
	root := buildTree(freq)
	var codes [model.NumSymbols]code
	buildCodes(root, &codes, 0, 0)

	bw := bufio.NewWriter(dst)
	_, err = bw.WriteString(magic)
	errs.Panic(err)
	errs.Panic(wire.WriteUint32(bw, model.NumSymbols))
	for _, v := range freq {
		errs.Panic(wire.WriteUint32(bw, v))
	}

	bs := bitstream.NewWriter(bw)
	for _, b := range data {
		c := codes[b]
		errs.Panic(bs.WriteBits(c.val, c.nbits))
	}
	c := codes[model.EOS]
	errs.Panic(bs.WriteBits(c.val, c.nbits))
	errs.Panic(bs.Flush())
	return bw.Flush()
}
