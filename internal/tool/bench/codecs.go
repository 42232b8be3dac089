// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"compress/flate"
	"io"

	kpflate "github.com/klauspost/compress/flate"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"

	"github.com/LessUp/Encoding/arith"
	"github.com/LessUp/Encoding/huffman"
	"github.com/LessUp/Encoding/rangecoder"
	"github.com/LessUp/Encoding/rle"
)

func init() {
	Register(FormatRLE, "lu", Codec{rle.EncodeBytes, rle.DecodeBytes})
	Register(FormatHuffman, "lu", Codec{huffman.EncodeBytes, huffman.DecodeBytes})
	Register(FormatArith, "lu", Codec{arith.EncodeBytes, arith.DecodeBytes})
	Register(FormatRange, "lu", Codec{rangecoder.EncodeBytes, rangecoder.DecodeBytes})

	Register(FormatFlate, "std", Codec{
		Encode: func(input []byte) ([]byte, error) {
			bb := new(bytes.Buffer)
			zw, err := flate.NewWriter(bb, flate.DefaultCompression)
			if err != nil {
				return nil, errors.Wrap(err, "flate writer")
			}
			if _, err := zw.Write(input); err != nil {
				return nil, errors.Wrap(err, "flate encode")
			}
			if err := zw.Close(); err != nil {
				return nil, errors.Wrap(err, "flate close")
			}
			return bb.Bytes(), nil
		},
		Decode: func(input []byte) ([]byte, error) {
			zr := flate.NewReader(bytes.NewReader(input))
			defer zr.Close()
			out, err := io.ReadAll(zr)
			return out, errors.Wrap(err, "flate decode")
		},
	})

	Register(FormatFlate, "kp", Codec{
		Encode: func(input []byte) ([]byte, error) {
			bb := new(bytes.Buffer)
			zw, err := kpflate.NewWriter(bb, kpflate.DefaultCompression)
			if err != nil {
				return nil, errors.Wrap(err, "kp flate writer")
			}
			if _, err := zw.Write(input); err != nil {
				return nil, errors.Wrap(err, "kp flate encode")
			}
			if err := zw.Close(); err != nil {
				return nil, errors.Wrap(err, "kp flate close")
			}
			return bb.Bytes(), nil
		},
		Decode: func(input []byte) ([]byte, error) {
			zr := kpflate.NewReader(bytes.NewReader(input))
			defer zr.Close()
			out, err := io.ReadAll(zr)
			return out, errors.Wrap(err, "kp flate decode")
		},
	})

	Register(FormatXZ, "xz", Codec{
		Encode: func(input []byte) ([]byte, error) {
			bb := new(bytes.Buffer)
			zw, err := xz.NewWriter(bb)
			if err != nil {
				return nil, errors.Wrap(err, "xz writer")
			}
			if _, err := zw.Write(input); err != nil {
				return nil, errors.Wrap(err, "xz encode")
			}
			if err := zw.Close(); err != nil {
				return nil, errors.Wrap(err, "xz close")
			}
			return bb.Bytes(), nil
		},
		Decode: func(input []byte) ([]byte, error) {
			zr, err := xz.NewReader(bytes.NewReader(input))
			if err != nil {
				return nil, errors.Wrap(err, "xz reader")
			}
			out, err := io.ReadAll(zr)
			return out, errors.Wrap(err, "xz decode")
		},
	})
}
