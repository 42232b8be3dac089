// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LessUp/Encoding/internal/model"
	"github.com/LessUp/Encoding/internal/testutil"
	"github.com/LessUp/Encoding/internal/wire"
)

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestRoundTrip(t *testing.T) {
	vectors := []struct {
		name  string
		input []byte
	}{
		{"Empty", nil},
		{"Single", []byte{0x41}},
		{"AllBytes", allBytes()},
		{"Text", []byte("abracadabra")},
		{"Zeros", make([]byte, 1024)},
		{"Random", testutil.NewRand(0).Bytes(4096)},
		{"Skewed", testutil.ResizeData([]byte("the quick brown fox jumps over the lazy dog\n"), 1<<14)},
	}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			enc, err := EncodeBytes(v.input)
			if err != nil {
				t.Fatalf("unexpected EncodeBytes error: %v", err)
			}
			dec, err := DecodeBytes(enc)
			if err != nil {
				t.Fatalf("unexpected DecodeBytes error: %v", err)
			}
			if !bytes.Equal(dec, v.input) {
				t.Errorf("round-trip mismatch: got %d bytes, want %d bytes", len(dec), len(v.input))
			}
		})
	}
}

func TestGoldenEmpty(t *testing.T) {
	// An empty input still codes the EOS symbol: the header carries a lone
	// EOS frequency and the body is the one-bit code "0" padded to a byte.
	want := new(bytes.Buffer)
	want.WriteString(magic)
	wire.WriteUint32(want, model.NumSymbols)
	for s := 0; s < model.NumSymbols; s++ {
		if s == model.EOS {
			wire.WriteUint32(want, 1)
		} else {
			wire.WriteUint32(want, 0)
		}
	}
	want.WriteByte(0x00)

	got, err := EncodeBytes(nil)
	assert.Nil(t, err)
	assert.Equal(t, want.Bytes(), got)

	dec, err := DecodeBytes(got)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(dec))
}

func TestSingleSymbol(t *testing.T) {
	// EOS is always counted, so a one-byte input builds a two-leaf tree and
	// both the literal and EOS get codes of length >= 1.
	for b := 0; b < 256; b++ {
		input := []byte{byte(b)}
		enc, err := EncodeBytes(input)
		if err != nil {
			t.Fatalf("byte %#02x: unexpected EncodeBytes error: %v", b, err)
		}
		dec, err := DecodeBytes(enc)
		if err != nil {
			t.Fatalf("byte %#02x: unexpected DecodeBytes error: %v", b, err)
		}
		if !bytes.Equal(dec, input) {
			t.Fatalf("byte %#02x: round-trip mismatch: got %x", b, dec)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Heavy frequency ties exercise the symbol-index tie-break.
	input := []byte("aabbccddeeffgghhiijj")
	enc1, err := EncodeBytes(input)
	assert.Nil(t, err)
	enc2, err := EncodeBytes(input)
	assert.Nil(t, err)
	assert.Equal(t, enc1, enc2)
}

func TestBadMagic(t *testing.T) {
	enc, err := EncodeBytes([]byte("hello"))
	assert.Nil(t, err)
	enc[3] = 'X'
	_, err = DecodeBytes(enc)
	assert.Equal(t, ErrBadMagic, err)
}

func TestBadHeader(t *testing.T) {
	bb := new(bytes.Buffer)
	bb.WriteString(magic)
	wire.WriteUint32(bb, 42) // count must be 257
	_, err := DecodeBytes(bb.Bytes())
	assert.Equal(t, ErrBadHeader, err)
}

func TestCorrupt(t *testing.T) {
	// An all-zero table degenerates to a lone EOS leaf; the first descent
	// finds no child.
	bb := new(bytes.Buffer)
	bb.WriteString(magic)
	wire.WriteUint32(bb, model.NumSymbols)
	for s := 0; s < model.NumSymbols; s++ {
		wire.WriteUint32(bb, 0)
	}
	bb.WriteByte(0x00)
	_, err := DecodeBytes(bb.Bytes())
	assert.Equal(t, ErrCorrupt, err)
}

func TestTruncation(t *testing.T) {
	enc, err := EncodeBytes([]byte("abracadabra"))
	assert.Nil(t, err)

	// Every proper prefix must fail to decode: header cuts are detected by
	// the reader, and a shortened bit stream can complete EOS only through
	// fabricated bits.
	for n := 0; n < len(enc); n++ {
		if _, err := DecodeBytes(enc[:n]); err == nil {
			t.Errorf("truncation to %d bytes: decode unexpectedly succeeded", n)
		}
	}
}

func TestSinkFailure(t *testing.T) {
	errSink := errors.New("sink failed")
	enc, err := EncodeBytes([]byte("abracadabra"))
	assert.Nil(t, err)

	bw := &testutil.BuggyWriter{W: io.Discard, N: 2, Err: errSink}
	err = Decode(bw, bytes.NewReader(enc))
	assert.Equal(t, errSink, err)

	bw = &testutil.BuggyWriter{W: io.Discard, N: 2, Err: errSink}
	err = Encode(bw, bytes.NewReader([]byte("abracadabra")))
	assert.Equal(t, errSink, err)
}
