// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rangecoder

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/LessUp/Encoding/internal/model"
	"github.com/LessUp/Encoding/internal/testutil"
	"github.com/LessUp/Encoding/internal/wire"
)

func TestRoundTrip(t *testing.T) {
	vectors := []struct {
		name  string
		input []byte
	}{
		{"Empty", nil},
		{"Single", []byte{0x41}},
		{"Text", []byte("abracadabra")},
		{"Zeros", make([]byte, 1024)},
		{"Random", testutil.NewRand(3).Bytes(4096)},
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

func TestSingleByte(t *testing.T) {
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
	input := testutil.NewRand(4).Bytes(1 << 12)
	enc1, err := EncodeBytes(input)
	if err != nil {
		t.Fatalf("unexpected EncodeBytes error: %v", err)
	}
	enc2, err := EncodeBytes(input)
	if err != nil {
		t.Fatalf("unexpected EncodeBytes error: %v", err)
	}
	if !bytes.Equal(enc1, enc2) {
		t.Errorf("encodings differ across runs")
	}
}

func TestCompression(t *testing.T) {
	const headerLen = 4 + 4 + 4*model.NumSymbols
	enc, err := EncodeBytes(make([]byte, 1024))
	if err != nil {
		t.Fatalf("unexpected EncodeBytes error: %v", err)
	}
	if body := len(enc) - headerLen; body >= 64 {
		t.Errorf("compressed body is %d bytes, want under 64", body)
	}
}

func TestBadMagic(t *testing.T) {
	enc, err := EncodeBytes([]byte("hello"))
	if err != nil {
		t.Fatalf("unexpected EncodeBytes error: %v", err)
	}
	enc[0] = 'X'
	if _, err := DecodeBytes(enc); err != ErrBadMagic {
		t.Errorf("got %v, want %v", err, ErrBadMagic)
	}
}

func TestBadHeader(t *testing.T) {
	bb := new(bytes.Buffer)
	bb.WriteString(magic)
	wire.WriteUint32(bb, 258)
	if _, err := DecodeBytes(bb.Bytes()); err != ErrBadHeader {
		t.Errorf("got %v, want %v", err, ErrBadHeader)
	}
}

func TestTruncation(t *testing.T) {
	// The decoder consumes exactly the bytes the encoder wrote, so every
	// proper prefix is rejected, including one that only drops trailing
	// zero bytes of the tail.
	enc, err := EncodeBytes([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("unexpected EncodeBytes error: %v", err)
	}
	for n := 0; n < len(enc); n++ {
		if _, err := DecodeBytes(enc[:n]); err == nil {
			t.Errorf("truncation to %d bytes: decode unexpectedly succeeded", n)
		}
	}
}

func TestSinkFailure(t *testing.T) {
	errSink := errors.New("sink failed")
	enc, err := EncodeBytes([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("unexpected EncodeBytes error: %v", err)
	}

	bw := &testutil.BuggyWriter{W: io.Discard, N: 2, Err: errSink}
	if err := Decode(bw, bytes.NewReader(enc)); err != errSink {
		t.Errorf("got %v, want %v", err, errSink)
	}

	bw = &testutil.BuggyWriter{W: io.Discard, N: 2, Err: errSink}
	if err := Encode(bw, bytes.NewReader([]byte("abracadabra"))); err != errSink {
		t.Errorf("got %v, want %v", err, errSink)
	}
}
