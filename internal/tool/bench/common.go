// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of the library codecs against
// reference implementations with respect to encode speed, decode speed,
// and compression ratio.
package bench

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/dsnet/golib/strconv"
	"github.com/pkg/errors"

	"github.com/LessUp/Encoding/internal/testutil"
)

// Format identifies a compressed data format.
type Format int

const (
	FormatRLE Format = iota
	FormatHuffman
	FormatArith
	FormatRange
	FormatFlate
	FormatXZ
)

func (f Format) String() string {
	switch f {
	case FormatRLE:
		return "rle"
	case FormatHuffman:
		return "huffman"
	case FormatArith:
		return "arith"
	case FormatRange:
		return "range"
	case FormatFlate:
		return "flate"
	case FormatXZ:
		return "xz"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Codec is a one-shot encoder/decoder pair. The library codecs are
// one-shot by nature (the static model makes two passes over the input),
// so streaming reference implementations are adapted to this shape.
type Codec struct {
	Encode func([]byte) ([]byte, error)
	Decode func([]byte) ([]byte, error)
}

// Codecs holds every registered codec, keyed by format and then by
// implementation name.
var Codecs map[Format]map[string]Codec

// Register adds a codec implementation under the given format and name.
func Register(format Format, name string, codec Codec) {
	if Codecs == nil {
		Codecs = make(map[Format]map[string]Codec)
	}
	if Codecs[format] == nil {
		Codecs[format] = make(map[string]Codec)
	}
	Codecs[format][name] = codec
}

// RoundTrip encodes input with the named codec and decodes it back,
// returning the compressed size.
func RoundTrip(format Format, name string, input []byte) (int, error) {
	codec, ok := Codecs[format][name]
	if !ok {
		return 0, errors.Errorf("no codec registered as %v:%s", format, name)
	}
	enc, err := codec.Encode(input)
	if err != nil {
		return 0, errors.Wrapf(err, "%v:%s encode", format, name)
	}
	dec, err := codec.Decode(enc)
	if err != nil {
		return 0, errors.Wrapf(err, "%v:%s decode", format, name)
	}
	if len(dec) != len(input) {
		return 0, errors.Errorf("%v:%s round-trip length: got %d, want %d", format, name, len(dec), len(input))
	}
	for i := range dec {
		if dec[i] != input[i] {
			return 0, errors.Errorf("%v:%s round-trip mismatch at byte %d", format, name, i)
		}
	}
	return len(enc), nil
}

// TestFile is a named deterministic corpus.
type TestFile struct {
	Name string
	Data []byte
}

// TestData returns the corpora used by the round-trip test and the
// benchmark CLI. Every corpus is n bytes.
func TestData(n int) []TestFile {
	rand := testutil.NewRand(0)
	return []TestFile{
		{"zeros.bin", make([]byte, n)},
		{"random.bin", rand.Bytes(n)},
		{"twain.txt", testutil.ResizeData([]byte(twainQuote), n)},
		{"repeats.bin", repeats(rand, n)},
	}
}

const twainQuote = "It is by the goodness of God that in our country we have " +
	"those three unspeakably precious things: freedom of speech, freedom " +
	"of conscience, and the prudence never to practice either of them.\n"

// repeats generates runs of random bytes with random lengths, shaping the
// corpus toward the run-length coder without making it trivial for the
// entropy coders.
func repeats(rand *testutil.Rand, n int) []byte {
	b := make([]byte, n)
	for i := 0; i < n; {
		val := byte(rand.Int())
		cnt := 1 + rand.Intn(256)
		for j := 0; j < cnt && i < n; j++ {
			b[i] = val
			i++
		}
	}
	return b
}

// Result is a single benchmark measurement.
type Result struct {
	R float64 // Rate (MB/s) or ratio (rawSize/compSize)
	D float64 // Delta ratio relative to the primary codec
}

// BenchmarkEncoder benchmarks a single encoder on the given input data and
// reports the result.
func BenchmarkEncoder(input []byte, codec Codec) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := codec.Encode(input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkDecoder benchmarks a single decoder on the pre-encoded form of
// the given input data and reports the result.
func BenchmarkDecoder(input []byte, codec Codec) testing.BenchmarkResult {
	enc, err := codec.Encode(input)
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := codec.Decode(enc); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// FormatSize renders a byte count with a base-1024 SI prefix.
func FormatSize(n int) string {
	return strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
}

// ParseSize parses a size argument such as "1e5" or "64Ki".
func ParseSize(s string) (int, error) {
	v, err := strconv.ParsePrefix(s, strconv.AutoParse)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid size %q", s)
	}
	return int(v), nil
}
