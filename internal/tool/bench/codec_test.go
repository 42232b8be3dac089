// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"
	"testing"
)

// TestCodecs runs every registered codec over every generated corpus and
// verifies that the output round-trips. This assumes that the number of
// corpora and formats stays relatively constant.
func TestCodecs(t *testing.T) {
	for _, tf := range TestData(1 << 16) {
		tf := tf
		t.Run(fmt.Sprintf("File:%v", tf.Name), func(t *testing.T) {
			t.Parallel()
			for format, impls := range Codecs {
				for name := range impls {
					format, name := format, name
					t.Run(fmt.Sprintf("Codec:%v:%v", format, name), func(t *testing.T) {
						n, err := RoundTrip(format, name, tf.Data)
						if err != nil {
							t.Fatalf("unexpected error: %v", err)
						}
						if n == 0 {
							t.Fatalf("empty encoding for %d input bytes", len(tf.Data))
						}
					})
				}
			}
		})
	}
}

// TestCompressibility checks that the entropy coders actually compress a
// highly redundant corpus.
func TestCompressibility(t *testing.T) {
	input := make([]byte, 1<<16) // zeros
	for _, format := range []Format{FormatRLE, FormatHuffman, FormatArith, FormatRange} {
		n, err := RoundTrip(format, "lu", input)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", format, err)
		}
		if n >= len(input) {
			t.Errorf("%v: compressed size %d is not smaller than input %d", format, n, len(input))
		}
	}
}
