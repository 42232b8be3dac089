// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool to compare performance between the library codecs and
// reference implementations.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark -formats rle,huffman,arith,range -sizes 1e4,1e5,1e6
//
//	BENCHMARK: huffman
//		lu:zeros.bin:<size>	enc <rate> MB/s	dec <rate> MB/s	ratio <ratio>
//		lu:random.bin:<size>	enc <rate> MB/s	dec <rate> MB/s	ratio <ratio>
//		...
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/LessUp/Encoding/internal/tool/bench"
)

var (
	formatFlag = flag.String("formats", "rle,huffman,arith,range,flate,xz", "comma-separated formats to benchmark")
	sizeFlag   = flag.String("sizes", "1e4,1e5,1e6", "comma-separated corpus sizes")
)

var nameToFormat = map[string]bench.Format{
	"rle":     bench.FormatRLE,
	"huffman": bench.FormatHuffman,
	"arith":   bench.FormatArith,
	"range":   bench.FormatRange,
	"flate":   bench.FormatFlate,
	"xz":      bench.FormatXZ,
}

func main() {
	flag.Parse()

	var formats []bench.Format
	for _, s := range strings.Split(*formatFlag, ",") {
		ft, ok := nameToFormat[s]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown format: %s\n", s)
			os.Exit(1)
		}
		formats = append(formats, ft)
	}
	var sizes []int
	for _, s := range strings.Split(*sizeFlag, ",") {
		n, err := bench.ParseSize(s)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		sizes = append(sizes, n)
	}

	for _, ft := range formats {
		impls := bench.Codecs[ft]
		if len(impls) == 0 {
			continue
		}
		fmt.Printf("BENCHMARK: %v\n", ft)
		for name, codec := range impls {
			for _, n := range sizes {
				for _, tf := range bench.TestData(n) {
					encRes := bench.BenchmarkEncoder(tf.Data, codec)
					decRes := bench.BenchmarkDecoder(tf.Data, codec)
					enc, err := codec.Encode(tf.Data)
					if err != nil {
						fmt.Fprintln(os.Stderr, err)
						os.Exit(1)
					}
					ratio := float64(len(tf.Data)) / float64(len(enc))
					fmt.Printf("\t%s:%s:%s\tenc %7.2f MB/s\tdec %7.2f MB/s\tratio %6.3f\n",
						name, tf.Name, bench.FormatSize(n),
						rate(encRes), rate(decRes), ratio)
				}
			}
		}
		fmt.Println()
	}
}

// rate converts a benchmark result into MB/s.
func rate(r testing.BenchmarkResult) float64 {
	if r.N == 0 {
		return 0
	}
	us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
	return float64(r.Bytes) / us
}
