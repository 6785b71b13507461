// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package tuning

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/pierrec/xxHash/xxHash32"
	"github.com/sim31/lzss"
	"github.com/sim31/lzss/internal/xio"
)

// Result describes the performance of a codec on a set of files.
type Result struct {
	Codec string
	// number of files measured and skipped; lzss skips files that are
	// too short for the window
	Files   int
	Skipped int

	Uncompressed int64
	Compressed   int64

	CompressTime   time.Duration
	DecompressTime time.Duration
}

// Ratio returns the compressed size relative to the uncompressed size.
func (r Result) Ratio() float64 {
	if r.Uncompressed == 0 {
		return 0
	}
	return float64(r.Compressed) / float64(r.Uncompressed)
}

// mbPerSec returns the Megabytes (1 000 000 bytes) per second for n bytes
// processed in d.
func mbPerSec(n int64, d time.Duration) float64 {
	if n <= 0 || d <= 0 {
		return 0
	}
	return float64(n) / 1e6 / d.Seconds()
}

// CompressSpeed returns the compression speed in MB/s of uncompressed data.
func (r Result) CompressSpeed() float64 {
	return mbPerSec(r.Uncompressed, r.CompressTime)
}

// DecompressSpeed returns the decompression speed in MB/s of uncompressed
// data.
func (r Result) DecompressSpeed() float64 {
	return mbPerSec(r.Uncompressed, r.DecompressTime)
}

// Measure compresses and decompresses every file with the codec. The
// decompressed data is verified with an xxHash32 checksum of the original.
// Files rejected by the codec as too short are skipped.
func Measure(files []File, c Codec) (result Result, err error) {
	result.Codec = c.Name()
	buf := new(bytes.Buffer)
	for _, f := range files {
		buf.Reset()
		cw := &xio.CountWriter{W: buf}
		t := time.Now()
		err = c.Compress(cw, bytes.NewReader(f.Data))
		d := time.Since(t)
		if err != nil {
			if errors.Is(err, lzss.ErrTruncated) {
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("tuning: %s: compress %s: %w",
				c.Name(), f.Name, err)
		}
		result.CompressTime += d

		h := xxHash32.New(0)
		t = time.Now()
		err = c.Decompress(h, bytes.NewReader(buf.Bytes()))
		result.DecompressTime += time.Since(t)
		if err != nil {
			return result, fmt.Errorf("tuning: %s: decompress %s: %w",
				c.Name(), f.Name, err)
		}
		if g, w := h.Sum32(), xxHash32.Checksum(f.Data, 0); g != w {
			return result, fmt.Errorf(
				"tuning: %s: %s: checksum %08x; want %08x",
				c.Name(), f.Name, g, w)
		}

		result.Files++
		result.Uncompressed += int64(len(f.Data))
		result.Compressed += cw.N
	}
	return result, nil
}
