// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package lzss implements a streaming LZSS compressor and decompressor.
//
// The encoder slides a window over its input. For the bytes in the window it
// looks for a repetition in the history, the bytes encoded before, and writes
// either a reference to that repetition or a single literal byte. References
// store the absolute position in the history and the match length.
//
// The stream starts with a 9-bit header containing the width of the position
// field and the width of the length field. The first Parameters.WindowCap
// bytes of the input follow as plain bytes without record tags. The records
// come after them, each introduced by a tag bit: 1 for a literal, 0 for a
// reference. A stream that doesn't end on a byte boundary gets an extra
// literal tag before it is padded with zero bits.
//
// Compressing a file with default parameters:
//
//	var buf bytes.Buffer
//	stats, err := lzss.Encode(&buf, f, lzss.EncoderConfig{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d -> %d bytes\n", stats.Uncompressed, stats.Compressed)
//
// Decompressing it again:
//
//	if _, err = lzss.Decode(os.Stdout, &buf); err != nil {
//		log.Fatal(err)
//	}
//
// The encoder requires at least Parameters.MinInputLen bytes of input.
// Shorter input is rejected with an error wrapping ErrTruncated before
// anything is written.
package lzss
