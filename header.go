// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzss

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Widths of the header fields and the record tag.
const (
	historyBitsFieldLen  = 5
	matchLenBitsFieldLen = 4
	headerLen            = historyBitsFieldLen + matchLenBitsFieldLen
)

// Record tags. The tag is a single bit; bitio represents it as bool.
const (
	tagLiteral   = true
	tagReference = false
)

// literalLen is the number of bits of a literal record.
const literalLen = 1 + 8

// writeHeader writes the stream header.
func writeHeader(bw *bitio.Writer, p Parameters) error {
	if err := bw.WriteBits(uint64(p.HistoryBits), historyBitsFieldLen); err != nil {
		return err
	}
	return bw.WriteBits(uint64(p.MatchLenBits), matchLenBitsFieldLen)
}

// readHeader reads the stream header and verifies the parameters.
func readHeader(br *bitio.Reader) (p Parameters, err error) {
	h, err := br.ReadBits(historyBitsFieldLen)
	if err != nil {
		return p, readErr("header", err)
	}
	m, err := br.ReadBits(matchLenBitsFieldLen)
	if err != nil {
		return p, readErr("header", err)
	}
	p = Parameters{HistoryBits: int(h), MatchLenBits: int(m)}
	if err = p.Verify(); err != nil {
		return Parameters{}, fmt.Errorf("invalid header: %w", err)
	}
	return p, nil
}

// ReadHeader reads the header at the start of an LZSS stream and returns the
// parameters stored in it. The function consumes at least the first two bytes
// of r.
func ReadHeader(r io.Reader) (p Parameters, err error) {
	return readHeader(bitio.NewReader(r))
}

// isEOF reports whether err signals the end of the input.
func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// readErr converts an error returned while reading the given part of the
// stream. End of input becomes ErrTruncated, everything else an IOError.
func readErr(part string, err error) error {
	if isEOF(err) {
		return fmt.Errorf("%w: end of input in %s", ErrTruncated, part)
	}
	return &IOError{Op: "read " + part, Err: err}
}
