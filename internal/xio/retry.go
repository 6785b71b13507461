// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package xio provides I/O helpers shared by the codec and the commands: an
// interrupt-tolerant reader, byte counters and a stack of closers that are
// closed in reverse order.
package xio

import (
	"errors"
	"io"
	"syscall"
)

// maxEmptyReads limits the number of consecutive reads that return neither
// data nor an error. The value is the one used by bufio.
const maxEmptyReads = 100

// RetryReader retries reads that have been interrupted by a signal and reads
// that returned no data and no error. All other errors, including io.EOF, are
// passed to the caller.
type RetryReader struct {
	R io.Reader
}

// NewRetryReader wraps r. If r is already a RetryReader it is returned as is.
func NewRetryReader(r io.Reader) *RetryReader {
	if rr, ok := r.(*RetryReader); ok {
		return rr
	}
	return &RetryReader{R: r}
}

// Read reads into p. An interrupted read is repeated without limit; after
// maxEmptyReads consecutive empty reads io.ErrNoProgress is returned.
func (r *RetryReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	for empty := 0; empty < maxEmptyReads; {
		n, err = r.R.Read(p)
		if errors.Is(err, syscall.EINTR) {
			if n > 0 {
				return n, nil
			}
			continue
		}
		if n > 0 || err != nil {
			return n, err
		}
		empty++
	}
	return 0, io.ErrNoProgress
}
