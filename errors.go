// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzss

import "errors"

// Error classes of the codec. Returned errors wrap them and carry the details;
// test for them with errors.Is.
var (
	// ErrConfig marks parameters out of range, either supplied by the
	// caller or found in a stream header.
	ErrConfig = errors.New("lzss: invalid configuration")
	// ErrTruncated marks input that ends before the stream may end: the
	// encoder input is shorter than twice the window, or the decoder
	// input ends inside the header, the prime or a reference.
	ErrTruncated = errors.New("lzss: truncated input")
	// ErrCorrupt marks a reference pointing outside the history.
	ErrCorrupt = errors.New("lzss: corrupt stream")
)

// IOError reports a failure of the byte source or sink. EOF conditions are
// never reported as IOError.
type IOError struct {
	Op  string
	Err error
}

// Error returns the error message.
func (e *IOError) Error() string {
	return "lzss: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error { return e.Err }
