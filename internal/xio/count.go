// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xio

import "io"

// CountWriter counts the bytes written through it. If W is nil the data is
// discarded and only counted.
type CountWriter struct {
	W io.Writer
	N int64
}

// Write writes p to the underlying writer and adds the number of bytes
// written to N.
func (w *CountWriter) Write(p []byte) (n int, err error) {
	if w.W == nil {
		n = len(p)
	} else {
		n, err = w.W.Write(p)
	}
	w.N += int64(n)
	return n, err
}

// Flush flushes the underlying writer if it supports flushing.
func (w *CountWriter) Flush() error {
	if f, ok := w.W.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// CountReader counts the bytes read through it.
type CountReader struct {
	R io.Reader
	N int64
}

// Read reads from the underlying reader and adds the number of bytes read to
// N.
func (r *CountReader) Read(p []byte) (n int, err error) {
	n, err = r.R.Read(p)
	r.N += int64(n)
	return n, err
}
