// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzss

import (
	"errors"
	"fmt"
	"io"

	"github.com/sim31/lzss/internal/xio"
)

// WindowReader streams bytes from a reader into a single buffer that is split
// into the history, the bytes already encoded, and the window, the bytes to be
// encoded next. The history is left of the window.
//
// The slices returned by History, Window and Current are valid only until the
// next call to Next, which may move or drop the bytes they refer to.
type WindowReader struct {
	r   io.Reader
	buf buffer
	// capacity of the history
	historyCap int
	// capacity of the window; it shrinks after the source reached EOF
	windowCap int
	// number of history bytes at the front of buf
	historyLen int
	// bytes read from r
	n int64
}

// NewWindowReader creates a window reader. It reads 2*windowCap bytes from r:
// the first half becomes the initial history, the second half the window. If
// r provides fewer bytes the error wraps ErrTruncated.
func NewWindowReader(r io.Reader, historyCap, windowCap int) (wr *WindowReader, err error) {
	if !(0 < windowCap && windowCap <= historyCap) {
		return nil, fmt.Errorf(
			"%w: window capacity %d must be in range [1,%d]",
			ErrConfig, windowCap, historyCap)
	}
	wr = &WindowReader{
		r:          xio.NewRetryReader(r),
		historyCap: historyCap,
		windowCap:  windowCap,
	}
	initBuffer(&wr.buf, historyCap+2*windowCap)
	k := 2 * windowCap
	n, err := wr.read(wr.buf.extend(k))
	if err != nil {
		return nil, err
	}
	if n < k {
		return nil, fmt.Errorf(
			"%w: input has %d bytes; need at least %d",
			ErrTruncated, n, k)
	}
	wr.historyLen = windowCap
	return wr, nil
}

// read fills p from the source. It returns fewer bytes than len(p) only if
// the source reached EOF.
func (wr *WindowReader) read(p []byte) (n int, err error) {
	n, err = io.ReadFull(wr.r, p)
	wr.n += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return n, nil
		}
		return n, &IOError{Op: "read", Err: err}
	}
	return n, nil
}

// Next moves n bytes from the window into the history and refills the window
// with up to n new bytes from the source. If the source provides fewer bytes
// the window capacity shrinks permanently by the shortfall. The oldest
// history bytes are dropped if the history would exceed its capacity. The
// argument n must not exceed the length of the window.
func (wr *WindowReader) Next(n int) error {
	if !(0 <= n && n <= wr.windowCap) {
		return fmt.Errorf("lzss: WindowReader.Next(%d) out of range [0,%d]",
			n, wr.windowCap)
	}
	if n == 0 {
		return nil
	}
	k, err := wr.read(wr.buf.extend(n))
	if k < n {
		wr.buf.truncate(n - k)
	}
	if err != nil {
		return err
	}
	wr.windowCap -= n - k

	gain := n
	if d := wr.historyCap - wr.historyLen; d < gain {
		gain = d
	}
	wr.historyLen += gain
	wr.buf.discard(n - gain)
	return nil
}

// History returns the current history.
func (wr *WindowReader) History() []byte {
	return wr.buf.Bytes()[:wr.historyLen]
}

// Window returns the current window.
func (wr *WindowReader) Window() []byte {
	return wr.buf.Bytes()[wr.historyLen:]
}

// Current returns the history and the window without advancing.
func (wr *WindowReader) Current() (history, window []byte) {
	p := wr.buf.Bytes()
	return p[:wr.historyLen], p[wr.historyLen:]
}

// Buffered returns the number of buffered bytes, the sum of the history and
// the window length.
func (wr *WindowReader) Buffered() int { return wr.buf.Len() }

// HistoryCap returns the capacity of the history.
func (wr *WindowReader) HistoryCap() int { return wr.historyCap }

// WindowCap returns the current capacity of the window. It equals the length
// of the window.
func (wr *WindowReader) WindowCap() int { return wr.windowCap }

// InputLen returns the number of bytes read from the source so far.
func (wr *WindowReader) InputLen() int64 { return wr.n }
