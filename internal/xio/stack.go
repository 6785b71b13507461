// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xio

import (
	"bufio"
	"errors"
	"io"
)

// CloserStack collects closers that must be closed in reverse order of their
// creation, for instance a file and the buffered writer on top of it.
type CloserStack struct {
	stack []io.Closer
}

// Push adds c to the top of the stack. It panics if c is nil.
func (s *CloserStack) Push(c io.Closer) {
	if c == nil {
		panic("xio: cannot push nil Closer onto stack")
	}
	s.stack = append(s.stack, c)
}

// Len returns the number of closers on the stack.
func (s *CloserStack) Len() int { return len(s.stack) }

// Close closes all closers starting at the top of the stack and combines the
// errors. All closers are called even if one of them fails. The stack is
// empty afterwards, so calling Close a second time is a no-op.
func (s *CloserStack) Close() error {
	var errs []error
	for k := len(s.stack) - 1; k >= 0; k-- {
		errs = append(errs, s.stack[k].Close())
	}
	s.stack = nil
	return errors.Join(errs...)
}

// FlushCloser turns a bufio.Writer into an io.Closer whose Close flushes the
// buffer.
type FlushCloser struct {
	*bufio.Writer
}

// Close flushes the buffered data.
func (f FlushCloser) Close() error { return f.Flush() }
