// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package xlog provides a Logger interface and nil-safe print functions for
debug output that can be switched on and off at run time.

The codec writes a line for every record it emits or resolves. Formatting
those lines costs more than the codec itself, so the print functions do
nothing, not even the formatting, if the logger is nil. The interface is
satisfied by *log.Logger.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
)

// Logger is the interface a debug logger must support. The log.Logger type
// supports it.
type Logger interface {
	Output(calldepth int, s string) error
}

// New returns a logger writing to w with the given prefix and no time stamps.
// If w is nil the function returns nil, which disables output.
func New(w io.Writer, prefix string) Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, 0)
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
