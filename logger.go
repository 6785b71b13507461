// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzss

import (
	"io"

	"github.com/sim31/lzss/internal/xlog"
)

// debug stores a reference to a logger. It may contain nil for no output.
var debug xlog.Logger

// SetDebugOutput directs debug output of the encoder and decoder to w. The
// output contains the header, the prime length and every record. A nil
// writer switches the output off, which is the default. The function must
// not be called while streams are encoded or decoded.
func SetDebugOutput(w io.Writer) {
	debug = xlog.New(w, "lzss: ")
}
