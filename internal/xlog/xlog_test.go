// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xlog

import (
	"bytes"
	"testing"
)

func TestNilLogger(t *testing.T) {
	var l Logger
	Print(l, "a")
	Printf(l, "%d", 1)
	Println(l, "b")
	if New(nil, "x: ") != nil {
		t.Fatalf("New(nil, %q) returned non-nil logger", "x: ")
	}
}

func TestPrintf(t *testing.T) {
	buf := new(bytes.Buffer)
	l := New(buf, "lzss: ")
	Printf(l, "header (%d, %d)", 12, 4)
	Print(l, "prime ", 19)
	const want = "lzss: header (12, 4)\nlzss: prime 19\n"
	if g := buf.String(); g != want {
		t.Fatalf("got %q; want %q", g, want)
	}
}
