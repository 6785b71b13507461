// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package xio

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"
)

// flakyReader returns EINTR and empty reads before every chunk of data.
type flakyReader struct {
	r     io.Reader
	calls int
}

func (f *flakyReader) Read(p []byte) (n int, err error) {
	f.calls++
	switch f.calls % 3 {
	case 1:
		return 0, syscall.EINTR
	case 2:
		return 0, nil
	}
	if len(p) > 2 {
		p = p[:2]
	}
	return f.r.Read(p)
}

func TestRetryReader(t *testing.T) {
	const s = "interrupted reads must be retried"
	r := NewRetryReader(&flakyReader{r: strings.NewReader(s)})
	if NewRetryReader(r) != r {
		t.Fatalf("NewRetryReader wrapped a RetryReader twice")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	if g := string(data); g != s {
		t.Fatalf("got %q; want %q", g, s)
	}
}

type emptyReader struct{}

func (emptyReader) Read(p []byte) (int, error) { return 0, nil }

func TestRetryReaderNoProgress(t *testing.T) {
	r := NewRetryReader(emptyReader{})
	_, err := r.Read(make([]byte, 4))
	if err != io.ErrNoProgress {
		t.Fatalf("r.Read returned error %v; want %v", err,
			io.ErrNoProgress)
	}
}

func TestRetryReaderError(t *testing.T) {
	errBroken := errors.New("broken source")
	r := NewRetryReader(io.MultiReader(strings.NewReader("ab"),
		&errReader{errBroken}))
	_, err := io.ReadAll(r)
	if !errors.Is(err, errBroken) {
		t.Fatalf("io.ReadAll error %v; want %v", err, errBroken)
	}
}

type errReader struct{ err error }

func (r *errReader) Read(p []byte) (int, error) { return 0, r.err }

func TestCounters(t *testing.T) {
	buf := new(bytes.Buffer)
	bw := bufio.NewWriter(buf)
	cw := &CountWriter{W: bw}
	cr := &CountReader{R: strings.NewReader("0123456789")}
	n, err := io.Copy(cw, cr)
	if err != nil {
		t.Fatalf("io.Copy error %s", err)
	}
	if n != 10 || cw.N != 10 || cr.N != 10 {
		t.Fatalf("copied %d; counted %d written, %d read; want 10",
			n, cw.N, cr.N)
	}
	if buf.Len() != 0 {
		t.Fatalf("data reached buffer before Flush")
	}
	if err = cw.Flush(); err != nil {
		t.Fatalf("cw.Flush() error %s", err)
	}
	if g := buf.String(); g != "0123456789" {
		t.Fatalf("got %q; want %q", g, "0123456789")
	}

	discard := &CountWriter{}
	if _, err = io.WriteString(discard, "abc"); err != nil {
		t.Fatalf("io.WriteString error %s", err)
	}
	if discard.N != 3 {
		t.Fatalf("discard.N = %d; want %d", discard.N, 3)
	}
}

type recordCloser struct {
	name  string
	order *[]string
	err   error
}

func (c recordCloser) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

func TestCloserStack(t *testing.T) {
	var order []string
	errFile := errors.New("file close failed")
	var s CloserStack
	s.Push(recordCloser{"file", &order, errFile})
	s.Push(recordCloser{"buffer", &order, nil})
	if s.Len() != 2 {
		t.Fatalf("s.Len() = %d; want %d", s.Len(), 2)
	}
	err := s.Close()
	if !errors.Is(err, errFile) {
		t.Fatalf("s.Close() error %v; want %v", err, errFile)
	}
	if g := strings.Join(order, ","); g != "buffer,file" {
		t.Fatalf("close order %q; want %q", g, "buffer,file")
	}
	if err = s.Close(); err != nil {
		t.Fatalf("second s.Close() error %s", err)
	}
}

func TestFlushCloser(t *testing.T) {
	buf := new(bytes.Buffer)
	fc := FlushCloser{bufio.NewWriter(buf)}
	if _, err := fc.WriteString("flushed"); err != nil {
		t.Fatalf("WriteString error %s", err)
	}
	if err := fc.Close(); err != nil {
		t.Fatalf("fc.Close() error %s", err)
	}
	if g := buf.String(); g != "flushed" {
		t.Fatalf("got %q; want %q", g, "flushed")
	}
}
