// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/sim31/lzss"
	"github.com/sim31/lzss/internal/xio"
)

// options collects the flag values of the encode and decode commands.
type options struct {
	params    lzss.Parameters
	overwrite bool
	verbose   bool
	progress  bool
}

// codecFunc encodes or decodes the data from r into w.
type codecFunc func(w io.Writer, r io.Reader) (lzss.Stats, error)

// encoder returns the codec function for encoding with the options'
// parameters.
func encoder(opts *options) (codecFunc, error) {
	e, err := lzss.NewEncoder(lzss.EncoderConfig{Parameters: opts.params})
	if err != nil {
		return nil, err
	}
	return e.Encode, nil
}

// decoder returns the codec function for decoding.
func decoder(opts *options) (codecFunc, error) {
	return func(w io.Writer, r io.Reader) (lzss.Stats, error) {
		d, err := lzss.NewDecoder(r)
		if err != nil {
			return lzss.Stats{}, err
		}
		return d.Decode(w)
	}, nil
}

// barCloser finishes a progress bar.
type barCloser struct {
	bar *pb.ProgressBar
}

func (c barCloser) Close() error {
	c.bar.Finish()
	return nil
}

// createTarget opens the target file for writing. An existing file is only
// truncated if overwrite is set.
func createTarget(path string, overwrite bool) (f *os.File, err error) {
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err = os.OpenFile(path, flag, 0o666)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%s exists; use -o to overwrite it", path)
	}
	return f, err
}

// processFile reads the source file, converts it with fn and writes the
// result to the target file. A target created by the function is removed if
// the conversion fails.
func processFile(source, target string, opts *options, stderr io.Writer,
	fn codecFunc) (stats lzss.Stats, err error) {

	var stack xio.CloserStack
	created := false
	defer func() {
		if cerr := stack.Close(); err == nil {
			err = cerr
		}
		if err != nil && created {
			os.Remove(target)
		}
	}()

	in, err := os.Open(source)
	if err != nil {
		return stats, err
	}
	stack.Push(in)
	fi, err := in.Stat()
	if err != nil {
		return stats, err
	}
	if !fi.Mode().IsRegular() {
		return stats, fmt.Errorf("%s is not a regular file", source)
	}
	var r io.Reader = bufio.NewReader(in)
	if opts.progress {
		bar := pb.New64(fi.Size()).Set(pb.Bytes, true).
			SetWriter(stderr).Start()
		stack.Push(barCloser{bar})
		r = bar.NewProxyReader(r)
	}

	out, err := createTarget(target, opts.overwrite)
	if err != nil {
		return stats, err
	}
	created = true
	stack.Push(out)
	bw := xio.FlushCloser{Writer: bufio.NewWriter(out)}
	stack.Push(bw)

	return fn(bw, r)
}
