// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package tuning

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/sim31/lzss"
	"github.com/ulikunitz/xz"
)

// Codec compresses and decompresses complete streams.
type Codec interface {
	Name() string
	Compress(w io.Writer, r io.Reader) error
	Decompress(w io.Writer, r io.Reader) error
}

// LZSS is the codec of package lzss with fixed parameters.
type LZSS struct {
	Params lzss.Parameters
}

// Name returns "lzss".
func (c LZSS) Name() string { return "lzss" }

// Compress encodes r into w.
func (c LZSS) Compress(w io.Writer, r io.Reader) error {
	_, err := lzss.Encode(w, r, lzss.EncoderConfig{Parameters: c.Params})
	return err
}

// Decompress decodes the stream from r into w.
func (c LZSS) Decompress(w io.Writer, r io.Reader) error {
	_, err := lzss.Decode(w, r)
	return err
}

// streamCodec adapts the writer and reader constructors of a compression
// package to the Codec interface.
type streamCodec struct {
	name      string
	newWriter func(w io.Writer) (io.WriteCloser, error)
	newReader func(r io.Reader) (io.ReadCloser, error)
}

func (c *streamCodec) Name() string { return c.name }

func (c *streamCodec) Compress(w io.Writer, r io.Reader) error {
	z, err := c.newWriter(w)
	if err != nil {
		return err
	}
	if _, err = io.Copy(z, r); err != nil {
		z.Close()
		return err
	}
	return z.Close()
}

func (c *streamCodec) Decompress(w io.Writer, r io.Reader) error {
	z, err := c.newReader(r)
	if err != nil {
		return err
	}
	if _, err = io.Copy(w, z); err != nil {
		z.Close()
		return err
	}
	return z.Close()
}

// referenceCodecs contains the codecs LZSS is compared with.
var referenceCodecs = map[string]*streamCodec{
	"flate": {
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(w, flate.DefaultCompression)
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return flate.NewReader(r), nil
		},
	},
	"zstd": {
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		},
	},
	"snappy": {
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return snappy.NewBufferedWriter(w), nil
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(snappy.NewReader(r)), nil
		},
	},
	"lz4": {
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return lz4.NewWriter(w), nil
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		},
	},
	"brotli": {
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(brotli.NewReader(r)), nil
		},
	},
	"xz": {
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return xz.NewWriter(w)
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			z, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(z), nil
		},
	},
}

func init() {
	for name, c := range referenceCodecs {
		c.name = name
	}
}

// CodecNames returns the names of all codecs in sorted order. The name
// "lzss" is always first.
func CodecNames() []string {
	names := make([]string, 0, len(referenceCodecs))
	for name := range referenceCodecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{"lzss"}, names...)
}

// LookupCodecs returns the codecs with the given names. The lzss codec uses
// the parameters p.
func LookupCodecs(names []string, p lzss.Parameters) (codecs []Codec, err error) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "lzss" {
			codecs = append(codecs, LZSS{Params: p})
			continue
		}
		c, ok := referenceCodecs[name]
		if !ok {
			return nil, fmt.Errorf("tuning: unknown codec %q", name)
		}
		codecs = append(codecs, c)
	}
	return codecs, nil
}
