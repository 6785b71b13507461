// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzss

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
	"github.com/sim31/lzss/internal/xlog"
)

// Stats provides the counters of an encoded or decoded stream.
type Stats struct {
	// Uncompressed is the number of plain bytes read or written.
	Uncompressed int64
	// Compressed is the number of bytes of the encoded stream written or
	// read.
	Compressed int64
	// Literals and References count the records of the stream. The
	// end-of-stream marker is not counted.
	Literals   int64
	References int64
}

// Ratio returns the compressed size relative to the uncompressed size.
func (s Stats) Ratio() float64 {
	if s.Uncompressed == 0 {
		return 0
	}
	return float64(s.Compressed) / float64(s.Uncompressed)
}

// Encoder compresses byte streams. It holds only the configuration, so a
// single Encoder may be used for any number of streams, also concurrently.
type Encoder struct {
	params Parameters
}

// NewEncoder creates an encoder for the given configuration. Zero values are
// replaced by defaults.
func NewEncoder(cfg EncoderConfig) (e *Encoder, err error) {
	cfg.SetDefaults()
	if err = cfg.Verify(); err != nil {
		return nil, err
	}
	return &Encoder{params: cfg.Parameters}, nil
}

// Parameters returns the parameters used by the encoder.
func (e *Encoder) Parameters() Parameters { return e.params }

// Encode reads r until EOF and writes the encoded stream to w. The input must
// have at least Parameters().MinInputLen() bytes. If w provides a Flush
// method, it is called after the stream has been written.
//
// The function doesn't write anything if the input is too short. Other errors
// may leave an incomplete stream in w.
func (e *Encoder) Encode(w io.Writer, r io.Reader) (stats Stats, err error) {
	p := e.params
	wr, err := NewWindowReader(r, p.HistoryCap(), p.WindowCap())
	if err != nil {
		return stats, err
	}
	enc := &streamEncoder{
		p:         p,
		threshold: p.Threshold(),
		bw:        bitio.NewWriter(w),
	}
	if err = enc.writeHeader(); err != nil {
		return enc.stats, err
	}
	history, window := wr.Current()
	if err = enc.writePrime(history); err != nil {
		return enc.stats, err
	}
	for len(window) > 0 {
		var rec record
		pos, n := BestMatch(history, window, enc.threshold, p.SearchDepth)
		if n > 0 {
			rec = ref{pos: pos, n: n}
		} else {
			rec = lit{b: window[0]}
		}
		if err = enc.writeRecord(rec); err != nil {
			return enc.stats, err
		}
		if err = wr.Next(rec.Len()); err != nil {
			return enc.stats, err
		}
		history, window = wr.Current()
	}
	if err = enc.writeEnding(); err != nil {
		return enc.stats, err
	}
	if err = enc.flush(w); err != nil {
		return enc.stats, err
	}
	enc.stats.Uncompressed = wr.InputLen()
	xlog.Printf(debug, "bits written: %d", enc.bits)
	return enc.stats, nil
}

// Encode encodes the data from r into w using a new Encoder for cfg.
func Encode(w io.Writer, r io.Reader, cfg EncoderConfig) (Stats, error) {
	e, err := NewEncoder(cfg)
	if err != nil {
		return Stats{}, err
	}
	return e.Encode(w, r)
}

// streamEncoder holds the state of a single Encode call.
type streamEncoder struct {
	p         Parameters
	threshold int
	bw        *bitio.Writer
	// total number of bits written
	bits  int64
	stats Stats
}

// writeErr wraps an error of the bit writer.
func writeErr(err error) error {
	return &IOError{Op: "write", Err: err}
}

// writeHeader writes the header with the history and match length widths.
func (e *streamEncoder) writeHeader() error {
	if err := writeHeader(e.bw, e.p); err != nil {
		return writeErr(err)
	}
	e.bits += headerLen
	xlog.Printf(debug, "header (%d, %d)", e.p.HistoryBits, e.p.MatchLenBits)
	return nil
}

// writePrime writes the initial history as plain bytes without tags. The
// decoder needs it as dictionary before it can resolve any reference.
func (e *streamEncoder) writePrime(p []byte) error {
	for _, c := range p {
		if err := e.bw.WriteByte(c); err != nil {
			return writeErr(err)
		}
	}
	e.bits += 8 * int64(len(p))
	xlog.Printf(debug, "prime length %d", len(p))
	return nil
}

// writeRecord writes a literal or a reference record.
func (e *streamEncoder) writeRecord(rec record) error {
	var err error
	switch rec := rec.(type) {
	case lit:
		if err = e.bw.WriteBool(tagLiteral); err != nil {
			break
		}
		err = e.bw.WriteByte(rec.b)
		e.stats.Literals++
	case ref:
		if !(e.threshold <= rec.n && rec.n <= e.p.WindowCap()) {
			panic(fmt.Errorf("lzss: reference length %d out of range [%d,%d]",
				rec.n, e.threshold, e.p.WindowCap()))
		}
		if err = e.bw.WriteBool(tagReference); err != nil {
			break
		}
		err = e.bw.WriteBits(uint64(rec.pos), uint8(e.p.HistoryBits))
		if err != nil {
			break
		}
		err = e.bw.WriteBits(uint64(rec.n-e.threshold),
			uint8(e.p.MatchLenBits))
		e.stats.References++
	default:
		panic(fmt.Errorf("lzss: unexpected record type %T", rec))
	}
	if err != nil {
		return writeErr(err)
	}
	e.bits += int64(rec.bits(e.p))
	xlog.Print(debug, rec)
	return nil
}

// writeEnding terminates the stream. A stream ending inside a byte gets an
// extra literal tag; the decoder recognizes it because the padding can't
// provide the eight bits of the literal byte. The stream is then padded with
// zeros to the byte boundary.
func (e *streamEncoder) writeEnding() error {
	if e.bits%8 != 0 {
		if err := e.bw.WriteBool(tagLiteral); err != nil {
			return writeErr(err)
		}
		e.bits++
	}
	if _, err := e.bw.Align(); err != nil {
		return writeErr(err)
	}
	e.stats.Compressed = (e.bits + 7) / 8
	return nil
}

// flush writes all cached data to w and flushes w if it supports it.
func (e *streamEncoder) flush(w io.Writer) error {
	if err := e.bw.Close(); err != nil {
		return writeErr(err)
	}
	return flush(w)
}

// flush calls the Flush method of w if there is one.
func flush(w io.Writer) error {
	f, ok := w.(interface{ Flush() error })
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return &IOError{Op: "flush", Err: err}
	}
	return nil
}
