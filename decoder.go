// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzss

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
	"github.com/sim31/lzss/internal/xio"
	"github.com/sim31/lzss/internal/xlog"
)

// Decoder decompresses a single LZSS stream. The parameters are read from the
// stream header by NewDecoder.
type Decoder struct {
	cr        *xio.CountReader
	br        *bitio.Reader
	params    Parameters
	threshold int
	windowCap int
	// history holds the last HistoryCap bytes written
	history buffer
	// scratch holds the bytes of the current record
	scratch []byte
	used    bool
}

// NewDecoder reads the stream header from r and creates a decoder for the
// stream. Invalid header values result in an error wrapping ErrConfig.
func NewDecoder(r io.Reader) (d *Decoder, err error) {
	cr := &xio.CountReader{R: xio.NewRetryReader(r)}
	br := bitio.NewReader(cr)
	p, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	xlog.Printf(debug, "header (%d, %d)", p.HistoryBits, p.MatchLenBits)
	d = &Decoder{
		cr:        cr,
		br:        br,
		params:    p,
		threshold: p.Threshold(),
		windowCap: p.WindowCap(),
	}
	return d, nil
}

// Parameters returns the parameters found in the stream header. The search
// depth is always zero.
func (d *Decoder) Parameters() Parameters { return d.params }

// Decode decodes the stream and writes the plain data to w. If w provides a
// Flush method, it is called at the end. Decode may be called only once.
//
// The stream ends cleanly if the input ends where a record tag would start
// or inside the byte of a literal record. End of input anywhere else returns
// an error wrapping ErrTruncated; a reference outside the history returns an
// error wrapping ErrCorrupt.
func (d *Decoder) Decode(w io.Writer) (stats Stats, err error) {
	if d.used {
		return stats, errors.New("lzss: Decoder.Decode called twice")
	}
	d.used = true
	initBuffer(&d.history, d.params.HistoryCap()+d.windowCap)
	d.scratch = make([]byte, 0, d.windowCap)

	if err = d.init(w); err != nil {
		return stats, err
	}
	stats.Uncompressed = int64(d.windowCap)
	for {
		rec, err := d.readRecord()
		if err != nil {
			return stats, err
		}
		if rec == nil {
			break
		}
		if err = d.writeDecoded(w, rec); err != nil {
			return stats, err
		}
		switch rec.(type) {
		case lit:
			stats.Literals++
		case ref:
			stats.References++
		}
		stats.Uncompressed += int64(rec.Len())
	}
	if err = flush(w); err != nil {
		return stats, err
	}
	stats.Compressed = d.cr.N
	return stats, nil
}

// Decode decodes the stream from r and writes the plain data to w.
func Decode(w io.Writer, r io.Reader) (Stats, error) {
	d, err := NewDecoder(r)
	if err != nil {
		return Stats{}, err
	}
	return d.Decode(w)
}

// init reads the prime, the plain bytes following the header, writes them to
// w and uses them as initial history.
func (d *Decoder) init(w io.Writer) error {
	p := d.history.extend(d.windowCap)
	for i := range p {
		c, err := d.br.ReadByte()
		if err != nil {
			return readErr("prime", err)
		}
		p[i] = c
	}
	xlog.Printf(debug, "prime length %d", len(p))
	return write(w, p)
}

// readRecord reads the next record. It returns nil without error at the end
// of the stream.
func (d *Decoder) readRecord() (rec record, err error) {
	tag, err := d.br.ReadBool()
	if err != nil {
		if isEOF(err) {
			return nil, nil
		}
		return nil, &IOError{Op: "read record", Err: err}
	}
	if tag == tagLiteral {
		c, err := d.br.ReadByte()
		if err != nil {
			// A literal tag in the padding marks the end.
			if isEOF(err) {
				return nil, nil
			}
			return nil, &IOError{Op: "read literal", Err: err}
		}
		return lit{b: c}, nil
	}
	pos, err := d.br.ReadBits(uint8(d.params.HistoryBits))
	if err != nil {
		return nil, referenceErr(err)
	}
	n, err := d.br.ReadBits(uint8(d.params.MatchLenBits))
	if err != nil {
		return nil, referenceErr(err)
	}
	return ref{pos: int(pos), n: int(n) + d.threshold}, nil
}

// referenceErr converts an error returned while reading a reference. A
// reference cut short by the end of input can't be produced by the encoder,
// so the error wraps ErrCorrupt as well as ErrTruncated.
func referenceErr(err error) error {
	if isEOF(err) {
		return fmt.Errorf("%w: %w: end of input inside a reference",
			ErrTruncated, ErrCorrupt)
	}
	return &IOError{Op: "read reference", Err: err}
}

// writeDecoded resolves the record, writes the bytes to w and appends them to
// the history.
func (d *Decoder) writeDecoded(w io.Writer, rec record) error {
	xlog.Print(debug, rec)
	switch rec := rec.(type) {
	case lit:
		d.scratch = append(d.scratch[:0], rec.b)
	case ref:
		h := d.history.Bytes()
		if !(0 <= rec.pos && rec.pos < len(h) &&
			d.threshold <= rec.n && rec.n <= d.windowCap &&
			rec.n <= len(h)-rec.pos) {
			return fmt.Errorf(
				"%w: %v outside history of length %d",
				ErrCorrupt, rec, len(h))
		}
		d.scratch = append(d.scratch[:0], h[rec.pos:rec.pos+rec.n]...)
	default:
		panic(fmt.Errorf("lzss: unexpected record type %T", rec))
	}
	if err := write(w, d.scratch); err != nil {
		return err
	}
	d.history.Write(d.scratch)
	if k := d.history.Len() - d.params.HistoryCap(); k > 0 {
		d.history.discard(k)
	}
	return nil
}

// write writes p to w.
func write(w io.Writer, p []byte) error {
	if _, err := w.Write(p); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
