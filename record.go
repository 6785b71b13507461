// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzss

import "fmt"

// record is a single unit of the encoded stream: either a literal or a
// reference into the history.
type record interface {
	// Len returns the number of bytes the record stands for.
	Len() int
	// bits returns the encoded size of the record in bits.
	bits(p Parameters) int
}

// lit represents a single byte literal.
type lit struct {
	b byte
}

// Len returns 1 for the single byte literal.
func (l lit) Len() int { return 1 }

func (l lit) bits(p Parameters) int { return literalLen }

// String returns a string representation for the literal.
func (l lit) String() string {
	return fmt.Sprintf("lit(%02x %q)", l.b, l.b)
}

// ref represents a reference to n bytes at the absolute position pos of the
// history.
type ref struct {
	pos int
	n   int
}

// Len returns the length of the reference.
func (r ref) Len() int { return r.n }

func (r ref) bits(p Parameters) int {
	return 1 + p.HistoryBits + p.MatchLenBits
}

// String returns a string representation for the reference.
func (r ref) String() string {
	return fmt.Sprintf("ref(%d,%d)", r.pos, r.n)
}
