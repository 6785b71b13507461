// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzss

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestFirstMatch(t *testing.T) {
	tests := []struct {
		seq, sub string
		pos, n   int
	}{
		{"abcabd", "abd", 0, 2},
		{"xxabd", "abd", 2, 3},
		{"xxab", "abd", 2, 2},
		{"xyz", "a", 0, 0},
		{"abc", "", 0, 0},
		{"aaaa", "aab", 0, 2},
		{"bbba", "ab", 3, 1},
	}
	for _, tc := range tests {
		pos, n := FirstMatch([]byte(tc.seq), []byte(tc.sub))
		if pos != tc.pos || n != tc.n {
			t.Errorf("FirstMatch(%q, %q) = (%d, %d); want (%d, %d)",
				tc.seq, tc.sub, pos, n, tc.pos, tc.n)
		}
	}
}

// randBytes returns n random bytes taken from an alphabet of size k.
func randBytes(rnd *rand.Rand, n, k int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = 'a' + byte(rnd.Intn(k))
	}
	return p
}

func TestFirstMatchRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		seq := randBytes(rnd, 1+rnd.Intn(64), 4)
		sub := randBytes(rnd, 1+rnd.Intn(len(seq)), 4)
		pos, n := FirstMatch(seq, sub)
		first := bytes.IndexByte(seq, sub[0])
		if first < 0 {
			if pos != 0 || n != 0 {
				t.Fatalf("FirstMatch(%q, %q) = (%d, %d); want (0, 0)",
					seq, sub, pos, n)
			}
			continue
		}
		if pos != first {
			t.Fatalf("FirstMatch(%q, %q) pos %d; want %d",
				seq, sub, pos, first)
		}
		if !bytes.Equal(seq[pos:pos+n], sub[:n]) {
			t.Fatalf("FirstMatch(%q, %q) = (%d, %d) doesn't match",
				seq, sub, pos, n)
		}
		if !(n == len(sub) || pos+n == len(seq) || seq[pos+n] != sub[n]) {
			t.Fatalf("FirstMatch(%q, %q) = (%d, %d) stops early",
				seq, sub, pos, n)
		}
	}
}

// lcp returns the length of the common prefix of p and q.
func lcp(p, q []byte) int {
	n := 0
	for n < len(p) && n < len(q) && p[n] == q[n] {
		n++
	}
	return n
}

// bruteMatch returns the longest match or, for depth 1, the first match
// reaching the threshold.
func bruteMatch(seq, sub []byte, threshold, depth int) (pos, n int) {
	for p := range seq {
		k := lcp(seq[p:], sub)
		if k < threshold {
			continue
		}
		if depth == 1 {
			return p, k
		}
		if k > n {
			pos, n = p, k
		}
	}
	return pos, n
}

func TestBestMatch(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for _, depth := range []int{0, 1} {
		for i := 0; i < 2000; i++ {
			seq := randBytes(rnd, 1+rnd.Intn(200), 3)
			sub := randBytes(rnd, 1+rnd.Intn(20), 3)
			threshold := 1 + rnd.Intn(4)
			pos, n := BestMatch(seq, sub, threshold, depth)
			wpos, wn := bruteMatch(seq, sub, threshold, depth)
			if pos != wpos || n != wn {
				t.Fatalf("BestMatch(%q, %q, %d, %d) = (%d, %d);"+
					" want (%d, %d)", seq, sub, threshold, depth,
					pos, n, wpos, wn)
			}
			if n != 0 && n < threshold {
				t.Fatalf("BestMatch length %d below threshold %d",
					n, threshold)
			}
		}
	}
}

func TestBestMatchDepth(t *testing.T) {
	seq := []byte("abxabcxabcdxabcd")
	sub := []byte("abcde")
	tests := []struct {
		depth  int
		pos, n int
	}{
		{1, 0, 2},
		{2, 3, 3},
		{3, 7, 4},
		{4, 7, 4},
		{0, 7, 4},
	}
	for _, tc := range tests {
		pos, n := BestMatch(seq, sub, 2, tc.depth)
		if pos != tc.pos || n != tc.n {
			t.Errorf("depth %d: got (%d, %d); want (%d, %d)",
				tc.depth, pos, n, tc.pos, tc.n)
		}
	}
	if pos, n := BestMatch(seq, []byte("zz"), 1, 0); pos != 0 || n != 0 {
		t.Errorf("no match: got (%d, %d); want (0, 0)", pos, n)
	}
	if _, n := BestMatch(seq, sub, 5, 0); n != 0 {
		t.Errorf("threshold 5: got length %d; want 0", n)
	}
}

func BenchmarkBestMatch(b *testing.B) {
	rnd := rand.New(rand.NewSource(3))
	seq := randBytes(rnd, 1<<12, 8)
	sub := randBytes(rnd, 17, 8)
	b.ReportAllocs()
	b.SetBytes(int64(len(seq)))
	for i := 0; i < b.N; i++ {
		BestMatch(seq, sub, 2, 0)
	}
}
