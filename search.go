// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzss

// FirstMatch finds the first run of bytes in seq that matches sub or a prefix
// of sub. The run starts at the first byte of seq equal to sub[0] and ends at
// the first mismatch or after len(sub) bytes. It returns the start position
// and the length of the run; (0, 0) means that no byte of seq equals sub[0].
//
// FirstMatch doesn't look for longer runs after the first one. The argument
// seq must be at least as long as sub.
func FirstMatch(seq, sub []byte) (pos, n int) {
	if len(sub) == 0 {
		return 0, 0
	}
	for i, c := range seq {
		if c == sub[n] {
			if n == 0 {
				pos = i
			}
			n++
			if n == len(sub) {
				return pos, n
			}
		} else if n > 0 {
			return pos, n
		}
	}
	return pos, n
}

// BestMatch searches seq for matches of prefixes of sub with a length of at
// least threshold. A depth of 1 returns the first such match, a depth of N
// the longest of the first N matches and a depth of 0 the longest match in
// seq. Of matches with equal length the first one is returned. If no match
// reaches threshold the function returns (0, 0).
//
// Matches never extend past the end of seq.
func BestMatch(seq, sub []byte, threshold, depth int) (pos, n int) {
	found := 0
	for p := 0; p < len(seq) && (depth == 0 || found < depth); {
		s := seq[p:]
		t := sub
		if len(t) > len(s) {
			t = t[:len(s)]
		}
		i, k := FirstMatch(s, t)
		if k == 0 {
			break
		}
		i += p
		p = i + 1
		if k < threshold {
			continue
		}
		if k > n {
			pos, n = i, k
		}
		found++
	}
	return pos, n
}
