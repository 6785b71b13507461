// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package lzss

// maxPrealloc limits the initial allocation of a buffer. Large histories
// grow on demand instead of being allocated in full up front.
const maxPrealloc = 4 << 20

// buffer provides a linear byte buffer that grows at the end and shrinks at
// the front. The live bytes are data[start:]. Bytes dropped at the front are
// reclaimed by moving the live bytes to the start of data once at least
// half of the capacity has been dropped, so slices returned by Bytes and
// extend are valid only until the next call to extend.
type buffer struct {
	data  []byte
	start int
}

// initBuffer initializes the buffer with room for size bytes, capped at
// maxPrealloc.
func initBuffer(b *buffer, size int) {
	if size > maxPrealloc {
		size = maxPrealloc
	}
	*b = buffer{data: make([]byte, 0, size)}
}

// Len returns the number of bytes in the buffer.
func (b *buffer) Len() int { return len(b.data) - b.start }

// Bytes returns the content of the buffer.
func (b *buffer) Bytes() []byte { return b.data[b.start:] }

// extend adds n bytes at the end of the buffer and returns the slice of the
// added bytes for the caller to fill.
func (b *buffer) extend(n int) []byte {
	k := len(b.data)
	if k+n > cap(b.data) {
		if b.start >= cap(b.data)/2 && b.Len()+n <= cap(b.data) {
			k = copy(b.data, b.data[b.start:])
			b.start = 0
		} else {
			c := 2*cap(b.data) + n
			data := make([]byte, b.Len(), c)
			k = copy(data, b.data[b.start:])
			b.data, b.start = data, 0
		}
	}
	b.data = b.data[:k+n]
	return b.data[k:]
}

// Write appends p to the buffer. It never fails.
func (b *buffer) Write(p []byte) (n int, err error) {
	return copy(b.extend(len(p)), p), nil
}

// truncate removes n bytes from the end of the buffer.
func (b *buffer) truncate(n int) {
	if !(0 <= n && n <= b.Len()) {
		panic("lzss: buffer.truncate: argument out of range")
	}
	b.data = b.data[:len(b.data)-n]
}

// discard removes n bytes from the front of the buffer.
func (b *buffer) discard(n int) {
	if !(0 <= n && n <= b.Len()) {
		panic("lzss: buffer.discard: argument out of range")
	}
	b.start += n
	if b.start == len(b.data) {
		b.data = b.data[:0]
		b.start = 0
	}
}
