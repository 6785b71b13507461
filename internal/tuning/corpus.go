// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package tuning supports the measurement of the LZSS codec against a
// corpus of files and compares it with other codecs.
package tuning

import (
	"io/fs"
)

// File is a corpus file held in memory.
type File struct {
	Name string
	Data []byte
}

// Files loads all regular files of the corpus in walk order.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total number of bytes of all files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// Limit cuts the data of every file to at most maxSize bytes. A maxSize less
// or equal zero returns files unchanged. The data itself is shared.
func Limit(files []File, maxSize int) []File {
	if maxSize <= 0 {
		return files
	}
	limited := make([]File, len(files))
	for i, f := range files {
		if len(f.Data) > maxSize {
			f.Data = f.Data[:maxSize]
		}
		limited[i] = f
	}
	return limited
}
