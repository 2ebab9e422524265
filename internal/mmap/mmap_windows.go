//go:build windows

package mmap

import (
	"io"
	"os"
)

// Windows has no unix.Mmap equivalent in this codebase; fall back to
// reading the file into memory. Callers see the same []byte semantics.
func mmap(f *os.File, size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(io.NewSectionReader(f, 0, int64(size)), data); err != nil {
		return nil, err
	}
	return data, nil
}

func munmap(data []byte) error {
	return nil
}
