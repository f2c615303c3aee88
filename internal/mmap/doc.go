// Package mmap provides read-only memory-mapped file access.
//
// Point-set files can be large; mapping them lets the binary decoder read
// straight from the page cache without an intermediate copy.
//
//	m, err := mmap.Open("points.cpts")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// Unix uses mmap(2)/madvise(2) via golang.org/x/sys/unix; Windows uses
// CreateFileMapping/MapViewOfFile and ignores access hints.
//
// Close is idempotent. Slices returned by Bytes must not be used after Close.
package mmap
