package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/closestpair/internal/conv"
	"github.com/hupe1980/closestpair/model"
)

const (
	binaryVersion    = 1
	binaryHeaderSize = 4 + 1 + 8
	binaryPointSize  = 8
)

var binaryMagic = [4]byte{'C', 'P', 'T', 'S'}

// Binary is the fixed-width little-endian format.
type Binary struct{}

// Name returns "binary".
func (Binary) Name() string { return "binary" }

// Decode reads a binary point set from a stream.
func (Binary) Decode(r io.Reader) ([]model.Point, error) {
	var hdr [binaryHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformed, err)
	}
	n, err := parseBinaryHeader(hdr[:])
	if err != nil {
		return nil, err
	}

	br := bufio.NewReaderSize(r, 64*1024)
	pts := make([]model.Point, 0, min(n, maxPrealloc))
	var rec [binaryPointSize]byte
	for i := uint64(0); i < n; i++ {
		if _, err := io.ReadFull(br, rec[:]); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("%w: expected %d points, got %d: %w", ErrMalformed, n, i, err)
		}
		pts = append(pts, decodeBinaryPoint(rec[:]))
	}
	return pts, nil
}

// DecodeBinaryBytes decodes a complete binary point set held in memory,
// such as a memory-mapped file.
func DecodeBinaryBytes(data []byte) ([]model.Point, error) {
	if len(data) < binaryHeaderSize {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformed, io.ErrUnexpectedEOF)
	}
	n, err := parseBinaryHeader(data[:binaryHeaderSize])
	if err != nil {
		return nil, err
	}
	count, err := conv.Uint64ToInt(n)
	if err != nil {
		return nil, fmt.Errorf("%w: point count: %w", ErrMalformed, err)
	}
	body := data[binaryHeaderSize:]
	if len(body)/binaryPointSize < count {
		return nil, fmt.Errorf("%w: expected %d points, got %d", ErrMalformed, count, len(body)/binaryPointSize)
	}

	pts := make([]model.Point, count)
	for i := range pts {
		pts[i] = decodeBinaryPoint(body[i*binaryPointSize:])
	}
	return pts, nil
}

// IsBinary reports whether data starts with the binary magic.
func IsBinary(data []byte) bool {
	return len(data) >= len(binaryMagic) && [4]byte(data[:4]) == binaryMagic
}

// Encode writes pts in binary form.
func (Binary) Encode(w io.Writer, pts []model.Point) error {
	bw := bufio.NewWriter(w)

	var hdr [binaryHeaderSize]byte
	copy(hdr[:], binaryMagic[:])
	hdr[4] = binaryVersion
	binary.LittleEndian.PutUint64(hdr[5:], uint64(len(pts)))
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}

	var rec [binaryPointSize]byte
	for _, p := range pts {
		binary.LittleEndian.PutUint32(rec[0:], uint32(p.X))
		binary.LittleEndian.PutUint32(rec[4:], uint32(p.Y))
		if _, err := bw.Write(rec[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func parseBinaryHeader(hdr []byte) (uint64, error) {
	if [4]byte(hdr[:4]) != binaryMagic {
		return 0, fmt.Errorf("%w: bad magic %q", ErrMalformed, hdr[:4])
	}
	if hdr[4] != binaryVersion {
		return 0, fmt.Errorf("%w: unsupported version %d", ErrMalformed, hdr[4])
	}
	return binary.LittleEndian.Uint64(hdr[5:]), nil
}

func decodeBinaryPoint(b []byte) model.Point {
	return model.P(
		int32(binary.LittleEndian.Uint32(b[0:])),
		int32(binary.LittleEndian.Uint32(b[4:])),
	)
}
