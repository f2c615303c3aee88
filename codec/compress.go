package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/closestpair/model"
)

// Compression defines the stream compression wrapping a point set.
type Compression uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone Compression = 0
	// CompressionLZ4 indicates an LZ4 frame (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD indicates a ZSTD frame (better ratio).
	CompressionZSTD Compression = 2
)

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// ParseCompression returns the Compression with the given name.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd", "zst":
		return CompressionZSTD, nil
	default:
		return CompressionNone, fmt.Errorf("codec: unknown compression %q", name)
	}
}

// Decompress sniffs the leading magic bytes of r and returns a reader over
// the decompressed stream. Uncompressed input is passed through.
// The returned reader must be closed.
func Decompress(r io.Reader) (io.ReadCloser, Compression, error) {
	br := newPeekReader(r)
	head, _ := br.Peek(4)

	switch {
	case bytes.Equal(head, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, CompressionZSTD, fmt.Errorf("failed to create decompressor: %w", err)
		}
		return dec.IOReadCloser(), CompressionZSTD, nil
	case bytes.Equal(head, lz4Magic):
		return io.NopCloser(bufio.NewReader(lz4.NewReader(br))), CompressionLZ4, nil
	default:
		return io.NopCloser(br), CompressionNone, nil
	}
}

// NewWriter wraps w so that everything written is compressed with c.
// Close flushes the frame; it does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("failed to create compressor: %w", err)
		}
		return enc, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("codec: unknown compression %v", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Encode writes pts with codec c wrapped in compression comp.
func Encode(w io.Writer, pts []model.Point, c Codec, comp Compression) error {
	cw, err := NewWriter(w, comp)
	if err != nil {
		return err
	}
	if err := c.Encode(cw, pts); err != nil {
		_ = cw.Close()
		return err
	}
	return cw.Close()
}
