package codec

import (
	"bufio"
	"bytes"
	"io"
)

const peekSize = 512

func newPeekReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok && br.Size() >= peekSize {
		return br
	}
	return bufio.NewReaderSize(r, 64*1024)
}

// detect inspects the buffered prefix without consuming it.
func detect(br *bufio.Reader) Format {
	head, _ := br.Peek(peekSize)
	if bytes.HasPrefix(head, binaryMagic[:]) {
		return FormatBinary
	}
	trimmed := bytes.TrimLeft(head, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatText
}

// MaxPoints bounds the number of points a blob of size bytes starting with
// head can decode to. It reports false when no bound can be derived from the
// prefix, as for compressed input. A binary head needs at least the full
// header.
func MaxPoints(head []byte, size int64) (int64, bool) {
	if size <= 0 {
		return 0, true
	}
	if bytes.HasPrefix(head, zstdMagic) || bytes.HasPrefix(head, lz4Magic) {
		return 0, false
	}
	if bytes.HasPrefix(head, binaryMagic[:]) {
		if len(head) < binaryHeaderSize || size < binaryHeaderSize {
			return 0, true
		}
		n, err := parseBinaryHeader(head[:binaryHeaderSize])
		if err != nil {
			return 0, true
		}
		body := (size - binaryHeaderSize) / binaryPointSize
		if n < uint64(body) {
			return int64(n), true
		}
		return body, true
	}
	// Each text or JSON point takes at least two digits and two separators.
	return (size + 1) / 4, true
}
