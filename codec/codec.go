// Package codec reads and writes point sets.
//
// Three formats are supported:
//
//   - Text:   "N x1 y1 x2 y2 ..." separated by any whitespace
//   - Binary: "CPTS" magic, version byte, little-endian uint64 count, then
//     count little-endian (int32 x, int32 y) pairs
//   - JSON:   {"points": [[x, y], ...]}
//
// Any of them may be wrapped in a zstd or lz4 frame. Decode detects the
// compression and, with FormatAuto, the format.
package codec

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/closestpair/model"
)

var (
	// ErrMalformed is returned when input does not describe a valid point set.
	ErrMalformed = errors.New("codec: malformed point set")
	// ErrUnknownFormat is returned for an unrecognized format name.
	ErrUnknownFormat = errors.New("codec: unknown format")
)

// ParseError describes an invalid token in text input.
//
// It matches ErrMalformed and its cause (such as strconv.ErrRange) with errors.Is.
type ParseError struct {
	// Index is the zero-based token position.
	Index int
	Token string
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codec: invalid token %q at position %d: %v", e.Token, e.Index, e.cause)
}

func (e *ParseError) Unwrap() []error { return []error{ErrMalformed, e.cause} }

// Codec encodes/decodes point sets.
// Implementations must be safe for concurrent use.
type Codec interface {
	Encode(w io.Writer, pts []model.Point) error
	Decode(r io.Reader) ([]model.Point, error)
	Name() string
}

// Format identifies a point-set encoding.
type Format int

const (
	FormatAuto Format = iota
	FormatText
	FormatBinary
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatText:
		return "text"
	case FormatBinary:
		return "binary"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return FormatAuto, nil
	case "text", "txt":
		return FormatText, nil
	case "binary", "bin":
		return FormatBinary, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// For returns the codec for a concrete format.
func For(f Format) (Codec, error) {
	switch f {
	case FormatText:
		return Text{}, nil
	case FormatBinary:
		return Binary{}, nil
	case FormatJSON:
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Decode reads a point set from r. Compressed input is unwrapped first.
// With FormatAuto the format is detected from the leading bytes.
// It returns the format that was used.
func Decode(r io.Reader, f Format) ([]model.Point, Format, error) {
	rc, _, err := Decompress(r)
	if err != nil {
		return nil, f, err
	}
	defer func() { _ = rc.Close() }()

	br := newPeekReader(rc)
	if f == FormatAuto {
		f = detect(br)
	}

	c, err := For(f)
	if err != nil {
		return nil, f, err
	}
	pts, err := c.Decode(br)
	return pts, f, err
}

// WriteResult writes a closest-pair result as a single line: the distance,
// or "none" when no pair exists.
func WriteResult(w io.Writer, dist uint64, ok bool) error {
	if !ok {
		_, err := io.WriteString(w, "none\n")
		return err
	}
	_, err := fmt.Fprintf(w, "%d\n", dist)
	return err
}
