package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/closestpair/model"
)

// maxPrealloc bounds the capacity reserved from a declared count, so a bogus
// header cannot force a huge allocation before any point is read.
const maxPrealloc = 1 << 20

var errNegativeCount = errors.New("negative point count")

// Text is the whitespace-separated format read from standard input:
// a count N followed by N "x y" pairs. Tokens after the last pair are ignored.
type Text struct{}

// Name returns "text".
func (Text) Name() string { return "text" }

// Decode parses a text point set.
func (Text) Decode(r io.Reader) ([]model.Point, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<16)
	sc.Split(bufio.ScanWords)

	idx := 0
	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		idx++
		return sc.Text(), nil
	}

	tok, err := next()
	if err != nil {
		return nil, fmt.Errorf("%w: missing point count: %w", ErrMalformed, err)
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, &ParseError{Index: 0, Token: tok, cause: err}
	}
	if n < 0 {
		return nil, &ParseError{Index: 0, Token: tok, cause: errNegativeCount}
	}

	pts := make([]model.Point, 0, min(n, maxPrealloc))
	for i := int64(0); i < n; i++ {
		var xy [2]int32
		for k := range xy {
			tok, err := next()
			if err != nil {
				return nil, fmt.Errorf("%w: expected %d points, got %d: %w", ErrMalformed, n, i, err)
			}
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, &ParseError{Index: idx - 1, Token: tok, cause: err}
			}
			xy[k] = int32(v)
		}
		pts = append(pts, model.P(xy[0], xy[1]))
	}
	return pts, nil
}

// Encode writes pts in text form, one point per line.
func (Text) Encode(w io.Writer, pts []model.Point) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	buf = strconv.AppendInt(buf[:0], int64(len(pts)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, p := range pts {
		buf = strconv.AppendInt(buf[:0], int64(p.X), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(p.Y), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
