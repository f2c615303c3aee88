package codec

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/closestpair/model"
)

// JSON is a JSON codec backed by github.com/goccy/go-json.
type JSON struct{}

type jsonDocument struct {
	Points [][]int32 `json:"points"`
}

// Name returns "json".
func (JSON) Name() string { return "json" }

// Decode reads a JSON point set.
func (JSON) Decode(r io.Reader) ([]model.Point, error) {
	var doc jsonDocument
	if err := gojson.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	pts := make([]model.Point, len(doc.Points))
	for i, xy := range doc.Points {
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, want 2", ErrMalformed, i, len(xy))
		}
		pts[i] = model.P(xy[0], xy[1])
	}
	return pts, nil
}

// Encode writes pts as JSON.
func (JSON) Encode(w io.Writer, pts []model.Point) error {
	doc := jsonDocument{Points: make([][]int32, len(pts))}
	for i, p := range pts {
		doc.Points[i] = []int32{p.X, p.Y}
	}
	return gojson.NewEncoder(w).Encode(doc)
}
