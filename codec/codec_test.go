package codec

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hupe1980/closestpair/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePoints = []model.Point{
	model.P(0, 0), model.P(10, 0), model.P(5, 1), model.P(5, -1),
	model.P(math.MinInt32, math.MaxInt32),
}

func TestTextDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []model.Point
	}{
		{"Empty", "0", []model.Point{}},
		{"Newlines", "2\n0 0\n3 4\n", []model.Point{model.P(0, 0), model.P(3, 4)}},
		{"MixedWhitespace", " 3 \t0 0  0 0\r\n5 5", []model.Point{model.P(0, 0), model.P(0, 0), model.P(5, 5)}},
		{"Negative", "1\n-7 -2147483648", []model.Point{model.P(-7, math.MinInt32)}},
		{"TrailingTokensIgnored", "1 1 2 9 9", []model.Point{model.P(1, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text{}.Decode(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextDecodeErrors(t *testing.T) {
	t.Run("MissingCount", func(t *testing.T) {
		_, err := Text{}.Decode(strings.NewReader("   "))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("TooFewPoints", func(t *testing.T) {
		_, err := Text{}.Decode(strings.NewReader("3\n0 0\n1 1\n"))
		assert.ErrorIs(t, err, ErrMalformed)
		assert.Contains(t, err.Error(), "expected 3 points, got 2")
	})

	t.Run("HalfPoint", func(t *testing.T) {
		_, err := Text{}.Decode(strings.NewReader("1\n5"))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("NonNumeric", func(t *testing.T) {
		_, err := Text{}.Decode(strings.NewReader("2\n0 0\nx 1\n"))
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 3, pe.Index)
		assert.Equal(t, "x", pe.Token)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := Text{}.Decode(strings.NewReader("1\n2147483648 0"))
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 1, pe.Index)
	})

	t.Run("NegativeCount", func(t *testing.T) {
		_, err := Text{}.Decode(strings.NewReader("-1"))
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 0, pe.Index)
	})
}

func TestEncodeDecode(t *testing.T) {
	for _, c := range []Codec{Text{}, Binary{}, JSON{}} {
		for _, comp := range []Compression{CompressionNone, CompressionZSTD, CompressionLZ4} {
			t.Run(c.Name()+"/"+comp.String(), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, Encode(&buf, samplePoints, c, comp))

				got, f, err := Decode(&buf, FormatAuto)
				require.NoError(t, err)
				assert.Equal(t, c.Name(), f.String())
				assert.Equal(t, samplePoints, got)
			})
		}
	}
}

func TestDecodeExplicitFormat(t *testing.T) {
	got, f, err := Decode(strings.NewReader("1 4 5"), FormatText)
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)
	assert.Equal(t, []model.Point{model.P(4, 5)}, got)

	_, _, err = Decode(strings.NewReader("1 4 5"), FormatBinary)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestBinary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Binary{}.Encode(&buf, samplePoints))
	data := buf.Bytes()

	assert.True(t, IsBinary(data))
	assert.Len(t, data, binaryHeaderSize+len(samplePoints)*binaryPointSize)

	t.Run("Bytes", func(t *testing.T) {
		got, err := DecodeBinaryBytes(data)
		require.NoError(t, err)
		assert.Equal(t, samplePoints, got)
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := DecodeBinaryBytes(data[:len(data)-3])
		assert.ErrorIs(t, err, ErrMalformed)

		_, err = Binary{}.Decode(bytes.NewReader(data[:len(data)-3]))
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("BadVersion", func(t *testing.T) {
		bad := bytes.Clone(data)
		bad[4] = 9
		_, err := DecodeBinaryBytes(bad)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("HugeCount", func(t *testing.T) {
		bad := bytes.Clone(data)
		for i := 5; i < binaryHeaderSize; i++ {
			bad[i] = 0xff
		}
		_, err := DecodeBinaryBytes(bad)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("ShortHeader", func(t *testing.T) {
		_, err := DecodeBinaryBytes([]byte("CPT"))
		assert.ErrorIs(t, err, ErrMalformed)
		assert.False(t, IsBinary([]byte("CPT")))
	})
}

func TestJSONDecodeErrors(t *testing.T) {
	_, err := JSON{}.Decode(strings.NewReader(`{"points": [[1, "a"]]}`))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = JSON{}.Decode(strings.NewReader(`{"points": `))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestJSONDecodeCoordinateCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"OneCoordinate", `{"points": [[5]]}`, "point 0 has 1 coordinates"},
		{"ThreeCoordinates", `{"points": [[1, 2, 3]]}`, "point 0 has 3 coordinates"},
		{"Empty", `{"points": [[]]}`, "point 0 has 0 coordinates"},
		{"SecondPoint", `{"points": [[1, 2], [5]]}`, "point 1 has 1 coordinates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := JSON{}.Decode(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Nil(t, pts)
		})
	}

	pts, err := JSON{}.Decode(strings.NewReader(`{"points": [[1, 2], [-3, 4]]}`))
	require.NoError(t, err)
	assert.Equal(t, []model.Point{model.P(1, 2), model.P(-3, 4)}, pts)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"3 0 0", FormatText},
		{"  \n{\"points\":[]}", FormatJSON},
		{"CPTS\x01", FormatBinary},
		{"", FormatText},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detect(newPeekReader(strings.NewReader(tt.input))), "%q", tt.input)
	}
}

func TestMaxPoints(t *testing.T) {
	encode := func(pts []model.Point, c Codec, comp Compression) []byte {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, pts, c, comp))
		return buf.Bytes()
	}

	truncated := encode(samplePoints, Binary{}, CompressionNone)
	truncated = truncated[:len(truncated)-binaryPointSize]

	tests := []struct {
		name   string
		data   []byte
		want   int64
		wantOK bool
	}{
		{"Empty", nil, 0, true},
		{"Binary", encode(samplePoints, Binary{}, CompressionNone), int64(len(samplePoints)), true},
		{"BinaryTruncated", truncated, int64(len(samplePoints) - 1), true},
		{"BinaryShortHeader", []byte("CPTS\x01"), 0, true},
		{"Text", []byte("2 0 0 1 1"), 2, true},
		{"JSON", []byte(`{"points":[[0,0]]}`), 4, true},
		{"Zstd", encode(samplePoints, Binary{}, CompressionZSTD), 0, false},
		{"LZ4", encode(samplePoints, Text{}, CompressionLZ4), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head := tt.data[:min(len(tt.data), binaryHeaderSize)]
			got, ok := MaxPoints(head, int64(len(tt.data)))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, tt := range tests {
		if !tt.wantOK || len(tt.data) == 0 {
			continue
		}
		pts, _, err := Decode(bytes.NewReader(tt.data), FormatAuto)
		if err != nil {
			continue
		}
		bound, _ := MaxPoints(tt.data[:min(len(tt.data), binaryHeaderSize)], int64(len(tt.data)))
		assert.LessOrEqual(t, int64(len(pts)), bound, tt.name)
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"": FormatAuto, "TEXT": FormatText, "bin": FormatBinary, "json": FormatJSON} {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = For(FormatAuto)
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, "Unknown(42)", Format(42).String())
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression("zst")
	require.NoError(t, err)
	assert.Equal(t, CompressionZSTD, c)

	_, err = ParseCompression("gzip")
	assert.Error(t, err)
}

func TestWriteResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, 25, true))
	require.NoError(t, WriteResult(&buf, 0, false))
	require.NoError(t, WriteResult(&buf, math.MaxUint64, true))
	assert.Equal(t, "25\nnone\n18446744073709551615\n", buf.String())
}
