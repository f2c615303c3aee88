package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrInvalidName is returned when a blob name cannot address an object in
// the store.
var ErrInvalidName = errors.New("blobstore: invalid blob name")

// BlobStore is an abstraction for accessing immutable data blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Put writes a blob atomically, replacing any existing one.
	Put(ctx context.Context, name string, data []byte) error
	// List returns the sorted names of all blobs with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// ReadAt reads len(p) bytes at offset off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// ReadRange returns a reader over length bytes starting at off.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// NewReader returns a sequential reader over the whole blob.
// Mappable blobs are served from memory; others issue one range read.
func NewReader(ctx context.Context, b Blob) io.Reader {
	return &blobReader{ctx: ctx, blob: b}
}

type blobReader struct {
	ctx  context.Context
	blob Blob
	rc   io.ReadCloser
	err  error
}

func (r *blobReader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.rc == nil {
		if r.blob.Size() == 0 {
			r.err = io.EOF
			return 0, io.EOF
		}
		rc, err := r.blob.ReadRange(r.ctx, 0, r.blob.Size())
		if err != nil {
			r.err = err
			return 0, err
		}
		r.rc = rc
	}
	n, err := r.rc.Read(p)
	if err != nil {
		_ = r.rc.Close()
		r.err = err
	}
	return n, err
}

// ReadAll reads the full content of a blob.
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}
	return io.ReadAll(NewReader(ctx, b))
}

// rangeBounds clamps [off, off+length) to a blob of the given size.
func rangeBounds(size, off, length int64) (int64, int64) {
	if off < 0 {
		off = 0
	}
	if off > size {
		off = size
	}
	end := off + length
	if length < 0 || end > size {
		end = size
	}
	return off, end
}
