package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/closestpair"
	"github.com/hupe1980/closestpair/blobstore"
	"github.com/hupe1980/closestpair/codec"
	"github.com/hupe1980/closestpair/internal/conv"
	"github.com/hupe1980/closestpair/model"
	"github.com/hupe1980/closestpair/resource"
)

const (
	// bytesPerPoint covers the point store plus the merge scratch buffer.
	bytesPerPoint = 16
	// headSize is enough of a blob to read a binary header or a
	// compression magic.
	headSize = 16
)

// Result is the outcome for one named point set.
type Result struct {
	Name string
	// Distance is the minimum squared distance. Valid only when OK is true.
	Distance uint64
	// OK is false when the set holds fewer than two points or failed.
	OK bool
	// Points is the number of decoded points.
	Points int
	// Format is the wire format the set was decoded with.
	Format codec.Format
	// Stats describes the computation.
	Stats closestpair.Stats
	// Err is a *SetError when the set could not be loaded or solved.
	Err error
}

// Runner solves named point sets from a BlobStore.
type Runner struct {
	store blobstore.BlobStore
	opts  options
}

// NewRunner creates a Runner reading from store.
func NewRunner(store blobstore.BlobStore, optFns ...Option) *Runner {
	o := options{
		controller:       resource.NewController(resource.Config{}),
		logger:           closestpair.NoopLogger(),
		metricsCollector: closestpair.NoopMetricsCollector{},
		format:           codec.FormatAuto,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return &Runner{store: store, opts: o}
}

// Run solves every named set and returns one Result per name, in input order.
// The returned error joins the *SetError of every failed set and is nil when
// all sets succeeded.
func (r *Runner) Run(ctx context.Context, names []string) ([]Result, error) {
	workers, err := conv.Int64ToInt(r.opts.controller.Config().MaxWorkers)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]Result, len(names))

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i, name := range names {
		g.Go(func() error {
			results[i] = r.runOne(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}

	elapsed := time.Since(start)
	r.opts.logger.WithCount(len(names)).LogBatch(ctx, len(names), len(errs), elapsed)
	r.opts.metricsCollector.RecordBatch(len(names), len(errs), elapsed)

	return results, errors.Join(errs...)
}

// Solve loads and solves a single named set.
func (r *Runner) Solve(ctx context.Context, name string) (Result, error) {
	res := r.runOne(ctx, name)
	return res, res.Err
}

func (r *Runner) runOne(ctx context.Context, name string) Result {
	res := Result{Name: name}
	logger := r.opts.logger.WithSet(name)

	fail := func(err error) Result {
		res.OK = false
		res.Err = &SetError{Name: name, Err: err}
		return res
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	blob, err := r.store.Open(ctx, name)
	if err != nil {
		res.Format = r.opts.format
		logger.LogLoad(ctx, name, res.Format.String(), 0, err)
		return fail(err)
	}
	defer func() { _ = blob.Close() }()

	// Reserve before decoding so a memory limit bounds the number of decoded
	// sets held at once. The reservation is trimmed to the real need after.
	rc := r.opts.controller
	held := r.reservation(ctx, blob)
	if err := rc.AcquireMemory(ctx, held); err != nil {
		return fail(err)
	}
	defer func() { rc.ReleaseMemory(held) }()

	pts, format, err := r.load(ctx, blob)
	res.Format = format
	logger.LogLoad(ctx, name, format.String(), len(pts), err)
	if err != nil {
		return fail(err)
	}
	res.Points = len(pts)

	need := int64(len(pts)) * bytesPerPoint
	if limit := rc.Config().MemoryLimitBytes; limit > 0 && need > limit {
		return fail(fmt.Errorf("%w: %d > %d bytes", resource.ErrExceedsLimit, need, limit))
	}
	switch {
	case need < held:
		rc.ReleaseMemory(held - need)
		held = need
	case need > held:
		rc.ReleaseMemory(held)
		held = 0
		if err := rc.AcquireMemory(ctx, need); err != nil {
			return fail(err)
		}
		held = need
	}

	if err := rc.AcquireWorker(ctx); err != nil {
		return fail(err)
	}
	defer rc.ReleaseWorker()

	f := closestpair.New(pts,
		closestpair.WithContext(ctx),
		closestpair.WithLogger(logger),
		closestpair.WithMetricsCollector(r.opts.metricsCollector),
	)
	res.Distance, res.OK = f.Value()
	res.Stats = f.Stats()
	return res
}

// reservation returns the bytes to hold while decoding blob. Without a limit
// nothing is held up front. Blobs whose point count cannot be bounded from
// their prefix, or whose bound exceeds the limit, hold the whole limit.
func (r *Runner) reservation(ctx context.Context, blob blobstore.Blob) int64 {
	limit := r.opts.controller.Config().MemoryLimitBytes
	if limit <= 0 || blob.Size() <= 0 {
		return 0
	}

	head := make([]byte, min(blob.Size(), headSize))
	n, err := blob.ReadAt(ctx, head, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return limit
	}

	bound, ok := codec.MaxPoints(head[:n], blob.Size())
	if !ok || bound > limit/bytesPerPoint {
		return limit
	}
	return bound * bytesPerPoint
}

// load decodes an opened set. Memory-backed binary blobs are decoded in
// place; everything else streams through the IO limiter.
func (r *Runner) load(ctx context.Context, blob blobstore.Blob) ([]model.Point, codec.Format, error) {
	if m, ok := blob.(blobstore.Mappable); ok && r.opts.format != codec.FormatText && r.opts.format != codec.FormatJSON {
		data, err := m.Bytes()
		if err == nil && codec.IsBinary(data) {
			pts, err := codec.DecodeBinaryBytes(data)
			return pts, codec.FormatBinary, err
		}
	}

	rd := resource.NewRateLimitedReader(ctx, blobstore.NewReader(ctx, blob), r.opts.controller)
	return codec.Decode(rd, r.opts.format)
}
