package batch

import (
	"github.com/hupe1980/closestpair"
	"github.com/hupe1980/closestpair/codec"
	"github.com/hupe1980/closestpair/resource"
)

type options struct {
	controller       *resource.Controller
	logger           *closestpair.Logger
	metricsCollector closestpair.MetricsCollector
	format           codec.Format
}

// Option configures a Runner.
type Option func(*options)

// WithController sets the resource controller bounding workers, point-buffer
// memory and read throughput. The default allows a single worker.
func WithController(rc *resource.Controller) Option {
	return func(o *options) {
		if rc != nil {
			o.controller = rc
		}
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *closestpair.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = closestpair.NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector shared by every Finder
// of the run. Pass nil to disable metrics collection.
func WithMetricsCollector(mc closestpair.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = closestpair.NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithFormat forces the input format. The default detects it per set.
func WithFormat(f codec.Format) Option {
	return func(o *options) {
		o.format = f
	}
}
