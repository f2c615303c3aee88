package closestpair

import (
	"context"
)

type options struct {
	ctx              context.Context
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Finder.
type Option func(*options)

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &closestpair.BasicMetricsCollector{}
//	f := closestpair.New(points, closestpair.WithMetricsCollector(metrics))
//	f.Value()
//	fmt.Println(metrics.GetStats().SolveCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithContext sets the context attached to log records.
// The computation itself is not cancellable.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		ctx:              context.Background(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
