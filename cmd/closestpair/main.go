// Command closestpair prints the minimum squared distance between any two
// points of a point set.
//
// The point set is read from stdin, a file, or a configured blob store:
//
//	closestpair < points.txt
//	closestpair --input points.cpts
//	closestpair --store s3://bucket/inputs --key grid.cpts
//
// Sub-commands solve many stored sets at once (batch) and write generated
// sets for benchmarks and fixtures (gen).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
