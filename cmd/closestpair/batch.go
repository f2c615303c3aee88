package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/closestpair"
	"github.com/hupe1980/closestpair/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		prefix      string
		workers     int64
		memoryLimit int64
		ioLimit     int64
		stats       bool
	)

	cmd := &cobra.Command{
		Use:   "batch [KEY...]",
		Short: "Solve many point sets from the blob store concurrently",
		Long: `batch solves every named point set from the configured blob store and
prints one "KEY<TAB>RESULT" line per set, in argument order. Without keys,
every set under --prefix is solved. A failing set prints "KEY<TAB>error: ..."
and makes the exit status non-zero.`,
		RunE: func(cmd *cobra.Command, keys []string) error {
			flags := cmd.Flags()
			if flags.Changed("workers") {
				a.cfg.Limits.Workers = workers
			}
			if flags.Changed("memory-limit") {
				a.cfg.Limits.MemoryLimit = memoryLimit
			}
			if flags.Changed("io-limit") {
				a.cfg.Limits.IOLimit = ioLimit
			}

			ctx := cmd.Context()
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				if keys, err = store.List(ctx, prefix); err != nil {
					return err
				}
			}

			metrics := &closestpair.BasicMetricsCollector{}
			r := batch.NewRunner(store,
				batch.WithController(a.controller()),
				batch.WithLogger(a.logger),
				batch.WithMetricsCollector(metrics),
				batch.WithFormat(a.inputFormat()),
			)
			results, runErr := r.Run(ctx, keys)

			out := cmd.OutOrStdout()
			failed := 0
			for _, res := range results {
				switch {
				case res.Err != nil:
					failed++
					_, err = fmt.Fprintf(out, "%s\terror: %v\n", res.Name, res.Err)
				case !res.OK:
					_, err = fmt.Fprintf(out, "%s\tnone\n", res.Name)
				default:
					_, err = fmt.Fprintf(out, "%s\t%d\n", res.Name, res.Distance)
				}
				if err != nil {
					return err
				}
			}

			if stats {
				s := metrics.GetStats()
				fmt.Fprintf(cmd.ErrOrStderr(), "sets=%d failed=%d points=%d duplicates=%d avg_solve=%dns\n",
					s.BatchSets, s.BatchFailed, s.SolvePoints, s.SolveDuplicates, s.SolveAvgNanos)
			}

			if runErr != nil {
				return fmt.Errorf("%d of %d point sets failed", failed, len(results))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&prefix, "prefix", "", "solve every set under this prefix when no keys are given")
	f.Int64Var(&workers, "workers", 0, "maximum concurrent sets (default: config or number of CPUs)")
	f.Int64Var(&memoryLimit, "memory-limit", 0, "maximum point-buffer bytes held at once (0: unlimited)")
	f.Int64Var(&ioLimit, "io-limit", 0, "maximum input bytes read per second (0: unlimited)")
	f.BoolVar(&stats, "stats", false, "print run statistics to stderr")
	return cmd
}
