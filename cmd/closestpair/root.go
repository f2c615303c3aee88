package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/closestpair"
	"github.com/hupe1980/closestpair/batch"
	"github.com/hupe1980/closestpair/blobstore"
	"github.com/hupe1980/closestpair/codec"
	"github.com/hupe1980/closestpair/resource"
)

// app holds the persistent flags shared by every command.
type app struct {
	configPath string
	format     string
	logLevel   string
	logJSON    bool
	store      string

	// resolved in PersistentPreRunE
	cfg    Config
	logger *closestpair.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		input string
		key   string
	)

	rootCmd := &cobra.Command{
		Use:   "closestpair",
		Short: "Print the minimum squared distance between any two points of a set",
		Long: `closestpair reads a point set and prints the minimum squared Euclidean
distance between any two of its points, or "none" when fewer than two
points are given.

Input is the text format "N x1 y1 ... xN yN" by default; binary and JSON
sets are detected automatically, optionally zstd or lz4 compressed.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.resolve,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if key != "" {
				return a.solveStored(cmd, key)
			}
			return a.solveStream(cmd, input)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.format, "format", "", "input format: auto, text, binary or json")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&a.logJSON, "log-json", false, "write logs as JSON")
	pf.StringVar(&a.store, "store", "", "blob store: DIR, file:///DIR, s3://BUCKET/PREFIX or minio://HOST/BUCKET/PREFIX")

	rootCmd.Flags().StringVarP(&input, "input", "i", "", "read the point set from a file instead of stdin")
	rootCmd.Flags().StringVar(&key, "key", "", "read the point set from the blob store")
	rootCmd.MarkFlagsMutuallyExclusive("input", "key")

	rootCmd.AddCommand(newBatchCmd(a), newGenCmd(a))
	return rootCmd
}

// resolve loads the config file and applies flag overrides.
func (a *app) resolve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if flags.Changed("store") {
		if cfg.Store, err = parseStoreURL(a.store, cfg.Store); err != nil {
			return err
		}
	}
	if _, err := codec.ParseFormat(cfg.Format); err != nil {
		return err
	}

	a.logger, err = newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) inputFormat() codec.Format {
	f, _ := codec.ParseFormat(a.cfg.Format)
	return f
}

func (a *app) controller() *resource.Controller {
	return resource.NewController(resource.Config{
		MaxWorkers:         a.cfg.Limits.Workers,
		MemoryLimitBytes:   a.cfg.Limits.MemoryLimit,
		IOLimitBytesPerSec: a.cfg.Limits.IOLimit,
	})
}

func (a *app) openStore(cmd *cobra.Command) (blobstore.BlobStore, error) {
	store, err := openStore(cmd.Context(), a.cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", a.cfg.Store.Type, err)
	}
	return store, nil
}

func (a *app) solveStream(cmd *cobra.Command, input string) error {
	ctx := cmd.Context()

	var r io.Reader = cmd.InOrStdin()
	source := "stdin"
	if input != "" && input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		r, source = f, input
	}

	pts, format, err := codec.Decode(r, a.inputFormat())
	a.logger.LogLoad(ctx, source, format.String(), len(pts), err)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	dist, ok := closestpair.New(pts,
		closestpair.WithContext(ctx),
		closestpair.WithLogger(a.logger),
	).Value()
	return codec.WriteResult(cmd.OutOrStdout(), dist, ok)
}

func (a *app) solveStored(cmd *cobra.Command, key string) error {
	store, err := a.openStore(cmd)
	if err != nil {
		return err
	}

	r := batch.NewRunner(store,
		batch.WithController(a.controller()),
		batch.WithLogger(a.logger),
		batch.WithFormat(a.inputFormat()),
	)
	res, err := r.Solve(cmd.Context(), key)
	if err != nil {
		return err
	}
	return codec.WriteResult(cmd.OutOrStdout(), res.Distance, res.OK)
}
