// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/relo/pkg/config"
	"github.com/walteh/relo/pkg/copier"
	"github.com/walteh/relo/pkg/log"
	"github.com/walteh/relo/pkg/operation"
	"github.com/walteh/relo/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the command line flags
type rootOpts struct {
	source     string
	dest       string
	configFile string
	jobs       int
	debug      bool
	noLink     bool
	quiet      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	o := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "relo",
		Short: "Copy media files into a date organized tree",
		Long: `relo walks a source directory and copies every supported media file into
<dest>/<YYYY>/<MM-DD>/<name>, using the file's modification time.

Files that already exist at their destination are skipped, so a run can be
repeated safely. On the same volume files are hard linked instead of copied.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&o.source, "source", "s", "", "source directory to relocate from")
	cmd.Flags().StringVarP(&o.dest, "dest", "d", "", "destination root for the dated tree")
	cmd.Flags().IntVarP(&o.jobs, "jobs", "j", 0, "number of parallel workers (default: number of CPUs)")
	cmd.Flags().StringVarP(&o.configFile, "config", "c", "", "config file path (.yaml, .json or .hcl)")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&o.noLink, "no-link", false, "always copy bytes, never hard link")
	cmd.Flags().BoolVar(&o.quiet, "quiet", false, "only print failures and the summary")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "also print unsupported files")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// 🔧 resolveConfig merges the config file, if any, with the flags that were set
func (o *rootOpts) resolveConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		loaded, err := config.LoadConfig(ctx, o.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
		zerolog.Ctx(ctx).Debug().Str("config", cfg.Location()).Msg("loaded config file")
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = o.source
	}
	if flags.Changed("dest") {
		cfg.Destination = o.dest
	}
	if flags.Changed("jobs") {
		if o.jobs <= 0 {
			return nil, errors.Errorf("--jobs must be positive, got %d", o.jobs)
		}
		cfg.Jobs = o.jobs
	}
	if o.noLink {
		disabled := false
		cfg.Link = &disabled
	}
	if o.debug {
		cfg.LogLevel = zerolog.DebugLevel.String()
	}

	if cfg.Source == "" {
		return nil, errors.New("source is required (-s/--source)")
	}
	if cfg.Destination == "" {
		return nil, errors.New("destination is required (-d/--dest)")
	}

	for _, p := range []*string{&cfg.Source, &cfg.Destination} {
		abs, err := filepath.Abs(*p)
		if err != nil {
			return nil, errors.Errorf("getting absolute path of %s: %w", *p, err)
		}
		*p = abs
	}

	return cfg, config.Validate(ctx, cfg)
}

func setupLogging(cmd *cobra.Command, level zerolog.Level) zerolog.Logger {
	zerolog.SetGlobalLevel(level)
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

func (o *rootOpts) run(cmd *cobra.Command) error {
	ctx := cmd.Context()

	lvl := zerolog.InfoLevel
	if o.debug {
		lvl = zerolog.DebugLevel
	}
	logger := setupLogging(cmd, lvl)
	ctx = logger.WithContext(ctx)

	cfg, err := o.resolveConfig(ctx, cmd)
	if err != nil {
		_ = cmd.Usage()
		return err
	}

	if lvl, err = cfg.Level(); err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)

	reporter := log.New(cmd.OutOrStdout(), logger)
	reporter.SetQuiet(o.quiet)
	reporter.SetVerbose(o.verbose)

	return relocate(log.NewContext(ctx, reporter), cfg)
}

// 🚚 relocate runs one relocation, reporting through the context's console logger
func relocate(ctx context.Context, cfg *config.Config) error {
	reporter := log.FromContext(ctx)

	reporter.Header(GetVersionInfo().Version)
	reporter.StartRun(ctx, log.RunOperation{
		Source:      cfg.Source,
		Destination: cfg.Destination,
		Jobs:        cfg.Jobs,
	})

	stats, err := operation.Relocate(ctx, operation.Options{
		Source:      cfg.Source,
		Destination: cfg.Destination,
		Jobs:        cfg.Jobs,
		Copier: copier.New(copier.Options{
			DisableLink: !cfg.LinkEnabled(),
			BufferSize:  cfg.BufferSize,
		}),
		Observer: func(o status.Outcome) {
			reporter.LogOutcome(ctx, o)
		},
	})

	reporter.EndRun(ctx, stats)

	if err != nil {
		return errors.Errorf("relocating %s: %w", cfg.Source, err)
	}

	if stats.Errors > 0 {
		reporter.Warningf("%d entries could not be relocated, rerun with --debug for details", stats.Errors)
	}

	return nil
}
