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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/walteh/relo/pkg/bucket"
	"github.com/walteh/relo/pkg/classify"
	"github.com/walteh/relo/pkg/copier"
	"github.com/walteh/relo/pkg/status"
	"github.com/walteh/relo/pkg/walk"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔧 Options configures a relocation
type Options struct {
	// Source is the directory tree to relocate from
	Source string
	// Destination is the root of the dated tree, created if absent
	Destination string
	// Jobs is the number of workers; <= 0 means runtime.GOMAXPROCS(0)
	Jobs int
	// Copier performs the per-file copy; nil uses copier.New with defaults
	Copier *copier.Copier
	// Observer, if set, is called once per file from the worker goroutines
	Observer func(status.Outcome)
}

// 🚚 Relocate copies every supported file below opts.Source into
// opts.Destination/YYYY/MM-DD.
//
// Only an invalid source or an uncreatable destination root fail the run;
// those are detected before anything is written. Per-file failures and
// unreadable entries are counted in the returned Stats. If ctx is cancelled
// workers stop taking new files and the Stats processed so far are returned
// together with the context error.
func Relocate(ctx context.Context, opts Options) (status.Stats, error) {
	logger := zerolog.Ctx(ctx)

	if opts.Destination == "" {
		return status.Stats{}, errors.New("destination is required")
	}

	res, err := walk.Enumerate(ctx, opts.Source)
	if err != nil {
		return status.Stats{}, errors.Errorf("enumerating source: %w", err)
	}

	if err := os.MkdirAll(opts.Destination, bucket.DirPerm); err != nil {
		return status.Stats{}, errors.Errorf("creating destination %s: %w", opts.Destination, err)
	}

	cp := opts.Copier
	if cp == nil {
		cp = copier.New(copier.Options{})
	}

	workers := WorkerCount(opts.Jobs, len(res.Files))
	logger.Info().
		Str("source", opts.Source).
		Str("destination", opts.Destination).
		Int("files", len(res.Files)).
		Int("workers", workers).
		Msg("relocating")

	// one partition per worker, merged after Wait
	parts := make([]status.Stats, workers)
	queue := make(chan walk.FileEntry)

	var g errgroup.Group
	g.Go(func() error {
		defer close(queue)
		for _, f := range res.Files {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case queue <- f:
			}
		}
		return nil
	})

	for w := range parts {
		part := &parts[w]
		g.Go(func() error {
			for f := range queue {
				if err := ctx.Err(); err != nil {
					return err
				}
				o := relocateOne(ctx, cp, f, opts.Destination)
				part.Record(o)
				logOutcome(logger, o)
				if opts.Observer != nil {
					opts.Observer(o)
				}
			}
			return nil
		})
	}

	waitErr := g.Wait()

	var total status.Stats
	for _, p := range parts {
		total = total.Merge(p)
	}
	total.AddTraversalErrors(res.Errors)
	if !total.Consistent() {
		logger.Error().Stringer("stats", total).Msg("stats do not account for every processed file")
	}

	if waitErr != nil {
		logger.Warn().Err(waitErr).Stringer("stats", total).Msg("relocation interrupted")
		return total, errors.Errorf("relocation interrupted: %w", waitErr)
	}

	logger.Info().
		Int("processed", total.Processed).
		Int("copied", total.Copied).
		Int("skipped", total.Skipped).
		Int("errors", total.Errors).
		Msg("relocation complete")

	return total, nil
}

// WorkerCount sizes the pool: jobs if positive, otherwise GOMAXPROCS, never
// more than files and never less than one.
func WorkerCount(jobs, files int) int {
	n := jobs
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > files {
		n = files
	}
	if n < 1 {
		n = 1
	}
	return n
}

// 📄 relocateOne classifies f and copies it when accepted
func relocateOne(ctx context.Context, cp *copier.Copier, f walk.FileEntry, dest string) status.Outcome {
	if classify.Classify(f.Name, filepath.Ext(f.Name)) == classify.Reject {
		return status.Outcome{Kind: status.SkippedUnsupported, Source: f.Path}
	}
	return cp.CopyOne(ctx, f.Path, dest)
}

func logOutcome(logger *zerolog.Logger, o status.Outcome) {
	switch o.Kind {
	case status.Copied:
		logger.Info().
			Str("source", o.Source).
			Str("destination", o.Destination).
			Str("method", string(o.Method)).
			Msg("copied")
	case status.SkippedExisting:
		logger.Info().
			Str("source", o.Source).
			Str("destination", o.Destination).
			Msg("skipped existing")
	case status.SkippedUnsupported:
		logger.Debug().
			Str("source", o.Source).
			Msg("skipped unsupported")
	case status.Failed:
		logger.Error().
			Err(o.Err).
			Str("source", o.Source).
			Str("destination", o.Destination).
			Msg("copy failed")
	}
}
