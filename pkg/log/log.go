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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/relo/pkg/status"
)

// 📦 RunOperation describes a relocation for logging
type RunOperation struct {
	Source      string // Source root
	Destination string // Destination root
	Jobs        int    // Requested workers, 0 for the default
}

// 🎯 Logger writes human friendly console output next to structured logs.
// It is safe for concurrent use, so it can observe worker outcomes directly.
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
	currentOp *RunOperation
	quiet     bool
	verbose   bool
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
	}
}

// SetQuiet suppresses per-file lines
func (l *Logger) SetQuiet(quiet bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quiet = quiet
}

// SetVerbose shows unsupported files too
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = verbose
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 StartRun starts a new relocation
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op

	fmt.Fprintf(l.console, "[relocating %s]\n",
		color.New(color.FgCyan).Sprint(op.Source))

	jobs := "auto"
	if op.Jobs > 0 {
		jobs = fmt.Sprintf("%d jobs", op.Jobs)
	}
	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Destination),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(jobs))
}

// 📝 LogOutcome prints a single file outcome
func (l *Logger) LogOutcome(ctx context.Context, o status.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.zlog.Trace().Str("kind", o.Kind.String()).Msg(l.formatter.FormatOutcome(o))

	if l.quiet && o.Kind != status.Failed {
		return
	}
	if o.Kind == status.SkippedUnsupported && !l.verbose {
		return
	}
	fmt.Fprintln(l.console, status.FormatOutcomeLine(o))
}

// 📝 EndRun prints the summary of the current relocation
func (l *Logger) EndRun(ctx context.Context, stats status.Stats) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	summary := l.formatter.FormatSummary(stats)
	if stats.Errors > 0 {
		fmt.Fprintln(l.console, color.New(color.FgYellow).Sprint(summary))
	} else {
		fmt.Fprintln(l.console, color.New(color.FgGreen).Sprint(summary))
	}

	l.zlog.Debug().
		Str("source", l.currentOp.Source).
		Stringer("stats", stats).
		Msg("run summary printed")

	l.currentOp = nil
}

// 📝 Header prints the run banner with the build version
func (l *Logger) Header(version string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n",
		color.New(color.Bold, color.FgCyan).Sprint("relo"),
		color.New(color.Faint).Sprint(version))
}

// ⚠️ Warningf prints a warning line and mirrors it to the structured log
func (l *Logger) Warningf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}
