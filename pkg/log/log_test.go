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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/relo/pkg/status"
)

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })
	buf := &bytes.Buffer{}
	return New(buf, zerolog.New(zerolog.NewTestWriter(t))), buf
}

func lines(buf *bytes.Buffer) []string {
	var out []string
	for _, l := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		out = append(out, strings.TrimRight(l, " "))
	}
	return out
}

func TestLogOutcome(t *testing.T) {
	tests := []struct {
		name     string
		quiet    bool
		verbose  bool
		outcome  status.Outcome
		want     string
		wantNone bool
	}{
		{
			name:    "copied_shows_bucket_path",
			outcome: status.Outcome{Kind: status.Copied, Source: "/src/a.png", Destination: "/dst/2024/03-07/a.png", Method: status.MethodLinked},
			want:    "2024/03-07/a.png",
		},
		{
			name:    "existing_is_shown",
			outcome: status.Outcome{Kind: status.SkippedExisting, Source: "/src/a.png", Destination: "/dst/2024/03-07/a.png"},
			want:    "skipped_existing",
		},
		{
			name:     "unsupported_hidden_by_default",
			outcome:  status.Outcome{Kind: status.SkippedUnsupported, Source: "/src/b.txt"},
			wantNone: true,
		},
		{
			name:    "unsupported_shown_when_verbose",
			verbose: true,
			outcome: status.Outcome{Kind: status.SkippedUnsupported, Source: "/src/b.txt"},
			want:    "b.txt",
		},
		{
			name:     "quiet_hides_copies",
			quiet:    true,
			outcome:  status.Outcome{Kind: status.Copied, Source: "/src/a.png", Destination: "/dst/2024/03-07/a.png", Method: status.MethodCopied},
			wantNone: true,
		},
		{
			name:    "quiet_keeps_failures",
			quiet:   true,
			outcome: status.Outcome{Kind: status.Failed, Source: "/src/c.jpg", Err: errors.New("boom")},
			want:    "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(t)
			logger.SetQuiet(tt.quiet)
			logger.SetVerbose(tt.verbose)

			logger.LogOutcome(context.Background(), tt.outcome)

			if tt.wantNone {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestRunLifecycle(t *testing.T) {
	ctx := context.Background()
	logger, buf := newTestLogger(t)

	logger.StartRun(ctx, RunOperation{Source: "/src", Destination: "/dst", Jobs: 4})
	logger.LogOutcome(ctx, status.Outcome{Kind: status.Copied, Source: "/src/a.png", Destination: "/dst/2024/03-07/a.png", Method: status.MethodCopied})
	logger.EndRun(ctx, status.Stats{Processed: 1, Copied: 1})

	got := lines(buf)
	require.Len(t, got, 4)
	assert.Equal(t, "[relocating /src]", got[0])
	assert.Equal(t, "◆ /dst • 4 jobs", got[1])
	assert.Contains(t, got[2], "2024/03-07/a.png")
	assert.Contains(t, got[3], "processed=1 copied=1 skipped=0 errors=0")
}

func TestStartRunAutoJobs(t *testing.T) {
	logger, buf := newTestLogger(t)
	logger.StartRun(context.Background(), RunOperation{Source: "/src", Destination: "/dst"})
	assert.Equal(t, "◆ /dst • auto", lines(buf)[1])
}

func TestEndRunWithoutStart(t *testing.T) {
	logger, buf := newTestLogger(t)
	logger.EndRun(context.Background(), status.Stats{Processed: 3})
	assert.Empty(t, buf.String())
}

func TestLoggerContext(t *testing.T) {
	logger, _ := newTestLogger(t)
	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	assert.Panics(t, func() {
		FromContext(context.Background())
	})
}

func TestHeaderAndWarning(t *testing.T) {
	logger, buf := newTestLogger(t)

	logger.Header("v1.2.3")
	logger.Warningf("%d entries could not be relocated", 2)

	assert.Equal(t, []string{
		"relo v1.2.3",
		"⚠️  2 entries could not be relocated",
	}, lines(buf))
}
