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

package status

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestDefaultFileFormatter(t *testing.T) {
	f := NewDefaultFileFormatter()

	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{
			name:    "linked",
			outcome: Outcome{Kind: Copied, Source: "a.jpg", Destination: "d/a.jpg", Method: MethodLinked},
			want:    "🔗 Linked a.jpg -> d/a.jpg",
		},
		{
			name:    "copied",
			outcome: Outcome{Kind: Copied, Source: "a.jpg", Destination: "d/a.jpg", Method: MethodCopied},
			want:    "✨ Copied a.jpg -> d/a.jpg",
		},
		{
			name:    "exists",
			outcome: Outcome{Kind: SkippedExisting, Source: "a.jpg", Destination: "d/a.jpg"},
			want:    "👍 Exists d/a.jpg",
		},
		{
			name:    "unsupported",
			outcome: Outcome{Kind: SkippedUnsupported, Source: "a.txt"},
			want:    "⏭️  Unsupported a.txt",
		},
		{
			name:    "failed",
			outcome: Outcome{Kind: Failed, Source: "a.jpg", Err: errors.New("denied")},
			want:    "❌ Failed a.jpg: denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatOutcome(tt.outcome))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Equal(t, "✅ Done: processed=1 copied=1 skipped=0 errors=0", f.FormatSummary(Stats{Processed: 1, Copied: 1}))
	assert.True(t, strings.HasPrefix(f.FormatSummary(Stats{Processed: 1, Errors: 1}), "⚠️"))
}

func TestFormatOutcomeLine(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	dest := filepath.Join("dst", "2024", "03-07", "a.jpg")
	line := FormatOutcomeLine(Outcome{Kind: Copied, Source: "src/a.jpg", Destination: dest, Method: MethodCopied})

	assert.True(t, strings.HasPrefix(line, "    ✓ "), "line should be indented with a check mark: %q", line)
	assert.Contains(t, line, filepath.Join("2024", "03-07", "a.jpg"))
	assert.Contains(t, line, "copied")

	line = FormatOutcomeLine(Outcome{Kind: Failed, Source: "src/b.jpg", Err: errors.New("io")})
	assert.True(t, strings.HasPrefix(line, "    ✗ b.jpg"))
	assert.True(t, strings.HasSuffix(line, "io"))

	line = FormatOutcomeLine(Outcome{Kind: SkippedUnsupported, Source: "src/c.TXT"})
	assert.Contains(t, line, "txt")
}
