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
	"fmt"
)

// 📈 Stats aggregates outcomes.
//
// The zero value is the identity for Merge, and Merge is field-wise addition,
// so partitions can be folded in any order. Every file counted in Processed is
// counted in exactly one of Copied, Skipped or Errors. TraversalErrors are
// included in Errors but have no matching Processed entry.
type Stats struct {
	Processed       int `json:"processed"`
	Copied          int `json:"copied"`
	Skipped         int `json:"skipped"`
	Errors          int `json:"errors"`
	TraversalErrors int `json:"traversal_errors"`
}

// Record counts one outcome.
func (s *Stats) Record(o Outcome) {
	s.Processed++
	switch o.Kind {
	case Copied:
		s.Copied++
	case SkippedExisting, SkippedUnsupported:
		s.Skipped++
	default:
		s.Errors++
	}
}

// Merge returns the field-wise sum of s and other.
func (s Stats) Merge(other Stats) Stats {
	return Stats{
		Processed:       s.Processed + other.Processed,
		Copied:          s.Copied + other.Copied,
		Skipped:         s.Skipped + other.Skipped,
		Errors:          s.Errors + other.Errors,
		TraversalErrors: s.TraversalErrors + other.TraversalErrors,
	}
}

// AddTraversalErrors adds errors that were not tied to a processed file.
func (s *Stats) AddTraversalErrors(n int) {
	s.Errors += n
	s.TraversalErrors += n
}

// Consistent reports whether every processed file was counted exactly once.
func (s Stats) Consistent() bool {
	return s.Processed == s.Copied+s.Skipped+(s.Errors-s.TraversalErrors)
}

// String returns the human readable summary line
func (s Stats) String() string {
	return fmt.Sprintf("processed=%d copied=%d skipped=%d errors=%d", s.Processed, s.Copied, s.Skipped, s.Errors)
}
