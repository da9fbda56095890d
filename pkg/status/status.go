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

// 📊 Kind is the result of relocating a single file
type Kind int

const (
	Copied             Kind = iota // New file or link materialized at the destination
	SkippedExisting                // Destination already present, left untouched
	SkippedUnsupported             // Rejected by the classifier
	Failed                         // I/O error, see Outcome.Err
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case Copied:
		return "copied"
	case SkippedExisting:
		return "skipped_existing"
	case SkippedUnsupported:
		return "skipped_unsupported"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// 🔗 Method tells how a copied file was materialized
type Method string

const (
	MethodLinked Method = "linked" // same-volume hard link
	MethodCopied Method = "copied" // full byte copy
)

// 📄 Outcome is produced once per discovered file
type Outcome struct {
	Kind        Kind   // What happened
	Source      string // Source file path
	Destination string // Destination file path, empty if never resolved
	Method      Method // Only set for Copied
	Err         error  // Only set for Failed
}

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o.Kind {
	case Copied:
		return fmt.Sprintf("%s %s -> %s (%s)", o.Kind, o.Source, o.Destination, o.Method)
	case SkippedExisting:
		return fmt.Sprintf("%s %s -> %s", o.Kind, o.Source, o.Destination)
	case Failed:
		return fmt.Sprintf("%s %s: %v", o.Kind, o.Source, o.Err)
	default:
		return fmt.Sprintf("%s %s", o.Kind, o.Source)
	}
}
