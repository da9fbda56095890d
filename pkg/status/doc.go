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

/*
Package status models what happened to each file during a relocation and how
those results add up.

	+-----------+           +---------+
	|  Outcome  |  Record   |  Stats  |
	| (per file)| --------> | (merge) |
	+-----------+           +---------+

🎯 Purpose:
- Names the four per-file results (copied, skipped existing, skipped
  unsupported, failed)
- Aggregates them into Stats partitions that merge by field-wise addition
- Formats outcomes and summaries for people

⚡ Key Invariant:
For every Stats built with Record and Merge,

	Processed == Copied + Skipped + (Errors - TraversalErrors)

Merge is commutative and associative and the zero value is its identity, so a
worker pool may partition files however it likes.

🔍 Example:

	var part status.Stats
	part.Record(status.Outcome{Kind: status.Copied})
	total := status.Stats{}.Merge(part)
	total.AddTraversalErrors(walkErrors)
*/
package status
