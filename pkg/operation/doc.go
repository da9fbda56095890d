/*
Package operation runs a relocation from a source tree into a dated destination tree.

	+-------------+
	|    walk     |
	| (Enumerate) |
	+------+------+
	       |  []FileEntry
	+------+------+
	|  producer   |
	+------+------+
	       |  unbuffered queue
	+------+------+------+
	|      |      |      |
	w1     w2     ...    wN   classify -> copier.CopyOne
	|      |      |      |
	+------+------+------+
	       |  status.Stats per worker
	+------+------+
	|    Merge    |
	+-------------+

🔄 Flow:
1. Enumerate the source; a missing or non-directory source aborts the run
2. Create the destination root
3. Fan files out to a bounded errgroup of workers
4. Each worker classifies its file and, if accepted, copies it
5. Worker partitions are merged and traversal errors are added

⚡ Guarantees:
- processed == copied + skipped + per-file errors, for any worker count
- per-file failures never abort the run
- cancellation stops workers between files and still returns partial stats

🔍 Example:

	stats, err := operation.Relocate(ctx, operation.Options{
		Source:      "/Volumes/CARD/DCIM",
		Destination: "/archive/photos",
		Jobs:        8,
	})
*/
package operation
