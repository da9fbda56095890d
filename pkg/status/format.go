package status

import (
	"fmt"
)

// FileFormatter defines how outcomes and run summaries should be formatted
type FileFormatter interface {
	// FormatOutcome formats a single file outcome
	FormatOutcome(o Outcome) string

	// FormatSummary formats the final statistics
	FormatSummary(s Stats) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatOutcome formats an outcome with emojis
func (f *DefaultFileFormatter) FormatOutcome(o Outcome) string {
	switch o.Kind {
	case Copied:
		if o.Method == MethodLinked {
			return fmt.Sprintf("🔗 Linked %s -> %s", o.Source, o.Destination)
		}
		return fmt.Sprintf("✨ Copied %s -> %s", o.Source, o.Destination)
	case SkippedExisting:
		return fmt.Sprintf("👍 Exists %s", o.Destination)
	case SkippedUnsupported:
		return fmt.Sprintf("⏭️  Unsupported %s", o.Source)
	case Failed:
		return fmt.Sprintf("❌ Failed %s: %v", o.Source, o.Err)
	default:
		return fmt.Sprintf("❔ Unknown %s", o.Source)
	}
}

// FormatSummary formats the final statistics, flagging runs with errors
func (f *DefaultFileFormatter) FormatSummary(s Stats) string {
	if s.Errors > 0 {
		return fmt.Sprintf("⚠️  Done with errors: %s", s)
	}
	return fmt.Sprintf("✅ Done: %s", s)
}
