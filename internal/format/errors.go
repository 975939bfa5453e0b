// Package format implements the schema-aware format engine: detection of the
// template format from raw bytes, parsing delimited text into the row model,
// and validated writing back to any of the three formats. All operations are
// pure functions over byte slices and model values; file access belongs to
// the caller.
package format

import (
	"fmt"

	"github.com/cory-johannsen/h3tc/internal/schema"
)

// DetectionError reports content that matches no known format's header
// pattern.
type DetectionError struct {
	Reason string
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("unrecognized template format: %s", e.Reason)
}

// StructuralError reports row/column structure that violates a format's
// invariants, e.g. fewer than 3 header rows or data before the first map.
type StructuralError struct {
	Row    int // 1-based file row, 0 when the whole file is malformed
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("structural error at row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("structural error: %s", e.Reason)
}

// ParseError reports a required field whose value is malformed beyond
// default substitution, e.g. a non-numeric zone id.
type ParseError struct {
	Row   int // 1-based file row
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %s %q is not a valid value", e.Row, e.Field, e.Value)
}

// WriteError reports an attempt to write a pack whose shape does not match
// the target format. Writers never silently drop or invent data; reshaping
// is the converter's job.
type WriteError struct {
	Schema schema.ID
	Reason string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s template: %s", e.Schema.Name(), e.Reason)
}
