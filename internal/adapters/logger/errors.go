package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain,
// as zerr.Error does.
type messager interface {
	Message() string
}

type metadataCarrier interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain of err. zerr links contribute their own
// message and metadata; the first standard error ends the walk with its full text.
// Links without a message, as produced by attaching metadata to a standard error,
// hand their metadata to the next link.
func collectErrorEntries(err error) []ErrorEntry {
	var (
		entries []ErrorEntry
		pending map[string]any
	)

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		var meta map[string]any
		if c, ok := current.(metadataCarrier); ok {
			meta = c.Metadata()
		}
		if pending != nil {
			if meta == nil {
				meta = make(map[string]any, len(pending))
			}
			maps.Copy(meta, pending)
			pending = nil
		}

		if m.Message() == "" && errors.Unwrap(current) != nil {
			pending = meta
		} else {
			entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
		}
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders entries as an "Error:" line followed by a "Caused by:" list.
// Metadata keys are sorted and printed below their message.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, e := range entries {
		msgLines := strings.Split(e.Message, "\n")

		var first, indent string
		if i == 0 {
			first = "Error: "
			indent = "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			first = "    → "
			indent = "      "
		}

		lines = append(lines, first+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, k := range slices.Sorted(maps.Keys(e.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, e.Metadata[k]))
		}
	}
	return strings.Join(lines, "\n")
}
