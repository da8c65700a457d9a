package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/xform/internal/ui/style"
)

// messager matches zerr.Error, which reports its own message without the chain.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens an error chain into entries, outermost first.
// Joined errors contribute each of their branches in order. Levels without a
// message of their own pass their metadata on to the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	c := collector{}
	c.walk(err)
	return c.entries
}

type collector struct {
	entries []ErrorEntry
	carry   map[string]any
}

func (c *collector) walk(err error) {
	for err != nil {
		switch e := err.(type) {
		case messager:
			var meta map[string]any
			if m, ok := err.(metadataer); ok {
				meta = m.Metadata()
			}
			if e.Message() == "" {
				c.carry = merge(c.carry, meta)
			} else {
				c.emit(e.Message(), meta)
			}
			err = errors.Unwrap(err)
		case interface{ Unwrap() []error }:
			for _, branch := range e.Unwrap() {
				c.walk(branch)
			}
			return
		default:
			c.emit(err.Error(), nil)
			return
		}
	}
}

func (c *collector) emit(msg string, meta map[string]any) {
	c.entries = append(c.entries, ErrorEntry{Message: msg, Metadata: merge(c.carry, meta)})
	c.carry = nil
}

func merge(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// formatErrorEntries renders entries as a main error followed by its causes.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")
		indent := "      "
		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			indent = "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    "+style.Arrow+" "+msgLines[0])
		}
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
