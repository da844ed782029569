// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var whitespace = regexp.MustCompile(`\s+`)

// StripANSI removes ANSI escape sequences so rendered output can be compared
// without style interference.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// NormalizeWhitespace collapses runs of whitespace into one space and trims
// the ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// Plain strips styling and normalizes whitespace in one go.
func Plain(s string) string {
	return NormalizeWhitespace(StripANSI(s))
}

// MeasureWidth returns the visual width of a string, ignoring ANSI codes.
func MeasureWidth(s string) int {
	return ansi.StringWidth(s)
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// SplitLines splits output into unstyled lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
