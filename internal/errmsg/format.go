// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpTrackLoad     Op = "load track"
	OpPlaybackStart Op = "start playback"
	OpPlayback      Op = "play audio"

	// Navigation
	OpTrackSelect Op = "select track"
	OpTrackNext   Op = "skip to next track"
	OpTrackPrev   Op = "go back to previous track"

	// Startup
	OpConfigLoad    Op = "load configuration"
	OpPlaylistBuild Op = "build playlist"
	OpLoggerInit    Op = "open log file"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
