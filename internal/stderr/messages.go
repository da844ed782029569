// Package stderr captures output that C libraries (ALSA through the audio
// backend) write straight to file descriptor 2, so it cannot corrupt the TUI.
// Captured lines go to the log and to Messages.
package stderr

import (
	"bufio"
	"io"
	"strings"

	zlog "github.com/rs/zerolog/log"
)

// Messages receives captured stderr lines for display in the UI.
var Messages = make(chan string, 100)

// pump reads lines from r until EOF. Blank lines are skipped; when out is
// full the line is still logged but not forwarded.
func pump(r io.Reader, out chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		zlog.Warn().Str("source", "stderr").Msg(line)
		select {
		case out <- line:
		default:
		}
	}
}
