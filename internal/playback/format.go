package playback

import (
	"math"
	"strconv"
	"time"
)

// FormatTime renders a number of seconds as m:ss. Minutes are not padded
// and grow past 59 ("75:00"). Negative, NaN and infinite inputs render "0:00".
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	m := int(math.Floor(seconds / 60))
	s := int(math.Floor(math.Mod(seconds, 60)))
	if s <= 9 {
		return strconv.Itoa(m) + ":0" + strconv.Itoa(s)
	}
	return strconv.Itoa(m) + ":" + strconv.Itoa(s)
}

// FormatDuration is FormatTime for a time.Duration.
func FormatDuration(d time.Duration) string {
	return FormatTime(d.Seconds())
}

// progressPercent returns position as a percentage of duration, clamped
// to [0,100]. Unknown durations yield 0.
func progressPercent(position, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	p := float64(position) / float64(duration) * 100
	return min(max(p, 0), 100)
}
