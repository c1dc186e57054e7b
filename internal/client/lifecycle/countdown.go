package lifecycle

import (
	"fmt"
	"time"
)

// EndedText is shown once an auction's end instant has passed.
const EndedText = "Ended"

const (
	msPerDay    = 86_400_000
	msPerHour   = 3_600_000
	msPerMinute = 60_000
	msPerSecond = 1_000
)

// Remaining is the time left until an auction ends, split into whole units.
type Remaining struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Countdown splits end-now into days/hours/minutes/seconds. The boolean is
// false when the auction has already ended (end <= now).
func Countdown(now, end time.Time) (Remaining, bool) {
	left := end.Sub(now)
	if left <= 0 {
		return Remaining{}, false
	}

	ms := left.Milliseconds()
	r := Remaining{Days: ms / msPerDay}
	ms %= msPerDay
	r.Hours = ms / msPerHour
	ms %= msPerHour
	r.Minutes = ms / msPerMinute
	ms %= msPerMinute
	r.Seconds = ms / msPerSecond
	return r, true
}

// String renders the two most significant non-zero units.
func (r Remaining) String() string {
	switch {
	case r.Days > 0:
		return fmt.Sprintf("%dd %dh", r.Days, r.Hours)
	case r.Hours > 0:
		return fmt.Sprintf("%dh %dm", r.Hours, r.Minutes)
	case r.Minutes > 0:
		return fmt.Sprintf("%dm %ds", r.Minutes, r.Seconds)
	default:
		return fmt.Sprintf("%ds", r.Seconds)
	}
}

// TotalSeconds folds the units back into whole seconds.
func (r Remaining) TotalSeconds() int64 {
	return r.Days*86400 + r.Hours*3600 + r.Minutes*60 + r.Seconds
}

// CountdownText is the display text for the time left, or EndedText.
func CountdownText(now, end time.Time) string {
	r, ok := Countdown(now, end)
	if !ok {
		return EndedText
	}
	return r.String()
}
