package durations

import (
	"strconv"
	"strings"
	"time"
)

var units = []struct {
	size time.Duration
	name string
}{
	{24 * time.Hour, "day"},
	{time.Hour, "hour"},
	{time.Minute, "minute"},
}

func amount(n string, unit string) string {
	if n != "1" {
		unit += "s"
	}
	return n + " " + unit
}

// NiceDuration formats dur for people, e.g. "1 day 2 hours 5 seconds". Sub-second precision is kept down to
// the millisecond.
func NiceDuration(dur time.Duration) string {
	if dur < 0 {
		dur = 0
	}

	var parts []string

	for _, u := range units {
		if dur >= u.size {
			n := dur / u.size
			dur -= n * u.size
			parts = append(parts, amount(strconv.FormatInt(int64(n), 10), u.name))
		}
	}

	if dur > 0 || len(parts) == 0 {
		secs := dur.Round(time.Millisecond).Seconds()
		parts = append(parts, amount(strconv.FormatFloat(secs, 'f', -1, 64), "second"))
	}

	return strings.Join(parts, " ")
}

// Wait formats how long someone has to wait, rounded up to the next whole second
func Wait(dur time.Duration) string {
	if rem := dur % time.Second; rem != 0 {
		dur += time.Second - rem
	}
	return NiceDuration(dur)
}
