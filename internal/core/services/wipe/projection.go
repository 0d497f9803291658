// Package wipe projects the next wipe of a server from its last recorded one.
package wipe

import (
	"time"

	"rust-wipe-tracker/internal/core/domain"
)

// Interval is the assumed time between two wipes. Every server is treated as
// wiping exactly this long after its last recorded wipe.
const Interval = 30 * 24 * time.Hour

// NextWipe returns the last wipe plus Interval, keeping the offset of the
// source timestamp. ok is false when the server has no recorded wipe.
func NextWipe(info *domain.ServerInfo) (next time.Time, ok bool) {
	if info == nil || info.LastWipe == nil {
		return time.Time{}, false
	}
	return info.LastWipe.Add(Interval), true
}

// Until breaks the time left before next into days, hours and minutes,
// truncated to the minute. A wipe that is due or past is reported as overdue.
func Until(next, now time.Time) domain.Countdown {
	remaining := next.Sub(now)
	if remaining <= 0 {
		return domain.Countdown{Overdue: true}
	}

	day := 24 * time.Hour
	return domain.Countdown{
		Days:    int(remaining / day),
		Hours:   int(remaining % day / time.Hour),
		Minutes: int(remaining % time.Hour / time.Minute),
	}
}
