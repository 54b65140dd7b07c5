package timex

import "time"

// MsToUs widens a millisecond count to microseconds without overflow.
func MsToUs(ms uint32) uint64 { return uint64(ms) * 1000 }

// UsToDuration converts a microsecond count to a time.Duration.
func UsToDuration(us uint64) time.Duration { return time.Duration(us) * time.Microsecond }

// DurationToMs truncates d to whole milliseconds, saturating at the uint32
// range. Negative durations map to 0.
func DurationToMs(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	ms := d / time.Millisecond
	if ms > time.Duration(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(ms)
}
