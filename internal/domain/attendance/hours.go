package attendance

import "time"

// WorkedDuration sums clock_out - clock_in over the given sessions where both
// endpoints are set. Sessions still open contribute zero; they only flip the
// stillAccruing display flag. Multiple completed sessions are additive, which
// supports split work patterns within one day.
func WorkedDuration(sessions []Session) (worked time.Duration, stillAccruing bool) {
	for _, s := range sessions {
		if s.IsOpen() {
			stillAccruing = true
			continue
		}
		if d := s.Duration(); d > 0 {
			worked += d
		}
	}
	return worked, stillAccruing
}

// HasClockIn reports whether any session exists for the day. A clock-in is
// ground truth for presence regardless of session kind.
func HasClockIn(sessions []Session) bool {
	return len(sessions) > 0
}
