package flashsale

import (
	"fmt"
	"time"
)

// Countdown is the remaining window duration decomposed into display units,
// each zero-padded to two digits.
type Countdown struct {
	Days    string `json:"days"`
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
}

// Remaining decomposes the duration until end into whole days, hours mod 24,
// minutes mod 60 and seconds mod 60 via floor division. The second return
// value is false exactly when the window has expired; callers must stop
// rendering countdown state then and re-evaluate their active set.
//
// Remaining is idempotent for a fixed now: the conventional one-second tick
// re-invokes it with fresh timestamps.
func Remaining(end, now time.Time) (Countdown, bool) {
	diff := end.Sub(now)
	if diff <= 0 {
		return Countdown{}, false
	}

	total := int64(diff / time.Second)
	return Countdown{
		Days:    pad(total / 86400),
		Hours:   pad(total / 3600 % 24),
		Minutes: pad(total / 60 % 60),
		Seconds: pad(total % 60),
	}, true
}

func pad(v int64) string {
	return fmt.Sprintf("%02d", v)
}
