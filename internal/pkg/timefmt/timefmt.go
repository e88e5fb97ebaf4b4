// Package timefmt formats durations the way station screens display them.
package timefmt

import (
	"fmt"
	"time"
)

// MinutesSeconds renders a duration as "m:ss", e.g. "3:07". Negative
// durations render as "0:00".
func MinutesSeconds(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
