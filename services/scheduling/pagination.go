package scheduling

import "time"

// paginationFloor returns the instant the search may begin at. With no
// prior results that is simply now; otherwise it is one grid unit past the
// latest already-surfaced start, so every "show more" call is strictly
// monotonic regardless of how often it is repeated.
func paginationFloor(previous []time.Time, now time.Time, grid time.Duration) time.Time {
	if len(previous) == 0 {
		return now
	}
	latest := previous[0]
	for _, p := range previous[1:] {
		if p.After(latest) {
			latest = p
		}
	}
	floor := latest.Add(grid)
	if floor.Before(now) {
		return now
	}
	return floor
}
