package scheduling

import (
	"time"

	"meetsync/models"
)

// subtractBusy removes every busy interval from the window and returns the
// free remainder in ascending order. Busy intervals must be merged and
// sorted, as produced by BusyPeriodSet.
func subtractBusy(window models.TimeInterval, busy []models.TimeInterval) []models.TimeInterval {
	free := []models.TimeInterval{window}
	for _, block := range busy {
		var updated []models.TimeInterval
		for _, iv := range free {
			if !block.Overlaps(iv) {
				updated = append(updated, iv)
				continue
			}
			if block.Start.After(iv.Start) {
				updated = append(updated, models.TimeInterval{Start: iv.Start, End: block.Start})
			}
			if block.End.Before(iv.End) {
				updated = append(updated, models.TimeInterval{Start: block.End, End: iv.End})
			}
		}
		free = updated
	}
	return free
}

// alignUp rounds t up to the next grid boundary, measured from local
// midnight so proposals land on wall-clock grid marks.
func alignUp(t time.Time, grid time.Duration, loc *time.Location) time.Time {
	local := t.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	offset := local.Sub(midnight)
	aligned := offset.Truncate(grid)
	if aligned < offset {
		aligned += grid
	}
	return midnight.Add(aligned)
}

// localMidnight returns midnight of t's calendar day in loc.
func localMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// minuteOfDay returns t's local wall-clock position in minutes from midnight.
func minuteOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}
