package scheduling

import (
	"sort"

	"meetsync/models"

	"go.uber.org/zap"
)

// BusyPeriodSet holds normalized busy intervals per participant plus the
// cross-participant union used for conflict checks. Any participant's
// conflict makes a shared slot unusable, so the union is what the resolver
// subtracts from the horizon.
type BusyPeriodSet struct {
	byOwner map[string][]models.TimeInterval
	union   []models.TimeInterval
}

// NewBusyPeriodSet normalizes possibly unsorted, possibly overlapping raw
// intervals. A malformed interval (end <= start) is dropped and logged as a
// data anomaly, never treated as fatal.
func NewBusyPeriodSet(periods []models.BusyPeriod, logger *zap.Logger) *BusyPeriodSet {
	grouped := make(map[string][]models.TimeInterval)
	var all []models.TimeInterval

	for _, p := range periods {
		iv := p.Interval()
		if !iv.Valid() {
			logger.Warn("Dropping malformed busy period",
				zap.String("ownerId", p.OwnerID),
				zap.Time("start", p.Start),
				zap.Time("end", p.End))
			continue
		}
		grouped[p.OwnerID] = append(grouped[p.OwnerID], iv)
	}

	byOwner := make(map[string][]models.TimeInterval, len(grouped))
	for owner, ivs := range grouped {
		merged := mergeIntervals(ivs)
		byOwner[owner] = merged
		all = append(all, merged...)
	}

	return &BusyPeriodSet{
		byOwner: byOwner,
		union:   mergeIntervals(all),
	}
}

// Union returns the merged "anyone busy" interval list, sorted ascending.
func (s *BusyPeriodSet) Union() []models.TimeInterval {
	return s.union
}

// ForOwner returns the merged busy intervals of a single participant.
func (s *BusyPeriodSet) ForOwner(ownerID string) []models.TimeInterval {
	return s.byOwner[ownerID]
}

// Conflicts reports whether the interval overlaps any participant's busy time.
func (s *BusyPeriodSet) Conflicts(iv models.TimeInterval) bool {
	for _, busy := range s.union {
		if busy.Overlaps(iv) {
			return true
		}
		if !busy.Start.Before(iv.End) {
			break
		}
	}
	return false
}

// mergeIntervals sorts by start and merges overlapping or back-to-back
// intervals. Touching intervals (next.Start == current.End) merge; a gap of
// any length does not.
func mergeIntervals(ivs []models.TimeInterval) []models.TimeInterval {
	if len(ivs) == 0 {
		return nil
	}

	sorted := make([]models.TimeInterval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []models.TimeInterval{sorted[0]}
	for _, next := range sorted[1:] {
		current := &merged[len(merged)-1]
		if !next.Start.After(current.End) {
			if next.End.After(current.End) {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}
