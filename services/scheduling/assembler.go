package scheduling

import (
	"sort"

	"meetsync/models"
)

// assemble orders, deduplicates and trims candidates and derives the
// completeness status. Fewer slots than requested is a normal outcome, never
// an error.
func assemble(slots []models.CandidateSlot, requested int) models.ScheduleResult {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	deduped := slots[:0]
	for i, s := range slots {
		if i > 0 && s.Start.Equal(slots[i-1].Start) {
			continue
		}
		deduped = append(deduped, s)
	}
	if len(deduped) > requested {
		deduped = deduped[:requested]
	}

	status := models.StatusComplete
	switch {
	case len(deduped) == 0:
		status = models.StatusExhausted
	case len(deduped) < requested:
		status = models.StatusPartial
	}

	return models.ScheduleResult{
		Slots:  deduped,
		Status: status,
	}
}
