package scheduling

import (
	"time"

	"meetsync/models"
)

// Tier numbering of the constraint-relaxation sequence.
const (
	tierAnchorWindow = 0 // anchor window and social window
	tierAnchorDay    = 1 // anchor full day and social window
	tierForwardScan  = 2 // day-by-day forward from the anchor
	tierHorizonScan  = 3 // social window across the horizon, no anchor
	tierFlexible     = 4 // social window dropped, hints permitting
)

// generator walks the free set through the ordered tier sequence. Quiet
// hours are a hard exclusion at every tier and are never relaxed.
type generator struct {
	cm         *constraintModel
	free       []models.TimeInterval
	searchFrom time.Time
	horizonEnd time.Time
	seen       map[int64]struct{}
}

func newGenerator(cm *constraintModel, free []models.TimeInterval, searchFrom, horizonEnd time.Time) *generator {
	seen := make(map[int64]struct{}, len(cm.previous))
	// Previously surfaced starts can never be proposed again.
	for _, prev := range cm.previous {
		seen[prev.Unix()] = struct{}{}
	}
	return &generator{
		cm:         cm,
		free:       free,
		searchFrom: searchFrom,
		horizonEnd: horizonEnd,
		seen:       seen,
	}
}

// generate runs the tier sequence until enough candidates are found or the
// horizon is exhausted.
func (g *generator) generate() []models.CandidateSlot {
	need := g.cm.requested
	var out []models.CandidateSlot

	if g.cm.anchorDay != nil {
		day := *g.cm.anchorDay
		next := day.AddDate(0, 0, 1)

		out = g.scanRange(day, next, g.cm.anchorWin, true, tierAnchorWindow, need)

		if len(out) == 0 && g.cm.anchorWin != nil {
			out = g.scanRange(day, next, nil, true, tierAnchorDay, need)
		}

		for d := next; len(out) < need && d.Before(g.horizonEnd); d = d.AddDate(0, 0, 1) {
			out = append(out, g.scanRange(d, d.AddDate(0, 0, 1), nil, true, tierForwardScan, need-len(out))...)
		}
	} else {
		out = g.scanRange(g.searchFrom, g.horizonEnd, nil, true, tierHorizonScan, need)
	}

	if len(out) < need && (g.cm.flex.EveningOK || g.cm.flex.EarlyOK) {
		// The anchor's forward-only rule still holds while relaxing the
		// social window.
		from := g.searchFrom
		if g.cm.anchorDay != nil && g.cm.anchorDay.After(from) {
			from = *g.cm.anchorDay
		}
		out = append(out, g.scanRange(from, g.horizonEnd, nil, false, tierFlexible, need-len(out))...)
	}

	return out
}

// scanRange walks grid-aligned starts over the free set clamped to
// [from, to), applying the active tier's filters, and returns up to limit
// candidates in ascending order.
func (g *generator) scanRange(from, to time.Time, sub *clockWindow, social bool, tier int, limit int) []models.CandidateSlot {
	if limit <= 0 || !from.Before(to) {
		return nil
	}
	durMin := g.cm.durationMinutes()
	var out []models.CandidateSlot

	for _, iv := range g.free {
		if !iv.Start.Before(to) {
			break
		}
		if !iv.End.After(from) {
			continue
		}
		start := iv.Start
		if start.Before(from) {
			start = from
		}
		end := iv.End
		if end.After(to) {
			end = to
		}
		for t := alignUp(start, g.cm.grid, g.cm.loc); !t.Add(g.cm.duration).After(end); t = t.Add(g.cm.grid) {
			startMin := minuteOfDay(t, g.cm.loc)
			if sub != nil && !sub.contains(startMin, durMin) {
				continue
			}
			if social && !g.cm.social.contains(startMin, durMin) {
				continue
			}
			if !social && !g.flexAdmits(startMin, durMin) {
				continue
			}
			if g.overlapsQuiet(t) {
				continue
			}
			if _, dup := g.seen[t.Unix()]; dup {
				continue
			}
			g.seen[t.Unix()] = struct{}{}
			out = append(out, models.CandidateSlot{Start: t, End: t.Add(g.cm.duration), Tier: tier})
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

// flexAdmits applies the opt-in regions once the social window is dropped:
// evenings at or after the window's end, early mornings ending at or before
// its start.
func (g *generator) flexAdmits(startMin, durMin int) bool {
	if g.cm.flex.EveningOK && startMin >= g.cm.social.End {
		return true
	}
	if g.cm.flex.EarlyOK && startMin+durMin <= g.cm.social.Start {
		return true
	}
	return false
}

// overlapsQuiet reports whether the slot crosses any quiet-hour occurrence.
// Occurrences are materialized for every local day the slot touches plus the
// preceding one, so overnight spans are caught on both sides of midnight.
func (g *generator) overlapsQuiet(start time.Time) bool {
	if len(g.cm.quiet) == 0 {
		return false
	}
	slot := models.TimeInterval{Start: start, End: start.Add(g.cm.duration)}
	first := localMidnight(slot.Start, g.cm.loc).AddDate(0, 0, -1)
	last := localMidnight(slot.End, g.cm.loc)

	for _, q := range g.cm.quiet {
		length := time.Duration(q.Length()) * time.Minute
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			occStart := day.Add(time.Duration(q.Start) * time.Minute)
			occ := models.TimeInterval{Start: occStart, End: occStart.Add(length)}
			if occ.Overlaps(slot) {
				return true
			}
		}
	}
	return false
}
