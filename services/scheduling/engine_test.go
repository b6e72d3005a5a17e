package scheduling

import (
	"testing"
	"time"

	"meetsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Monday 2025-03-03 10:07 UTC.
var testNow = time.Date(2025, 3, 3, 10, 7, 0, 0, time.UTC)

func newTestEngine() *DefaultEngine {
	return &DefaultEngine{
		Logger: zap.NewNop(),
		Now:    func() time.Time { return testNow },
	}
}

func busyAllDay(owner string, day int, fromHour, toHour int) models.BusyPeriod {
	return models.BusyPeriod{OwnerID: owner, Start: ts(day, fromHour, 0), End: ts(day, toHour, 0)}
}

func assertAscendingUnique(t *testing.T, slots []models.CandidateSlot) {
	t.Helper()
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].Start.After(slots[i-1].Start),
			"slots must be strictly ascending: %v then %v", slots[i-1].Start, slots[i].Start)
	}
}

func assertNoConflicts(t *testing.T, slots []models.CandidateSlot, busy []models.BusyPeriod) {
	t.Helper()
	for _, s := range slots {
		slot := models.TimeInterval{Start: s.Start, End: s.End}
		for _, b := range busy {
			assert.False(t, slot.Overlaps(b.Interval()),
				"slot %v overlaps busy period %v-%v of %s", s.Start, b.Start, b.End, b.OwnerID)
		}
	}
}

func TestProposeOpenCalendarStartsOnNextGridMark(t *testing.T) {
	req := models.SchedulingRequest{
		DurationMinutes: 45,
		ParticipantIDs:  []string{"alice"},
		SocialCategory:  models.SocialCasual,
	}

	result, err := newTestEngine().Propose(req, nil)
	require.NoError(t, err)
	require.Len(t, result.Slots, 3)
	assert.Equal(t, models.StatusComplete, result.Status)

	// "Now" rounded up to the 15-minute grid.
	assert.Equal(t, ts(3, 10, 15), result.Slots[0].Start)
	assert.Equal(t, ts(3, 11, 0), result.Slots[0].End)
	for _, s := range result.Slots {
		minute := s.Start.Hour()*60 + s.Start.Minute()
		assert.GreaterOrEqual(t, minute, 9*60)
		assert.LessOrEqual(t, minute+45, 18*60)
	}
	assertAscendingUnique(t, result.Slots)
}

func TestProposeSkipsFullyBookedBusinessDay(t *testing.T) {
	busy := []models.BusyPeriod{busyAllDay("alice", 3, 9, 18)}
	req := models.SchedulingRequest{
		DurationMinutes: 60,
		ParticipantIDs:  []string{"alice", "bob"},
	}

	result, err := newTestEngine().Propose(req, busy)
	require.NoError(t, err)
	require.NotEmpty(t, result.Slots)

	// Nothing fits Monday's business hours; the next candidate is Tuesday 09:00.
	assert.Equal(t, ts(4, 9, 0), result.Slots[0].Start)
	assertNoConflicts(t, result.Slots, busy)
}

func TestProposeRespectsQuietHoursMidday(t *testing.T) {
	req := models.SchedulingRequest{
		DurationMinutes: 60,
		ParticipantIDs:  []string{"alice"},
		QuietHours:      []string{"12:00-13:00"},
	}

	result, err := newTestEngine().Propose(req, nil)
	require.NoError(t, err)
	require.Len(t, result.Slots, 3)

	// 10:30 and 11:00 fit; 11:30 through 12:30 would cross the quiet hour.
	assert.Equal(t, ts(3, 10, 30), result.Slots[0].Start)
	assert.Equal(t, ts(3, 11, 0), result.Slots[1].Start)
	assert.Equal(t, ts(3, 13, 0), result.Slots[2].Start)
}

func TestProposePaginationIsStrictlyMonotonic(t *testing.T) {
	previous := []time.Time{ts(3, 13, 0), ts(3, 14, 0), ts(3, 15, 0)}
	req := models.SchedulingRequest{
		DurationMinutes: 60,
		ParticipantIDs:  []string{"alice"},
		PreviousSlots:   previous,
	}

	result, err := newTestEngine().Propose(req, nil)
	require.NoError(t, err)
	require.Len(t, result.Slots, 3)

	for _, s := range result.Slots {
		assert.True(t, s.Start.After(ts(3, 15, 0)), "slot %v must exceed the pagination floor", s.Start)
		for _, p := range previous {
			assert.False(t, s.Start.Equal(p))
		}
	}
	// One grid unit past the floor.
	assert.Equal(t, ts(3, 15, 30), result.Slots[0].Start)
	assertAscendingUnique(t, result.Slots)
}

func TestProposeEscalatesPastFullyBookedAnchorDay(t *testing.T) {
	busy := []models.BusyPeriod{busyAllDay("alice", 4, 8, 21)}
	req := models.SchedulingRequest{
		DurationMinutes: 60,
		ParticipantIDs:  []string{"alice"},
		Anchor:          &models.ExplicitAnchor{Date: "2025-03-04"},
	}

	result, err := newTestEngine().Propose(req, busy)
	require.NoError(t, err)
	require.NotEmpty(t, result.Slots)

	for _, s := range result.Slots {
		assert.NotEqual(t, 4, s.Start.Day(), "no slot may land on the fully booked anchor day")
	}
	assert.Equal(t, ts(5, 9, 0), result.Slots[0].Start)
	assert.Equal(t, 2, result.Slots[0].Tier)
	assertNoConflicts(t, result.Slots, busy)
}

func TestProposeAnchorDayHasPriority(t *testing.T) {
	// The anchor day keeps one free afternoon gap.
	busy := []models.BusyPeriod{
		{OwnerID: "alice", Start: ts(4, 9, 0), End: ts(4, 14, 0)},
		{OwnerID: "alice", Start: ts(4, 16, 0), End: ts(4, 21, 0)},
	}
	req := models.SchedulingRequest{
		DurationMinutes: 60,
		ParticipantIDs:  []string{"alice"},
		Anchor:          &models.ExplicitAnchor{Date: "2025-03-04"},
	}

	result, err := newTestEngine().Propose(req, busy)
	require.NoError(t, err)
	require.Len(t, result.Slots, 3)

	// The 14:00-16:00 anchor-day gap fits all three requests; nothing
	// escalates to a later date while the anchor day still has room.
	assert.Equal(t, ts(4, 14, 0), result.Slots[0].Start)
	assert.Equal(t, ts(4, 14, 30), result.Slots[1].Start)
	assert.Equal(t, ts(4, 15, 0), result.Slots[2].Start)
	for _, s := range result.Slots {
		assert.Equal(t, 0, s.Tier)
		assert.Equal(t, 4, s.Start.Day())
	}
}

func TestProposeAnchorWindowWidensToFullDay(t *testing.T) {
	req := models.SchedulingRequest{
		DurationMinutes: 30,
		ParticipantIDs:  []string{"alice"},
		Anchor:          &models.ExplicitAnchor{Date: "2025-03-04", Window: "06:00-08:00"},
	}

	result, err := newTestEngine().Propose(req, nil)
	require.NoError(t, err)
	require.Len(t, result.Slots, 3)

	// The requested early window lies outside the social default, so the
	// engine retries with the anchor's full day.
	assert.Equal(t, ts(4, 9, 0), result.Slots[0].Start)
	for _, s := range result.Slots {
		assert.Equal(t, 1, s.Tier)
		assert.Equal(t, 4, s.Start.Day())
	}
}

func TestProposeAnchorSubWindowFilters(t *testing.T) {
	req := models.SchedulingRequest{
		DurationMinutes: 30,
		ParticipantIDs:  []string{"alice"},
		Anchor:          &models.ExplicitAnchor{Date: "2025-03-04", Window: "13:00-15:00"},
	}

	result, err := newTestEngine().Propose(req, nil)
	require.NoError(t, err)
	require.Len(t, result.Slots, 3)

	assert.Equal(t, ts(4, 13, 0), result.Slots[0].Start)
	assert.Equal(t, ts(4, 13, 15), result.Slots[1].Start)
	assert.Equal(t, ts(4, 13, 30), result.Slots[2].Start)
	for _, s := range result.Slots {
		assert.Equal(t, 0, s.Tier)
	}
}

func TestProposeFlexibilityUnlocksEvenings(t *testing.T) {
	busy := []models.BusyPeriod{
		busyAllDay("alice", 3, 9, 18),
		busyAllDay("alice", 4, 9, 18),
		busyAllDay("alice", 5, 9, 18),
	}
	req := models.SchedulingRequest{
		DurationMinutes: 60,
		ParticipantIDs:  []string{"alice"},
		Flexibility:     models.FlexibilityHints{EveningOK: true},
		HorizonDays:     2,
	}

	result, err := newTestEngine().Propose(req, busy)
	require.NoError(t, err)
	require.NotEmpty(t, result.Slots)

	assert.Equal(t, ts(3, 18, 0), result.Slots[0].Start)
	for _, s := range result.Slots {
		assert.Equal(t, 4, s.Tier)
		minute := s.Start.Hour()*60 + s.Start.Minute()
		assert.GreaterOrEqual(t, minute, 18*60, "evening opt-in only unlocks post-window slots")
	}
	assertNoConflicts(t, result.Slots, busy)
}

func TestProposeWithoutFlexibilityStaysInsideSocialWindow(t *testing.T) {
	busy := []models.BusyPeriod{
		busyAllDay("alice", 3, 9, 18),
		busyAllDay("alice", 4, 9, 18),
		busyAllDay("alice", 5, 9, 18),
	}
	req := models.SchedulingRequest{
		DurationMinutes: 60,
		ParticipantIDs:  []string{"alice"},
		HorizonDays:     2,
	}

	result, err := newTestEngine().Propose(req, busy)
	require.NoError(t, err)

	// Rather than violate the social default, the engine returns nothing.
	assert.Empty(t, result.Slots)
	assert.Equal(t, models.StatusExhausted, result.Status)
}

func TestProposeQuietHoursHoldAtEveryTier(t *testing.T) {
	busy := []models.BusyPeriod{
		busyAllDay("alice", 3, 9, 18),
		busyAllDay("alice", 4, 9, 18),
		busyAllDay("alice", 5, 9, 18),
	}
	req := models.SchedulingRequest{
		DurationMinutes: 60,
		ParticipantIDs:  []string{"alice"},
		Flexibility:     models.FlexibilityHints{EveningOK: true},
		QuietHours:      []string{"19:00-07:00"},
		HorizonDays:     2,
	}

	result, err := newTestEngine().Propose(req, busy)
	require.NoError(t, err)

	// Only the 18:00 starts survive: anything later crosses the overnight
	// quiet span even at the most relaxed tier.
	require.Len(t, result.Slots, 2)
	assert.Equal(t, ts(3, 18, 0), result.Slots[0].Start)
	assert.Equal(t, ts(4, 18, 0), result.Slots[1].Start)
	assert.Equal(t, models.StatusPartial, result.Status)
}

func TestProposeMalformedBusyPeriodIsDroppedNotFatal(t *testing.T) {
	busy := []models.BusyPeriod{
		{OwnerID: "alice", Start: ts(3, 14, 0), End: ts(3, 12, 0)}, // inverted, dropped
	}
	req := models.SchedulingRequest{
		DurationMinutes: 45,
		ParticipantIDs:  []string{"alice"},
	}

	result, err := newTestEngine().Propose(req, busy)
	require.NoError(t, err)
	assert.Len(t, result.Slots, 3)
	assert.Equal(t, models.StatusComplete, result.Status)
}

func TestProposeIsPure(t *testing.T) {
	busy := []models.BusyPeriod{busyAllDay("alice", 3, 11, 15)}
	req := models.SchedulingRequest{
		DurationMinutes: 30,
		ParticipantIDs:  []string{"alice"},
		QuietHours:      []string{"12:00-13:00"},
	}

	first, err := newTestEngine().Propose(req, busy)
	require.NoError(t, err)
	second, err := newTestEngine().Propose(req, busy)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProposeLocalTimezoneSocialWindow(t *testing.T) {
	req := models.SchedulingRequest{
		DurationMinutes: 45,
		ParticipantIDs:  []string{"alice"},
		Timezone:        "America/New_York",
	}

	result, err := newTestEngine().Propose(req, nil)
	require.NoError(t, err)
	require.Len(t, result.Slots, 3)

	loc, _ := time.LoadLocation("America/New_York")
	for _, s := range result.Slots {
		local := s.Start.In(loc)
		minute := local.Hour()*60 + local.Minute()
		assert.GreaterOrEqual(t, minute, 9*60)
		assert.LessOrEqual(t, minute+45, 18*60)
	}
}

func TestProposeValidationErrorsSurfaceBeforeComputation(t *testing.T) {
	req := models.SchedulingRequest{
		DurationMinutes: 0,
		ParticipantIDs:  []string{"alice"},
	}
	_, err := newTestEngine().Propose(req, nil)
	requireValidationError(t, err, "durationMinutes")
}
