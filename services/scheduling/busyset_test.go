package scheduling

import (
	"testing"
	"time"

	"meetsync/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ts(day, hour, min int) time.Time {
	return time.Date(2025, 3, day, hour, min, 0, 0, time.UTC)
}

func TestBusyPeriodSetMergesPerOwner(t *testing.T) {
	owner := gofakeit.UUID()
	set := NewBusyPeriodSet([]models.BusyPeriod{
		{OwnerID: owner, Start: ts(3, 13, 0), End: ts(3, 14, 0)},
		{OwnerID: owner, Start: ts(3, 9, 0), End: ts(3, 10, 30)},
		{OwnerID: owner, Start: ts(3, 10, 0), End: ts(3, 11, 0)}, // overlaps the 9:00 block
		{OwnerID: owner, Start: ts(3, 11, 0), End: ts(3, 12, 0)}, // back-to-back, zero gap merges
		{OwnerID: owner, Start: ts(3, 12, 1), End: ts(3, 12, 30)}, // one-minute gap stays separate
	}, zap.NewNop())

	merged := set.ForOwner(owner)
	require.Len(t, merged, 3)
	assert.Equal(t, ts(3, 9, 0), merged[0].Start)
	assert.Equal(t, ts(3, 12, 0), merged[0].End)
	assert.Equal(t, ts(3, 12, 1), merged[1].Start)
	assert.Equal(t, ts(3, 13, 0), merged[2].Start)
}

func TestBusyPeriodSetUnionAcrossOwners(t *testing.T) {
	set := NewBusyPeriodSet([]models.BusyPeriod{
		{OwnerID: "alice", Start: ts(3, 9, 0), End: ts(3, 10, 0)},
		{OwnerID: "bob", Start: ts(3, 9, 30), End: ts(3, 11, 0)},
		{OwnerID: "carol", Start: ts(3, 15, 0), End: ts(3, 16, 0)},
	}, zap.NewNop())

	union := set.Union()
	require.Len(t, union, 2)
	assert.Equal(t, ts(3, 9, 0), union[0].Start)
	assert.Equal(t, ts(3, 11, 0), union[0].End)
	assert.Equal(t, ts(3, 15, 0), union[1].Start)

	assert.True(t, set.Conflicts(models.TimeInterval{Start: ts(3, 10, 30), End: ts(3, 11, 30)}))
	assert.False(t, set.Conflicts(models.TimeInterval{Start: ts(3, 11, 0), End: ts(3, 12, 0)}))
}

func TestBusyPeriodSetDropsMalformedPeriods(t *testing.T) {
	set := NewBusyPeriodSet([]models.BusyPeriod{
		{OwnerID: "alice", Start: ts(3, 10, 0), End: ts(3, 10, 0)}, // zero length
		{OwnerID: "alice", Start: ts(3, 12, 0), End: ts(3, 11, 0)}, // inverted
		{OwnerID: "alice", Start: ts(3, 14, 0), End: ts(3, 15, 0)},
	}, zap.NewNop())

	require.Len(t, set.Union(), 1)
	assert.Equal(t, ts(3, 14, 0), set.Union()[0].Start)
}
