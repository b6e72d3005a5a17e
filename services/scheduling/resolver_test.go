package scheduling

import (
	"testing"
	"time"

	"meetsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtractBusySplitsWindow(t *testing.T) {
	window := models.TimeInterval{Start: ts(3, 8, 0), End: ts(3, 18, 0)}
	busy := []models.TimeInterval{
		{Start: ts(3, 9, 0), End: ts(3, 10, 0)},
		{Start: ts(3, 12, 0), End: ts(3, 13, 0)},
	}

	free := subtractBusy(window, busy)
	require.Len(t, free, 3)
	assert.Equal(t, models.TimeInterval{Start: ts(3, 8, 0), End: ts(3, 9, 0)}, free[0])
	assert.Equal(t, models.TimeInterval{Start: ts(3, 10, 0), End: ts(3, 12, 0)}, free[1])
	assert.Equal(t, models.TimeInterval{Start: ts(3, 13, 0), End: ts(3, 18, 0)}, free[2])
}

func TestSubtractBusyHandlesEdgeOverlaps(t *testing.T) {
	window := models.TimeInterval{Start: ts(3, 8, 0), End: ts(3, 18, 0)}

	// A block covering the whole window leaves nothing.
	free := subtractBusy(window, []models.TimeInterval{{Start: ts(3, 0, 0), End: ts(4, 0, 0)}})
	assert.Empty(t, free)

	// A block outside the window changes nothing.
	free = subtractBusy(window, []models.TimeInterval{{Start: ts(3, 18, 0), End: ts(3, 19, 0)}})
	require.Len(t, free, 1)
	assert.Equal(t, window, free[0])
}

func TestAlignUp(t *testing.T) {
	assert.Equal(t, ts(3, 10, 15), alignUp(ts(3, 10, 7), 15*time.Minute, time.UTC))
	assert.Equal(t, ts(3, 10, 30), alignUp(ts(3, 10, 7), 30*time.Minute, time.UTC))
	// Already aligned instants stay put.
	assert.Equal(t, ts(3, 10, 15), alignUp(ts(3, 10, 15), 15*time.Minute, time.UTC))
}

func TestAlignUpUsesLocalWallClock(t *testing.T) {
	// Kathmandu is UTC+05:45: epoch-based rounding would land off the local grid.
	loc, err := time.LoadLocation("Asia/Kathmandu")
	require.NoError(t, err)

	aligned := alignUp(time.Date(2025, 3, 3, 10, 7, 0, 0, loc), 30*time.Minute, loc)
	assert.Equal(t, 10, aligned.Hour())
	assert.Equal(t, 30, aligned.Minute())
}
