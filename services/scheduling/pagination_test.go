package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaginationFloorWithoutHistory(t *testing.T) {
	now := ts(3, 10, 7)
	assert.Equal(t, now, paginationFloor(nil, now, 15*time.Minute))
}

func TestPaginationFloorIsOneGridUnitPastLatest(t *testing.T) {
	now := ts(3, 10, 7)
	previous := []time.Time{ts(3, 14, 0), ts(3, 16, 30), ts(3, 15, 0)} // unordered on purpose

	floor := paginationFloor(previous, now, 30*time.Minute)
	assert.Equal(t, ts(3, 17, 0), floor)
}

func TestPaginationFloorNeverPrecedesNow(t *testing.T) {
	now := ts(3, 10, 7)
	previous := []time.Time{ts(1, 9, 0)} // history from days ago

	floor := paginationFloor(previous, now, 15*time.Minute)
	assert.Equal(t, now, floor)
}
