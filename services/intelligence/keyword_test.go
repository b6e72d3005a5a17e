package intelligence

import (
	"context"
	"testing"
	"time"

	"meetsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-03-03 10:00 UTC.
var refTime = time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

func parse(t *testing.T, message string) models.MeetingIntent {
	t.Helper()
	intent, err := KeywordIntentParser{}.ParseIntent(context.Background(), message, refTime, "UTC")
	require.NoError(t, err)
	return intent
}

func TestKeywordParserExplicitDurationWins(t *testing.T) {
	intent := parse(t, "dinner with sam for 45 minutes tomorrow")
	assert.Equal(t, 45, intent.DurationMinutes, "a stated duration beats the dinner default")

	intent = parse(t, "a 2 hour planning session on friday")
	assert.Equal(t, 120, intent.DurationMinutes)
}

func TestKeywordParserDurationDefaults(t *testing.T) {
	assert.Equal(t, 90, parse(t, "dinner with sam").DurationMinutes)
	assert.Equal(t, 45, parse(t, "grab coffee with alex").DurationMinutes)
	assert.Equal(t, 30, parse(t, "quick call with the team").DurationMinutes)
	assert.Equal(t, 0, parse(t, "find time with jo").DurationMinutes, "no keyword leaves duration unset")
}

func TestKeywordParserResolvesRelativeDays(t *testing.T) {
	assert.Equal(t, "2025-03-03", parse(t, "meet today").AnchorDate)
	assert.Equal(t, "2025-03-04", parse(t, "lunch tomorrow").AnchorDate)
	// A weekday name means the next future occurrence.
	assert.Equal(t, "2025-03-07", parse(t, "sync on friday").AnchorDate)
	// Naming the current weekday points a week ahead, not at today.
	assert.Equal(t, "2025-03-10", parse(t, "review on monday").AnchorDate)
}

func TestKeywordParserPartOfDayHints(t *testing.T) {
	intent := parse(t, "drinks tomorrow evening")
	assert.True(t, intent.EveningOK)
	assert.Equal(t, "18:00-22:00", intent.AnchorWindow)

	intent = parse(t, "coffee tomorrow morning")
	assert.False(t, intent.EveningOK)
	assert.Equal(t, "09:00-12:00", intent.AnchorWindow)

	intent = parse(t, "early walk tomorrow")
	assert.True(t, intent.EarlyOK)
}

func TestKeywordParserSocialCategory(t *testing.T) {
	assert.Equal(t, models.SocialProfessional, parse(t, "interview with dana").SocialCategory)
	assert.Equal(t, models.SocialCasual, parse(t, "coffee with dana").SocialCategory)
	assert.Equal(t, models.SocialUnspecified, parse(t, "find time with dana").SocialCategory)
}

func TestKeywordParserParticipants(t *testing.T) {
	intent := parse(t, "lunch with alice, bob and carol tomorrow")
	assert.Equal(t, []string{"alice", "bob", "carol"}, intent.ParticipantIDs)
}

func TestKeywordParserMoreRequested(t *testing.T) {
	assert.True(t, parse(t, "show more options").MoreRequested)
	assert.True(t, parse(t, "none of those work, any other time?").MoreRequested)
	assert.False(t, parse(t, "book the first one").MoreRequested)
}
