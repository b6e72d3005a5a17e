package intelligence

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"meetsync/models"
)

// KeywordIntentParser is the deterministic zero-dependency fallback used
// when no Gemini key is configured or the model misbehaves. Best effort
// only: anything it cannot recognise stays unset and picks up defaults
// downstream.
type KeywordIntentParser struct{}

// durationDefaults maps meeting-type words to a conventional length. These
// are presentation defaults, applied only when the user stated no duration.
var durationDefaults = []struct {
	keyword string
	minutes int
}{
	{"dinner", 90},
	{"interview", 60},
	{"lunch", 60},
	{"coffee", 45},
	{"standup", 15},
	{"call", 30},
}

var (
	minutesRe = regexp.MustCompile(`(\d+)\s*(?:min|minute|minutes)\b`)
	hoursRe   = regexp.MustCompile(`(\d+(?:\.5)?)\s*(?:hr|hrs|hour|hours)\b`)
	withRe    = regexp.MustCompile(`\bwith\s+([^.!?]+)`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func (KeywordIntentParser) ParseIntent(_ context.Context, message string, refTime time.Time, timezone string) (models.MeetingIntent, error) {
	lower := strings.ToLower(message)

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	localRef := refTime.In(loc)

	intent := models.MeetingIntent{
		DurationMinutes: explicitDuration(lower),
		ParticipantIDs:  participantsFromMessage(lower),
		AnchorDate:      anchorDateFromMessage(lower, localRef),
		SocialCategory:  socialCategoryFromMessage(lower),
		MoreRequested:   moreRequested(lower),
	}
	if intent.DurationMinutes == 0 {
		intent.DurationMinutes = durationFromKeywords(lower)
	}

	// Part-of-day words narrow an anchored day and opt in to off-window
	// proposals where they fall outside the social default.
	switch {
	case strings.Contains(lower, "evening") || strings.Contains(lower, "tonight"):
		intent.EveningOK = true
		if intent.AnchorDate != "" {
			intent.AnchorWindow = "18:00-22:00"
		}
	case strings.Contains(lower, "early") || strings.Contains(lower, "before work"):
		intent.EarlyOK = true
	case strings.Contains(lower, "morning"):
		if intent.AnchorDate != "" {
			intent.AnchorWindow = "09:00-12:00"
		}
	case strings.Contains(lower, "afternoon"):
		if intent.AnchorDate != "" {
			intent.AnchorWindow = "13:00-18:00"
		}
	}

	return intent, nil
}

// explicitDuration finds a stated meeting length, in minutes. Zero means the
// user did not specify one.
func explicitDuration(lower string) int {
	if m := minutesRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			return v
		}
	}
	if m := hoursRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(v * 60)
		}
	}
	return 0
}

// durationFromKeywords applies the meeting-type defaults.
func durationFromKeywords(lower string) int {
	for _, d := range durationDefaults {
		if strings.Contains(lower, d.keyword) {
			return d.minutes
		}
	}
	return 0
}

// anchorDateFromMessage resolves relative day terms to a concrete local
// date. Weekday names mean the next future occurrence.
func anchorDateFromMessage(lower string, localRef time.Time) string {
	const layout = "2006-01-02"
	switch {
	case strings.Contains(lower, "today") || strings.Contains(lower, "tonight"):
		return localRef.Format(layout)
	case strings.Contains(lower, "tomorrow"):
		return localRef.AddDate(0, 0, 1).Format(layout)
	}
	for name, day := range weekdays {
		if !strings.Contains(lower, name) {
			continue
		}
		ahead := (int(day) - int(localRef.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return localRef.AddDate(0, 0, ahead).Format(layout)
	}
	return ""
}

func socialCategoryFromMessage(lower string) string {
	professional := []string{"interview", "client", "review", "sync", "standup", "1:1", "meeting"}
	for _, kw := range professional {
		if strings.Contains(lower, kw) {
			return models.SocialProfessional
		}
	}
	casual := []string{"coffee", "dinner", "lunch", "drinks", "catch up", "hang out"}
	for _, kw := range casual {
		if strings.Contains(lower, kw) {
			return models.SocialCasual
		}
	}
	return models.SocialUnspecified
}

func moreRequested(lower string) bool {
	phrases := []string{"more option", "more time", "show more", "see more", "other time", "something else", "3 more"}
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// participantsFromMessage pulls names following "with", split on commas and
// "and". Returned values are display names; the calling layer maps them to
// participant IDs.
func participantsFromMessage(lower string) []string {
	m := withRe.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	stopWords := map[string]bool{
		"tomorrow": true, "today": true, "tonight": true, "on": true,
		"at": true, "next": true, "this": true, "for": true, "in": true,
	}

	raw := strings.ReplaceAll(m[1], " and ", ",")
	var out []string
	for _, part := range strings.Split(raw, ",") {
		var kept []string
		for _, word := range strings.Fields(part) {
			if _, isDay := weekdays[word]; isDay || stopWords[word] {
				break
			}
			kept = append(kept, word)
		}
		if name := strings.Join(kept, " "); name != "" {
			out = append(out, name)
		}
	}
	return out
}
