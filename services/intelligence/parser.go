package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"meetsync/models"

	"go.uber.org/zap"
)

// GeminiIntentParser extracts meeting intents with the Gemini model and
// falls back to the deterministic keyword parser whenever the model is
// unavailable or returns something unusable.
type GeminiIntentParser struct {
	Client   *GeminiClient
	Fallback KeywordIntentParser
	Logger   *zap.Logger
}

func (p *GeminiIntentParser) ParseIntent(ctx context.Context, message string, refTime time.Time, timezone string) (models.MeetingIntent, error) {
	if p.Client == nil {
		return p.Fallback.ParseIntent(ctx, message, refTime, timezone)
	}

	prompt := buildIntentPrompt(message, refTime, timezone)
	raw, err := p.Client.GenerateContent(ctx, prompt)
	if err != nil {
		p.Logger.Warn("Gemini intent extraction failed, using keyword fallback", zap.Error(err))
		return p.Fallback.ParseIntent(ctx, message, refTime, timezone)
	}

	var intent models.MeetingIntent
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &intent); err != nil {
		p.Logger.Warn("Gemini returned unparsable intent, using keyword fallback",
			zap.String("raw", raw), zap.Error(err))
		return p.Fallback.ParseIntent(ctx, message, refTime, timezone)
	}

	// An explicit duration from the user is authoritative; the keyword
	// defaults only fill a complete absence.
	if intent.DurationMinutes <= 0 {
		intent.DurationMinutes = durationFromKeywords(strings.ToLower(message))
	}
	return intent, nil
}

func buildIntentPrompt(message string, refTime time.Time, timezone string) string {
	var sb strings.Builder
	sb.WriteString("Extract the meeting request below into JSON with exactly these keys:\n")
	sb.WriteString(`{"title":"","location":"","participantIds":[],"durationMinutes":0,` +
		`"anchorDate":"","anchorWindow":"","eveningOk":false,"earlyOk":false,"socialCategory":"","moreRequested":false}` + "\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Omit nothing; use zero values for anything the message does not state.\n")
	sb.WriteString("- durationMinutes only if the user stated a length explicitly.\n")
	fmt.Fprintf(&sb, "- Resolve relative days against %s in timezone %s; anchorDate must be YYYY-MM-DD.\n",
		refTime.Format("Monday 2006-01-02"), timezone)
	sb.WriteString("- anchorWindow is HH:MM-HH:MM, only when the user named a part of the day.\n")
	sb.WriteString("- socialCategory is one of casual, professional, unspecified.\n")
	sb.WriteString("- moreRequested is true only when the user asks for additional options.\n")
	sb.WriteString("Respond with the JSON object only.\n\nMessage: ")
	sb.WriteString(message)
	return sb.String()
}

func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
