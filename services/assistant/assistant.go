package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetsync/config"
	"meetsync/models"
	"meetsync/services/calendar"
	"meetsync/services/intelligence"
	"meetsync/services/scheduling"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned when a "more options" request references a
// session that expired or never existed.
var ErrSessionNotFound = errors.New("planning session not found")

const defaultDurationMinutes = 30

// AssistantService drives one conversational scheduling turn: intent
// extraction, calendar fetch, proposal run, session bookkeeping.
type AssistantService interface {
	HandleMessage(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error)
	MoreOptions(ctx context.Context, sessionID string, count int) (*models.AssistantResponse, error)
	EndSession(ctx context.Context, sessionID string) error
}

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	Intent   intelligence.IntentService
	Calendar calendar.Provider
	Engine   scheduling.Engine
	Sessions *SessionStore
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *DefaultAssistantService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// HandleMessage processes one user turn. A fresh meeting request resets the
// session's proposal history; "show more" style turns continue it.
func (s *DefaultAssistantService) HandleMessage(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error) {
	now := s.now().UTC()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	lock := s.Sessions.Lock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// A turn that names no timezone keeps the one the conversation started in.
	tz := req.Timezone
	if tz == "" && session != nil {
		tz = session.Timezone
	}
	if tz == "" {
		tz = "UTC"
	}

	if session == nil {
		session = &models.PlanningSession{
			SessionID: sessionID,
			Timezone:  tz,
			CreatedAt: now,
		}
	} else {
		session.Timezone = tz
	}

	intent, err := s.Intent.ParseIntent(ctx, req.Message, now, tz)
	if err != nil {
		return nil, fmt.Errorf("intent extraction failed: %w", err)
	}

	if intent.MoreRequested && session.LastRequest != nil {
		return s.proposeLocked(ctx, session, *session.LastRequest, true)
	}

	schedReq := buildSchedulingRequest(intent, session, tz)
	if intent.Title != "" {
		session.Title = intent.Title
	}
	if intent.Location != "" {
		session.Location = intent.Location
	}
	// New constraints start a new pagination history.
	session.ProposedSlots = nil

	return s.proposeLocked(ctx, session, schedReq, false)
}

// MoreOptions returns the next page of proposals for an existing session.
func (s *DefaultAssistantService) MoreOptions(ctx context.Context, sessionID string, count int) (*models.AssistantResponse, error) {
	lock := s.Sessions.Lock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.LastRequest == nil {
		return nil, ErrSessionNotFound
	}

	req := *session.LastRequest
	if count > 0 {
		req.RequestedCount = count
	}
	return s.proposeLocked(ctx, session, req, true)
}

// EndSession discards a planning session once the user is done with it.
func (s *DefaultAssistantService) EndSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Clear(ctx, sessionID)
}

// proposeLocked runs the engine for a session the caller has already locked
// and persists the updated proposal history.
func (s *DefaultAssistantService) proposeLocked(ctx context.Context, session *models.PlanningSession, req models.SchedulingRequest, paginating bool) (*models.AssistantResponse, error) {
	now := s.now().UTC()
	if paginating {
		req.PreviousSlots = session.ProposedSlots
	}

	horizonDays := req.HorizonDays
	if horizonDays <= 0 {
		horizonDays = config.AppConfig.DefaultHorizonDays
		req.HorizonDays = horizonDays
	}
	window := models.TimeInterval{
		Start: now,
		End:   now.Add(time.Duration(horizonDays) * 24 * time.Hour),
	}

	busy, err := s.Calendar.FetchBusyPeriods(ctx, req.ParticipantIDs, window)
	if err != nil {
		return nil, err
	}

	result, err := s.Engine.Propose(req, busy)
	if err != nil {
		return nil, err
	}

	for _, slot := range result.Slots {
		session.ProposedSlots = append(session.ProposedSlots, slot.Start)
	}
	session.LastRequest = &req
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	s.Logger.Info("Assistant turn completed",
		zap.String("sessionId", session.SessionID),
		zap.Int("slots", len(result.Slots)),
		zap.String("status", result.Status),
		zap.Bool("paginating", paginating))

	return &models.AssistantResponse{
		SessionID:    session.SessionID,
		Title:        session.Title,
		Location:     session.Location,
		Slots:        result.Slots,
		Status:       result.Status,
		ResponseText: responseText(result, paginating),
	}, nil
}

// buildSchedulingRequest merges the extracted intent with session context
// and configured defaults into a canonical engine request.
func buildSchedulingRequest(intent models.MeetingIntent, session *models.PlanningSession, tz string) models.SchedulingRequest {
	prev := session.LastRequest

	req := models.SchedulingRequest{
		DurationMinutes: intent.DurationMinutes,
		ParticipantIDs:  intent.ParticipantIDs,
		SocialCategory:  intent.SocialCategory,
		Flexibility: models.FlexibilityHints{
			EveningOK: intent.EveningOK,
			EarlyOK:   intent.EarlyOK,
		},
		RequestedCount: config.AppConfig.DefaultRequestedCount,
		HorizonDays:    config.AppConfig.DefaultHorizonDays,
		Timezone:       tz,
	}

	if intent.AnchorDate != "" {
		req.Anchor = &models.ExplicitAnchor{
			Date:   intent.AnchorDate,
			Window: intent.AnchorWindow,
		}
	}

	// Follow-up turns inherit whatever the new message left unsaid.
	if prev != nil {
		if req.DurationMinutes <= 0 {
			req.DurationMinutes = prev.DurationMinutes
		}
		if len(req.ParticipantIDs) == 0 {
			req.ParticipantIDs = prev.ParticipantIDs
		}
		if req.SocialCategory == "" || req.SocialCategory == models.SocialUnspecified {
			if prev.SocialCategory != "" {
				req.SocialCategory = prev.SocialCategory
			}
		}
		if req.Anchor == nil {
			req.Anchor = prev.Anchor
		}
		if req.Timezone == "" {
			req.Timezone = prev.Timezone
		}
		req.QuietHours = prev.QuietHours
	}
	if req.Timezone == "" {
		req.Timezone = session.Timezone
	}
	if req.Timezone == "" {
		req.Timezone = "UTC"
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = defaultDurationMinutes
	}
	return req
}

func responseText(result models.ScheduleResult, paginating bool) string {
	switch {
	case len(result.Slots) == 0 && paginating:
		return "I couldn't find any more times that work. Want to loosen the constraints?"
	case len(result.Slots) == 0:
		return "I couldn't find a time that fits everyone. Want to try different days or a shorter meeting?"
	case result.Status == models.StatusPartial:
		return fmt.Sprintf("I could only find %d workable option(s) within the search window:", len(result.Slots))
	case paginating:
		return "Here are some more options that work for everyone:"
	default:
		return "Here are some times that work for everyone:"
	}
}
