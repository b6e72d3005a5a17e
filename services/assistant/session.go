package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"meetsync/models"

	"github.com/go-redis/redis/v8"
)

const planningSessionPrefix = "planSession:"

// SessionStore keeps planning sessions in Redis with a TTL. The engine is
// stateless; this store owns the append-only proposed-slot history that
// feeds pagination floors.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Lock returns the per-session mutex. Two concurrent "see more" calls for
// the same session would otherwise race on the proposed-slot history and
// hand out overlapping pages.
func (s *SessionStore) Lock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

// Get retrieves a planning session. A missing session returns (nil, nil).
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*models.PlanningSession, error) {
	data, err := s.client.Get(ctx, planningSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load planning session: %w", err)
	}
	var session models.PlanningSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to decode planning session: %w", err)
	}
	return &session, nil
}

// Save stores the session and refreshes its TTL.
func (s *SessionStore) Save(ctx context.Context, session *models.PlanningSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal planning session: %w", err)
	}
	if err := s.client.Set(ctx, planningSessionPrefix+session.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save planning session: %w", err)
	}
	return nil
}

// Clear removes a session once the user is done with it.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.locks, sessionID)
	s.mu.Unlock()
	return s.client.Del(ctx, planningSessionPrefix+sessionID).Err()
}
