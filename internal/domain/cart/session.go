// internal/domain/cart/session.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionTTL is how long a persisted cart session survives without activity
const SessionTTL = 24 * time.Hour

// sessionSnapshot is the Redis representation of a cart session
type sessionSnapshot struct {
	TerminalID string    `json:"terminal_id"`
	Lines      []Line    `json:"lines"`
	SavedAt    time.Time `json:"saved_at"`
}

// SessionStore persists cart snapshots to Redis so a terminal restart
// does not lose an in-progress order
type SessionStore struct {
	redisClient *redis.Client
	terminalID  string
}

// NewSessionStore creates a session store bound to one terminal id
func NewSessionStore(redisClient *redis.Client, terminalID string) *SessionStore {
	return &SessionStore{
		redisClient: redisClient,
		terminalID:  terminalID,
	}
}

// Save stores the given lines under the terminal's session key
func (s *SessionStore) Save(ctx context.Context, lines []Line) error {
	snapshot := sessionSnapshot{
		TerminalID: s.terminalID,
		Lines:      lines,
		SavedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode cart session: %w", err)
	}

	return s.redisClient.Set(ctx, s.key(), data, SessionTTL).Err()
}

// Load retrieves the persisted lines, or an empty slice when no session exists
func (s *SessionStore) Load(ctx context.Context) ([]Line, error) {
	data, err := s.redisClient.Get(ctx, s.key()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart session: %w", err)
	}

	var snapshot sessionSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cart session: %w", err)
	}

	return snapshot.Lines, nil
}

// Clear drops the persisted session, called after a confirmed checkout
func (s *SessionStore) Clear(ctx context.Context) error {
	return s.redisClient.Del(ctx, s.key()).Err()
}

func (s *SessionStore) key() string {
	return fmt.Sprintf("cart:terminal:%s", s.terminalID)
}
