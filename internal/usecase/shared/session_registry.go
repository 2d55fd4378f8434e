package shared

import (
	"context"
	"sync"

	"barista-bot/internal/domain/session"
)

// SessionRegistry keeps one order session per user. Turns for the same user are
// serialized; different users never contend beyond the map lookup.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*sessionSlot
}

type sessionSlot struct {
	mu      sync.Mutex
	current session.Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*sessionSlot)}
}

func (r *SessionRegistry) slot(userID string) *sessionSlot {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	if !ok {
		s = &sessionSlot{current: session.New()}
		r.sessions[userID] = s
	}
	return s
}

// Within runs fn against the user's session and stores the returned session only when
// fn succeeds; on error the previous session is kept as it was.
func (r *SessionRegistry) Within(ctx context.Context, userID string, fn func(ctx context.Context, current session.Session) (session.Session, error)) error {
	s := r.slot(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	next, err := fn(ctx, s.current)
	if err != nil {
		return err
	}
	s.current = next
	return nil
}

func (r *SessionRegistry) Get(userID string) session.Session {
	s := r.slot(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (r *SessionRegistry) Reset(userID string) {
	s := r.slot(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session.New()
}
