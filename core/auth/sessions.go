package auth

import (
	"context"
	"time"

	"gazeta-portal/config"
	"gazeta-portal/core/store"
	"gazeta-portal/core/utils"
	"github.com/gofrs/uuid/v5"
)

type contextKey string

// SessionContextKey carries the *store.SessionRecord through the request
// context once the session middleware has admitted the request.
const SessionContextKey contextKey = "gazeta-session"

// SessionManager issues and revokes server-held sessions. Each session row
// snapshots the Principal at login time.
type SessionManager struct {
	sessions store.SessionStore
	cfg      *config.AppConfig
	logger   *utils.Logger
}

func NewSessionManager(sessions store.SessionStore, cfg *config.AppConfig, logger *utils.Logger) *SessionManager {
	return &SessionManager{sessions: sessions, cfg: cfg, logger: logger}
}

func (m *SessionManager) Create(ctx context.Context, p *Principal) (*store.SessionRecord, error) {
	now := time.Now().UTC()
	sr := &store.SessionRecord{
		ID:          uuid.Must(uuid.NewV4()).String(),
		Username:    p.Username,
		Role:        p.Role,
		Permissions: p.Permissions,
		CreatedAt:   now,
		ExpiresAt:   now.Add(m.cfg.SessionTTL),
	}
	if err := m.sessions.SaveSession(ctx, sr); err != nil {
		return nil, err
	}
	if m.logger != nil {
		m.logger.Printf("session created user=%s role=%s", p.Username, p.Role)
	}
	return sr, nil
}

func (m *SessionManager) Destroy(ctx context.Context, id string) error {
	return m.sessions.DeleteSession(ctx, id)
}
