package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type SessionStore interface {
	SaveSession(ctx context.Context, sr *SessionRecord) error
	// GetSession returns nil without error for unknown or expired ids; expired
	// rows are removed on read.
	GetSession(ctx context.Context, id string) (*SessionRecord, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionsStore struct {
	db *sql.DB
}

func NewSessionsStore(db *sql.DB) SessionStore {
	return &sessionsStore{db: db}
}

func (s *sessionsStore) SaveSession(ctx context.Context, sr *SessionRecord) error {
	permsJSON, _ := json.Marshal(sr.Permissions)
	if sr.CreatedAt.IsZero() {
		sr.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO sessions(id, username, role, permissions, created_at, expires_at) VALUES(?,?,?,?,?,?)`,
		sr.ID, sr.Username, sr.Role, string(permsJSON), sr.CreatedAt, sr.ExpiresAt)
	return err
}

func (s *sessionsStore) GetSession(ctx context.Context, id string) (*SessionRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, username, role, permissions, created_at, expires_at FROM sessions WHERE id=?`, id)
	var sr SessionRecord
	var permsRaw string
	if err := row.Scan(&sr.ID, &sr.Username, &sr.Role, &permsRaw, &sr.CreatedAt, &sr.ExpiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if time.Now().After(sr.ExpiresAt) {
		_ = s.DeleteSession(ctx, id)
		return nil, nil
	}
	_ = json.Unmarshal([]byte(permsRaw), &sr.Permissions)
	return &sr, nil
}

func (s *sessionsStore) DeleteSession(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id=?`, id)
	return err
}

func (s *sessionsStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
