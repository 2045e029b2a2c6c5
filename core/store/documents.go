package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"
)

// Documents is the whole-document JSON store: one row per collection, no
// partial updates and no queries. Load fills the caller's value from the
// stored body, creating the row from the caller's current (default) value when
// absent; Save rewrites the full body.
type Documents struct {
	db *sql.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDocuments(db *sql.DB) *Documents {
	return &Documents{db: db, locks: map[string]*sync.Mutex{}}
}

// Lock returns the mutex serializing load-mutate-save cycles for one
// collection. Writes across processes remain last-writer-wins.
func (d *Documents) Lock(key string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := d.locks[key]
	if !ok {
		m = &sync.Mutex{}
		d.locks[key] = m
	}
	return m
}

func (d *Documents) Load(ctx context.Context, key string, out any) error {
	row := d.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE doc_key=?`, key)
	var body string
	if err := row.Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return d.Save(ctx, key, out)
		}
		return err
	}
	return json.Unmarshal([]byte(body), out)
}

func (d *Documents) Save(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	res, err := d.db.ExecContext(ctx, `UPDATE documents SET body=?, updated_at=? WHERE doc_key=?`, string(body), now, key)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	_, err = d.db.ExecContext(ctx, `INSERT INTO documents(doc_key, body, updated_at) VALUES(?,?,?)`, key, string(body), now)
	return err
}
