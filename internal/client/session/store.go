// Package session caches the logged-in identity of the CLI client in a
// local SQLite file so later runs can resume without logging in again.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/feedbackhub/internal/client/session/migrations"
	"github.com/dmitrijs2005/feedbackhub/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const (
	keyToken = "token"
	keyEmail = "email"
	keyName  = "name"
	keyRole  = "role"
)

// Session is the cached identity.
type Session struct {
	Token string
	Email string
	Name  string
	Role  string
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the session database at dsn and applies
// its schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session migrations: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the cached session.
func (s *Store) Save(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := kv{db: tx}
		for k, v := range map[string]string{
			keyToken: sess.Token,
			keyEmail: sess.Email,
			keyName:  sess.Name,
			keyRole:  sess.Role,
		} {
			if err := r.set(ctx, k, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns the cached session, or nil when nobody is logged in.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	r := kv{db: s.db}

	token, err := r.get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, nil
	}

	sess := &Session{Token: string(token)}
	for k, dst := range map[string]*string{keyEmail: &sess.Email, keyName: &sess.Name, keyRole: &sess.Role} {
		v, err := r.get(ctx, k)
		if err != nil {
			return nil, err
		}
		*dst = string(v)
	}
	return sess, nil
}

// Clear forgets the cached session.
func (s *Store) Clear(ctx context.Context) error {
	return kv{db: s.db}.clear(ctx)
}
