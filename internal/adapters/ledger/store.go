// Package ledger stores the outcome of every tip and claim in a SQL
// database. Postgres and SQLite are supported.
package ledger

import (
	"context"
	_ "embed"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/zeebo/blake3"

	"tweet-tipping/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config selects the database.
type Config struct {
	Driver string
	DSN    string
}

// Store is the tip ledger.
type Store struct {
	db *sqlx.DB
}

// Open connects to the database and creates the schema if needed.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	switch cfg.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported ledger driver %q", cfg.Driver)
	}

	db, err := sqlx.ConnectContext(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect ledger: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;"); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
	}

	s := NewStore(db)
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewStore wraps an open database. The schema must already exist.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Fingerprint identifies a request by what was asked, not when. Two tips
// of the same amount to the same tweet from the same sender share it.
func Fingerprint(workflow domain.Workflow, sender, tweetID, amount string) string {
	sum := blake3.Sum256([]byte(strings.Join([]string{string(workflow), sender, tweetID, amount}, "\x00")))
	return hex.EncodeToString(sum[:])
}

// Record inserts entry, filling in the id, fingerprint and timestamp when
// they are empty.
func (s *Store) Record(ctx context.Context, entry *domain.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.Must(uuid.NewV7()).String()
	}
	if entry.Fingerprint == "" {
		entry.Fingerprint = Fingerprint(entry.Workflow, entry.Sender, entry.TweetID, entry.Amount)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	query := `
		INSERT INTO tip_ledger (
			id, workflow, tweet_id, author_id, amount, sender, tx_hash,
			outcome, detail, fingerprint, created_at
		) VALUES (
			:id, :workflow, :tweet_id, :author_id, :amount, :sender, :tx_hash,
			:outcome, :detail, :fingerprint, :created_at
		)`

	if _, err := s.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("record %s: %w", entry.Workflow, err)
	}
	return nil
}

// Recent returns the newest entries first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	query := s.db.Rebind(`SELECT * FROM tip_ledger ORDER BY created_at DESC, id DESC LIMIT ?`)
	if err := s.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	return entries, nil
}

// ByTweet returns the entries for one tweet, oldest first.
func (s *Store) ByTweet(ctx context.Context, tweetID string) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	query := s.db.Rebind(`SELECT * FROM tip_ledger WHERE tweet_id = ? ORDER BY created_at, id`)
	if err := s.db.SelectContext(ctx, &entries, query, tweetID); err != nil {
		return nil, fmt.Errorf("list tweet %s: %w", tweetID, err)
	}
	return entries, nil
}
