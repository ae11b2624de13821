package devlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/noobcogs/internal/models"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS devlog_entries (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	command    TEXT NOT NULL,
	content    TEXT NOT NULL,
	author_id  TEXT NOT NULL,
	guild_id   TEXT NOT NULL DEFAULT '',
	channel_id TEXT NOT NULL,
	jump_url   TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_devlog_entries_author ON devlog_entries(author_id);
`

// defaultLimit bounds Recent when no limit is given
const defaultLimit = 10

// Config holds configuration for the sqlite devlog repository
type Config struct {
	// Path of the sqlite database file
	Path string
}

// sqliteRepository implements the Repository interface using sqlite
type sqliteRepository struct {
	db *sqlx.DB
}

// NewSQLite opens the archive and makes sure the schema exists
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	db, err := sqlx.Connect("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open devlog database: %w", err)
	}

	// sqlite serialises writers anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create devlog schema: %w", err)
	}

	return &sqliteRepository{db: db}, nil
}

// Save archives an entry
func (r *sqliteRepository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	e := input.Entry
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO devlog_entries (command, content, author_id, guild_id, channel_id, jump_url, created_at)
		VALUES (:command, :content, :author_id, :guild_id, :channel_id, :jump_url, :created_at)`, e)
	if err != nil {
		return fmt.Errorf("failed to save devlog entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read devlog entry id: %w", err)
	}
	e.ID = id

	return nil
}

// Recent returns the newest entries
func (r *sqliteRepository) Recent(ctx context.Context, input *RecentInput) ([]*models.DevLogEntry, error) {
	limit := defaultLimit
	authorID := ""
	if input != nil {
		if input.Limit > 0 {
			limit = input.Limit
		}
		authorID = input.AuthorID
	}

	entries := []*models.DevLogEntry{}
	var err error
	if authorID != "" {
		err = r.db.SelectContext(ctx, &entries,
			`SELECT * FROM devlog_entries WHERE author_id = ? ORDER BY id DESC LIMIT ?`, authorID, limit)
	} else {
		err = r.db.SelectContext(ctx, &entries,
			`SELECT * FROM devlog_entries ORDER BY id DESC LIMIT ?`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read devlog entries: %w", err)
	}

	return entries, nil
}

// Close closes the database
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}
