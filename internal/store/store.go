// Package store persists vocabulary words in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/f3rmion/jiantizi/internal/pinyin"
	"github.com/f3rmion/jiantizi/internal/vocab"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a word id does not exist.
var ErrNotFound = errors.New("word not found")

const schema = `
CREATE TABLE IF NOT EXISTS words (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	jiantizi     TEXT NOT NULL,
	pinyin       TEXT NOT NULL,
	pinyin_plain TEXT NOT NULL,
	english      TEXT NOT NULL DEFAULT '',
	created_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_words_jiantizi ON words(jiantizi);
CREATE INDEX IF NOT EXISTS idx_words_pinyin_plain ON words(pinyin_plain);
`

const selectWords = `SELECT id, jiantizi, pinyin, english FROM words`

// Store is a word database. Pinyin is normalized to tone marks on the way
// in, and a toneless copy is kept for searching.
type Store struct {
	db  *sql.DB
	enc *pinyin.Encoder
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string, enc *pinyin.Encoder) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	if enc == nil {
		enc = pinyin.NewEncoder(pinyin.StandardRules())
	}

	slog.Debug("opened word store", "path", path)
	return &Store{db: db, enc: enc}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add normalizes and stores w, returning it with its new id.
func (s *Store) Add(ctx context.Context, w vocab.Word) (vocab.Word, error) {
	return s.add(ctx, s.db, w)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) add(ctx context.Context, db execer, w vocab.Word) (vocab.Word, error) {
	w = w.Normalize(s.enc)
	if !w.Valid() {
		return vocab.Word{}, fmt.Errorf("word needs jiantizi and pinyin (got %q, %q)", w.Jiantizi, w.Pinyin)
	}

	res, err := db.ExecContext(ctx, `
	INSERT INTO words(jiantizi, pinyin, pinyin_plain, english, created_at)
	VALUES (?, ?, ?, ?, ?)
	`, w.Jiantizi, w.Pinyin, w.PlainPinyin(), w.English, time.Now().Unix())
	if err != nil {
		return vocab.Word{}, fmt.Errorf("inserting word: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return vocab.Word{}, fmt.Errorf("reading word id: %w", err)
	}
	w.ID = id
	return w, nil
}

// Import adds words in a single transaction. Words missing jiantizi or
// pinyin are skipped.
func (s *Store) Import(ctx context.Context, words []vocab.Word) (added, skipped int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("beginning import: %w", err)
	}

	for _, w := range words {
		if !w.Normalize(s.enc).Valid() {
			slog.Warn("skipping incomplete word", "jiantizi", w.Jiantizi, "pinyin", w.Pinyin)
			skipped++
			continue
		}
		if _, err := s.add(ctx, tx, w); err != nil {
			_ = tx.Rollback()
			return 0, 0, err
		}
		added++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing import: %w", err)
	}
	slog.Debug("imported words", "added", added, "skipped", skipped)
	return added, skipped, nil
}

// Get returns the word with the given id.
func (s *Store) Get(ctx context.Context, id int64) (vocab.Word, error) {
	row := s.db.QueryRowContext(ctx, selectWords+` WHERE id = ?`, id)
	var w vocab.Word
	if err := row.Scan(&w.ID, &w.Jiantizi, &w.Pinyin, &w.English); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vocab.Word{}, ErrNotFound
		}
		return vocab.Word{}, fmt.Errorf("reading word %d: %w", id, err)
	}
	return w, nil
}

// List returns all words ordered by jiantizi.
func (s *Store) List(ctx context.Context) ([]vocab.Word, error) {
	return s.query(ctx, selectWords+` ORDER BY jiantizi, id`)
}

// Recent returns up to limit words, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]vocab.Word, error) {
	return s.query(ctx, selectWords+` ORDER BY id DESC LIMIT ?`, limit)
}

// Search matches query against jiantizi, english, and pinyin ignoring
// tones. Numbered queries ("hao3") are converted before matching.
func (s *Store) Search(ctx context.Context, query string) ([]vocab.Word, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.List(ctx)
	}
	plain := strings.ToLower(pinyin.RemoveToneMarks(s.enc.ConvertNumbered(q)))

	return s.query(ctx, selectWords+`
	WHERE jiantizi LIKE ? ESCAPE '\'
	   OR lower(english) LIKE ? ESCAPE '\'
	   OR pinyin_plain LIKE ? ESCAPE '\'
	ORDER BY jiantizi, id
	`, contains(q), contains(strings.ToLower(q)), contains(plain))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains returns a LIKE pattern matching s literally anywhere.
func contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// Delete removes the word with the given id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting word %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting word %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]vocab.Word, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying words: %w", err)
	}
	defer rows.Close()

	var out []vocab.Word
	for rows.Next() {
		var w vocab.Word
		if err := rows.Scan(&w.ID, &w.Jiantizi, &w.Pinyin, &w.English); err != nil {
			return nil, fmt.Errorf("scanning word: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
