// Package cache memoizes front-end results in a SQLite database, so a
// repeated invocation against an unchanged file can skip lexing, parsing
// and checking entirely. It repurposes the teacher's SQL builtin's
// database/sql + modernc.org/sqlite driver pairing (see
// internal/evaluator/builtins_sql.go in the reference tree) for a
// build-result cache rather than an in-language SQL surface.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Cache wraps a single *sql.DB handle. Front-end invocations are
// single-threaded and synchronous (spec.md §5), so no pooling or
// connection-sharing discipline beyond what database/sql already gives us
// is needed.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures its schema exists. Pass ":memory:" for an ephemeral cache.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: migrate schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS check_results (
	path        TEXT NOT NULL,
	content_sha TEXT NOT NULL,
	passed      INTEGER NOT NULL,
	error_text  TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (path, content_sha)
);
`

// Digest returns the hex-encoded SHA-256 of source, the key used alongside
// the file path to look up a memoized result.
func Digest(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// ErrMiss is returned by Lookup when no memoized result exists for the
// given path/digest pair.
var ErrMiss = errors.New("cache: miss")

// Lookup returns the memoized pass/fail result for path at content digest,
// or ErrMiss if nothing is cached. A non-empty errText means the cached
// run failed with that message.
func (c *Cache) Lookup(path, digest string) (passed bool, errText string, err error) {
	row := c.db.QueryRow(
		`SELECT passed, error_text FROM check_results WHERE path = ? AND content_sha = ?`,
		path, digest,
	)
	var passedInt int
	if err := row.Scan(&passedInt, &errText); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, "", ErrMiss
		}
		return false, "", fmt.Errorf("cache: lookup %s: %w", path, err)
	}
	return passedInt != 0, errText, nil
}

// Store memoizes the outcome of checking path at content digest. errText
// is empty for a passing run.
func (c *Cache) Store(path, digest string, passed bool, errText string) error {
	passedInt := 0
	if passed {
		passedInt = 1
	}
	_, err := c.db.Exec(
		`INSERT INTO check_results (path, content_sha, passed, error_text) VALUES (?, ?, ?, ?)
		 ON CONFLICT(path, content_sha) DO UPDATE SET passed = excluded.passed, error_text = excluded.error_text`,
		path, digest, passedInt, errText,
	)
	if err != nil {
		return fmt.Errorf("cache: store %s: %w", path, err)
	}
	return nil
}
