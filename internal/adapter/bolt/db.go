// Package bolt opens the client-local bbolt database that backs the CLI's
// project store.
package bolt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	bbolt "go.etcd.io/bbolt"
)

// DefaultPath is where the CLI keeps its database unless told otherwise.
const DefaultPath = "~/.relnotes/projects.db"

// openTimeout bounds the wait for the file lock held by another process.
const openTimeout = time.Second

// Open expands a leading ~ in path, creates the parent directory and opens
// the database. The caller owns the returned handle.
func Open(path string) (*bbolt.DB, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand store path %q: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o700); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := bbolt.Open(expanded, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", expanded, err)
	}
	return db, nil
}
