// Package project persists saved project configurations in bbolt. The whole
// collection lives as one JSON array under a single key, so every write
// rewrites the list inside one transaction.
package project

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/heartmarshall/relnotes-backend/internal/domain"
)

var (
	bucketName  = []byte("relnotes")
	projectsKey = []byte("projects")
)

// Repo provides project persistence backed by bbolt.
type Repo struct {
	db  *bbolt.DB
	now func() time.Time
}

// New creates a project repository and makes sure its bucket exists.
func New(db *bbolt.DB) (*Repo, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketName); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucketName, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Repo{db: db, now: time.Now}, nil
}

// Load returns every saved project in insertion order.
func (r *Repo) Load(ctx context.Context) ([]domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var projects []domain.Project
	err := r.db.View(func(tx *bbolt.Tx) error {
		var err error
		projects, err = read(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// SaveOne inserts or replaces a project by ID. A zero ID marks a new project,
// which gets its creation time in milliseconds as ID, bumped until unique.
// The stored project is returned.
func (r *Repo) SaveOne(ctx context.Context, p domain.Project) (domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return domain.Project{}, err
	}

	err := r.db.Update(func(tx *bbolt.Tx) error {
		projects, err := read(tx)
		if err != nil {
			return err
		}

		if p.ID == 0 {
			p.ID = nextID(projects, r.now().UnixMilli())
			projects = append(projects, p)
			return write(tx, projects)
		}

		for i := range projects {
			if projects[i].ID == p.ID {
				projects[i] = p
				return write(tx, projects)
			}
		}
		projects = append(projects, p)
		return write(tx, projects)
	})
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

// DeleteOne removes the project with the given ID.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) DeleteOne(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		projects, err := read(tx)
		if err != nil {
			return err
		}

		kept := projects[:0]
		for _, p := range projects {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(projects) {
			return fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		}
		return write(tx, kept)
	})
}

func nextID(projects []domain.Project, candidate int64) int64 {
	taken := make(map[int64]struct{}, len(projects))
	for _, p := range projects {
		taken[p.ID] = struct{}{}
	}
	for {
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
		candidate++
	}
}

func read(tx *bbolt.Tx) ([]domain.Project, error) {
	raw := tx.Bucket(bucketName).Get(projectsKey)
	if raw == nil {
		return []domain.Project{}, nil
	}

	var projects []domain.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

func write(tx *bbolt.Tx, projects []domain.Project) error {
	raw, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("encode projects: %w", err)
	}
	if err := tx.Bucket(bucketName).Put(projectsKey, raw); err != nil {
		return fmt.Errorf("store projects: %w", err)
	}
	return nil
}
