// Package snapshot persists the whole ledger state as a single document.
// Every committed mutation produces a fresh snapshot; on startup the latest
// one is loaded, or the seed data is used when none exists yet.
package snapshot

import (
	"errors"

	"github.com/zenerp/backend/internal/infrastructure/config"
	"github.com/zenerp/backend/internal/store"
)

// ErrNoSnapshot is returned by Load when no snapshot has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot found")

// Gateway loads and saves whole-state snapshots
type Gateway interface {
	Load() (*store.State, error)
	Save(state *store.State) error
	Close() error
}

// Open creates the gateway for the configured driver
func Open(cfg config.SnapshotConfig) (Gateway, error) {
	switch cfg.Driver {
	case "sqlite":
		return NewSQLiteGateway(cfg.Path)
	default:
		return NewFileGateway(cfg.Path), nil
	}
}
