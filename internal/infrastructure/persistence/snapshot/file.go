package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zenerp/backend/internal/store"
)

// FileGateway stores snapshots as a single JSON document. Saves write to a
// temp file in the same directory and rename it over the target, so a crash
// mid-write never leaves a truncated snapshot behind.
type FileGateway struct {
	path string
}

// NewFileGateway creates a file-backed snapshot gateway
func NewFileGateway(path string) *FileGateway {
	return &FileGateway{path: path}
}

// Load reads the snapshot file, returning ErrNoSnapshot if it does not exist
func (g *FileGateway) Load() (*store.State, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", g.path, err)
	}

	state := store.NewState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", g.path, err)
	}
	return state, nil
}

// Save writes the state atomically via a temp file and rename
func (g *FileGateway) Save(state *store.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(g.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp snapshot: %w", err)
	}

	if err := os.Rename(tmpName, g.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot %s: %w", g.path, err)
	}
	return nil
}

// Close is a no-op for the file gateway
func (g *FileGateway) Close() error {
	return nil
}
