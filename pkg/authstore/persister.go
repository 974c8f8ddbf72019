package authstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/modusplant/plantkit/pkg/authapi"
)

// persistVersion is the current layout of the saved blob. Blobs with any
// other version hydrate to an empty session.
const persistVersion = 1

// PersistedState is the remember-me blob. It deliberately carries only the
// user identity and the authenticated flag; counters and other transient
// state never leave memory.
type PersistedState struct {
	Version         int           `json:"version"`
	User            *authapi.User `json:"user"`
	IsAuthenticated bool          `json:"isAuthenticated"`
}

// Persister stores the remember-me blob between runs. Implementations must
// be safe for concurrent use.
type Persister interface {
	// Save overwrites the stored blob.
	Save(state PersistedState) error
	// Load returns the stored blob, or found=false when nothing is stored.
	Load() (state PersistedState, found bool, err error)
	// Clear removes the stored blob. Clearing an empty store is not an error.
	Clear() error
}

// FilePersister keeps the blob in a single JSON file. Saves are atomic: the
// blob is written to a temp file in the same directory and renamed over the
// target, so a crash mid-write never leaves a torn file.
type FilePersister struct {
	mu   sync.Mutex
	path string
}

// NewFilePersister creates a persister writing to path. The parent directory
// must exist.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Save(state PersistedState) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal auth state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p.path), ".auth-storage-*")
	if err != nil {
		return fmt.Errorf("create temp auth file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write auth state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close auth file: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace auth file: %w", err)
	}
	return nil
}

func (p *FilePersister) Load() (PersistedState, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return PersistedState{}, false, nil
	}
	if err != nil {
		return PersistedState{}, false, fmt.Errorf("read auth file: %w", err)
	}

	var state PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt blob is treated like an unknown version: start signed out.
		return PersistedState{}, false, nil
	}
	if state.Version != persistVersion {
		return PersistedState{}, false, nil
	}
	return state, true, nil
}

func (p *FilePersister) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := os.Remove(p.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove auth file: %w", err)
	}
	return nil
}

// MemoryPersister keeps the blob in memory, for tests and sessions that must
// not touch disk.
type MemoryPersister struct {
	mu    sync.Mutex
	state PersistedState
	found bool
}

// NewMemoryPersister creates an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Save(state PersistedState) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
	p.found = true
	return nil
}

func (p *MemoryPersister) Load() (PersistedState, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.found || p.state.Version != persistVersion {
		return PersistedState{}, false, nil
	}
	return p.state, true, nil
}

func (p *MemoryPersister) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = PersistedState{}
	p.found = false
	return nil
}

var (
	_ Persister = (*FilePersister)(nil)
	_ Persister = (*MemoryPersister)(nil)
)
