package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File keeps the credential in a single 0600 file. Placed under the user's
// runtime directory it survives process restarts but not a reboot or
// logout.
type File struct {
	mu   sync.Mutex
	path string
}

var _ Store = (*File)(nil)

func NewFile(path string) *File {
	return &File{path: path}
}

// DefaultPath returns $XDG_RUNTIME_DIR/invoice-dashboard/session, falling
// back to the OS temp dir.
func DefaultPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "invoice-dashboard", "session")
}

func (f *File) Path() string { return f.path }

func (f *File) Get() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readLocked()
}

func (f *File) readLocked() (string, bool) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return "", false
	}
	credential := strings.TrimSpace(string(raw))
	if credential == "" {
		return "", false
	}
	return credential, true
}

func (f *File) Store(credential string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("session.Store: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return fmt.Errorf("session.Store: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("session.Store: chmod: %w", err)
	}
	if _, err := tmp.WriteString(credential); err != nil {
		tmp.Close()
		return fmt.Errorf("session.Store: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session.Store: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("session.Store: rename: %w", err)
	}
	return nil
}

func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.removeLocked(); err != nil {
		return fmt.Errorf("session.Clear: %w", err)
	}
	return nil
}

func (f *File) ClearIf(credential string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, ok := f.readLocked()
	if !ok || current != credential {
		return false, nil
	}
	if err := f.removeLocked(); err != nil {
		return false, fmt.Errorf("session.ClearIf: %w", err)
	}
	return true, nil
}

func (f *File) removeLocked() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (f *File) IsPresent() bool {
	_, ok := f.Get()
	return ok
}
