// Package session holds the single authorization credential the dashboard
// sends with every request to the remote API.
//
// Presence of a credential is the only authentication check made locally.
// It stays valid until the API rejects it with a 401.
package session

import "sync"

// Store is a single-slot credential holder.
type Store interface {
	Get() (string, bool)
	Store(credential string) error
	Clear() error
	// ClearIf clears the store only while it still holds credential and
	// reports whether it did.
	ClearIf(credential string) (bool, error)
	IsPresent() bool
}

// Memory keeps the credential for the lifetime of the process.
type Memory struct {
	mu         sync.RWMutex
	credential string
	present    bool
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.credential, m.present
}

func (m *Memory) Store(credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = credential
	m.present = true
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = ""
	m.present = false
	return nil
}

func (m *Memory) ClearIf(credential string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.present || m.credential != credential {
		return false, nil
	}
	m.credential = ""
	m.present = false
	return true, nil
}

func (m *Memory) IsPresent() bool {
	_, ok := m.Get()
	return ok
}
