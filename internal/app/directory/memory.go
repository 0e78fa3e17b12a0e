package directory

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryDirectory is an in-memory UserDirectory.
// It substitutes for the remote directory service in tests and development.
// An optional Latency can be set to simulate a network round trip; lookups
// then wait on a timer (still honoring context cancellation).
type MemoryDirectory struct {
	mu      sync.RWMutex
	users   map[string]*User
	latency time.Duration
}

// MemoryOption configures a MemoryDirectory.
type MemoryOption func(*MemoryDirectory)

// WithLatency makes every directory operation wait for d, simulating a
// network-backed directory.
func WithLatency(d time.Duration) MemoryOption {
	return func(m *MemoryDirectory) {
		m.latency = d
	}
}

// NewMemoryDirectory creates a MemoryDirectory seeded with the given users.
func NewMemoryDirectory(seed []*User, opts ...MemoryOption) *MemoryDirectory {
	m := &MemoryDirectory{
		users: make(map[string]*User, len(seed)),
	}

	for _, u := range seed {
		m.users[u.ID] = u.Clone()
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// wait blocks for the configured simulated latency, or until the context is done.
func (m *MemoryDirectory) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(m.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FindByID returns the user with the given ID, or ErrNotFound.
func (m *MemoryDirectory) FindByID(ctx context.Context, id string) (*User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u.Clone(), nil
}

// FindByEmail returns the user with the given email, or ErrNotFound.
// Email comparison is case-insensitive.
func (m *MemoryDirectory) FindByEmail(ctx context.Context, email string) (*User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

// FindByUsername returns the user with the given username, or ErrNotFound.
func (m *MemoryDirectory) FindByUsername(ctx context.Context, username string) (*User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return u.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

// FindByCredentials returns the user matching both email and username, or ErrNotFound.
func (m *MemoryDirectory) FindByCredentials(ctx context.Context, email, username string) (*User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) && u.Username == username {
			return u.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

// Create inserts a new user record, enforcing email and username uniqueness.
func (m *MemoryDirectory) Create(ctx context.Context, u *User) error {
	if err := m.wait(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return ErrEmailExists
		}
		if u.Username != "" && existing.Username == u.Username {
			return ErrUsernameExists
		}
	}

	m.users[u.ID] = u.Clone()
	return nil
}

// Update replaces the stored record for u.ID.
func (m *MemoryDirectory) Update(ctx context.Context, u *User) error {
	if err := m.wait(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[u.ID]; !ok {
		return ErrNotFound
	}

	m.users[u.ID] = u.Clone()
	return nil
}

// Connect adds otherID to the connection set of userID.
func (m *MemoryDirectory) Connect(ctx context.Context, userID, otherID string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	if _, ok := m.users[otherID]; !ok {
		return ErrNotFound
	}

	if !u.IsConnectedTo(otherID) {
		u.Connections = append(u.Connections, otherID)
	}
	return nil
}

// Disconnect removes otherID from the connection set of userID.
func (m *MemoryDirectory) Disconnect(ctx context.Context, userID, otherID string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}

	filtered := u.Connections[:0]
	for _, id := range u.Connections {
		if id != otherID {
			filtered = append(filtered, id)
		}
	}
	u.Connections = filtered
	return nil
}
