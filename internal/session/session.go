// Package session keeps the demo login flag in a persistent slot.
package session

import (
	"context"
	"crypto/subtle"
	"sync"

	"collabhub/internal/config"
	"collabhub/internal/logging"
)

// FlagKey is the slot holding the logged-in flag.
const FlagKey = "isLoggedIn"

// KV is the persistent slot store, satisfied by *sqlitekv.DB.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Manager tracks whether the demo user is logged in.
type Manager struct {
	mu       sync.Mutex
	kv       KV
	creds    config.SessionConfig
	loggedIn bool
}

// New restores the flag from kv. A flag other than "true" means logged out.
func New(ctx context.Context, kv KV, creds config.SessionConfig) (*Manager, error) {
	m := &Manager{kv: kv, creds: creds}
	v, ok, err := kv.Get(ctx, FlagKey)
	if err != nil {
		return nil, err
	}
	m.loggedIn = ok && v == "true"
	return m, nil
}

func equal(a, b string) bool { return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1 }

// Login succeeds only for the configured demo credentials.
func (m *Manager) Login(email, password string) bool {
	if m.creds.DemoEmail == "" || !equal(email, m.creds.DemoEmail) || !equal(password, m.creds.DemoPassword) {
		logging.Info("login_rejected", map[string]any{"email": email})
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggedIn = true
	if err := m.kv.Set(context.Background(), FlagKey, "true"); err != nil {
		logging.Error("session_persist_error", map[string]any{"error": err.Error()})
	}
	return true
}

// Logout clears the flag, in memory and in the slot.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggedIn = false
	if err := m.kv.Delete(context.Background(), FlagKey); err != nil {
		logging.Error("session_persist_error", map[string]any{"error": err.Error()})
	}
}

func (m *Manager) IsLoggedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loggedIn
}
