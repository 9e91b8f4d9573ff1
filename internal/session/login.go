// Package session caches the copilot login identity: the login response from
// the backend (persisted to disk between client restarts) and the mapping
// between game accounts and display names for the current copilot user.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/basedbeardjones-alt/SwagFliperino/api/schemas"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/config"
	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SkipAuthEnv bypasses copilot login entirely when set to "true". Intended
// for local development against a backend with auth disabled.
const SkipAuthEnv = "SWAGFLIPERINO_SKIP_AUTH"

// UserNone is returned by CopilotUserID when nobody is logged in.
const UserNone = -1

// unknownDisplayName is handed out for account ids this session never saw.
const unknownDisplayName = "Unknown"

// Manager owns the login cache. All public methods are safe for concurrent
// use; disk writes happen on a dedicated goroutine so callers never block on
// I/O.
type Manager struct {
	mu sync.Mutex

	log      *zap.Logger
	path     string
	skipAuth bool

	cached    *schemas.LoginResponse
	loadTried bool

	nameToID map[string]int
	idToName map[int]string

	saves     chan *schemas.LoginResponse
	closeOnce sync.Once
	done      chan struct{}
}

// NewManager resolves the cache path and starts the persistence goroutine.
// Close must be called to flush and stop it.
func NewManager(cfg config.SessionConfig, logger *zap.Logger) (*Manager, error) {
	path, err := cfg.CachePath()
	if err != nil {
		return nil, err
	}
	m := &Manager{
		log:      logger.Named("session"),
		path:     path,
		skipAuth: os.Getenv(SkipAuthEnv) == "true",
		nameToID: make(map[string]int),
		idToName: make(map[int]string),
		saves:    make(chan *schemas.LoginResponse, 1),
		done:     make(chan struct{}),
	}
	go m.writer()
	return m, nil
}

// -- Account identity maps --

// AddAccountIfMissing records a display-name binding for a game account, but
// only when it belongs to the currently logged-in copilot user. Re-adding a
// known account is a no-op.
func (m *Manager) AddAccountIfMissing(accountID int, displayName string, copilotUserID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.idToName[accountID]; ok {
		return
	}
	if m.copilotUserIDLocked() != copilotUserID {
		return
	}
	m.nameToID[displayName] = accountID
	m.idToName[accountID] = displayName
}

// RemoveAccount forgets a game account and its display-name binding.
func (m *Manager) RemoveAccount(accountID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	displayName, ok := m.idToName[accountID]
	delete(m.idToName, accountID)
	if ok {
		delete(m.nameToID, displayName)
	}
}

// AccountID resolves a display name to a game account id, -1 when unknown.
func (m *Manager) AccountID(displayName string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.nameToID[displayName]; ok {
		return id
	}
	return -1
}

// DisplayName resolves an account id, "Unknown" when the session never saw it.
func (m *Manager) DisplayName(accountID int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if name, ok := m.idToName[accountID]; ok {
		return name
	}
	return unknownDisplayName
}

// AccountIDs returns a snapshot of the known game account ids.
func (m *Manager) AccountIDs() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int, 0, len(m.idToName))
	for id := range m.idToName {
		ids = append(ids, id)
	}
	return ids
}

// DisplayNames returns a snapshot copy of the display-name -> account-id map.
func (m *Manager) DisplayNames() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.nameToID))
	for name, id := range m.nameToID {
		out[name] = id
	}
	return out
}

// -- Login response --

// SetLoginResponse caches a fresh login and schedules it for persistence.
func (m *Manager) SetLoginResponse(lr *schemas.LoginResponse) {
	if lr == nil {
		return
	}
	m.mu.Lock()
	m.cached = lr
	m.loadTried = true
	m.mu.Unlock()

	// Keep only the newest response queued; an older pending write is stale.
	for {
		select {
		case m.saves <- lr:
			return
		default:
		}
		select {
		case <-m.saves:
		default:
		}
	}
}

// LoggedIn reports whether a usable login exists: a non-empty JWT that has
// not passed its expiry claim.
func (m *Manager) LoggedIn() bool {
	if m.skipAuth {
		return true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	lr := m.loginResponseLocked()
	if lr == nil || lr.JWT == "" {
		return false
	}
	return !tokenExpired(lr.JWT)
}

// CopilotUserID returns the logged-in copilot user id, UserNone when logged
// out. With auth bypassed it returns a stable dummy id of 0.
func (m *Manager) CopilotUserID() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copilotUserIDLocked()
}

func (m *Manager) copilotUserIDLocked() int {
	if m.skipAuth {
		return 0
	}
	if lr := m.loginResponseLocked(); lr != nil {
		return lr.UserID
	}
	return UserNone
}

// Token returns the JWT for backend requests. ok is false when logged out;
// with auth bypassed the token is empty but ok is true.
func (m *Manager) Token() (token string, ok bool) {
	if m.skipAuth {
		return "", true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	lr := m.loginResponseLocked()
	if lr == nil || lr.JWT == "" || tokenExpired(lr.JWT) {
		return "", false
	}
	return lr.JWT, true
}

// Reset logs out: it clears the caches, forgets all accounts, and deletes
// the persisted file.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cached = nil
	m.loadTried = true
	m.nameToID = make(map[string]int)
	m.idToName = make(map[int]string)
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		m.log.Warn("Failed to delete login response file",
			zap.String("path", m.path), zap.Error(err))
	}
}

// Close flushes any pending write and stops the persistence goroutine.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.saves)
	})
	<-m.done
}

// -- Persistence --

// loginResponseLocked lazily loads the cached response from disk on first
// access. Callers hold m.mu.
func (m *Manager) loginResponseLocked() *schemas.LoginResponse {
	if m.cached == nil && !m.loadTried {
		m.loadTried = true
		m.cached = m.load()
	}
	return m.cached
}

func (m *Manager) load() *schemas.LoginResponse {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			m.log.Warn("Failed to read login response file",
				zap.String("path", m.path), zap.Error(err))
		}
		return nil
	}
	var lr schemas.LoginResponse
	if err := json.Unmarshal(data, &lr); err != nil {
		// A corrupt cache just means logging in again.
		m.log.Warn("Failed to parse login response file",
			zap.String("path", m.path), zap.Error(err))
		return nil
	}
	return &lr
}

// writer persists queued login responses until Close.
func (m *Manager) writer() {
	defer close(m.done)
	for lr := range m.saves {
		if err := m.persist(lr); err != nil {
			m.log.Warn("Failed to save login response", zap.Error(err))
		}
	}
}

func (m *Manager) persist(lr *schemas.LoginResponse) error {
	data, err := json.Marshal(lr)
	if err != nil {
		return fmt.Errorf("failed to marshal login response: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.path, err)
	}
	return nil
}

// tokenExpired checks the JWT's exp claim without verifying the signature;
// verification is the backend's job, we only avoid sending tokens we already
// know are dead. Unparseable tokens are passed through.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
