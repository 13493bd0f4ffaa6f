package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

const (
	codeMin = 100000
	codeMax = 999999
)

type entry struct {
	code     string
	issuedAt time.Time
}

// Manager keeps one-time reset codes in process memory, keyed by username.
// Issuing a new code replaces any outstanding one, and validation consumes
// the code so it can never be replayed.
type Manager struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	codes map[string]entry
}

// NewManager builds an OTP store. A zero ttl means codes never expire on
// their own; they still die on use or reissue.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:   ttl,
		now:   time.Now,
		codes: make(map[string]entry),
	}
}

// Issue generates a fresh six-digit code for the user, overwriting any
// previously issued code.
func (m *Manager) Issue(username string) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", fmt.Errorf("generating otp: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[username] = entry{code: code, issuedAt: m.now()}
	return code, nil
}

// ValidateAndConsume checks the submitted code against the stored one. The
// stored code is removed on success so a second attempt with the same code
// fails.
func (m *Manager) ValidateAndConsume(username string, code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.codes[username]
	if !ok {
		return false
	}
	if m.ttl > 0 && m.now().Sub(stored.issuedAt) > m.ttl {
		delete(m.codes, username)
		return false
	}
	if stored.code != code {
		return false
	}

	delete(m.codes, username)
	return true
}

func randomCode() (string, error) {
	span := big.NewInt(codeMax - codeMin + 1)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}
