package api

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/lookbusy1344/arm-disassembler/isa"
	"github.com/lookbusy1344/arm-disassembler/loader"
	"github.com/lookbusy1344/arm-disassembler/service"
)

var (
	// ErrSessionNotFound is returned when a session ID has no match.
	ErrSessionNotFound = errors.New("session not found")
)

// Session is one uploaded byte range and its decoded entries.
type Session struct {
	ID            string
	CreatedAt     time.Time
	Mode          string
	Entries       []service.Entry
	NotRecognized uint64
	Done          bool

	mu sync.RWMutex
}

func (s *Session) snapshot() ([]service.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]service.Entry, len(s.Entries))
	copy(out, s.Entries)
	return out, s.Done
}

// SessionManager tracks active decode sessions, each identified by a
// random hex ID, and owns the broadcaster used to stream progress.
type SessionManager struct {
	sessions    map[string]*Session
	broadcaster *Broadcaster
	mu          sync.RWMutex
}

// NewSessionManager creates a session manager backed by broadcaster.
func NewSessionManager(broadcaster *Broadcaster) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		broadcaster: broadcaster,
	}
}

// CreateSession decodes data (starting at base, in the given mode and
// profile) in the background, then broadcasts each decoded entry and a
// final done event, and returns immediately with the new session's ID.
func (sm *SessionManager) CreateSession(data []byte, base uint64, mode string, profile isa.Profile) (*Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		Mode:      mode,
	}

	sm.mu.Lock()
	sm.sessions[id] = session
	sm.mu.Unlock()

	go sm.decodeSession(session, data, base, mode, profile)

	return session, nil
}

func (sm *SessionManager) decodeSession(session *Session, data []byte, base uint64, mode string, profile isa.Profile) {
	var d isa.Decoder
	r := loader.NewWordReader(data, base)

	var entries []service.Entry
	if mode == "thumb" {
		entries = service.DisassembleThumb(r, &d, profile)
	} else {
		entries = service.DisassembleARM(r, &d, profile)
	}

	session.mu.Lock()
	session.Entries = entries
	session.mu.Unlock()

	for _, e := range entries {
		if sm.broadcaster != nil {
			sm.broadcaster.BroadcastEntry(session.ID, e)
		}
	}

	session.mu.Lock()
	session.Done = true
	session.NotRecognized = d.NotRecognized()
	session.mu.Unlock()

	if sm.broadcaster != nil {
		sm.broadcaster.BroadcastDone(session.ID, len(session.Entries), d.NotRecognized())
	}
}

// GetSession retrieves a session by ID.
func (sm *SessionManager) GetSession(id string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, ok := sm.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// DestroySession removes a session by ID.
func (sm *SessionManager) DestroySession(id string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, ok := sm.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(sm.sessions, id)
	return nil
}

// Count returns the number of active sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

func generateSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
