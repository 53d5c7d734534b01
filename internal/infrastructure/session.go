package infrastructure

import (
	"sync"
	"time"
)

// ChatSession tracks the state of one conversation on a messaging channel:
// which student the contact linked themselves to, plus debounce state so a
// double-tapped button does not trigger two replies.
type ChatSession struct {
	AlunoID   *int
	lastClick time.Time
	busy      bool
	mu        sync.Mutex
}

// SessionManager keeps sessions per chat, keyed by the channel sender id.
type SessionManager struct {
	sessions map[string]*ChatSession
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*ChatSession),
	}
}

func (sm *SessionManager) GetOrCreate(senderID string) *ChatSession {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, exists := sm.sessions[senderID]
	if !exists {
		session = &ChatSession{}
		sm.sessions[senderID] = session
	}
	return session
}

// LinkAluno remembers which student this contact asked about.
func (cs *ChatSession) LinkAluno(idAluno int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	id := idAluno
	cs.AlunoID = &id
}

func (cs *ChatSession) LinkedAluno() *int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.AlunoID
}

// IsAllowedClick debounces button taps. Denied while a previous reply is
// still being composed or within 2 seconds of the last tap.
func (cs *ChatSession) IsAllowedClick() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.busy {
		return false
	}
	if time.Since(cs.lastClick) < 2*time.Second {
		return false
	}
	cs.lastClick = time.Now()
	return true
}

func (cs *ChatSession) StartProcessing() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.busy = true
}

func (cs *ChatSession) FinishProcessing() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.busy = false
}
