package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"truga_booking/internal/domain/wizard"
	"truga_booking/internal/usecase/interfaces"
)

const defaultSessionTTLMinutes = 60

// WizardSessionMemoryStore keeps open wizard sessions in process memory.
//
// A draft only exists for the lifetime of one open wizard, so there is
// nothing to persist; the store's single job is to hand the same session
// back to the client that opened it. Sessions idle past the TTL are swept
// so abandoned wizards don't accumulate.
type WizardSessionMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]wizard.Session
	ttl      time.Duration
	now      func() time.Time
}

var _ interfaces.IWizardSessionStore = (*WizardSessionMemoryStore)(nil)

func NewWizardSessionMemoryStore() *WizardSessionMemoryStore {
	ttlMinutes, err := strconv.Atoi(getenvDefault("WIZARD_SESSION_TTL_MINUTES", ""))
	if err != nil || ttlMinutes <= 0 {
		ttlMinutes = defaultSessionTTLMinutes
	}
	return &WizardSessionMemoryStore{
		sessions: make(map[string]wizard.Session),
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		now:      time.Now,
	}
}

func (s *WizardSessionMemoryStore) Create(_ context.Context, sess wizard.Session) (wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *WizardSessionMemoryStore) GetByID(_ context.Context, id string) (wizard.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return wizard.Session{}, nil
	}
	return sess, nil
}

func (s *WizardSessionMemoryStore) Save(_ context.Context, sess wizard.Session) (wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *WizardSessionMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *WizardSessionMemoryStore) expired(sess wizard.Session) bool {
	return s.now().Sub(sess.UpdatedAt) > s.ttl
}

func (s *WizardSessionMemoryStore) sweepLocked() {
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
		}
	}
}
