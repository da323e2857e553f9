package usecase

import (
	"chantierplus/internal/domain/draft"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// session owns one draft. mu serializes every operation on the draft.
//
// Lock order: session.mu may be held while taking SessionRegistry.mu, never
// the reverse. The registry only reads the atomic fields.
type session struct {
	mu         sync.Mutex
	draft      draft.Draft
	submitting atomic.Bool
	closed     atomic.Bool
	lastSeen   atomic.Int64

	// pendingDictation holds transcriptions that resolved during a submit.
	// They are merged if the submit fails and dropped if it succeeds.
	pendingDictation []string
}

func (s *session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// SessionRegistry keeps the drafts under composition, in memory only.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
	idleTTL  time.Duration
	now      func() time.Time
}

func NewSessionRegistry(idleTTL time.Duration) *SessionRegistry {
	return &SessionRegistry{
		sessions: map[string]*session{},
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (r *SessionRegistry) open(d draft.Draft) *session {
	s := &session{draft: d}
	s.touch(r.now())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.reapLocked()
	r.sessions[d.ID] = s
	return s
}

func (r *SessionRegistry) get(id string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// remove destroys the draft. Late results for it are dropped by callers
// checking closed.
func (r *SessionRegistry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.closed.Store(true)
		delete(r.sessions, id)
	}
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *SessionRegistry) reapLocked() {
	if r.idleTTL <= 0 {
		return
	}
	cutoff := r.now().Add(-r.idleTTL).UnixNano()
	for id, s := range r.sessions {
		if s.submitting.Load() || s.lastSeen.Load() >= cutoff {
			continue
		}
		s.closed.Store(true)
		delete(r.sessions, id)
		log.Printf("[avenant][session] idle draft discarded draft_id=%s", id)
	}
}
