package onboarding

import (
	"sync"
	"time"
)

// DefaultDraftDelay is the idle window before a scheduled draft save fires.
const DefaultDraftDelay = 500 * time.Millisecond

// DraftScheduler debounces fire-and-forget draft saves. Schedule cancels any
// pending timer and starts a fresh one; when the timer fires, the save
// function runs once. The last scheduled save wins.
//
// An in-flight save (already fired) is never cancelled by a newer Schedule,
// so a slow earlier save can resolve after a newer one. Callers who care
// about ordering must enforce it in the save function.
type DraftScheduler struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	save  func()
}

// NewDraftScheduler builds a scheduler around a save function. The function
// must swallow its own errors; draft saves are best-effort and must never
// surface failures to the user.
func NewDraftScheduler(delay time.Duration, save func()) *DraftScheduler {
	if delay <= 0 {
		delay = DefaultDraftDelay
	}
	return &DraftScheduler{delay: delay, save: save}
}

// Schedule arms (or re-arms) the debounce timer.
func (s *DraftScheduler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

// CancelPending drops any armed timer without firing it.
func (s *DraftScheduler) CancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Flush fires a pending save immediately, if one is armed. Used on submit so
// the last edits are not lost to the debounce window.
func (s *DraftScheduler) Flush() {
	s.mu.Lock()
	pending := s.timer != nil
	if pending {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if pending {
		s.save()
	}
}

func (s *DraftScheduler) fire() {
	s.mu.Lock()
	s.timer = nil
	s.mu.Unlock()
	s.save()
}
