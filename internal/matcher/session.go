package matcher

import (
	"sync"
	"time"

	"hackportal-backend/internal/domain"
)

// DefaultFlashDuration is how long the match acknowledgment stays visible.
const DefaultFlashDuration = 500 * time.Millisecond

// Notification is emitted for every applied decision. The renderer shows it
// with an undo affordance that calls Session.Undo.
type Notification struct {
	Kind    ActionKind
	Profile domain.Profile
	Message string
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Scheduler runs fn after d and returns a function that cancels it.
type Scheduler func(d time.Duration, fn func()) (cancel func())

func afterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

type SessionOption func(*Session)

func WithFlashDuration(d time.Duration) SessionOption {
	return func(s *Session) { s.flashFor = d }
}

// WithScheduler replaces time.AfterFunc for the flash timer.
func WithScheduler(schedule Scheduler) SessionOption {
	return func(s *Session) { s.schedule = schedule }
}

// WithReady installs the renderer's check that the top card is attached and
// can be swiped. SwipeTop does nothing while it reports false.
func WithReady(ready func(domain.Profile) bool) SessionOption {
	return func(s *Session) { s.ready = ready }
}

// Session is the matcher view's owner of a queue State. It applies
// transitions, emits notifications and drives the cosmetic match flash. The
// flash never feeds back into State.
type Session struct {
	mu          sync.Mutex
	state       State
	notifier    Notifier
	flashFor    time.Duration
	schedule    Scheduler
	ready       func(domain.Profile) bool
	flashing    bool
	cancelFlash func()
}

// NewSession mounts the view with the directory listing.
func NewSession(profiles []domain.Profile, notifier Notifier, opts ...SessionOption) *Session {
	s := &Session{
		state:    NewState(profiles),
		notifier: notifier,
		flashFor: DefaultFlashDuration,
		schedule: afterFunc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the queue.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Swipe decides on p. It reports whether a decision was applied.
func (s *Session) Swipe(p domain.Profile, dir Direction) bool {
	s.mu.Lock()
	next, d := Decide(s.state, p, dir)
	s.state = next
	if d != nil && d.Kind == ActionMatch {
		s.startFlashLocked()
	}
	s.mu.Unlock()

	s.emit(d)
	return d != nil
}

// SwipeTop decides on the top card if the renderer reports it ready.
func (s *Session) SwipeTop(dir Direction) bool {
	s.mu.Lock()
	top, ok := s.state.Top()
	s.mu.Unlock()
	if !ok {
		return false
	}
	if s.ready != nil && !s.ready(top) {
		return false
	}
	return s.Swipe(top, dir)
}

// Undo reverses the most recent decision. It reports whether anything changed.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.LastAction == nil {
		return false
	}
	s.state = Undo(s.state)
	return true
}

// Flashing reports whether the match acknowledgment is showing.
func (s *Session) Flashing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flashing
}

func (s *Session) Exhausted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Exhausted()
}

// Close unmounts the view: the pending flash timer is cancelled and the
// state is dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelFlash != nil {
		s.cancelFlash()
		s.cancelFlash = nil
	}
	s.flashing = false
	s.state = State{}
}

func (s *Session) startFlashLocked() {
	if s.cancelFlash != nil {
		s.cancelFlash()
	}
	s.flashing = true
	s.cancelFlash = s.schedule(s.flashFor, func() {
		s.mu.Lock()
		s.flashing = false
		s.mu.Unlock()
	})
}

func (s *Session) emit(d *Decision) {
	if d == nil || s.notifier == nil {
		return
	}
	msg := "You passed " + d.Profile.Name
	if d.Kind == ActionMatch {
		msg = "You matched with " + d.Profile.Name
	}
	s.notifier.Notify(Notification{Kind: d.Kind, Profile: d.Profile, Message: msg})
}
