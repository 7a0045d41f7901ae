// Package matcher holds the swipe workflow of the matcher view: the queue of
// candidate profiles, match/pass decisions with single-step undo, and the
// gate that decides whether the caller may enter the view at all.
//
// Queue transitions are pure functions over State. Callers own the state
// value and replace it with the returned one; inputs are never mutated.
package matcher

import (
	"slices"

	"hackportal-backend/internal/domain"
)

type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

type ActionKind string

const (
	ActionMatch ActionKind = "match"
	ActionPass  ActionKind = "pass"
)

func (d Direction) kind() ActionKind {
	if d == Right {
		return ActionMatch
	}
	return ActionPass
}

// Action is the most recent decision, kept so it can be undone.
type Action struct {
	Kind    ActionKind
	Profile domain.Profile
}

// State is one session's queue. The top card is the last element of Cards.
// A profile id is in at most one of Cards, Matched and Passed.
type State struct {
	Cards      []domain.Profile
	Matched    []string
	Passed     []string
	LastAction *Action
}

// NewState starts a queue from the directory listing, keeping its order.
func NewState(profiles []domain.Profile) State {
	return State{Cards: slices.Clone(profiles)}
}

// Top returns the card that is processed next.
func (s State) Top() (domain.Profile, bool) {
	if len(s.Cards) == 0 {
		return domain.Profile{}, false
	}
	return s.Cards[len(s.Cards)-1], true
}

// Exhausted reports the terminal "no more candidates" condition.
func (s State) Exhausted() bool {
	return len(s.Cards) == 0
}

func (s State) Queued(id string) bool {
	return indexOf(s.Cards, id) >= 0
}

func (s State) IsMatched(id string) bool {
	return slices.Contains(s.Matched, id)
}

func (s State) IsPassed(id string) bool {
	return slices.Contains(s.Passed, id)
}

// Decision describes an applied decision for the rendering layer.
type Decision struct {
	Kind    ActionKind
	Profile domain.Profile
}

// Decide moves p out of the queue into the matched (right) or passed (left)
// set. Lookup is by profile id, so a stale index on the caller's side cannot
// remove the wrong card. Deciding on a profile that is not queued returns s
// unchanged and a nil Decision.
func Decide(s State, p domain.Profile, dir Direction) (State, *Decision) {
	i := indexOf(s.Cards, p.ID)
	if i < 0 || (dir != Left && dir != Right) {
		return s, nil
	}
	card := s.Cards[i]

	next := s.clone()
	next.Cards = slices.Delete(next.Cards, i, i+1)

	kind := dir.kind()
	if kind == ActionMatch {
		next.Matched = append(next.Matched, card.ID)
	} else {
		next.Passed = append(next.Passed, card.ID)
	}
	next.LastAction = &Action{Kind: kind, Profile: card}

	return next, &Decision{Kind: kind, Profile: card}
}

// DecideTop decides on the current top card. It is a no-op on an empty queue.
func DecideTop(s State, dir Direction) (State, *Decision) {
	top, ok := s.Top()
	if !ok {
		return s, nil
	}
	return Decide(s, top, dir)
}

// Undo reverses LastAction: the id leaves the set it was added to and the
// profile goes back on top of the queue unless it is already queued. Without a
// LastAction it returns s unchanged.
func Undo(s State) State {
	if s.LastAction == nil {
		return s
	}
	last := *s.LastAction

	next := s.clone()
	next.Matched = slices.DeleteFunc(next.Matched, func(id string) bool {
		return last.Kind == ActionMatch && id == last.Profile.ID
	})
	next.Passed = slices.DeleteFunc(next.Passed, func(id string) bool {
		return last.Kind == ActionPass && id == last.Profile.ID
	})
	if indexOf(next.Cards, last.Profile.ID) < 0 {
		next.Cards = append(next.Cards, last.Profile)
	}
	next.LastAction = nil
	return next
}

func (s State) clone() State {
	out := State{
		Cards:   slices.Clone(s.Cards),
		Matched: slices.Clone(s.Matched),
		Passed:  slices.Clone(s.Passed),
	}
	if s.LastAction != nil {
		a := *s.LastAction
		out.LastAction = &a
	}
	return out
}

func indexOf(cards []domain.Profile, id string) int {
	return slices.IndexFunc(cards, func(p domain.Profile) bool { return p.ID == id })
}
