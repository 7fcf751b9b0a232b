// Package nav holds the single mutable piece of navigation state for an open
// planner document: which page is shown, plus the advance and jump operations
// that change it.
package nav

import (
	"fmt"

	"github.com/chenchungwan/lotusplannerv3-sub007/pkg/page"
)

// Cause distinguishes how the position changed so the rendering surface can
// treat a sequential user swipe differently from a programmatic jump (for
// example, only animating the latter). The core treats both identically.
type Cause int

const (
	// CauseAdvance is a sequential advance driven by swipe/scroll input.
	CauseAdvance Cause = iota
	// CauseJump is a targeted jump resolved through the page index.
	CauseJump
)

func (c Cause) String() string {
	if c == CauseJump {
		return "jump"
	}
	return "advance"
}

// Change describes one position mutation delivered to subscribers.
type Change struct {
	Old   int
	New   int
	Cause Cause
}

// Listener receives position changes synchronously, in subscription order,
// before the mutating call returns. No stale reads: by the time any caller
// observes the mutation, every listener has already seen it.
type Listener func(Change)

// State is the single source of truth for the current page position. It is
// owned by the interaction thread of exactly one open document and is not
// safe for concurrent use; nothing here blocks, so there is no async state to
// cancel and the most recently issued valid jump always wins.
type State struct {
	index     *page.Index
	position  int
	listeners []Listener
}

// New creates navigation state over a fully built index, positioned at the
// first page.
func New(index *page.Index) (*State, error) {
	if index == nil || index.Len() == 0 {
		return nil, page.ErrEmptySequence
	}
	return &State{index: index}, nil
}

// Position returns the current position; always in [0, Len()-1].
func (s *State) Position() int {
	return s.position
}

// Len returns the page count of the backing sequence.
func (s *State) Len() int {
	return s.index.Len()
}

// Index exposes the read-only page index backing this state.
func (s *State) Index() *page.Index {
	return s.index
}

// Descriptor returns the descriptor for the current position.
func (s *State) Descriptor() page.Descriptor {
	d, _ := s.index.At(s.position)
	return d
}

// Subscribe registers a listener for subsequent position changes.
func (s *State) Subscribe(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

// Advance moves the position by delta, clamping to the sequence bounds. It
// never wraps and never fails; advancing past either end stays on the
// boundary page. Returns the resulting position.
func (s *State) Advance(delta int) int {
	next := s.position + delta
	if next < 0 {
		next = 0
	}
	if max := s.index.Len() - 1; next > max {
		next = max
	}
	s.set(next, CauseAdvance)
	return s.position
}

// JumpTo resolves a descriptor through the index and moves there. On failure
// the position is left unchanged and the index's typed error is returned;
// landing silently on a wrong page would be worse than doing nothing.
func (s *State) JumpTo(d page.Descriptor) (int, error) {
	pos, err := s.index.Position(d)
	if err != nil {
		return s.position, err
	}
	s.set(pos, CauseJump)
	return s.position, nil
}

// JumpToPosition moves directly to a position already resolved by the caller
// (for example a month shortcut that read the index's month map).
func (s *State) JumpToPosition(pos int) error {
	if pos < 0 || pos >= s.index.Len() {
		return fmt.Errorf("nav: position %d outside [0, %d)", pos, s.index.Len())
	}
	s.set(pos, CauseJump)
	return nil
}

func (s *State) set(pos int, cause Cause) {
	if pos == s.position {
		return
	}
	change := Change{Old: s.position, New: pos, Cause: cause}
	s.position = pos
	for _, l := range s.listeners {
		l(change)
	}
}
