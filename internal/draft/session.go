// Package draft implements the view/edit protocol used by the Business
// Context screen.
//
// A Session owns a draft copy of one committed value. The committed value is
// only ever touched by Save, which hands the complete draft to the commit
// function in a single call.
package draft

import "errors"

type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "viewing"
}

var ErrNotEditing = errors.New("not editing")

// LoadFunc returns the committed value, or false when it no longer exists.
type LoadFunc[T any] func() (T, bool)

// CommitFunc writes a finished draft. A non-nil error keeps the session in
// Editing with the draft intact.
type CommitFunc[T any] func(T) error

type Session[T any] struct {
	mode   Mode
	draft  T
	load   LoadFunc[T]
	commit CommitFunc[T]
}

func NewSession[T any](load LoadFunc[T], commit CommitFunc[T]) *Session[T] {
	return &Session[T]{load: load, commit: commit}
}

func (s *Session[T]) Mode() Mode    { return s.mode }
func (s *Session[T]) Editing() bool { return s.mode == Editing }

// Enter switches to Editing with a fresh copy of the committed value. It
// returns false when already editing (the existing draft is kept) or when the
// committed value is gone.
func (s *Session[T]) Enter() bool {
	if s.mode == Editing {
		return false
	}
	v, ok := s.load()
	if !ok {
		return false
	}
	s.draft = v
	s.mode = Editing
	return true
}

// Draft returns the current draft and whether one exists.
func (s *Session[T]) Draft() (T, bool) {
	if s.mode != Editing {
		var zero T
		return zero, false
	}
	return s.draft, true
}

// Update applies one field change to the draft. Outside Editing it does
// nothing and returns false.
func (s *Session[T]) Update(fn func(*T)) bool {
	if s.mode != Editing {
		return false
	}
	fn(&s.draft)
	return true
}

// Save commits the draft and returns to Viewing.
func (s *Session[T]) Save() error {
	if s.mode != Editing {
		return ErrNotEditing
	}
	if err := s.commit(s.draft); err != nil {
		return err
	}
	s.reset()
	return nil
}

// Cancel discards the draft. The committed value is not consulted or changed.
func (s *Session[T]) Cancel() bool {
	if s.mode != Editing {
		return false
	}
	s.reset()
	return true
}

func (s *Session[T]) reset() {
	var zero T
	s.draft = zero
	s.mode = Viewing
}
