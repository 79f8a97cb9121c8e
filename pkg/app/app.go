// Package app provides the controller between presentation and the board of
// task lists. It owns the in-memory state, validates user intents, and writes
// every mutation through to persistence before returning.
package app

import (
	"errors"
	"strings"
	"time"

	"taskmaster/pkg/store"
	"taskmaster/pkg/tasklist"
)

// Service mediates operations against the board. It exclusively owns the
// in-memory lists; presentation layers only hold transient references for
// rendering. Selection is tracked as an optional list ID, never an index,
// so removals cannot invalidate it silently.
type Service struct {
	Persistence store.Persistence

	lists    []*tasklist.List
	selected string
}

// Load primes the board from persistence. The board is usable even on error:
// persistence seeds defaults when the file is missing or unreadable, and the
// returned PersistenceError is a non-fatal notice for the latter case.
func (s *Service) Load() error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	lists, err := s.Persistence.Load()
	s.lists = lists
	s.selected = ""
	if err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}
	return nil
}

// Lists returns the board in insertion order.
func (s *Service) Lists() []*tasklist.List {
	return s.lists
}

// Selection returns the currently selected list, if any.
func (s *Service) Selection() (*tasklist.List, bool) {
	if s.selected == "" {
		return nil, false
	}
	for _, l := range s.lists {
		if l.ID == s.selected {
			return l, true
		}
	}
	return nil, false
}

// Select marks the list with the given ID as current.
func (s *Service) Select(id string) error {
	for _, l := range s.lists {
		if l.ID == id {
			s.selected = id
			return nil
		}
	}
	return &NotFoundError{What: "list"}
}

// SelectByName selects a list by case-insensitive name.
func (s *Service) SelectByName(name string) error {
	if l := s.findByName(name, ""); l != nil {
		s.selected = l.ID
		return nil
	}
	return &NotFoundError{What: "list " + strings.TrimSpace(name)}
}

// Deselect clears the current selection.
func (s *Service) Deselect() {
	s.selected = ""
}

// CreateList appends a new list, selects it, and persists.
func (s *Service) CreateList(name string) (*tasklist.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "list name", Reason: "empty after trimming"}
	}
	if s.findByName(name, "") != nil {
		return nil, &ConflictError{Name: name}
	}
	l := tasklist.New(name)
	s.lists = append(s.lists, l)
	s.selected = l.ID
	return l, s.persist()
}

// RenameList renames the selected list and persists.
func (s *Service) RenameList(name string) error {
	l, ok := s.Selection()
	if !ok {
		return &NotFoundError{What: "selected list"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "list name", Reason: "empty after trimming"}
	}
	if s.findByName(name, l.ID) != nil {
		return &ConflictError{Name: name}
	}
	if name == l.Name {
		return nil
	}
	l.Name = name
	return s.persist()
}

// DeleteList removes the selected list, clears the selection, and persists.
// Confirmation is the presentation layer's responsibility.
func (s *Service) DeleteList() error {
	l, ok := s.Selection()
	if !ok {
		return &NotFoundError{What: "selected list"}
	}
	for i, candidate := range s.lists {
		if candidate.ID == l.ID {
			s.lists = append(s.lists[:i], s.lists[i+1:]...)
			break
		}
	}
	s.selected = ""
	return s.persist()
}

// AddItem appends an item to the selected list and persists. Text that trims
// to nothing is a no-op, not an error.
func (s *Service) AddItem(text string) error {
	l, ok := s.Selection()
	if !ok {
		return &NotFoundError{What: "selected list"}
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if err := l.AddItem(text); err != nil {
		return &ValidationError{Field: "task text", Reason: err.Error()}
	}
	return s.persist()
}

// ToggleItem flips completion on item i of the selected list and persists.
// No selection or a stale index is a defensive no-op.
func (s *Service) ToggleItem(i int) error {
	l, ok := s.Selection()
	if !ok {
		return nil
	}
	if i < 0 || i >= len(l.Items) {
		return nil
	}
	l.ToggleItem(i, time.Now())
	return s.persist()
}

// EditItem replaces item i's text and persists. A no-op (no selection, stale
// index, empty or unchanged text) is treated as a user cancel.
func (s *Service) EditItem(i int, text string) error {
	l, ok := s.Selection()
	if !ok {
		return nil
	}
	if !l.EditItem(i, text) {
		return nil
	}
	return s.persist()
}

// DeleteItem removes item i from the selected list and persists. A stale
// index is a no-op; any confirmation policy lives in presentation.
func (s *Service) DeleteItem(i int) error {
	l, ok := s.Selection()
	if !ok {
		return nil
	}
	if i < 0 || i >= len(l.Items) {
		return nil
	}
	l.RemoveItem(i)
	return s.persist()
}

// BoardStats aggregates counts across all lists.
type BoardStats struct {
	Lists     int
	Tasks     int
	Completed int
}

func (s *Service) BoardStats() BoardStats {
	bs := BoardStats{Lists: len(s.lists)}
	for _, l := range s.lists {
		st := l.Stats()
		bs.Tasks += st.Total
		bs.Completed += st.Completed
	}
	return bs
}

// findByName matches case-insensitively, skipping excludeID when renaming.
func (s *Service) findByName(name, excludeID string) *tasklist.List {
	name = strings.TrimSpace(name)
	for _, l := range s.lists {
		if l.ID != excludeID && strings.EqualFold(l.Name, name) {
			return l
		}
	}
	return nil
}

// persist writes the whole board through after every mutation. Correctness
// over throughput: the data volumes stay small enough that batching or dirty
// tracking would only add failure modes.
func (s *Service) persist() error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	if err := s.Persistence.Save(s.lists); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}
