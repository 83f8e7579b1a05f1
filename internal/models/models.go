// Package models defines the core domain types for planner.
package models

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Displayer is implemented by anything that can render itself to the console.
type Displayer interface {
	Display(w io.Writer)
}

// Rename records a name change made by an edit.
type Rename struct {
	Old string
	New string
}

// Changed reports whether the edit actually changed the name.
func (r Rename) Changed() bool {
	return r.Old != r.New
}

// Subtask is a leaf unit of work owned by exactly one Task.
type Subtask struct {
	ID       string
	Name     string
	Duration int // days
}

// NewSubtask creates a subtask with a fresh ID.
func NewSubtask(name string, duration int) *Subtask {
	return &Subtask{
		ID:       uuid.New().String(),
		Name:     name,
		Duration: duration,
	}
}

// Display writes the subtask line.
func (s *Subtask) Display(w io.Writer) {
	fmt.Fprintf(w, "    Subtask: %s (%d days)\n", s.Name, s.Duration)
}

// Edit overwrites name and duration.
func (s *Subtask) Edit(name string, duration int) Rename {
	r := Rename{Old: s.Name, New: name}
	s.Name = name
	s.Duration = duration
	return r
}

// Task is a top-level unit of work. It owns its subtasks; dropping a Task
// drops them too.
type Task struct {
	ID       string
	Name     string
	Duration int // days

	subtasks []*Subtask
}

// NewTask creates a task with a fresh ID and no subtasks.
func NewTask(name string, duration int) *Task {
	return &Task{
		ID:       uuid.New().String(),
		Name:     name,
		Duration: duration,
	}
}

// Display writes the task line followed by each subtask in insertion order.
func (t *Task) Display(w io.Writer) {
	fmt.Fprintf(w, "Task: %s, Duration: %d days\n", t.Name, t.Duration)
	for _, s := range t.subtasks {
		s.Display(w)
	}
}

// AddSubtask appends s to the end of the subtask list.
func (t *Task) AddSubtask(s *Subtask) {
	t.subtasks = append(t.subtasks, s)
}

// Subtasks returns a copy of the subtasks in insertion order.
func (t *Task) Subtasks() []Subtask {
	out := make([]Subtask, len(t.subtasks))
	for i, s := range t.subtasks {
		out[i] = *s
	}
	return out
}

// SubtaskCount returns the number of owned subtasks.
func (t *Task) SubtaskCount() int {
	return len(t.subtasks)
}

// FindSubtask returns the first subtask named name.
func (t *Task) FindSubtask(name string) (*Subtask, bool) {
	for _, s := range t.subtasks {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// FindSubtaskByID returns the subtask with the given ID.
func (t *Task) FindSubtaskByID(id string) (*Subtask, bool) {
	for _, s := range t.subtasks {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Edit overwrites name and duration. The returned Rename lets the owner
// update anything keyed by the old name.
func (t *Task) Edit(name string, duration int) Rename {
	r := Rename{Old: t.Name, New: name}
	t.Name = name
	t.Duration = duration
	return r
}

// Remove discards every subtask and returns how many were dropped.
func (t *Task) Remove() int {
	n := len(t.subtasks)
	t.subtasks = nil
	return n
}

// RemoveSubtask removes the first subtask named name and returns it.
// The remaining subtasks keep their order.
func (t *Task) RemoveSubtask(name string) (*Subtask, error) {
	for i, s := range t.subtasks {
		if s.Name == name {
			t.subtasks = append(t.subtasks[:i:i], t.subtasks[i+1:]...)
			return s, nil
		}
	}
	return nil, fmt.Errorf("remove %q from %q: %w", name, t.Name, ErrSubtaskNotFound)
}

// Clone returns a deep copy of the task, including its subtasks.
func (t *Task) Clone() *Task {
	c := &Task{
		ID:       t.ID,
		Name:     t.Name,
		Duration: t.Duration,
		subtasks: make([]*Subtask, len(t.subtasks)),
	}
	for i, s := range t.subtasks {
		cp := *s
		c.subtasks[i] = &cp
	}
	return c
}
