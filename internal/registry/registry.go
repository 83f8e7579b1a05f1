// Package registry owns every task and the relation index derived from them.
package registry

import (
	"fmt"
	"io"

	"github.com/fentz26/planner/internal/models"
	log "github.com/sirupsen/logrus"
)

// Registry holds tasks in insertion order. Lookups hand out copies, so the
// only way to change a task is through the Registry, which rebuilds the
// relation index after every change.
type Registry struct {
	tasks []*models.Task
	index *RelationIndex
	log   log.FieldLogger
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		index: NewRelationIndex(),
		log:   log.WithField("component", "registry"),
	}
}

// SetLogger replaces the registry logger.
func (r *Registry) SetLogger(l log.FieldLogger) {
	r.log = l
}

// --- Task Operations ---

// AddTask appends a copy of t, subtasks included.
func (r *Registry) AddTask(t *models.Task) error {
	if t == nil {
		return ErrNilTask
	}
	r.tasks = append(r.tasks, t.Clone())
	r.reindex()

	r.log.WithFields(log.Fields{
		"task_id":  t.ID,
		"task":     t.Name,
		"subtasks": t.SubtaskCount(),
	}).Debug("task added")
	return nil
}

// FindTask returns a copy of the first task named name.
func (r *Registry) FindTask(name string) (*models.Task, error) {
	t, _ := r.find(name)
	if t == nil {
		return nil, fmt.Errorf("find %q: %w", name, ErrTaskNotFound)
	}
	return t.Clone(), nil
}

// FindTaskByID returns a copy of the task with the given ID.
func (r *Registry) FindTaskByID(id string) (*models.Task, error) {
	t, _ := r.findByID(id)
	if t == nil {
		return nil, fmt.Errorf("find id %s: %w", id, ErrTaskNotFound)
	}
	return t.Clone(), nil
}

// RemoveTask removes every task named name together with its subtasks and
// returns what was removed.
func (r *Registry) RemoveTask(name string) ([]*models.Task, error) {
	var removed []*models.Task
	kept := r.tasks[:0]
	for _, t := range r.tasks {
		if t.Name == name {
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	if len(removed) == 0 {
		return nil, fmt.Errorf("remove %q: %w", name, ErrTaskNotFound)
	}
	clear(r.tasks[len(kept):])
	r.tasks = kept

	out := make([]*models.Task, len(removed))
	for i, t := range removed {
		out[i] = t.Clone()
		dropped := t.Remove()
		r.log.WithFields(log.Fields{
			"task_id":  t.ID,
			"task":     t.Name,
			"subtasks": dropped,
		}).Debug("task removed")
	}
	r.reindex()
	return out, nil
}

// RemoveTaskByID removes a single task by ID.
func (r *Registry) RemoveTaskByID(id string) (*models.Task, error) {
	t, i := r.findByID(id)
	if t == nil {
		return nil, fmt.Errorf("remove id %s: %w", id, ErrTaskNotFound)
	}
	last := len(r.tasks) - 1
	copy(r.tasks[i:], r.tasks[i+1:])
	r.tasks[last] = nil
	r.tasks = r.tasks[:last]
	out := t.Clone()
	dropped := t.Remove()
	r.reindex()

	r.log.WithFields(log.Fields{
		"task_id":  t.ID,
		"task":     t.Name,
		"subtasks": dropped,
	}).Debug("task removed")
	return out, nil
}

// EditTask renames a task and sets its duration. Index entries follow the
// new name.
func (r *Registry) EditTask(id, name string, duration int) (models.Rename, error) {
	t, _ := r.findByID(id)
	if t == nil {
		return models.Rename{}, fmt.Errorf("edit id %s: %w", id, ErrTaskNotFound)
	}
	rn := t.Edit(name, duration)
	if rn.Changed() {
		r.reindex()
	}

	r.log.WithFields(log.Fields{
		"task_id":  id,
		"old_name": rn.Old,
		"task":     rn.New,
		"duration": duration,
	}).Debug("task edited")
	return rn, nil
}

// Tasks returns copies of every task in insertion order.
func (r *Registry) Tasks() []*models.Task {
	out := make([]*models.Task, len(r.tasks))
	for i, t := range r.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Len returns the number of tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}

// --- Subtask Operations ---

// AddSubtask appends s to the task with the given ID.
func (r *Registry) AddSubtask(taskID string, s *models.Subtask) error {
	if s == nil {
		return ErrNilSubtask
	}
	t, _ := r.findByID(taskID)
	if t == nil {
		return fmt.Errorf("add subtask to id %s: %w", taskID, ErrTaskNotFound)
	}
	cp := *s
	t.AddSubtask(&cp)
	r.reindex()

	r.log.WithFields(log.Fields{
		"task_id":    taskID,
		"task":       t.Name,
		"subtask_id": s.ID,
		"subtask":    s.Name,
	}).Debug("subtask added")
	return nil
}

// EditSubtask renames a subtask and sets its duration.
func (r *Registry) EditSubtask(taskID, subtaskID, name string, duration int) (models.Rename, error) {
	t, _ := r.findByID(taskID)
	if t == nil {
		return models.Rename{}, fmt.Errorf("edit subtask of id %s: %w", taskID, ErrTaskNotFound)
	}
	s, ok := t.FindSubtaskByID(subtaskID)
	if !ok {
		return models.Rename{}, fmt.Errorf("edit subtask id %s of %q: %w", subtaskID, t.Name, ErrSubtaskNotFound)
	}
	rn := s.Edit(name, duration)
	if rn.Changed() {
		r.reindex()
	}

	r.log.WithFields(log.Fields{
		"task_id":    taskID,
		"subtask_id": subtaskID,
		"old_name":   rn.Old,
		"subtask":    rn.New,
		"duration":   duration,
	}).Debug("subtask edited")
	return rn, nil
}

// RemoveSubtask removes the first subtask named name from the task with the
// given ID. Sibling order is preserved.
func (r *Registry) RemoveSubtask(taskID, name string) (*models.Subtask, error) {
	t, _ := r.findByID(taskID)
	if t == nil {
		return nil, fmt.Errorf("remove subtask from id %s: %w", taskID, ErrTaskNotFound)
	}
	s, err := t.RemoveSubtask(name)
	if err != nil {
		return nil, err
	}
	r.reindex()

	r.log.WithFields(log.Fields{
		"task_id":    taskID,
		"task":       t.Name,
		"subtask_id": s.ID,
		"subtask":    s.Name,
	}).Debug("subtask removed")
	return s, nil
}

// --- Display ---

// DisplayTasks writes every task in insertion order.
func (r *Registry) DisplayTasks(w io.Writer) {
	for _, t := range r.tasks {
		t.Display(w)
	}
}

// DisplayGraph writes the relation index, one source per line, in the
// order tasks were added.
func (r *Registry) DisplayGraph(w io.Writer) {
	r.index.Display(w)
}

// Graph returns a snapshot of the relation index.
func (r *Registry) Graph() []Relation {
	return r.index.Relations()
}

// Verify checks the relation index against the task containers. reindex
// replaces the index wholesale, so Verify only fails if the index is ever
// edited in place.
func (r *Registry) Verify() error {
	if d := r.index.diff(r.derive()); d != "" {
		return fmt.Errorf("%w: %s", ErrIndexDrift, d)
	}
	return nil
}

// --- Helpers ---

func (r *Registry) find(name string) (*models.Task, int) {
	for i, t := range r.tasks {
		if t.Name == name {
			return t, i
		}
	}
	return nil, -1
}

func (r *Registry) findByID(id string) (*models.Task, int) {
	for i, t := range r.tasks {
		if t.ID == id {
			return t, i
		}
	}
	return nil, -1
}

// derive builds the index the containers imply: one edge per owned subtask,
// tasks in insertion order, subtasks in insertion order.
func (r *Registry) derive() *RelationIndex {
	x := NewRelationIndex()
	for _, t := range r.tasks {
		for _, s := range t.Subtasks() {
			x.AddEdge(t.Name, s.Name)
		}
	}
	return x
}

func (r *Registry) reindex() {
	r.index = r.derive()
	r.log.WithField("sources", r.index.Len()).Trace("relation index rebuilt")
}
