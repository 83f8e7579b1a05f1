package models

import (
	"bytes"
	"errors"
	"testing"
)

func TestTaskDisplay(t *testing.T) {
	task := NewTask("Build", 5)
	task.AddSubtask(NewSubtask("Design", 2))
	task.AddSubtask(NewSubtask("Code", 3))

	var buf bytes.Buffer
	task.Display(&buf)

	want := "Task: Build, Duration: 5 days\n" +
		"    Subtask: Design (2 days)\n" +
		"    Subtask: Code (3 days)\n"
	if buf.String() != want {
		t.Errorf("Unexpected display output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestNewTaskAssignsIDs(t *testing.T) {
	a := NewTask("Same", 1)
	b := NewTask("Same", 1)
	if a.ID == "" || b.ID == "" {
		t.Fatal("Task ID should not be empty")
	}
	if a.ID == b.ID {
		t.Error("Tasks with the same name should get distinct IDs")
	}

	s := NewSubtask("x", 1)
	if s.ID == "" {
		t.Error("Subtask ID should not be empty")
	}
}

func TestFindSubtask(t *testing.T) {
	task := NewTask("Build", 5)
	names := []string{"Design", "Code", "Test", "Ship"}
	for i, n := range names {
		task.AddSubtask(NewSubtask(n, i+1))
	}

	for i, n := range names {
		s, ok := task.FindSubtask(n)
		if !ok {
			t.Fatalf("FindSubtask(%q) not found", n)
		}
		if s.Duration != i+1 {
			t.Errorf("FindSubtask(%q) duration = %d, want %d", n, s.Duration, i+1)
		}
	}

	if _, ok := task.FindSubtask("Missing"); ok {
		t.Error("Expected Missing to be not found")
	}
}

func TestFindSubtaskFirstMatchWins(t *testing.T) {
	task := NewTask("Build", 5)
	first := NewSubtask("Dup", 1)
	task.AddSubtask(first)
	task.AddSubtask(NewSubtask("Dup", 2))

	s, ok := task.FindSubtask("Dup")
	if !ok {
		t.Fatal("Expected Dup to be found")
	}
	if s.ID != first.ID {
		t.Error("Expected the first inserted duplicate")
	}

	byID, ok := task.FindSubtaskByID(first.ID)
	if !ok || byID != first {
		t.Error("FindSubtaskByID did not return the first subtask")
	}
}

func TestRemoveSubtask(t *testing.T) {
	task := NewTask("Build", 5)
	task.AddSubtask(NewSubtask("A", 1))
	task.AddSubtask(NewSubtask("B", 2))
	task.AddSubtask(NewSubtask("C", 3))

	removed, err := task.RemoveSubtask("B")
	if err != nil {
		t.Fatalf("RemoveSubtask failed: %v", err)
	}
	if removed.Name != "B" {
		t.Errorf("Removed %q, want B", removed.Name)
	}
	if _, ok := task.FindSubtask("B"); ok {
		t.Error("B should be gone")
	}

	got := task.Subtasks()
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("Unexpected remaining subtasks: %+v", got)
	}
}

func TestRemoveSubtaskNotFound(t *testing.T) {
	task := NewTask("Build", 5)
	task.AddSubtask(NewSubtask("A", 1))
	task.AddSubtask(NewSubtask("B", 2))

	_, err := task.RemoveSubtask("Nope")
	if !errors.Is(err, ErrSubtaskNotFound) {
		t.Fatalf("Expected ErrSubtaskNotFound, got %v", err)
	}

	got := task.Subtasks()
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "B" {
		t.Errorf("Subtasks changed after failed remove: %+v", got)
	}
}

func TestEditReturnsRename(t *testing.T) {
	task := NewTask("Old", 1)
	r := task.Edit("New", 4)
	if r.Old != "Old" || r.New != "New" || !r.Changed() {
		t.Errorf("Unexpected rename: %+v", r)
	}
	if task.Name != "New" || task.Duration != 4 {
		t.Errorf("Edit not applied: %s/%d", task.Name, task.Duration)
	}

	s := NewSubtask("s", 1)
	r = s.Edit("s", 9)
	if r.Changed() {
		t.Error("Same name should not count as a rename")
	}
	if s.Duration != 9 {
		t.Errorf("Expected duration 9, got %d", s.Duration)
	}
}

func TestRemoveDropsSubtasks(t *testing.T) {
	task := NewTask("Build", 5)
	task.AddSubtask(NewSubtask("A", 1))
	task.AddSubtask(NewSubtask("B", 2))

	if n := task.Remove(); n != 2 {
		t.Errorf("Remove dropped %d, want 2", n)
	}
	if task.SubtaskCount() != 0 {
		t.Errorf("Expected no subtasks, got %d", task.SubtaskCount())
	}
}

func TestCloneIsDeep(t *testing.T) {
	task := NewTask("Build", 5)
	task.AddSubtask(NewSubtask("A", 1))

	c := task.Clone()
	sub, _ := c.FindSubtask("A")
	sub.Edit("Changed", 7)
	c.Edit("Other", 1)

	if _, ok := task.FindSubtask("A"); !ok {
		t.Error("Editing the clone changed the original subtask")
	}
	if task.Name != "Build" {
		t.Error("Editing the clone changed the original task")
	}
	if c.ID != task.ID {
		t.Error("Clone should keep the ID")
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		tok     string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"12", 12, false},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCount("duration", tt.tok)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidNumber) {
				t.Errorf("ParseCount(%q) expected ErrInvalidNumber, got %v", tt.tok, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseCount(%q) = %d, %v; want %d", tt.tok, got, err, tt.want)
		}
	}
}
