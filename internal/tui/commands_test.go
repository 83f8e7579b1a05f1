package tui

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fentz26/planner/internal/models"
	"github.com/fentz26/planner/internal/registry"
	log "github.com/sirupsen/logrus"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	l := log.New()
	l.SetOutput(io.Discard)
	r.SetLogger(l)
	return r
}

func mustExec(t *testing.T, reg *registry.Registry, input string) string {
	t.Helper()
	msg, err := Execute(reg, input)
	if err != nil {
		t.Fatalf("Execute(%q) failed: %v", input, err)
	}
	return msg
}

func TestExecuteAddAndSub(t *testing.T) {
	reg := newTestRegistry(t)
	mustExec(t, reg, "add Build 5")
	mustExec(t, reg, "sub Build Design 2")
	mustExec(t, reg, "sub Build Code 3")

	task, err := reg.FindTask("Build")
	if err != nil {
		t.Fatalf("FindTask failed: %v", err)
	}
	if task.Duration != 5 || task.SubtaskCount() != 2 {
		t.Errorf("Unexpected task: %d days, %d subtasks", task.Duration, task.SubtaskCount())
	}
	graph := reg.Graph()
	if len(graph) != 1 || strings.Join(graph[0].Destinations, ",") != "Design,Code" {
		t.Errorf("Unexpected graph: %v", graph)
	}
}

func TestExecuteEditAndRemove(t *testing.T) {
	reg := newTestRegistry(t)
	mustExec(t, reg, "add Build 5")
	mustExec(t, reg, "sub Build Design 2")
	mustExec(t, reg, "edit Build Make 6")
	mustExec(t, reg, "editsub Make Design Plan 1")

	task, err := reg.FindTask("Make")
	if err != nil {
		t.Fatalf("FindTask failed: %v", err)
	}
	if _, ok := task.FindSubtask("Plan"); !ok {
		t.Error("Expected subtask Plan")
	}

	mustExec(t, reg, "rmsub Make Plan")
	task, _ = reg.FindTask("Make")
	if task.SubtaskCount() != 0 {
		t.Errorf("Expected no subtasks, got %d", task.SubtaskCount())
	}

	mustExec(t, reg, "rm Make")
	if reg.Len() != 0 {
		t.Errorf("Expected empty registry, got %d", reg.Len())
	}
	if err := reg.Verify(); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}

func TestExecuteErrors(t *testing.T) {
	reg := newTestRegistry(t)
	mustExec(t, reg, "add Build 5")

	tests := []struct {
		input string
		want  error
	}{
		{"add Build", ErrUsage},
		{"add Build five", models.ErrInvalidNumber},
		{"sub Nope x 1", registry.ErrTaskNotFound},
		{"editsub Build Nope x 1", registry.ErrSubtaskNotFound},
		{"rm Nope", registry.ErrTaskNotFound},
		{"rmsub Build Nope", registry.ErrSubtaskNotFound},
		{"fly", ErrUnknownCommand},
	}
	for _, tt := range tests {
		_, err := Execute(reg, tt.input)
		if !errors.Is(err, tt.want) {
			t.Errorf("Execute(%q) = %v, want %v", tt.input, err, tt.want)
		}
	}
	if reg.Len() != 1 {
		t.Errorf("Failed commands should not add tasks, got %d", reg.Len())
	}
}

func TestExecuteBlankAndHelp(t *testing.T) {
	reg := newTestRegistry(t)
	if msg, err := Execute(reg, "   "); err != nil || msg != "" {
		t.Errorf("Blank input should be ignored, got %q, %v", msg, err)
	}
	if msg := mustExec(t, reg, "help"); !strings.Contains(msg, "rmsub") {
		t.Errorf("Help should list commands, got %q", msg)
	}
}
