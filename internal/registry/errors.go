package registry

import (
	"errors"

	"github.com/fentz26/planner/internal/models"
)

// Sentinel errors for registry operations.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubtaskNotFound = models.ErrSubtaskNotFound
	ErrIndexDrift      = errors.New("relation index out of sync")
	ErrNilTask         = errors.New("nil task")
	ErrNilSubtask      = errors.New("nil subtask")
)
