package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fentz26/planner/internal/models"
	"github.com/fentz26/planner/internal/registry"
)

// ErrUsage is returned when a command has the wrong number of arguments.
var ErrUsage = errors.New("usage")

// ErrUnknownCommand is returned for commands the bar does not understand.
var ErrUnknownCommand = errors.New("unknown command")

const commandHelp = "add <task> <days> | sub <task> <name> <days> | edit <task> <name> <days> | " +
	"editsub <task> <sub> <name> <days> | rm <task> | rmsub <task> <sub>"

// Execute runs one command-bar line against reg and returns a status message.
func Execute(reg *registry.Registry, input string) (string, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", nil
	}
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help":
		return commandHelp, nil

	case "add":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: add <task> <days>", ErrUsage)
		}
		days, err := models.ParseCount("duration", args[1])
		if err != nil {
			return "", err
		}
		if err := reg.AddTask(models.NewTask(args[0], days)); err != nil {
			return "", err
		}
		return fmt.Sprintf("Added task %s", args[0]), nil

	case "sub":
		if len(args) != 3 {
			return "", fmt.Errorf("%w: sub <task> <name> <days>", ErrUsage)
		}
		days, err := models.ParseCount("duration", args[2])
		if err != nil {
			return "", err
		}
		task, err := reg.FindTask(args[0])
		if err != nil {
			return "", err
		}
		if err := reg.AddSubtask(task.ID, models.NewSubtask(args[1], days)); err != nil {
			return "", err
		}
		return fmt.Sprintf("Added subtask %s to %s", args[1], args[0]), nil

	case "edit":
		if len(args) != 3 {
			return "", fmt.Errorf("%w: edit <task> <name> <days>", ErrUsage)
		}
		days, err := models.ParseCount("duration", args[2])
		if err != nil {
			return "", err
		}
		task, err := reg.FindTask(args[0])
		if err != nil {
			return "", err
		}
		if _, err := reg.EditTask(task.ID, args[1], days); err != nil {
			return "", err
		}
		return "Task edited successfully.", nil

	case "editsub":
		if len(args) != 4 {
			return "", fmt.Errorf("%w: editsub <task> <sub> <name> <days>", ErrUsage)
		}
		days, err := models.ParseCount("duration", args[3])
		if err != nil {
			return "", err
		}
		task, err := reg.FindTask(args[0])
		if err != nil {
			return "", err
		}
		sub, ok := task.FindSubtask(args[1])
		if !ok {
			return "", fmt.Errorf("edit %q in %q: %w", args[1], args[0], registry.ErrSubtaskNotFound)
		}
		if _, err := reg.EditSubtask(task.ID, sub.ID, args[2], days); err != nil {
			return "", err
		}
		return "Subtask edited successfully.", nil

	case "rm":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: rm <task>", ErrUsage)
		}
		if _, err := reg.RemoveTask(args[0]); err != nil {
			return "", err
		}
		return "Task removed successfully.", nil

	case "rmsub":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: rmsub <task> <sub>", ErrUsage)
		}
		task, err := reg.FindTask(args[0])
		if err != nil {
			return "", err
		}
		if _, err := reg.RemoveSubtask(task.ID, args[1]); err != nil {
			return "", err
		}
		return "Subtask removed successfully.", nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}
