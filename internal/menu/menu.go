// Package menu runs the numbered console menu over a registry.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fentz26/planner/internal/models"
	"github.com/fentz26/planner/internal/registry"
	log "github.com/sirupsen/logrus"
)

// Menu choices.
const (
	ChoiceAddTask = iota + 1
	ChoiceDisplayTasks
	ChoiceEditTask
	ChoiceEditSubtask
	ChoiceRemoveTask
	ChoiceRemoveSubtask
	ChoiceDisplayGraph
	ChoiceExit
)

const menuText = `Menu:
1. Add Task
2. Display Tasks
3. Edit Task
4. Edit Subtask
5. Remove Task
6. Remove Subtask
7. Display Graph
8. Exit
`

// Menu reads choices from in and writes results to out.
type Menu struct {
	reg *registry.Registry
	in  *tokenReader
	out io.Writer
	log log.FieldLogger
}

// New creates a menu bound to reg.
func New(reg *registry.Registry, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		reg: reg,
		in:  newTokenReader(in),
		out: out,
		log: log.WithField("component", "menu"),
	}
}

// SetLogger replaces the menu logger.
func (m *Menu) SetLogger(l log.FieldLogger) {
	m.log = l
}

// Run loops until the user exits or input ends. Only read failures are
// returned; lookups that miss and malformed numbers are reported and the
// loop continues. A malformed number also drops the rest of its line.
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, menuText)
		tok, err := m.prompt("Enter your choice: ")
		if err != nil {
			return m.finish(err)
		}

		choice, convErr := strconv.Atoi(tok)
		if convErr != nil {
			choice = 0
		}
		if choice == ChoiceExit {
			fmt.Fprintln(m.out, "Exiting the program.")
			return nil
		}

		err = m.dispatch(choice)
		switch {
		case err == nil:
		case errors.Is(err, models.ErrInvalidNumber):
			m.log.WithError(err).Debug("rejected input")
			m.in.discardLine()
			fmt.Fprintf(m.out, "Invalid input: %v\n", err)
		default:
			return m.finish(err)
		}
	}
}

func (m *Menu) dispatch(choice int) error {
	switch choice {
	case ChoiceAddTask:
		return m.addTask()
	case ChoiceDisplayTasks:
		m.displayTasks()
	case ChoiceEditTask:
		return m.editTask()
	case ChoiceEditSubtask:
		return m.editSubtask()
	case ChoiceRemoveTask:
		return m.removeTask()
	case ChoiceRemoveSubtask:
		return m.removeSubtask()
	case ChoiceDisplayGraph:
		m.displayGraph()
	default:
		fmt.Fprintln(m.out, "Invalid choice. Please try again.")
	}
	return nil
}

// finish maps end of input to a clean exit.
func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out)
		m.log.Debug("input closed")
		return nil
	}
	return err
}

// --- Actions ---

func (m *Menu) addTask() error {
	name, err := m.prompt("Enter task name: ")
	if err != nil {
		return err
	}
	duration, err := m.promptCount("duration", "Enter task duration (in days): ")
	if err != nil {
		return err
	}
	task := models.NewTask(name, duration)

	count, err := m.promptCount("subtask count", fmt.Sprintf("Enter the number of subtasks for task %s: ", name))
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		subName, err := m.prompt("Enter subtask name: ")
		if err != nil {
			return err
		}
		subDuration, err := m.promptCount("duration", "Enter subtask duration (in days): ")
		if err != nil {
			return err
		}
		task.AddSubtask(models.NewSubtask(subName, subDuration))
	}

	return m.reg.AddTask(task)
}

func (m *Menu) displayTasks() {
	if m.reg.Len() == 0 {
		fmt.Fprintln(m.out, "No tasks found.")
		return
	}
	m.reg.DisplayTasks(m.out)
}

func (m *Menu) editTask() error {
	name, err := m.prompt("Enter the name of the task to edit: ")
	if err != nil {
		return err
	}
	task, err := m.reg.FindTask(name)
	if err != nil {
		fmt.Fprintln(m.out, "Task not found.")
		return nil
	}

	newName, err := m.prompt("Enter the new name for the task: ")
	if err != nil {
		return err
	}
	newDuration, err := m.promptCount("duration", "Enter the new duration for the task (in days): ")
	if err != nil {
		return err
	}
	if _, err := m.reg.EditTask(task.ID, newName, newDuration); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Task edited successfully.")
	return nil
}

func (m *Menu) editSubtask() error {
	name, err := m.prompt("Enter the name of the task containing the subtask to edit: ")
	if err != nil {
		return err
	}
	task, err := m.reg.FindTask(name)
	if err != nil {
		fmt.Fprintln(m.out, "Task not found.")
		return nil
	}

	subName, err := m.prompt("Enter the name of the subtask to edit: ")
	if err != nil {
		return err
	}
	sub, ok := task.FindSubtask(subName)
	if !ok {
		fmt.Fprintln(m.out, "Subtask not found.")
		return nil
	}

	newName, err := m.prompt("Enter the new name for the subtask: ")
	if err != nil {
		return err
	}
	newDuration, err := m.promptCount("duration", "Enter the new duration for the subtask (in days): ")
	if err != nil {
		return err
	}
	if _, err := m.reg.EditSubtask(task.ID, sub.ID, newName, newDuration); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Subtask edited successfully.")
	return nil
}

func (m *Menu) removeTask() error {
	name, err := m.prompt("Enter the name of the task to remove: ")
	if err != nil {
		return err
	}
	if _, err := m.reg.RemoveTask(name); err != nil {
		fmt.Fprintln(m.out, "Task not found.")
		return nil
	}
	fmt.Fprintln(m.out, "Task removed successfully.")
	return nil
}

func (m *Menu) removeSubtask() error {
	name, err := m.prompt("Enter the name of the task containing the subtask to remove: ")
	if err != nil {
		return err
	}
	task, err := m.reg.FindTask(name)
	if err != nil {
		fmt.Fprintln(m.out, "Task not found.")
		return nil
	}

	subName, err := m.prompt("Enter the name of the subtask to remove: ")
	if err != nil {
		return err
	}
	if _, err := m.reg.RemoveSubtask(task.ID, subName); err != nil {
		if errors.Is(err, registry.ErrSubtaskNotFound) {
			fmt.Fprintln(m.out, "Subtask not found.")
			return nil
		}
		return err
	}
	fmt.Fprintln(m.out, "Subtask removed successfully.")
	return nil
}

func (m *Menu) displayGraph() {
	if len(m.reg.Graph()) == 0 {
		fmt.Fprintln(m.out, "No relations found.")
		return
	}
	m.reg.DisplayGraph(m.out)
}

// --- Prompts ---

func (m *Menu) prompt(msg string) (string, error) {
	fmt.Fprint(m.out, msg)
	return m.in.next()
}

func (m *Menu) promptCount(field, msg string) (int, error) {
	tok, err := m.prompt(msg)
	if err != nil {
		return 0, err
	}
	return models.ParseCount(field, tok)
}
