// Package session holds a task collection under edit: the base snapshot,
// the undo history of events over it, and the validation applied before an
// event enters that history.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskfold/taskfold/internal/config"
	"github.com/taskfold/taskfold/internal/events"
	"github.com/taskfold/taskfold/internal/history"
	"github.com/taskfold/taskfold/internal/models"
)

var (
	// ErrTaskNotFound is returned when an event or lookup names a task that
	// is not in the present state.
	ErrTaskNotFound = errors.New("task not found")
	// ErrDuplicateTask is returned when adding a task whose id is taken.
	ErrDuplicateTask = errors.New("task already exists")
	// ErrAmbiguousID is returned when an id prefix matches several tasks.
	ErrAmbiguousID = errors.New("ambiguous task id")
	// ErrParentCycle is returned when a parent link would make a task its
	// own ancestor.
	ErrParentCycle = errors.New("parent link would create a cycle")
)

var now = func() time.Time { return time.Now().UTC() }

// Session is a base snapshot plus the events applied to it.
// It is safe for concurrent use.
type Session struct {
	mu   sync.Mutex
	base []models.Task
	log  *history.Log[events.Event]
}

// New creates a session over base with an empty history.
func New(base []models.Task) *Session {
	return &Session{
		base: base,
		log:  history.New[events.Event](),
	}
}

// Load reads the snapshot and journal in dir into a session.
func Load(dir string) (*Session, error) {
	base, err := config.LoadSnapshot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	applied, undone, err := config.LoadJournal(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}
	return &Session{
		base: base,
		log:  history.Restore(applied, undone),
	}, nil
}

// Save writes the session's journal to dir. The snapshot is only written
// by Commit.
func (s *Session) Save(dir string) error {
	s.mu.Lock()
	applied, undone := s.log.Applied(), s.log.Undone()
	s.mu.Unlock()

	if err := config.SaveJournal(dir, applied, undone); err != nil {
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}

// Commit folds the present state into dir's snapshot and empties the
// history.
func (s *Session) Commit(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	present := events.Replay(s.base, s.log.Applied())
	if err := config.SaveSnapshot(dir, present); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	if err := config.DeleteJournal(dir); err != nil {
		return fmt.Errorf("failed to clear journal: %w", err)
	}
	s.base = present
	s.log.Reset()
	return nil
}

// PresentState returns the base with every applied event replayed over it.
func (s *Session) PresentState() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.present()
}

func (s *Session) present() []models.Task {
	return events.Replay(s.base, s.log.Applied())
}

// NewEvent validates e against the present state and appends it to the
// history, discarding anything that was undone. An unstamped event is
// stamped with the current time. The stamped event is returned.
func (s *Session) NewEvent(e events.Event) (events.Event, error) {
	if e == nil {
		return nil, fmt.Errorf("nil event")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validate(s.present(), e); err != nil {
		return nil, err
	}
	if e.Time().IsZero() {
		e = events.Stamped(e, now())
	}
	s.log.Add(e)
	return e, nil
}

// Undo reverts the most recent event and returns it. It returns false when
// there is nothing to undo.
func (s *Session) Undo() (events.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	applied := s.log.Applied()
	if !s.log.Back() {
		return nil, false
	}
	return applied[len(applied)-1], true
}

// Redo reapplies the most recently undone event and returns it. It returns
// false when there is nothing to redo.
func (s *Session) Redo() (events.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	undone := s.log.Undone()
	if !s.log.Forward() {
		return nil, false
	}
	return undone[0], true
}

// Base returns the snapshot the history applies to.
func (s *Session) Base() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.base
}

// Applied returns the events in effect, oldest first.
func (s *Session) Applied() []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Applied()
}

// Undone returns the events available to redo, nearest first.
func (s *Session) Undone() []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Undone()
}

// Task returns the task with the given id in the present state.
func (s *Session) Task(id uuid.UUID) (models.Task, error) {
	tasks := s.PresentState()
	i := models.Find(tasks, id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return tasks[i], nil
}

// Resolve finds the task whose id is, or starts with, ref.
func (s *Session) Resolve(ref string) (models.Task, error) {
	return Resolve(s.PresentState(), ref)
}

// Resolve finds the task in tasks whose id is, or starts with, ref.
// Matching is case-insensitive.
func Resolve(tasks []models.Task, ref string) (models.Task, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return models.Task{}, fmt.Errorf("%w: empty id", ErrTaskNotFound)
	}
	if id, err := uuid.Parse(ref); err == nil {
		if i := models.Find(tasks, id); i >= 0 {
			return tasks[i], nil
		}
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref)
	}

	var (
		found models.Task
		n     int
	)
	for _, t := range tasks {
		if strings.HasPrefix(t.ID.String(), ref) {
			found = t
			n++
		}
	}
	switch n {
	case 0:
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref)
	case 1:
		return found, nil
	}
	return models.Task{}, fmt.Errorf("%w: %s matches %d tasks", ErrAmbiguousID, ref, n)
}

func validate(tasks []models.Task, e events.Event) error {
	switch e := e.(type) {
	case events.AddTask:
		if models.Find(tasks, e.Task.ID) >= 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateTask, e.Task.ID)
		}
		if e.Task.ParentTask != nil {
			return validateParent(tasks, e.Task.ID, *e.Task.ParentTask)
		}
		return nil
	case events.SetParentTask:
		if models.Find(tasks, e.ID) < 0 {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, e.ID)
		}
		if e.Parent != nil {
			return validateParent(tasks, e.ID, *e.Parent)
		}
		return nil
	}
	if models.Find(tasks, e.TaskID()) < 0 {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, e.TaskID())
	}
	return nil
}

// validateParent checks that parent exists and is not id or one of its
// descendants. Dangling links already in the collection end the walk.
func validateParent(tasks []models.Task, id, parent uuid.UUID) error {
	if models.Find(tasks, parent) < 0 {
		return fmt.Errorf("%w: parent %s", ErrTaskNotFound, parent)
	}
	seen := map[uuid.UUID]bool{}
	for cur := parent; ; {
		if cur == id {
			return fmt.Errorf("%w: %s", ErrParentCycle, id)
		}
		if seen[cur] {
			return nil
		}
		seen[cur] = true
		i := models.Find(tasks, cur)
		if i < 0 || tasks[i].ParentTask == nil {
			return nil
		}
		cur = *tasks[i].ParentTask
	}
}
