// Package history implements a linear undo/redo log.
package history

import "slices"

// Log is a linear undo history. Events in applied are in effect, most
// recent last. Events in undone are available to redo.
//
// Adding a new event discards the redo history, so the log never branches.
// Log is not safe for concurrent use; callers serialize access.
type Log[E any] struct {
	applied []E
	// undone is a stack: the nearest redo is the last element.
	undone []E
}

// New creates an empty log.
func New[E any]() *Log[E] {
	return &Log[E]{}
}

// Restore rebuilds a log from its applied events (oldest first) and undone
// events (nearest redo first), as returned by Applied and Undone.
func Restore[E any](applied, undone []E) *Log[E] {
	l := &Log[E]{applied: slices.Clone(applied), undone: slices.Clone(undone)}
	slices.Reverse(l.undone)
	return l
}

// Add appends e to the applied events and clears the redo history.
func (l *Log[E]) Add(e E) {
	l.applied = append(l.applied, e)
	clear(l.undone)
	l.undone = l.undone[:0]
}

// Back moves the most recently applied event to the front of the redo
// history. It returns false, and does nothing, when no event is applied.
func (l *Log[E]) Back() bool {
	n := len(l.applied)
	if n == 0 {
		return false
	}
	e := l.applied[n-1]
	var zero E
	l.applied[n-1] = zero
	l.applied = l.applied[:n-1]
	l.undone = append(l.undone, e)
	return true
}

// Forward moves the nearest undone event back to the end of the applied
// events. It returns false, and does nothing, when nothing is undone.
func (l *Log[E]) Forward() bool {
	n := len(l.undone)
	if n == 0 {
		return false
	}
	e := l.undone[n-1]
	var zero E
	l.undone[n-1] = zero
	l.undone = l.undone[:n-1]
	l.applied = append(l.applied, e)
	return true
}

// Applied returns the events in effect, oldest first. It returns nil when
// no event is applied.
func (l *Log[E]) Applied() []E {
	if len(l.applied) == 0 {
		return nil
	}
	return slices.Clone(l.applied)
}

// Undone returns the events available to redo, nearest first. It returns
// nil when nothing is undone.
func (l *Log[E]) Undone() []E {
	if len(l.undone) == 0 {
		return nil
	}
	out := slices.Clone(l.undone)
	slices.Reverse(out)
	return out
}

// Reset empties the log.
func (l *Log[E]) Reset() {
	l.applied = nil
	l.undone = nil
}
