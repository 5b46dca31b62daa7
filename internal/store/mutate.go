package store

import (
	"context"
	"strings"

	"petal/internal/task"
	"petal/internal/xp"
)

// Draft is the raw input for a new task, as it comes off the form or the
// command line. Empty fields take defaults.
type Draft struct {
	Text     string
	Priority string
	Date     string
	Time     string
	Color    string
	Category string
}

// Add creates a task from the draft and prepends it to the collection
// (newest-first is a user-visible contract). A draft whose trimmed text
// is empty is silently ignored: no error, collection unchanged.
func (s *Store) Add(ctx context.Context, d Draft) (task.Task, bool) {
	text := strings.TrimSpace(d.Text)
	if text == "" {
		return task.Task{}, false
	}

	t := task.Task{
		ID:       s.nextID(),
		Text:     text,
		Done:     false,
		Priority: task.ParsePriority(d.Priority),
		Date:     strings.TrimSpace(d.Date),
		Color:    d.Color,
		Category: d.Category,
	}
	// Invalid clock input never enters a task.
	if n := task.NormalizeTime(d.Time); n != "" {
		t.Time = n
	}
	if t.Color == "" {
		t.Color = s.accentColor
	}
	if t.Category == "" {
		t.Category = task.DefaultCategory
	}

	s.tasks = append([]task.Task{t}, s.tasks...)
	s.saveTasks(ctx)
	return t, true
}

// ToggleDone flips completion on the task with the given id, awarding the
// fixed XP amount on completion and deducting it (floored at zero) when a
// completion is undone. Unknown ids are a no-op.
func (s *Store) ToggleDone(ctx context.Context, id int64) (task.Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Done = !s.tasks[i].Done
		if s.tasks[i].Done {
			s.xp = xp.Award(s.xp, xp.PerTask)
		} else {
			s.xp = xp.Deduct(s.xp, xp.PerTask)
		}
		s.saveTasks(ctx)
		s.saveXP(ctx)
		return s.tasks[i], true
	}
	return task.Task{}, false
}

// Remove deletes the task with the given id, deducting XP if it was done.
// The relative order of the remaining tasks is unchanged.
func (s *Store) Remove(ctx context.Context, id int64) (task.Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		removed := s.tasks[i]
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		if removed.Done {
			s.xp = xp.Deduct(s.xp, xp.PerTask)
			s.saveXP(ctx)
		}
		s.saveTasks(ctx)
		return removed, true
	}
	return task.Task{}, false
}

// ClearCompleted removes every done task and deducts the per-task award
// for each, floored at zero. Returns the number of tasks removed.
func (s *Store) ClearCompleted(ctx context.Context) int {
	kept := s.tasks[:0:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Done {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		return 0
	}
	s.tasks = kept
	s.xp = xp.Deduct(s.xp, removed*xp.PerTask)
	s.saveTasks(ctx)
	s.saveXP(ctx)
	return removed
}
