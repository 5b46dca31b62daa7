package store

import (
	"context"

	"petal/internal/task"
	"petal/internal/xp"
)

// Tasks returns a copy of the full collection, newest first.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// View runs the derivation pipeline: filter by the current query and
// unfinished toggle, then group by category. Recomputed on every call.
func (s *Store) View() task.Grouped {
	return task.Group(task.Filter(s.tasks, s.query, s.onlyUnfinished))
}

func (s *Store) SetFilterQuery(q string)      { s.query = q }
func (s *Store) FilterQuery() string          { return s.query }
func (s *Store) SetShowOnlyUnfinished(v bool) { s.onlyUnfinished = v }
func (s *Store) ShowOnlyUnfinished() bool     { return s.onlyUnfinished }

// SetTheme persists the dark-mode flag.
func (s *Store) SetTheme(ctx context.Context, dark bool) {
	s.dark = dark
	s.saveTheme(ctx)
}

// ToggleTheme flips and persists the dark-mode flag.
func (s *Store) ToggleTheme(ctx context.Context) bool {
	s.dark = !s.dark
	s.saveTheme(ctx)
	return s.dark
}

func (s *Store) Dark() bool { return s.dark }

// XP returns the ledger counter.
func (s *Store) XP() int { return s.xp }

// Level derives the current level from the ledger.
func (s *Store) Level() int { return xp.Level(s.xp) }

// Progress derives the percentage toward the next level.
func (s *Store) Progress() int { return xp.Progress(s.xp) }
