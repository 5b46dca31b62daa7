// Package store owns the in-memory task collection and experience ledger.
//
// A Store is constructed once per application instance, loads the whole
// persisted state up front, and writes through after every mutation. Saves
// are fire-and-forget: a failing write is logged at debug level and the
// in-memory state stays authoritative for the session. The store never
// surfaces a storage error to the user.
package store

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"petal/internal/storage"
	"petal/internal/task"
)

type Store struct {
	slot   *storage.SlotRepo
	logger *log.Logger

	tasks []task.Task
	xp    int
	dark  bool

	// view state
	query          string
	onlyUnfinished bool

	lastID      int64
	accentColor string
	ambientDark func() bool
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithAccentColor sets the default color for new tasks.
func WithAccentColor(c string) Option {
	return func(s *Store) {
		if c != "" {
			s.accentColor = c
		}
	}
}

// WithAmbientDark supplies the theme fallback used when no theme has been
// persisted yet (e.g. terminal background detection).
func WithAmbientDark(fn func() bool) Option {
	return func(s *Store) {
		if fn != nil {
			s.ambientDark = fn
		}
	}
}

func New(slot *storage.SlotRepo, logger *log.Logger, opts ...Option) *Store {
	s := &Store{
		slot:        slot,
		logger:      logger,
		accentColor: task.DefaultColor,
		ambientDark: func() bool { return false },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persistence slot into memory. Missing data yields an
// empty collection, the ambient theme and zero XP. Malformed task data
// resets the collection to empty rather than failing; only the storage
// handle itself being unusable is reported.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.slot.Get(ctx, storage.KeyTodos)
	if err != nil {
		return err
	}
	s.tasks = nil
	if ok && raw != "" {
		var records []task.Record
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			s.logger.Debug("discarding malformed task data", "err", err)
		} else {
			s.tasks = task.NormalizeAll(records, s.nextID)
		}
	}
	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}

	dark, ok, err := s.slot.Get(ctx, storage.KeyDarkMode)
	if err != nil {
		return err
	}
	if ok {
		s.dark = dark == "1"
	} else {
		s.dark = s.ambientDark()
	}

	rawXP, ok, err := s.slot.Get(ctx, storage.KeyXP)
	if err != nil {
		return err
	}
	s.xp = 0
	if ok {
		if n, err := strconv.Atoi(rawXP); err == nil && n > 0 {
			s.xp = n
		}
	}
	return nil
}

// nextID issues task ids: milliseconds since epoch, bumped past the last
// issued id so rapid successive creations never collide.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) saveTasks(ctx context.Context) {
	data, err := json.Marshal(s.tasks)
	if err != nil {
		s.logger.Debug("marshal tasks", "err", err)
		return
	}
	if err := s.slot.Set(ctx, storage.KeyTodos, string(data)); err != nil {
		s.logger.Debug("save tasks", "err", err)
	}
}

func (s *Store) saveXP(ctx context.Context) {
	if err := s.slot.Set(ctx, storage.KeyXP, strconv.Itoa(s.xp)); err != nil {
		s.logger.Debug("save xp", "err", err)
	}
}

func (s *Store) saveTheme(ctx context.Context) {
	v := "0"
	if s.dark {
		v = "1"
	}
	if err := s.slot.Set(ctx, storage.KeyDarkMode, v); err != nil {
		s.logger.Debug("save theme", "err", err)
	}
}
