package root

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"petal/internal/config"
	"petal/internal/logging"
	"petal/internal/storage"
	"petal/internal/store"
	"petal/internal/ui"
)

// openStore builds one fully-loaded Store per command invocation:
// config → logger → sqlite slot → store.Load. The cleanup closes the DB.
func openStore(ctx context.Context) (*store.Store, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		opts.Level = log.DebugLevel
	}
	logger := logging.New(os.Stderr, opts)

	path := flagDB
	if path == "" && os.Getenv("PETAL_DB") == "" {
		path = cfg.DBPath
	}
	path, err = storage.ResolveDBPath(path)
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	st := store.New(storage.NewSlotRepo(db), logger,
		store.WithAccentColor(cfg.AccentColor),
		store.WithAmbientDark(ui.HasDarkBackground),
	)
	if err := st.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return st, cleanup, nil
}
