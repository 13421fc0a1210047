package cmd

import (
	"context"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/internal/iodb"
	"github.com/gnames/gnprimer/internal/iosqlite"
	"github.com/gnames/gnprimer/pkg/config"
	"github.com/gnames/gnprimer/pkg/schema"
	"github.com/gnames/gnprimer/pkg/store"
)

// openStore creates the configured result store and its tables.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	var res store.Store

	switch cfg.Store.Backend {
	case "sqlite":
		s, err := iosqlite.New(cfg.SQLitePath())
		if err != nil {
			return nil, err
		}
		res = s
		gn.Info("Saving results to <em>%s</em>", cfg.SQLitePath())
	case "postgres":
		s := iodb.NewPgStore()
		if err := s.Connect(ctx, &cfg.Database); err != nil {
			return nil, err
		}
		res = s
		gn.Info("Saving results to <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	default:
		return store.Noop{}, nil
	}

	if err := res.Init(ctx); err != nil {
		res.Close()
		return nil, err
	}
	return res, nil
}

// withStore opens the store, records the run and hands them to save.
func withStore(
	ctx context.Context,
	cfg *config.Config,
	run schema.Run,
	save func(store.Store) error,
) error {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err = st.SaveRun(ctx, run); err != nil {
		return err
	}
	if err = save(st); err != nil {
		return err
	}
	slog.Info("Run saved", "run_id", run.ID, "store", cfg.Store.Backend)
	return nil
}
