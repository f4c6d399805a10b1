package cmd

import (
	"context"
	"errors"
	"fmt"

	"scan-verifier/core/config"
	"scan-verifier/core/database"
	"scan-verifier/core/logger"
	"scan-verifier/core/manifest"
	"scan-verifier/core/notify"
	"scan-verifier/core/reconcile"
	"scan-verifier/core/session"
	"scan-verifier/core/storage"
	"scan-verifier/feature/archive"
	"scan-verifier/feature/scanning"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services holds everything a command needs to work with the persisted session.
type services struct {
	cfg     *config.Config
	logg    *zap.Logger
	session *session.Session
	scan    *scanning.Service
	archive *archive.Feature
	closers []func() error
}

// bootstrap restores the session and wires the archive. Archive destinations
// that fail to connect are logged and skipped. Every outcome is logged and
// then handed to observers.
func bootstrap(ctx context.Context, cfg *config.Config, logg *zap.Logger, observers ...reconcile.Observer) (*services, error) {
	rt := &services{cfg: cfg, logg: logg}

	store, err := openStore(cfg.Session)
	if err != nil {
		return nil, err
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		rt.closers = append(rt.closers, closer.Close)
	}

	rt.session = session.New(store, logg)
	if err := rt.session.Restore(); err != nil {
		rt.Close()
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	var db *gorm.DB
	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional archive database connection failed", zap.Error(err))
		} else {
			db = conn
			if err := archive.NewRepository(db).Migrate(); err != nil {
				logg.Warn("Archive migration failed", zap.Error(err))
			}
			if sqlDB, err := db.DB(); err == nil {
				rt.closers = append(rt.closers, sqlDB.Close)
			}
			logg.Info("Connected to archive database", zap.String("driver", cfg.Database.Driver))
		}
	}

	var client storage.Client
	if cfg.Storage.Enabled {
		if c, err := storage.Open(ctx, cfg.Storage); err != nil {
			logg.Warn("Archive bucket unavailable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		} else {
			client = c
		}
	}

	rt.archive = archive.NewFeature(client, cfg.Storage.Bucket, db, logg)

	// A nil *archive.Service inside the interface would not compare equal to nil.
	var archiver scanning.Archiver
	if rt.archive.IsEnabled() {
		archiver = rt.archive.Service()
	}

	reader := manifest.NewReader(manifest.FromConfig(cfg.Manifest.Columns))
	notifier := append(notify.Multi{notify.NewLogNotifier(logg)}, observers...)
	rt.scan = scanning.NewService(rt.session, reader, archiver, notifier, logg)
	return rt, nil
}

// loadRuntime is the common prologue of CLI commands.
func loadRuntime(ctx context.Context, observers ...reconcile.Observer) (*services, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return bootstrap(ctx, cfg, logg, observers...)
}

// Close flushes pending session state and releases the stores.
func (rt *services) Close() error {
	var errs []error
	if rt.session != nil && rt.session.Dirty() {
		if err := rt.session.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	if rt.logg != nil {
		_ = rt.logg.Sync()
	}
	return errors.Join(errs...)
}

func openStore(cfg session.Config) (session.Store, error) {
	if cfg.InMemory {
		return session.NewMemoryStore(), nil
	}
	store, err := session.OpenBadger(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store at %s: %w", cfg.Path, err)
	}
	return store, nil
}
