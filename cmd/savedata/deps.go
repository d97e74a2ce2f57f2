package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-savedata/internal/codec"
	"github.com/KirkDiggler/rpg-savedata/internal/config"
	"github.com/KirkDiggler/rpg-savedata/internal/errors"
	"github.com/KirkDiggler/rpg-savedata/internal/orchestrators/savedata"
	"github.com/KirkDiggler/rpg-savedata/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-savedata/internal/redis"
	saverepo "github.com/KirkDiggler/rpg-savedata/internal/repositories/savedata"
)

// memoryPath is the sqlite path used by the offline commands
const memoryPath = ":memory:"

func setupLogging(cfg *config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

// openRepository builds the configured store. The returned func releases it.
func openRepository(ctx context.Context, cfg *config.Config) (saverepo.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreSQLite:
		repo, err := saverepo.NewSQLite(ctx, &saverepo.SQLiteConfig{
			Path:  cfg.SQLitePath,
			Clock: clock.New(),
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil

	case config.StoreRedis:
		client, err := newRedisClient(cfg.RedisAddr)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
		}

		repo, err := saverepo.NewRedis(&saverepo.RedisConfig{
			Client: client,
			Clock:  clock.New(),
		})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil

	default:
		return nil, nil, errors.InvalidArgumentf("unknown store %q", cfg.Store)
	}
}

func newRedisClient(addr string) (redis.Client, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		return redis.NewClientFromURL(addr)
	}
	return redis.NewClient(addr, nil)
}

func newService(cfg *config.Config, repo saverepo.Repository) (savedata.Service, error) {
	c, err := codec.New(&codec.Config{WriteVersion: cfg.SchemaVersion()})
	if err != nil {
		return nil, err
	}

	return savedata.NewOrchestrator(&savedata.Config{
		Repository: repo,
		Codec:      c,
		Capacity:   cfg.Capacity,
	})
}

// offlineConfig loads the environment and checks only what the file commands use.
// Store and network settings are ignored since they always run in memory.
func offlineConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateCodec(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newOfflineService stages blocks in an in-memory sqlite store so file
// commands run through the same orchestrator as the server
func newOfflineService(ctx context.Context, cfg *config.Config) (savedata.Service, func(), error) {
	offline := *cfg
	offline.Store = config.StoreSQLite
	offline.SQLitePath = memoryPath

	repo, release, err := openRepository(ctx, &offline)
	if err != nil {
		return nil, nil, err
	}

	svc, err := newService(&offline, repo)
	if err != nil {
		release()
		return nil, nil, err
	}

	return svc, release, nil
}
