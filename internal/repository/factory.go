package repository

import (
	"log/slog"

	"github.com/navikt/roomkiosk/internal/config"
	"github.com/navikt/roomkiosk/internal/repository/memory"
	"github.com/navikt/roomkiosk/internal/repository/redis"
)

// NewRepository returns the Redis repository when Redis is enabled and the
// in-memory repository otherwise. The returned close function releases the
// backing connection and is always safe to call.
func NewRepository(cfg config.RedisConfig, logger *slog.Logger) (Repository, func() error, error) {
	if !cfg.Enabled {
		logger.Info("using in-memory room repository")
		return memory.NewRepository(), func() error { return nil }, nil
	}

	repo, err := redis.NewRepository(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using redis room repository", "key_prefix", cfg.KeyPrefix, "ttl", cfg.RoomTTL.String())
	return repo, repo.Close, nil
}
