package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis opens a Redis client and pings it within the given timeout.
func ConnectRedis(addr, password string, db int, timeout time.Duration, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("Redis ping failed", zap.Error(err), zap.String("addr", addr))
		_ = rdb.Close()
		return nil, err
	}

	logger.Info("Redis connected", zap.String("addr", addr))
	return rdb, nil
}
