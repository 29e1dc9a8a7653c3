package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Connect returns a redis client when REDIS_ADDR is configured and
// reachable, nil otherwise. Caching is an optimization here, never a
// startup requirement.
func Connect() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logrus.Info("REDIS_ADDR not set, caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Warnf("Redis unreachable at %s, caching disabled: %v", addr, err)
		return nil
	}

	logrus.WithField("addr", addr).Info("Connected to redis")
	return client
}
