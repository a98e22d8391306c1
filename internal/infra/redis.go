package infra

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"mingpan.dev/backend/internal/app/appconfig"
)

func Redis(conf *appconfig.Config) (*redis.Client, error) {
	u, err := redis.ParseURL(conf.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to parse redis url")
		return nil, err
	}

	client := redis.NewClient(u)

	err = retry.Do(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return client.Ping(ctx).Err()
	}, retry.Attempts(5), retry.OnRetry(func(n uint, err error) {
		log.Warn().Uint("attempt", n).Err(err).Msg("infra: redis: failed to ping, retrying")
	}))
	if err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to ping")
		return nil, err
	}

	return client, nil
}
