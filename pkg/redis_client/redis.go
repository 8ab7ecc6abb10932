package redis_client

import (
	"context"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/metroplanner/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

func Connect() error {
	address := util.GetEnvironmentVariable("TRAVIGO_REDIS_ADDRESS", defaultConnectionAddress)
	password := util.GetEnvironmentVariable("TRAVIGO_REDIS_PASSWORD", defaultConnectionPassword)

	database, err := strconv.Atoi(util.GetEnvironmentVariable("TRAVIGO_REDIS_DATABASE", strconv.Itoa(defaultDatabase)))
	if err != nil {
		return err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = 30 * time.Second

	err = backoff.RetryNotify(func() error {
		return client.Ping(context.Background()).Err()
	}, retryBackoff, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("address", address).Str("retry", wait.String()).Msg("Redis not ready")
	})
	if err != nil {
		return err
	}

	Client = client

	log.Info().Msgf("Redis client setup for %s", address)

	return nil
}
