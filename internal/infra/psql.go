package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"mingpan.dev/backend/internal/app/appconfig"
)

func Postgres(conf *appconfig.Config) (*bun.DB, error) {
	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(conf.PostgresDSN)))

	pgdb.SetMaxOpenConns(conf.PostgresMaxOpenConns)
	pgdb.SetMaxIdleConns(conf.PostgresMaxIdleConns)
	pgdb.SetConnMaxLifetime(conf.PostgresConnMaxLifeTime)
	pgdb.SetConnMaxIdleTime(conf.PostgresConnMaxIdleTime)

	db := bun.NewDB(pgdb, pgdialect.New())

	if conf.DevMode {
		db.AddQueryHook(bundebug.NewQueryHook(
			bundebug.WithVerbose(conf.BunDebugVerbose),
		))
	}

	err := retry.Do(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return db.PingContext(ctx)
	}, retry.Attempts(5), retry.OnRetry(func(n uint, err error) {
		log.Warn().Uint("attempt", n).Err(err).Msg("infra: psql: failed to ping database, retrying")
	}))
	if err != nil {
		log.Error().Err(err).Msg("infra: psql: failed to ping database")
		return nil, err
	}

	return db, nil
}
