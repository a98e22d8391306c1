package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"mingpan.dev/backend/cmd/app/cli/verifyalmanac"
	"mingpan.dev/backend/cmd/app/server"
	"mingpan.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "mpbackend",
		Description: "The Mingpan four-pillar analysis backend. Built with Go, fiber, bun and go.uber.org/fx. Uses Redis for caching and state synchronization.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			verifyalmanac.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
