package almanacwkr

import (
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"mingpan.dev/backend/internal/app/appconfig"
	"mingpan.dev/backend/internal/pkg/observability"
	"mingpan.dev/backend/internal/service"
)

type WorkerDeps struct {
	fx.In
	AlmanacService *service.Almanac
	RedSync        *redsync.Redsync
}

type Worker struct {
	// count counts refreshes the worker has completed so far
	count int

	// interval describes the interval in-between refresh attempts
	interval time.Duration

	// deps
	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Msg("almanac worker is disabled")
		return
	}
	(&Worker{
		interval:   conf.WorkerInterval,
		WorkerDeps: deps,
	}).do()
}

func (w *Worker) do() {
	go func() {
		for {
			w.refresh()

			w.count++
			time.Sleep(w.interval)
		}
	}()
}

// refresh recomputes the daily almanac snapshot. A redis mutex keeps multiple
// instances from refreshing at the same time; losing the lock just skips this
// round since another instance is doing the same work.
func (w *Worker) refresh() {
	mutex := w.RedSync.NewMutex("mutex:almanacwkr", redsync.WithExpiry(time.Second*30))
	if err := mutex.Lock(); err != nil {
		log.Debug().Err(err).Msg("almanac worker: another instance holds the refresh lock")
		return
	}
	defer func() {
		if _, err := mutex.Unlock(); err != nil {
			log.Warn().Err(err).Msg("almanac worker: failed to release refresh lock")
		}
	}()

	log.Info().Int("count", w.count).Msg("almanac worker: refreshing")
	start := time.Now()
	if _, err := w.AlmanacService.Refresh(); err != nil {
		log.Error().Err(err).Msg("almanac worker: refresh failed")
		return
	}
	observability.WorkerRefreshDuration.
		WithLabelValues("almanac").
		Set(time.Since(start).Seconds())
	log.Debug().Int("count", w.count).Msg("almanac worker: refreshed")
}

func (w *Worker) Count() int {
	return w.count
}
