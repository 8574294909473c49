// File: /jobs/inventory_job.go
package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// CarCounter reports how many cars are stored.
type CarCounter interface {
	CountCars(ctx context.Context) (int, error)
}

// InventoryRecorder receives each successful count.
type InventoryRecorder interface {
	SetCarsStored(n int)
}

// InventoryJob periodically counts the stored cars and publishes the figure.
type InventoryJob struct {
	counter  CarCounter
	recorder InventoryRecorder
	interval time.Duration
	logger   zerolog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewInventoryJob creates a new inventory job
func NewInventoryJob(counter CarCounter, recorder InventoryRecorder, interval time.Duration, logger zerolog.Logger) *InventoryJob {
	return &InventoryJob{
		counter:  counter,
		recorder: recorder,
		interval: interval,
		logger:   logger.With().Str("job", "inventory").Logger(),
	}
}

// Start runs one count immediately and then one per interval until Stop is
// called or ctx is done.
func (j *InventoryJob) Start(ctx context.Context) {
	ctx, j.cancel = context.WithCancel(ctx)
	j.logger.Info().Dur("interval", j.interval).Msg("inventory job started")

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		j.run(ctx)
		for {
			select {
			case <-ticker.C:
				j.run(ctx)
			case <-ctx.Done():
				j.logger.Info().Msg("inventory job stopped")
				return
			}
		}
	}()
}

// Stop halts the job and waits for an in-flight run to finish.
func (j *InventoryJob) Stop() {
	if j.cancel != nil {
		j.cancel()
	}
	j.wg.Wait()
}

func (j *InventoryJob) run(ctx context.Context) {
	n, err := j.counter.CountCars(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("inventory count failed")
		return
	}

	j.recorder.SetCarsStored(n)
	j.logger.Debug().Int("cars", n).Msg("inventory counted")
}
