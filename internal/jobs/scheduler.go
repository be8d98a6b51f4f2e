// Package jobs runs periodic background work on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"time"

	"quizvault/internal/core/ports"
	"quizvault/pkg/logger"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// TotalsSource reports aggregate wallet balances.
type TotalsSource interface {
	Totals(ctx context.Context) (*ports.WalletTotals, error)
}

// TotalsSink publishes an economy snapshot.
type TotalsSink interface {
	SetEconomyTotals(t ports.WalletTotals)
}

// Scheduler owns the cron runner.
type Scheduler struct {
	cron    *cron.Cron
	source  TotalsSource
	sink    TotalsSink
	timeout time.Duration
	log     zerolog.Logger
}

func NewScheduler(source TotalsSource, sink TotalsSink, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		source:  source,
		sink:    sink,
		timeout: 30 * time.Second,
		log:     logger.For(log, logger.Jobs),
	}
}

// Start schedules the economy snapshot on spec and starts the runner.
// An empty spec disables the job.
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	if spec == "" {
		s.log.Info().Msg("Economy snapshot disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(spec, func() { s.SnapshotEconomy(ctx) }); err != nil {
		return fmt.Errorf("schedule economy snapshot %q: %w", spec, err)
	}

	s.cron.Start()
	s.log.Info().Str("schedule", spec).Msg("Job scheduler started")
	return nil
}

// SnapshotEconomy reads wallet totals once and publishes them.
func (s *Scheduler) SnapshotEconomy(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	totals, err := s.source.Totals(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Economy snapshot failed")
		return
	}
	s.sink.SetEconomyTotals(*totals)

	s.log.Info().
		Int64("wallets", totals.Wallets).
		Int64("gold", totals.Gold).
		Int64("crystals", totals.Crystals).
		Msg("Economy snapshot")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("Job scheduler stopped")
}
