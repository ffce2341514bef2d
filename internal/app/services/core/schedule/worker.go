package schedule

import (
	"context"
	"time"

	"slotly-service/internal/app/config"
	"slotly-service/internal/app/contracts"
	"slotly-service/internal/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// leaderLockKey is the fixed key used to ensure a single maintenance leader.
const leaderLockKey = "slotmaint:leader"

// leaderLockTTL outlives a healthy prune run; the refresher extends it while
// the run is still going.
const leaderLockTTL = 2 * time.Minute

// Worker periodically prunes stored slots that have fallen behind the rolling
// horizon, so the slots collection only ever holds bookable days.
type Worker struct {
	log    *zap.Logger
	cfg    *config.InternalConfig
	locker contracts.LockerService
	slots  contracts.SlotRepository
	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, slotRepository contracts.SlotRepository) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, slots: slotRepository}
}

// Start schedules the maintenance job. Stop cancels it.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.SlotWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("schedule.worker: invalid cron spec, falling back to @daily",
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels any in-flight run and waits for running jobs to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, leaderLockTTL)
	if err != nil {
		w.log.Warn("schedule.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("schedule.worker: leader lock not acquired; another instance is running")
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, leaderLockKey, token); err != nil {
			w.log.Warn("schedule.worker: leader unlock failed", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(leaderLockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, leaderLockKey, token, leaderLockTTL); err != nil {
					w.log.Warn("schedule.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	loc, err := time.LoadLocation(w.cfg.App.Timezone)
	if err != nil {
		loc = time.UTC
	}
	today := time.Now().In(loc).Format(utils.DateLayoutISO)

	deleted, err := w.slots.DeleteSlotsBefore(ctx, today)
	if err != nil {
		w.log.Warn("schedule.worker: failed to prune stale slots", zap.Error(err))
		return
	}
	w.log.Info("schedule.worker: pruned stale slots",
		zap.String("before", today),
		zap.Int64("deleted", deleted),
	)
}
