// Package jobs содержит фоновое обслуживание журнала бронирований:
// завершение прошедших подтверждённых бронирований и отмена
// неподтверждённых вовремя pending-заявок.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/artel-platform/AOM-AvailabilityService/internal/config"
)

// BookingMaintenance интерфейс репозитория для фонового обслуживания
type BookingMaintenance interface {
	CompletePast(ctx context.Context, now time.Time) (int64, error)
	ExpireStalePending(ctx context.Context, olderThan time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const jobTimeout = 2 * time.Minute

// Runner планировщик фоновых задач обслуживания
type Runner struct {
	cron        *cron.Cron
	bookingRepo BookingMaintenance
	cfg         config.JobsConfig
	logger      Logger
}

// NewRunner создает планировщик фоновых задач
func NewRunner(bookingRepo BookingMaintenance, cfg config.JobsConfig, logger Logger) *Runner {
	return &Runner{
		cron:        cron.New(),
		bookingRepo: bookingRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start регистрирует задачи по расписаниям из конфигурации и запускает планировщик
func (r *Runner) Start() error {
	if _, err := r.cron.AddFunc(r.cfg.CompletePastSchedule, r.completePast); err != nil {
		return err
	}

	if _, err := r.cron.AddFunc(r.cfg.ExpirePendingSchedule, r.expireStalePending); err != nil {
		return err
	}

	r.cron.Start()
	r.logger.Info("Jobs: scheduler started (completePast=%q, expirePending=%q, pendingTTL=%dm)",
		r.cfg.CompletePastSchedule, r.cfg.ExpirePendingSchedule, r.cfg.PendingTTLMinutes)
	return nil
}

// Stop останавливает планировщик и дожидается завершения запущенных задач
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("Jobs: scheduler stopped")
}

// completePast переводит подтверждённые бронирования с прошедшим временем
// окончания в статус completed
func (r *Runner) completePast() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	now := time.Now()
	updated, err := r.bookingRepo.CompletePast(ctx, now)
	if err != nil {
		r.logger.Error("Jobs: completePast failed: %v", err)
		return
	}

	if updated > 0 {
		r.logger.Info("Jobs: completePast marked %d bookings as completed", updated)
	}
}

// expireStalePending отменяет pending бронирования, не подтверждённые
// за отведённый срок. Отменённая заявка освобождает слот
func (r *Runner) expireStalePending() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	olderThan := time.Now().Add(-time.Duration(r.cfg.PendingTTLMinutes) * time.Minute)
	updated, err := r.bookingRepo.ExpireStalePending(ctx, olderThan)
	if err != nil {
		r.logger.Error("Jobs: expireStalePending failed: %v", err)
		return
	}

	if updated > 0 {
		r.logger.Info("Jobs: expireStalePending cancelled %d stale bookings", updated)
	}
}
