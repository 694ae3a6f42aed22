// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/notify"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// ErrNotificationQueueFull is returned when a notification cannot be queued
// without blocking the caller.
var ErrNotificationQueueFull = errors.New("notification queue is full")

const (
	defaultSendTimeout  = 30 * time.Second
	defaultDrainTimeout = 10 * time.Second
)

type notificationJob struct {
	notification models.ResetNotification
	logger       *logger.Logger
}

// NotificationWorker decouples reset-code delivery from request handling.
// It implements [notify.Notifier] by queueing; Run hands queued messages to
// the wrapped notifier one at a time.
type NotificationWorker struct {
	target       notify.Notifier
	queue        chan notificationJob
	logger       *logger.Logger
	sendTimeout  time.Duration
	drainTimeout time.Duration
}

// NewNotificationWorker returns a worker with room for queueSize pending
// notifications.
func NewNotificationWorker(target notify.Notifier, queueSize int, log *logger.Logger) *NotificationWorker {
	if queueSize < 1 {
		queueSize = 1
	}

	return &NotificationWorker{
		target:       target,
		queue:        make(chan notificationJob, queueSize),
		logger:       log,
		sendTimeout:  defaultSendTimeout,
		drainTimeout: defaultDrainTimeout,
	}
}

// SendResetCode queues the notification and returns immediately. It never
// blocks: a full queue yields [ErrNotificationQueueFull].
func (w *NotificationWorker) SendResetCode(ctx context.Context, notification models.ResetNotification) error {
	job := notificationJob{
		notification: notification,
		logger:       logger.FromContextOr(ctx, w.logger),
	}

	select {
	case w.queue <- job:
		return nil
	default:
		return ErrNotificationQueueFull
	}
}

// Run delivers queued notifications until ctx is cancelled, then makes a
// bounded attempt to deliver whatever is still queued.
func (w *NotificationWorker) Run(ctx context.Context) error {
	w.logger.Info().Str("func", "*NotificationWorker.Run").Msg("notification worker started")

	for {
		select {
		case <-ctx.Done():
			w.drain(context.WithoutCancel(ctx))
			w.logger.Info().Str("func", "*NotificationWorker.Run").Msg("notification worker stopped")
			return nil
		case job := <-w.queue:
			w.deliver(ctx, job)
		}
	}
}

func (w *NotificationWorker) drain(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.drainTimeout)
	defer cancel()

	for {
		select {
		case job := <-w.queue:
			w.deliver(ctx, job)
		default:
			return
		}
	}
}

// deliver sends one notification with the originating request's logger.
// Failures are logged and dropped.
func (w *NotificationWorker) deliver(ctx context.Context, job notificationJob) {
	ctx, cancel := context.WithTimeout(ctx, w.sendTimeout)
	defer cancel()

	log := job.logger
	ctx = log.WithContext(ctx)

	if err := w.target.SendResetCode(ctx, job.notification); err != nil {
		log.Err(err).Str("func", "*NotificationWorker.deliver").Msg("reset code notification failed")
	}
}
