package cron

import (
	"context"
	"encoding/json"

	"roomly/config"
	notificationRepo "roomly/database/repository/notification"
	"roomly/models"
	"roomly/services/notification"
	"roomly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// MailWorker drains the email queue: it renders and delivers each queued
// reservation email and records an audit row per attempt. Delivery failures
// are terminal at this boundary; asynq retries internally but nothing
// propagates back to the booking path.
type MailWorker struct {
	srv    *asynq.Server
	repo   notificationRepo.NotificationRepository
	mailer notification.Mailer
}

// NewMailWorker builds the worker on the configured mail queue DB.
func NewMailWorker(repo notificationRepo.NotificationRepository, mailer notification.Mailer) *MailWorker {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisMailQueueDB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	return &MailWorker{srv: srv, repo: repo, mailer: mailer}
}

// Start runs the worker in the background.
func (w *MailWorker) Start() {
	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeEmailSend, w.handleEmailTask)

	go func() {
		logger := utils.GetLogger()
		logger.Info("mail worker starting")
		if err := w.srv.Run(mux); err != nil {
			logger.Error("mail worker stopped", zap.Error(err))
		}
	}()
}

// Shutdown drains the worker gracefully.
func (w *MailWorker) Shutdown() {
	w.srv.Shutdown()
}

func (w *MailWorker) handleEmailTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.EmailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("invalid email task payload", zap.Error(err))
		// Malformed payloads will never succeed; drop instead of retrying.
		return nil
	}

	subject, body := notification.RenderEmail(p)
	sendErr := w.mailer.Send(p.Recipient, subject, body)

	audit := &models.EmailNotification{
		Kind:          p.Kind,
		Recipient:     p.Recipient,
		ReservationID: p.ReservationID,
		Status:        models.NotificationStatusSent,
	}
	if sendErr != nil {
		audit.Status = models.NotificationStatusFailed
		audit.Error = sendErr.Error()
	}
	if err := w.repo.Insert(ctx, audit); err != nil {
		logger.Error("failed to record email audit", zap.Error(err))
	}

	if sendErr != nil {
		logger.Warn("email delivery failed",
			zap.String("kind", p.Kind),
			zap.String("recipient", p.Recipient),
			zap.Error(sendErr))
		return sendErr
	}
	return nil
}
