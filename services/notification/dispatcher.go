package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"roomly/config"
	"roomly/models"
	"roomly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeEmailSend is the asynq task type handled by the mail worker.
const TypeEmailSend = "email:send"

// AsynqDispatcher queues reservation emails on the Redis-backed task queue so
// delivery runs outside the request path.
type AsynqDispatcher struct {
	client *asynq.Client
}

// NewAsynqDispatcher builds a dispatcher on the configured mail queue DB.
func NewAsynqDispatcher() *AsynqDispatcher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	return &AsynqDispatcher{client: client}
}

func (d *AsynqDispatcher) Dispatch(ctx context.Context, kind string, rsv models.Reservation, resourceName, recipient string) error {
	if recipient == "" {
		// Nothing to deliver to; skip silently (e.g. no admin address configured).
		return nil
	}

	payload := models.EmailPayload{
		Kind:          kind,
		Recipient:     recipient,
		ReservationID: rsv.ID,
		ResourceName:  resourceName,
		Start:         rsv.Start.Format(time.RFC3339),
		End:           rsv.End.Format(time.RFC3339),
		Status:        rsv.Status,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	task := asynq.NewTask(TypeEmailSend, b)
	info, err := d.client.EnqueueContext(ctx, task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second))
	if err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}

	utils.GetLogger().Debug("queued reservation email",
		zap.String("kind", kind),
		zap.String("recipient", recipient),
		zap.String("taskID", info.ID))
	return nil
}

func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}
