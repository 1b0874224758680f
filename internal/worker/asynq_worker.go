package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dingcan-next/internal/logger"
	"github.com/dingcan-next/internal/provider"
	"github.com/dingcan-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskDeliverySync, c.handleDeliverySync)
	mux.HandleFunc(queue.TaskSubscriptionExpire, c.handleSubscriptionExpire)
}

func (c *Consumer) handleDeliverySync(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_delivery_sync_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.DeliverySyncPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_delivery_sync_unmarshal_failed", "error", err)
		return err
	}
	if c.DeliverySyncService == nil {
		logger.Warnw("worker_delivery_sync_skip_service_nil", "reason", payload.Reason)
		return nil
	}
	stats, err := c.DeliverySyncService.Sync()
	if err != nil {
		logger.Warnw("worker_delivery_sync_failed", "reason", payload.Reason, "error", err)
		return err
	}
	if stats.Changed() {
		logger.Infow("worker_delivery_sync_applied",
			"reason", payload.Reason,
			"created", stats.Created,
			"updated", stats.Updated,
			"removed", stats.Removed,
		)
	}
	return nil
}

func (c *Consumer) handleSubscriptionExpire(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_subscription_expire_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.SubscriptionExpirePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_subscription_expire_unmarshal_failed", "error", err)
		return err
	}
	if c.SubscriptionService == nil {
		logger.Warnw("worker_subscription_expire_skip_service_nil")
		return nil
	}
	asOf := time.Now()
	if payload.AsOf > 0 {
		asOf = time.Unix(payload.AsOf, 0)
	}
	expired, err := c.SubscriptionService.ExpireOverdue(asOf)
	if err != nil {
		logger.Warnw("worker_subscription_expire_failed", "error", err)
		return err
	}
	if expired > 0 {
		logger.Infow("worker_subscription_expire_applied", "expired", expired)
	}
	return nil
}
