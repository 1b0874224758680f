package queue

import (
	"encoding/json"

	"github.com/dingcan-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskDeliverySync 配送单同步任务
	TaskDeliverySync = constants.TaskDeliverySync
	// TaskSubscriptionExpire 订阅过期处理任务
	TaskSubscriptionExpire = constants.TaskSubscriptionExpire
)

// DeliverySyncPayload 配送单同步任务载荷
type DeliverySyncPayload struct {
	Reason string `json:"reason,omitempty"`
}

// SubscriptionExpirePayload 订阅过期处理任务载荷
type SubscriptionExpirePayload struct {
	AsOf int64 `json:"as_of,omitempty"` // Unix 秒，为 0 时取当前时间
}

// NewDeliverySyncTask 创建配送单同步任务
func NewDeliverySyncTask(payload DeliverySyncPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDeliverySync, body), nil
}

// NewSubscriptionExpireTask 创建订阅过期处理任务
func NewSubscriptionExpireTask(payload SubscriptionExpirePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSubscriptionExpire, body), nil
}
