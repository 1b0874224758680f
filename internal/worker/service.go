package worker

import (
	"context"
	"errors"
	"time"

	"github.com/dingcan-next/internal/config"
	"github.com/dingcan-next/internal/logger"
	"github.com/dingcan-next/internal/queue"

	"github.com/hibiken/asynq"
)

const defaultSyncInterval = 30 * time.Minute

// Service 异步队列服务
type Service struct {
	name         string
	server       *asynq.Server
	mux          *asynq.ServeMux
	consumer     *Consumer
	syncInterval time.Duration
}

// NewService 创建异步队列服务
func NewService(cfg *config.Config, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Queue.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(&cfg.Queue)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)

	syncInterval := defaultSyncInterval
	if cfg.Delivery.SyncIntervalMinutes > 0 {
		syncInterval = time.Duration(cfg.Delivery.SyncIntervalMinutes) * time.Minute
	}
	return &Service{
		name:         "worker",
		server:       server,
		mux:          mux,
		consumer:     consumer,
		syncInterval: syncInterval,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.DeliverySyncService != nil {
		go s.runPeriodicSyncLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runPeriodicSyncLoop 定时兜底：先处理订阅过期，再做一轮配送单同步。
// 事件触发（批准、暂停餐别）已即时入队，这里只补偿错过的变更。
func (s *Service) runPeriodicSyncLoop(ctx context.Context) {
	if s == nil || s.consumer == nil {
		return
	}
	runOnce := func() {
		if s.consumer.SubscriptionService != nil {
			if _, err := s.consumer.SubscriptionService.ExpireOverdue(time.Now()); err != nil {
				logger.Warnw("worker_periodic_expire_failed", "error", err)
			}
		}
		if s.consumer.DeliverySyncService != nil {
			if _, err := s.consumer.DeliverySyncService.Sync(); err != nil {
				logger.Warnw("worker_periodic_sync_failed", "error", err)
			}
		}
	}
	runOnce()

	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
