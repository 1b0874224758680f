package service

import (
	"context"
	"time"

	"github.com/dingcan-next/internal/cache"
	"github.com/dingcan-next/internal/config"
	"github.com/dingcan-next/internal/constants"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
)

const settingCacheTTL = 5 * time.Minute

// SettingService 系统设置服务
type SettingService struct {
	cfg         *config.Config
	settingRepo repository.SettingRepository
}

// NewSettingService 创建设置服务
func NewSettingService(cfg *config.Config, settingRepo repository.SettingRepository) *SettingService {
	return &SettingService{
		cfg:         cfg,
		settingRepo: settingRepo,
	}
}

// Get 按键获取设置值（带缓存）
func (s *SettingService) Get(key string) (models.JSON, error) {
	var cached models.JSON
	if hit, err := cache.GetJSON(context.Background(), settingCacheKey(key), &cached); err == nil && hit {
		return cached, nil
	}

	setting, err := s.settingRepo.Get(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return models.JSON{}, nil
	}
	_ = cache.SetJSON(context.Background(), settingCacheKey(key), setting.ValueJSON, settingCacheTTL)
	return setting.ValueJSON, nil
}

// Set 写入设置并失效缓存
func (s *SettingService) Set(key string, value models.JSON) error {
	if err := s.settingRepo.Upsert(&models.Setting{Key: key, ValueJSON: value}); err != nil {
		return err
	}
	return cache.Del(context.Background(), settingCacheKey(key))
}

// List 获取全部设置
func (s *SettingService) List() ([]models.Setting, error) {
	return s.settingRepo.List()
}

// HubCoordinates 配送中心坐标：设置表优先，回退到配置文件默认值。
// 两者都缺失时返回 nil，距离计算得 0。
func (s *SettingService) HubCoordinates() (*float64, *float64) {
	value, err := s.Get(constants.SettingKeyDeliveryConfig)
	if err == nil {
		lat, latOK := floatFromJSON(value[constants.SettingFieldHubLat])
		lng, lngOK := floatFromJSON(value[constants.SettingFieldHubLng])
		if latOK && lngOK {
			return &lat, &lng
		}
	}

	if s.cfg != nil && (s.cfg.Delivery.HubLat != 0 || s.cfg.Delivery.HubLng != 0) {
		lat := s.cfg.Delivery.HubLat
		lng := s.cfg.Delivery.HubLng
		return &lat, &lng
	}
	return nil, nil
}

func settingCacheKey(key string) string {
	return "setting:" + key
}

func floatFromJSON(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
