package repository

import (
	"errors"

	"github.com/dingcan-next/internal/models"

	"gorm.io/gorm"
)

// DeliveryGroupRepository 配送分组数据访问接口
type DeliveryGroupRepository interface {
	GetByID(id uint) (*models.DeliveryGroup, error)
	List() ([]models.DeliveryGroup, error)
	Create(group *models.DeliveryGroup) error
	Update(group *models.DeliveryGroup) error
	Delete(id uint) error
}

// GormDeliveryGroupRepository GORM 实现
type GormDeliveryGroupRepository struct {
	db *gorm.DB
}

// NewDeliveryGroupRepository 创建配送分组仓库
func NewDeliveryGroupRepository(db *gorm.DB) *GormDeliveryGroupRepository {
	return &GormDeliveryGroupRepository{db: db}
}

// GetByID 根据 ID 获取配送分组
func (r *GormDeliveryGroupRepository) GetByID(id uint) (*models.DeliveryGroup, error) {
	if id == 0 {
		return nil, nil
	}
	var group models.DeliveryGroup
	if err := r.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// List 获取全部配送分组
func (r *GormDeliveryGroupRepository) List() ([]models.DeliveryGroup, error) {
	groups := make([]models.DeliveryGroup, 0)
	if err := r.db.Order("sort_order asc, id asc").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Create 创建配送分组
func (r *GormDeliveryGroupRepository) Create(group *models.DeliveryGroup) error {
	return r.db.Create(group).Error
}

// Update 更新配送分组
func (r *GormDeliveryGroupRepository) Update(group *models.DeliveryGroup) error {
	return r.db.Save(group).Error
}

// Delete 删除配送分组（软删除）
func (r *GormDeliveryGroupRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.DeliveryGroup{}, id).Error
}
