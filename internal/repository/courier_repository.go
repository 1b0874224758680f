package repository

import (
	"errors"

	"github.com/dingcan-next/internal/models"

	"gorm.io/gorm"
)

// CourierRepository 配送员数据访问接口
type CourierRepository interface {
	GetByID(id uint) (*models.Courier, error)
	List(filter CourierListFilter) ([]models.Courier, int64, error)
	Create(courier *models.Courier) error
	Update(courier *models.Courier) error
	Delete(id uint) error
}

// GormCourierRepository GORM 实现
type GormCourierRepository struct {
	db *gorm.DB
}

// NewCourierRepository 创建配送员仓库
func NewCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// GetByID 根据 ID 获取配送员
func (r *GormCourierRepository) GetByID(id uint) (*models.Courier, error) {
	if id == 0 {
		return nil, nil
	}
	var courier models.Courier
	if err := r.db.First(&courier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &courier, nil
}

// List 分页查询配送员
func (r *GormCourierRepository) List(filter CourierListFilter) ([]models.Courier, int64, error) {
	query := r.db.Model(&models.Courier{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var couriers []models.Courier
	if err := query.Order("id asc").Find(&couriers).Error; err != nil {
		return nil, 0, err
	}
	return couriers, total, nil
}

// Create 创建配送员
func (r *GormCourierRepository) Create(courier *models.Courier) error {
	return r.db.Create(courier).Error
}

// Update 更新配送员
func (r *GormCourierRepository) Update(courier *models.Courier) error {
	return r.db.Save(courier).Error
}

// Delete 删除配送员（软删除）
func (r *GormCourierRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Courier{}, id).Error
}
