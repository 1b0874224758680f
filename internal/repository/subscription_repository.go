package repository

import (
	"errors"

	"github.com/dingcan-next/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository 订阅申请数据访问接口
type SubscriptionRepository interface {
	GetByID(id uint) (*models.SubscriptionRequest, error)
	List(filter SubscriptionListFilter) ([]models.SubscriptionRequest, int64, error)
	ListAll() ([]models.SubscriptionRequest, error)
	Create(request *models.SubscriptionRequest) error
	Update(request *models.SubscriptionRequest) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormSubscriptionRepository
}

// GormSubscriptionRepository GORM 实现
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository 创建订阅申请仓库
func NewSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSubscriptionRepository) WithTx(tx *gorm.DB) *GormSubscriptionRepository {
	if tx == nil {
		return r
	}
	return &GormSubscriptionRepository{db: tx}
}

// GetByID 根据 ID 获取订阅申请（带客户与分组）
func (r *GormSubscriptionRepository) GetByID(id uint) (*models.SubscriptionRequest, error) {
	var request models.SubscriptionRequest
	if err := r.db.Preload("User").Preload("Group").First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// List 分页查询订阅申请
func (r *GormSubscriptionRepository) List(filter SubscriptionListFilter) ([]models.SubscriptionRequest, int64, error) {
	query := r.db.Model(&models.SubscriptionRequest{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("(contact_name LIKE ? OR contact_phone LIKE ? OR address LIKE ?)", like, like, like)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var requests []models.SubscriptionRequest
	if err := query.Preload("User").Preload("Group").Order("id desc").Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// ListAll 获取全部订阅申请（同步器使用，带客户与分组）
func (r *GormSubscriptionRepository) ListAll() ([]models.SubscriptionRequest, error) {
	requests := make([]models.SubscriptionRequest, 0)
	if err := r.db.Preload("User").Preload("Group").Order("id asc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Create 创建订阅申请
func (r *GormSubscriptionRepository) Create(request *models.SubscriptionRequest) error {
	return r.db.Create(request).Error
}

// Update 更新订阅申请
func (r *GormSubscriptionRepository) Update(request *models.SubscriptionRequest) error {
	return r.db.Save(request).Error
}

// Delete 删除订阅申请（软删除）
func (r *GormSubscriptionRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.SubscriptionRequest{}, id).Error
}
