package repository

import (
	"errors"
	"strings"

	"github.com/dingcan-next/internal/models"

	"gorm.io/gorm"
)

// DeliveryRepository 配送单数据访问接口
type DeliveryRepository interface {
	GetByID(id uint) (*models.DeliveryAssignment, error)
	GetByAssignmentKey(key string) (*models.DeliveryAssignment, error)
	ListAll() ([]models.DeliveryAssignment, error)
	List(filter DeliveryAssignmentListFilter) ([]models.DeliveryAssignment, int64, error)
	Create(assignment *models.DeliveryAssignment) error
	Update(assignment *models.DeliveryAssignment) error
	DeleteByAssignmentKeys(keys []string) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormDeliveryRepository
}

// GormDeliveryRepository GORM 实现
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository 创建配送单仓库
func NewDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Transaction 在数据库事务内执行
func (r *GormDeliveryRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// WithTx 绑定事务
func (r *GormDeliveryRepository) WithTx(tx *gorm.DB) *GormDeliveryRepository {
	if tx == nil {
		return r
	}
	return &GormDeliveryRepository{db: tx}
}

// GetByID 根据 ID 获取配送单
func (r *GormDeliveryRepository) GetByID(id uint) (*models.DeliveryAssignment, error) {
	var assignment models.DeliveryAssignment
	if err := r.db.Preload("Courier").First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// GetByAssignmentKey 根据业务键获取配送单
func (r *GormDeliveryRepository) GetByAssignmentKey(key string) (*models.DeliveryAssignment, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, nil
	}
	var assignment models.DeliveryAssignment
	if err := r.db.Where("assignment_key = ?", key).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// ListAll 获取全部配送单（同步器使用）
func (r *GormDeliveryRepository) ListAll() ([]models.DeliveryAssignment, error) {
	assignments := make([]models.DeliveryAssignment, 0)
	if err := r.db.Order("id asc").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// List 分页查询配送单
func (r *GormDeliveryRepository) List(filter DeliveryAssignmentListFilter) ([]models.DeliveryAssignment, int64, error) {
	query := r.db.Model(&models.DeliveryAssignment{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Window != "" {
		// 列名加双引号，window 在 PostgreSQL 中是保留字
		query = query.Where(`"window" = ?`, filter.Window)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.GroupName != "" {
		query = query.Where("group_name = ?", filter.GroupName)
	}
	if filter.CourierID != 0 {
		query = query.Where("courier_id = ?", filter.CourierID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var assignments []models.DeliveryAssignment
	if err := query.Preload("Courier").Order("group_name asc, id desc").Find(&assignments).Error; err != nil {
		return nil, 0, err
	}
	return assignments, total, nil
}

// Create 创建配送单
func (r *GormDeliveryRepository) Create(assignment *models.DeliveryAssignment) error {
	return r.db.Create(assignment).Error
}

// Update 更新配送单
func (r *GormDeliveryRepository) Update(assignment *models.DeliveryAssignment) error {
	return r.db.Save(assignment).Error
}

// DeleteByAssignmentKeys 按业务键批量删除配送单
func (r *GormDeliveryRepository) DeleteByAssignmentKeys(keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.Where("assignment_key IN ?", keys).Delete(&models.DeliveryAssignment{}).Error
}
