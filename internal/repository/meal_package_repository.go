package repository

import (
	"errors"

	"github.com/dingcan-next/internal/models"

	"gorm.io/gorm"
)

// MealPackageRepository 套餐数据访问接口
type MealPackageRepository interface {
	GetByID(id uint) (*models.MealPackage, error)
	GetByIDs(ids []uint) ([]models.MealPackage, error)
	List(filter MealPackageListFilter) ([]models.MealPackage, int64, error)
	Create(pkg *models.MealPackage) error
	Update(pkg *models.MealPackage) error
	Delete(id uint) error
	ListAddons(activeOnly bool) ([]models.PackageAddon, error)
	GetAddonByID(id uint) (*models.PackageAddon, error)
	CreateAddon(addon *models.PackageAddon) error
	UpdateAddon(addon *models.PackageAddon) error
	DeleteAddon(id uint) error
}

// GormMealPackageRepository GORM 实现
type GormMealPackageRepository struct {
	db *gorm.DB
}

// NewMealPackageRepository 创建套餐仓库
func NewMealPackageRepository(db *gorm.DB) *GormMealPackageRepository {
	return &GormMealPackageRepository{db: db}
}

// GetByID 根据 ID 获取套餐
func (r *GormMealPackageRepository) GetByID(id uint) (*models.MealPackage, error) {
	var pkg models.MealPackage
	if err := r.db.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

// GetByIDs 批量获取套餐
func (r *GormMealPackageRepository) GetByIDs(ids []uint) ([]models.MealPackage, error) {
	if len(ids) == 0 {
		return []models.MealPackage{}, nil
	}
	var pkgs []models.MealPackage
	if err := r.db.Where("id IN ?", ids).Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}

// List 分页查询套餐
func (r *GormMealPackageRepository) List(filter MealPackageListFilter) ([]models.MealPackage, int64, error) {
	query := r.db.Model(&models.MealPackage{})
	if filter.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+filter.Keyword+"%")
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var pkgs []models.MealPackage
	if err := query.Order("sort_order asc, id desc").Find(&pkgs).Error; err != nil {
		return nil, 0, err
	}
	return pkgs, total, nil
}

// Create 创建套餐
func (r *GormMealPackageRepository) Create(pkg *models.MealPackage) error {
	return r.db.Create(pkg).Error
}

// Update 更新套餐
func (r *GormMealPackageRepository) Update(pkg *models.MealPackage) error {
	return r.db.Save(pkg).Error
}

// Delete 删除套餐（软删除）
func (r *GormMealPackageRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.MealPackage{}, id).Error
}

// ListAddons 查询加购项
func (r *GormMealPackageRepository) ListAddons(activeOnly bool) ([]models.PackageAddon, error) {
	query := r.db.Model(&models.PackageAddon{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	addons := make([]models.PackageAddon, 0)
	if err := query.Order("sort_order asc, id asc").Find(&addons).Error; err != nil {
		return nil, err
	}
	return addons, nil
}

// GetAddonByID 根据 ID 获取加购项
func (r *GormMealPackageRepository) GetAddonByID(id uint) (*models.PackageAddon, error) {
	var addon models.PackageAddon
	if err := r.db.First(&addon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &addon, nil
}

// CreateAddon 创建加购项
func (r *GormMealPackageRepository) CreateAddon(addon *models.PackageAddon) error {
	return r.db.Create(addon).Error
}

// UpdateAddon 更新加购项
func (r *GormMealPackageRepository) UpdateAddon(addon *models.PackageAddon) error {
	return r.db.Save(addon).Error
}

// DeleteAddon 删除加购项（软删除）
func (r *GormMealPackageRepository) DeleteAddon(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.PackageAddon{}, id).Error
}
