package service

import (
	"strings"

	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"

	"github.com/shopspring/decimal"
)

// PackageService 套餐服务
type PackageService struct {
	packageRepo repository.MealPackageRepository
}

// PackageInput 套餐创建/更新输入
type PackageInput struct {
	Name         string
	Description  string
	MealTypes    []string
	Price        models.Money
	DurationDays int
	IsActive     *bool
	SortOrder    int
}

// AddonInput 加购项创建/更新输入
type AddonInput struct {
	Name      string
	Price     models.Money
	IsActive  *bool
	SortOrder int
}

// NewPackageService 创建套餐服务
func NewPackageService(packageRepo repository.MealPackageRepository) *PackageService {
	return &PackageService{packageRepo: packageRepo}
}

// List 管理端分页查询套餐
func (s *PackageService) List(filter repository.MealPackageListFilter) ([]models.MealPackage, int64, error) {
	return s.packageRepo.List(filter)
}

// ListPublic 客户端查询上架套餐
func (s *PackageService) ListPublic(page, pageSize int) ([]models.MealPackage, int64, error) {
	return s.packageRepo.List(repository.MealPackageListFilter{
		ActiveOnly: true,
		Page:       page,
		PageSize:   pageSize,
	})
}

// Get 获取套餐详情
func (s *PackageService) Get(id uint) (*models.MealPackage, error) {
	pkg, err := s.packageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

// Create 创建套餐
func (s *PackageService) Create(input PackageInput) (*models.MealPackage, error) {
	if input.Price.Decimal.LessThan(decimal.Zero) {
		return nil, ErrWalletInvalidAmount
	}
	duration := input.DurationDays
	if duration <= 0 {
		duration = 30
	}
	pkg := &models.MealPackage{
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		MealTypes:    models.StringArray(input.MealTypes),
		Price:        input.Price,
		DurationDays: duration,
		IsActive:     true,
		SortOrder:    input.SortOrder,
	}
	if input.IsActive != nil {
		pkg.IsActive = *input.IsActive
	}
	if err := s.packageRepo.Create(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Update 更新套餐
func (s *PackageService) Update(id uint, input PackageInput) (*models.MealPackage, error) {
	pkg, err := s.packageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		pkg.Name = name
	}
	pkg.Description = input.Description
	if input.MealTypes != nil {
		pkg.MealTypes = models.StringArray(input.MealTypes)
	}
	if input.Price.Decimal.GreaterThanOrEqual(decimal.Zero) {
		pkg.Price = input.Price
	}
	if input.DurationDays > 0 {
		pkg.DurationDays = input.DurationDays
	}
	if input.IsActive != nil {
		pkg.IsActive = *input.IsActive
	}
	pkg.SortOrder = input.SortOrder

	if err := s.packageRepo.Update(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Delete 删除套餐
func (s *PackageService) Delete(id uint) error {
	pkg, err := s.packageRepo.GetByID(id)
	if err != nil {
		return err
	}
	if pkg == nil {
		return ErrPackageNotFound
	}
	return s.packageRepo.Delete(id)
}

// ListAddons 查询加购项
func (s *PackageService) ListAddons(activeOnly bool) ([]models.PackageAddon, error) {
	return s.packageRepo.ListAddons(activeOnly)
}

// CreateAddon 创建加购项
func (s *PackageService) CreateAddon(input AddonInput) (*models.PackageAddon, error) {
	addon := &models.PackageAddon{
		Name:      strings.TrimSpace(input.Name),
		Price:     input.Price,
		IsActive:  true,
		SortOrder: input.SortOrder,
	}
	if input.IsActive != nil {
		addon.IsActive = *input.IsActive
	}
	if err := s.packageRepo.CreateAddon(addon); err != nil {
		return nil, err
	}
	return addon, nil
}

// UpdateAddon 更新加购项
func (s *PackageService) UpdateAddon(id uint, input AddonInput) (*models.PackageAddon, error) {
	addon, err := s.packageRepo.GetAddonByID(id)
	if err != nil {
		return nil, err
	}
	if addon == nil {
		return nil, ErrAddonNotFound
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		addon.Name = name
	}
	addon.Price = input.Price
	if input.IsActive != nil {
		addon.IsActive = *input.IsActive
	}
	addon.SortOrder = input.SortOrder
	if err := s.packageRepo.UpdateAddon(addon); err != nil {
		return nil, err
	}
	return addon, nil
}

// DeleteAddon 删除加购项
func (s *PackageService) DeleteAddon(id uint) error {
	addon, err := s.packageRepo.GetAddonByID(id)
	if err != nil {
		return err
	}
	if addon == nil {
		return ErrAddonNotFound
	}
	return s.packageRepo.DeleteAddon(id)
}
