package service

import (
	"strings"

	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
)

// CourierService 配送员服务
type CourierService struct {
	courierRepo repository.CourierRepository
}

// CourierInput 配送员创建/更新输入
type CourierInput struct {
	Name     string
	Phone    string
	IsActive *bool
}

// NewCourierService 创建配送员服务
func NewCourierService(courierRepo repository.CourierRepository) *CourierService {
	return &CourierService{courierRepo: courierRepo}
}

// List 分页查询配送员
func (s *CourierService) List(filter repository.CourierListFilter) ([]models.Courier, int64, error) {
	return s.courierRepo.List(filter)
}

// Get 获取配送员
func (s *CourierService) Get(id uint) (*models.Courier, error) {
	courier, err := s.courierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if courier == nil {
		return nil, ErrCourierNotFound
	}
	return courier, nil
}

// Create 创建配送员
func (s *CourierService) Create(input CourierInput) (*models.Courier, error) {
	courier := &models.Courier{
		Name:     strings.TrimSpace(input.Name),
		Phone:    strings.TrimSpace(input.Phone),
		IsActive: true,
	}
	if input.IsActive != nil {
		courier.IsActive = *input.IsActive
	}
	if err := s.courierRepo.Create(courier); err != nil {
		return nil, err
	}
	return courier, nil
}

// Update 更新配送员
func (s *CourierService) Update(id uint, input CourierInput) (*models.Courier, error) {
	courier, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		courier.Name = name
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		courier.Phone = phone
	}
	if input.IsActive != nil {
		courier.IsActive = *input.IsActive
	}
	if err := s.courierRepo.Update(courier); err != nil {
		return nil, err
	}
	return courier, nil
}

// Delete 删除配送员
func (s *CourierService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.courierRepo.Delete(id)
}
