package service

import (
	"strings"

	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
)

// DeliveryGroupService 配送分组服务
type DeliveryGroupService struct {
	groupRepo repository.DeliveryGroupRepository
}

// DeliveryGroupInput 配送分组创建/更新输入
type DeliveryGroupInput struct {
	Name         string
	CategoryName string
	LocationName string
	SortOrder    int
}

// NewDeliveryGroupService 创建配送分组服务
func NewDeliveryGroupService(groupRepo repository.DeliveryGroupRepository) *DeliveryGroupService {
	return &DeliveryGroupService{groupRepo: groupRepo}
}

// List 获取全部配送分组
func (s *DeliveryGroupService) List() ([]models.DeliveryGroup, error) {
	return s.groupRepo.List()
}

// Get 获取配送分组
func (s *DeliveryGroupService) Get(id uint) (*models.DeliveryGroup, error) {
	group, err := s.groupRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// Create 创建配送分组
func (s *DeliveryGroupService) Create(input DeliveryGroupInput) (*models.DeliveryGroup, error) {
	group := &models.DeliveryGroup{
		Name:         strings.TrimSpace(input.Name),
		CategoryName: strings.TrimSpace(input.CategoryName),
		LocationName: strings.TrimSpace(input.LocationName),
		SortOrder:    input.SortOrder,
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

// Update 更新配送分组
func (s *DeliveryGroupService) Update(id uint, input DeliveryGroupInput) (*models.DeliveryGroup, error) {
	group, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		group.Name = name
	}
	group.CategoryName = strings.TrimSpace(input.CategoryName)
	group.LocationName = strings.TrimSpace(input.LocationName)
	group.SortOrder = input.SortOrder
	if err := s.groupRepo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

// Delete 删除配送分组
func (s *DeliveryGroupService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.groupRepo.Delete(id)
}
