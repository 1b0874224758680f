package service

import (
	"time"

	"github.com/dingcan-next/internal/constants"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
)

// DeliveryService 配送单管理服务（运营操作面）
type DeliveryService struct {
	deliveryRepo repository.DeliveryRepository
	courierRepo  repository.CourierRepository
}

// NewDeliveryService 创建配送单管理服务
func NewDeliveryService(deliveryRepo repository.DeliveryRepository, courierRepo repository.CourierRepository) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		courierRepo:  courierRepo,
	}
}

// List 分页查询配送单
func (s *DeliveryService) List(filter repository.DeliveryAssignmentListFilter) ([]models.DeliveryAssignment, int64, error) {
	return s.deliveryRepo.List(filter)
}

// ListMine 客户查询自己的配送单
func (s *DeliveryService) ListMine(userID uint, page, pageSize int) ([]models.DeliveryAssignment, int64, error) {
	return s.deliveryRepo.List(repository.DeliveryAssignmentListFilter{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
}

// Get 获取配送单
func (s *DeliveryService) Get(id uint) (*models.DeliveryAssignment, error) {
	assignment, err := s.deliveryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}
	return assignment, nil
}

// AssignCourier 指派配送员，状态顺带置为 assigned
func (s *DeliveryService) AssignCourier(id, courierID uint) (*models.DeliveryAssignment, error) {
	assignment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	courier, err := s.courierRepo.GetByID(courierID)
	if err != nil {
		return nil, err
	}
	if courier == nil {
		return nil, ErrCourierNotFound
	}
	if !courier.IsActive {
		return nil, ErrCourierInactive
	}

	assignment.CourierID = &courier.ID
	if assignment.Status == constants.DeliveryStatusPending {
		assignment.Status = constants.DeliveryStatusAssigned
	}
	if err := s.deliveryRepo.Update(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// UnassignCourier 取消指派
func (s *DeliveryService) UnassignCourier(id uint) (*models.DeliveryAssignment, error) {
	assignment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	assignment.CourierID = nil
	if assignment.Status == constants.DeliveryStatusAssigned {
		assignment.Status = constants.DeliveryStatusPending
	}
	if err := s.deliveryRepo.Update(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// SetStatus 设置配送单状态。状态流转不做约束，运营可任意改写。
func (s *DeliveryService) SetStatus(id uint, status string) (*models.DeliveryAssignment, error) {
	if !validDeliveryStatus(status) {
		return nil, ErrInvalidDeliveryStatus
	}
	assignment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	assignment.Status = status
	if status == constants.DeliveryStatusDelivered {
		now := time.Now()
		assignment.DeliveredAt = &now
	} else {
		assignment.DeliveredAt = nil
	}
	if err := s.deliveryRepo.Update(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func validDeliveryStatus(status string) bool {
	switch status {
	case constants.DeliveryStatusPending,
		constants.DeliveryStatusAssigned,
		constants.DeliveryStatusEnRoute,
		constants.DeliveryStatusDelivered:
		return true
	}
	return false
}
