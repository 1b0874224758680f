package service

import (
	"fmt"
	"strings"

	"github.com/dingcan-next/internal/constants"
	"github.com/dingcan-next/internal/geo"
	"github.com/dingcan-next/internal/logger"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"

	"gorm.io/gorm"
)

// HubLocator 提供配送中心坐标，缺失时返回 nil。
type HubLocator interface {
	HubCoordinates() (*float64, *float64)
}

// DeliverySyncService 配送单同步器：把已批准的订阅申请物化为配送单。
// 同一输入重复执行是幂等的，第二次运行不会产生任何写入。
type DeliverySyncService struct {
	subscriptionRepo repository.SubscriptionRepository
	deliveryRepo     repository.DeliveryRepository
	hub              HubLocator
}

// SyncStats 一次同步的统计结果
type SyncStats struct {
	Created int
	Updated int
	Removed int
}

// Changed 是否发生任何写入
func (s SyncStats) Changed() bool {
	return s.Created > 0 || s.Updated > 0 || s.Removed > 0
}

// NewDeliverySyncService 创建配送单同步器
func NewDeliverySyncService(
	subscriptionRepo repository.SubscriptionRepository,
	deliveryRepo repository.DeliveryRepository,
	hub HubLocator,
) *DeliverySyncService {
	return &DeliverySyncService{
		subscriptionRepo: subscriptionRepo,
		deliveryRepo:     deliveryRepo,
		hub:              hub,
	}
}

// AssignmentKey 配送单的确定性业务键：同一 (订阅, 波次) 始终得到同一键。
func AssignmentKey(subscriptionID uint, window string) string {
	return fmt.Sprintf("sub-%d-%s", subscriptionID, window)
}

// desiredAssignment 同步器计算出的期望配送单（业务字段子集）
type desiredAssignment struct {
	key             string
	subscriptionID  uint
	userID          uint
	window          string
	mealDescription string
	packageID       *uint
	customerName    string
	phone           string
	address         string
	groupName       string
	latitude        *float64
	longitude       *float64
	distanceKM      float64
}

// Sync 执行一轮同步。所有写入在单个事务内完成；
// 无变化时不开启写事务，直接返回零统计。
func (s *DeliverySyncService) Sync() (SyncStats, error) {
	requests, err := s.subscriptionRepo.ListAll()
	if err != nil {
		return SyncStats{}, err
	}
	existing, err := s.deliveryRepo.ListAll()
	if err != nil {
		return SyncStats{}, err
	}

	desired := s.buildDesired(requests)

	existingByKey := make(map[string]*models.DeliveryAssignment, len(existing))
	for i := range existing {
		existingByKey[existing[i].AssignmentKey] = &existing[i]
	}

	var (
		toCreate []desiredAssignment
		toUpdate []*models.DeliveryAssignment
	)
	for _, want := range desired {
		current, ok := existingByKey[want.key]
		if !ok {
			toCreate = append(toCreate, want)
			continue
		}
		if applyDesired(current, want) {
			toUpdate = append(toUpdate, current)
		}
	}

	staleKeys := s.collectStaleKeys(desired, existing)

	stats := SyncStats{
		Created: len(toCreate),
		Updated: len(toUpdate),
		Removed: len(staleKeys),
	}
	if !stats.Changed() {
		return stats, nil
	}

	err = s.deliveryRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.deliveryRepo.WithTx(tx)
		for _, want := range toCreate {
			assignment := &models.DeliveryAssignment{
				AssignmentKey:   want.key,
				SubscriptionID:  want.subscriptionID,
				UserID:          want.userID,
				Window:          want.window,
				MealDescription: want.mealDescription,
				PackageID:       want.packageID,
				CustomerName:    want.customerName,
				Phone:           want.phone,
				Address:         want.address,
				GroupName:       want.groupName,
				Latitude:        want.latitude,
				Longitude:       want.longitude,
				DistanceKM:      want.distanceKM,
				Status:          constants.DeliveryStatusPending,
			}
			if err := repo.Create(assignment); err != nil {
				return err
			}
		}
		for _, assignment := range toUpdate {
			if err := repo.Update(assignment); err != nil {
				return err
			}
		}
		if err := repo.DeleteByAssignmentKeys(staleKeys); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return SyncStats{}, err
	}

	logger.Infow("delivery_sync_completed",
		"created", stats.Created,
		"updated", stats.Updated,
		"removed", stats.Removed,
	)
	return stats, nil
}

// buildDesired 从订阅申请推导期望配送单集合。
// 只处理已批准且有有效订餐选择的申请；早餐与午餐合并为早班波次，
// 晚餐单独成单，同一订阅的额外晚餐选择键名追加序号。
// 配送中心坐标在每轮同步开始时解析，后台修改设置后下一轮即生效。
func (s *DeliverySyncService) buildDesired(requests []models.SubscriptionRequest) []desiredAssignment {
	var hubLat, hubLng *float64
	if s.hub != nil {
		hubLat, hubLng = s.hub.HubCoordinates()
	}

	var desired []desiredAssignment
	for i := range requests {
		request := &requests[i]
		if request.Status != constants.SubscriptionStatusApproved {
			continue
		}
		selections := request.ActiveSelections()
		if len(selections) == 0 {
			continue
		}

		phone := contactPhone(request)
		group := groupName(request)
		distance := geo.DistanceKM(hubLat, hubLng, request.Latitude, request.Longitude)

		var morning []models.MealSelection
		var dinners []models.MealSelection
		for _, selection := range selections {
			switch selection.MealType {
			case constants.MealTypeBreakfast, constants.MealTypeLunch:
				morning = append(morning, selection)
			case constants.MealTypeDinner:
				dinners = append(dinners, selection)
			}
		}

		base := desiredAssignment{
			subscriptionID: request.ID,
			userID:         request.UserID,
			customerName:   contactName(request),
			phone:          phone,
			address:        request.Address,
			groupName:      group,
			latitude:       request.Latitude,
			longitude:      request.Longitude,
			distanceKM:     distance,
		}

		if len(morning) > 0 {
			want := base
			want.window = constants.DeliveryWindowBreakfast
			want.key = AssignmentKey(request.ID, constants.DeliveryWindowBreakfast)
			want.mealDescription = joinDescriptions(morning)
			want.packageID = packageRef(morning[0])
			desired = append(desired, want)
		}
		for index, dinner := range dinners {
			window := constants.DeliveryWindowDinner
			if index > 0 {
				window = fmt.Sprintf("%s-%d", constants.DeliveryWindowDinner, index+1)
			}
			want := base
			want.window = constants.DeliveryWindowDinner
			want.key = AssignmentKey(request.ID, window)
			want.mealDescription = describeSelection(dinner)
			want.packageID = packageRef(dinner)
			desired = append(desired, want)
		}
	}
	return desired
}

// collectStaleKeys 找出需要清理的配送单键：
// 由本同步器派生（sub- 前缀）但不再被期望的键，包括历史遗留的独立 lunch 波次。
func (s *DeliverySyncService) collectStaleKeys(desired []desiredAssignment, existing []models.DeliveryAssignment) []string {
	wantedKeys := make(map[string]bool, len(desired))
	for _, want := range desired {
		wantedKeys[want.key] = true
	}

	var stale []string
	for i := range existing {
		key := existing[i].AssignmentKey
		if wantedKeys[key] {
			continue
		}
		if !strings.HasPrefix(key, "sub-") {
			// 非同步器生成的记录不动
			continue
		}
		stale = append(stale, key)
	}
	return stale
}

// applyDesired 比对业务字段并就地更新，返回是否有变化。
// 运营设置的配送员与状态不参与比对，永远不会被同步覆盖。
func applyDesired(current *models.DeliveryAssignment, want desiredAssignment) bool {
	changed := false
	if current.MealDescription != want.mealDescription {
		current.MealDescription = want.mealDescription
		changed = true
	}
	if !uintPtrEqual(current.PackageID, want.packageID) {
		current.PackageID = want.packageID
		changed = true
	}
	if current.CustomerName != want.customerName {
		current.CustomerName = want.customerName
		changed = true
	}
	if current.Phone != want.phone {
		current.Phone = want.phone
		changed = true
	}
	if current.Address != want.address {
		current.Address = want.address
		changed = true
	}
	if current.GroupName != want.groupName {
		current.GroupName = want.groupName
		changed = true
	}
	if !floatPtrEqual(current.Latitude, want.latitude) {
		current.Latitude = want.latitude
		changed = true
	}
	if !floatPtrEqual(current.Longitude, want.longitude) {
		current.Longitude = want.longitude
		changed = true
	}
	if current.DistanceKM != want.distanceKM {
		current.DistanceKM = want.distanceKM
		changed = true
	}
	if current.UserID != want.userID {
		current.UserID = want.userID
		changed = true
	}
	return changed
}

// contactPhone 收餐人电话，为空时回退到申请客户电话
func contactPhone(request *models.SubscriptionRequest) string {
	if phone := strings.TrimSpace(request.ContactPhone); phone != "" {
		return phone
	}
	if request.User != nil {
		return strings.TrimSpace(request.User.Phone)
	}
	return ""
}

// contactName 收餐人姓名，为空时回退到客户昵称
func contactName(request *models.SubscriptionRequest) string {
	if name := strings.TrimSpace(request.ContactName); name != "" {
		return name
	}
	if request.User != nil {
		return strings.TrimSpace(request.User.DisplayName)
	}
	return ""
}

// groupName 分组名回退链：标签 -> 分组配送点名 -> 分组分类名 -> 兜底
func groupName(request *models.SubscriptionRequest) string {
	if label := strings.TrimSpace(request.GroupLabel); label != "" {
		return label
	}
	if request.Group != nil {
		if name := request.Group.DisplayName(); name != "" {
			return name
		}
	}
	return constants.DeliveryGroupFallback
}

func joinDescriptions(selections []models.MealSelection) string {
	parts := make([]string, 0, len(selections))
	for _, selection := range selections {
		parts = append(parts, describeSelection(selection))
	}
	return strings.Join(parts, "; ")
}

func describeSelection(selection models.MealSelection) string {
	description := strings.TrimSpace(selection.Description)
	if description == "" {
		description = strings.TrimSpace(selection.PackageName)
	}
	if description == "" {
		description = selection.MealType
	}
	if selection.Quantity > 1 {
		return fmt.Sprintf("%s x%d", description, selection.Quantity)
	}
	return description
}

func packageRef(selection models.MealSelection) *uint {
	if selection.PackageID == 0 {
		return nil
	}
	id := selection.PackageID
	return &id
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
