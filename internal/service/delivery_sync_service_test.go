package service

import (
	"testing"
	"time"

	"github.com/dingcan-next/internal/constants"
	"github.com/dingcan-next/internal/models"
	"github.com/dingcan-next/internal/repository"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newSyncTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:deliverysync?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.DeliveryGroup{},
		&models.SubscriptionRequest{},
		&models.DeliveryAssignment{},
		&models.Courier{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	for _, model := range []interface{}{
		&models.DeliveryAssignment{},
		&models.SubscriptionRequest{},
		&models.Courier{},
		&models.DeliveryGroup{},
		&models.User{},
	} {
		if err := db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			t.Fatalf("cleanup failed: %v", err)
		}
	}
	return db
}

// fixedHub 测试用的可变配送中心坐标源
type fixedHub struct {
	lat *float64
	lng *float64
}

func (h *fixedHub) HubCoordinates() (*float64, *float64) {
	return h.lat, h.lng
}

func newSyncService(db *gorm.DB, hub HubLocator) *DeliverySyncService {
	return NewDeliverySyncService(
		repository.NewSubscriptionRepository(db),
		repository.NewDeliveryRepository(db),
		hub,
	)
}

func seedSyncUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Email:        "customer@example.com",
		PasswordHash: "x",
		DisplayName:  "li si",
		Phone:        "13900000000",
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return user
}

func seedApprovedRequest(t *testing.T, db *gorm.DB, user *models.User, selections models.MealSelectionList) *models.SubscriptionRequest {
	t.Helper()
	lat, lng := 31.2304, 121.4737
	request := &models.SubscriptionRequest{
		UserID:         user.ID,
		ContactName:    "zhang san",
		ContactPhone:   "13800000000",
		Address:        "people square 100",
		Latitude:       &lat,
		Longitude:      &lng,
		GroupLabel:     "tower-a",
		StartDate:      time.Now(),
		EndDate:        time.Now().AddDate(0, 1, 0),
		MealSelections: selections,
		Status:         constants.SubscriptionStatusApproved,
	}
	if err := db.Create(request).Error; err != nil {
		t.Fatalf("seed subscription failed: %v", err)
	}
	return request
}

func TestSyncCreatesMorningAndDinnerAssignments(t *testing.T) {
	db := newSyncTestDB(t)
	user := seedSyncUser(t, db)
	request := seedApprovedRequest(t, db, user, models.MealSelectionList{
		{PackageID: 11, PackageName: "light breakfast", MealType: constants.MealTypeBreakfast},
		{PackageID: 12, PackageName: "family dinner", MealType: constants.MealTypeDinner, Quantity: 2},
	})

	hubLat, hubLng := 31.2200, 121.4600
	svc := newSyncService(db, &fixedHub{lat: &hubLat, lng: &hubLng})

	stats, err := svc.Sync()
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if stats.Created != 2 || stats.Updated != 0 || stats.Removed != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	var assignments []models.DeliveryAssignment
	if err := db.Order("assignment_key asc").Find(&assignments).Error; err != nil {
		t.Fatalf("load assignments failed: %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(assignments))
	}

	breakfast := assignments[0]
	if breakfast.AssignmentKey != AssignmentKey(request.ID, constants.DeliveryWindowBreakfast) {
		t.Fatalf("unexpected breakfast key: %s", breakfast.AssignmentKey)
	}
	if breakfast.Window != constants.DeliveryWindowBreakfast {
		t.Fatalf("unexpected breakfast window: %s", breakfast.Window)
	}
	if breakfast.MealDescription != "light breakfast" {
		t.Fatalf("unexpected breakfast description: %s", breakfast.MealDescription)
	}
	if breakfast.PackageID == nil || *breakfast.PackageID != 11 {
		t.Fatalf("unexpected breakfast package ref: %v", breakfast.PackageID)
	}
	if breakfast.Status != constants.DeliveryStatusPending || breakfast.CourierID != nil {
		t.Fatalf("new assignment must start pending and unassigned")
	}
	if breakfast.CustomerName != "zhang san" || breakfast.Phone != "13800000000" {
		t.Fatalf("unexpected contact fields: %s / %s", breakfast.CustomerName, breakfast.Phone)
	}
	if breakfast.GroupName != "tower-a" {
		t.Fatalf("unexpected group name: %s", breakfast.GroupName)
	}
	if breakfast.DistanceKM <= 0 {
		t.Fatalf("expected positive hub distance, got %v", breakfast.DistanceKM)
	}

	dinner := assignments[1]
	if dinner.AssignmentKey != AssignmentKey(request.ID, constants.DeliveryWindowDinner) {
		t.Fatalf("unexpected dinner key: %s", dinner.AssignmentKey)
	}
	if dinner.MealDescription != "family dinner x2" {
		t.Fatalf("unexpected dinner description: %s", dinner.MealDescription)
	}
}

func TestSyncMergesBreakfastAndLunch(t *testing.T) {
	db := newSyncTestDB(t)
	user := seedSyncUser(t, db)
	request := seedApprovedRequest(t, db, user, models.MealSelectionList{
		{PackageID: 21, PackageName: "congee set", MealType: constants.MealTypeBreakfast},
		{PackageID: 22, PackageName: "bento box", MealType: constants.MealTypeLunch},
	})

	svc := newSyncService(db, nil)
	stats, err := svc.Sync()
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if stats.Created != 1 {
		t.Fatalf("breakfast and lunch must merge into one record, stats: %+v", stats)
	}

	var assignment models.DeliveryAssignment
	if err := db.Where("assignment_key = ?", AssignmentKey(request.ID, constants.DeliveryWindowBreakfast)).
		First(&assignment).Error; err != nil {
		t.Fatalf("load merged assignment failed: %v", err)
	}
	if assignment.MealDescription != "congee set; bento box" {
		t.Fatalf("unexpected merged description: %s", assignment.MealDescription)
	}
	if assignment.PackageID == nil || *assignment.PackageID != 21 {
		t.Fatalf("merged record must reference the first selection, got %v", assignment.PackageID)
	}
	if assignment.DistanceKM != 0 {
		t.Fatalf("distance must be 0 without hub coordinates, got %v", assignment.DistanceKM)
	}
}

func TestSyncExtraDinnerSelectionsGetSuffixedKeys(t *testing.T) {
	db := newSyncTestDB(t)
	user := seedSyncUser(t, db)
	request := seedApprovedRequest(t, db, user, models.MealSelectionList{
		{PackageID: 31, PackageName: "dinner a", MealType: constants.MealTypeDinner},
		{PackageID: 32, PackageName: "dinner b", MealType: constants.MealTypeDinner},
	})

	svc := newSyncService(db, nil)
	if _, err := svc.Sync(); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	var assignments []models.DeliveryAssignment
	if err := db.Order("assignment_key asc").Find(&assignments).Error; err != nil {
		t.Fatalf("load assignments failed: %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("expected 2 dinner assignments, got %d", len(assignments))
	}
	if assignments[0].AssignmentKey != AssignmentKey(request.ID, "dinner") {
		t.Fatalf("unexpected first dinner key: %s", assignments[0].AssignmentKey)
	}
	if assignments[1].AssignmentKey != AssignmentKey(request.ID, "dinner-2") {
		t.Fatalf("unexpected second dinner key: %s", assignments[1].AssignmentKey)
	}
	for _, assignment := range assignments {
		if assignment.Window != constants.DeliveryWindowDinner {
			t.Fatalf("window column must stay dinner, got %s", assignment.Window)
		}
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	db := newSyncTestDB(t)
	user := seedSyncUser(t, db)
	seedApprovedRequest(t, db, user, models.MealSelectionList{
		{PackageID: 41, PackageName: "set a", MealType: constants.MealTypeBreakfast},
		{PackageID: 42, PackageName: "set b", MealType: constants.MealTypeDinner},
	})

	svc := newSyncService(db, nil)
	if _, err := svc.Sync(); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	stats, err := svc.Sync()
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if stats.Changed() {
		t.Fatalf("second run on unchanged input must commit nothing, stats: %+v", stats)
	}
}

func TestSyncPreservesCourierAndStatus(t *testing.T) {
	db := newSyncTestDB(t)
	user := seedSyncUser(t, db)
	request := seedApprovedRequest(t, db, user, models.MealSelectionList{
		{PackageID: 51, PackageName: "set a", MealType: constants.MealTypeDinner},
	})

	svc := newSyncService(db, nil)
	if _, err := svc.Sync(); err != nil {
		t.Fatalf("initial sync failed: %v", err)
	}

	courier := models.Courier{Name: "wang wu", IsActive: true}
	if err := db.Create(&courier).Error; err != nil {
		t.Fatalf("seed courier failed: %v", err)
	}
	key := AssignmentKey(request.ID, constants.DeliveryWindowDinner)
	if err := db.Model(&models.DeliveryAssignment{}).Where("assignment_key = ?", key).
		Updates(map[string]interface{}{
			"courier_id": courier.ID,
			"status":     constants.DeliveryStatusEnRoute,
		}).Error; err != nil {
		t.Fatalf("assign courier failed: %v", err)
	}

	request.Address = "new address 200"
	if err := db.Save(request).Error; err != nil {
		t.Fatalf("update subscription failed: %v", err)
	}

	stats, err := svc.Sync()
	if err != nil {
		t.Fatalf("resync failed: %v", err)
	}
	if stats.Updated != 1 || stats.Created != 0 || stats.Removed != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	var assignment models.DeliveryAssignment
	if err := db.Where("assignment_key = ?", key).First(&assignment).Error; err != nil {
		t.Fatalf("load assignment failed: %v", err)
	}
	if assignment.Address != "new address 200" {
		t.Fatalf("business field must follow the subscription, got %s", assignment.Address)
	}
	if assignment.CourierID == nil || *assignment.CourierID != courier.ID {
		t.Fatalf("sync must not clear courier assignment")
	}
	if assignment.Status != constants.DeliveryStatusEnRoute {
		t.Fatalf("sync must not reset delivery status, got %s", assignment.Status)
	}
}

func TestSyncRemovesStaleAndLegacyKeysOnly(t *testing.T) {
	db := newSyncTestDB(t)
	user := seedSyncUser(t, db)
	request := seedApprovedRequest(t, db, user, models.MealSelectionList{
		{PackageID: 61, PackageName: "set a", MealType: constants.MealTypeBreakfast},
	})

	// 历史遗留的独立午餐波次记录与人工录入的记录
	legacy := models.DeliveryAssignment{
		AssignmentKey:  AssignmentKey(request.ID, constants.DeliveryWindowLunch),
		SubscriptionID: request.ID,
		UserID:         user.ID,
		Window:         constants.DeliveryWindowLunch,
		Status:         constants.DeliveryStatusPending,
	}
	manual := models.DeliveryAssignment{
		AssignmentKey: "manual-1",
		UserID:        user.ID,
		Window:        constants.DeliveryWindowDinner,
		Status:        constants.DeliveryStatusPending,
	}
	if err := db.Create(&legacy).Error; err != nil {
		t.Fatalf("seed legacy assignment failed: %v", err)
	}
	if err := db.Create(&manual).Error; err != nil {
		t.Fatalf("seed manual assignment failed: %v", err)
	}

	svc := newSyncService(db, nil)
	stats, err := svc.Sync()
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if stats.Removed != 1 {
		t.Fatalf("expected exactly the legacy lunch record removed, stats: %+v", stats)
	}

	var count int64
	if err := db.Model(&models.DeliveryAssignment{}).
		Where("assignment_key = ?", legacy.AssignmentKey).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatal("legacy lunch record must be deleted")
	}
	if err := db.Model(&models.DeliveryAssignment{}).
		Where("assignment_key = ?", manual.AssignmentKey).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatal("manually keyed record must survive the sync")
	}
}

func TestSyncSkipsUnapprovedAndFullyPaused(t *testing.T) {
	db := newSyncTestDB(t)
	user := seedSyncUser(t, db)

	pending := seedApprovedRequest(t, db, user, models.MealSelectionList{
		{PackageID: 71, PackageName: "set a", MealType: constants.MealTypeBreakfast},
	})
	pending.Status = constants.SubscriptionStatusPending
	if err := db.Save(pending).Error; err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	paused := seedApprovedRequest(t, db, user, models.MealSelectionList{
		{PackageID: 72, PackageName: "set b", MealType: constants.MealTypeDinner},
	})
	paused.PausedMeals = models.StringArray{constants.MealTypeDinner}
	if err := db.Save(paused).Error; err != nil {
		t.Fatalf("pause meals failed: %v", err)
	}

	svc := newSyncService(db, nil)
	stats, err := svc.Sync()
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if stats.Changed() {
		t.Fatalf("neither request should produce assignments, stats: %+v", stats)
	}

	var count int64
	if err := db.Model(&models.DeliveryAssignment{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no assignments, got %d", count)
	}
}

func TestSyncContactAndGroupFallbacks(t *testing.T) {
	db := newSyncTestDB(t)
	user := seedSyncUser(t, db)
	request := seedApprovedRequest(t, db, user, models.MealSelectionList{
		{PackageID: 81, PackageName: "set a", MealType: constants.MealTypeDinner},
	})
	request.ContactName = ""
	request.ContactPhone = ""
	request.GroupLabel = ""
	if err := db.Save(request).Error; err != nil {
		t.Fatalf("clear contact fields failed: %v", err)
	}

	svc := newSyncService(db, nil)
	if _, err := svc.Sync(); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	var assignment models.DeliveryAssignment
	if err := db.Where("assignment_key = ?", AssignmentKey(request.ID, constants.DeliveryWindowDinner)).
		First(&assignment).Error; err != nil {
		t.Fatalf("load assignment failed: %v", err)
	}
	if assignment.CustomerName != user.DisplayName {
		t.Fatalf("contact name must fall back to the customer profile, got %s", assignment.CustomerName)
	}
	if assignment.Phone != user.Phone {
		t.Fatalf("phone must fall back to the customer profile, got %s", assignment.Phone)
	}
	if assignment.GroupName != constants.DeliveryGroupFallback {
		t.Fatalf("group name must fall back to %q, got %s", constants.DeliveryGroupFallback, assignment.GroupName)
	}
}

func TestSyncPicksUpHubCoordinateChanges(t *testing.T) {
	db := newSyncTestDB(t)
	user := seedSyncUser(t, db)
	request := seedApprovedRequest(t, db, user, models.MealSelectionList{
		{PackageID: 91, PackageName: "set a", MealType: constants.MealTypeDinner},
	})

	lat, lng := 31.2200, 121.4600
	hub := &fixedHub{lat: &lat, lng: &lng}
	svc := newSyncService(db, hub)

	if _, err := svc.Sync(); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}

	key := AssignmentKey(request.ID, constants.DeliveryWindowDinner)
	var before models.DeliveryAssignment
	if err := db.Where("assignment_key = ?", key).First(&before).Error; err != nil {
		t.Fatalf("load assignment failed: %v", err)
	}
	if before.DistanceKM <= 0 {
		t.Fatalf("expected positive hub distance, got %v", before.DistanceKM)
	}

	// 后台迁移配送中心后，下一轮同步应按新坐标重新计算距离
	newLat, newLng := 39.9042, 116.4074
	hub.lat = &newLat
	hub.lng = &newLng

	stats, err := svc.Sync()
	if err != nil {
		t.Fatalf("resync failed: %v", err)
	}
	if stats.Updated != 1 || stats.Created != 0 || stats.Removed != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	var after models.DeliveryAssignment
	if err := db.Where("assignment_key = ?", key).First(&after).Error; err != nil {
		t.Fatalf("reload assignment failed: %v", err)
	}
	if after.DistanceKM == before.DistanceKM {
		t.Fatalf("distance must follow the relocated hub, still %v", after.DistanceKM)
	}
}
