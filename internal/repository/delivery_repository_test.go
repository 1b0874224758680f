package repository

import (
	"testing"

	"github.com/dingcan-next/internal/constants"
	"github.com/dingcan-next/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newDeliveryRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:deliveryrepo?mode=memory&cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.DeliveryAssignment{}, &models.Courier{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&models.DeliveryAssignment{}).Error; err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	return db
}

func seedAssignment(t *testing.T, db *gorm.DB, key, window, status string) models.DeliveryAssignment {
	t.Helper()
	assignment := models.DeliveryAssignment{
		AssignmentKey: key,
		UserID:        1,
		Window:        window,
		Status:        status,
	}
	if err := db.Create(&assignment).Error; err != nil {
		t.Fatalf("seed assignment failed: %v", err)
	}
	return assignment
}

func TestDeliveryListFilterByWindow(t *testing.T) {
	db := newDeliveryRepoDB(t)
	seedAssignment(t, db, "sub-1-breakfast", constants.DeliveryWindowBreakfast, constants.DeliveryStatusPending)
	seedAssignment(t, db, "sub-1-dinner", constants.DeliveryWindowDinner, constants.DeliveryStatusPending)
	seedAssignment(t, db, "sub-2-dinner", constants.DeliveryWindowDinner, constants.DeliveryStatusAssigned)

	repo := NewDeliveryRepository(db)

	assignments, total, err := repo.List(DeliveryAssignmentListFilter{Window: constants.DeliveryWindowDinner})
	if err != nil {
		t.Fatalf("list by window failed: %v", err)
	}
	if total != 2 || len(assignments) != 2 {
		t.Fatalf("expected 2 dinner assignments, got total=%d len=%d", total, len(assignments))
	}
	for _, assignment := range assignments {
		if assignment.Window != constants.DeliveryWindowDinner {
			t.Fatalf("unexpected window in result: %s", assignment.Window)
		}
	}

	assignments, total, err = repo.List(DeliveryAssignmentListFilter{
		Window: constants.DeliveryWindowDinner,
		Status: constants.DeliveryStatusAssigned,
	})
	if err != nil {
		t.Fatalf("list by window and status failed: %v", err)
	}
	if total != 1 || len(assignments) != 1 {
		t.Fatalf("expected 1 assigned dinner, got total=%d len=%d", total, len(assignments))
	}
	if assignments[0].AssignmentKey != "sub-2-dinner" {
		t.Fatalf("unexpected assignment: %s", assignments[0].AssignmentKey)
	}
}
