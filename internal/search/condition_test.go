package search

import (
	"testing"
	"time"
)

func TestBuildConditionsTextPrefixRange(t *testing.T) {
	field := Field{Name: "customer_name", Type: FieldTypeText}
	conditions, ok := BuildConditions(field, "wang")
	if !ok {
		t.Fatal("expected ok")
	}
	if len(conditions) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(conditions))
	}
	if conditions[0].Op != OpGreaterEqual || conditions[0].Value != "wang" {
		t.Fatalf("unexpected lower bound: %+v", conditions[0])
	}
	if conditions[1].Op != OpLess || conditions[1].Value != "wang"+prefixUpperBound {
		t.Fatalf("unexpected upper bound: %+v", conditions[1])
	}
}

func TestBuildConditionsNumberExact(t *testing.T) {
	field := Field{Name: "distance_km", Type: FieldTypeNumber}
	conditions, ok := BuildConditions(field, "12.5")
	if !ok {
		t.Fatal("expected ok")
	}
	if len(conditions) != 1 || conditions[0].Op != OpEqual {
		t.Fatalf("unexpected conditions: %+v", conditions)
	}
	if conditions[0].Value != 12.5 {
		t.Fatalf("expected float 12.5, got %v", conditions[0].Value)
	}
}

func TestBuildConditionsNumberUnparseable(t *testing.T) {
	field := Field{Name: "distance_km", Type: FieldTypeNumber}
	conditions, ok := BuildConditions(field, "abc")
	if ok {
		t.Fatal("expected not ok for unparseable number")
	}
	if conditions != nil {
		t.Fatalf("expected nil conditions, got %+v", conditions)
	}
}

func TestBuildConditionsDateDayRange(t *testing.T) {
	field := Field{Name: "start_date", Type: FieldTypeDate}
	conditions, ok := BuildConditions(field, "2026-08-25")
	if !ok {
		t.Fatal("expected ok")
	}
	if len(conditions) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(conditions))
	}
	start := conditions[0].Value.(time.Time)
	end := conditions[1].Value.(time.Time)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected day start at midnight, got %v", start)
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected next-day upper bound, got %v", end)
	}
	inside := start.Add(23*time.Hour + 59*time.Minute)
	if inside.Before(start) || !inside.Before(end) {
		t.Fatalf("expected late evening inside range: %v", inside)
	}
}

func TestBuildConditionsEnumEquality(t *testing.T) {
	field := Field{Name: "status", Type: FieldTypeEnum}
	conditions, ok := BuildConditions(field, "approved")
	if !ok {
		t.Fatal("expected ok")
	}
	if len(conditions) != 1 || conditions[0].Op != OpEqual || conditions[0].Value != "approved" {
		t.Fatalf("unexpected conditions: %+v", conditions)
	}
}

func TestBuildConditionsEmptyInput(t *testing.T) {
	field := Field{Name: "status", Type: FieldTypeEnum}
	conditions, ok := BuildConditions(field, "")
	if !ok || conditions != nil {
		t.Fatalf("expected no conditions for empty input, got %+v ok=%v", conditions, ok)
	}
}
