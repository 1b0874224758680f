package search

import (
	"reflect"
	"testing"
)

func TestCaseVariantsLowercaseInput(t *testing.T) {
	got := CaseVariants("mc")
	want := []string{"mc", "MC", "Mc"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestCaseVariantsMultiWord(t *testing.T) {
	got := CaseVariants("zhang san")
	want := []string{"zhang san", "ZHANG SAN", "Zhang san", "Zhang San"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestCaseVariantsMixedCaseKeepsOriginal(t *testing.T) {
	got := CaseVariants("McC")
	if got[0] != "McC" {
		t.Fatalf("expected original first, got %v", got)
	}
	seen := map[string]bool{}
	for _, variant := range got {
		if seen[variant] {
			t.Fatalf("duplicate variant %q in %v", variant, got)
		}
		seen[variant] = true
	}
}

func TestCaseVariantsEmpty(t *testing.T) {
	if got := CaseVariants(""); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
