package schedule

import (
	"reflect"
	"testing"
)

func TestCatalog_CanonicalOrder(t *testing.T) {
	want := []string{
		"10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	}
	got := Catalog()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Catalog() = %v, want %v", got, want)
	}
}

func TestCatalog_ExcludesLunch(t *testing.T) {
	for _, s := range Catalog() {
		if s == "13:00" || s == "13:30" {
			t.Fatalf("catalog contains lunch slot %q", s)
		}
	}
}

func TestCatalog_ReturnsFreshSlice(t *testing.T) {
	a := Catalog()
	a[0] = "mutated"
	if b := Catalog(); b[0] != "10:00" {
		t.Fatalf("Catalog() shares backing array across calls: %v", b[0])
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		label string
		want  bool
	}{
		{"10:00", true},
		{"16:30", true},
		{"13:00", false}, // lunch
		{"13:30", false}, // lunch
		{"10:15", false}, // off-grid minute
		{"09:30", false}, // before opening
		{"17:00", false}, // after closing
		{"", false},
		{"1000", false},
	}
	for _, tc := range cases {
		if got := Contains(tc.label); got != tc.want {
			t.Errorf("Contains(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}
