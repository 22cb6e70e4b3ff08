package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-01-15"); !ok {
		t.Errorf("IsValidDate(2026-01-15) = false, want true")
	}
	for _, bad := range []string{"2026-13-01", "15-01-2026", "not-a-date", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidCoordinates(t *testing.T) {
	if !IsValidLatitude(12.97) || !IsValidLatitude(-90) || !IsValidLatitude(90) {
		t.Error("expected in-range latitudes to be valid")
	}
	if IsValidLatitude(90.1) || IsValidLatitude(-91) {
		t.Error("expected out-of-range latitudes to be invalid")
	}
	if !IsValidLongitude(77.59) || !IsValidLongitude(-180) || !IsValidLongitude(180) {
		t.Error("expected in-range longitudes to be valid")
	}
	if IsValidLongitude(180.5) || IsValidLongitude(-181) {
		t.Error("expected out-of-range longitudes to be invalid")
	}
}

func TestIsValidDateRange(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	if !IsValidDateRange(from, to) {
		t.Error("expected from <= to range to be valid")
	}
	if !IsValidDateRange(from, from) {
		t.Error("expected single-day range to be valid")
	}
	if IsValidDateRange(to, from) {
		t.Error("expected inverted range to be invalid")
	}
}
