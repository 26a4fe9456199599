package analytics

import (
	"math"
	"testing"
	"time"
)

func TestAgeInYears_InvalidInputsAreZero(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-date", "2025/01/01", "2030-01-01"} {
		if got := AgeInYears(in, testNow); got != 0 {
			t.Fatalf("AgeInYears(%q) = %v, want 0", in, got)
		}
	}
}

func TestAgeInYears_Layouts(t *testing.T) {
	cases := []string{
		"2022-06-15",
		"2022-06-15T12:00:00Z",
		"2022-06-15T12:00:00.000Z",
		"2022-06-15T12:00:00",
		"2022-06-15 12:00:00",
	}
	for _, in := range cases {
		got := AgeInYears(in, testNow)
		if got < 2.99 || got > 3.01 {
			t.Fatalf("AgeInYears(%q) = %v, want ~3", in, got)
		}
	}
}

func TestAgeInYears_UsesJulianYear(t *testing.T) {
	born := testNow.Add(-time.Duration(365.25*24) * time.Hour)
	got := AgeInYears(born.Format(time.RFC3339), testNow)
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected exactly 1 year, got %v", got)
	}
}

func TestParseBirthDate(t *testing.T) {
	if _, ok := ParseBirthDate(" "); ok {
		t.Fatalf("blank should not parse")
	}
	bd, ok := ParseBirthDate(" 2020-02-29 ")
	if !ok || bd.Year() != 2020 || bd.Month() != time.February || bd.Day() != 29 {
		t.Fatalf("unexpected parse: %v ok=%v", bd, ok)
	}
}
