package validation

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestName(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"Ana", false},
		{"José", false},
		{"Müller", false},
		{"Ana1", true},
		{"", true},
		{"Ana Maria", true},
		{"O'Brien", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			err := Name(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Name(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("Name(%q) error = %v, want ErrInvalidName", tt.in, err)
			}
		})
	}
}

func TestDigitFields(t *testing.T) {
	tests := []struct {
		name    string
		check   func(string) error
		wantErr error
	}{
		{"ID", ID, ErrInvalidID},
		{"Document", Document, ErrInvalidDocument},
		{"Phone", Phone, ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, ok := range []string{"0", "42", "0012345"} {
				if err := tt.check(ok); err != nil {
					t.Errorf("%s(%q) = %v, want nil", tt.name, ok, err)
				}
			}
			for _, bad := range []string{"", "12a", "-1", "1.0", " 12", "١٢"} {
				if err := tt.check(bad); !errors.Is(err, tt.wantErr) {
					t.Errorf("%s(%q) = %v, want %v", tt.name, bad, err, tt.wantErr)
				}
			}
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2000-01-01", false},
		{"2024-02-29", false},
		{"2023-02-29", true},
		{"2000-13-01", true},
		{"2000-1-1", true},
		{"01/01/2000", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := Date(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Date(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Date(%q) error = %v, want ErrInvalidDate", tt.in, err)
			}
		})
	}
}

func TestAge(t *testing.T) {
	now := date(2026, time.June, 15)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday today", date(2008, time.June, 15), 18},
		{"birthday tomorrow", date(2008, time.June, 16), 17},
		{"birthday yesterday", date(2008, time.June, 14), 18},
		{"later month", date(2008, time.July, 1), 17},
		{"earlier month", date(2008, time.May, 31), 18},
		{"born this year", date(2026, time.January, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Age(tt.birth, now); got != tt.want {
				t.Errorf("Age(%s) = %d, want %d", tt.birth.Format(DateLayout), got, tt.want)
			}
		})
	}
}

func TestAge_LeapDay(t *testing.T) {
	birth := date(2008, time.February, 29)

	if got := Age(birth, date(2026, time.February, 28)); got != 17 {
		t.Errorf("Age on Feb 28 = %d, want 17", got)
	}
	if got := Age(birth, date(2026, time.March, 1)); got != 18 {
		t.Errorf("Age on Mar 1 = %d, want 18", got)
	}
}

func TestBirthDate(t *testing.T) {
	now := date(2026, time.June, 15)

	if err := BirthDate("2008-06-15", now); err != nil {
		t.Errorf("exactly 18: got %v, want nil", err)
	}
	if err := BirthDate("2008-06-16", now); !errors.Is(err, ErrUnderage) {
		t.Errorf("exactly 17: got %v, want ErrUnderage", err)
	}
	if err := BirthDate("2008-6-16", now); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("bad format: got %v, want ErrInvalidDate", err)
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"10", false},
		{"10.5", false},
		{"0", false},
		{".5", false},
		{"5.", false},
		{"", true},
		{".", true},
		{"1.2.3", true},
		{"-5", true},
		{"1e3", true},
		{"1,000", true},
		{" 5", true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			err := Amount(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Amount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("Amount(%q) error = %v, want ErrInvalidAmount", tt.in, err)
			}
		})
	}
}

// The age gate depends only on whole years and the (month, day) tie-break.
func TestAge_MatchesYearArithmetic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		birth := date(
			rapid.IntRange(1900, 2100).Draw(t, "year"),
			time.Month(rapid.IntRange(1, 12).Draw(t, "month")),
			rapid.IntRange(1, 28).Draw(t, "day"),
		)
		years := rapid.IntRange(0, 120).Draw(t, "years")

		anniversary := birth.AddDate(years, 0, 0)
		if got := Age(birth, anniversary); got != years {
			t.Fatalf("Age on anniversary = %d, want %d", got, years)
		}
		if got := Age(birth, anniversary.AddDate(0, 0, -1)); years > 0 && got != years-1 {
			t.Fatalf("Age day before anniversary = %d, want %d", got, years-1)
		}
	})
}
