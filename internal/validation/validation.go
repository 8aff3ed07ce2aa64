// Package validation provides the pure field validators used by the member
// and payment stores, and the errors they reject with.
package validation

import (
	"errors"
	"time"
	"unicode"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// AdultAge is the minimum age, in whole years, for a new member.
const AdultAge = 18

var (
	ErrInvalidID       = errors.New("id must contain only digits")
	ErrDuplicateID     = errors.New("id already exists")
	ErrInvalidName     = errors.New("name must contain only letters")
	ErrInvalidDocument = errors.New("document number must contain only digits")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrUnderage        = errors.New("member must be at least 18 years old")
	ErrInvalidPhone    = errors.New("phone number must contain only digits")
	ErrUnknownMember   = errors.New("user id does not exist")
	ErrInvalidAmount   = errors.New("amount must be a non-negative number")
	ErrInvalidOption   = errors.New("invalid option")
)

var rejections = []error{
	ErrInvalidID,
	ErrDuplicateID,
	ErrInvalidName,
	ErrInvalidDocument,
	ErrInvalidDate,
	ErrUnderage,
	ErrInvalidPhone,
	ErrUnknownMember,
	ErrInvalidAmount,
	ErrInvalidOption,
}

// IsRejection reports whether err wraps one of the validation errors above.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsAlpha reports whether s is non-empty and made of letters only.
// Letters outside ASCII (José, Müller) are accepted.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ID checks a member id.
func ID(s string) error {
	if !IsDigits(s) {
		return ErrInvalidID
	}
	return nil
}

// Name checks a first or last name.
func Name(s string) error {
	if !IsAlpha(s) {
		return ErrInvalidName
	}
	return nil
}

// Document checks a document number.
func Document(s string) error {
	if !IsDigits(s) {
		return ErrInvalidDocument
	}
	return nil
}

// Phone checks a phone number.
func Phone(s string) error {
	if !IsDigits(s) {
		return ErrInvalidPhone
	}
	return nil
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Date checks an ISO calendar date.
func Date(s string) error {
	_, err := ParseDate(s)
	return err
}

// Age returns the age in whole years on the date now for someone born on
// birth. A birthday not yet reached this year (by month and day) subtracts
// one.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// BirthDate checks that s is an ISO date and that the person is at least
// AdultAge years old on the date now.
func BirthDate(s string, now time.Time) error {
	birth, err := ParseDate(s)
	if err != nil {
		return err
	}
	if Age(birth, now) < AdultAge {
		return ErrUnderage
	}
	return nil
}

// Amount checks a payment amount: digits with at most one decimal point,
// and at least one digit. Signs, exponents and separators are rejected.
func Amount(s string) error {
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return ErrInvalidAmount
		}
	}
	if digits == 0 || dots > 1 {
		return ErrInvalidAmount
	}
	return nil
}
