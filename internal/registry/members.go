// Package registry holds the in-memory member and payment tables.
//
// Each store owns its ordered records and validates candidates before
// appending them. Add is single-shot: it fails fast with an error wrapping
// one of the validation sentinels, and the caller decides whether to ask
// again.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mmynk/clubledger/internal/models"
	"github.com/mmynk/clubledger/internal/validation"
)

// SortField names a member field the table can be sorted by.
type SortField string

const (
	SortByFirstName SortField = "first_name"
	SortByLastName  SortField = "last_name"
	SortByBirthDate SortField = "birth_date"
)

// ParseSortField converts a field token into a SortField.
func ParseSortField(token string) (SortField, error) {
	switch f := SortField(token); f {
	case SortByFirstName, SortByLastName, SortByBirthDate:
		return f, nil
	}
	return "", fmt.Errorf("%w: sort field %q", validation.ErrInvalidOption, token)
}

// MemberStore is the member table.
type MemberStore struct {
	members []models.Member
	now     func() time.Time
}

// Option configures a MemberStore.
type Option func(*MemberStore)

// WithClock sets the clock used for the age check.
func WithClock(now func() time.Time) Option {
	return func(s *MemberStore) {
		s.now = now
	}
}

// NewMemberStore creates an empty member table.
func NewMemberStore(opts ...Option) *MemberStore {
	s := &MemberStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the table contents with records read from storage.
// Stored records are trusted and not re-validated.
func (s *MemberStore) Load(members []models.Member) {
	s.members = slices.Clone(members)
}

// CheckID validates a candidate user id: digits only, not yet taken.
func (s *MemberStore) CheckID(userID string) error {
	if err := validation.ID(userID); err != nil {
		return fmt.Errorf("%w: %q", err, userID)
	}
	if s.Exists(userID) {
		return fmt.Errorf("%w: user %s", validation.ErrDuplicateID, userID)
	}
	return nil
}

// CheckBirthDate validates a birth date against the store's clock.
func (s *MemberStore) CheckBirthDate(birthDate string) error {
	if err := validation.BirthDate(birthDate, s.now()); err != nil {
		return fmt.Errorf("%w: %q", err, birthDate)
	}
	return nil
}

// Add validates the candidate and appends it to the table.
func (s *MemberStore) Add(candidate models.Member) (models.Member, error) {
	if err := s.CheckID(candidate.UserID); err != nil {
		return models.Member{}, err
	}
	if err := validation.Name(candidate.FirstName); err != nil {
		return models.Member{}, fmt.Errorf("%w: first name %q", err, candidate.FirstName)
	}
	if err := validation.Name(candidate.LastName); err != nil {
		return models.Member{}, fmt.Errorf("%w: last name %q", err, candidate.LastName)
	}
	if err := validation.Document(candidate.DocumentNumber); err != nil {
		return models.Member{}, fmt.Errorf("%w: %q", err, candidate.DocumentNumber)
	}
	if err := s.CheckBirthDate(candidate.BirthDate); err != nil {
		return models.Member{}, err
	}
	if err := validation.Phone(candidate.Phone); err != nil {
		return models.Member{}, fmt.Errorf("%w: %q", err, candidate.Phone)
	}

	s.members = append(s.members, candidate)
	return candidate, nil
}

// Remove deletes the member with the given id. Removing an unknown id is a
// no-op; the result reports whether a record was deleted.
func (s *MemberStore) Remove(userID string) bool {
	before := len(s.members)
	s.members = slices.DeleteFunc(s.members, func(m models.Member) bool {
		return m.UserID == userID
	})
	return len(s.members) != before
}

// Exists reports whether a member with the given id is in the table.
func (s *MemberStore) Exists(userID string) bool {
	_, ok := s.Get(userID)
	return ok
}

// Get returns the member with the given id.
func (s *MemberStore) Get(userID string) (models.Member, bool) {
	i := slices.IndexFunc(s.members, func(m models.Member) bool {
		return m.UserID == userID
	})
	if i < 0 {
		return models.Member{}, false
	}
	return s.members[i], true
}

// All returns a copy of the table in insertion order.
func (s *MemberStore) All() []models.Member {
	return slices.Clone(s.members)
}

// Len returns the number of members.
func (s *MemberStore) Len() int {
	return len(s.members)
}

// Sorted returns a copy of the table ordered ascending by field.
// Equal keys keep insertion order.
func (s *MemberStore) Sorted(field SortField) ([]models.Member, error) {
	var key func(models.Member) string
	switch field {
	case SortByFirstName:
		key = func(m models.Member) string { return m.FirstName }
	case SortByLastName:
		key = func(m models.Member) string { return m.LastName }
	case SortByBirthDate:
		// ISO dates order chronologically as strings.
		key = func(m models.Member) string { return m.BirthDate }
	default:
		return nil, fmt.Errorf("%w: sort field %q", validation.ErrInvalidOption, field)
	}

	sorted := slices.Clone(s.members)
	slices.SortStableFunc(sorted, func(a, b models.Member) int {
		return cmp.Compare(key(a), key(b))
	})
	return sorted, nil
}

// Search finds members by exact user id or document number, or by a
// case-insensitive substring of the first or last name. Results keep
// insertion order. A blank query matches nothing.
func (s *MemberStore) Search(query string) []models.Member {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var found []models.Member
	for _, m := range s.members {
		if m.UserID == query || m.DocumentNumber == query ||
			strings.Contains(strings.ToLower(m.FirstName), needle) ||
			strings.Contains(strings.ToLower(m.LastName), needle) {
			found = append(found, m)
		}
	}
	return found
}
