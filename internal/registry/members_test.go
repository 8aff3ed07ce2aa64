package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/clubledger/internal/models"
	"github.com/mmynk/clubledger/internal/validation"
)

var fixedNow = time.Date(2026, time.June, 15, 10, 30, 0, 0, time.UTC)

func newTestMembers() *MemberStore {
	return NewMemberStore(WithClock(func() time.Time { return fixedNow }))
}

func validMember(id string) models.Member {
	return models.Member{
		UserID:         id,
		FirstName:      "Ana",
		LastName:       "Lopez",
		DocumentNumber: "30111222",
		BirthDate:      "1990-05-01",
		Phone:          "5491155550000",
		Address:        "Av. Siempre Viva 742",
	}
}

func TestMemberStore_Add(t *testing.T) {
	s := newTestMembers()

	added, err := s.Add(validMember("1"))
	require.NoError(t, err)
	assert.Equal(t, validMember("1"), added)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Exists("1"))
}

func TestMemberStore_AddRejectsDuplicateID(t *testing.T) {
	s := newTestMembers()

	_, err := s.Add(validMember("7"))
	require.NoError(t, err)

	second := validMember("7")
	second.FirstName = "Bruno"
	_, err = s.Add(second)
	assert.ErrorIs(t, err, validation.ErrDuplicateID)
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get("7")
	require.True(t, ok)
	assert.Equal(t, "Ana", got.FirstName)
}

func TestMemberStore_AddValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Member)
		wantErr error
	}{
		{"non-digit id", func(m *models.Member) { m.UserID = "A1" }, validation.ErrInvalidID},
		{"empty id", func(m *models.Member) { m.UserID = "" }, validation.ErrInvalidID},
		{"bad first name", func(m *models.Member) { m.FirstName = "Ana1" }, validation.ErrInvalidName},
		{"empty last name", func(m *models.Member) { m.LastName = "" }, validation.ErrInvalidName},
		{"bad document", func(m *models.Member) { m.DocumentNumber = "30.111.222" }, validation.ErrInvalidDocument},
		{"bad date", func(m *models.Member) { m.BirthDate = "1990/05/01" }, validation.ErrInvalidDate},
		{"underage", func(m *models.Member) { m.BirthDate = "2008-06-16" }, validation.ErrUnderage},
		{"bad phone", func(m *models.Member) { m.Phone = "+54 11" }, validation.ErrInvalidPhone},
		{
			"first failing field wins",
			func(m *models.Member) { m.FirstName = "9"; m.Phone = "x" },
			validation.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestMembers()
			m := validMember("1")
			tt.mutate(&m)

			_, err := s.Add(m)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, s.Len(), "rejected member must not be stored")
		})
	}
}

func TestMemberStore_AgeBoundary(t *testing.T) {
	s := newTestMembers()

	eighteen := validMember("1")
	eighteen.BirthDate = "2008-06-15"
	_, err := s.Add(eighteen)
	assert.NoError(t, err, "exactly 18 today must be accepted")

	seventeen := validMember("2")
	seventeen.BirthDate = "2008-06-16"
	_, err = s.Add(seventeen)
	assert.ErrorIs(t, err, validation.ErrUnderage, "18th birthday tomorrow must be rejected")
}

func TestMemberStore_AddressIsFreeText(t *testing.T) {
	s := newTestMembers()

	m := validMember("1")
	m.Address = ""
	_, err := s.Add(m)
	assert.NoError(t, err)
}

func TestMemberStore_Remove(t *testing.T) {
	s := newTestMembers()
	for _, id := range []string{"1", "2", "3"} {
		_, err := s.Add(validMember(id))
		require.NoError(t, err)
	}

	assert.True(t, s.Remove("2"))
	assert.Equal(t, []string{"1", "3"}, ids(s.All()))

	assert.False(t, s.Remove("99"), "unknown id is a no-op")
	assert.Equal(t, []string{"1", "3"}, ids(s.All()))
}

func TestMemberStore_Sorted(t *testing.T) {
	s := newTestMembers()
	for _, m := range []models.Member{
		{UserID: "1", FirstName: "Carla", LastName: "Zapata", BirthDate: "1990-05-01"},
		{UserID: "2", FirstName: "Ana", LastName: "Mendez", BirthDate: "1985-12-31"},
		{UserID: "3", FirstName: "Bruno", LastName: "Alvarez", BirthDate: "2000-01-01"},
	} {
		m.DocumentNumber, m.Phone = "1", "1"
		_, err := s.Add(m)
		require.NoError(t, err)
	}

	t.Run("by birth date", func(t *testing.T) {
		sorted, err := s.Sorted(SortByBirthDate)
		require.NoError(t, err)
		var dates []string
		for _, m := range sorted {
			dates = append(dates, m.BirthDate)
		}
		assert.Equal(t, []string{"1985-12-31", "1990-05-01", "2000-01-01"}, dates)
	})

	t.Run("by first name", func(t *testing.T) {
		sorted, err := s.Sorted(SortByFirstName)
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "3", "1"}, ids(sorted))
	})

	t.Run("by last name", func(t *testing.T) {
		sorted, err := s.Sorted(SortByLastName)
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "2", "1"}, ids(sorted))
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := s.Sorted(SortField("phone"))
		assert.ErrorIs(t, err, validation.ErrInvalidOption)
	})

	t.Run("table order untouched", func(t *testing.T) {
		assert.Equal(t, []string{"1", "2", "3"}, ids(s.All()))
	})
}

func TestMemberStore_SortedIsStable(t *testing.T) {
	s := newTestMembers()
	for _, id := range []string{"5", "3", "9"} {
		_, err := s.Add(validMember(id))
		require.NoError(t, err)
	}

	sorted, err := s.Sorted(SortByFirstName)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "3", "9"}, ids(sorted))
}

func TestParseSortField(t *testing.T) {
	for _, token := range []string{"first_name", "last_name", "birth_date"} {
		f, err := ParseSortField(token)
		require.NoError(t, err)
		assert.Equal(t, SortField(token), f)
	}

	_, err := ParseSortField("address")
	assert.ErrorIs(t, err, validation.ErrInvalidOption)
}

func TestMemberStore_Search(t *testing.T) {
	s := newTestMembers()
	for _, m := range []models.Member{
		{UserID: "10", FirstName: "Ana", LastName: "Lopez", DocumentNumber: "111"},
		{UserID: "11", FirstName: "Mariana", LastName: "Diaz", DocumentNumber: "222"},
		{UserID: "12", FirstName: "Bruno", LastName: "Anaya", DocumentNumber: "10"},
	} {
		m.BirthDate, m.Phone = "1980-01-01", "1"
		_, err := s.Add(m)
		require.NoError(t, err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"ana", []string{"10", "11", "12"}},
		{"LOPEZ", []string{"10"}},
		{"222", []string{"11"}},
		{"10", []string{"10", "12"}},
		{"zz", nil},
		{"  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(s.Search(tt.query)))
		})
	}
}

func TestMemberStore_AllReturnsCopy(t *testing.T) {
	s := newTestMembers()
	_, err := s.Add(validMember("1"))
	require.NoError(t, err)

	all := s.All()
	all[0].FirstName = "Changed"

	got, _ := s.Get("1")
	assert.Equal(t, "Ana", got.FirstName)
}

func ids(members []models.Member) []string {
	var out []string
	for _, m := range members {
		out = append(out, m.UserID)
	}
	return out
}
