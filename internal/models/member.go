package models

// Member represents a registered club member.
type Member struct {
	// UserID is the unique identifier for the member (digits only).
	UserID string

	// FirstName and LastName contain letters only.
	FirstName string
	LastName  string

	// DocumentNumber is the member's identity document number (digits only).
	DocumentNumber string

	// BirthDate is the ISO calendar date (YYYY-MM-DD) the member was born.
	// The member was at least 18 years old when the record was added.
	BirthDate string

	// Phone is the contact number (digits only).
	Phone string

	// Address is free text and never validated.
	Address string
}

// MemberColumns lists the member fields in persisted column order.
var MemberColumns = []string{
	"user_id",
	"first_name",
	"last_name",
	"document_number",
	"birth_date",
	"phone",
	"address",
}

// Fields returns the member's values in MemberColumns order.
func (m Member) Fields() []string {
	return []string{m.UserID, m.FirstName, m.LastName, m.DocumentNumber, m.BirthDate, m.Phone, m.Address}
}

// MemberFromFields builds a Member from values in MemberColumns order.
// It returns false when the number of values does not match.
func MemberFromFields(fields []string) (Member, bool) {
	if len(fields) != len(MemberColumns) {
		return Member{}, false
	}
	return Member{
		UserID:         fields[0],
		FirstName:      fields[1],
		LastName:       fields[2],
		DocumentNumber: fields[3],
		BirthDate:      fields[4],
		Phone:          fields[5],
		Address:        fields[6],
	}, true
}
