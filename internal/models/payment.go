package models

// Payment represents a single payment made by a member.
type Payment struct {
	// PaymentID is the unique identifier for the payment.
	// Entered by the operator, or a generated UUID when left blank.
	PaymentID string

	// UserID references the paying member. It is checked against the member
	// table only when the payment is added.
	UserID string

	// Amount is the non-negative payment amount.
	Amount float64

	// Date is the ISO calendar date (YYYY-MM-DD) of the payment.
	Date string
}

// PaymentColumns lists the payment fields in persisted column order.
var PaymentColumns = []string{
	"payment_id",
	"user_id",
	"amount",
	"date",
}

// JoinedRow is one row of the member/payment inner join: a member's fields
// followed by one of that member's payments. UserID appears once.
type JoinedRow struct {
	Member

	PaymentID string
	Amount    float64
	Date      string
}

