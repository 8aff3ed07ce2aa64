package registry

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/google/uuid"

	"github.com/mmynk/clubledger/internal/models"
	"github.com/mmynk/clubledger/internal/validation"
)

// PaymentInput holds the raw fields of a payment as entered.
type PaymentInput struct {
	PaymentID string
	UserID    string
	Amount    string
	Date      string
}

// PaymentStore is the payment table.
type PaymentStore struct {
	payments []models.Payment
}

// NewPaymentStore creates an empty payment table.
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{}
}

// Load replaces the table contents with records read from storage.
func (s *PaymentStore) Load(payments []models.Payment) {
	s.payments = slices.Clone(payments)
}

// CheckID validates a candidate payment id. A blank id is accepted and
// replaced with a generated one on Add.
func (s *PaymentStore) CheckID(paymentID string) error {
	if paymentID != "" && s.Exists(paymentID) {
		return fmt.Errorf("%w: payment %s", validation.ErrDuplicateID, paymentID)
	}
	return nil
}

// CheckMember validates that the paying member is currently registered.
func CheckMember(userID string, members *MemberStore) error {
	if !members.Exists(userID) {
		return fmt.Errorf("%w: %q", validation.ErrUnknownMember, userID)
	}
	return nil
}

// ParseAmount validates and converts an amount.
func ParseAmount(amount string) (float64, error) {
	if err := validation.Amount(amount); err != nil {
		return 0, fmt.Errorf("%w: %q", err, amount)
	}
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", validation.ErrInvalidAmount, amount)
	}
	return v, nil
}

// Add validates the input against the payment table and the current member
// table, then appends the payment.
func (s *PaymentStore) Add(input PaymentInput, members *MemberStore) (models.Payment, error) {
	if err := s.CheckID(input.PaymentID); err != nil {
		return models.Payment{}, err
	}
	if err := CheckMember(input.UserID, members); err != nil {
		return models.Payment{}, err
	}
	amount, err := ParseAmount(input.Amount)
	if err != nil {
		return models.Payment{}, err
	}
	if err := validation.Date(input.Date); err != nil {
		return models.Payment{}, fmt.Errorf("%w: %q", err, input.Date)
	}

	payment := models.Payment{
		PaymentID: input.PaymentID,
		UserID:    input.UserID,
		Amount:    amount,
		Date:      input.Date,
	}
	if payment.PaymentID == "" {
		payment.PaymentID = uuid.New().String()
	}

	s.payments = append(s.payments, payment)
	return payment, nil
}

// Remove deletes the payment with the given id. Removing an unknown id is a
// no-op; the result reports whether a record was deleted.
func (s *PaymentStore) Remove(paymentID string) bool {
	before := len(s.payments)
	s.payments = slices.DeleteFunc(s.payments, func(p models.Payment) bool {
		return p.PaymentID == paymentID
	})
	return len(s.payments) != before
}

// RemoveByMember deletes every payment made by the given member and returns
// how many were removed.
func (s *PaymentStore) RemoveByMember(userID string) int {
	before := len(s.payments)
	s.payments = slices.DeleteFunc(s.payments, func(p models.Payment) bool {
		return p.UserID == userID
	})
	return before - len(s.payments)
}

// Exists reports whether a payment with the given id is in the table.
func (s *PaymentStore) Exists(paymentID string) bool {
	return slices.ContainsFunc(s.payments, func(p models.Payment) bool {
		return p.PaymentID == paymentID
	})
}

// ByMember returns the payments made by a member, in insertion order.
func (s *PaymentStore) ByMember(userID string) []models.Payment {
	var out []models.Payment
	for _, p := range s.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// All returns a copy of the table in insertion order.
func (s *PaymentStore) All() []models.Payment {
	return slices.Clone(s.payments)
}

// Len returns the number of payments.
func (s *PaymentStore) Len() int {
	return len(s.payments)
}
