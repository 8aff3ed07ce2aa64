package calculator

import "github.com/mmynk/clubledger/internal/models"

// MemberTotal summarizes the payments of one member.
type MemberTotal struct {
	UserID    string
	FirstName string
	LastName  string
	Payments  int     // Number of payments
	Total     float64 // Sum of payment amounts
	LastPaid  string  // Latest payment date (ISO), empty if none
}

// Totals aggregates joined member/payment rows per member.
//
// Algorithm:
// - Each row adds its amount to its member's total and bumps the count
// - LastPaid keeps the greatest ISO date seen (string order is date order)
// - Output follows the order in which members first appear in rows
func Totals(rows []models.JoinedRow) []MemberTotal {
	index := make(map[string]int)
	var totals []MemberTotal

	for _, row := range rows {
		i, exists := index[row.UserID]
		if !exists {
			i = len(totals)
			index[row.UserID] = i
			totals = append(totals, MemberTotal{
				UserID:    row.UserID,
				FirstName: row.FirstName,
				LastName:  row.LastName,
			})
		}

		t := &totals[i]
		t.Payments++
		t.Total += row.Amount
		if row.Date > t.LastPaid {
			t.LastPaid = row.Date
		}
	}

	return totals
}

// GrandTotal sums the totals of all members.
func GrandTotal(totals []MemberTotal) float64 {
	var sum float64
	for _, t := range totals {
		sum += t.Total
	}
	return sum
}
