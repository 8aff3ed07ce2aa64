package registry

import "github.com/mmynk/clubledger/internal/models"

// InnerJoin combines payments with members on UserID.
//
// Every payment whose member exists yields one row, so a member with several
// payments yields several rows. Payments for unknown members and members
// without payments produce nothing. Rows follow member order, then payment
// order within each member.
func (s *PaymentStore) InnerJoin(members *MemberStore) []models.JoinedRow {
	byUser := make(map[string][]models.Payment)
	for _, p := range s.payments {
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}

	var rows []models.JoinedRow
	for _, m := range members.members {
		for _, p := range byUser[m.UserID] {
			rows = append(rows, models.JoinedRow{
				Member:    m,
				PaymentID: p.PaymentID,
				Amount:    p.Amount,
				Date:      p.Date,
			})
		}
	}
	return rows
}
