package menu

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/mmynk/clubledger/internal/calculator"
	"github.com/mmynk/clubledger/internal/models"
)

const amountFormat = "#,###.##"

func formatAmount(v float64) string {
	return humanize.FormatFloat(amountFormat, v)
}

// table writes tab-aligned rows under an upper-cased header.
func table(w io.Writer, header []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no records)")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(header, "\t")))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func renderMembers(w io.Writer, members []models.Member) {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, m.Fields())
	}
	table(w, models.MemberColumns, rows)
}

func renderPayments(w io.Writer, payments []models.Payment) {
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{p.PaymentID, p.UserID, formatAmount(p.Amount), p.Date})
	}
	table(w, models.PaymentColumns, rows)
}

func renderJoined(w io.Writer, joined []models.JoinedRow) {
	header := append(append([]string{}, models.MemberColumns...), "payment_id", "amount", "date")
	rows := make([][]string, 0, len(joined))
	for _, r := range joined {
		rows = append(rows, append(r.Member.Fields(), r.PaymentID, formatAmount(r.Amount), r.Date))
	}
	table(w, header, rows)
}

func renderTotals(w io.Writer, totals []calculator.MemberTotal) {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{
			t.UserID,
			t.FirstName,
			t.LastName,
			fmt.Sprint(t.Payments),
			formatAmount(t.Total),
			t.LastPaid,
		})
	}
	table(w, []string{"user_id", "first_name", "last_name", "payments", "total", "last_paid"}, rows)
	if len(totals) > 0 {
		fmt.Fprintf(w, "Grand total: %s\n", formatAmount(calculator.GrandTotal(totals)))
	}
}
