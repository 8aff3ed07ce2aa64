// Package menu implements the interactive text menu over the member and
// payment stores.
//
// Every field prompt repeats until the answer passes validation; the stores'
// single-shot Add is only called once all fields are valid. An invalid menu
// selection prints a message and returns to the main menu without touching
// either store. The loop ends on "save and exit", or when input runs out,
// which is handled the same way.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mmynk/clubledger/internal/calculator"
	"github.com/mmynk/clubledger/internal/metrics"
	"github.com/mmynk/clubledger/internal/middleware"
	"github.com/mmynk/clubledger/internal/models"
	"github.com/mmynk/clubledger/internal/registry"
	"github.com/mmynk/clubledger/internal/storage"
	"github.com/mmynk/clubledger/internal/validation"
)

// Options configures a Menu.
type Options struct {
	// CascadeDelete removes a member's payments along with the member.
	CascadeDelete bool

	// Metrics receives action and rejection counts. Optional.
	Metrics *metrics.Recorder
}

// Menu drives the stores from operator input.
type Menu struct {
	prompt   *prompter
	out      io.Writer
	members  *registry.MemberStore
	payments *registry.PaymentStore
	store    storage.Store
	opts     Options
	actions  map[string]entry
}

type entry struct {
	name   string
	action middleware.Action
}

// New creates a Menu reading from in and writing to out.
func New(in io.Reader, out io.Writer, members *registry.MemberStore, payments *registry.PaymentStore, store storage.Store, opts Options) *Menu {
	m := &Menu{
		out:      out,
		members:  members,
		payments: payments,
		store:    store,
		opts:     opts,
	}
	m.prompt = newPrompter(in, out, m.observeRejection)

	obs := m.observer()
	m.actions = make(map[string]entry)
	for key, e := range map[string]entry{
		"1": {"add_member", m.addMember},
		"2": {"add_payment", m.addPayment},
		"3": {"query", m.query},
		"4": {"delete", m.remove},
		"5": {"sorted_view", m.sorted},
		"6": {"search", m.search},
	} {
		m.actions[key] = entry{e.name, middleware.Logging(e.name, obs, e.action)}
	}
	return m
}

// Run shows the main menu until the operator saves and exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	m.updateGauges()
	for {
		m.printMain()
		choice, err := m.prompt.ask("Select an option: ")
		switch {
		case errors.Is(err, io.EOF):
			slog.Info("Input closed, saving before exit")
			return m.saveAndExit(ctx)
		case err != nil:
			return m.abort(ctx, err)
		}

		if choice == "7" {
			return m.saveAndExit(ctx)
		}

		e, ok := m.actions[choice]
		if !ok {
			fmt.Fprintln(m.out, "Invalid option. Try again.")
			m.observeRejection(fmt.Errorf("%w: %q", validation.ErrInvalidOption, choice))
			continue
		}

		err = e.action(ctx)
		m.updateGauges()
		switch {
		case errors.Is(err, io.EOF):
			slog.Info("Input closed, saving before exit", "action", e.name)
			return m.saveAndExit(ctx)
		case errors.Is(err, errReadInput):
			return m.abort(ctx, err)
		case err != nil:
			fmt.Fprintf(m.out, "Error: %v\n", err)
			if validation.IsRejection(err) {
				m.observeRejection(err)
			}
		}
	}
}

func (m *Menu) printMain() {
	fmt.Fprint(m.out, `
--- Main Menu ---
1. Add member
2. Add payment
3. Query data
4. Delete data
5. Show sorted members
6. Search person
7. Save and exit
`)
}

// choose prints a sub-menu and returns the selected key. Keys not in
// options yield ErrInvalidOption.
func (m *Menu) choose(title string, options []string) (string, error) {
	fmt.Fprintf(m.out, "\n--- %s ---\n", title)
	for i, opt := range options {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, opt)
	}
	choice, err := m.prompt.ask("Select an option: ")
	if err != nil {
		return "", err
	}
	for i := range options {
		if choice == fmt.Sprint(i+1) {
			return choice, nil
		}
	}
	return "", fmt.Errorf("%w: %q", validation.ErrInvalidOption, choice)
}

func (m *Menu) addMember(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Add new member ---")

	var c models.Member
	var err error
	if c.UserID, err = m.prompt.askUntil("User ID: ", m.members.CheckID); err != nil {
		return err
	}
	if c.FirstName, err = m.prompt.askUntil("First name: ", validation.Name); err != nil {
		return err
	}
	if c.LastName, err = m.prompt.askUntil("Last name: ", validation.Name); err != nil {
		return err
	}
	if c.DocumentNumber, err = m.prompt.askUntil("Document number: ", validation.Document); err != nil {
		return err
	}
	if c.BirthDate, err = m.prompt.askUntil("Birth date (YYYY-MM-DD): ", m.members.CheckBirthDate); err != nil {
		return err
	}
	if c.Phone, err = m.prompt.askUntil("Phone: ", validation.Phone); err != nil {
		return err
	}
	if c.Address, err = m.prompt.ask("Address: "); err != nil {
		return err
	}

	member, err := m.members.Add(c)
	if err != nil {
		return err
	}

	slog.Info("Member added", "user_id", member.UserID)
	fmt.Fprintln(m.out, "Member added successfully.")
	return nil
}

func (m *Menu) addPayment(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Add new payment ---")

	if m.members.Len() == 0 {
		fmt.Fprintln(m.out, "No members registered. Add a member first.")
		return nil
	}

	var in registry.PaymentInput
	var err error
	if in.PaymentID, err = m.prompt.askUntil("Payment ID (blank to generate): ", m.payments.CheckID); err != nil {
		return err
	}
	if in.UserID, err = m.prompt.askUntil("User ID: ", func(s string) error {
		return registry.CheckMember(s, m.members)
	}); err != nil {
		return err
	}
	if in.Amount, err = m.prompt.askUntil("Amount: ", func(s string) error {
		_, err := registry.ParseAmount(s)
		return err
	}); err != nil {
		return err
	}
	if in.Date, err = m.prompt.askUntil("Date (YYYY-MM-DD): ", validation.Date); err != nil {
		return err
	}

	payment, err := m.payments.Add(in, m.members)
	if err != nil {
		return err
	}

	slog.Info("Payment added", "payment_id", payment.PaymentID, "user_id", payment.UserID, "amount", payment.Amount)
	fmt.Fprintf(m.out, "Payment %s added successfully.\n", payment.PaymentID)
	return nil
}

func (m *Menu) query(ctx context.Context) error {
	choice, err := m.choose("Query data", []string{
		"Members table",
		"Payments table",
		"Combined table (members + payments)",
		"Payment summary per member",
	})
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		fmt.Fprintln(m.out, "\nMembers:")
		renderMembers(m.out, m.members.All())
	case "2":
		fmt.Fprintln(m.out, "\nPayments:")
		renderPayments(m.out, m.payments.All())
	case "3":
		fmt.Fprintln(m.out, "\nCombined (members + payments):")
		renderJoined(m.out, m.payments.InnerJoin(m.members))
	case "4":
		fmt.Fprintln(m.out, "\nPayment summary:")
		renderTotals(m.out, calculator.Totals(m.payments.InnerJoin(m.members)))
	}
	return nil
}

func (m *Menu) remove(ctx context.Context) error {
	choice, err := m.choose("Delete data", []string{"Delete a member", "Delete a payment"})
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		userID, err := m.prompt.ask("User ID to delete: ")
		if err != nil {
			return err
		}
		if !m.members.Remove(userID) {
			fmt.Fprintf(m.out, "No member with ID %q; nothing deleted.\n", userID)
			return nil
		}
		cascaded := 0
		if m.opts.CascadeDelete {
			cascaded = m.payments.RemoveByMember(userID)
		}
		slog.Info("Member deleted", "user_id", userID, "payments_deleted", cascaded)
		fmt.Fprintln(m.out, "Member deleted successfully.")
	case "2":
		paymentID, err := m.prompt.ask("Payment ID to delete: ")
		if err != nil {
			return err
		}
		if !m.payments.Remove(paymentID) {
			fmt.Fprintf(m.out, "No payment with ID %q; nothing deleted.\n", paymentID)
			return nil
		}
		slog.Info("Payment deleted", "payment_id", paymentID)
		fmt.Fprintln(m.out, "Payment deleted successfully.")
	}
	return nil
}

func (m *Menu) sorted(ctx context.Context) error {
	choice, err := m.choose("Show sorted members", []string{"By first name", "By last name", "By birth date"})
	if err != nil {
		return err
	}

	field, err := registry.ParseSortField(sortTokens[choice])
	if err != nil {
		return err
	}
	members, err := m.members.Sorted(field)
	if err != nil {
		return err
	}
	renderMembers(m.out, members)
	return nil
}

var sortTokens = map[string]string{
	"1": "first_name",
	"2": "last_name",
	"3": "birth_date",
}

func (m *Menu) search(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Search person ---")
	query, err := m.prompt.ask("User ID, document number or name: ")
	if err != nil {
		return err
	}

	found := m.members.Search(query)
	if len(found) == 0 {
		fmt.Fprintln(m.out, "No members found.")
		return nil
	}

	renderMembers(m.out, found)

	var payments []models.Payment
	for _, member := range found {
		payments = append(payments, m.payments.ByMember(member.UserID)...)
	}
	fmt.Fprintln(m.out, "\nPayments:")
	renderPayments(m.out, payments)
	return nil
}

func (m *Menu) saveAndExit(ctx context.Context) error {
	save := middleware.Logging("save", m.observer(), func(ctx context.Context) error {
		return m.store.Save(ctx, &storage.Snapshot{
			Members:  m.members.All(),
			Payments: m.payments.All(),
		})
	})
	if err := save(ctx); err != nil {
		fmt.Fprintf(m.out, "Error: could not save tables: %v\n", err)
		return err
	}

	slog.Info("Tables saved", "members", m.members.Len(), "payments", m.payments.Len())
	fmt.Fprintln(m.out, "Tables saved successfully.")
	fmt.Fprintln(m.out, "Exiting...")
	return nil
}

// abort saves what was entered so far and returns the read error, joined
// with the save error if saving fails too.
func (m *Menu) abort(ctx context.Context, readErr error) error {
	slog.Error("Input unreadable, saving before exit", "error", readErr)
	fmt.Fprintf(m.out, "Error: %v\n", readErr)
	if err := m.saveAndExit(ctx); err != nil {
		return errors.Join(readErr, err)
	}
	return readErr
}

func (m *Menu) observer() middleware.Observer {
	if m.opts.Metrics == nil {
		return nil
	}
	return m.opts.Metrics
}

func (m *Menu) observeRejection(err error) {
	if m.opts.Metrics != nil {
		m.opts.Metrics.ObserveRejection(err)
	}
}

func (m *Menu) updateGauges() {
	if m.opts.Metrics != nil {
		m.opts.Metrics.SetRecords("members", m.members.Len())
		m.opts.Metrics.SetRecords("payments", m.payments.Len())
	}
}
