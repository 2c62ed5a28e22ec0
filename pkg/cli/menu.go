// Package cli implements the interactive text menu the operator drives the
// bank with. It is glue: every business decision is delegated to the
// service, and every rejection comes back as an error to display.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/service/bank"
)

const menuText = `
================ MENU ================
[d]  Deposit
[s]  Withdraw
[e]  Statement
[nc] New account
[lc] List accounts
[nu] New client
[q]  Quit
=> `

// Menu runs the interactive session.
type Menu struct {
	svc    *bank.Service
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// New creates a Menu reading operator input from in and writing to out.
func New(svc *bank.Service, in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	return &Menu{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run loops until the operator quits, the input ends, or ctx is canceled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		fmt.Fprint(m.out, color.CyanString(menuText))
		option, ok := m.readLine()
		if !ok {
			return nil
		}
		switch strings.TrimSpace(strings.ToLower(option)) {
		case "d":
			m.deposit(ctx)
		case "s":
			m.withdraw(ctx)
		case "e":
			m.statement(ctx)
		case "nc":
			m.openAccount(ctx)
		case "lc":
			m.listAccounts()
		case "nu":
			m.registerClient(ctx)
		case "q":
			return nil
		default:
			m.failf("Invalid option!")
		}
	}
}

func (m *Menu) deposit(ctx context.Context) {
	cpf, ok := m.prompt("Client CPF: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Deposit amount: ")
	if !ok {
		return
	}
	balance, err := m.svc.Deposit(ctx, cpf, amount)
	if err != nil {
		m.fail(err)
		return
	}
	m.okf("Deposit completed. Current balance: R$ %s", balance)
}

func (m *Menu) withdraw(ctx context.Context) {
	cpf, ok := m.prompt("Client CPF: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Withdrawal amount: ")
	if !ok {
		return
	}
	balance, err := m.svc.Withdraw(ctx, cpf, amount)
	if err != nil {
		m.fail(err)
		return
	}
	m.okf("Withdrawal completed. Current balance: R$ %s", balance)
}

func (m *Menu) statement(ctx context.Context) {
	cpf, ok := m.prompt("Client CPF: ")
	if !ok {
		return
	}
	st, err := m.svc.Statement(ctx, cpf, "")
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintln(m.out, "\n================ STATEMENT ================")
	if len(st.Entries) == 0 {
		fmt.Fprintln(m.out, "No transactions recorded.")
	}
	for _, e := range st.Entries {
		fmt.Fprintf(m.out, "%s:\n\tR$ %s\n", e.Kind, e.Amount)
	}
	fmt.Fprintf(m.out, "\nCurrent balance: R$ %s\n", st.Balance)
	fmt.Fprintln(m.out, "===========================================")
}

func (m *Menu) openAccount(ctx context.Context) {
	cpf, ok := m.prompt("Client CPF: ")
	if !ok {
		return
	}
	acc, err := m.svc.OpenAccount(ctx, cpf)
	if err != nil {
		m.fail(err)
		return
	}
	m.okf("Account %d created successfully!", acc.Number())
}

func (m *Menu) listAccounts() {
	for record := range m.svc.ListAccounts() {
		fmt.Fprintln(m.out, strings.Repeat("=", 100))
		fmt.Fprintln(m.out, record)
	}
}

func (m *Menu) registerClient(ctx context.Context) {
	input := bank.RegisterClientInput{}
	var ok bool
	if input.CPF, ok = m.prompt("CPF (numbers only): "); !ok {
		return
	}
	if input.Name, ok = m.prompt("Full name: "); !ok {
		return
	}
	if input.BirthDate, ok = m.prompt("Birth date (dd-mm-yyyy): "); !ok {
		return
	}
	if input.Address, ok = m.prompt("Address: "); !ok {
		return
	}
	if _, err := m.svc.RegisterClient(ctx, input); err != nil {
		m.fail(err)
		return
	}
	m.okf("Client created successfully!")
}

// readLine reads one line; ok is false when input has ended.
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	line, ok := m.readLine()
	return strings.TrimSpace(line), ok
}

func (m *Menu) promptAmount(label string) (money.Money, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return money.Zero(), false
	}
	amount, err := money.Parse(raw)
	if err != nil {
		m.fail(err)
		return money.Zero(), false
	}
	return amount, true
}

func (m *Menu) okf(format string, args ...any) {
	fmt.Fprintln(m.out, color.GreenString("\n=== "+fmt.Sprintf(format, args...)+" ==="))
}

func (m *Menu) failf(format string, args ...any) {
	fmt.Fprintln(m.out, color.RedString("\nXXX "+fmt.Sprintf(format, args...)+" XXX"))
}

func (m *Menu) fail(err error) {
	var msg string
	switch {
	case errors.Is(err, context.Canceled):
		msg = "operation canceled"
	default:
		msg = err.Error()
	}
	m.failf("%s", strings.ToUpper(msg[:1])+msg[1:])
}
