package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/report"
)

type addExpenseCmd struct {
	ledgerFlag
	description string
	amount      string
	payer       string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense shared by everyone in the ledger" }
func (*addExpenseCmd) Usage() string {
	return `add-expense -ledger <id> -d <description> -a <amount> -p <payer>

  Records an expense paid by one participant and shared equally by all the
  participants currently in the ledger. People added later do not share it.
  The payer is a participant name or ID.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
	f.StringVar(&c.description, "d", "", "What the expense was for (required)")
	f.StringVar(&c.amount, "a", "", "Amount paid, greater than zero (required)")
	f.StringVar(&c.payer, "p", "", "Who paid, by name or ID (required)")
}

func (c *addExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.checkLedger() {
		return subcommands.ExitUsageError
	}
	if c.description == "" || c.amount == "" || c.payer == "" {
		fmt.Fprintln(os.Stderr, "Error: -d, -a and -p flags are required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount '%s': %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	e, err := open()
	if err != nil {
		return exitStatus(err)
	}
	defer e.close()

	payer, err := resolveParticipant(ctx, e.book, c.ledgerID, c.payer)
	if err != nil {
		return exitStatus(err)
	}

	expense, err := e.book.AddExpense(ctx, c.ledgerID, ledger.NewExpense{
		Description: c.description,
		Amount:      amount,
		PayerID:     payer.ID,
	})
	if err != nil {
		return exitStatus(err)
	}

	fmt.Fprintf(stdout, "%s\t%s paid %s for %s, shared by %d\n",
		expense.ID, payer.Name, report.FormatAmount(expense.Amount, e.cfg.Currency),
		expense.Description, len(expense.Participants))
	return subcommands.ExitSuccess
}

type removeExpenseCmd struct {
	ledgerFlag
}

func (*removeExpenseCmd) Name() string     { return "remove-expense" }
func (*removeExpenseCmd) Synopsis() string { return "delete an expense" }
func (*removeExpenseCmd) Usage() string {
	return `remove-expense -ledger <id> <expense id>
`
}

func (c *removeExpenseCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
}

func (c *removeExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.checkLedger() {
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one expense ID is required.")
		return subcommands.ExitUsageError
	}
	e, err := open()
	if err != nil {
		return exitStatus(err)
	}
	defer e.close()

	return exitStatus(e.book.RemoveExpense(ctx, c.ledgerID, f.Arg(0)))
}
