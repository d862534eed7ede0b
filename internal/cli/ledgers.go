package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/settleup/internal/auth"
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/report"
)

type newLedgerCmd struct {
	name       string
	passphrase string
}

func (*newLedgerCmd) Name() string     { return "new-ledger" }
func (*newLedgerCmd) Synopsis() string { return "create a new ledger and print its ID" }
func (*newLedgerCmd) Usage() string {
	return `new-ledger [-name <name>] [-passphrase <passphrase>]

  Creates an empty ledger. Without a name, one is generated from today's date.
  The passphrase is only needed by clients joining through the server.
`
}

func (c *newLedgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Ledger name")
	f.StringVar(&c.passphrase, "passphrase", "", "Passphrase for joining the ledger, at least 8 characters")
}

func (c *newLedgerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := open()
	if err != nil {
		return exitStatus(err)
	}
	defer e.close()

	l, err := auth.NewPassphraseAuthenticator(e.store).Create(ctx, c.name, c.passphrase)
	if err != nil {
		return exitStatus(err)
	}

	fmt.Fprintf(os.Stderr, "Created ledger %q\n", l.Name)
	fmt.Fprintln(stdout, l.ID)
	return subcommands.ExitSuccess
}

type listCmd struct {
	ledgerFlag
	raw bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the participants and expenses of a ledger" }
func (*listCmd) Usage() string {
	return `list -ledger <id> [-raw]

  Lists participants and expenses with their IDs.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
	f.BoolVar(&c.raw, "raw", false, "Print markdown without terminal styling")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.checkLedger() {
		return subcommands.ExitUsageError
	}
	e, err := open()
	if err != nil {
		return exitStatus(err)
	}
	defer e.close()

	l, err := e.book.Ledger(ctx, c.ledgerID)
	if err != nil {
		return exitStatus(err)
	}
	participants, err := e.book.Participants(ctx, c.ledgerID)
	if err != nil {
		return exitStatus(err)
	}
	expenses, err := e.book.Expenses(ctx, c.ledgerID)
	if err != nil {
		return exitStatus(err)
	}

	printMarkdown(report.Listing(&ledger.Report{
		Ledger:       l,
		Participants: participants,
		Expenses:     expenses,
	}, e.cfg.Currency), c.raw)
	return subcommands.ExitSuccess
}

type clearCmd struct {
	ledgerFlag
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove every participant and expense from a ledger" }
func (*clearCmd) Usage() string {
	return `clear -ledger <id>
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
}

func (c *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.checkLedger() {
		return subcommands.ExitUsageError
	}
	e, err := open()
	if err != nil {
		return exitStatus(err)
	}
	defer e.close()

	return exitStatus(e.book.Clear(ctx, c.ledgerID))
}
