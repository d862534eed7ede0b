package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addParticipantCmd struct {
	ledgerFlag
}

func (*addParticipantCmd) Name() string     { return "add-participant" }
func (*addParticipantCmd) Synopsis() string { return "add people to a ledger" }
func (*addParticipantCmd) Usage() string {
	return `add-participant -ledger <id> <name>...

  Adds each name as a participant and prints its ID. Names are unique within
  a ledger, ignoring case.
`
}

func (c *addParticipantCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
}

func (c *addParticipantCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.checkLedger() {
		return subcommands.ExitUsageError
	}
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one name is required.")
		return subcommands.ExitUsageError
	}
	e, err := open()
	if err != nil {
		return exitStatus(err)
	}
	defer e.close()

	for _, name := range f.Args() {
		p, err := e.book.AddParticipant(ctx, c.ledgerID, name)
		if err != nil {
			return exitStatus(err)
		}
		fmt.Fprintf(stdout, "%s\t%s\n", p.ID, p.Name)
	}
	return subcommands.ExitSuccess
}

type removeParticipantCmd struct {
	ledgerFlag
}

func (*removeParticipantCmd) Name() string     { return "remove-participant" }
func (*removeParticipantCmd) Synopsis() string { return "remove a person from a ledger" }
func (*removeParticipantCmd) Usage() string {
	return `remove-participant -ledger <id> <name or id>

  Removes the participant and every expense they paid for. Expenses they only
  shared are split again among the remaining participants of that expense.
`
}

func (c *removeParticipantCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
}

func (c *removeParticipantCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.checkLedger() {
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one participant is required.")
		return subcommands.ExitUsageError
	}
	e, err := open()
	if err != nil {
		return exitStatus(err)
	}
	defer e.close()

	p, err := resolveParticipant(ctx, e.book, c.ledgerID, f.Arg(0))
	if err != nil {
		return exitStatus(err)
	}
	removed, err := e.book.RemoveParticipant(ctx, c.ledgerID, p.ID)
	if err != nil {
		return exitStatus(err)
	}

	fmt.Fprintf(stdout, "Removed %s and %d expense(s)\n", p.Name, removed)
	return subcommands.ExitSuccess
}
