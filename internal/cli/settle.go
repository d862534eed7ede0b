package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mmynk/settleup/internal/report"
)

type settleCmd struct {
	ledgerFlag
	raw bool
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "show balances and who pays whom" }
func (*settleCmd) Usage() string {
	return `settle -ledger <id> [-raw]

  Computes every participant's balance and the transfers that settle the
  ledger, then prints a report.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	c.setLedgerFlag(f)
	f.BoolVar(&c.raw, "raw", false, "Print markdown without terminal styling")
}

func (c *settleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.checkLedger() {
		return subcommands.ExitUsageError
	}
	e, err := open()
	if err != nil {
		return exitStatus(err)
	}
	defer e.close()

	r, err := e.book.Settle(ctx, c.ledgerID)
	if err != nil {
		return exitStatus(err)
	}

	printMarkdown(report.Markdown(r, e.cfg.Currency), c.raw)
	return subcommands.ExitSuccess
}
