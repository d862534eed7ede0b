package report

import (
	"fmt"
	"strings"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/ledger"
)

// Markdown renders a settlement report: totals, balances, the transfers that
// settle them and the expenses they came from.
func Markdown(r *ledger.Report, currency string) string {
	b := &strings.Builder{}
	printf := func(format string, args ...any) { fmt.Fprintf(b, format, args...) }

	printf("# %s\n\n", escape(r.Ledger.Name))
	printf("**Total spent:** %s  \n", FormatAmount(r.TotalSpent, currency))
	printf("**Participants:** %d\n\n", len(r.Participants))

	if r.Warning != nil {
		printf("> **Warning:** %s\n\n", r.Warning.Error())
	}

	printf("## Balances\n\n")
	if len(r.Balances) == 0 {
		printf("No participants yet.\n\n")
	} else {
		printf("| Participant | Paid | Share | Balance |\n")
		printf("|:---|---:|---:|---:|\n")
		for _, bal := range r.Balances {
			printf("| %s | %s | %s | %s |\n",
				escape(r.Name(bal.ParticipantID)),
				FormatAmount(bal.Paid, currency),
				FormatAmount(bal.Share, currency),
				FormatSigned(bal.Net, currency),
			)
		}
		printf("\n")
	}

	printf("## Settlement\n\n")
	if len(r.Transactions) == 0 {
		printf("Everyone is settled up.\n\n")
	} else {
		for i, t := range r.Transactions {
			printf("%d. **%s** pays **%s** %s\n", i+1,
				escape(r.Name(t.From)), escape(r.Name(t.To)), FormatAmount(t.Amount, currency))
		}
		printf("\n")
	}

	if len(r.Expenses) > 0 {
		printf("## Expenses\n\n")
		printf("| Expense | Paid by | Amount | Per person | Shared by |\n")
		printf("|:---|:---|---:|---:|:---|\n")
		for _, e := range r.Expenses {
			share, err := calculator.SplitEqually(e.Amount, len(e.Participants))
			perPerson := "-"
			if err == nil {
				perPerson = FormatAmount(share, currency)
			}
			names := make([]string, len(e.Participants))
			for i, id := range e.Participants {
				names[i] = escape(r.Name(id))
			}
			printf("| %s | %s | %s | %s | %s |\n",
				escape(e.Description),
				escape(r.Name(e.PayerID)),
				FormatAmount(e.Amount, currency),
				perPerson,
				strings.Join(names, ", "),
			)
		}
		printf("\n")
	}

	return b.String()
}

// escape keeps user text from breaking table cells or emphasis.
func escape(s string) string {
	return strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`).Replace(s)
}
