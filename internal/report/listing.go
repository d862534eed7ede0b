package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/settleup/internal/ledger"
)

// Listing renders the participants and expenses of a ledger with their IDs.
// Only the Ledger, Participants and Expenses fields of r are read.
func Listing(r *ledger.Report, currency string) string {
	b := &strings.Builder{}
	printf := func(format string, args ...any) { fmt.Fprintf(b, format, args...) }

	printf("# %s\n\n", escape(r.Ledger.Name))
	printf("Ledger `%s`\n\n", r.Ledger.ID)

	printf("## Participants\n\n")
	if len(r.Participants) == 0 {
		printf("None.\n\n")
	} else {
		printf("| Name | ID |\n")
		printf("|:---|:---|\n")
		for _, p := range r.Participants {
			printf("| %s | `%s` |\n", escape(p.Name), p.ID)
		}
		printf("\n")
	}

	printf("## Expenses\n\n")
	if len(r.Expenses) == 0 {
		printf("None.\n")
		return b.String()
	}
	printf("| Date | Expense | Paid by | Amount | Shared by | ID |\n")
	printf("|:---|:---|:---|---:|---:|:---|\n")
	for _, e := range r.Expenses {
		printf("| %s | %s | %s | %s | %d | `%s` |\n",
			time.Unix(e.CreatedAt, 0).Format(time.DateOnly),
			escape(e.Description),
			escape(r.Name(e.PayerID)),
			FormatAmount(e.Amount, currency),
			len(e.Participants),
			e.ID,
		)
	}
	return b.String()
}
