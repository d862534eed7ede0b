// Package cli implements the settleup command line tool. Commands work on the
// SQLite database directly, without going through the server.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/mmynk/settleup/internal/apperrors"
	"github.com/mmynk/settleup/internal/config"
	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage/sqlite"
	"github.com/mmynk/settleup/pkg/logging"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&newLedgerCmd{}, "ledgers")
	c.Register(&listCmd{}, "ledgers")
	c.Register(&clearCmd{}, "ledgers")

	c.Register(&addParticipantCmd{}, "participants")
	c.Register(&removeParticipantCmd{}, "participants")

	c.Register(&addExpenseCmd{}, "expenses")
	c.Register(&removeExpenseCmd{}, "expenses")

	c.Register(&settleCmd{}, "settlement")
}

var dbPath = flag.String("db", "", "Path to the SQLite database (defaults to DB_PATH)")
var verbose = flag.Bool("v", false, "Log what the commands do")

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// env is what a command needs to run against the database.
type env struct {
	cfg   *config.Config
	store *sqlite.SQLiteStore
	book  *ledger.Book
}

// open loads the configuration and opens the database. Callers must call close.
func open() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *verbose {
		logging.Setup("debug")
	} else {
		logging.Setup("warn")
	}

	path := cfg.DBPath
	if *dbPath != "" {
		path = *dbPath
	}
	store, err := sqlite.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return &env{cfg: cfg, store: store, book: ledger.New(store, nil)}, nil
}

func (e *env) close() {
	e.store.Close()
}

// ledgerFlag is embedded by the commands that act on one ledger.
type ledgerFlag struct {
	ledgerID string
}

func (l *ledgerFlag) setLedgerFlag(f *flag.FlagSet) {
	f.StringVar(&l.ledgerID, "ledger", os.Getenv("SETTLEUP_LEDGER"), "Ledger ID (defaults to SETTLEUP_LEDGER)")
}

func (l *ledgerFlag) checkLedger() bool {
	if l.ledgerID == "" {
		fmt.Fprintln(os.Stderr, "Error: -ledger is required.")
		return false
	}
	return true
}

// resolveParticipant finds a participant by ID or by name, ignoring case.
func resolveParticipant(ctx context.Context, book *ledger.Book, ledgerID, ref string) (*models.Participant, error) {
	participants, err := book.Participants(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	for _, p := range participants {
		if p.ID == ref {
			return p, nil
		}
	}
	for _, p := range participants {
		if strings.EqualFold(p.Name, ref) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("participant %q: %w", ref, apperrors.ErrNotFound)
}

// exitStatus reports err on stderr and picks the exit status for it.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, apperrors.ErrValidation) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal, or prints it as is when raw is set
// or the renderer fails.
func printMarkdown(md string, raw bool) {
	if raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
