package api

// Ledger is a shared expense book.
type Ledger struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Protected bool   `json:"protected"`
	CreatedAt int64  `json:"created_at"`
}

// Participant is a person who can pay for and share expenses.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// Expense is a payment made by one participant on behalf of ParticipantIDs.
type Expense struct {
	ID             string   `json:"id"`
	Description    string   `json:"description"`
	Amount         string   `json:"amount"`
	PayerID        string   `json:"payer_id"`
	ParticipantIDs []string `json:"participant_ids"`
	CreatedAt      int64    `json:"created_at"`
}

// Balance is a participant's position: positive Net is owed to them.
type Balance struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Paid          string `json:"paid"`
	Share         string `json:"share"`
	Net           string `json:"net"`
}

// Transaction is a single transfer that moves From closer to zero and To closer to zero.
type Transaction struct {
	From     string `json:"from"`
	FromName string `json:"from_name"`
	To       string `json:"to"`
	ToName   string `json:"to_name"`
	Amount   string `json:"amount"`
}

// SessionService messages

type CreateLedgerRequest struct {
	Name       string `json:"name" validate:"max=100"`
	Passphrase string `json:"passphrase,omitempty" validate:"omitempty,max=72"`
}

type CreateLedgerResponse struct {
	Ledger *Ledger `json:"ledger"`
	Token  string  `json:"token"`
}

type JoinLedgerRequest struct {
	LedgerID   string `json:"ledger_id" validate:"required"`
	Passphrase string `json:"passphrase,omitempty" validate:"omitempty,max=72"`
}

type JoinLedgerResponse struct {
	Ledger *Ledger `json:"ledger"`
	Token  string  `json:"token"`
}

// LedgerService messages. The ledger is always the one named by the caller's token.

type AddParticipantRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type AddParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type RemoveParticipantRequest struct {
	ParticipantID string `json:"participant_id" validate:"required"`
}

type RemoveParticipantResponse struct {
	ExpensesRemoved int `json:"expenses_removed"`
}

type ListParticipantsRequest struct{}

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
}

type AddExpenseRequest struct {
	Description string `json:"description" validate:"required,max=200"`
	Amount      string `json:"amount" validate:"required,numeric"`
	PayerID     string `json:"payer_id" validate:"required"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type RemoveExpenseRequest struct {
	ExpenseID string `json:"expense_id" validate:"required"`
}

type RemoveExpenseResponse struct{}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type ClearLedgerRequest struct{}

type ClearLedgerResponse struct{}

type GetBalancesRequest struct{}

type GetBalancesResponse struct {
	Balances   []*Balance `json:"balances"`
	TotalSpent string     `json:"total_spent"`
}

type GetSettlementRequest struct{}

type GetSettlementResponse struct {
	Balances     []*Balance     `json:"balances"`
	Transactions []*Transaction `json:"transactions"`
	TotalSpent   string         `json:"total_spent"`
	// Warning is set when the balances did not sum to zero.
	Warning string `json:"warning,omitempty"`
}
