// Package models defines the core domain models for settleup.
//
// # Models
//
//   - Ledger: one group of people sharing expenses (a session)
//   - Participant: a member of a ledger, identified by an id that is never reused
//   - Expense: a payment fronted by one participant and shared equally
//
// Balances and proposed transfers are not models: they are derived on demand
// by the calculator package and never stored.
//
// # Design Principles
//
// 1. **IDs, not pointers**: relationships use ID strings to avoid circular references
// 2. **Snapshots**: an expense stores the participant ids it is shared among at
// creation time; adding a participant later does not change past expenses
// 3. **Exact amounts**: money is decimal.Decimal, never float64
package models
