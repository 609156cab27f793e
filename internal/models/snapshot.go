package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// MovementEntry is one movement paired with its date
type MovementEntry struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// AccountSnapshot is the read model handed to the presentation layer after
// every change.
type AccountSnapshot struct {
	Username      string            `json:"username"`
	Owner         string            `json:"owner"`
	Currency      string            `json:"currency"`
	Locale        string            `json:"locale"`
	Balance       decimal.Decimal   `json:"balance"`
	Income        decimal.Decimal   `json:"income"`
	Expense       decimal.Decimal   `json:"expense"`
	Interest      decimal.Decimal   `json:"interest"`
	Movements     []decimal.Decimal `json:"movements"`
	MovementDates []time.Time       `json:"movement_dates"`
	Sorted        bool              `json:"sorted"`
	TakenAt       time.Time         `json:"taken_at"`
}

// NewAccountSnapshot aggregates the account ledger. With sorted set the
// movements are ascending by amount and each date stays with its movement.
func NewAccountSnapshot(a *Account, sorted bool, takenAt time.Time) AccountSnapshot {
	entries := a.Entries()
	if sorted {
		slices.SortStableFunc(entries, func(x, y MovementEntry) int {
			return x.Amount.Cmp(y.Amount)
		})
	}

	movements := make([]decimal.Decimal, len(entries))
	dates := make([]time.Time, len(entries))
	for i, e := range entries {
		movements[i] = e.Amount
		dates[i] = e.Date
	}

	return AccountSnapshot{
		Username:      a.Username,
		Owner:         a.Owner,
		Currency:      a.Currency,
		Locale:        a.Locale,
		Balance:       a.Balance(),
		Income:        a.TotalIncome(),
		Expense:       a.TotalExpense(),
		Interest:      a.TotalInterest(a.InterestRate),
		Movements:     movements,
		MovementDates: dates,
		Sorted:        sorted,
		TakenAt:       takenAt,
	}
}

// Entries pairs every movement with its date in chronological order
func (a *Account) Entries() []MovementEntry {
	entries := make([]MovementEntry, len(a.Movements))
	for i, m := range a.Movements {
		entries[i] = MovementEntry{Amount: m, Date: a.MovementDates[i]}
	}
	return entries
}
