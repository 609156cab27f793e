package models

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency = "USD"
	DefaultLocale   = "en-US"
)

var (
	ErrInvalidOwner     = errors.New("owner is required")
	ErrMissingPinHash   = errors.New("pin hash is required")
	ErrMissingTimestamp = errors.New("movement timestamp is required")
	ErrLedgerMisaligned = errors.New("movements and movement dates are not aligned")
)

// InterestFloor is the smallest per-deposit interest amount credited to the
// displayed total. Smaller amounts are dropped.
var InterestFloor = decimal.NewFromInt(1)

// Account is a ledger owned by one person. Movements and MovementDates are
// index-aligned; the balance is always derived from Movements.
type Account struct {
	Owner         string            `json:"owner"`
	Username      string            `json:"username"`
	PinHash       string            `json:"-"`
	Movements     []decimal.Decimal `json:"movements"`
	MovementDates []time.Time       `json:"movement_dates"`
	InterestRate  decimal.Decimal   `json:"interest_rate"`
	Currency      string            `json:"currency"`
	Locale        string            `json:"locale"`
}

// NewAccount builds an account and derives its username from the owner.
func NewAccount(owner, pinHash string, interestRate decimal.Decimal, currency, locale string) (*Account, error) {
	a := &Account{
		Owner:        owner,
		PinHash:      pinHash,
		InterestRate: interestRate,
		Currency:     currency,
		Locale:       locale,
	}
	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}
	if a.Locale == "" {
		a.Locale = DefaultLocale
	}
	a.Username = DeriveUsername(owner)

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Owner) == "" || a.Username == "" {
		return ErrInvalidOwner
	}

	if a.PinHash == "" {
		return ErrMissingPinHash
	}

	if len(a.Movements) != len(a.MovementDates) {
		return ErrLedgerMisaligned
	}

	return nil
}

// Rename changes the owner and recomputes the username.
func (a *Account) Rename(owner string) error {
	username := DeriveUsername(owner)
	if username == "" {
		return ErrInvalidOwner
	}
	a.Owner = owner
	a.Username = username
	return nil
}

// Record appends one movement and its timestamp. Either both slices grow or
// neither does.
func (a *Account) Record(amount decimal.Decimal, at time.Time) error {
	if at.IsZero() {
		return ErrMissingTimestamp
	}
	if len(a.Movements) != len(a.MovementDates) {
		return ErrLedgerMisaligned
	}

	a.Movements = append(a.Movements, amount)
	a.MovementDates = append(a.MovementDates, at)
	return nil
}

// Balance returns the sum of all movements
func (a *Account) Balance() decimal.Decimal {
	return decimal.Sum(decimal.Zero, a.Movements...)
}

// TotalIncome returns the sum of deposits
func (a *Account) TotalIncome() decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if m.IsPositive() {
			total = total.Add(m)
		}
	}
	return total
}

// TotalExpense returns the sum of withdrawals. The result is negative or zero.
func (a *Account) TotalExpense() decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if m.IsNegative() {
			total = total.Add(m)
		}
	}
	return total
}

// TotalInterest applies rate (a percentage) to every deposit and sums the
// resulting amounts that reach InterestFloor. It does not touch the balance.
func (a *Account) TotalInterest(rate decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	total := decimal.Zero
	for _, m := range a.Movements {
		if !m.IsPositive() {
			continue
		}
		interest := m.Mul(rate).Div(hundred)
		if interest.LessThan(InterestFloor) {
			continue
		}
		total = total.Add(interest)
	}
	return total
}

// CanWithdraw checks if the amount is covered by the current balance
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return amount.IsPositive() && a.Balance().GreaterThanOrEqual(amount)
}

// HasDepositOfAtLeast reports whether any movement reaches min.
func (a *Account) HasDepositOfAtLeast(min decimal.Decimal) bool {
	return slices.ContainsFunc(a.Movements, func(m decimal.Decimal) bool {
		return m.GreaterThanOrEqual(min)
	})
}

// SortedMovements returns the movements in ascending order. The account keeps
// its chronological order.
func (a *Account) SortedMovements() []decimal.Decimal {
	sorted := slices.Clone(a.Movements)
	slices.SortStableFunc(sorted, func(x, y decimal.Decimal) int {
		return x.Cmp(y)
	})
	return sorted
}

// Clone returns a deep copy safe to hand out of the store.
func (a *Account) Clone() *Account {
	cp := *a
	cp.Movements = slices.Clone(a.Movements)
	cp.MovementDates = slices.Clone(a.MovementDates)
	return &cp
}

// Helper functions

// DeriveUsername returns the lowercase initials of each whitespace-separated
// token of owner: "Jessica Davis" becomes "jd".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, token := range strings.Fields(strings.ToLower(owner)) {
		for _, r := range token {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}
