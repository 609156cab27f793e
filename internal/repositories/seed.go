package repositories

import (
	"fmt"
	"time"

	"bankist/internal/models"

	"github.com/shopspring/decimal"
)

// PinHasher hashes a plain PIN for storage
type PinHasher interface {
	HashPin(pin string) (string, error)
}

// SeedAccount describes one account loaded at startup
type SeedAccount struct {
	Owner         string
	Pin           string
	InterestRate  string
	Currency      string
	Locale        string
	Movements     []string
	MovementDates []string
}

// DefaultSeedAccounts returns the demo accounts the store starts with
func DefaultSeedAccounts() []SeedAccount {
	return []SeedAccount{
		{
			Owner:        "admin",
			Pin:          "1111",
			InterestRate: "1.2",
			Currency:     "EUR",
			Locale:       "pt-PT",
			Movements:    []string{"200", "455.23", "-306.5", "25000", "-642.21", "-133.9", "79.97", "1300"},
			MovementDates: []string{
				"2019-11-18T21:31:17.178Z",
				"2019-12-23T07:42:02.383Z",
				"2020-01-28T09:15:04.904Z",
				"2020-04-01T10:17:24.185Z",
				"2020-05-08T14:11:59.604Z",
				"2021-04-22T14:43:26.374Z",
				"2021-04-23T18:49:59.371Z",
				"2021-04-24T12:01:20.894Z",
			},
		},
		{
			Owner:        "Jessica Davis",
			Pin:          "2222",
			InterestRate: "1.5",
			Currency:     "USD",
			Locale:       "en-US",
			Movements:    []string{"5000", "3400", "-150", "-790", "-3210", "-1000", "8500", "-30"},
			MovementDates: []string{
				"2019-11-01T13:15:33.035Z",
				"2019-11-30T09:48:16.867Z",
				"2019-12-25T06:04:23.907Z",
				"2020-01-25T14:18:46.235Z",
				"2020-02-05T16:33:06.386Z",
				"2021-04-22T14:43:26.374Z",
				"2021-04-23T18:49:59.371Z",
				"2021-04-24T12:01:20.894Z",
			},
		},
	}
}

// Build turns the seed into an account with a hashed PIN
func (s SeedAccount) Build(hasher PinHasher) (*models.Account, error) {
	if len(s.Movements) != len(s.MovementDates) {
		return nil, fmt.Errorf("seed %q: %w", s.Owner, models.ErrLedgerMisaligned)
	}

	rate, err := decimal.NewFromString(s.InterestRate)
	if err != nil {
		return nil, fmt.Errorf("seed %q: invalid interest rate: %w", s.Owner, err)
	}

	pinHash, err := hasher.HashPin(s.Pin)
	if err != nil {
		return nil, fmt.Errorf("seed %q: failed to hash pin: %w", s.Owner, err)
	}

	account, err := models.NewAccount(s.Owner, pinHash, rate, s.Currency, s.Locale)
	if err != nil {
		return nil, fmt.Errorf("seed %q: %w", s.Owner, err)
	}

	for i, raw := range s.Movements {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("seed %q: invalid movement %q: %w", s.Owner, raw, err)
		}
		at, err := time.Parse(time.RFC3339Nano, s.MovementDates[i])
		if err != nil {
			return nil, fmt.Errorf("seed %q: invalid movement date %q: %w", s.Owner, s.MovementDates[i], err)
		}
		if err := account.Record(amount, at); err != nil {
			return nil, fmt.Errorf("seed %q: %w", s.Owner, err)
		}
	}

	return account, nil
}

// Seed inserts every seed account into the repository
func Seed(repo AccountRepositoryInterface, hasher PinHasher, seeds []SeedAccount) error {
	for _, s := range seeds {
		account, err := s.Build(hasher)
		if err != nil {
			return err
		}
		if err := repo.Create(account); err != nil {
			return fmt.Errorf("seed %q: %w", s.Owner, err)
		}
	}
	return nil
}
