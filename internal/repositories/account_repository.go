package repositories

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"bankist/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// accountRepository keeps accounts in memory, keyed by username. Every
// account handed out is a copy.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

// NewAccountRepository creates a new in-memory account repository
func NewAccountRepository() AccountRepositoryInterface {
	return &accountRepository{
		accounts: make(map[string]*models.Account),
	}
}

// Create validates and inserts an account under its derived username
func (r *accountRepository) Create(account *models.Account) error {
	if account == nil {
		return errors.New("account cannot be nil")
	}

	account.Username = models.DeriveUsername(account.Owner)
	if err := account.Validate(); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Username]; exists {
		return ErrUsernameTaken
	}
	r.accounts[account.Username] = account.Clone()
	return nil
}

// FindByUsername retrieves an account by exact username
func (r *accountRepository) FindByUsername(username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[username]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account.Clone(), nil
}

// List returns copies of all accounts ordered by username
func (r *accountRepository) List() []*models.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*models.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, account.Clone())
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Username < accounts[j].Username
	})
	return accounts
}

// Count returns the number of accounts in the store
func (r *accountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// Remove deletes an account. Unknown usernames are ignored.
func (r *accountRepository) Remove(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, username)
}

// Rename changes the owner of an account and re-keys it under the new
// username
func (r *accountRepository) Rename(username, owner string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[username]
	if !ok {
		return nil, ErrAccountNotFound
	}

	renamed := account.Clone()
	if err := renamed.Rename(owner); err != nil {
		return nil, err
	}
	if renamed.Username != username {
		if _, exists := r.accounts[renamed.Username]; exists {
			return nil, ErrUsernameTaken
		}
	}

	delete(r.accounts, username)
	r.accounts[renamed.Username] = renamed
	return renamed.Clone(), nil
}

// Record appends one movement to an account
func (r *accountRepository) Record(username string, amount decimal.Decimal, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[username]
	if !ok {
		return ErrAccountNotFound
	}
	if err := account.Record(amount, at); err != nil {
		return fmt.Errorf("failed to record movement: %w", err)
	}
	return nil
}

// ExecuteAtomicTransfer posts the debit and the credit leg of a transfer
// under one lock. Either both legs are recorded or neither is.
func (r *accountRepository) ExecuteAtomicTransfer(fromUsername, toUsername string, amount decimal.Decimal, at time.Time) (*models.Transfer, error) {
	transfer := models.NewTransfer(fromUsername, toUsername, amount, at)
	if err := transfer.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	from, ok := r.accounts[fromUsername]
	if !ok {
		return nil, ErrAccountNotFound
	}
	to, ok := r.accounts[toUsername]
	if !ok {
		return nil, ErrAccountNotFound
	}

	if !from.CanWithdraw(amount) {
		return nil, ErrInsufficientFunds
	}

	// Work on copies so a failed credit leaves the debit unposted
	debited := from.Clone()
	if err := debited.Record(amount.Neg(), at); err != nil {
		return nil, fmt.Errorf("failed to debit source account: %w", err)
	}
	credited := to.Clone()
	if err := credited.Record(amount, at); err != nil {
		return nil, fmt.Errorf("failed to credit destination account: %w", err)
	}

	r.accounts[fromUsername] = debited
	r.accounts[toUsername] = credited
	return transfer, nil
}
