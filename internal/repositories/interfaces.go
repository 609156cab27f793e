package repositories

import (
	"time"

	"bankist/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepositoryInterface defines the contract for account store operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	FindByUsername(username string) (*models.Account, error)
	List() []*models.Account
	Count() int
	Remove(username string)
	Rename(username, owner string) (*models.Account, error)
	Record(username string, amount decimal.Decimal, at time.Time) error
	ExecuteAtomicTransfer(fromUsername, toUsername string, amount decimal.Decimal, at time.Time) (*models.Transfer, error)
}

// LoanRepositoryInterface defines the contract for loan record operations
type LoanRepositoryInterface interface {
	Create(loan *models.Loan) error
	FindByID(id uuid.UUID) (*models.Loan, error)
	Update(loan *models.Loan) error
	ListPendingByUsername(username string) []*models.Loan
}
