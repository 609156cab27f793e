package repositories

import (
	"errors"
	"sync"

	"bankist/internal/models"

	"github.com/google/uuid"
)

var (
	ErrLoanNotFound = errors.New("loan not found")
	ErrLoanExists   = errors.New("loan already exists")
)

// loanRepository keeps loan records in memory
type loanRepository struct {
	mu    sync.RWMutex
	loans map[uuid.UUID]*models.Loan
	order []uuid.UUID
}

// NewLoanRepository creates a new in-memory loan repository
func NewLoanRepository() LoanRepositoryInterface {
	return &loanRepository{
		loans: make(map[uuid.UUID]*models.Loan),
	}
}

// Create stores a new loan
func (r *loanRepository) Create(loan *models.Loan) error {
	if loan == nil {
		return errors.New("loan cannot be nil")
	}
	if !models.IsValidLoanStatus(loan.Status) {
		return models.ErrInvalidLoanStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.loans[loan.ID]; exists {
		return ErrLoanExists
	}
	cp := *loan
	r.loans[loan.ID] = &cp
	r.order = append(r.order, loan.ID)
	return nil
}

// FindByID retrieves a loan by ID
func (r *loanRepository) FindByID(id uuid.UUID) (*models.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loan, ok := r.loans[id]
	if !ok {
		return nil, ErrLoanNotFound
	}
	cp := *loan
	return &cp, nil
}

// Update replaces a stored loan
func (r *loanRepository) Update(loan *models.Loan) error {
	if loan == nil {
		return errors.New("loan cannot be nil")
	}
	if !models.IsValidLoanStatus(loan.Status) {
		return models.ErrInvalidLoanStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loans[loan.ID]; !ok {
		return ErrLoanNotFound
	}
	cp := *loan
	r.loans[loan.ID] = &cp
	return nil
}

// ListPendingByUsername returns the pending loans of an account in request
// order
func (r *loanRepository) ListPendingByUsername(username string) []*models.Loan {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pending []*models.Loan
	for _, id := range r.order {
		loan := r.loans[id]
		if loan.Username == username && loan.IsPending() {
			cp := *loan
			pending = append(pending, &cp)
		}
	}
	return pending
}
