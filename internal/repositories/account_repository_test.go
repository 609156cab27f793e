package repositories

import (
	"sync"
	"testing"
	"time"

	"bankist/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type plainHasher struct{}

func (plainHasher) HashPin(pin string) (string, error) {
	return "plain:" + pin, nil
}

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	repo AccountRepositoryInterface
	now  time.Time
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.repo = NewAccountRepository()
	s.now = time.Date(2021, 4, 25, 9, 0, 0, 0, time.UTC)
	s.Require().NoError(Seed(s.repo, plainHasher{}, DefaultSeedAccounts()))
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) balance(username string) decimal.Decimal {
	account, err := s.repo.FindByUsername(username)
	s.Require().NoError(err)
	return account.Balance()
}

func (s *AccountRepositorySuite) TestSeed() {
	s.Equal(2, s.repo.Count())

	jd, err := s.repo.FindByUsername("jd")
	s.Require().NoError(err)
	s.Equal("Jessica Davis", jd.Owner)
	s.Equal("plain:2222", jd.PinHash)
	s.Equal("USD", jd.Currency)
	s.True(decimal.NewFromInt(11720).Equal(jd.Balance()))
	s.Len(jd.MovementDates, len(jd.Movements))

	admin, err := s.repo.FindByUsername("a")
	s.Require().NoError(err)
	s.Equal("pt-PT", admin.Locale)
	s.Equal("2019-11-18T21:31:17.178Z", admin.MovementDates[0].Format(time.RFC3339Nano))
}

func (s *AccountRepositorySuite) TestSeed_Misaligned() {
	seeds := []SeedAccount{{Owner: "Steven Thomas", Pin: "3333", InterestRate: "0.7", Movements: []string{"10"}}}

	err := Seed(NewAccountRepository(), plainHasher{}, seeds)

	s.ErrorIs(err, models.ErrLedgerMisaligned)
}

func (s *AccountRepositorySuite) TestCreate_DuplicateUsername() {
	account, err := models.NewAccount("Jane Doe", "hash", decimal.NewFromInt(1), "", "")
	s.Require().NoError(err)

	err = s.repo.Create(account)

	s.ErrorIs(err, ErrUsernameTaken)
	s.Equal(2, s.repo.Count())
}

func (s *AccountRepositorySuite) TestFindByUsername() {
	s.Run("case sensitive", func() {
		_, err := s.repo.FindByUsername("JD")
		s.ErrorIs(err, ErrAccountNotFound)
	})

	s.Run("returns a copy", func() {
		account, err := s.repo.FindByUsername("jd")
		s.Require().NoError(err)
		s.Require().NoError(account.Record(decimal.NewFromInt(1_000_000), s.now))

		s.True(decimal.NewFromInt(11720).Equal(s.balance("jd")))
	})
}

func (s *AccountRepositorySuite) TestList() {
	accounts := s.repo.List()

	s.Require().Len(accounts, 2)
	s.Equal("a", accounts[0].Username)
	s.Equal("jd", accounts[1].Username)
}

func (s *AccountRepositorySuite) TestRemove() {
	s.repo.Remove("jd")
	s.repo.Remove("jd")
	s.repo.Remove("nobody")

	_, err := s.repo.FindByUsername("jd")
	s.ErrorIs(err, ErrAccountNotFound)
	s.Equal(1, s.repo.Count())
}

func (s *AccountRepositorySuite) TestRename() {
	renamed, err := s.repo.Rename("jd", "Jonas Schmedtmann")
	s.Require().NoError(err)
	s.Equal("js", renamed.Username)

	_, err = s.repo.FindByUsername("jd")
	s.ErrorIs(err, ErrAccountNotFound)
	s.True(decimal.NewFromInt(11720).Equal(s.balance("js")))

	_, err = s.repo.Rename("js", "Alice")
	s.ErrorIs(err, ErrUsernameTaken)

	_, err = s.repo.Rename("zz", "Zed Zulu")
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestRecord() {
	s.Require().NoError(s.repo.Record("jd", decimal.NewFromInt(1000), s.now))

	account, err := s.repo.FindByUsername("jd")
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(12720).Equal(account.Balance()))
	s.Equal(s.now, account.MovementDates[len(account.MovementDates)-1])

	s.ErrorIs(s.repo.Record("zz", decimal.NewFromInt(1), s.now), ErrAccountNotFound)
	s.ErrorIs(s.repo.Record("jd", decimal.NewFromInt(1), time.Time{}), models.ErrMissingTimestamp)
}

func (s *AccountRepositorySuite) TestExecuteAtomicTransfer_Success() {
	transfer, err := s.repo.ExecuteAtomicTransfer("jd", "a", decimal.NewFromInt(200), s.now)

	s.Require().NoError(err)
	s.Equal("jd", transfer.FromUsername)
	s.True(decimal.NewFromInt(11520).Equal(s.balance("jd")))

	admin, err := s.repo.FindByUsername("a")
	s.Require().NoError(err)
	s.Equal("200", admin.Movements[len(admin.Movements)-1].String())
	s.Equal(s.now, admin.MovementDates[len(admin.MovementDates)-1])
}

func (s *AccountRepositorySuite) TestExecuteAtomicTransfer_Rejected() {
	tests := []struct {
		name    string
		from    string
		to      string
		amount  decimal.Decimal
		wantErr error
	}{
		{name: "insufficient funds", from: "jd", to: "a", amount: decimal.NewFromInt(11721), wantErr: ErrInsufficientFunds},
		{name: "unknown recipient", from: "jd", to: "zz", amount: decimal.NewFromInt(1), wantErr: ErrAccountNotFound},
		{name: "unknown sender", from: "zz", to: "a", amount: decimal.NewFromInt(1), wantErr: ErrAccountNotFound},
		{name: "negative amount", from: "jd", to: "a", amount: decimal.NewFromInt(-5), wantErr: models.ErrInvalidTransferAmount},
		{name: "self transfer", from: "jd", to: "jd", amount: decimal.NewFromInt(5), wantErr: models.ErrSameTransferAccounts},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.repo.ExecuteAtomicTransfer(tt.from, tt.to, tt.amount, s.now)
			s.ErrorIs(err, tt.wantErr)

			for _, account := range s.repo.List() {
				s.Len(account.Movements, 8)
				s.Len(account.MovementDates, 8)
			}
		})
	}
}

func (s *AccountRepositorySuite) TestExecuteAtomicTransfer_Concurrent() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.repo.ExecuteAtomicTransfer("jd", "a", decimal.NewFromInt(10), s.now)
		}()
	}
	wg.Wait()

	total := s.balance("jd").Add(s.balance("a"))
	s.True(decimal.NewFromInt(11720).Add(decimal.RequireFromString("25952.59")).Equal(total), total.String())
	s.True(decimal.NewFromInt(11220).Equal(s.balance("jd")))
}
