package handlers

import (
	"fmt"
	"math"
	"time"

	"bankist/internal/dto"
	"bankist/internal/models"
	"bankist/internal/scheduler"
	"bankist/internal/services"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const loggedOutGreeting = "Log in to get started"

// Formatter renders snapshots for display in the account's locale and currency
type Formatter struct {
	clock scheduler.Clock
}

// NewFormatter creates a formatter that dates movements relative to clock
func NewFormatter(clock scheduler.Clock) *Formatter {
	return &Formatter{clock: clock}
}

// Snapshot converts a snapshot to its formatted response
func (f *Formatter) Snapshot(snapshot models.AccountSnapshot) dto.SnapshotResponse {
	tag := parseLocale(snapshot.Locale)
	unit := parseCurrency(snapshot.Currency)
	now := f.clock.Now()

	movements := make([]dto.MovementResponse, len(snapshot.Movements))
	for i, amount := range snapshot.Movements {
		movementType := "deposit"
		if !amount.IsPositive() {
			movementType = "withdrawal"
		}
		movements[i] = dto.MovementResponse{
			Number:      i + 1,
			Type:        movementType,
			Amount:      money(amount, tag, unit),
			Date:        snapshot.MovementDates[i],
			DisplayDate: movementDate(snapshot.MovementDates[i], now, tag),
		}
	}

	return dto.SnapshotResponse{
		Username:  snapshot.Username,
		Owner:     snapshot.Owner,
		Currency:  unit.String(),
		Locale:    tag.String(),
		Balance:   money(snapshot.Balance, tag, unit),
		Income:    money(snapshot.Income, tag, unit),
		Expense:   money(snapshot.Expense.Abs(), tag, unit),
		Interest:  money(snapshot.Interest, tag, unit),
		Movements: movements,
		Sorted:    snapshot.Sorted,
		AsOf:      snapshot.TakenAt.Format(dateTimeLayout(tag)),
		TakenAt:   snapshot.TakenAt,
	}
}

// Session converts the session state to its response
func (f *Formatter) Session(state services.SessionState) dto.SessionResponse {
	resp := dto.SessionResponse{
		LoggedIn:         state.LoggedIn,
		Username:         state.Username,
		Owner:            state.Owner,
		Greeting:         Greeting(state.Owner),
		RemainingSeconds: state.RemainingSeconds,
		Timer:            FormatTimer(state.RemainingSeconds),
		Sorted:           state.Sorted,
	}
	if state.LoggedIn {
		id := state.SessionID
		resp.SessionID = &id
	}
	return resp
}

// FormatMoney renders amount in the locale's number format with the currency symbol
func FormatMoney(amount decimal.Decimal, locale, currencyCode string) string {
	return money(amount, parseLocale(locale), parseCurrency(currencyCode)).Formatted
}

// FormatMovementDate renders date as Today, Yesterday, N days ago within a
// week of now, and as a locale date otherwise
func FormatMovementDate(date, now time.Time, locale string) string {
	return movementDate(date, now, parseLocale(locale))
}

// FormatTimer renders seconds as mm:ss
func FormatTimer(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Greeting welcomes the owner by first name
func Greeting(owner string) string {
	name := services.FirstName(owner)
	if name == "" {
		return loggedOutGreeting
	}
	return "Welcome back, " + name
}

func money(amount decimal.Decimal, tag language.Tag, unit currency.Unit) dto.MoneyResponse {
	p := message.NewPrinter(tag)

	value, _ := amount.Abs().Round(2).Float64()
	number := p.Sprintf("%.2f", value)
	symbol := p.Sprint(currency.Symbol(unit))

	formatted := number + " " + symbol
	if symbolFirst(tag) {
		formatted = symbol + number
	}
	if amount.Round(2).IsNegative() {
		formatted = "-" + formatted
	}

	return dto.MoneyResponse{
		Amount:    amount.StringFixed(2),
		Formatted: formatted,
	}
}

func movementDate(date, now time.Time, tag language.Tag) string {
	days := int(math.Round(math.Abs(now.Sub(date).Hours()) / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return date.Format(dateLayout(tag))
	}
}

func parseLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func parseCurrency(code string) currency.Unit {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.USD
	}
	return unit
}

func symbolFirst(tag language.Tag) bool {
	base, _ := tag.Base()
	return base.String() == "en"
}

func dateLayout(tag language.Tag) string {
	if region, _ := tag.Region(); region.String() == "US" {
		return "1/2/2006"
	}
	return "02/01/2006"
}

func dateTimeLayout(tag language.Tag) string {
	if region, _ := tag.Region(); region.String() == "US" {
		return "1/2/2006, 3:04 PM"
	}
	return "02/01/2006, 15:04"
}
