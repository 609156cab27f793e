package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PinCost is the bcrypt cost for 4-digit demo PINs
const PinCost = bcrypt.MinCost

var ErrPinEmpty = errors.New("pin cannot be empty")

// PinService hashes and checks account PINs. PINs are compared by numeric
// value, so "0123" and "123" are the same PIN.
type PinService struct {
	cost int
}

// NewPinService creates a new pin service with the given bcrypt cost
func NewPinService(cost int) PinServiceInterface {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = PinCost
	}
	return &PinService{cost: cost}
}

// HashPin hashes the canonical numeric form of a PIN
func (ps *PinService) HashPin(pin string) (string, error) {
	if strings.TrimSpace(pin) == "" {
		return "", ErrPinEmpty
	}

	canonical, ok := canonicalPin(pin)
	if !ok {
		return "", fmt.Errorf("pin %q is not numeric", pin)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(canonical), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash pin: %w", err)
	}

	return string(hashedBytes), nil
}

// ComparePin reports whether the numeric value of pin matches the hash. A
// non-numeric input never matches.
func (ps *PinService) ComparePin(pin, hash string) bool {
	canonical, ok := canonicalPin(pin)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(canonical)) == nil
}

func canonicalPin(pin string) (string, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(pin))
	if err != nil {
		return "", false
	}
	return strconv.Itoa(value), true
}
