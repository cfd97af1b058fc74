package fsm

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"work_exchange/internal/db/models"
)

const minPhoneDigits = 7

var (
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrInvalidSalary = errors.New("invalid salary")
	ErrInvalidRate   = errors.New("invalid rate")
)

// ValidatePhone keeps only the digits of the input.
func ValidatePhone(input string) (string, error) {
	var digits strings.Builder
	for _, r := range input {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	if digits.Len() < minPhoneDigits {
		return "", ErrInvalidPhone
	}

	return digits.String(), nil
}

// ValidateSalary accepts a positive whole number of shekels.
func ValidateSalary(input string) (int, error) {
	salary, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || salary <= 0 {
		return 0, ErrInvalidSalary
	}

	return salary, nil
}

func ValidateRate(input string) (int, error) {
	rate, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || rate < models.MinRate || rate > models.MaxRate {
		return 0, ErrInvalidRate
	}
	return rate, nil
}
