package service

import "unicode"

// StrengthPolicy decides whether a password is strong enough to be stored.
type StrengthPolicy func(password string) bool

const minPasswordLength = 8

// DefaultStrengthPolicy requires at least 8 characters with at least one
// lowercase letter, one uppercase letter, one digit and one symbol. Any
// character that is neither a letter nor a digit counts as a symbol.
func DefaultStrengthPolicy(password string) bool {
	var length int
	var lower, upper, digit, symbol bool

	for _, r := range password {
		length++
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			symbol = true
		}
	}

	return length >= minPasswordLength && lower && upper && digit && symbol
}
