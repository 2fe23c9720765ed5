package auth

import (
	"regexp"
	"unicode"
)

// local-part@domain.tld with a top-level segment of at least two characters
// and no whitespace or extra '@' anywhere.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword accepts passwords of at least 6 characters containing at
// least one digit, one lowercase and one uppercase letter.
func ValidatePassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return hasDigit && hasLower && hasUpper
}
