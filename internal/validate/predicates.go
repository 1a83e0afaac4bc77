// internal/validate/predicates.go
package validate

import (
	"net/url"
	"strings"
	"unicode"
)

// StrongPasswordMessage is the user-facing message paired with
// IsStrongPassword in validation rules.
const StrongPasswordMessage = "Password must be at least 8 characters long and have one of each: lowercase, uppercase, number, symbol"

// IsStrongPassword reports whether the password is at least 8 characters and
// contains at least one lowercase letter, one uppercase letter, one digit and
// one symbol.
func IsStrongPassword(password string) bool {
	if len([]rune(password)) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsSpace(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// IsURL reports whether the value is a syntactically plausible URL. A scheme
// is not required: "example.com/page" is accepted, "not-a-url" is not.
func IsURL(value string) bool {
	if value == "" || strings.ContainsAny(value, " \t\n") {
		return false
	}

	candidate := value
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return false
	}

	host := u.Hostname()
	// Require a dotted hostname; bare labels like "not-a-url" are rejected.
	if !strings.Contains(host, ".") {
		return false
	}
	if strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return false
	}
	return true
}
