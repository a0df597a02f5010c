// Package email normalizes and validates customer email addresses.
package email

import (
	"net/mail"
	"strings"
)

// Normalize trims and lower-cases an address
func Normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// Valid reports whether s is a bare address with a dotted domain
func Valid(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	domain := s[strings.LastIndex(s, "@")+1:]
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}
