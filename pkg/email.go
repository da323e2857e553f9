package pkg

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"
)

var ErrInvalidEmail = errors.New("invalid email address")

// NormalizeEmail returns the lowercased bare address ("user@host").
//
// Display names, angle brackets and control characters are refused so the
// value can be written into a mail header as is.
func NormalizeEmail(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return "", ErrInvalidEmail
	}
	at := strings.LastIndex(addr.Address, "@")
	if at <= 0 || !strings.Contains(addr.Address[at+1:], ".") {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}
