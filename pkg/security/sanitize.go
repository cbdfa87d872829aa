// Package security provides input normalisation helpers for user-supplied text.
package security

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// StripControl removes control characters except newlines and tabs.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// IsValidEmail performs basic email validation.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// MaskEmail hides the local part of an address for logging: "ana@x.com" -> "a**@x.com".
func MaskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return "***"
	}

	local := []rune(email[:at])
	masked := string(local[0]) + strings.Repeat("*", len(local)-1)
	return masked + email[at:]
}
