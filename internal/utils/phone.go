package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// stripPhone removes spaces, dashes and parentheses, keeping digits and '+'.
func stripPhone(phone string) string {
	var b strings.Builder
	for _, c := range phone {
		if unicode.IsDigit(c) || c == '+' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// NormalizeE164 normalizes a phone number to strict E.164 (+<country><number>).
// Spaces, dashes and parentheses are stripped before validation.
func NormalizeE164(phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", fmt.Errorf("phone number is required")
	}
	stripped := stripPhone(strings.TrimSpace(phone))
	if !strings.HasPrefix(stripped, "+") {
		return "", fmt.Errorf("phone must be in E.164 format: +<country><number> (e.g. +79001234567)")
	}
	digits := stripped[1:]
	if digits == "" || strings.ContainsRune(digits, '+') {
		return "", fmt.Errorf("phone must contain only + followed by digits (E.164)")
	}
	if len(digits) < 10 {
		return "", fmt.Errorf("phone number too short for E.164")
	}
	return "+" + digits, nil
}

// IsPhoneNumber reports whether a peer reference looks like a phone number
// rather than a username or numeric entity id.
func IsPhoneNumber(peer string) bool {
	stripped := stripPhone(strings.TrimSpace(peer))
	return strings.HasPrefix(stripped, "+") && len(stripped) > 5
}
