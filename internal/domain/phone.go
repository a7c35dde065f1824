// internal/domain/phone.go
package domain

import (
	"fmt"
	"strings"
)

// NormalizePhone converts a Kenyan subscriber number into the canonical
// 254XXXXXXXXX form Daraja expects. Three input shapes are accepted:
//
//	0712345678   (local format with leading zero)
//	254712345678 (already prefixed)
//	712345678    (bare subscriber number)
//
// Formatting characters (spaces, dashes, a leading +) are stripped first.
// Anything else is rejected.
func NormalizePhone(phone string) (string, error) {
	digits := stripNonDigits(phone)

	switch {
	case len(digits) == 10 && strings.HasPrefix(digits, "0"):
		return "254" + digits[1:], nil
	case len(digits) == 12 && strings.HasPrefix(digits, "254"):
		return digits, nil
	case len(digits) == 9 && strings.HasPrefix(digits, "7"):
		return "254" + digits, nil
	}

	return "", fmt.Errorf("invalid phone number: %s", phone)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
