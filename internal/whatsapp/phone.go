package whatsapp

import "strings"

// DefaultCountryCode is prefixed to ten digit local numbers
const DefaultCountryCode = "91"

// NormalizePhoneNumber converts a phone number to international digits
// without a leading plus. Local Indian numbers, with or without a trunk 0,
// get the 91 country code.
func NormalizePhoneNumber(phoneNumber string) string {
	var b strings.Builder
	for _, r := range phoneNumber {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n := b.String()

	n = strings.TrimPrefix(n, "00")
	if len(n) == 11 && strings.HasPrefix(n, "0") {
		n = n[1:]
	}
	if len(n) == 10 {
		n = DefaultCountryCode + n
	}
	return n
}
