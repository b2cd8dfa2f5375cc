package card

import "strings"

const (
	maxCardDigits   = 19
	cardGroupSize   = 4
	maxExpiryDigits = 4
)

// FormatCardNumber keeps up to 19 digits and groups them in fours separated by
// single spaces. Formatting its own output returns the same string.
func FormatCardNumber(raw string) string {
	digits := truncate(digitsOnly(raw), maxCardDigits)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%cardGroupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry keeps up to 4 digits and renders them as MM/YY once a third digit arrives
func FormatExpiry(raw string) string {
	digits := truncate(digitsOnly(raw), maxExpiryDigits)
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func truncate(digits string, n int) string {
	if len(digits) > n {
		return digits[:n]
	}
	return digits
}
