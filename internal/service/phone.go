package service

import "strings"

// NormalizeWhatsApp converts a raw phone value into an international digit
// string with the 234 country prefix. A leading local "0" is replaced by the
// prefix; already-prefixed numbers pass through. Empty input stays empty.
func NormalizeWhatsApp(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, "0"):
		return "234" + digits[1:]
	case !strings.HasPrefix(digits, "234"):
		return "234" + digits
	}
	return digits
}
