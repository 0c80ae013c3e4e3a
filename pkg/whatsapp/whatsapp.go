// Package whatsapp builds WhatsApp deep links for the booking handoff.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// CleanPhone strips every non-digit character from a phone number.
func CleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidNumber reports whether the phone has a plausible E.164 digit count:
// country code plus area code plus number, 10 to 15 digits.
func IsValidNumber(phone string) bool {
	n := len(CleanPhone(phone))
	return n >= 10 && n <= 15
}

// BuildLink returns a pre-filled send link for the given phone and message.
// The api.whatsapp.com endpoint is used instead of wa.me to reduce the
// incidence of HTTP 429 responses.
func BuildLink(phone, message string) string {
	return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s",
		CleanPhone(phone), url.QueryEscape(message))
}
