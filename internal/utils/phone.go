package utils

import "strings"

// Digits strips everything but ASCII digits from s.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// MaskPhone hides a phone number, keeping only the area code.
func MaskPhone(phone string) string {
	d := Digits(phone)
	if len(d) < 2 {
		return ""
	}
	return "(" + d[:2] + ") 9XXXX-XXXX"
}

// WhatsAppLink builds a wa.me link for a Brazilian number.
func WhatsAppLink(phone string) string {
	d := Digits(phone)
	if d == "" {
		return ""
	}
	return "https://wa.me/55" + d
}
