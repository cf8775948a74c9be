package logger

import (
	"strings"
	"unicode"
)

// MaskEmail keeps the first and last rune of the local part:
// "maria@example.com" -> "m***a@example.com".
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return maskKeepEnds(email)
	}
	return maskKeepEnds(email[:at]) + email[at:]
}

// MaskPhone hides every digit except the last four, preserving formatting:
// "(11) 98765-4321" -> "(**) *****-4321".
func MaskPhone(phone string) string {
	runes := []rune(strings.TrimSpace(phone))
	kept := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if !unicode.IsDigit(runes[i]) {
			continue
		}
		if kept < 4 {
			kept++
			continue
		}
		runes[i] = '*'
	}
	return string(runes)
}

func maskKeepEnds(s string) string {
	runes := []rune(s)
	switch n := len(runes); {
	case n <= 1:
		return s
	case n == 2:
		return string(runes[0]) + "*"
	default:
		return string(runes[0]) + strings.Repeat("*", n-2) + string(runes[n-1])
	}
}
