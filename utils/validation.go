// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// Allows an optional + prefix followed by 10-15 digits
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)

func cleanPhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	return cleaned
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(cleanPhone(phone))
}

// FormatPhone normalizes a phone number to E.164. Bare 10-digit numbers are
// assumed to be US and get a +1 prefix.
func FormatPhone(phone string) string {
	cleaned := cleanPhone(phone)
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	if len(cleaned) == 10 {
		return "+1" + cleaned
	}
	return "+" + cleaned
}
