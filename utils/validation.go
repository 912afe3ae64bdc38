// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneDigits = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone reports whether a phone number looks dialable once
// formatting characters are stripped. Advisory only: client phones are
// stored as free text exactly as the receptionist typed them.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneDigits.MatchString(cleaned)
}
