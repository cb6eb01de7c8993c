package utils

import "regexp"

// format patterns carried over from the lead/user intake rules
var (
	emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)
	phoneRx = regexp.MustCompile(`^\+?[ 0-9]{10,14}$`)
)

func ValidEmail(email string) bool {
	return emailRx.MatchString(email)
}

func ValidPhone(phone string) bool {
	return phoneRx.MatchString(phone)
}

// ValidFullName enforces the 5..50 character window used across user and
// lead records.
func ValidFullName(name string) bool {
	return len(name) >= 5 && len(name) <= 50
}
