package tools

import "regexp"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// CheckPassword returns the offending field name, or "" when the password is acceptable.
func CheckPassword(password string) string {
	if len(password) < 6 {
		return "password"
	}
	return ""
}

// ValidatePin accepts recovery PINs of 4 to 8 characters.
func ValidatePin(pin string) bool {
	return len(pin) >= 4 && len(pin) <= 8
}
