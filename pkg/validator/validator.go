package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	usernamePattern   = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	commitHashPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)
)

// IsUsername reports whether s is 3-50 characters of letters, digits, '.', '_' or '-',
// starting and ending with a letter or digit.
func IsUsername(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 3 && n <= 50 && usernamePattern.MatchString(s)
}

// IsEmail reports whether s is a bare address such as "a@x.com".
func IsEmail(s string) bool {
	if len(s) == 0 || len(s) > 255 {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && addr.Name == ""
}

// IsCommitHash reports whether s is 40 lowercase hex characters.
func IsCommitHash(s string) bool {
	return commitHashPattern.MatchString(s)
}

// HasLength reports whether the trimmed s has between min and max characters.
func HasLength(s string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= min && n <= max
}
