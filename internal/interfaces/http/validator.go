package http

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Input validation constants
const (
	MaxLoginLength    = 50
	MaxNomeLength     = 255
	MaxTelefoneLength = 20
	MaxEmailLength    = 100
	MaxMensagemLength = 2000
)

const dataLayout = "2006-01-02"

var (
	loginPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidLogin checks if a login is safe (alphanumeric plus underscore, dot, hyphen)
func ValidLogin(s string) bool {
	if s == "" || len(s) > MaxLoginLength {
		return false
	}
	return loginPattern.MatchString(s)
}

// ValidEmail does a light format check, nothing RFC-complete
func ValidEmail(s string) bool {
	if s == "" || len(s) > MaxEmailLength {
		return false
	}
	return emailPattern.MatchString(s)
}

// ParseData parses an ISO date (YYYY-MM-DD) from request input
func ParseData(s string) (time.Time, error) {
	return time.Parse(dataLayout, strings.TrimSpace(s))
}

// SanitizeString removes null bytes and invalid UTF-8
func SanitizeString(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")

	if !utf8.ValidString(s) {
		v := make([]rune, 0, len(s))
		for _, r := range s {
			if r != utf8.RuneError {
				v = append(v, r)
			}
		}
		s = string(v)
	}
	return s
}

// ValidateLength checks if string is within bounds
func ValidateLength(s string, min, max int) bool {
	l := len(s)
	return l >= min && l <= max
}
