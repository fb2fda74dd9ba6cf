package utils

import "strings"

const whitespace = " \t\r\n"

// Split breaks s on every occurrence of sep. Empty segments between
// separators are kept, but a trailing separator does not yield a final
// empty element, and an empty string yields no elements at all.
func Split(s string, sep byte) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, string(sep))

	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	return parts
}

// Trim removes leading and trailing spaces, tabs, CR and LF.
func Trim(s string) string {
	return strings.Trim(s, whitespace)
}

// ToLower lowercases ASCII letters only; other bytes are left untouched.
func ToLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// EqualFold reports whether a and b match under ToLower.
func EqualFold(a, b string) bool {
	return ToLower(a) == ToLower(b)
}

// IsNumeric reports whether s is non-empty and made of ASCII digits only.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
