// Package validation holds the address checks shared by the server's
// schema layer and the form client. Syntax only, no DNS lookups.
package validation

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether s is a single well-formed address:
// local part, "@", and a domain containing a dot, with no whitespace.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateEmailList reports whether s is a non-empty comma-separated
// list where every element is a well-formed address. Elements are
// trimmed before checking.
func ValidateEmailList(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, part := range strings.Split(s, ",") {
		if !ValidateEmail(strings.TrimSpace(part)) {
			return false
		}
	}
	return true
}

// SplitAddressList splits a comma-separated address list into trimmed
// elements, dropping empty entries.
func SplitAddressList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var addresses []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			addresses = append(addresses, part)
		}
	}
	return addresses
}
