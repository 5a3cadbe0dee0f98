package controllers

import "strings"

// isTruthy interprets a query flag value. Accepts the usual spellings so
// only_codes=1 and only_codes=true behave the same.
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
