package services

import "strings"

// isDuplicateErr detects unique-constraint violations across the postgres
// and sqlite drivers.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// normalizePage clamps pagination inputs to sane values, reporting whether
// they were acceptable at all.
func normalizePage(limit, offset int) (int, int, bool) {
	if limit < 0 || offset < 0 {
		return 0, 0, false
	}
	if limit == 0 {
		limit = 10
	}
	return limit, offset, true
}
