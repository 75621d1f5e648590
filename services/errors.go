package services

import "strings"

// ServiceError is a typed error with an HTTP status code. Services decide
// the mapping (409 duplicate, 400 business-rule/validation, 404 missing,
// 500 everything else); controllers pass the code through untouched.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// isDuplicateErr reports whether a storage error looks like a
// unique-constraint violation. Backstop for races that slip past the
// service-level uniqueness checks.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
