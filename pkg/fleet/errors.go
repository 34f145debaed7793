package fleet

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationErrors carries every violation found in a request. Callers get
// the whole itemized list at once, nothing is written when it is non-empty.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(v, "; ")
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// RateLimitError is the rate-limit signal from the storage layer. It is the
// only error class the retry policy will retry.
type RateLimitError struct {
	Inner error
}

func (e *RateLimitError) Error() string {
	if e.Inner == nil {
		return "rate limited"
	}
	return "rate limited: " + e.Inner.Error()
}

func (e *RateLimitError) Unwrap() error { return e.Inner }

// IsRateLimited reports whether err is a retryable rate-limit signal, either
// an explicit RateLimitError or sqlite's busy/locked equivalent.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}

type BatchFailure struct {
	Index  int
	Target string
	Err    error
}

// BatchResult reports a partially completed batch: the success count plus the
// full failure list, never a single boolean.
type BatchResult struct {
	Succeeded int
	Failures  []BatchFailure
}

func (r *BatchResult) Failed() int { return len(r.Failures) }

// ProgressFunc receives current/total after each item of a long batch.
type ProgressFunc func(current int, total int)
