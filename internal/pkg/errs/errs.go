// Package errs is the project's thin facade over cockroachdb/errors. Usecase
// sentinel errors are attached with Mark so callers can branch with Is while
// the full cause chain stays intact for logging.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark makes err answer true to Is(err, markErr) without hiding its cause.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}
