package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches sentinels through both Unwrap chains and Mark barriers.
// Marks attached via Mark are invisible to stdlib errors.Is, so any
// boundary that switches on marked sentinels must use this.
func Is(err error, reference error) bool {
	return cr.Is(err, reference)
}
