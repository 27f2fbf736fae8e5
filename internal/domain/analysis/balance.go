package analysis

import "errors"

var ErrNoCredits = errors.New("no analysis credits remaining")

// Balance is the client-held "remaining analyses" counter. It mirrors server
// responses for UX only and is never consulted when deciding whether a
// redemption succeeds: the value travels in explicitly with each request and
// travels back out updated.
type Balance int32

func NewBalance(v int32) Balance {
	if v < 0 {
		return 0
	}
	return Balance(v)
}

// Add credits the balance with the grant of a successful redemption.
func (b Balance) Add(grant int32) Balance {
	return b + Balance(grant)
}

// Spend consumes one credit for a started analysis.
func (b Balance) Spend() (Balance, error) {
	if b <= 0 {
		return b, ErrNoCredits
	}
	return b - 1, nil
}

func (b Balance) Int32() int32 {
	return int32(b)
}
