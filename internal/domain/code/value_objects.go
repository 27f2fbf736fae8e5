package code

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidToken  = errors.New("invalid redeem code format")
	ErrInvalidStatus = errors.New("invalid redeem code status")
)

// Tokens are human-entered; comparison is case-insensitive and
// whitespace-insensitive, so the normalized uppercase form is the only one
// ever stored or looked up.
var tokenRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Token string

func NewToken(raw string) (Token, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !tokenRegex.MatchString(normalized) {
		return Token(""), ErrInvalidToken
	}
	return Token(normalized), nil
}

func (t Token) String() string {
	return string(t)
}

type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
	StatusExpired  Status = "expired"
)

func NewStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusActive, StatusDisabled, StatusExpired:
		return Status(raw), nil
	default:
		return Status(""), ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}
