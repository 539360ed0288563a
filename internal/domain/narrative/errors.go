package narrative

import (
	"errors"
	"fmt"
)

var (
	ErrQuotaExceeded = errors.New("narrative service quota exceeded")
	ErrUnauthorized  = errors.New("narrative service rejected credentials")
	ErrUnavailable   = errors.New("narrative service unavailable")
	ErrNotConfigured = fmt.Errorf("narrative service not configured: %w", ErrUnauthorized)
)

type Kind int

const (
	KindNone Kind = iota
	KindQuota
	KindUnauthorized
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindQuota:
		return "quota"
	case KindUnauthorized:
		return "unauthorized"
	case KindUnavailable:
		return "unavailable"
	default:
		return "none"
	}
}

// Classify maps a gateway error to its failure kind. Unknown errors are
// treated as unavailable.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrQuotaExceeded):
		return KindQuota
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	default:
		return KindUnavailable
	}
}
