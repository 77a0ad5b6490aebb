package origin

import (
	"errors"
	"fmt"
)

// Decision is the outcome of evaluating a request origin.
type Decision int

const (
	// Allow admits the request.
	Allow Decision = iota
	// Deny rejects the request before it reaches any router.
	Deny
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Policy is the static configuration the gate evaluates against.
type Policy struct {
	// AllowList holds the origins admitted in every mode.
	AllowList AllowList
	// Development admits every origin when set.
	Development bool
}

// ErrRejected is returned for requests whose origin the gate denies.
var ErrRejected = errors.New("not allowed by CORS")

// RejectedError carries the origin of a denied request.
type RejectedError struct {
	Origin string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: origin %q", ErrRejected, e.Origin)
}

// Unwrap makes errors.Is(err, ErrRejected) hold.
func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

// Decide evaluates origin against the policy.
//
// Requests without an origin (curl, server-to-server, native apps) are always
// admitted. Otherwise the origin must be allow-listed, unless the policy is in
// development mode.
func Decide(origin string, p Policy) Decision {
	switch {
	case origin == "":
		return Allow
	case p.AllowList.Contains(origin):
		return Allow
	case p.Development:
		return Allow
	default:
		return Deny
	}
}
