package status

import (
	"fmt"
	"strings"
)

// ClassResolver maps integers to classes.
type ClassResolver interface {
	// TryClassFromInteger reports NoClass, false when n has no class.
	TryClassFromInteger(n int) (Class, bool)
	ClassFromInteger(n int) (Class, error)
}

// Policy selects how an integer that is not a registered code is classified.
// The two revisions of the standard disagree here, so both are kept and
// callers pick one explicitly.
type Policy uint8

const (
	// RFC7231 derives a class only from a registered code. Unregistered
	// values have no class, even when their leading digit is unambiguous.
	RFC7231 Policy = iota + 1

	// RFC9110 classifies every integer: registered codes use their own class,
	// anything else falls back to RangeClass.
	RFC9110
)

var _ ClassResolver = RFC7231

func (p Policy) String() string {
	switch p {
	case RFC7231:
		return "rfc7231"
	case RFC9110:
		return "rfc9110"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy accepts "rfc7231" or "rfc9110", in any case.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rfc7231", "7231":
		return RFC7231, nil
	case "rfc9110", "9110":
		return RFC9110, nil
	default:
		return 0, invalidName("status.Policy", s)
	}
}

// TryClassFromInteger reports NoClass, false for a Policy other than RFC7231
// or RFC9110, including the zero value.
func (p Policy) TryClassFromInteger(n int) (Class, bool) {
	switch p {
	case RFC7231:
		if c, ok := TryCodeFromInteger(n); ok {
			return c.Class(), true
		}
		return NoClass, false
	case RFC9110:
		if c, ok := TryCodeFromInteger(n); ok {
			return c.Class(), true
		}
		return RangeClass(n), true
	default:
		return NoClass, false
	}
}

// ClassFromInteger never fails under RFC9110. Under RFC7231 it fails with
// ErrInvalidArgument for any n that is not a registered code. Any other
// Policy, including the zero value, is itself an invalid argument.
func (p Policy) ClassFromInteger(n int) (Class, error) {
	switch p {
	case RFC7231:
		if c, ok := p.TryClassFromInteger(n); ok {
			return c, nil
		}
		return NoClass, invalidValue("status.Class", n)
	case RFC9110:
		return RangeClass(n), nil
	default:
		return NoClass, invalidValue("status.Policy", int(p))
	}
}

// RangeClass classifies n purely by numeric range. It is total: values below
// 100 or at or above 500 are ServerError.
func RangeClass(n int) Class {
	switch {
	case n < 100 || n >= 500:
		return ServerError
	case n >= 400:
		return ClientError
	case n >= 300:
		return Redirection
	case n >= 200:
		return Successful
	default:
		return Informational
	}
}
