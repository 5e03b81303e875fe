package status

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Class is one of the five classes of response status codes.
// See: https://www.rfc-editor.org/rfc/rfc9110#section-15
type Class uint8

const (
	// NoClass marks an absent class. It is what tolerant lookups return on a
	// miss and is never a member of Classes.
	NoClass Class = iota

	Informational // 1xx
	Successful    // 2xx
	Redirection   // 3xx
	ClientError   // 4xx
	ServerError   // 5xx
)

var classNames = [...]string{
	NoClass:       "NoClass",
	Informational: "Informational",
	Successful:    "Successful",
	Redirection:   "Redirection",
	ClientError:   "ClientError",
	ServerError:   "ServerError",
}

// Match tokens, as produced by normalizeName.
var classTokens = map[string]Class{
	"informational": Informational,
	"successful":    Successful,
	"redirection":   Redirection,
	"clienterror":   ClientError,
	"servererror":   ServerError,
}

var classRanges = [...][2]int{
	Informational: {100, 200},
	Successful:    {200, 300},
	Redirection:   {300, 400},
	ClientError:   {400, 500},
	ServerError:   {500, 600},
}

// Classes returns the five classes in ascending order.
func Classes() []Class {
	return []Class{Informational, Successful, Redirection, ClientError, ServerError}
}

func (c Class) Valid() bool {
	return c >= Informational && c <= ServerError
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// Range returns the half-open range [lo, hi) of codes registered under c.
// NoClass has an empty range.
func (c Class) Range() (lo, hi int) {
	if !c.Valid() {
		return 0, 0
	}
	r := classRanges[c]
	return r[0], r[1]
}

// TryClassFromName resolves a class name. Matching ignores case, percent
// escapes and anything that is not a letter or digit, so "Client_Error",
// "client error" and "client%20error" all resolve to ClientError. Case
// folding is full Unicode folding, so non-ASCII letters that fold to ASCII
// match too: "ſucceſſful" resolves to Successful. Method names are stricter.
func TryClassFromName(name string) (Class, bool) {
	if name == "" {
		return NoClass, false
	}
	c, ok := classTokens[normalizeName(name)]
	return c, ok
}

func ClassFromName(name string) (Class, error) {
	c, ok := TryClassFromName(name)
	if !ok {
		return NoClass, invalidName("status.Class", name)
	}
	return c, nil
}

// ClassFromCode returns the class fixed on c at definition time. It is the
// same under every Policy.
func ClassFromCode(c Code) Class {
	return c.Class()
}

func normalizeName(name string) string {
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	// cases.Caser is stateful, so a fresh one per call.
	name = cases.Fold().String(name)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, name)
}
