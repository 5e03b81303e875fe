// Package method enumerates the HTTP request methods.
package method

import (
	"golang.org/x/net/http/httpguts"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arthur-teixeira/http-enum/argerr"
)

type Method uint8

const (
	NoMethod Method = iota

	GET     // RFC 9110, 9.3.1
	HEAD    // RFC 9110, 9.3.2
	POST    // RFC 9110, 9.3.3
	PUT     // RFC 9110, 9.3.4
	DELETE  // RFC 9110, 9.3.5
	CONNECT // RFC 9110, 9.3.6
	OPTIONS // RFC 9110, 9.3.7
	TRACE   // RFC 9110, 9.3.8
	PATCH   // RFC 5789
)

var ErrInvalidArgument = argerr.ErrInvalidArgument

var names = [...]string{
	NoMethod: "",
	GET:      "GET",
	HEAD:     "HEAD",
	POST:     "POST",
	PUT:      "PUT",
	DELETE:   "DELETE",
	CONNECT:  "CONNECT",
	OPTIONS:  "OPTIONS",
	TRACE:    "TRACE",
	PATCH:    "PATCH",
}

var byName map[string]Method

func init() {
	byName = make(map[string]Method, len(names)-1)
	for m := GET; m <= PATCH; m++ {
		byName[names[m]] = m
	}
}

// Methods returns every known method in declaration order.
func Methods() []Method {
	return []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}
}

// String returns the canonical, uppercase method name.
func (m Method) String() string {
	if int(m) < len(names) {
		return names[m]
	}
	return ""
}

func (m Method) Valid() bool {
	return m >= GET && m <= PATCH
}

// Safe reports whether m is read-only by definition (RFC 9110, 9.2.1).
func (m Method) Safe() bool {
	switch m {
	case GET, HEAD, OPTIONS, TRACE:
		return true
	}
	return false
}

// Idempotent reports RFC 9110, 9.2.2 idempotence. Safe methods are idempotent.
func (m Method) Idempotent() bool {
	return m.Safe() || m == PUT || m == DELETE
}

// TryFromName matches name against the method names ignoring case. Nothing
// else is normalized: " get" and "G-E-T" do not match.
func TryFromName(name string) (Method, bool) {
	// Method names are tokens; anything else cannot be one.
	if !httpguts.ValidHeaderFieldName(name) {
		return NoMethod, false
	}
	m, ok := byName[cases.Upper(language.Und).String(name)]
	return m, ok
}

func FromName(name string) (Method, error) {
	m, ok := TryFromName(name)
	if !ok {
		return NoMethod, argerr.NewName("method.Method", name)
	}
	return m, nil
}
