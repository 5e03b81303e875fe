package status

import (
	"fmt"
	"slices"
)

// Code is an HTTP response status code.
type Code int

// HTTP status codes as registered with IANA.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	Continue           Code = 100 // RFC 9110, 15.2.1
	SwitchingProtocols Code = 101 // RFC 9110, 15.2.2
	Processing         Code = 102 // RFC 2518, 10.1
	EarlyHints         Code = 103 // RFC 8297

	OK                   Code = 200 // RFC 9110, 15.3.1
	Created              Code = 201 // RFC 9110, 15.3.2
	Accepted             Code = 202 // RFC 9110, 15.3.3
	NonAuthoritativeInfo Code = 203 // RFC 9110, 15.3.4
	NoContent            Code = 204 // RFC 9110, 15.3.5
	ResetContent         Code = 205 // RFC 9110, 15.3.6
	PartialContent       Code = 206 // RFC 9110, 15.3.7
	MultiStatus          Code = 207 // RFC 4918, 11.1
	AlreadyReported      Code = 208 // RFC 5842, 7.1
	IMUsed               Code = 226 // RFC 3229, 10.4.1

	MultipleChoices   Code = 300 // RFC 9110, 15.4.1
	MovedPermanently  Code = 301 // RFC 9110, 15.4.2
	Found             Code = 302 // RFC 9110, 15.4.3
	SeeOther          Code = 303 // RFC 9110, 15.4.4
	NotModified       Code = 304 // RFC 9110, 15.4.5
	UseProxy          Code = 305 // RFC 9110, 15.4.6
	_                 Code = 306 // RFC 9110, 15.4.7 (Unused)
	TemporaryRedirect Code = 307 // RFC 9110, 15.4.8
	PermanentRedirect Code = 308 // RFC 9110, 15.4.9

	BadRequest                   Code = 400 // RFC 9110, 15.5.1
	Unauthorized                 Code = 401 // RFC 9110, 15.5.2
	PaymentRequired              Code = 402 // RFC 9110, 15.5.3
	Forbidden                    Code = 403 // RFC 9110, 15.5.4
	NotFound                     Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed             Code = 405 // RFC 9110, 15.5.6
	NotAcceptable                Code = 406 // RFC 9110, 15.5.7
	ProxyAuthRequired            Code = 407 // RFC 9110, 15.5.8
	RequestTimeout               Code = 408 // RFC 9110, 15.5.9
	Conflict                     Code = 409 // RFC 9110, 15.5.10
	Gone                         Code = 410 // RFC 9110, 15.5.11
	LengthRequired               Code = 411 // RFC 9110, 15.5.12
	PreconditionFailed           Code = 412 // RFC 9110, 15.5.13
	RequestEntityTooLarge        Code = 413 // RFC 9110, 15.5.14
	RequestURITooLong            Code = 414 // RFC 9110, 15.5.15
	UnsupportedMediaType         Code = 415 // RFC 9110, 15.5.16
	RequestedRangeNotSatisfiable Code = 416 // RFC 9110, 15.5.17
	ExpectationFailed            Code = 417 // RFC 9110, 15.5.18
	Teapot                       Code = 418 // RFC 9110, 15.5.19 (Unused)
	MisdirectedRequest           Code = 421 // RFC 9110, 15.5.20
	UnprocessableEntity          Code = 422 // RFC 9110, 15.5.21
	Locked                       Code = 423 // RFC 4918, 11.3
	FailedDependency             Code = 424 // RFC 4918, 11.4
	TooEarly                     Code = 425 // RFC 8470, 5.2.
	UpgradeRequired              Code = 426 // RFC 9110, 15.5.22
	PreconditionRequired         Code = 428 // RFC 6585, 3
	TooManyRequests              Code = 429 // RFC 6585, 4
	RequestHeaderFieldsTooLarge  Code = 431 // RFC 6585, 5
	UnavailableForLegalReasons   Code = 451 // RFC 7725, 3

	InternalServerError           Code = 500 // RFC 9110, 15.6.1
	NotImplemented                Code = 501 // RFC 9110, 15.6.2
	BadGateway                    Code = 502 // RFC 9110, 15.6.3
	ServiceUnavailable            Code = 503 // RFC 9110, 15.6.4
	GatewayTimeout                Code = 504 // RFC 9110, 15.6.5
	HTTPVersionNotSupported       Code = 505 // RFC 9110, 15.6.6
	VariantAlsoNegotiates         Code = 506 // RFC 2295, 8.1
	InsufficientStorage           Code = 507 // RFC 4918, 11.5
	LoopDetected                  Code = 508 // RFC 5842, 7.2
	NotExtended                   Code = 510 // RFC 2774, 7
	NetworkAuthenticationRequired Code = 511 // RFC 6585, 6
)

type entry struct {
	code  Code
	name  string
	text  string
	class Class
}

// Kept in ascending order; Codes relies on it.
var registry = []entry{
	{code: Continue, name: "Continue", text: "Continue"},
	{code: SwitchingProtocols, name: "SwitchingProtocols", text: "Switching Protocols"},
	{code: Processing, name: "Processing", text: "Processing"},
	{code: EarlyHints, name: "EarlyHints", text: "Early Hints"},

	{code: OK, name: "OK", text: "OK"},
	{code: Created, name: "Created", text: "Created"},
	{code: Accepted, name: "Accepted", text: "Accepted"},
	{code: NonAuthoritativeInfo, name: "NonAuthoritativeInfo", text: "Non-Authoritative Information"},
	{code: NoContent, name: "NoContent", text: "No Content"},
	{code: ResetContent, name: "ResetContent", text: "Reset Content"},
	{code: PartialContent, name: "PartialContent", text: "Partial Content"},
	{code: MultiStatus, name: "MultiStatus", text: "Multi-Status"},
	{code: AlreadyReported, name: "AlreadyReported", text: "Already Reported"},
	{code: IMUsed, name: "IMUsed", text: "IM Used"},

	{code: MultipleChoices, name: "MultipleChoices", text: "Multiple Choices"},
	{code: MovedPermanently, name: "MovedPermanently", text: "Moved Permanently"},
	{code: Found, name: "Found", text: "Found"},
	{code: SeeOther, name: "SeeOther", text: "See Other"},
	{code: NotModified, name: "NotModified", text: "Not Modified"},
	{code: UseProxy, name: "UseProxy", text: "Use Proxy"},
	{code: TemporaryRedirect, name: "TemporaryRedirect", text: "Temporary Redirect"},
	{code: PermanentRedirect, name: "PermanentRedirect", text: "Permanent Redirect"},

	{code: BadRequest, name: "BadRequest", text: "Bad Request"},
	{code: Unauthorized, name: "Unauthorized", text: "Unauthorized"},
	{code: PaymentRequired, name: "PaymentRequired", text: "Payment Required"},
	{code: Forbidden, name: "Forbidden", text: "Forbidden"},
	{code: NotFound, name: "NotFound", text: "Not Found"},
	{code: MethodNotAllowed, name: "MethodNotAllowed", text: "Method Not Allowed"},
	{code: NotAcceptable, name: "NotAcceptable", text: "Not Acceptable"},
	{code: ProxyAuthRequired, name: "ProxyAuthRequired", text: "Proxy Authentication Required"},
	{code: RequestTimeout, name: "RequestTimeout", text: "Request Timeout"},
	{code: Conflict, name: "Conflict", text: "Conflict"},
	{code: Gone, name: "Gone", text: "Gone"},
	{code: LengthRequired, name: "LengthRequired", text: "Length Required"},
	{code: PreconditionFailed, name: "PreconditionFailed", text: "Precondition Failed"},
	{code: RequestEntityTooLarge, name: "RequestEntityTooLarge", text: "Request Entity Too Large"},
	{code: RequestURITooLong, name: "RequestURITooLong", text: "Request URI Too Long"},
	{code: UnsupportedMediaType, name: "UnsupportedMediaType", text: "Unsupported Media Type"},
	{code: RequestedRangeNotSatisfiable, name: "RequestedRangeNotSatisfiable", text: "Requested Range Not Satisfiable"},
	{code: ExpectationFailed, name: "ExpectationFailed", text: "Expectation Failed"},
	{code: Teapot, name: "Teapot", text: "I'm a teapot"},
	{code: MisdirectedRequest, name: "MisdirectedRequest", text: "Misdirected Request"},
	{code: UnprocessableEntity, name: "UnprocessableEntity", text: "Unprocessable Entity"},
	{code: Locked, name: "Locked", text: "Locked"},
	{code: FailedDependency, name: "FailedDependency", text: "Failed Dependency"},
	{code: TooEarly, name: "TooEarly", text: "Too Early"},
	{code: UpgradeRequired, name: "UpgradeRequired", text: "Upgrade Required"},
	{code: PreconditionRequired, name: "PreconditionRequired", text: "Precondition Required"},
	{code: TooManyRequests, name: "TooManyRequests", text: "Too Many Requests"},
	{code: RequestHeaderFieldsTooLarge, name: "RequestHeaderFieldsTooLarge", text: "Request Header Fields Too Large"},
	{code: UnavailableForLegalReasons, name: "UnavailableForLegalReasons", text: "Unavailable For Legal Reasons"},

	{code: InternalServerError, name: "InternalServerError", text: "Internal Server Error"},
	{code: NotImplemented, name: "NotImplemented", text: "Not Implemented"},
	{code: BadGateway, name: "BadGateway", text: "Bad Gateway"},
	{code: ServiceUnavailable, name: "ServiceUnavailable", text: "Service Unavailable"},
	{code: GatewayTimeout, name: "GatewayTimeout", text: "Gateway Timeout"},
	{code: HTTPVersionNotSupported, name: "HTTPVersionNotSupported", text: "HTTP Version Not Supported"},
	{code: VariantAlsoNegotiates, name: "VariantAlsoNegotiates", text: "Variant Also Negotiates"},
	{code: InsufficientStorage, name: "InsufficientStorage", text: "Insufficient Storage"},
	{code: LoopDetected, name: "LoopDetected", text: "Loop Detected"},
	{code: NotExtended, name: "NotExtended", text: "Not Extended"},
	{code: NetworkAuthenticationRequired, name: "NetworkAuthenticationRequired", text: "Network Authentication Required"},
}

var (
	codes       []Code
	codeByValue = make(map[Code]*entry, len(registry))
	codeByName  = make(map[string]Code, len(registry))
)

// The class of every registered code is fixed here, once, from its leading
// digit. Nothing recomputes it at lookup time.
func init() {
	codes = make([]Code, len(registry))
	for i := range registry {
		e := &registry[i]
		switch e.code / 100 {
		case 1:
			e.class = Informational
		case 2:
			e.class = Successful
		case 3:
			e.class = Redirection
		case 4:
			e.class = ClientError
		case 5:
			e.class = ServerError
		default:
			panic(fmt.Sprintf("status: registered code %d outside [100, 599]", e.code))
		}
		codes[i] = e.code
		codeByValue[e.code] = e
		codeByName[normalizeName(e.name)] = e.code
	}
}

// Codes returns every registered status code in ascending order.
func Codes() []Code {
	return slices.Clone(codes)
}

// TryCodeFromInteger reports the registered code with value n, if any.
func TryCodeFromInteger(n int) (Code, bool) {
	if _, ok := codeByValue[Code(n)]; !ok {
		return 0, false
	}
	return Code(n), true
}

func CodeFromInteger(n int) (Code, error) {
	c, ok := TryCodeFromInteger(n)
	if !ok {
		return 0, invalidValue("status.Code", n)
	}
	return c, nil
}

// TryCodeFromName looks a code up by its constant name. The name is
// normalized the same way class names are, so "not found", "Not_Found" and
// "NOTFOUND" all find NotFound.
func TryCodeFromName(name string) (Code, bool) {
	c, ok := codeByName[normalizeName(name)]
	return c, ok
}

func CodeFromName(name string) (Code, error) {
	c, ok := TryCodeFromName(name)
	if !ok {
		return 0, invalidName("status.Code", name)
	}
	return c, nil
}

func (c Code) Registered() bool {
	_, ok := codeByValue[c]
	return ok
}

// Class returns the class fixed for c when the registry was built. It returns
// NoClass for values that are not registered.
func (c Code) Class() Class {
	if e, ok := codeByValue[c]; ok {
		return e.class
	}
	return NoClass
}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func (c Code) Text() string {
	if e, ok := codeByValue[c]; ok {
		return e.text
	}
	return ""
}

// Name returns the Go constant name of c, or "" if c is not registered.
func (c Code) Name() string {
	if e, ok := codeByValue[c]; ok {
		return e.name
	}
	return ""
}

func (c Code) String() string {
	if text := c.Text(); text != "" {
		return fmt.Sprintf("%d %s", int(c), text)
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code int) string {
	return Code(code).Text()
}
