// Package flexerror defines the error taxonomy shared by the Flex Web Service
// client and the report parser.
//
// Remote failures are *FlexError values classified by Kind. Callers match them
// with errors.Is against the package sentinels:
//
//	if errors.Is(err, flexerror.ErrNotReady) { ... }
//
// Parsing failures are *InvalidFormatError (wrong document root) and
// *ParseError (a classification code token that is not recognized).
package flexerror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure reported by, or while reaching, the Flex Web Service.
type Kind int

const (
	// KindProvider is any error code the client does not classify further.
	KindProvider Kind = iota
	// KindTransport is a network failure or a non-2xx HTTP response.
	KindTransport
	// KindAuth is an invalid token or query id (codes 1009, 1012).
	KindAuth
	// KindRateLimit is too many requests (code 1008).
	KindRateLimit
	// KindInProgress means another generation of the same query is running (code 1019).
	KindInProgress
	// KindNotReady means the statement is not generated yet (code 1003).
	KindNotReady
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAuth:
		return "authentication"
	case KindRateLimit:
		return "rate limit"
	case KindInProgress:
		return "in progress"
	case KindNotReady:
		return "not ready"
	default:
		return "provider"
	}
}

// Flex Web Service error codes with a dedicated classification.
const (
	CodeNotReady     = "1003"
	CodeRateLimit    = "1008"
	CodeInvalidToken = "1009"
	CodeInvalidQuery = "1012"
	CodeInProgress   = "1019"
)

// FlexError is a classified failure of a Flex Web Service call.
type FlexError struct {
	Kind    Kind
	Code    string // provider error code, empty for transport failures
	Message string
	Err     error
}

func (e *FlexError) Error() string {
	var msg string
	switch e.Kind {
	case KindTransport:
		msg = "flex transport error: " + e.Message
	case KindAuth:
		msg = "flex authentication error: " + e.Message
	case KindRateLimit:
		msg = "flex rate limit exceeded: " + e.Message
	case KindInProgress:
		msg = "flex statement generation in progress: " + e.Message
	case KindNotReady:
		msg = "flex statement not ready: " + e.Message
	default:
		msg = fmt.Sprintf("flex API error %s: %s", e.Code, e.Message)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FlexError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *FlexError of the same Kind. This lets the
// package sentinels match any error of their class.
func (e *FlexError) Is(target error) bool {
	t, ok := target.(*FlexError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrProvider   = &FlexError{Kind: KindProvider}
	ErrTransport  = &FlexError{Kind: KindTransport}
	ErrAuth       = &FlexError{Kind: KindAuth}
	ErrRateLimit  = &FlexError{Kind: KindRateLimit}
	ErrInProgress = &FlexError{Kind: KindInProgress}
	ErrNotReady   = &FlexError{Kind: KindNotReady}
)

// ErrFormat matches every *InvalidFormatError.
var ErrFormat = errors.New("invalid flex document format")

// ErrUnknownCode is wrapped by ParseError when a classification code token is not recognized.
var ErrUnknownCode = errors.New("unknown classification code")

// Classify maps a provider error code to its Kind. Codes that are only
// meaningful in one protocol phase (1003, 1019) are classified by the caller.
func Classify(code string) Kind {
	switch code {
	case CodeRateLimit:
		return KindRateLimit
	case CodeInvalidToken, CodeInvalidQuery:
		return KindAuth
	case CodeInProgress:
		return KindInProgress
	case CodeNotReady:
		return KindNotReady
	default:
		return KindProvider
	}
}

// IsRecoverable reports whether err is a class a caller may retry later:
// rate limit, in progress or not ready.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrRateLimit) || errors.Is(err, ErrInProgress) || errors.Is(err, ErrNotReady)
}

// ParseError represents a field that could not be converted while building a record.
type ParseError struct {
	Record string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Record, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents a document that is not a Flex Query response.
type InvalidFormatError struct {
	Source         string // file path, or "<bytes>" for in-memory input
	ExpectedFormat string
	Actual         string // actual root element, when known
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	msg := fmt.Sprintf("invalid format in '%s': %s. Expected: %s", e.Source, e.Msg, e.ExpectedFormat)
	if e.Actual != "" {
		msg += fmt.Sprintf(". Found: %s", e.Actual)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// Is matches ErrFormat.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrFormat
}
