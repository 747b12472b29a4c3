package newsapi

import (
	"errors"
	"fmt"
)

// ErrorKind classifies client failures.
type ErrorKind int

const (
	KindURLBuild ErrorKind = iota + 1
	KindTransport
	KindResponseRead
	KindParse
	KindBadRequest
)

// Sentinels for errors.Is matching against a *Error of the same kind.
var (
	ErrURLBuild     = errors.New("url parsing failed")
	ErrTransport    = errors.New("failed fetching articles")
	ErrResponseRead = errors.New("failed converting response to string")
	ErrParse        = errors.New("article parsing failed")
	ErrBadRequest   = errors.New("request failed")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindURLBuild:
		return ErrURLBuild
	case KindTransport:
		return ErrTransport
	case KindResponseRead:
		return ErrResponseRead
	case KindParse:
		return ErrParse
	case KindBadRequest:
		return ErrBadRequest
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	switch k {
	case KindURLBuild:
		return "url_build"
	case KindTransport:
		return "transport"
	case KindResponseRead:
		return "response_read"
	case KindParse:
		return "parse"
	case KindBadRequest:
		return "bad_request"
	default:
		return "unknown"
	}
}

// Error is the single failure type returned by Client.
// Message is set for KindBadRequest; Code holds the raw API code, if any.
type Error struct {
	Kind    ErrorKind
	Message string
	Code    string
	Err     error
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := "unknown error"
	if s := e.Kind.sentinel(); s != nil {
		base = s.Error()
	}
	if e.Kind == KindBadRequest {
		return fmt.Sprintf("%s: %s", base, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", base, e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// IsKind helps callers classify errors without unwrapping manually.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	codeAPIKeyDisabled  = "apiKeyDisabled"
	unknownErrorMessage = "Unknown error"
)

// codeMessages is the recognized API error vocabulary.
var codeMessages = map[string]string{
	codeAPIKeyDisabled: "Your API key has been disabled",
}

// mapCode translates an API-reported error code into a BadRequest error.
func mapCode(code *string) *Error {
	e := &Error{Kind: KindBadRequest, Message: unknownErrorMessage}
	if code == nil {
		return e
	}
	e.Code = *code
	if msg, ok := codeMessages[*code]; ok {
		e.Message = msg
	}
	return e
}
