package errx

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Type classifies an error independently of its HTTP rendering
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeBusiness       Type = "BUSINESS"
	TypeExternal       Type = "EXTERNAL"
	TypeRateLimit      Type = "RATE_LIMIT"
	TypeInternal       Type = "INTERNAL"
)

// Code is a registry-qualified error code such as "JOB.NOT_FOUND"
type Code string

func (c Code) String() string { return string(c) }

// Error is the error value returned across service and handler boundaries
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	Reason     string         `json:"reason,omitempty"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches two errx errors by code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithDetail attaches a single key/value pair to the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges the given map into the error details
func (e *Error) WithDetails(details map[string]any) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// WithReason sets a longer human readable explanation rendered as "message"
func (e *Error) WithReason(reason string) *Error {
	e.Reason = reason
	return e
}

// WithCause records the underlying error
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// HTTPResponse is the JSON body written for an *Error
type HTTPResponse struct {
	Error   string         `json:"error"`
	Type    Type           `json:"type"`
	Code    Code           `json:"code"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// ToHTTPResponse renders the error for clients. Causes of internal errors are never exposed.
func (e *Error) ToHTTPResponse() HTTPResponse {
	resp := HTTPResponse{
		Error:   e.Message,
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Reason,
		Details: e.Details,
	}
	if resp.Message == "" && e.Cause != nil && e.Type != TypeInternal {
		resp.Message = e.Cause.Error()
	}
	return resp
}

// ============================================================================
// Registry
// ============================================================================

type definition struct {
	typ     Type
	status  int
	message string
}

// Registry holds the error codes of one domain under a common prefix
type Registry struct {
	prefix string

	mu   sync.RWMutex
	defs map[Code]definition
}

// NewRegistry creates a registry whose codes are prefixed with prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[Code]definition),
	}
}

// Register declares a code and returns its qualified form
func (r *Registry) Register(name string, typ Type, status int, message string) Code {
	code := Code(r.prefix + "." + name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[code]; exists {
		panic(fmt.Sprintf("errx: duplicate error code %s", code))
	}
	r.defs[code] = definition{typ: typ, status: status, message: message}
	return code
}

// New creates a fresh error for a registered code
func (r *Registry) New(code Code) *Error {
	r.mu.RLock()
	def, ok := r.defs[code]
	r.mu.RUnlock()
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			Message:    "unregistered error code",
			HTTPStatus: http.StatusInternalServerError,
		}
	}

	return &Error{
		Code:       code,
		Type:       def.typ,
		Message:    def.message,
		HTTPStatus: def.status,
	}
}

// NewWithCause creates an error for code wrapping cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	return r.New(code).WithCause(cause)
}

// ============================================================================
// Package helpers
// ============================================================================

// New creates an unregistered error of the given type
func New(message string, typ Type) *Error {
	return &Error{
		Code:       Code(typ),
		Type:       typ,
		Message:    message,
		HTTPStatus: StatusForType(typ),
	}
}

// Wrap turns err into an *Error. Errors that already are *Error keep their code and status.
func Wrap(err error, message string, typ Type) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return existing
	}

	return &Error{
		Code:       Code(typ),
		Type:       typ,
		Message:    message,
		HTTPStatus: StatusForType(typ),
		Cause:      err,
	}
}

// As extracts an *Error from the chain
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsCode reports whether err carries the given code
func IsCode(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

// StatusForType returns the default HTTP status of a type
func StatusForType(typ Type) int {
	switch typ {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeExternal:
		return http.StatusBadGateway
	case TypeRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
