package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeInternal   ErrorType = "internal"
	ErrorTypeCancelled  ErrorType = "cancelled"

	// Unit manager calls (discovery, property fetch, unit actions, reload) failed
	ErrorTypeTransport ErrorType = "transport"

	// Persisted topology could not be parsed
	ErrorTypeCorruptState ErrorType = "corrupt_state"

	// Edit conflicts with the unit state or carries an out-of-range value
	ErrorTypeInvalidEdit ErrorType = "invalid_edit"

	// Edit arrived while an apply cycle is in flight; the caller should retry
	ErrorTypeConcurrentEdit ErrorType = "concurrent_edit"

	// Override configuration fragment could not be written
	ErrorTypeConfigWrite ErrorType = "config_write"
)

// DomainError represents a structured error with type and context
type DomainError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *DomainError) Is(target error) bool {
	if other, ok := target.(*DomainError); ok {
		return e.Type == other.Type
	}
	return false
}

// WithContext adds context information to the error
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(errorType ErrorType, message string, cause error) *DomainError {
	return &DomainError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

func NewValidationError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeValidation, message, cause)
}

func NewNotFoundError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeNotFound, message, cause)
}

func NewConflictError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeConflict, message, cause)
}

func NewIOError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeIO, message, cause)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeInternal, message, cause)
}

func NewCancelledError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeCancelled, message, cause)
}

// Unit manager and apply cycle errors
func NewTransportError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeTransport, message, cause)
}

func NewCorruptStateError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeCorruptState, message, cause)
}

func NewInvalidEditError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeInvalidEdit, message, cause)
}

func NewConcurrentEditError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeConcurrentEdit, message, cause)
}

func NewConfigWriteError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeConfigWrite, message, cause)
}

func isType(err error, errorType ErrorType) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Type == errorType
}

func IsValidationError(err error) bool     { return isType(err, ErrorTypeValidation) }
func IsNotFoundError(err error) bool       { return isType(err, ErrorTypeNotFound) }
func IsConflictError(err error) bool       { return isType(err, ErrorTypeConflict) }
func IsIOError(err error) bool             { return isType(err, ErrorTypeIO) }
func IsInternalError(err error) bool       { return isType(err, ErrorTypeInternal) }
func IsCancelledError(err error) bool      { return isType(err, ErrorTypeCancelled) }
func IsTransportError(err error) bool      { return isType(err, ErrorTypeTransport) }
func IsCorruptStateError(err error) bool   { return isType(err, ErrorTypeCorruptState) }
func IsInvalidEditError(err error) bool    { return isType(err, ErrorTypeInvalidEdit) }
func IsConcurrentEditError(err error) bool { return isType(err, ErrorTypeConcurrentEdit) }
func IsConfigWriteError(err error) bool    { return isType(err, ErrorTypeConfigWrite) }

// TypeOf returns the domain error type carried by err, or an empty type
func TypeOf(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ""
}

// ErrorCollection aggregates errors from bulk operations (one apply cycle across many units)
type ErrorCollection struct {
	Errors []error
}

func (e *ErrorCollection) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors occurred: %v", len(e.Errors), e.Errors[0])
}

func (e *ErrorCollection) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

func (e *ErrorCollection) HasErrors() bool {
	return len(e.Errors) > 0
}

func (e *ErrorCollection) ToError() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// NewErrorCollection creates a new error collection
func NewErrorCollection() *ErrorCollection {
	return &ErrorCollection{
		Errors: make([]error, 0),
	}
}
