// Package errors defines the error taxonomy for the daraja-connect SDK.
//
// All SDK errors are represented as DarajaConnectError, which provides:
//   - Code: Machine-readable error identifier
//   - Message: Human-readable error description
//   - Layer: Which component layer produced the error (core, crypto, client)
//   - Cause: Underlying error, if any
//   - Context: Additional error details (field name, rejected value, etc.)
//
// Only pre-flight failures become errors: invalid inputs, unusable
// credentials, and requests that never produced an HTTP response. A response
// received from the provider, however error-shaped, is normalized into a
// Response value instead so that callers branch on data rather than on
// exceptions. Use the provided constructor functions (NewCoreError,
// NewCryptoError, NewClientError) to create properly typed errors with
// automatic layer assignment.
package errors

import "fmt"

// Code is a machine-readable error identifier.
type Code string

// Error codes - Core Layer
const (
	NETWORK_ERROR Code = "NETWORK_ERROR"
)

// Error codes - Crypto Layer
const (
	CERT_NOT_FOUND Code = "CERT_NOT_FOUND"
	CERT_INVALID   Code = "CERT_INVALID"
	ENCRYPT_FAILED Code = "ENCRYPT_FAILED"
)

// Error codes - Client Layer
const (
	INVALID_RESPONSE_TYPE Code = "INVALID_RESPONSE_TYPE"
	INVALID_URL           Code = "INVALID_URL"
	INVALID_MSISDN        Code = "INVALID_MSISDN"
	INVALID_COMMAND_ID    Code = "INVALID_COMMAND_ID"
	MISSING_PARAMETER     Code = "MISSING_PARAMETER"
	INVALID_ACCESS_TOKEN  Code = "INVALID_ACCESS_TOKEN"
	MALFORMED_CALLBACK    Code = "MALFORMED_CALLBACK"
)

// DarajaConnectError is the base error type for all SDK errors.
type DarajaConnectError struct {
	Code    Code
	Message string
	Layer   string // "core", "crypto", "client"
	Cause   error
	Context map[string]any
}

// Error returns a formatted error string.
func (e *DarajaConnectError) Error() string {
	msg := fmt.Sprintf("[%s] %s: %s", e.Layer, e.Code, e.Message)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error, enabling error chain inspection.
func (e *DarajaConnectError) Unwrap() error {
	return e.Cause
}

// NewCoreError creates a core layer error.
func NewCoreError(code Code, message string, cause error) *DarajaConnectError {
	return &DarajaConnectError{
		Code:    code,
		Message: message,
		Layer:   "core",
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// NewCryptoError creates a crypto layer error.
func NewCryptoError(code Code, message string, cause error) *DarajaConnectError {
	return &DarajaConnectError{
		Code:    code,
		Message: message,
		Layer:   "crypto",
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// NewClientError creates a client layer error.
func NewClientError(code Code, message string, cause error) *DarajaConnectError {
	return &DarajaConnectError{
		Code:    code,
		Message: message,
		Layer:   "client",
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// Is checks if the target error is a DarajaConnectError with the same code.
func (e *DarajaConnectError) Is(target error) bool {
	if target == nil {
		return false
	}
	other, ok := target.(*DarajaConnectError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// As checks if err is a DarajaConnectError and assigns it.
func As(err error, target **DarajaConnectError) bool {
	if err == nil {
		return false
	}
	if v, ok := err.(*DarajaConnectError); ok {
		*target = v
		return true
	}
	return false
}
