package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Structuring editor errors
	CodeNeedOneSection  ErrorCode = "NEED_ONE_SECTION"
	CodeEditorBusy      ErrorCode = "EDITOR_BUSY"
	CodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
)

// Message keys returned to clients. The console translates them.
const (
	MsgRequiredField      = "requiredField"
	MsgExistingSection    = "existingSection"
	MsgNeedOneSection     = "needOneSection"
	MsgDuplicatedQuestion = "duplicatedQuestion"
	MsgNotValidDocument   = "notValidDocument"
	MsgNotValidEmail      = "notValidEmail"
	MsgInvalidOption      = "invalidOption"
	MsgEditorBusy         = "editorBusy"
	MsgIndexOutOfRange    = "indexOutOfRange"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair that the error handler returns as details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewNeedOneSectionError() *DomainError {
	return NewError(CodeNeedOneSection, MsgNeedOneSection, nil)
}

func NewEditorBusyError() *DomainError {
	return NewError(CodeEditorBusy, MsgEditorBusy, nil)
}

func NewIndexOutOfRangeError(what string, index, length int) *DomainError {
	return NewError(CodeIndexOutOfRange, MsgIndexOutOfRange, nil).
		WithContext("target", what).
		WithContext("index", index).
		WithContext("length", length)
}

// ValidationErrors maps a field path to the first message key reported for it.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add records msg for field unless the field already has a message.
func (v ValidationErrors) Add(field, msg string) {
	if _, exists := v[field]; !exists {
		v[field] = msg
	}
}

// Merge copies other into v, prefixing every field with prefix.
func (v ValidationErrors) Merge(prefix string, other ValidationErrors) {
	for field, msg := range other {
		v.Add(prefix+field, msg)
	}
}

// OrNil returns nil when no field failed, so callers can return it directly as an error.
func (v ValidationErrors) OrNil() ValidationErrors {
	if len(v) == 0 {
		return nil
	}
	return v
}
