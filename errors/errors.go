package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified flowkit error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with automatic retryable detection.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// StageFailed creates an Error for a pipeline stage whose handler failed.
func StageFailed(pipeline, stage string, cause error) *Error {
	return &Error{
		Code: ErrCodeStageFailed, Message: fmt.Sprintf("stage %q failed", stage),
		Retryable: false, Cause: cause,
		Details: map[string]any{"pipeline": pipeline, "stage": stage},
	}
}

// ConditionFailed creates an Error for a stage condition that could not be evaluated.
func ConditionFailed(pipeline, stage string, cause error) *Error {
	return &Error{
		Code: ErrCodeConditionFailed, Message: fmt.Sprintf("condition for stage %q failed", stage),
		Retryable: false, Cause: cause,
		Details: map[string]any{"pipeline": pipeline, "stage": stage},
	}
}

// HandlerFailed creates an Error for an event handler that failed during dispatch.
func HandlerFailed(handler, eventType string, cause error) *Error {
	return &Error{
		Code: ErrCodeHandlerFailed, Message: fmt.Sprintf("handler %q failed for event type %q", handler, eventType),
		Retryable: false, Cause: cause,
		Details: map[string]any{"handler": handler, "event_type": eventType},
	}
}

// ProcessorFailed creates an Error for a stream processor that failed.
func ProcessorFailed(index int, cause error) *Error {
	return &Error{
		Code: ErrCodeProcessorFailed, Message: fmt.Sprintf("processor %d failed", index),
		Retryable: false, Cause: cause,
		Details: map[string]any{"processor": index},
	}
}

// SourceFailed creates an Error for a source that failed while producing.
func SourceFailed(cause error) *Error {
	return &Error{
		Code: ErrCodeSourceFailed, Message: "source failed while producing",
		Retryable: true, Cause: cause,
	}
}

// SinkFailed creates an Error for a sink that failed while consuming.
func SinkFailed(sink string, cause error) *Error {
	return &Error{
		Code: ErrCodeSinkFailed, Message: fmt.Sprintf("sink %q failed while consuming", sink),
		Retryable: true, Cause: cause,
		Details: map[string]any{"sink": sink},
	}
}

// Timeout creates an Error for an operation that timed out.
func Timeout(operation string) *Error {
	return &Error{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("operation %q timed out", operation),
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}

// InvalidInput creates an Error for invalid input.
func InvalidInput(field, reason string) *Error {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &Error{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		Retryable: false, Details: details,
	}
}

// Validation creates an Error for validation failures.
func Validation(message string) *Error {
	return &Error{
		Code: ErrCodeInvalidInput, Message: message,
		Retryable: false,
	}
}

// Internal creates an Error for an unexpected internal error.
func Internal(cause error) *Error {
	return &Error{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Retryable: false, Cause: cause,
	}
}

// --- Inspection helpers ---

// As unwraps err into an *Error if possible.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the error code of err, or ErrCodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.Code
	}
	return ErrCodeInternal
}

// IsRetryable reports whether err is marked retryable.
func IsRetryable(err error) bool {
	if e, ok := As(err); ok {
		return e.Retryable
	}
	return false
}
