package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Execution errors
const (
	// ErrCodeStageFailed indicates a pipeline stage handler returned an error.
	ErrCodeStageFailed ErrorCode = "STAGE_FAILED"
	// ErrCodeConditionFailed indicates a stage condition could not be evaluated.
	ErrCodeConditionFailed ErrorCode = "CONDITION_FAILED"
	// ErrCodeHandlerFailed indicates an event handler returned an error.
	ErrCodeHandlerFailed ErrorCode = "HANDLER_FAILED"
	// ErrCodeProcessorFailed indicates a stream processor returned an error.
	ErrCodeProcessorFailed ErrorCode = "PROCESSOR_FAILED"
)

// Stream endpoint errors
const (
	// ErrCodeSourceFailed indicates a source failed while producing an item.
	ErrCodeSourceFailed ErrorCode = "SOURCE_FAILED"
	// ErrCodeSinkFailed indicates a sink failed while consuming an item.
	ErrCodeSinkFailed ErrorCode = "SINK_FAILED"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Usage errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeSourceFailed: true,
	ErrCodeSinkFailed:   true,
	ErrCodeTimeout:      true,
	ErrCodeInternal:     false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
