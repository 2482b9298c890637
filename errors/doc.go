// Package errors provides unified error handling for flowkit.
// It implements a structured error type with machine-readable codes,
// retryable detection, and cause chaining compatible with errors.Is/As.
package errors
