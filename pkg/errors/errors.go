package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies the terminal failures that can occur while
// compressing or decompressing an archive member's payload stream. None of
// these are recovered locally: every one aborts the current write session or
// read call, and the caller is expected to terminate the enclosing operation.
type ErrorCategory int

const (
	// ErrorInvalidConfig indicates a compression code outside the accepted
	// set. Rejected before any I/O is performed.
	ErrorInvalidConfig ErrorCategory = iota + 1

	// ErrorUnsupported indicates the selected algorithm is not available
	// in this build. There is no silent fallback to an uncompressed
	// stream.
	ErrorUnsupported

	// ErrorCodecInit indicates the codec could not be set up, such as a
	// rejected compression level or an unreadable stream header.
	ErrorCodecInit

	// ErrorCodec indicates the codec reported a hard error mid-stream,
	// such as corrupt compressed input. Continuing would risk corrupting
	// the archive.
	ErrorCodec

	// ErrorCodecClose indicates the codec's teardown step failed after
	// the stream itself completed, such as a trailing checksum mismatch.
	ErrorCodecClose

	// ErrorDownstreamWrite indicates the downstream chunk callback failed
	// or wrote fewer bytes than requested. Short writes are never retried.
	ErrorDownstreamWrite
)

// String returns the string representation of the error category.
// This is useful for logging, metrics, and error reporting.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorInvalidConfig:
		return "invalid-config"
	case ErrorUnsupported:
		return "unsupported-algorithm"
	case ErrorCodecInit:
		return "codec-init"
	case ErrorCodec:
		return "codec"
	case ErrorCodecClose:
		return "codec-close"
	case ErrorDownstreamWrite:
		return "downstream-write"
	default:
		return "unknown"
	}
}

// CompressError is the terminal error surfaced by the compression core.
// It records the failing operation and its category so callers can report a
// diagnostic and abort the enclosing archive operation.
type CompressError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewCompressError wraps err with the given category and operation name.
func NewCompressError(category ErrorCategory, operation string, err error) *CompressError {
	return &CompressError{
		Err:       err,
		Category:  category,
		Operation: operation,
		Timestamp: time.Now(),
	}
}

func (e *CompressError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *CompressError) Unwrap() error {
	return e.Err
}

// IsCompressError checks if a given error is of type CompressError.
func IsCompressError(err error) bool {
	var ce *CompressError
	return errors.As(err, &ce)
}

// GetCompressError attempts to extract a CompressError from a given error.
func GetCompressError(err error) *CompressError {
	var ce *CompressError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// IsCategory reports whether err is a CompressError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	ce := GetCompressError(err)
	return ce != nil && ce.Category == category
}
