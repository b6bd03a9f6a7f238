// Package cubeerr provides the error taxonomy used across the enumerator:
// malformed input, I/O, cache mismatch, and programmer-error (invariant)
// failures, each distinguishable via errors.Is/errors.As.
package cubeerr

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per error kind in the design.
var (
	// ErrMalformed marks bad magic, truncated records, unsupported
	// compression bytes, LEB128 overflow, or a zero dimension byte.
	ErrMalformed = errors.New("malformed pcube input")

	// ErrIO marks a filesystem failure: missing file, permission, disk full.
	ErrIO = errors.New("pcube i/o error")

	// ErrCacheMismatch marks a cache file whose declared canonical/length
	// flags disagree with its actual contents.
	ErrCacheMismatch = errors.New("cache mismatch")

	// ErrInvariant marks a programmer error: an invariant violation that
	// should never occur given well-formed input (coordinate out of range,
	// count exceeding capacity, an axis dispatch falling through all six
	// permutation cases).
	ErrInvariant = errors.New("invariant violation")
)

// ErrorCode names the specific failure inside a kind, used for log lines and
// CLI diagnostics.
type ErrorCode string

const (
	CodeBadMagic         ErrorCode = "BAD_MAGIC"
	CodeUnsupportedCompr ErrorCode = "UNSUPPORTED_COMPRESSION"
	CodeLEB128Overflow   ErrorCode = "LEB128_OVERFLOW"
	CodeTruncatedRecord  ErrorCode = "TRUNCATED_RECORD"
	CodeZeroDimension    ErrorCode = "ZERO_DIMENSION"
	CodeLengthMismatch   ErrorCode = "LENGTH_MISMATCH"
	CodeNotCanonical     ErrorCode = "NOT_CANONICAL"
	CodeDuplicateCube    ErrorCode = "DUPLICATE_CUBE"
	CodeFileNotFound     ErrorCode = "FILE_NOT_FOUND"
	CodeWritePermission  ErrorCode = "WRITE_PERMISSION"
)

// PositionedError wraps an underlying error with a code and the file/byte
// position it was observed at, matching the CLI's "identify file and
// position" requirement.
type PositionedError struct {
	Code     ErrorCode
	File     string
	Position int64 // -1 if not applicable
	Message  string
	Err      error
}

func (e *PositionedError) Error() string {
	loc := e.File
	if e.Position >= 0 {
		loc = fmt.Sprintf("%s:%d", e.File, e.Position)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", loc, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", loc, e.Code, e.Message)
}

func (e *PositionedError) Unwrap() error { return e.Err }

// Malformed builds a PositionedError wrapping ErrMalformed.
func Malformed(code ErrorCode, file string, position int64, message string, cause error) *PositionedError {
	return &PositionedError{Code: code, File: file, Position: position, Message: message, Err: joinCause(ErrMalformed, cause)}
}

// CacheMismatch builds a PositionedError wrapping ErrCacheMismatch.
func CacheMismatch(code ErrorCode, file string, message string) *PositionedError {
	return &PositionedError{Code: code, File: file, Position: -1, Message: message, Err: ErrCacheMismatch}
}

// IO builds a PositionedError wrapping ErrIO.
func IO(code ErrorCode, file string, message string, cause error) *PositionedError {
	return &PositionedError{Code: code, File: file, Position: -1, Message: message, Err: joinCause(ErrIO, cause)}
}

func joinCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %v", sentinel, cause)
}

// IsMalformed reports whether err is, or wraps, ErrMalformed.
func IsMalformed(err error) bool { return errors.Is(err, ErrMalformed) }

// IsCacheMismatch reports whether err is, or wraps, ErrCacheMismatch.
func IsCacheMismatch(err error) bool { return errors.Is(err, ErrCacheMismatch) }
