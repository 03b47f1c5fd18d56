package rijndael

import (
	"errors"
	"fmt"
)

// Error types represent different categories of errors

// ConfigurationError represents an unusable key or configuration value
type ConfigurationError struct {
	Field   string // The field or parameter that was rejected
	Value   any    // The rejected value
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InputError represents plaintext or buffer arguments that cannot be encrypted
type InputError struct {
	Operation string // "encrypt", "encrypt block", etc.
	Len       int    // Offending length
	Message   string // Human-readable error message
	Err       error  // Underlying error
}

func (e *InputError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("input error: %s: %s (len %d)", e.Operation, e.Message, e.Len)
	}
	return fmt.Sprintf("input error: %s (len %d)", e.Message, e.Len)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// LengthError is returned when a flat byte sequence does not fill a matrix
// of the requested shape exactly.
type LengthError struct {
	Len  int
	Rows int
	Cols int
	Row  int // first ragged row for MatrixFromRows, 0 otherwise
}

func (e *LengthError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("cannot convert %d bytes into a %dx%d matrix: row %d has the wrong length",
			e.Len, e.Rows, e.Cols, e.Row)
	}
	return fmt.Sprintf("cannot convert %d bytes into a %dx%d matrix", e.Len, e.Rows, e.Cols)
}

// Is reports ErrInvalidLength as a match so callers can test the category
// without extracting the triple.
func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// ShapeError is returned when two matrices cannot be combined
type ShapeError struct {
	Op        string // "xor" or "mul"
	Rows      int
	Cols      int
	OtherRows int
	OtherCols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matrix %s: incompatible shapes %dx%d and %dx%d",
		e.Op, e.Rows, e.Cols, e.OtherRows, e.OtherCols)
}

// VectorError represents a malformed known-answer test file
type VectorError struct {
	Path    string // File path or source name
	Line    int    // 1-based line number, 0 if not applicable
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *VectorError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("vector error: %s:%d: %s", e.Path, e.Line, e.Message)
	} else if e.Path != "" {
		return fmt.Sprintf("vector error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("vector error: %s", e.Message)
}

func (e *VectorError) Unwrap() error {
	return e.Err
}

// Common sentinel errors
var (
	ErrUnsupportedKeyLength = errors.New("unsupported key length: must be 16, 24 or 32 bytes")
	ErrInvalidBlockLength   = errors.New("input length is not a multiple of the block size")
	ErrInvalidLength        = errors.New("invalid matrix length")
	ErrInvalidRoundConstant = errors.New("round constant index must be at least 1")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrShortBuffer          = errors.New("buffer shorter than one block")
	ErrVectorMismatch       = errors.New("ciphertext does not match known answer")
)

// Helper functions for creating structured errors

// newKeyLengthError creates the error returned for keys of unsupported size
func newKeyLengthError(n int) error {
	return &ConfigurationError{
		Field:   "key",
		Value:   n,
		Message: fmt.Sprintf("got %d bytes, want 16, 24 or 32", n),
		Err:     ErrUnsupportedKeyLength,
	}
}

// newBlockLengthError creates the error returned for plaintext that does not
// divide into whole blocks
func newBlockLengthError(operation string, n int) error {
	return &InputError{
		Operation: operation,
		Len:       n,
		Message:   fmt.Sprintf("length is not a multiple of %d", BlockSize),
		Err:       ErrInvalidBlockLength,
	}
}

// Error checking helpers

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsInputError checks if an error is an input error
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// IsLengthError checks if an error is a matrix length error
func IsLengthError(err error) bool {
	var le *LengthError
	return errors.As(err, &le)
}

// IsShapeError checks if an error is a matrix shape error
func IsShapeError(err error) bool {
	var se *ShapeError
	return errors.As(err, &se)
}

// IsVectorError checks if an error is a known-answer file error
func IsVectorError(err error) bool {
	var ve *VectorError
	return errors.As(err, &ve)
}
