package rijndael

import (
	"fmt"
)

// Input validation helpers shared by the public entry points

// ValidateKey checks that key has a supported AES length
func ValidateKey(key []byte) error {
	if !KeySize(len(key)).Valid() {
		return newKeyLengthError(len(key))
	}
	return nil
}

// ValidatePlaintext checks that plaintext divides into whole blocks. An empty
// plaintext is valid and encrypts to an empty ciphertext.
func ValidatePlaintext(plaintext []byte) error {
	if len(plaintext)%BlockSize != 0 {
		return newBlockLengthError("encrypt", len(plaintext))
	}
	return nil
}

// ValidateBlockBuffers checks the arguments of a single-block encryption
func ValidateBlockBuffers(dst, src []byte) error {
	if len(src) < BlockSize {
		return &InputError{
			Operation: "encrypt block",
			Len:       len(src),
			Message:   fmt.Sprintf("src too small: need at least %d bytes", BlockSize),
			Err:       ErrShortBuffer,
		}
	}
	if len(dst) < BlockSize {
		return &InputError{
			Operation: "encrypt block",
			Len:       len(dst),
			Message:   fmt.Sprintf("dst too small: need at least %d bytes", BlockSize),
			Err:       ErrShortBuffer,
		}
	}
	return nil
}

// ValidateWorkers checks a worker count for the block pool
func ValidateWorkers(n int) error {
	if n < 0 {
		return &ConfigurationError{
			Field:   "parallel.max_workers",
			Value:   n,
			Message: "cannot be negative",
			Err:     ErrInvalidConfig,
		}
	}
	if n > maxWorkers {
		return &ConfigurationError{
			Field:   "parallel.max_workers",
			Value:   n,
			Message: fmt.Sprintf("must not exceed %d", maxWorkers),
			Err:     ErrInvalidConfig,
		}
	}
	return nil
}
