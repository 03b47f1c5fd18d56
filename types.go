package rijndael

import (
	"fmt"
	"io"
	"log/slog"
)

// KeySize identifies an AES variant by its key length in bytes
type KeySize int

const (
	// AES128 uses a 16-byte key and 10 rounds
	AES128 KeySize = 16
	// AES192 uses a 24-byte key and 12 rounds
	AES192 KeySize = 24
	// AES256 uses a 32-byte key and 14 rounds
	AES256 KeySize = 32
)

// String returns the string representation of the key size
func (k KeySize) String() string {
	switch k {
	case AES128:
		return "aes-128"
	case AES192:
		return "aes-192"
	case AES256:
		return "aes-256"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Valid reports whether k is one of the supported key sizes
func (k KeySize) Valid() bool {
	return k == AES128 || k == AES192 || k == AES256
}

// Rounds returns Nr for the key size, or 0 if the size is unsupported
func (k KeySize) Rounds() int {
	switch k {
	case AES128:
		return 10
	case AES192:
		return 12
	case AES256:
		return 14
	default:
		return 0
	}
}

// Config contains configuration for a Cipher
type Config struct {
	// Parallel controls how multi-block inputs are spread across workers
	Parallel ParallelConfig

	// Logger receives debug output. If nil, logging is discarded.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used when none is given
func DefaultConfig() *Config {
	return &Config{
		Parallel: DefaultParallelConfig(),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c == nil {
		return &ConfigurationError{Message: "config cannot be nil", Err: ErrInvalidConfig}
	}
	return c.Parallel.Validate()
}

// logger returns the configured logger or one that discards everything
func (c *Config) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return discardLogger
	}
	return c.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
