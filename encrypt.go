package rijndael

import (
	"context"
)

// Encrypt encrypts plaintext under key, treating every 16-byte block
// independently. The key must be 16, 24 or 32 bytes and the plaintext length
// a multiple of 16; the ciphertext has the same length as the plaintext.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	return EncryptContext(context.Background(), plaintext, key)
}

// EncryptContext is Encrypt with cancellation between blocks
func EncryptContext(ctx context.Context, plaintext, key []byte) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ValidatePlaintext(plaintext); err != nil {
		return nil, err
	}

	c, err := NewCipher(key, nil)
	if err != nil {
		return nil, err
	}
	return c.EncryptContext(ctx, plaintext)
}
