package rijndael

import (
	"context"
)

// mixMatrix is the fixed MixColumns matrix of FIPS-197 section 5.1.3.
var mixMatrix = State{
	{0x02, 0x03, 0x01, 0x01},
	{0x01, 0x02, 0x03, 0x01},
	{0x01, 0x01, 0x02, 0x03},
	{0x03, 0x01, 0x01, 0x02},
}

// Cipher encrypts 16-byte blocks under one expanded key. The round keys are
// computed once in NewCipher and only read afterwards, so a Cipher is safe
// for concurrent use.
type Cipher struct {
	key       *Key
	roundKeys []State // key schedule, one schedule word per row
	stateKeys []State // roundKeys transposed into state layout
	config    *Config
}

// NewCipher expands key and returns a Cipher using config. A nil config
// selects DefaultConfig().
func NewCipher(key []byte, config *Config) (*Cipher, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}

	roundKeys, err := k.Expand()
	if err != nil {
		return nil, err
	}

	stateKeys := make([]State, len(roundKeys))
	for i, rk := range roundKeys {
		stateKeys[i] = rk.Transpose()
	}

	config.logger().Debug("expanded key schedule",
		"key_size", k.Size().String(),
		"rounds", k.Rounds(),
		"round_keys", len(roundKeys))

	return &Cipher{
		key:       k,
		roundKeys: roundKeys,
		stateKeys: stateKeys,
		config:    config,
	}, nil
}

// BlockSize returns the block size (16 bytes).
func (c *Cipher) BlockSize() int { return BlockSize }

// KeySize returns the size of the key the Cipher was built with.
func (c *Cipher) KeySize() KeySize { return c.key.Size() }

// Rounds returns the number of rounds, Nr.
func (c *Cipher) Rounds() int { return c.key.Rounds() }

// RoundKeys returns a copy of the expanded key schedule.
func (c *Cipher) RoundKeys() []State {
	out := make([]State, len(c.roundKeys))
	copy(out, c.roundKeys)
	return out
}

// EncryptBlock encrypts the first 16 bytes of src into dst. dst and src may
// overlap entirely.
func (c *Cipher) EncryptBlock(dst, src []byte) error {
	if err := ValidateBlockBuffers(dst, src); err != nil {
		return err
	}
	c.encryptBlock(dst[:BlockSize], src[:BlockSize])
	return nil
}

// Encrypt encrypts every block of plaintext independently and returns the
// concatenated ciphertext.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	return c.EncryptContext(context.Background(), plaintext)
}

// EncryptContext is Encrypt with cancellation between blocks. On any error no
// ciphertext is returned.
func (c *Cipher) EncryptContext(ctx context.Context, plaintext []byte) ([]byte, error) {
	if err := ValidatePlaintext(plaintext); err != nil {
		return nil, err
	}

	blocks := len(plaintext) / BlockSize
	workers := c.config.Parallel.workers(blocks)

	c.config.logger().Debug("encrypting",
		"blocks", blocks,
		"workers", workers,
		"parallel", workers > 1)

	ciphertext := make([]byte, len(plaintext))
	if err := encryptBlocks(ctx, ciphertext, plaintext, workers, c.encryptBlock); err != nil {
		return nil, err
	}
	return ciphertext, nil
}

// encryptBlock runs the FIPS-197 cipher on one block. Both slices must be
// exactly BlockSize long.
func (c *Cipher) encryptBlock(dst, src []byte) {
	var in State
	for i := 0; i < stateDim; i++ {
		copy(in[i][:], src[i*stateDim:(i+1)*stateDim])
	}
	s := in.Transpose()

	nr := c.key.Rounds()
	s = addRoundKey(s, c.stateKeys[0])
	for r := 1; r < nr; r++ {
		s = subBytes(s)
		shiftRows(&s)
		s = mixColumns(s)
		s = addRoundKey(s, c.stateKeys[r])
	}

	// The final round has no MixColumns.
	s = subBytes(s)
	shiftRows(&s)
	s = addRoundKey(s, c.stateKeys[nr])

	out := s.Transpose()
	out.putBytes(dst)
}

// subBytes substitutes every byte of s through the S-box.
func subBytes(s State) State {
	return s.Map(SubByte)
}

// shiftRows rotates row k of s left by k positions, in place.
func shiftRows(s *State) {
	for k := 1; k < stateDim; k++ {
		row := s.Row(k)
		rotated := *row
		for j := 0; j < stateDim; j++ {
			rotated[j] = row[(j+k)%stateDim]
		}
		*row = rotated
	}
}

// mixColumns multiplies each column of s by the MixColumns matrix in GF(2^8).
func mixColumns(s State) State {
	return mixMatrix.Mul(s, gfMul, gfAdd)
}

// addRoundKey XORs s with the round key.
func addRoundKey(s, roundKey State) State {
	return s.Xor(roundKey)
}
