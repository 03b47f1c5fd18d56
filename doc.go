// Package rijndael is a from-scratch implementation of AES (FIPS-197)
// block encryption.
//
// # Overview
//
// The package implements the forward cipher only: key expansion for 128,
// 192 and 256-bit keys and the SubBytes, ShiftRows, MixColumns and
// AddRoundKey round transforms. Every 16-byte block of the input is
// encrypted independently under the same expanded key.
//
// # Basic Usage
//
//	ciphertext, err := rijndael.Encrypt(plaintext, key)
//	if err != nil {
//	    // ErrUnsupportedKeyLength or ErrInvalidBlockLength
//	}
//
// A Cipher keeps the expanded key for repeated use and is safe for
// concurrent use:
//
//	c, err := rijndael.NewCipher(key, &rijndael.Config{
//	    Parallel: rijndael.DefaultParallelConfig(),
//	    Logger:   slog.Default(),
//	})
//	ciphertext, err := c.EncryptContext(ctx, plaintext)
//
// # State Layout
//
// A State is a 4x4 byte matrix stored row-major. Blocks read from input
// bytes or the key schedule carry one FIPS-197 column per row; the cipher
// transposes them into the standard state layout before the round
// transforms and back afterwards.
//
// # Known-Answer Tests
//
// SelfTest checks the FIPS-197 example vectors. VerifyVectorDir runs every
// NIST CAVP .rsp file found on an absfs.FileSystem, for example the
// ECBGFSbox, ECBKeySbox, ECBVarKey and ECBVarTxt suites. A full KAT_AES
// directory can be pointed at directly: CBC, CFB and OFB records (those with
// an IV) and Monte Carlo (*MCT*) files are skipped and listed in
// Report.SkippedFiles.
//
// # Not Provided
//
//   - Decryption and the inverse transforms
//   - Chaining modes (CBC, CTR, GCM), padding and streaming
//   - Password-based key derivation
//   - Constant-time table lookups: the S-box is a plain table, so this
//     implementation is not hardened against cache-timing attacks
package rijndael
