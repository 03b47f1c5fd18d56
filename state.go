package rijndael

import (
	"encoding/hex"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// stateDim is the side of the square state (Nb, fixed at 4 for AES).
const stateDim = 4

// State is the 4x4 byte block the cipher operates on. It is stored row-major:
// StateFromBytes places input byte 4i+j at s[i][j], so a block read straight
// from plaintext or from the key schedule holds one FIPS-197 column per row.
// Transpose converts between that view and the FIPS state layout.
type State [stateDim][stateDim]byte

// StateFromBytes builds a State from exactly 16 bytes, filling rows first.
func StateFromBytes(b []byte) (State, error) {
	var s State
	if len(b) != BlockSize {
		return s, &LengthError{Len: len(b), Rows: stateDim, Cols: stateDim}
	}
	for i := 0; i < stateDim; i++ {
		copy(s[i][:], b[i*stateDim:(i+1)*stateDim])
	}
	return s, nil
}

// Row returns a pointer to row i for in-place edits.
func (s *State) Row(i int) *[stateDim]byte {
	return &s[i]
}

// Transpose returns s with rows and columns swapped.
func (s State) Transpose() State {
	var t State
	for i := 0; i < stateDim; i++ {
		for j := 0; j < stateDim; j++ {
			t[j][i] = s[i][j]
		}
	}
	return t
}

// Xor returns the elementwise XOR of s and other.
func (s State) Xor(other State) State {
	for i := 0; i < stateDim; i++ {
		for j := 0; j < stateDim; j++ {
			s[i][j] ^= other[i][j]
		}
	}
	return s
}

// Mul multiplies s by other, folding the products of each row/column pair
// with add starting from zero.
func (s State) Mul(other State, mul, add func(a, b byte) byte) State {
	var out State
	for i := 0; i < stateDim; i++ {
		for j := 0; j < stateDim; j++ {
			var acc byte
			for k := 0; k < stateDim; k++ {
				acc = add(acc, mul(s[i][k], other[k][j]))
			}
			out[i][j] = acc
		}
	}
	return out
}

// Map returns s with f applied to every byte.
func (s State) Map(f func(byte) byte) State {
	for i := 0; i < stateDim; i++ {
		for j := 0; j < stateDim; j++ {
			s[i][j] = f(s[i][j])
		}
	}
	return s
}

// Bytes returns the 16 bytes of s in row-major order.
func (s State) Bytes() []byte {
	out := make([]byte, 0, BlockSize)
	for i := 0; i < stateDim; i++ {
		out = append(out, s[i][:]...)
	}
	return out
}

// putBytes writes the 16 bytes of s into dst in row-major order.
func (s *State) putBytes(dst []byte) {
	for i := 0; i < stateDim; i++ {
		copy(dst[i*stateDim:], s[i][:])
	}
}

// Matrix returns s as a general 4x4 Matrix.
func (s State) Matrix() *Matrix {
	m := NewMatrix(stateDim, stateDim)
	for i := 0; i < stateDim; i++ {
		copy(m.Row(i), s[i][:])
	}
	return m
}

// String renders the 16 bytes as lowercase hex.
func (s State) String() string {
	return hex.EncodeToString(s.Bytes())
}
