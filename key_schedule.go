package rijndael

import (
	"fmt"
)

// word is the 4-byte unit the key schedule operates on.
type word [wordSize]byte

func (w word) xor(other word) word {
	for i := range w {
		w[i] ^= other[i]
	}
	return w
}

// rotWord rotates w left by one byte: [a0 a1 a2 a3] -> [a1 a2 a3 a0].
func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

// subWord applies the S-box to each byte of w.
func subWord(w word) word {
	for i := range w {
		w[i] = sbox[w[i]]
	}
	return w
}

// roundConstant returns rc(i): rc(1) = 1 and rc(i) = 2*rc(i-1) in GF(2^8).
// Index 0 has no defined value.
func roundConstant(i int) (byte, error) {
	if i < 1 {
		return 0, &ConfigurationError{
			Field:   "rcon",
			Value:   i,
			Message: fmt.Sprintf("no round constant for index %d", i),
			Err:     ErrInvalidRoundConstant,
		}
	}
	rc := byte(1)
	for j := 1; j < i; j++ {
		rc = gfDouble(rc)
	}
	return rc, nil
}

// rcon returns the round constant word [rc(i), 0, 0, 0].
func rcon(i int) (word, error) {
	rc, err := roundConstant(i)
	if err != nil {
		return word{}, err
	}
	return word{rc, 0, 0, 0}, nil
}

// Expand derives the round keys: Nr+1 blocks, block k being the key added in
// round k. Block 0 holds the first 16 key bytes.
//
// Words are generated per FIPS-197 section 5.2 and stored as the rows of a
// matrix, so each returned State carries one schedule word per row.
func (k *Key) Expand() ([]State, error) {
	nk := k.words
	total := stateDim * (k.rounds + 1)

	words := NewMatrix(total, wordSize)
	for i := 0; i < nk; i++ {
		copy(words.Row(i), k.raw[i*wordSize:(i+1)*wordSize])
	}

	for i := nk; i < total; i++ {
		var prev, back word
		copy(prev[:], words.Row(i-1))
		copy(back[:], words.Row(i-nk))

		switch {
		case i%nk == 0:
			rc, err := rcon(i / nk)
			if err != nil {
				return nil, err
			}
			prev = subWord(rotWord(prev)).xor(rc)
		case nk > 6 && i%nk == 4:
			prev = subWord(prev)
		}

		next := back.xor(prev)
		copy(words.Row(i), next[:])
	}

	flat := words.Bytes()
	schedule := make([]State, 0, k.rounds+1)
	for off := 0; off < len(flat); off += BlockSize {
		s, err := StateFromBytes(flat[off : off+BlockSize])
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, s)
	}
	return schedule, nil
}
