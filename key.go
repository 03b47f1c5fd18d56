package rijndael

// wordSize is the length of a key schedule word in bytes.
const wordSize = 4

// Key is a raw AES key together with the round and word counts it implies.
// A Key is only ever constructed with a supported length.
type Key struct {
	raw    []byte
	size   KeySize
	rounds int
	words  int
}

// NewKey validates raw and derives Nr and Nk from its length. The bytes are
// copied; later changes to raw do not affect the Key.
func NewKey(raw []byte) (*Key, error) {
	if err := ValidateKey(raw); err != nil {
		return nil, err
	}

	size := KeySize(len(raw))
	k := &Key{
		raw:    make([]byte, len(raw)),
		size:   size,
		rounds: size.Rounds(),
		words:  len(raw) / wordSize,
	}
	copy(k.raw, raw)
	return k, nil
}

// Size returns the key size.
func (k *Key) Size() KeySize { return k.size }

// Rounds returns Nr: 10, 12 or 14.
func (k *Key) Rounds() int { return k.rounds }

// Words returns Nk: 4, 6 or 8.
func (k *Key) Words() int { return k.words }
