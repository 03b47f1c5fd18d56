package rijndael

import (
	"bytes"
	"errors"
	"testing"
)

func TestRoundConstant(t *testing.T) {
	want := []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	for i, w := range want {
		got, err := roundConstant(i + 1)
		if err != nil {
			t.Fatalf("roundConstant(%d) failed: %v", i+1, err)
		}
		if got != w {
			t.Errorf("roundConstant(%d) = %#02x, want %#02x", i+1, got, w)
		}
	}
}

func TestRoundConstant_InvalidIndex(t *testing.T) {
	for _, i := range []int{0, -1} {
		_, err := roundConstant(i)
		if !errors.Is(err, ErrInvalidRoundConstant) {
			t.Errorf("roundConstant(%d) error = %v, want ErrInvalidRoundConstant", i, err)
		}
		if !IsConfigurationError(err) {
			t.Errorf("roundConstant(%d) error is not a *ConfigurationError", i)
		}
		if _, err := rcon(i); err == nil {
			t.Errorf("rcon(%d) succeeded", i)
		}
	}
}

func TestRcon(t *testing.T) {
	w, err := rcon(9)
	if err != nil {
		t.Fatalf("rcon(9) failed: %v", err)
	}
	if w != (word{0x1b, 0, 0, 0}) {
		t.Errorf("rcon(9) = %x, want 1b000000", w)
	}
}

func TestRotWord(t *testing.T) {
	got := rotWord(word{0x09, 0xcf, 0x4f, 0x3c})
	if want := (word{0xcf, 0x4f, 0x3c, 0x09}); got != want {
		t.Errorf("rotWord() = %x, want %x", got, want)
	}
}

func TestSubWord(t *testing.T) {
	// FIPS-197 Appendix A.1, i = 4
	got := subWord(word{0xcf, 0x4f, 0x3c, 0x09})
	if want := (word{0x8a, 0x84, 0xeb, 0x01}); got != want {
		t.Errorf("subWord() = %x, want %x", got, want)
	}
}

func TestNewKey(t *testing.T) {
	tests := []struct {
		size   int
		rounds int
		words  int
		name   string
	}{
		{size: 16, rounds: 10, words: 4, name: "aes-128"},
		{size: 24, rounds: 12, words: 6, name: "aes-192"},
		{size: 32, rounds: 14, words: 8, name: "aes-256"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := NewKey(make([]byte, tt.size))
			if err != nil {
				t.Fatalf("NewKey() failed: %v", err)
			}
			if k.Rounds() != tt.rounds || k.Words() != tt.words {
				t.Errorf("Rounds, Words = %d, %d, want %d, %d", k.Rounds(), k.Words(), tt.rounds, tt.words)
			}
			if k.Size().String() != tt.name {
				t.Errorf("Size() = %s, want %s", k.Size(), tt.name)
			}
		})
	}
}

func TestNewKey_UnsupportedLength(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 20, 31, 33, 64} {
		k, err := NewKey(make([]byte, n))
		if k != nil {
			t.Errorf("NewKey(%d bytes) returned a key", n)
		}
		if !errors.Is(err, ErrUnsupportedKeyLength) {
			t.Errorf("NewKey(%d bytes) error = %v, want ErrUnsupportedKeyLength", n, err)
		}
	}
}

func TestNewKey_CopiesInput(t *testing.T) {
	raw := []byte("Thats my Kung Fu")
	k, err := NewKey(raw)
	if err != nil {
		t.Fatalf("NewKey() failed: %v", err)
	}
	raw[0] = 'X'

	schedule, err := k.Expand()
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}
	if got := schedule[0].Bytes(); !bytes.Equal(got, []byte("Thats my Kung Fu")) {
		t.Errorf("round key 0 = %q, caller mutation leaked into key", got)
	}
}

func TestExpand_KungFu(t *testing.T) {
	// FIPS-197 style walkthrough with key "Thats my Kung Fu"
	want := []string{
		"5468617473206d79204b756e67204675",
		"e232fcf191129188b159e4e6d679a293",
		"56082007c71ab18f76435569a03af7fa",
		"d2600de7157abc686339e901c3031efb",
		"a11202c9b468bea1d75157a01452495b",
		"b1293b3305418592d210d232c6429b69",
		"bd3dc287b87c47156a6c9527ac2e0e4e",
		"cc96ed1674eaaa031e863f24b2a8316a",
		"8e51ef21fabb4522e43d7a0656954b6c",
		"bfe2bf904559fab2a16480b4f7f1cbd8",
		"28fddef86da4244accc0a4fe3b316f26",
	}

	k, err := NewKey([]byte("Thats my Kung Fu"))
	if err != nil {
		t.Fatalf("NewKey() failed: %v", err)
	}
	schedule, err := k.Expand()
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}
	if len(schedule) != len(want) {
		t.Fatalf("Expand() returned %d round keys, want %d", len(schedule), len(want))
	}
	for i, w := range want {
		if !bytes.Equal(schedule[i].Bytes(), mustState(t, w).Bytes()) {
			t.Errorf("round key %d = %s, want %s", i, schedule[i], w)
		}
	}
}

func TestExpand_Lengths(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
		last string
	}{
		{
			name: "aes-128",
			key:  mustHex("2b7e151628aed2a6abf7158809cf4f3c"),
			last: "d014f9a8c9ee2589e13f0cc8b6630ca6",
		},
		{
			name: "aes-192",
			key:  mustHex("000102030405060708090a0b0c0d0e0f1011121314151617"),
			last: "a4970a331a78dc09c418c271e3a41d5d",
		},
		{
			name: "aes-256",
			key:  mustHex("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"),
			last: "24fc79ccbf0979e9371ac23c6d68de36",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := NewKey(tt.key)
			if err != nil {
				t.Fatalf("NewKey() failed: %v", err)
			}
			schedule, err := k.Expand()
			if err != nil {
				t.Fatalf("Expand() failed: %v", err)
			}

			if len(schedule) != k.Rounds()+1 {
				t.Fatalf("Expand() returned %d round keys, want %d", len(schedule), k.Rounds()+1)
			}

			var flat []byte
			for _, rk := range schedule {
				flat = append(flat, rk.Bytes()...)
			}
			if len(flat) != BlockSize*(k.Rounds()+1) {
				t.Errorf("flattened schedule is %d bytes, want %d", len(flat), BlockSize*(k.Rounds()+1))
			}
			if !bytes.Equal(flat[:len(tt.key)], tt.key) {
				t.Errorf("schedule does not start with the raw key")
			}
			if got := schedule[len(schedule)-1].String(); got != tt.last {
				t.Errorf("last round key = %s, want %s", got, tt.last)
			}
		})
	}
}
