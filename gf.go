package rijndael

// reductionPoly holds the low byte of the AES reduction polynomial
// x^8 + x^4 + x^3 + x + 1 (0x11B); the x^8 term is implicit.
const reductionPoly = 0x1B

// gfAdd adds two elements of GF(2^8).
func gfAdd(a, b byte) byte {
	return a ^ b
}

// gfDouble multiplies a by x, reducing modulo the AES polynomial.
func gfDouble(a byte) byte {
	if a&0x80 != 0 {
		return (a << 1) ^ reductionPoly
	}
	return a << 1
}

// gfMul multiplies two elements of GF(2^8) using shift-and-add with
// reduction after every shift.
func gfMul(a, b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			result ^= a
		}
		a = gfDouble(a)
		b >>= 1
	}
	return result
}
