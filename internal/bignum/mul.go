package bignum

// Mul returns a*b using schoolbook multiplication. Neither operand is
// modified. The sign of a non-zero product is the XOR of the operand signs.
func Mul(a, b BigInt) BigInt {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	al, bl := a.magnitude(), b.magnitude()
	out := make([]Limb, len(al)+len(bl))
	for i, ai := range al {
		for j, bj := range bl {
			p := Combine(0, ai)*Combine(0, bj) + Combine(0, out[i+j])
			var carry Limb
			carry, out[i+j] = Split(p)
			out = rippleCarry(out, i+j+1, carry)
		}
	}
	return BigInt{neg: a.neg != b.neg, mag: trimLimbs(out)}
}

// rippleCarry adds carry into out[k], propagating upwards while it is
// non-zero and growing out if the carry runs off the end.
func rippleCarry(out []Limb, k int, carry Limb) []Limb {
	for carry != 0 {
		if k == len(out) {
			return append(out, carry)
		}
		carry, out[k] = Split(Combine(0, out[k]) + Combine(0, carry))
		k++
	}
	return out
}

// Mul returns x*y.
func (x BigInt) Mul(y BigInt) BigInt { return Mul(x, y) }

// Pow2 returns 2^n by doubling one n times. It exists as a reference for
// exact powers, not as a fast path.
func Pow2(n uint) BigInt {
	x := One()
	for range n {
		x.MulUint32InPlace(2)
	}
	return x
}
