package bignum

// DivUint32InPlace divides the magnitude by d and returns the remainder.
// Division by zero returns ErrDivisionByZero and leaves x untouched. The
// quotient is written to fresh storage, so copies of x are unaffected.
func (x *BigInt) DivUint32InPlace(d Limb) (Limb, error) {
	if d == 0 {
		return 0, ErrDivisionByZero
	}
	m := x.magnitude()
	q, rem := divLimbs(make([]Limb, len(m)), m, d)
	x.mag = q
	return rem, nil
}

// divLimbs writes src/d into dst and returns the trimmed quotient and the
// remainder. dst must have len(src) and may alias src; d must be non-zero.
func divLimbs(dst, src []Limb, d Limb) ([]Limb, Limb) {
	var rem Limb
	for i := len(src) - 1; i >= 0; i-- {
		n := Combine(rem, src[i])
		// rem < d, so the quotient fits in a limb.
		_, dst[i] = Split(n / DoubleLimb(d))
		_, rem = Split(n % DoubleLimb(d))
	}
	return trimLimbs(dst), rem
}

// DivUint32 returns the quotient and remainder of x's magnitude by d without
// modifying x. The quotient keeps x's sign flag.
func (x BigInt) DivUint32(d Limb) (BigInt, Limb, error) {
	q := x.Clone()
	rem, err := q.DivUint32InPlace(d)
	if err != nil {
		return BigInt{}, 0, err
	}
	return q, rem, nil
}

// DivIntInPlace divides x by a signed machine integer, truncating. A negative
// v flips the sign flag. The returned remainder is the magnitude remainder.
func (x *BigInt) DivIntInPlace(v int) (Limb, error) {
	m, neg, err := scalarMagnitude(v)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return 0, ErrDivisionByZero
	}
	if neg {
		x.neg = !x.neg
	}
	return x.DivUint32InPlace(m)
}

// DivInt is the value-returning form of DivIntInPlace.
func (x BigInt) DivInt(v int) (BigInt, Limb, error) {
	q := x.Clone()
	rem, err := q.DivIntInPlace(v)
	if err != nil {
		return BigInt{}, 0, err
	}
	return q, rem, nil
}
