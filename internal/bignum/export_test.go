package bignum

// FromLimbsUnchecked builds a BigInt straight from limbs without
// normalization. Callers must pass a non-empty slice with no most-significant
// zero limbs (other than canonical zero).
func FromLimbsUnchecked(neg bool, limbs ...Limb) BigInt {
	return BigInt{neg: neg, mag: append([]Limb(nil), limbs...)}
}

// RawNeg exposes the sign flag, including on zero.
func (x BigInt) RawNeg() bool { return x.neg }
