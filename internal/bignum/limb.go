package bignum

// Limb is one base-2^32 digit of a magnitude.
type Limb = uint32

// DoubleLimb holds any limb*limb product or limb+carry sum without overflow.
type DoubleLimb = uint64

// LimbBits is the width of a Limb in bits.
const LimbBits = 32

// Combine returns high*2^LimbBits + low.
func Combine(high, low Limb) DoubleLimb {
	return DoubleLimb(high)<<LimbBits | DoubleLimb(low)
}

// Split is the inverse of Combine.
func Split(v DoubleLimb) (high, low Limb) {
	return Limb(v >> LimbBits), Limb(v) //nolint:gosec // G115: truncation is intentional (low limb).
}
