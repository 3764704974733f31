package bignum

// Cmp compares a and b and returns -1, 0 or +1.
//
// Zero equals zero whatever the sign flags say. Otherwise a negative value is
// below every non-negative one; equal signs compare limb counts first and then
// limbs from the most significant down, with the outcome inverted for
// negatives.
func Cmp(a, b BigInt) int {
	az, bz := a.IsZero(), b.IsZero()
	switch {
	case az && bz:
		return 0
	case az:
		if b.neg {
			return 1
		}
		return -1
	case bz:
		if a.neg {
			return -1
		}
		return 1
	case a.neg != b.neg:
		if a.neg {
			return -1
		}
		return 1
	}
	c := cmpLimbs(a.magnitude(), b.magnitude())
	if a.neg {
		return -c
	}
	return c
}

// cmpLimbs compares two normalized magnitudes.
func cmpLimbs(a, b []Limb) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Cmp compares x and y.
func (x BigInt) Cmp(y BigInt) int { return Cmp(x, y) }

// Equal reports x == y.
func (x BigInt) Equal(y BigInt) bool { return Cmp(x, y) == 0 }

// Less reports x < y.
func (x BigInt) Less(y BigInt) bool { return Cmp(x, y) < 0 }

// LessOrEqual reports x <= y.
func (x BigInt) LessOrEqual(y BigInt) bool { return Cmp(x, y) <= 0 }

// Greater reports x > y.
func (x BigInt) Greater(y BigInt) bool { return Cmp(x, y) > 0 }

// GreaterOrEqual reports x >= y.
func (x BigInt) GreaterOrEqual(y BigInt) bool { return Cmp(x, y) >= 0 }
