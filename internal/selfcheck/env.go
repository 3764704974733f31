package selfcheck

import (
	"context"
	"math/rand/v2"

	"github.com/cockroachdb/apd/v3"

	"bigint/internal/bignum"
	"bigint/internal/trace"
)

// Env is what a suite gets to work with. It is owned by a single suite.
type Env struct {
	ctx        context.Context
	rng        *rand.Rand
	iterations int
	maxLimbs   int
	tracer     trace.Tracer
	span       uint64
}

// Rand returns the suite's deterministic source.
func (e *Env) Rand() *rand.Rand { return e.rng }

// Loop calls fn once per iteration, stopping early if the run is cancelled.
func (e *Env) Loop(fn func(i int)) {
	for i := range e.iterations {
		if e.ctx.Err() != nil {
			return
		}
		fn(i)
	}
}

// Op opens an op-scoped trace span under the suite span.
func (e *Env) Op(name string) *trace.Span {
	return trace.Begin(e.tracer, trace.ScopeOp, name, e.span)
}

// Magnitude returns a random non-negative value of 1..maxLimbs limbs. About
// one draw in eight is zero; limbs are biased towards 0 and 2^32-1.
func (e *Env) Magnitude() bignum.BigInt {
	if e.rng.IntN(8) == 0 {
		return bignum.Zero()
	}
	n := 1 + e.rng.IntN(e.maxLimbs)
	limbs := make([]bignum.Limb, n)
	for i := range limbs {
		limbs[i] = e.Limb()
	}
	return bignum.FromLimbs(false, limbs)
}

// Signed is Magnitude with a random sign.
func (e *Env) Signed() bignum.BigInt {
	return bignum.FromLimbs(e.rng.IntN(2) == 0, e.Magnitude().Limbs())
}

// NonZero returns a random non-zero magnitude.
func (e *Env) NonZero() bignum.BigInt {
	for {
		if x := e.Magnitude(); !x.IsZero() {
			return x
		}
	}
}

// Limb returns a random limb biased towards the edges.
func (e *Env) Limb() bignum.Limb {
	switch e.rng.IntN(6) {
	case 0:
		return 0
	case 1:
		return ^bignum.Limb(0)
	default:
		return e.rng.Uint32()
	}
}

// Oracle rebuilds x with apd so results can be checked against an
// implementation that shares no code with bignum.
func Oracle(x bignum.BigInt) *apd.BigInt {
	r := new(apd.BigInt)
	limbs := x.Limbs()
	for i := len(limbs) - 1; i >= 0; i-- {
		r.Lsh(r, bignum.LimbBits)
		r.Add(r, new(apd.BigInt).SetUint64(uint64(limbs[i])))
	}
	if x.IsNeg() {
		r.Neg(r)
	}
	return r
}
