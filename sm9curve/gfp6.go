package sm9curve

import "math/big"

// gfP6 is an element of Fp6 = Fp2[v]/(v^3-xi), stored as x*v^2 + y*v + z.
type gfP6 struct {
	x, y, z *gfP2
}

func newGFp6() *gfP6 {
	return &gfP6{newGFp2(), newGFp2(), newGFp2()}
}

func (e *gfP6) String() string {
	return "(" + e.x.String() + "," + e.y.String() + "," + e.z.String() + ")"
}

func (e *gfP6) Set(a *gfP6) *gfP6 {
	e.x.Set(a.x)
	e.y.Set(a.y)
	e.z.Set(a.z)
	return e
}

func (e *gfP6) SetZero() *gfP6 {
	e.x.SetZero()
	e.y.SetZero()
	e.z.SetZero()
	return e
}

func (e *gfP6) SetOne() *gfP6 {
	e.x.SetZero()
	e.y.SetZero()
	e.z.SetOne()
	return e
}

func (e *gfP6) IsZero() bool {
	return e.x.IsZero() && e.y.IsZero() && e.z.IsZero()
}

func (e *gfP6) IsOne() bool {
	return e.x.IsZero() && e.y.IsZero() && e.z.IsOne()
}

func (e *gfP6) Equal(a *gfP6) bool {
	return e.x.Equal(a.x) && e.y.Equal(a.y) && e.z.Equal(a.z)
}

func (e *gfP6) Add(a, b *gfP6) *gfP6 {
	e.x.Add(a.x, b.x)
	e.y.Add(a.y, b.y)
	e.z.Add(a.z, b.z)
	return e
}

func (e *gfP6) Sub(a, b *gfP6) *gfP6 {
	e.x.Sub(a.x, b.x)
	e.y.Sub(a.y, b.y)
	e.z.Sub(a.z, b.z)
	return e
}

func (e *gfP6) Neg(a *gfP6) *gfP6 {
	e.x.Neg(a.x)
	e.y.Neg(a.y)
	e.z.Neg(a.z)
	return e
}

// mulXi multiplies a gfP2 value by the sextic non-residue xi.
func mulXi(e, a *gfP2) *gfP2 {
	return e.Mul(a, xi)
}

// Mul implements Karatsuba multiplication for the cubic extension, after
// Devegili, OhEigeartaigh, Scott, Dahab, "Multiplication and Squaring on
// Pairing-Friendly Fields".
func (e *gfP6) Mul(a, b *gfP6) *gfP6 {
	v0 := newGFp2().Mul(a.z, b.z)
	v1 := newGFp2().Mul(a.y, b.y)
	v2 := newGFp2().Mul(a.x, b.x)

	t0 := newGFp2().Add(a.x, a.y)
	t1 := newGFp2().Add(b.x, b.y)
	tz := newGFp2().Mul(t0, t1)
	tz.Sub(tz, v1)
	tz.Sub(tz, v2)
	mulXi(tz, tz)
	tz.Add(tz, v0)

	t0.Add(a.y, a.z)
	t1.Add(b.y, b.z)
	ty := newGFp2().Mul(t0, t1)
	t0 = mulXi(newGFp2(), v2)
	ty.Sub(ty, v0)
	ty.Sub(ty, v1)
	ty.Add(ty, t0)

	t0.Add(a.x, a.z)
	t1.Add(b.x, b.z)
	tx := newGFp2().Mul(t0, t1)
	tx.Sub(tx, v0)
	tx.Add(tx, v1)
	tx.Sub(tx, v2)

	e.x.Set(tx)
	e.y.Set(ty)
	e.z.Set(tz)
	return e
}

func (e *gfP6) MulScalar(a *gfP6, b *gfP2) *gfP6 {
	e.x.Mul(a.x, b)
	e.y.Mul(a.y, b)
	e.z.Mul(a.z, b)
	return e
}

// MulV multiplies by v: (xv^2+yv+z)*v = x*xi + z*v + y*v^2 (since v^3=xi).
func (e *gfP6) MulV(a *gfP6) *gfP6 {
	tz := mulXi(newGFp2(), a.x)
	tx := newGFp2().Set(a.y)
	ty := newGFp2().Set(a.z)
	e.x.Set(tx)
	e.y.Set(ty)
	e.z.Set(tz)
	return e
}

func (e *gfP6) Square(a *gfP6) *gfP6 {
	return e.Mul(a, a)
}

// Exp sets e = a^k for a non-zero k; used to implement Invert by Fermat's
// little theorem (a^|Fp6*| = 1, so a^(|Fp6*|-1) = a^-1), avoiding a
// closed-form tower inversion formula.
func (e *gfP6) Exp(a *gfP6, k *big.Int) *gfP6 {
	sum := newGFp6().SetOne()
	t := newGFp6()
	for i := k.BitLen() - 1; i >= 0; i-- {
		t.Square(sum)
		if k.Bit(i) != 0 {
			sum.Mul(t, a)
		} else {
			sum.Set(t)
		}
	}
	e.Set(sum)
	return e
}

var fp6Order = new(big.Int).Sub(new(big.Int).Exp(P, big.NewInt(6), nil), bigOne)

func (e *gfP6) Invert(a *gfP6) *gfP6 {
	exp := new(big.Int).Sub(fp6Order, bigOne)
	return e.Exp(a, exp)
}
