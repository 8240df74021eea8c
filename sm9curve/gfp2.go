package sm9curve

import "math/big"

// gfP2 is an element of Fp2 = Fp[u]/(u^2-beta), stored as x + y*u.
type gfP2 struct {
	x, y *big.Int
}

func newGFp2() *gfP2 {
	return &gfP2{new(big.Int), new(big.Int)}
}

func (e *gfP2) String() string {
	return "(" + e.x.String() + "," + e.y.String() + ")"
}

func (e *gfP2) Set(a *gfP2) *gfP2 {
	e.x.Set(a.x)
	e.y.Set(a.y)
	return e
}

func (e *gfP2) SetZero() *gfP2 {
	e.x.SetInt64(0)
	e.y.SetInt64(0)
	return e
}

func (e *gfP2) SetOne() *gfP2 {
	e.x.SetInt64(1)
	e.y.SetInt64(0)
	return e
}

func (e *gfP2) IsZero() bool {
	return e.x.Sign() == 0 && e.y.Sign() == 0
}

func (e *gfP2) IsOne() bool {
	return e.x.Cmp(bigOne) == 0 && e.y.Sign() == 0
}

func (e *gfP2) Equal(a *gfP2) bool {
	return e.x.Cmp(a.x) == 0 && e.y.Cmp(a.y) == 0
}

var bigOne = big.NewInt(1)

func (e *gfP2) Minimal() {
	if e.x.Sign() < 0 || e.x.Cmp(P) >= 0 {
		e.x.Mod(e.x, P)
	}
	if e.y.Sign() < 0 || e.y.Cmp(P) >= 0 {
		e.y.Mod(e.y, P)
	}
}

func (e *gfP2) Add(a, b *gfP2) *gfP2 {
	e.x.Add(a.x, b.x)
	e.y.Add(a.y, b.y)
	e.Minimal()
	return e
}

func (e *gfP2) Sub(a, b *gfP2) *gfP2 {
	e.x.Sub(a.x, b.x)
	e.y.Sub(a.y, b.y)
	e.Minimal()
	return e
}

func (e *gfP2) Neg(a *gfP2) *gfP2 {
	e.x.Neg(a.x)
	e.y.Neg(a.y)
	e.Minimal()
	return e
}

func (e *gfP2) Conjugate(a *gfP2) *gfP2 {
	e.y.Neg(a.y)
	e.x.Set(a.x)
	e.Minimal()
	return e
}

// Mul sets e = a*b using (ax+ay*u)(bx+by*u) = (ax*bx+beta*ay*by) + (ax*by+ay*bx)*u.
func (e *gfP2) Mul(a, b *gfP2) *gfP2 {
	tx := new(big.Int).Mul(a.x, b.x)
	t := new(big.Int).Mul(a.y, b.y)
	t.Mul(t, beta)
	tx.Add(tx, t)

	ty := new(big.Int).Mul(a.x, b.y)
	t.Mul(a.y, b.x)
	ty.Add(ty, t)

	e.x.Set(tx)
	e.y.Set(ty)
	e.Minimal()
	return e
}

func (e *gfP2) MulScalar(a *gfP2, b *big.Int) *gfP2 {
	e.x.Mul(a.x, b)
	e.y.Mul(a.y, b)
	e.Minimal()
	return e
}

// MulU multiplies by the non-residue u: (x+y*u)*u = beta*y + x*u.
func (e *gfP2) MulU(a *gfP2) *gfP2 {
	tx := new(big.Int).Mul(a.y, beta)
	ty := new(big.Int).Set(a.x)
	e.x.Set(tx)
	e.y.Set(ty)
	e.Minimal()
	return e
}

func (e *gfP2) Square(a *gfP2) *gfP2 {
	return e.Mul(a, a)
}

func (e *gfP2) Invert(a *gfP2) *gfP2 {
	// 1/(x+yu) = (x-yu) / (x^2 - beta*y^2)
	t1 := new(big.Int).Mul(a.x, a.x)
	t2 := new(big.Int).Mul(a.y, a.y)
	t2.Mul(t2, beta)
	t1.Sub(t1, t2)
	t1.Mod(t1, P)
	inv := new(big.Int).ModInverse(t1, P)

	e.x.Mul(a.x, inv)
	e.y.Neg(a.y)
	e.y.Mul(e.y, inv)
	e.Minimal()
	return e
}

// Exp sets e = a^k.
func (e *gfP2) Exp(a *gfP2, k *big.Int) *gfP2 {
	sum := newGFp2().SetOne()
	t := newGFp2()
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
