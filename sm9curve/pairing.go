package sm9curve

import "math/big"

// GT is the target group of the pairing, the order-N subgroup of Fp12*.
type GT struct {
	e *gfP12
}

func NewGT() *GT {
	return &GT{e: newGFp12().SetOne()}
}

func (g *GT) String() string {
	return "sm9curve.GT" + g.e.String()
}

func (g *GT) Set(a *GT) *GT {
	g.e.Set(a.e)
	return g
}

func (g *GT) Equal(a *GT) bool {
	return g.e.Equal(a.e)
}

func (g *GT) IsOne() bool {
	return g.e.IsOne()
}

// Mul sets g = a*b in Fp12.
func (g *GT) Mul(a, b *GT) *GT {
	g.e.Mul(a.e, b.e)
	return g
}

// Exp sets g = a^k.
func (g *GT) Exp(a *GT, k *Scalar) *GT {
	g.e.Exp(a.e, k.Int())
	return g
}

func (g *GT) Marshal() []byte {
	return g.e.Marshal()
}

func (g *GT) Unmarshal(in []byte) error {
	if g.e == nil {
		g.e = newGFp12()
	}
	return g.e.Unmarshal(in)
}

// embedV2 lifts a Fp2 element to the w^2 = v slot of Fp12, matching the
// twist isomorphism E'(Fp2) -> E(Fp12), (x,y) |-> (x*w^2, y*w^3). Since
// gfP12's "y" component (the w^0 half) is itself x*v^2+y*v+z (gfp6.go),
// the v^1 coefficient is e.y.y, not e.y.x (that slot is v^2, i.e. w^4).
func embedV2(a *gfP2) *gfP12 {
	e := newGFp12()
	e.y.y.Set(a)
	return e
}

// embedV3 lifts a Fp2 element to the w^3 = v*w slot of Fp12.
func embedV3(a *gfP2) *gfP12 {
	e := newGFp12()
	e.x.y.Set(a)
	return e
}

// embedW lifts a Fp2 element to the w slot of Fp12. A slope lambda on the
// twist is the slope lambda*w on E(Fp12) under (x,y) |-> (x*w^2, y*w^3).
func embedW(a *gfP2) *gfP12 {
	e := newGFp12()
	e.x.z.Set(a)
	return e
}

// embedScalar lifts an Fp element to the constant term of Fp12.
func embedScalar(a *big.Int) *gfP12 {
	e := newGFp12()
	e.y.z.x.Set(a)
	return e
}

// embedFp2Scalar lifts an Fp2 element to the constant (w^0, v^0) term of
// Fp12.
func embedFp2Scalar(a *gfP2) *gfP12 {
	e := newGFp12()
	e.y.z.Set(a)
	return e
}

// lineDouble evaluates the tangent line at t (on the twist) at the G1
// point p, doubling t in place, and returns the Fp12 line value.
func lineDouble(t *twistPoint, p *curvePoint) *gfP12 {
	lambdaNum := newGFp2().Square(t.x)
	lambdaNum.MulScalar(lambdaNum, big.NewInt(3))
	lambdaDen := newGFp2().Add(t.y, t.y)
	lambdaDen.Invert(lambdaDen)
	lambda := newGFp2().Mul(lambdaNum, lambdaDen)

	xP := embedScalar(p.x)
	yP := embedScalar(p.y)
	xT := embedV2(t.x)
	yT := embedV3(t.y)
	lam := embedW(lambda)

	rhs := newGFp12().Sub(xP, xT)
	rhs.Mul(rhs, lam)

	out := newGFp12().Sub(yP, yT)
	out.Sub(out, rhs)

	t.Double(t)
	return out
}

// lineAdd evaluates the line through t and q (both on the twist) at the
// G1 point p, replacing t with t+q, and returns the Fp12 line value.
func lineAdd(t, q *twistPoint, p *curvePoint) *gfP12 {
	lambdaNum := newGFp2().Sub(q.y, t.y)
	lambdaDen := newGFp2().Sub(q.x, t.x)
	lambdaDen.Invert(lambdaDen)
	lambda := newGFp2().Mul(lambdaNum, lambdaDen)

	xP := embedScalar(p.x)
	yP := embedScalar(p.y)
	xT := embedV2(t.x)
	yT := embedV3(t.y)
	lam := embedW(lambda)

	rhs := newGFp12().Sub(xP, xT)
	rhs.Mul(rhs, lam)

	out := newGFp12().Sub(yP, yT)
	out.Sub(out, rhs)

	t.Add(t, q)
	return out
}

var loopCount = new(big.Int).Add(new(big.Int).Mul(sm9X, big.NewInt(6)), big.NewInt(2))

// finalExponent is (p^12-1)/Order, the exponent that raises a Miller
// loop output into the order-N subgroup of Fp12*.
var finalExponent = new(big.Int).Div(fp12Order, Order)

// miller runs the Miller loop over 6t+2 for twist point q and curve point
// p, returning the accumulated line value f and the final loop point t =
// [6t+2]q. Pair still owes t the two Frobenius-correction addition steps
// (against pi(q) and -pi^2(q)) that the optimal ate construction needs
// before t and f are in a state final exponentiation can use.
func miller(q *G2, p *G1) (*gfP12, *twistPoint) {
	f := newGFp12().SetOne()
	t := newTwistPoint().Set(q.p)

	for i := loopCount.BitLen() - 2; i >= 0; i-- {
		l := lineDouble(t, p.p)
		f.Square(f)
		f.Mul(f, l)
		if loopCount.Bit(i) != 0 {
			l = lineAdd(t, q.p, p.p)
			f.Mul(f, l)
		}
	}
	return f, t
}

// Pair computes the optimal ate pairing e(q,p) in GT. Following
// Vercauteren's optimal ate construction for BN curves, the 6t+2 Miller
// loop alone is not bilinear; it must be finished off with two further
// line evaluations against q1 = pi(q) and -q2 = -pi^2(q), where pi is the
// p-power Frobenius lifted to the twist (twistPoint.Frobenius).
func Pair(q *G2, p *G1) *GT {
	f, t := miller(q, p)

	q1 := newTwistPoint().Frobenius(q.p)
	f.Mul(f, lineAdd(t, q1, p.p))

	q2 := newTwistPoint().FrobeniusP2(q.p)
	q2.Neg(q2)
	f.Mul(f, lineAdd(t, q2, p.p))

	out := newGFp12().Exp(f, finalExponent)
	return &GT{e: out}
}
