package sm9curve

import "math/big"

// twistB is the Weierstrass coefficient of the sextic twist
// E'(Fp2): y^2 = x^3 + b/xi.
var twistB = func() *gfP2 {
	b := &gfP2{new(big.Int).Set(curveB), big.NewInt(0)}
	invXi := newGFp2().Invert(xi)
	return newGFp2().Mul(b, invXi)
}()

// twistPoint is an affine point on the sextic twist, over Fp2.
type twistPoint struct {
	x, y     *gfP2
	infinity bool
}

func newTwistPoint() *twistPoint {
	return &twistPoint{x: newGFp2(), y: newGFp2(), infinity: true}
}

func (t *twistPoint) Set(a *twistPoint) *twistPoint {
	t.x.Set(a.x)
	t.y.Set(a.y)
	t.infinity = a.infinity
	return t
}

func (t *twistPoint) String() string {
	if t.infinity {
		return "twistPoint(inf)"
	}
	return "twistPoint(" + t.x.String() + "," + t.y.String() + ")"
}

func (t *twistPoint) IsOnCurve() bool {
	if t.infinity {
		return true
	}
	y2 := newGFp2().Square(t.y)
	x3 := newGFp2().Square(t.x)
	x3.Mul(x3, t.x)
	x3.Add(x3, twistB)
	return y2.Equal(x3)
}

func (t *twistPoint) Double(a *twistPoint) *twistPoint {
	if a.infinity || a.y.IsZero() {
		t.infinity = true
		return t
	}
	num := newGFp2().Square(a.x)
	num = num.MulScalar(num, big.NewInt(3))
	den := newGFp2().Add(a.y, a.y)
	den.Invert(den)
	lambda := newGFp2().Mul(num, den)

	x3 := newGFp2().Square(lambda)
	twoX := newGFp2().Add(a.x, a.x)
	x3.Sub(x3, twoX)

	y3 := newGFp2().Sub(a.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, a.y)

	t.x.Set(x3)
	t.y.Set(y3)
	t.infinity = false
	return t
}

func (t *twistPoint) Add(a, b *twistPoint) *twistPoint {
	if a.infinity {
		return t.Set(b)
	}
	if b.infinity {
		return t.Set(a)
	}
	if a.x.Equal(b.x) {
		if !a.y.Equal(b.y) || a.y.IsZero() {
			t.infinity = true
			return t
		}
		return t.Double(a)
	}

	num := newGFp2().Sub(b.y, a.y)
	den := newGFp2().Sub(b.x, a.x)
	den.Invert(den)
	lambda := newGFp2().Mul(num, den)

	x3 := newGFp2().Square(lambda)
	x3.Sub(x3, a.x)
	x3.Sub(x3, b.x)

	y3 := newGFp2().Sub(a.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, a.y)

	t.x.Set(x3)
	t.y.Set(y3)
	t.infinity = false
	return t
}

func (t *twistPoint) Mul(a *twistPoint, k *big.Int) *twistPoint {
	sum := newTwistPoint()
	acc := newTwistPoint()
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc.Double(sum)
		if k.Bit(i) != 0 {
			acc.Add(acc, a)
		}
		sum.Set(acc)
	}
	t.Set(sum)
	return t
}

func (t *twistPoint) Neg(a *twistPoint) *twistPoint {
	t.x.Set(a.x)
	if a.infinity {
		t.y.SetZero()
	} else {
		t.y.Neg(a.y)
	}
	t.infinity = a.infinity
	return t
}

// gammaX1/gammaY1 and gammaX2/gammaY2 are the Frobenius twist coefficients
// the optimal ate pairing's post-loop correction steps need: under the
// embedding (x,y) |-> x*w^2+y*w^3 (w^6=xi), the p-power Frobenius of a
// twist point is (conjugate(x)*xi^((p-1)/3), conjugate(y)*xi^((p-1)/2)),
// and its square is (x*xi^((p^2-1)/3), y*xi^((p^2-1)/2)) (conjugation
// drops out the second time since a^(p^2)=a for every a in Fp2).
var (
	gammaX1 = newGFp2().Exp(xi, new(big.Int).Div(new(big.Int).Sub(P, bigOne), big.NewInt(3)))
	gammaY1 = newGFp2().Exp(xi, new(big.Int).Div(new(big.Int).Sub(P, bigOne), big.NewInt(2)))
	gammaX2 = func() *gfP2 {
		p2 := new(big.Int).Mul(P, P)
		return newGFp2().Exp(xi, new(big.Int).Div(new(big.Int).Sub(p2, bigOne), big.NewInt(3)))
	}()
	gammaY2 = func() *gfP2 {
		p2 := new(big.Int).Mul(P, P)
		return newGFp2().Exp(xi, new(big.Int).Div(new(big.Int).Sub(p2, bigOne), big.NewInt(2)))
	}()
)

// Frobenius sets t to the p-power Frobenius endomorphism of a (the
// "untwist, apply Frobenius, twist back" map pi used by the optimal ate
// pairing's post-loop correction, GM/T 0044's Ppubs/Ppube curve never
// needs this map itself; only Pair's own bookkeeping does).
func (t *twistPoint) Frobenius(a *twistPoint) *twistPoint {
	if a.infinity {
		t.infinity = true
		return t
	}
	t.x.Conjugate(a.x)
	t.x.Mul(t.x, gammaX1)
	t.y.Conjugate(a.y)
	t.y.Mul(t.y, gammaY1)
	t.infinity = false
	return t
}

// FrobeniusP2 sets t to pi^2(a), the Frobenius endomorphism applied twice.
func (t *twistPoint) FrobeniusP2(a *twistPoint) *twistPoint {
	if a.infinity {
		t.infinity = true
		return t
	}
	t.x.Mul(a.x, gammaX2)
	t.y.Mul(a.y, gammaY2)
	t.infinity = false
	return t
}

// G2 is the full-addition prime-order subgroup of the twist E'(Fp2).
type G2 struct {
	p *twistPoint
}

func NewG2() *G2 {
	return &G2{p: newTwistPoint()}
}

func (g *G2) String() string {
	return "sm9curve.G2" + g.p.String()
}

func (g *G2) Set(a *G2) *G2 {
	if g.p == nil {
		g.p = newTwistPoint()
	}
	g.p.Set(a.p)
	return g
}

func (g *G2) ScalarBaseMult(k *Scalar) *G2 {
	if g.p == nil {
		g.p = newTwistPoint()
	}
	g.p.Mul(g2Generator(), k.Int())
	return g
}

func (g *G2) ScalarMult(a *G2, k *Scalar) *G2 {
	if g.p == nil {
		g.p = newTwistPoint()
	}
	g.p.Mul(a.p, k.Int())
	return g
}

// Add performs full (not mixed/special-case) point addition, per spec.md's
// requirement that P = h1*P2 + Ppubs not assume any special position of
// its summands.
func (g *G2) Add(a, b *G2) *G2 {
	if g.p == nil {
		g.p = newTwistPoint()
	}
	g.p.Add(a.p, b.p)
	return g
}

func (g *G2) IsOnCurve() bool {
	return g.p != nil && g.p.IsOnCurve() && !g.p.infinity
}

const g2UncompressedLength = 1 + 32*4

// Marshal encodes g as 0x04 || Xre || Xim || Yre || Yim (each Fp2
// coordinate as its two Fp components, the constant part before the u
// part).
func (g *G2) Marshal() []byte {
	out := make([]byte, g2UncompressedLength)
	out[0] = 0x04
	parts := []*big.Int{g.p.x.x, g.p.x.y, g.p.y.x, g.p.y.y}
	for i, v := range parts {
		b := v.Bytes()
		off := 1 + i*32
		copy(out[off+32-len(b):off+32], b)
	}
	return out
}

func (g *G2) Unmarshal(in []byte) error {
	if len(in) != g2UncompressedLength {
		return errShortBuffer
	}
	if in[0] != 0x04 {
		return errBadPointForm
	}
	if g.p == nil {
		g.p = newTwistPoint()
	}
	xx := new(big.Int).SetBytes(in[1:33])
	xy := new(big.Int).SetBytes(in[33:65])
	yx := new(big.Int).SetBytes(in[65:97])
	yy := new(big.Int).SetBytes(in[97:129])
	for _, v := range []*big.Int{xx, xy, yx, yy} {
		if v.Cmp(P) >= 0 {
			return errCoordTooBig
		}
	}
	g.p.x = &gfP2{xx, xy}
	g.p.y = &gfP2{yx, yy}
	g.p.infinity = xx.Sign() == 0 && xy.Sign() == 0 && yx.Sign() == 0 && yy.Sign() == 0
	if !g.p.IsOnCurve() {
		return errNotOnCurve
	}
	return nil
}

func g2Generator() *twistPoint {
	return &twistPoint{
		x: &gfP2{new(big.Int).Set(p2xa), new(big.Int).Set(p2xb)},
		y: &gfP2{new(big.Int).Set(p2ya), new(big.Int).Set(p2yb)},
	}
}

// P2 returns the fixed G2 generator.
func P2() *G2 {
	return &G2{p: g2Generator()}
}

// P1 returns the fixed G1 generator.
func P1() *G1 {
	return &G1{p: g1Generator()}
}
