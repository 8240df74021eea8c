// Package sm9curve implements the 256-bit Barreto-Naehrig pairing-friendly
// curve that underlies the SM9 identity-based scheme (GM/T 0003.5-2012,
// GB/T 38635.2-2020). It plays the role spec.md calls the "external
// collaborators": scalar arithmetic mod the group order, G1/G2 point
// arithmetic, and the optimal ate pairing e: G2 x G1 -> GT.
//
// The tower and curve-point layout mirrors the classic math/big-based
// bn256 construction (G1/G2/GT wrapping curvePoint/twistPoint/gfP12, a
// Miller loop plus final exponentiation) seen repeatedly in the retrieved
// pack; this file carries the one set of numbers that differs from
// alt_bn128: the SM9 field modulus, group order, curve coefficient and
// standard generators of GM/T 0003.5-2012 Annex A.
package sm9curve

import "math/big"

func hexBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("sm9curve: bad constant " + s)
	}
	return n
}

var (
	// P is the base field modulus Fp.
	P = hexBig("B640000002A3A6F1D603AB4FF58EC74521F2934B1A7AEEDBE56F9B27E351457D")

	// Order is the prime order N of G1, G2 and GT.
	Order = hexBig("B640000002A3A6F1D603AB4FF58EC74449F2934B18EA8BEEE56EE19CD69ECF25")

	// curveB is the Weierstrass coefficient of E(Fp): y^2 = x^3 + b.
	curveB = big.NewInt(5)

	// beta is the quadratic non-residue used to build Fp2 = Fp[u]/(u^2-beta).
	beta = big.NewInt(-2)

	// xi is the sextic non-residue of Fp2 used to build the twist
	// E'(Fp2): y^2 = x^3 + b/xi, and the higher towers Fp6 = Fp2[v]/(v^3-xi),
	// Fp12 = Fp6[w]/(w^2-v). It is u^-1 = -u/2, so b/xi = 5u and the twist
	// is the SM9 one, y^2 = x^3 + 5u, that carries the standard P2.
	xi = &gfP2{big.NewInt(0), hexBig("5B2000000151D378EB01D5A7FAC763A290F949A58D3D776DF2B7CD93F1A8A2BE")}
)

// P1 is the fixed generator of G1 (affine coordinates).
var p1x = hexBig("93DE051D62BF718FF5ED0704487D01D6E1E4086909DC3280E8C4E4817C66DDDD")
var p1y = hexBig("21FE8DDA4F21E607631065125C395BBC1C1C00CBFA6024350C464CD70A3EA616")

// P2 is the fixed generator of G2 (affine coordinates over Fp2).
var p2xa = hexBig("3722755292130B08D2AAB97FD34EC120EE265948D19C17ABF9B7213BAF82D65B")
var p2xb = hexBig("85AEF3D078640C98597B6027B441A01FF1DD2C190F5E93C454806C11D8806141")
var p2ya = hexBig("A7CF28D519BE3DA65F3170153D278FF247EFBA98A71A08116215BBA5C999A7C7")
var p2yb = hexBig("17509B092E845C1266BA0D262CBEE6ED0736A96FA347C8BD856DC76B84EBEB96")

// sm9X is the BN curve parameter t (called X or u in most BN-curve
// literature) that generates p and N via p(t)=36t^4+36t^3+24t^2+6t+1,
// N(t)=36t^4+36t^3+18t^2+6t+1. The Miller loop iterates over the binary
// expansion of 6t+2.
var sm9X = hexBig("600000000058F98A")
