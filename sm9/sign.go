package sm9

import (
	"crypto/rand"
	"io"

	"github.com/paul-lee-attorney/sm9/sm9curve"
)

// NewSignContext starts a streaming signing context, pre-seeded with the
// H2 domain byte, ready to accept message bytes via Write.
func NewSignContext() *hashContext {
	return newHashContext()
}

// NewVerifyContext starts a streaming verification context; it is
// identical to a signing context up to the finalization step.
func NewVerifyContext() *hashContext {
	return newHashContext()
}

// Sign runs algorithm A1-A6 of GM/T 0044 4.2.1 over the message bytes
// already written into ctx, producing (h, S). rnd supplies the ephemeral
// scalar r on every loop iteration; pass nil to use crypto/rand.
//
// The pairing base g = e(Ppubs, P1) is computed once, before the loop,
// and preserved across retries: only w = g^r is recomputed each
// iteration. An earlier reference implementation overwrote g itself on
// every retry (g <- g^r), which silently changes the base pairing value
// a retried iteration signs against; that is corrected here (see DN-1 in
// the accompanying design notes).
func Sign(rnd io.Reader, priv *SignPrivateKey, ctx *hashContext) (sig *Signature, err error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	g := sm9curve.Pair(priv.Pub.Ppubs, sm9curve.P1())

	var r *sm9curve.Scalar
	var h *sm9curve.Scalar
	var l *sm9curve.Scalar

	for {
		r, err = sm9curve.RandomScalar(rnd)
		if err != nil {
			return nil, err
		}

		w := sm9curve.NewGT().Exp(g, r)
		wBytes := w.Marshal()
		h = ctx.finish(wBytes)
		sm9curve.Zeroize(wBytes)

		l = sm9curve.NewScalar().Sub(r, h)
		if !l.IsZero() {
			break
		}
		r.Zeroize()
	}

	s := sm9curve.NewG1().ScalarMult(priv.Ds, l)

	r.Zeroize()
	l.Zeroize()

	return &Signature{H: h, S: s}, nil
}

// Verify runs algorithm B1-B9 of GM/T 0044 4.2.2 over the message bytes
// already written into ctx, reporting whether sig is valid under master
// public key pub for identity id. A non-nil error means the input itself
// was malformed or out of range (status "-1" of the scheme description);
// the bool distinguishes valid from invalid once the crypto has actually
// run (status "1"/"0").
//
// h ∈ [1,N-1] and S on E(Fp) are already enforced by UnmarshalSignature;
// Verify re-checks them here too since sig may have been built directly
// rather than decoded.
func Verify(pub *SignMasterPublicKey, id []byte, ctx *hashContext, sig *Signature) (bool, error) {
	if sig.H == nil || sig.H.IsZero() {
		return false, errScalarOutOfRange
	}
	if !sig.S.IsOnCurve() {
		return false, errNotOnCurve
	}

	g := sm9curve.Pair(pub.Ppubs, sm9curve.P1())
	t := sm9curve.NewGT().Exp(g, sig.H)

	h1 := h1Scalar(id, hidSign)
	p := sm9curve.NewG2().ScalarBaseMult(h1)
	p.Add(p, pub.Ppubs)

	u := sm9curve.Pair(p, sig.S)
	w := sm9curve.NewGT().Mul(u, t)

	h2 := ctx.finish(w.Marshal())
	return h2.Equal(sig.H), nil
}
