package sm9

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"io"

	"github.com/paul-lee-attorney/sm9/sm3"
	"github.com/paul-lee-attorney/sm9/sm9curve"
)

var (
	errPeerNotOnCurve  = errors.New("sm9: peer ephemeral point is not on the curve")
	errSharedKeyZero   = errors.New("sm9: derived shared key is all-zero")
	errBadConfirmation = errors.New("sm9: key-confirmation tag mismatch")
)

// Exchange drives one party's side of the two-round authenticated key
// exchange of GM/T 0044 4.5. A single struct serves both the initiator
// (A) and the responder (B); IsInitiator selects which role's step
// sequence to follow. genConfirmation turns on the optional 0x82/0x83
// tags of the Open Question resolved in the accompanying design notes.
type Exchange struct {
	priv        *ExchangeKey
	id          []byte
	peerID      []byte
	isInitiator bool
	genConfirm  bool
	keyLen      int
	r           *sm9curve.Scalar
	self        *sm9curve.G1
	peer        *sm9curve.G1
	g1, g2, g3  *sm9curve.GT
}

// NewExchange builds one party's exchange state. isInitiator is true for
// A, false for B.
func NewExchange(priv *ExchangeKey, id, peerID []byte, keyLen int, isInitiator, genConfirmation bool) *Exchange {
	return &Exchange{
		priv:        priv,
		id:          id,
		peerID:      peerID,
		isInitiator: isInitiator,
		genConfirm:  genConfirmation,
		keyLen:      keyLen,
	}
}

// Destroy clears the ephemeral scalar and pairing values held by e. It
// should be called once the exchange has produced its shared key or has
// failed, on every path.
func (e *Exchange) Destroy() {
	if e.r != nil {
		e.r.Zeroize()
	}
	e.g1, e.g2, e.g3 = nil, nil, nil
}

// Step1A is run by the initiator A. It samples rA, derives RA = rA*QB
// where QB = H1(idB||hidExch)*P1 + Ppube, and returns RA to send to B.
// rnd supplies rA; pass nil to use crypto/rand.
func (e *Exchange) Step1A(rnd io.Reader) (*sm9curve.G1, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	q := generateUserPublicKey(e.priv.Pub.Ppube, e.peerID, hidExch)
	r, err := sm9curve.RandomScalar(rnd)
	if err != nil {
		return nil, err
	}
	e.r = r
	e.self = sm9curve.NewG1().ScalarMult(q, r)
	return e.self, nil
}

// Step1B is run by the responder B upon receiving RA from A. It verifies
// RA is on curve, samples rB, derives RB, computes the three pairing
// values G1/G2/G3, and derives the shared key sk. It loops internally on
// rB until sk is non-zero (the responder is free to resample). rnd
// supplies rB; pass nil to use crypto/rand.
func (e *Exchange) Step1B(rnd io.Reader, ra *sm9curve.G1) (rb *sm9curve.G1, sk, confirm []byte, err error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	if !ra.IsOnCurve() {
		return nil, nil, nil, errPeerNotOnCurve
	}
	e.peer = ra

	q := generateUserPublicKey(e.priv.Pub.Ppube, e.peerID, hidExch)
	base := sm9curve.Pair(sm9curve.P2(), e.priv.Pub.Ppube)
	g1pair := sm9curve.Pair(e.priv.De, ra)

	for {
		r, rerr := sm9curve.RandomScalar(rnd)
		if rerr != nil {
			return nil, nil, nil, rerr
		}
		e.r = r

		rbPoint := sm9curve.NewG1().ScalarMult(q, r)
		e.self = rbPoint

		e.g1 = g1pair
		e.g2 = sm9curve.NewGT().Exp(base, r)
		e.g3 = sm9curve.NewGT().Exp(g1pair, r)

		sk = e.deriveSharedKey()
		if !isAllZero(sk) {
			break
		}
	}

	if e.genConfirm {
		confirm = e.confirmationTag(0x82)
	}
	return e.self, sk, confirm, nil
}

// Step2A is run by the initiator A upon receiving RB (and optionally
// B's confirmation tag SB) from B. It verifies RB is on curve, computes
// the three pairing values, derives sk, and optionally checks SB. Unlike
// B, A cannot resample rA (it is already committed in RA sent to B), so
// a derived key of all zero is a hard failure rather than a retry point.
func (e *Exchange) Step2A(rb *sm9curve.G1, sb []byte) (sk, confirm []byte, err error) {
	if !rb.IsOnCurve() {
		return nil, nil, errPeerNotOnCurve
	}
	e.peer = rb

	base := sm9curve.Pair(sm9curve.P2(), e.priv.Pub.Ppube)
	e.g1 = sm9curve.NewGT().Exp(base, e.r)
	g2pair := sm9curve.Pair(e.priv.De, rb)
	e.g2 = g2pair
	e.g3 = sm9curve.NewGT().Exp(g2pair, e.r)

	if sb != nil {
		expect := e.confirmationTag(0x82)
		if subtle.ConstantTimeCompare(expect, sb) != 1 {
			return nil, nil, errBadConfirmation
		}
	}

	sk = e.deriveSharedKey()
	if isAllZero(sk) {
		return nil, nil, errSharedKeyZero
	}
	if e.genConfirm {
		confirm = e.confirmationTag(0x83)
	}
	return sk, confirm, nil
}

// Step2B is run by the responder B to optionally verify A's
// confirmation tag SA after Step1B has already produced sk.
func (e *Exchange) Step2B(sa []byte) error {
	if sa == nil {
		return nil
	}
	expect := e.confirmationTag(0x83)
	if subtle.ConstantTimeCompare(expect, sa) != 1 {
		return errBadConfirmation
	}
	return nil
}

// deriveSharedKey computes KDF(ID_A||ID_B||X_A||Y_A||X_B||Y_B||g1||g2||g3,
// keyLen), with the roles of "self"/"peer" mapped back onto A/B
// depending on which side e represents.
func (e *Exchange) deriveSharedKey() []byte {
	ra, rb := e.selfAndPeerAsAB()
	z := make([]byte, 0, len(e.id)+len(e.peerID)+64+64+384*3)
	if e.isInitiator {
		z = append(z, e.id...)
		z = append(z, e.peerID...)
	} else {
		z = append(z, e.peerID...)
		z = append(z, e.id...)
	}
	z = append(z, ra.Marshal()[1:]...)
	z = append(z, rb.Marshal()[1:]...)
	z = append(z, e.g1.Marshal()...)
	z = append(z, e.g2.Marshal()...)
	z = append(z, e.g3.Marshal()...)
	return sm3.KDF(z, e.keyLen)
}

// confirmationTag computes H(prefix||g1||H(g2||g3||ID_A||ID_B||RA||RB)).
func (e *Exchange) confirmationTag(prefix byte) []byte {
	ra, rb := e.selfAndPeerAsAB()
	inner := sm3.New()
	inner.Write(e.g2.Marshal())
	inner.Write(e.g3.Marshal())
	if e.isInitiator {
		inner.Write(e.id)
		inner.Write(e.peerID)
	} else {
		inner.Write(e.peerID)
		inner.Write(e.id)
	}
	inner.Write(ra.Marshal())
	inner.Write(rb.Marshal())
	innerSum := inner.Sum(nil)

	outer := sm3.New()
	outer.Write([]byte{prefix})
	outer.Write(e.g1.Marshal())
	outer.Write(innerSum)
	return outer.Sum(nil)
}

// selfAndPeerAsAB returns (RA, RB) regardless of which side e plays.
func (e *Exchange) selfAndPeerAsAB() (ra, rb *sm9curve.G1) {
	if e.isInitiator {
		return e.self, e.peer
	}
	return e.peer, e.self
}
