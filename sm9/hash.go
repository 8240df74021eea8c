package sm9

import (
	"encoding/binary"
	"hash"

	"github.com/paul-lee-attorney/sm9/sm3"
	"github.com/paul-lee-attorney/sm9/sm9curve"
)

const (
	h1Prefix byte = 0x01
	h2Prefix byte = 0x02
)

// expandAndReduce implements the fn_from_hash construction shared by H1
// and H2 (GM/T 0044 Annex B.4): it produces a 64-byte digest by hashing
// the running state once with a 4-byte big-endian counter of 1 appended
// and once with a counter of 2 appended, concatenates the two 32-byte
// SM3 outputs, and reduces the result to a scalar in [1, N-1] via
// sm9curve.FromHash.
//
// md must already hold every input byte the two finalizations share; the
// two branches are forked with Clone so neither disturbs the other.
func expandAndReduce(md hash.Hash) *sm9curve.Scalar {
	cloner, ok := md.(sm3.Cloner)
	if !ok {
		panic("sm9: hash state does not support Clone")
	}

	var buf [64]byte
	var ctBytes [4]byte

	first := cloner.Clone()
	binary.BigEndian.PutUint32(ctBytes[:], 1)
	first.Write(ctBytes[:])
	copy(buf[:32], first.Sum(nil))

	second := cloner.Clone()
	binary.BigEndian.PutUint32(ctBytes[:], 2)
	second.Write(ctBytes[:])
	copy(buf[32:], second.Sum(nil))

	return sm9curve.FromHash(buf[:])
}

// h1Scalar computes H1(id||tag), the identity-to-scalar hash used to
// derive a user's public key point Q = H1(id||tag)*P1 + Ppub.
func h1Scalar(id []byte, tag hid) *sm9curve.Scalar {
	md := sm3.New()
	md.Write([]byte{h1Prefix})
	md.Write(id)
	md.Write([]byte{byte(tag)})
	return expandAndReduce(md)
}

// hashContext is the streaming SM3 state shared by Sign and Verify: it
// starts pre-seeded with the H2 domain byte 0x02, accumulates the message
// during Write, and is finalized by appending the Fp12-encoded w value
// and running expandAndReduce.
type hashContext struct {
	sm3 hash.Hash
}

func newHashContext() *hashContext {
	ctx := &hashContext{sm3: sm3.New()}
	ctx.sm3.Write([]byte{h2Prefix})
	return ctx
}

func (c *hashContext) Write(data []byte) {
	c.sm3.Write(data)
}

// finish reduces a clone of the accumulated state, appended with w, to
// H2(M||w). It clones rather than mutating c.sm3 so the sign retry loop
// (DN-1) can call finish repeatedly with a fresh w against the same
// message prefix.
func (c *hashContext) finish(w []byte) *sm9curve.Scalar {
	cloner, ok := c.sm3.(sm3.Cloner)
	if !ok {
		panic("sm9: hash state does not support Clone")
	}
	clone := cloner.Clone()
	clone.Write(w)
	return expandAndReduce(clone)
}
