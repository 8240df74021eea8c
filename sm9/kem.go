package sm9

import (
	"crypto/rand"
	"io"

	"github.com/paul-lee-attorney/sm9/sm3"
	"github.com/paul-lee-attorney/sm9/sm9curve"
)

// Encapsulate runs the KEM of GM/T 0044 4.3.1: given an encryption
// master public key and recipient identity, it derives a klen-byte
// symmetric key K bound to id and the point C the recipient can use to
// recover K. rnd supplies the ephemeral scalar r on every loop
// iteration; pass nil to use crypto/rand.
func Encapsulate(rnd io.Reader, pub *EncryptMasterPublicKey, id []byte, klen int) (k []byte, c *sm9curve.G1, err error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	q := generateUserPublicKey(pub.Ppube, id, hidEnc)
	base := sm9curve.Pair(sm9curve.P2(), pub.Ppube)

	for {
		r, rerr := sm9curve.RandomScalar(rnd)
		if rerr != nil {
			return nil, nil, rerr
		}

		c = sm9curve.NewG1().ScalarMult(q, r)
		cBytes := c.Marshal()

		w := sm9curve.NewGT().Exp(base, r)
		wBytes := w.Marshal()

		k = kemDerive(cBytes, wBytes, id, klen)

		sm9curve.Zeroize(wBytes)
		r.Zeroize()

		if !isAllZero(k) {
			return k, c, nil
		}
	}
}

// Decapsulate runs the KEM decapsulation of GM/T 0044 4.3.2: given a
// decryption private key and a point C produced by Encapsulate, it
// recovers the same klen-byte key K.
func Decapsulate(priv *EncryptPrivateKey, id []byte, c *sm9curve.G1, klen int) ([]byte, error) {
	if !c.IsOnCurve() {
		return nil, errNotOnCurve
	}

	w := sm9curve.Pair(priv.De, c)
	wBytes := w.Marshal()
	defer sm9curve.Zeroize(wBytes)

	k := kemDerive(c.Marshal(), wBytes, id, klen)
	if isAllZero(k) {
		return nil, ErrDecryption
	}
	return k, nil
}

// kemDerive implements K = KDF(X||Y||w||ID, klen), where X||Y is the
// 64-byte uncompressed coordinate pair of C without its leading 0x04
// tag.
func kemDerive(cUncompressed, w, id []byte, klen int) []byte {
	z := make([]byte, 0, len(cUncompressed)-1+len(w)+len(id))
	z = append(z, cUncompressed[1:]...)
	z = append(z, w...)
	z = append(z, id...)
	return sm3.KDF(z, klen)
}
