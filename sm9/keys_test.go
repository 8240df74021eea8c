package sm9

import (
	"crypto/rand"

	"github.com/paul-lee-attorney/sm9/sm9curve"
)

// testSignKeyPair builds a self-consistent (master public key, private
// key) pair for identity id, following the t1=H1(id)+s, t2=s*t1^-1,
// ds=t2*P1 derivation GM/T 0044 4.1 specifies for a key-generation
// center. Deriving keys from a master secret is outside this package's
// scope (see keys.go); this helper exists only so the package's own
// tests have keys to exercise Sign/Verify against.
func testSignKeyPair(id []byte) (*SignMasterPublicKey, *SignPrivateKey) {
	s, err := sm9curve.RandomScalar(rand.Reader)
	if err != nil {
		panic(err)
	}
	pub := &SignMasterPublicKey{Ppubs: sm9curve.NewG2().ScalarBaseMult(s)}

	h1 := h1Scalar(id, hidSign)
	t1 := sm9curve.NewScalar().Add(h1, s)
	t2 := sm9curve.NewScalar().Inverse(t1)
	t2.Mul(t2, s)

	priv := &SignPrivateKey{
		Ds:  sm9curve.NewG1().ScalarBaseMult(t2),
		Pub: pub,
	}
	return pub, priv
}

// testEncryptKeyPair mirrors testSignKeyPair for the encryption scheme:
// Ppube = s*P1, de = t2*P2, with hid = hidEnc.
func testEncryptKeyPair(id []byte) (*EncryptMasterPublicKey, *EncryptPrivateKey) {
	s, err := sm9curve.RandomScalar(rand.Reader)
	if err != nil {
		panic(err)
	}
	pub := &EncryptMasterPublicKey{Ppube: sm9curve.NewG1().ScalarBaseMult(s)}

	h1 := h1Scalar(id, hidEnc)
	t1 := sm9curve.NewScalar().Add(h1, s)
	t2 := sm9curve.NewScalar().Inverse(t1)
	t2.Mul(t2, s)

	priv := &EncryptPrivateKey{
		De:  sm9curve.NewG2().ScalarBaseMult(t2),
		Pub: pub,
	}
	return pub, priv
}

// testExchangeMaster returns a fresh master secret and the matching
// master public key shared by every user key testExchangeUserKey derives
// under it. Two parties in an exchange must sit under the same master.
func testExchangeMaster() (*sm9curve.Scalar, *ExchangeMasterPublicKey) {
	s, err := sm9curve.RandomScalar(rand.Reader)
	if err != nil {
		panic(err)
	}
	pub := &ExchangeMasterPublicKey{Ppube: sm9curve.NewG1().ScalarBaseMult(s)}
	return s, pub
}

// testExchangeUserKey derives an identity's exchange private key under
// the shared master (s, pub), mirroring testEncryptKeyPair's derivation
// with hid = hidExch.
func testExchangeUserKey(s *sm9curve.Scalar, pub *ExchangeMasterPublicKey, id []byte) *ExchangeKey {
	h1 := h1Scalar(id, hidExch)
	t1 := sm9curve.NewScalar().Add(h1, s)
	t2 := sm9curve.NewScalar().Inverse(t1)
	t2.Mul(t2, s)

	return &ExchangeKey{
		De:  sm9curve.NewG2().ScalarBaseMult(t2),
		Pub: pub,
	}
}
