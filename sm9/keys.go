// Package sm9 implements the SM9 identity-based signature, key
// encapsulation, public-key encryption and authenticated key exchange
// algorithms over the 256-bit BN curve of GM/T 0003.5-2012, following the
// scheme description of GM/T 0044-2016.
//
// Master keys and per-identity private keys are opaque inputs to this
// package: it never derives an identity's private key from a master
// secret and an identity string, and it does not generate or persist
// master keys. Building those values is the key-generation center's job.
package sm9

import "github.com/paul-lee-attorney/sm9/sm9curve"

// hid is a one-byte domain tag distinguishing the three private-key
// families SM9 derives from a single master secret.
type hid byte

const (
	hidSign hid = 0x01
	hidExch hid = 0x02
	hidEnc  hid = 0x03
)

// SignMasterPublicKey is a key-generation center's signing master public
// key Ppubs, a point on G2.
type SignMasterPublicKey struct {
	Ppubs *sm9curve.G2
}

// SignPrivateKey is an identity's signing private key ds, a point on G1,
// paired with the master public key it was derived under.
type SignPrivateKey struct {
	Ds  *sm9curve.G1
	Pub *SignMasterPublicKey
}

// EncryptMasterPublicKey is a key-generation center's encryption master
// public key Ppube, a point on G1.
type EncryptMasterPublicKey struct {
	Ppube *sm9curve.G1
}

// EncryptPrivateKey is an identity's decryption private key de, a point
// on G2, paired with the master public key it was derived under.
type EncryptPrivateKey struct {
	De  *sm9curve.G2
	Pub *EncryptMasterPublicKey
}

// ExchangeMasterPublicKey has the same shape as EncryptMasterPublicKey
// but is kept as a distinct type: it is derived with hidExch rather than
// hidEnc, and using one in place of the other silently produces a key
// agreement that never matches a well-behaved peer.
type ExchangeMasterPublicKey struct {
	Ppube *sm9curve.G1
}

// ExchangeKey is an identity's key-exchange private key de, a point on
// G2, derived with hidExch.
type ExchangeKey struct {
	De  *sm9curve.G2
	Pub *ExchangeMasterPublicKey
}

// generateUserPublicKey computes Q = H1(id||tag) * P1 + Ppube for an
// encryption or exchange master public key. It is the point both KEM
// encapsulation and key-exchange step 1 derive.
func generateUserPublicKey(ppube *sm9curve.G1, id []byte, tag hid) *sm9curve.G1 {
	h1 := h1Scalar(id, tag)
	q := sm9curve.NewG1().ScalarBaseMult(h1)
	q.Add(q, ppube)
	return q
}
