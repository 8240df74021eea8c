package sm3

import "encoding/binary"

// KDF implements the key derivation function of GB/T 32918.3-2016 5.4.3:
// it expands z into klen bytes by hashing z together with a 32-bit
// big-endian counter that starts at 1 and increments once per SM3 block
// of output. The teacher's sm2 package inlines the same construction as
// a private kdf() tied to a single elliptic-curve point input; this
// version takes an arbitrary byte string so it also serves SM9's KEM and
// key-exchange derivations.
func KDF(z []byte, klen int) []byte {
	if klen <= 0 {
		return nil
	}
	out := make([]byte, 0, klen)
	var ctBuf [4]byte
	ct := uint32(1)
	digest := New()
	for len(out) < klen {
		digest.Reset()
		digest.Write(z)
		binary.BigEndian.PutUint32(ctBuf[:], ct)
		digest.Write(ctBuf[:])
		out = append(out, digest.Sum(nil)...)
		ct++
	}
	return out[:klen]
}
