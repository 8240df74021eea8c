package sm9

import "math/big"

func bytesToBig(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// isAllZero reports whether every byte of b is zero, the "derived key
// happened to be all-zero" failure condition KEM, PKE and exchange all
// loop or fail on.
func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
