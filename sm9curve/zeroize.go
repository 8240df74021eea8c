package sm9curve

// Zeroize overwrites b with zeros in place. The sm9 package calls it on
// derived keys and encoded pairing values it no longer needs; it is not
// applied to every secret-bearing buffer on every exit path.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Zeroize clears the scalar's value so it no longer holds the secret.
func (s *Scalar) Zeroize() {
	if s == nil || s.v == nil {
		return
	}
	words := s.v.Bits()
	for i := range words {
		words[i] = 0
	}
	s.v.SetInt64(0)
}
