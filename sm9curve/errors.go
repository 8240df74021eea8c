package sm9curve

import "errors"

var (
	errShortBuffer  = errors.New("sm9curve: buffer has wrong length")
	errNotOnCurve   = errors.New("sm9curve: point is not on the curve")
	errCoordTooBig  = errors.New("sm9curve: coordinate exceeds field modulus")
	errBadPointForm = errors.New("sm9curve: invalid point encoding")
)
