package frost

import "filippo.io/edwards25519"

// Scalar is an integer modulo l, the prime order of the Ed25519 base-point
// subgroup. It is a type alias rather than a wrapper struct: edwards25519.Scalar
// already provides every operation spec.md §3 requires (canonical encode/decode,
// wide-reduction hashing, constant-time arithmetic), and aliasing avoids a layer
// of forwarding methods that would add nothing but indirection.
type Scalar = edwards25519.Scalar

// Element is a point on the Ed25519 curve. Every Element this package hands
// back to a caller, or accepts from one through a public constructor, has
// already been checked to lie in the prime-order subgroup (spec.md §4.1);
// Element values produced only for internal arithmetic (e.g. intermediate
// sums) are not re-checked on every operation.
type Element = edwards25519.Point

func newScalar() *Scalar { return edwards25519.NewScalar() }

func newElement() *Element { return edwards25519.NewIdentityPoint() }

// scalarFromUint64 encodes a small non-negative integer (a participant id,
// typically) as a canonical Scalar via wide reduction. Participant ids are
// always well below l, so this never actually reduces anything; it exists
// so ParticipantId values can enter scalar arithmetic (Lagrange
// coefficients) without a manual big-endian/little-endian dance.
func scalarFromUint64(v uint64) *Scalar {
	var wide [64]byte
	wide[0] = byte(v)
	wide[1] = byte(v >> 8)
	wide[2] = byte(v >> 16)
	wide[3] = byte(v >> 24)
	wide[4] = byte(v >> 32)
	wide[5] = byte(v >> 40)
	wide[6] = byte(v >> 48)
	wide[7] = byte(v >> 56)
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic("frost: 64-byte buffer always accepted: " + err.Error())
	}
	return s
}
