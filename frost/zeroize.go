package frost

// zeroizeScalar overwrites s with zero in place so the secret value does not
// linger in memory after it goes out of scope. Grounded on the same idiom
// the reference coordinator uses when a spent nonce is wiped: a field reset,
// not a dedicated zeroizing-memory library (none of this project's
// dependencies offer one).
func zeroizeScalar(s *Scalar) {
	if s == nil {
		return
	}
	s.Set(newScalar())
}

// zeroizeNonces wipes both scalars of a Nonces value in place.
func zeroizeNonces(n *Nonces) {
	if n == nil {
		return
	}
	zeroizeScalar(n.hiding)
	zeroizeScalar(n.binding)
}
