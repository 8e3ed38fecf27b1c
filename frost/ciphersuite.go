// Package frost implements FROST (Flexible Round-Optimized Schnorr Threshold
// signatures) over Ed25519, per the ciphersuite FROST-ED25519-SHA512-v1.
//
// [FROST]
//
//	Connolly, D., Komlo, C., Goldberg, I., and C. A. Wood, "Two-Round
//	Threshold Schnorr Signatures with FROST", RFC 9591, DOI 10.17487/RFC9591,
//	July 2024, <https://www.rfc-editor.org/rfc/rfc9591>.
//
// [RFC8032]
//
//	Josefsson, S. and I. Liusvaara, "Edwards-Curve Digital Signature
//	Algorithm (EdDSA)", RFC 8032, DOI 10.17487/RFC8032, January 2017,
//	<https://www.rfc-editor.org/rfc/rfc8032>.
//
// A threshold of t out of n participants produce a 64-byte signature,
// structurally and verification-wise identical to a standard Ed25519
// signature, without any single participant ever learning the group secret
// key. Distributed key generation, identifiable abort, and message
// transport between participants are out of scope; see DESIGN.md.
package frost

// Ciphersuite abstracts the cryptographic primitives a FROST execution
// depends on: a hash family (H1..H5) and the prime-order group operations.
// This package ships a single concrete implementation, Ed25519Ciphersuite,
// since the ciphersuite is fixed to FROST-ED25519-SHA512-v1 and there is no
// expectation of running more than one ciphersuite in a process.
type Ciphersuite interface {
	Hashing

	// EcBaseMul returns [s]G, where G is the group's base point.
	EcBaseMul(s *Scalar) *Element
	// EcMul returns [s]P.
	EcMul(p *Element, s *Scalar) *Element
	// EcAdd returns the sum of two group elements.
	EcAdd(a, b *Element) *Element
	// Identity returns the group identity element.
	Identity() *Element
	// IsInPrimeOrderSubgroup reports whether p is not one of the curve's
	// low-order points, i.e. [8]p != identity. This is the check spec.md
	// §4.1 names "is_in_prime_order_subgroup".
	IsInPrimeOrderSubgroup(p *Element) bool
	// SerializedScalarLength and SerializedElementLength report the
	// canonical wire length of a Scalar and an Element, respectively.
	SerializedScalarLength() int
	SerializedElementLength() int
	// Name identifies the ciphersuite, e.g. "FROST-ED25519-SHA512-v1".
	Name() string
}

// Hashing abstracts the ciphersuite's domain-separated hash functions, as
// required by [FROST] §4.1: H1 (binding-factor input), H2 (challenge), H3
// (nonce generation), H4 (message commitment), H5 (group commitment list
// commitment).
type Hashing interface {
	H1(m []byte) *Scalar
	H2(m []byte, ms ...[]byte) *Scalar
	H3(m []byte, ms ...[]byte) *Scalar
	H4(m []byte) []byte
	H5(m []byte) []byte
}
