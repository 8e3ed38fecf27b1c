package frost

import (
	"crypto/sha512"

	"filippo.io/edwards25519"
)

// Ed25519Ciphersuite implements Ciphersuite for FROST-ED25519-SHA512-v1, per
// [FROST] section 6.3. contextString is the ciphersuite's fixed domain
// separator, prepended to every tagged hash input except H2, which must
// remain byte-for-byte the bare Ed25519 challenge so the resulting signature
// verifies under a stock [RFC8032] verifier (spec.md §4.1, Testable Property 1).
type Ed25519Ciphersuite struct{}

const contextString = "FROST-ED25519-SHA512-v1"

// NewEd25519Ciphersuite returns the FROST-ED25519-SHA512-v1 ciphersuite.
func NewEd25519Ciphersuite() Ed25519Ciphersuite { return Ed25519Ciphersuite{} }

func (Ed25519Ciphersuite) Name() string { return contextString }

func (Ed25519Ciphersuite) SerializedScalarLength() int  { return 32 }
func (Ed25519Ciphersuite) SerializedElementLength() int { return 32 }

// H1 is the binding-factor input hash: H1(m) = H(contextString || "rho" || m).
func (c Ed25519Ciphersuite) H1(m []byte) *Scalar {
	return c.hashToScalar("rho", m)
}

// H2 is the Ed25519 challenge hash. Unlike every other tagged hash in this
// ciphersuite, H2 carries NO domain separator: H2(m) = H(m). This is what
// makes the aggregated FROST signature indistinguishable from, and verifiable
// by, a plain RFC 8032 Ed25519 verifier.
func (c Ed25519Ciphersuite) H2(m []byte, ms ...[]byte) *Scalar {
	h := sha512.New()
	h.Write(m)
	for _, extra := range ms {
		h.Write(extra)
	}
	var wide [64]byte
	copy(wide[:], h.Sum(nil))
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic("frost: sha512 digest is always 64 bytes: " + err.Error())
	}
	return s
}

// H3 is the nonce-generation hash: H3(m) = H(contextString || "nonce" || m).
func (c Ed25519Ciphersuite) H3(m []byte, ms ...[]byte) *Scalar {
	h := sha512.New()
	h.Write([]byte(contextString))
	h.Write([]byte("nonce"))
	h.Write(m)
	for _, extra := range ms {
		h.Write(extra)
	}
	var wide [64]byte
	copy(wide[:], h.Sum(nil))
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic("frost: sha512 digest is always 64 bytes: " + err.Error())
	}
	return s
}

// H4 is the message commitment hash: H4(m) = H(contextString || "msg" || m).
func (c Ed25519Ciphersuite) H4(m []byte) []byte {
	h := sha512.New()
	h.Write([]byte(contextString))
	h.Write([]byte("msg"))
	h.Write(m)
	return h.Sum(nil)
}

// H5 is the commitment-list hash: H5(m) = H(contextString || "com" || m).
func (c Ed25519Ciphersuite) H5(m []byte) []byte {
	h := sha512.New()
	h.Write([]byte(contextString))
	h.Write([]byte("com"))
	h.Write(m)
	return h.Sum(nil)
}

func (c Ed25519Ciphersuite) hashToScalar(tag string, m []byte) *Scalar {
	h := sha512.New()
	h.Write([]byte(contextString))
	h.Write([]byte(tag))
	h.Write(m)
	var wide [64]byte
	copy(wide[:], h.Sum(nil))
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic("frost: sha512 digest is always 64 bytes: " + err.Error())
	}
	return s
}

// EcBaseMul returns [s]B, where B is the Ed25519 base point.
func (Ed25519Ciphersuite) EcBaseMul(s *Scalar) *Element {
	return edwards25519.NewIdentityPoint().ScalarBaseMult(s)
}

// EcMul returns [s]P.
func (Ed25519Ciphersuite) EcMul(p *Element, s *Scalar) *Element {
	return edwards25519.NewIdentityPoint().ScalarMult(s, p)
}

// EcAdd returns a + b.
func (Ed25519Ciphersuite) EcAdd(a, b *Element) *Element {
	return edwards25519.NewIdentityPoint().Add(a, b)
}

// Identity returns the curve's identity element.
func (Ed25519Ciphersuite) Identity() *Element {
	return edwards25519.NewIdentityPoint()
}

// IsInPrimeOrderSubgroup reports whether p is not a low-order point, i.e.
// [8]p != identity. This is spec.md §4.1's "is_in_prime_order_subgroup": a
// lightweight cofactor check, not a full [l]p = 0 subgroup-membership proof.
func (c Ed25519Ciphersuite) IsInPrimeOrderSubgroup(p *Element) bool {
	eightP := edwards25519.NewIdentityPoint().MultByCofactor(p)
	return eightP.Equal(c.Identity()) == 0
}
