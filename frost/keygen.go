package frost

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"crypto/x509"
	"fmt"

	"filippo.io/edwards25519"
)

// Signers is the output of trusted-dealer key generation: a group public key
// and one KeyPackage per participant (spec.md §3/§4.3).
type Signers struct {
	GroupPublicKey *Element
	Packages       []KeyPackage
}

// GenerateKeys samples a fresh group secret key and runs trusted-dealer
// Shamir key generation over it (spec.md §4.3).
func GenerateKeys(ciphersuite Ciphersuite, config Config) (Signers, error) {
	sk, err := randomScalar()
	if err != nil {
		return Signers{}, fmt.Errorf("sampling group secret: %w", ErrCryptoInternal)
	}
	return keygenFromSecret(ciphersuite, config, sk)
}

// seedExporter is satisfied by a platform key handle that can export its
// Ed25519 seed, e.g. ed25519.PrivateKey itself, or an HSM/KMS wrapper type
// exposing the same method.
type seedExporter interface {
	Seed() []byte
}

// Split derives a group secret key from an externally supplied Ed25519
// secret, then runs the same trusted-dealer generation as GenerateKeys, so
// the resulting GroupPublicKey equals the Ed25519 public key of secret
// (spec.md §4.4). secret must be one of: a *Scalar (32-byte raw scalar used
// directly as sk), a []byte PKCS#8 DER sequence, or a seedExporter (the Go
// expression of "a platform key-handle exporting PKCS#8 Ed25519").
func Split(ciphersuite Ciphersuite, config Config, secret any) (Signers, error) {
	sk, err := secretToScalar(secret)
	if err != nil {
		return Signers{}, err
	}
	return keygenFromSecret(ciphersuite, config, sk)
}

func secretToScalar(secret any) (*Scalar, error) {
	switch v := secret.(type) {
	case *Scalar:
		return v, nil
	case []byte:
		return seedFromPKCS8(v)
	case seedExporter:
		return seedToScalar(v.Seed())
	default:
		return nil, fmt.Errorf("unsupported secret type %T: %w", secret, ErrInvalidKeyFormat)
	}
}

func seedFromPKCS8(der []byte) (*Scalar, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("parsing PKCS#8: %w", ErrInvalidKeyFormat)
	}
	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("PKCS#8 key is not Ed25519: %w", ErrInvalidKeyFormat)
	}
	return seedToScalar(priv.Seed())
}

// seedToScalar applies the standard Ed25519 clamp (RFC 8032 §5.1.5) to
// SHA-512(seed) and reduces the low 32 bytes to a Scalar.
func seedToScalar(seed []byte) (*Scalar, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d: %w", ed25519.SeedSize, len(seed), ErrInvalidKeyFormat)
	}
	h := sha512.Sum512(seed)
	clamped := h[:32]
	s, err := edwards25519.NewScalar().SetBytesWithClamping(clamped)
	if err != nil {
		return nil, fmt.Errorf("clamping derived scalar: %w", ErrCryptoInternal)
	}
	return s, nil
}

func keygenFromSecret(ciphersuite Ciphersuite, config Config, sk *Scalar) (Signers, error) {
	coefficients, err := generatePolynomial(sk, int(config.MinSigners))
	if err != nil {
		return Signers{}, err
	}

	groupPublicKey := ciphersuite.EcBaseMul(sk)

	packages := make([]KeyPackage, 0, config.MaxSigners)
	for i := uint32(1); i <= config.MaxSigners; i++ {
		id := ParticipantId(i)
		share := evaluatePolynomial(coefficients, id)
		publicShare := ciphersuite.EcBaseMul(share)
		packages = append(packages, KeyPackage{
			ParticipantId: id,
			Share: KeyShare{
				ParticipantId: id,
				PrivateShare:  share,
				PublicShare:   publicShare,
			},
			GroupPublicKey: groupPublicKey,
		})
	}

	return Signers{GroupPublicKey: groupPublicKey, Packages: packages}, nil
}

// generatePolynomial builds a degree-(threshold-1) polynomial over the
// scalar field with secret as its constant term and threshold-1 uniformly
// random higher coefficients (spec.md §4.3).
func generatePolynomial(secret *Scalar, threshold int) ([]*Scalar, error) {
	coefficients := make([]*Scalar, threshold)
	coefficients[0] = secret
	for i := 1; i < threshold; i++ {
		s, err := randomScalar()
		if err != nil {
			return nil, fmt.Errorf("sampling polynomial coefficient: %w", ErrCryptoInternal)
		}
		coefficients[i] = s
	}
	return coefficients, nil
}

// evaluatePolynomial computes f(x) for x = id, using true modular scalar
// arithmetic (Horner's method), never a hash-based substitute.
func evaluatePolynomial(coefficients []*Scalar, id ParticipantId) *Scalar {
	x := scalarFromUint64(uint64(id))
	result := newScalar()
	for i := len(coefficients) - 1; i >= 0; i-- {
		result = newScalar().Multiply(result, x)
		result = newScalar().Add(result, coefficients[i])
	}
	return result
}

// Recover reconstructs the group secret key by Lagrange interpolation at
// zero from at least config.MinSigners distinct key shares (spec.md §4.4).
func Recover(config Config, shares []KeyShare) (*Scalar, error) {
	if uint32(len(shares)) < config.MinSigners {
		return nil, fmt.Errorf("have %d shares, need %d: %w", len(shares), config.MinSigners, ErrInsufficientSigners)
	}

	ids := make([]ParticipantId, 0, len(shares))
	seen := make(map[ParticipantId]bool, len(shares))
	for _, s := range shares {
		if seen[s.ParticipantId] {
			return nil, fmt.Errorf("participant %d appears twice: %w", s.ParticipantId, ErrDuplicateParticipant)
		}
		seen[s.ParticipantId] = true
		ids = append(ids, s.ParticipantId)
	}

	sk := newScalar()
	for _, s := range shares {
		lambda := lagrangeCoefficient(s.ParticipantId, ids)
		term := newScalar().Multiply(lambda, s.PrivateShare)
		sk = newScalar().Add(sk, term)
	}
	return sk, nil
}

func randomScalar() (*Scalar, error) {
	var wide [64]byte
	if _, err := rand.Read(wide[:]); err != nil {
		return nil, err
	}
	return edwards25519.NewScalar().SetUniformBytes(wide[:])
}
