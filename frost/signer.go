package frost

import (
	"crypto/rand"
	"fmt"
)

// Nonces is the secret output of Round1: a hiding/binding scalar pair that
// must live only between round 1 and round 2 of one signing session. Nonces
// is move-only by convention: Round2 consumes it and zeroizes it before
// returning, so the same value cannot be fed into a second Round2 call
// without the caller explicitly working around the zeroized state (which
// would fail verification, not silently succeed) — see spec.md §5/§9.
type Nonces struct {
	hiding   *Scalar
	binding  *Scalar
	consumed bool
}

// Signer is a single participant's signing state: its own KeyPackage. A
// Signer is otherwise stateless between calls; round-to-round state
// (Nonces) lives on the caller's stack, never inside the Signer.
type Signer struct {
	ciphersuite Ciphersuite
	keyPackage  KeyPackage
}

// NewSigner constructs a Signer bound to one participant's KeyPackage.
func NewSigner(ciphersuite Ciphersuite, keyPackage KeyPackage) *Signer {
	return &Signer{ciphersuite: ciphersuite, keyPackage: keyPackage}
}

// Round1 samples fresh hiding and binding nonces and returns them alongside
// their public commitment (spec.md §4.5).
func (s *Signer) Round1() (Nonces, CommitmentShare, error) {
	hiding, err := s.generateNonce()
	if err != nil {
		return Nonces{}, CommitmentShare{}, fmt.Errorf("generating hiding nonce: %w", ErrCryptoInternal)
	}
	binding, err := s.generateNonce()
	if err != nil {
		return Nonces{}, CommitmentShare{}, fmt.Errorf("generating binding nonce: %w", ErrCryptoInternal)
	}

	commitment := NonceCommitment{
		Hiding:  s.ciphersuite.EcBaseMul(hiding),
		Binding: s.ciphersuite.EcBaseMul(binding),
	}

	return Nonces{hiding: hiding, binding: binding},
		CommitmentShare{ParticipantId: s.keyPackage.ParticipantId, Commitment: commitment},
		nil
}

// generateNonce implements nonce_generate ([FROST] §4.1): H3(random_bytes ||
// secret_share).
func (s *Signer) generateNonce() (*Scalar, error) {
	var randomBytes [32]byte
	if _, err := rand.Read(randomBytes[:]); err != nil {
		return nil, err
	}
	return s.ciphersuite.H3(randomBytes[:], s.keyPackage.Share.PrivateShare.Bytes()), nil
}

// Round2 computes this signer's signature share for signingPackage, using
// nonces produced by a prior Round1 call for the same session (spec.md
// §4.5). nonces is consumed: after Round2 returns a share, its scalars are
// zeroized, and calling Round2 again with the same Nonces value fails with
// ErrNoncesConsumed rather than silently producing a share from stale
// material. When Round2 returns an error instead, nonces is left unchanged.
func (s *Signer) Round2(signingPackage SigningPackage, nonces *Nonces) (SignatureShare, error) {
	if nonces.consumed {
		return SignatureShare{}, ErrNoncesConsumed
	}

	if !containsParticipantId(signingPackage.ParticipantIds, s.keyPackage.ParticipantId) {
		return SignatureShare{}, fmt.Errorf("participant %d: %w", s.keyPackage.ParticipantId, ErrNotAParticipant)
	}

	rho, ok := signingPackage.GroupCommitment.BindingFactors[s.keyPackage.ParticipantId]
	if !ok {
		return SignatureShare{}, fmt.Errorf("participant %d: %w", s.keyPackage.ParticipantId, ErrMissingBindingFactor)
	}

	lambda := lagrangeCoefficient(s.keyPackage.ParticipantId, signingPackage.ParticipantIds)
	challenge := computeChallenge(s.ciphersuite, signingPackage.GroupCommitment.R, s.keyPackage.GroupPublicKey, signingPackage.Message)

	bindingTerm := newScalar().Multiply(nonces.binding, rho)
	lambdaSk := newScalar().Multiply(lambda, s.keyPackage.Share.PrivateShare)
	lambdaSkC := newScalar().Multiply(lambdaSk, challenge)

	zi := newScalar().Add(nonces.hiding, bindingTerm)
	zi = newScalar().Add(zi, lambdaSkC)

	zeroizeNonces(nonces)
	nonces.consumed = true

	return SignatureShare{ParticipantId: s.keyPackage.ParticipantId, Z: zi}, nil
}
