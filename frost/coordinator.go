package frost

import (
	"crypto/ed25519"
	"fmt"
)

// GroupCommitment is the coordinator's computed R together with the
// per-participant binding factors used to derive it, shared read-only by
// every signer in the session (spec.md §3).
type GroupCommitment struct {
	R              *Element
	BindingFactors map[ParticipantId]*Scalar
}

// SigningPackage is the coordinator-broadcast bundle every signer uses to
// compute its Round2 signature share (spec.md §3). Commitments retains each
// participant's round-1 commitment so the coordinator can re-verify
// individual shares at aggregation time without asking signers to resend it.
type SigningPackage struct {
	ParticipantIds  []ParticipantId
	Message         []byte
	GroupCommitment GroupCommitment
	Commitments     map[ParticipantId]NonceCommitment
}

// SignatureShare is one signer's contribution to the aggregate signature
// (spec.md §3).
type SignatureShare struct {
	ParticipantId ParticipantId
	Z             *Scalar
}

// Signature is the final 64-byte R||z output, structurally identical to a
// standard Ed25519 signature (spec.md §3).
type Signature struct {
	R *Element
	Z *Scalar
}

// Bytes returns the canonical 64-byte encoding of sig.
func (sig Signature) Bytes() []byte {
	return concat(sig.R.Bytes(), sig.Z.Bytes())
}

// Coordinator assembles signing packages and aggregates signature shares
// for one group. It never holds any participant's secret share. publicShares
// is the "group info" (spec.md §4.6): each participant's public key share,
// needed to verify individual signature shares during aggregation.
type Coordinator struct {
	ciphersuite    Ciphersuite
	groupPublicKey *Element
	config         Config
	publicShares   map[ParticipantId]*Element
}

// NewCoordinator constructs a Coordinator for a group with the given public
// key, threshold configuration, and per-participant public key shares.
func NewCoordinator(ciphersuite Ciphersuite, groupPublicKey *Element, config Config, publicShares map[ParticipantId]*Element) *Coordinator {
	return &Coordinator{ciphersuite: ciphersuite, groupPublicKey: groupPublicKey, config: config, publicShares: publicShares}
}

// PublicSharesFromPackages extracts the group info a Coordinator needs from
// a set of KeyPackages produced by the same key generation.
func PublicSharesFromPackages(packages []KeyPackage) map[ParticipantId]*Element {
	shares := make(map[ParticipantId]*Element, len(packages))
	for _, pkg := range packages {
		shares[pkg.ParticipantId] = pkg.Share.PublicShare
	}
	return shares
}

// CreateSigningPackage validates the collected commitments and builds a
// SigningPackage (spec.md §4.6, steps 1-6).
func (c *Coordinator) CreateSigningPackage(message []byte, shares []CommitmentShare) (SigningPackage, error) {
	ids := make([]ParticipantId, 0, len(shares))
	commitmentsByID := make(map[ParticipantId]NonceCommitment, len(shares))
	for _, s := range shares {
		ids = append(ids, s.ParticipantId)
		commitmentsByID[s.ParticipantId] = s.Commitment
	}

	sortedIds, commitments, err := validateCommitments(c.ciphersuite, c.config.MinSigners, ids, commitmentsByID)
	if err != nil {
		return SigningPackage{}, err
	}

	factors := computeBindingFactors(c.ciphersuite, c.groupPublicKey, message, sortedIds, commitments)
	r := computeGroupCommitment(c.ciphersuite, sortedIds, commitments, factors)

	commitmentsByParticipant := make(map[ParticipantId]NonceCommitment, len(sortedIds))
	for i, id := range sortedIds {
		commitmentsByParticipant[id] = commitments[i]
	}

	return SigningPackage{
		ParticipantIds:  sortedIds,
		Message:         message,
		GroupCommitment: GroupCommitment{R: r, BindingFactors: factors},
		Commitments:     commitmentsByParticipant,
	}, nil
}

// verifyShareAgainstChallenge checks z_i*G = D_i + rho_i*E_i + lambda_i*c*P_i
// against an already-computed challenge, the part of per-share verification
// (spec.md §4.6's optional check) worth computing once per aggregation
// rather than once per share.
func verifyShareAgainstChallenge(ciphersuite Ciphersuite, signingPackage SigningPackage, challenge *Scalar, share SignatureShare, commitment NonceCommitment, publicShare *Element) bool {
	rho, ok := signingPackage.GroupCommitment.BindingFactors[share.ParticipantId]
	if !ok {
		return false
	}
	lambda := lagrangeCoefficient(share.ParticipantId, signingPackage.ParticipantIds)

	lhs := ciphersuite.EcBaseMul(share.Z)

	bindingTerm := ciphersuite.EcMul(commitment.Binding, rho)
	lambdaC := newScalar().Multiply(lambda, challenge)
	pTerm := ciphersuite.EcMul(publicShare, lambdaC)

	rhs := ciphersuite.EcAdd(commitment.Hiding, bindingTerm)
	rhs = ciphersuite.EcAdd(rhs, pTerm)

	return lhs.Equal(rhs) == 1
}

// VerifyShare checks a single signature share against the signing package
// it purportedly answers (spec.md §4.6's optional per-share check). It is
// the standalone entry point for a caller that only has one share at hand;
// AggregateSignatures uses verifyShareAgainstChallenge directly so the
// challenge is computed once for the whole batch rather than once per share.
func (c *Coordinator) VerifyShare(signingPackage SigningPackage, share SignatureShare, commitment NonceCommitment, publicShare *Element) bool {
	challenge := computeChallenge(c.ciphersuite, signingPackage.GroupCommitment.R, c.groupPublicKey, signingPackage.Message)
	return verifyShareAgainstChallenge(c.ciphersuite, signingPackage, challenge, share, commitment, publicShare)
}

// AggregateSignatures sums the provided signature shares into a final
// signature (spec.md §4.6's aggregate_signatures), rejecting a share set
// that does not match the signing package's participant list exactly. Each
// share is also checked individually against the signing package's
// already-computed binding factors and a challenge computed once for the
// whole batch (spec.md §4.6's per-share verification); a share that fails
// this check aborts aggregation with ErrShareVerificationFailed, wrapped with
// the offending participant id, rather than producing a signature that would
// fail Verify anyway.
func (c *Coordinator) AggregateSignatures(signingPackage SigningPackage, shares []SignatureShare) (Signature, error) {
	if uint32(len(shares)) < c.config.MinSigners {
		return Signature{}, fmt.Errorf("have %d shares, need %d: %w", len(shares), c.config.MinSigners, ErrInsufficientShares)
	}

	expected := make(map[ParticipantId]bool, len(signingPackage.ParticipantIds))
	for _, id := range signingPackage.ParticipantIds {
		expected[id] = true
	}

	challenge := computeChallenge(c.ciphersuite, signingPackage.GroupCommitment.R, c.groupPublicKey, signingPackage.Message)

	seen := make(map[ParticipantId]bool, len(shares))
	z := newScalar()
	for _, share := range shares {
		if !expected[share.ParticipantId] {
			return Signature{}, fmt.Errorf("share from unexpected participant %d: %w", share.ParticipantId, ErrMismatchedShares)
		}
		if seen[share.ParticipantId] {
			return Signature{}, fmt.Errorf("duplicate share from participant %d: %w", share.ParticipantId, ErrMismatchedShares)
		}
		seen[share.ParticipantId] = true

		commitment, ok := signingPackage.Commitments[share.ParticipantId]
		if !ok {
			return Signature{}, fmt.Errorf("participant %d: no commitment on file: %w", share.ParticipantId, ErrShareVerificationFailed)
		}
		publicShare, ok := c.publicShares[share.ParticipantId]
		if !ok {
			return Signature{}, fmt.Errorf("participant %d: no public key share on file: %w", share.ParticipantId, ErrShareVerificationFailed)
		}
		if !verifyShareAgainstChallenge(c.ciphersuite, signingPackage, challenge, share, commitment, publicShare) {
			return Signature{}, fmt.Errorf("participant %d: %w", share.ParticipantId, ErrShareVerificationFailed)
		}

		z = newScalar().Add(z, share.Z)
	}

	for id := range expected {
		if !seen[id] {
			return Signature{}, fmt.Errorf("missing share from participant %d: %w", id, ErrMismatchedShares)
		}
	}

	return Signature{R: signingPackage.GroupCommitment.R, Z: z}, nil
}

// Verify checks a 64-byte signature against message and the group public
// key, using the bare Ed25519 verification equation (spec.md §4.6's verify).
// It returns false, never an error, for any malformed input — a caller
// cannot distinguish "bad signature" from "malformed signature" (spec.md
// §7).
func (c *Coordinator) Verify(sig []byte, message []byte) bool {
	if len(sig) != 64 {
		return false
	}

	r, err := newElement().SetBytes(sig[:32])
	if err != nil {
		return false
	}
	if !c.ciphersuite.IsInPrimeOrderSubgroup(r) {
		return false
	}
	z, err := newScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}

	challenge := computeChallenge(c.ciphersuite, r, c.groupPublicKey, message)

	lhs := c.ciphersuite.EcBaseMul(z)
	rhs := c.ciphersuite.EcAdd(r, c.ciphersuite.EcMul(c.groupPublicKey, challenge))

	return lhs.Equal(rhs) == 1
}

// VerifyStdlib cross-checks sig against message and the group public key
// using the standard library's independent RFC 8032 Ed25519 verifier,
// confirming the aggregate signature is indistinguishable from a plain
// Ed25519 signature (spec.md Testable Property 1 / Scenario S6).
func (c *Coordinator) VerifyStdlib(sig []byte, message []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(c.groupPublicKey.Bytes()), message, sig)
}

// SessionState names a point in the coordinator's per-session lifecycle
// (spec.md §4.6's state machine).
type SessionState int

const (
	StateIdle SessionState = iota
	StateAwaitingCommitments
	StatePackageReady
	StateAwaitingShares
	StateDone
	StateFailed
)

// CoordinatorSession tracks one signing session end to end:
// Idle -> AwaitingCommitments -> PackageReady -> AwaitingShares -> Done |
// Failed(kind). It has no automatic retry and no identifiable-abort
// bookkeeping (spec.md's non-goal); on failure it records which error kind
// the session died with, releases the collected commitments and signing
// package, and stops accepting further input.
type CoordinatorSession struct {
	coordinator *Coordinator
	state       SessionState
	failure     error

	message []byte
	shares  []CommitmentShare
	pkg     SigningPackage
}

// NewCoordinatorSession starts a fresh session in StateIdle.
func NewCoordinatorSession(coordinator *Coordinator, message []byte) *CoordinatorSession {
	return &CoordinatorSession{coordinator: coordinator, state: StateIdle, message: message}
}

func (s *CoordinatorSession) State() SessionState { return s.state }

// Failure returns the error kind a Failed session died with, or nil.
func (s *CoordinatorSession) Failure() error { return s.failure }

func (s *CoordinatorSession) fail(err error) error {
	if s.state == StateFailed {
		return err
	}
	s.state = StateFailed
	s.failure = err
	s.shares = nil
	s.pkg = SigningPackage{}
	return err
}

// CollectCommitment records one participant's round-1 commitment. The
// session moves from Idle to AwaitingCommitments on the first call.
func (s *CoordinatorSession) CollectCommitment(share CommitmentShare) error {
	if s.state != StateIdle && s.state != StateAwaitingCommitments {
		return s.fail(fmt.Errorf("cannot collect commitments in state %d", s.state))
	}
	s.state = StateAwaitingCommitments
	s.shares = append(s.shares, share)
	return nil
}

// BuildSigningPackage transitions AwaitingCommitments -> PackageReady,
// validating and encoding the collected commitments.
func (s *CoordinatorSession) BuildSigningPackage() (SigningPackage, error) {
	if s.state != StateAwaitingCommitments {
		return SigningPackage{}, s.fail(fmt.Errorf("cannot build signing package in state %d", s.state))
	}
	pkg, err := s.coordinator.CreateSigningPackage(s.message, s.shares)
	if err != nil {
		return SigningPackage{}, s.fail(err)
	}
	s.pkg = pkg
	s.state = StatePackageReady
	return pkg, nil
}

// AwaitShares transitions PackageReady -> AwaitingShares.
func (s *CoordinatorSession) AwaitShares() error {
	if s.state != StatePackageReady {
		return s.fail(fmt.Errorf("cannot await shares in state %d", s.state))
	}
	s.state = StateAwaitingShares
	return nil
}

// Aggregate transitions AwaitingShares -> Done or Failed, producing the
// final signature.
func (s *CoordinatorSession) Aggregate(shares []SignatureShare) (Signature, error) {
	if s.state != StateAwaitingShares {
		return Signature{}, s.fail(fmt.Errorf("cannot aggregate in state %d", s.state))
	}
	sig, err := s.coordinator.AggregateSignatures(s.pkg, shares)
	if err != nil {
		return Signature{}, s.fail(err)
	}
	s.state = StateDone
	return sig, nil
}
