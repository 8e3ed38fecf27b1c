package frost

import (
	"testing"

	"threshold.network/frost-ed25519/internal/testutils"
)

func TestLagrangeCoefficientReconstructsSecret(t *testing.T) {
	sk, err := randomScalar()
	if err != nil {
		t.Fatalf("randomScalar: %v", err)
	}
	coefficients, err := generatePolynomial(sk, 3)
	if err != nil {
		t.Fatalf("generatePolynomial: %v", err)
	}

	ids := []ParticipantId{2, 5, 9}
	reconstructed := newScalar()
	for _, id := range ids {
		share := evaluatePolynomial(coefficients, id)
		lambda := lagrangeCoefficient(id, ids)
		term := newScalar().Multiply(lambda, share)
		reconstructed = newScalar().Add(reconstructed, term)
	}

	testutils.AssertScalarsEqual(t, "reconstructed secret", sk, reconstructed)
}

func TestValidateCommitmentsSortsByID(t *testing.T) {
	ids := []ParticipantId{3, 1, 2}
	commitmentsByID := map[ParticipantId]NonceCommitment{
		1: {Hiding: ciphersuite.EcBaseMul(scalarFromUint64(11)), Binding: ciphersuite.EcBaseMul(scalarFromUint64(12))},
		2: {Hiding: ciphersuite.EcBaseMul(scalarFromUint64(21)), Binding: ciphersuite.EcBaseMul(scalarFromUint64(22))},
		3: {Hiding: ciphersuite.EcBaseMul(scalarFromUint64(31)), Binding: ciphersuite.EcBaseMul(scalarFromUint64(32))},
	}

	sortedIds, _, err := validateCommitments(ciphersuite, 2, ids, commitmentsByID)
	if err != nil {
		t.Fatalf("validateCommitments: %v", err)
	}
	testutils.AssertUint32SlicesEqual(t, "sorted participant ids", []ParticipantId{1, 2, 3}, sortedIds)
}

func TestValidateCommitmentsRejectsDuplicateParticipant(t *testing.T) {
	ids := []ParticipantId{1, 1}
	commitmentsByID := map[ParticipantId]NonceCommitment{
		1: {Hiding: ciphersuite.EcBaseMul(scalarFromUint64(1)), Binding: ciphersuite.EcBaseMul(scalarFromUint64(2))},
	}
	_, _, err := validateCommitments(ciphersuite, 1, ids, commitmentsByID)
	if err == nil {
		t.Fatal("expected an error for a duplicated participant id")
	}
}

func TestValidateCommitmentsRejectsIdentityCommitment(t *testing.T) {
	ids := []ParticipantId{1, 2}
	commitmentsByID := map[ParticipantId]NonceCommitment{
		1: {Hiding: identityElement(), Binding: ciphersuite.EcBaseMul(scalarFromUint64(2))},
		2: {Hiding: ciphersuite.EcBaseMul(scalarFromUint64(3)), Binding: ciphersuite.EcBaseMul(scalarFromUint64(4))},
	}
	_, _, err := validateCommitments(ciphersuite, 2, ids, commitmentsByID)
	if err == nil {
		t.Fatal("expected an error for an identity commitment")
	}
}
