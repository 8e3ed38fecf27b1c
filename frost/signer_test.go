package frost

import (
	"errors"
	"testing"
)

// TestRound2ConsumesNonces implements spec.md Testable Property 6: a Nonces
// value can produce exactly one signature share. A second Round2 call with
// the same (now zeroized) Nonces must fail with ErrNoncesConsumed rather
// than silently returning a share derived from zero nonces.
func TestRound2ConsumesNonces(t *testing.T) {
	signers, config := createKeys(t, 2, 3)
	message := []byte("single use nonces")

	chosen := signers.Packages[:2]
	signerA := NewSigner(ciphersuite, chosen[0])
	signerB := NewSigner(ciphersuite, chosen[1])

	noncesA, commitmentA, err := signerA.Round1()
	if err != nil {
		t.Fatalf("Round1: %v", err)
	}
	noncesB, commitmentB, err := signerB.Round1()
	if err != nil {
		t.Fatalf("Round1: %v", err)
	}

	coordinator := NewCoordinator(ciphersuite, signers.GroupPublicKey, config, PublicSharesFromPackages(signers.Packages))
	pkg, err := coordinator.CreateSigningPackage(message, []CommitmentShare{commitmentA, commitmentB})
	if err != nil {
		t.Fatalf("CreateSigningPackage: %v", err)
	}

	if _, err := signerA.Round2(pkg, &noncesA); err != nil {
		t.Fatalf("first Round2 call: %v", err)
	}

	if _, err := signerA.Round2(pkg, &noncesA); !errors.Is(err, ErrNoncesConsumed) {
		t.Fatalf("second Round2 call: got %v, want ErrNoncesConsumed", err)
	}

	if _, err := signerB.Round2(pkg, &noncesB); err != nil {
		t.Fatalf("other signer's first Round2 call: %v", err)
	}
}

// TestRound2RejectsNonParticipant checks that a signer excluded from the
// signing package's participant list cannot produce a share for it.
func TestRound2RejectsNonParticipant(t *testing.T) {
	signers, config := createKeys(t, 2, 3)
	message := []byte("exclusion check")

	chosen := signers.Packages[:2]
	excluded := signers.Packages[2]

	commitments := make([]CommitmentShare, 0, 2)
	for _, pkg := range []KeyPackage{chosen[0], chosen[1]} {
		signer := NewSigner(ciphersuite, pkg)
		_, commitment, err := signer.Round1()
		if err != nil {
			t.Fatalf("Round1: %v", err)
		}
		commitments = append(commitments, commitment)
	}

	excludedSigner := NewSigner(ciphersuite, excluded)
	excludedNonces, _, err := excludedSigner.Round1()
	if err != nil {
		t.Fatalf("Round1: %v", err)
	}

	coordinator := NewCoordinator(ciphersuite, signers.GroupPublicKey, config, PublicSharesFromPackages(signers.Packages))
	pkg, err := coordinator.CreateSigningPackage(message, commitments)
	if err != nil {
		t.Fatalf("CreateSigningPackage: %v", err)
	}

	if _, err := excludedSigner.Round2(pkg, &excludedNonces); !errors.Is(err, ErrNotAParticipant) {
		t.Fatalf("got %v, want ErrNotAParticipant", err)
	}
}
