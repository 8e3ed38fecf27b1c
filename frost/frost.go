package frost

import "fmt"

// ThresholdSign runs the full round-1 + signing-package + round-2 +
// aggregate sequence in one call, for a caller that holds all the key
// packages of the signing quorum locally (spec.md §4.7). This is the shape
// used by the backup/recovery path and by tests.
func ThresholdSign(ciphersuite Ciphersuite, config Config, packages []KeyPackage, message []byte, groupPublicKey *Element) (Signature, error) {
	signers := make([]*Signer, len(packages))
	for i, pkg := range packages {
		signers[i] = NewSigner(ciphersuite, pkg)
	}

	commitmentShares := make([]CommitmentShare, len(signers))
	nonces := make([]Nonces, len(signers))
	for i, signer := range signers {
		n, c, err := signer.Round1()
		if err != nil {
			return Signature{}, fmt.Errorf("round 1 for signer %d: %w", packages[i].ParticipantId, err)
		}
		nonces[i] = n
		commitmentShares[i] = c
	}

	coordinator := NewCoordinator(ciphersuite, groupPublicKey, config, PublicSharesFromPackages(packages))
	signingPackage, err := coordinator.CreateSigningPackage(message, commitmentShares)
	if err != nil {
		return Signature{}, err
	}

	shares := make([]SignatureShare, len(signers))
	for i, signer := range signers {
		share, err := signer.Round2(signingPackage, &nonces[i])
		if err != nil {
			return Signature{}, fmt.Errorf("round 2 for signer %d: %w", packages[i].ParticipantId, err)
		}
		shares[i] = share
	}

	return coordinator.AggregateSignatures(signingPackage, shares)
}

// Sign re-splits scalar into a fresh (t, n) polynomial and runs
// ThresholdSign across the resulting shares, producing a standard Ed25519
// signature over scalar's public key (spec.md §4.7).
func Sign(ciphersuite Ciphersuite, config Config, scalar *Scalar, message []byte) (Signature, error) {
	signers, err := keygenFromSecret(ciphersuite, config, scalar)
	if err != nil {
		return Signature{}, err
	}
	return ThresholdSign(ciphersuite, config, signers.Packages[:config.MinSigners], message, signers.GroupPublicKey)
}
