package frost

import (
	"crypto/ed25519"
	"math/big"
	"testing"

	"threshold.network/frost-ed25519/internal/testutils"
)

// TestGenerateKeysInvariants checks spec.md §4.3's invariants: every
// published share matches its base-point multiplication, the group key is
// in the prime-order subgroup, and a threshold-sized set of shares recovers
// a secret whose base-point multiple is the group public key.
func TestGenerateKeysInvariants(t *testing.T) {
	signers, config := createKeys(t, 3, 5)

	if !ciphersuite.IsInPrimeOrderSubgroup(signers.GroupPublicKey) {
		t.Error("group public key is not in the prime-order subgroup")
	}

	for _, pkg := range signers.Packages {
		if !VerifyKeyPackage(ciphersuite, pkg) {
			t.Errorf("participant %d: key package failed verification", pkg.ParticipantId)
		}
	}

	shares := make([]KeyShare, 0, config.MinSigners)
	for _, pkg := range signers.Packages[:config.MinSigners] {
		shares = append(shares, pkg.Share)
	}
	recovered, err := Recover(config, shares)
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if ciphersuite.EcBaseMul(recovered).Equal(signers.GroupPublicKey) != 1 {
		t.Error("recovered secret does not reconstruct the group public key")
	}
}

// TestKeyPackageTamperDetection implements spec.md Testable Property 5:
// changing a key package's private share or public share, or replacing its
// group public key with the identity, must make VerifyKeyPackage return
// false.
func TestKeyPackageTamperDetection(t *testing.T) {
	signers, _ := createKeys(t, 2, 3)
	pkg := signers.Packages[0]

	if !VerifyKeyPackage(ciphersuite, pkg) {
		t.Fatal("untampered package unexpectedly failed verification")
	}

	tamperedPrivate := pkg
	tamperedPrivate.Share.PrivateShare = newScalar().Add(pkg.Share.PrivateShare, scalarFromUint64(1))
	if VerifyKeyPackage(ciphersuite, tamperedPrivate) {
		t.Error("tampered private share unexpectedly verified")
	}

	tamperedPublic := pkg
	tamperedPublic.Share.PublicShare = ciphersuite.EcAdd(pkg.Share.PublicShare, ciphersuite.EcBaseMul(scalarFromUint64(1)))
	if VerifyKeyPackage(ciphersuite, tamperedPublic) {
		t.Error("tampered public share unexpectedly verified")
	}

	tamperedGroupKey := pkg
	tamperedGroupKey.GroupPublicKey = identityElement()
	if VerifyKeyPackage(ciphersuite, tamperedGroupKey) {
		t.Error("identity group public key unexpectedly verified")
	}
}

// TestSplitRecoverQuorumInvariance implements spec.md Scenarios S3 and S4:
// splitting a standard-library Ed25519 key reproduces its public key
// byte-for-byte, and any two quorums recover the same secret.
func TestSplitRecoverQuorumInvariance(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("ed25519.GenerateKey: %v", err)
	}

	config, err := NewConfig(2, 3)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	signers, err := Split(ciphersuite, config, priv)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	testutils.AssertBytesEqual(t, []byte(pub), signers.GroupPublicKey.Bytes())

	quorumA := []KeyShare{signers.Packages[0].Share, signers.Packages[1].Share}
	quorumB := []KeyShare{signers.Packages[0].Share, signers.Packages[2].Share}

	skA, err := Recover(config, quorumA)
	if err != nil {
		t.Fatalf("Recover(quorumA): %v", err)
	}
	skB, err := Recover(config, quorumB)
	if err != nil {
		t.Fatalf("Recover(quorumB): %v", err)
	}
	testutils.AssertScalarsEqual(t, "secret recovered from different quorums", skA, skB)

	resplit, err := Split(ciphersuite, config, skA)
	if err != nil {
		t.Fatalf("Split(recovered): %v", err)
	}
	testutils.AssertElementsEqual(t, "group public key after re-splitting the recovered secret", signers.GroupPublicKey, resplit.GroupPublicKey)
}

// TestRecoverInsufficientShares checks that Recover refuses fewer than the
// threshold number of shares.
func TestRecoverInsufficientShares(t *testing.T) {
	signers, config := createKeys(t, 3, 5)
	_, err := Recover(config, []KeyShare{signers.Packages[0].Share, signers.Packages[1].Share})
	if err == nil {
		t.Fatal("expected an error with fewer shares than the threshold")
	}
}

// TestGenerateKeysCrossCheck builds key shares for a secret with
// internal/testutils' independent reference Shamir implementation over the
// Ed25519 order, and checks that interpolating those reference shares with
// this package's own lagrangeCoefficient reconstructs the original secret. This
// guards against the "hash-based multiplication" bug spec.md §9 flags: a
// broken Lagrange coefficient would reconstruct a different scalar.
func TestGenerateKeysCrossCheck(t *testing.T) {
	sk, err := randomScalar()
	if err != nil {
		t.Fatalf("randomScalar: %v", err)
	}

	const threshold, groupSize = 3, 5
	skBig := scalarToBigEndian(sk)

	referenceShares := testutils.GenerateKeyShares(skBig, groupSize, threshold)

	ids := []ParticipantId{1, 2, 3}
	reconstructed := newScalar()
	for _, id := range ids {
		shareScalar := bigEndianToScalar(t, referenceShares[id-1])
		lambda := lagrangeCoefficient(id, ids)
		term := newScalar().Multiply(lambda, shareScalar)
		reconstructed = newScalar().Add(reconstructed, term)
	}

	testutils.AssertScalarsEqual(t, "reconstructed secret", sk, reconstructed)
}

// scalarToBigEndian converts a canonical little-endian Scalar encoding to
// the big-endian big.Int representation internal/testutils expects.
func scalarToBigEndian(s *Scalar) *big.Int {
	le := s.Bytes()
	be := make([]byte, len(le))
	for i, b := range le {
		be[len(le)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

// bigEndianToScalar converts a big-endian big.Int already reduced modulo
// the Ed25519 order back into a canonical Scalar.
func bigEndianToScalar(t *testing.T, v *big.Int) *Scalar {
	t.Helper()
	be := v.Bytes()
	le := make([]byte, 32)
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	s, err := newScalar().SetCanonicalBytes(le)
	if err != nil {
		t.Fatalf("SetCanonicalBytes: %v", err)
	}
	return s
}
