package frost

import "testing"

// createKeys generates a (threshold, groupSize) key set for tests.
func createKeys(t *testing.T, threshold, groupSize uint32) (Signers, Config) {
	t.Helper()
	config, err := NewConfig(threshold, groupSize)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	signers, err := GenerateKeys(ciphersuite, config)
	if err != nil {
		t.Fatalf("GenerateKeys: %v", err)
	}
	return signers, config
}

// runThresholdSign drives round 1, the signing package, round 2, and
// aggregation across exactly the given key packages, returning the final
// signature.
func runThresholdSign(t *testing.T, config Config, packages []KeyPackage, groupPublicKey *Element, message []byte) Signature {
	t.Helper()
	sig, err := ThresholdSign(ciphersuite, config, packages, message, groupPublicKey)
	if err != nil {
		t.Fatalf("ThresholdSign: %v", err)
	}
	return sig
}

var ciphersuite = NewEd25519Ciphersuite()
