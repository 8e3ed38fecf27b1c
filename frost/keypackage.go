package frost

// KeyShare is one participant's share of the group secret key, produced by
// trusted-dealer key generation or by Split (spec.md §3). This package never
// zeroizes PrivateShare (Round2 zeroizes only the session's Nonces); callers
// holding a KeyShare are responsible for its cleanup.
type KeyShare struct {
	ParticipantId ParticipantId
	PrivateShare  *Scalar  // s_i
	PublicShare   *Element // s_i * G
}

// KeyPackage bundles a participant's KeyShare with the group's public key,
// the unit distributed once per participant after key generation. The
// vestigial pre-generated signing_commitments array some implementations
// carry here is deliberately absent: round 2 always samples fresh nonces and
// never consults it, so this package does not model it at all.
type KeyPackage struct {
	ParticipantId  ParticipantId
	Share          KeyShare
	GroupPublicKey *Element
}

// VerifyKeyPackage recomputes s_i*G and compares it against the advertised
// public share, and checks the group public key is in the prime-order
// subgroup (spec.md §4.3's verify_key_package). It returns false rather than
// an error: any structural problem with a key package is just "not valid".
func VerifyKeyPackage(ciphersuite Ciphersuite, pkg KeyPackage) bool {
	if pkg.ParticipantId != pkg.Share.ParticipantId {
		return false
	}
	if pkg.ParticipantId == 0 {
		return false
	}
	recomputed := ciphersuite.EcBaseMul(pkg.Share.PrivateShare)
	if recomputed.Equal(pkg.Share.PublicShare) != 1 {
		return false
	}
	if !ciphersuite.IsInPrimeOrderSubgroup(pkg.GroupPublicKey) {
		return false
	}
	return true
}
