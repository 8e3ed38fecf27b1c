package frost

import "errors"

// The error kinds below form the closed taxonomy of spec.md §7. Callers
// should use errors.Is against these sentinels rather than string-matching
// wrapped messages.
var (
	// ErrInvalidThreshold is returned when a requested (minSigners,
	// maxSigners) pair violates 1 <= minSigners <= maxSigners.
	ErrInvalidThreshold = errors.New("frost: invalid threshold")

	// ErrInvalidKeyFormat is returned when Split is given a secret that
	// does not match any supported input encoding.
	ErrInvalidKeyFormat = errors.New("frost: invalid key format")

	// ErrInsufficientSigners is returned when Recover or a signing
	// operation is given fewer shares/commitments than the threshold
	// requires.
	ErrInsufficientSigners = errors.New("frost: insufficient signers")

	// ErrInsufficientShares is returned when AggregateSignatures is
	// given fewer signature shares than the threshold (MinSigners).
	ErrInsufficientShares = errors.New("frost: insufficient signature shares")

	// ErrDuplicateParticipant is returned when a participant id appears
	// more than once in a commitment list or recovery set. A duplicated
	// signature share is reported as ErrMismatchedShares instead.
	ErrDuplicateParticipant = errors.New("frost: duplicate participant")

	// ErrMismatchedCommitments is returned when building a signing
	// package and the commitment set does not correspond 1:1 with the
	// participant list (a count mismatch, or a participant with no
	// commitment).
	ErrMismatchedCommitments = errors.New("frost: mismatched commitments")

	// ErrMismatchedShares is returned when a signature share's
	// participant id does not appear in the signing package it is
	// purportedly answering.
	ErrMismatchedShares = errors.New("frost: mismatched signature shares")

	// ErrInvalidCommitment is returned when a nonce commitment element is
	// the identity or a low-order point (fails IsInPrimeOrderSubgroup).
	ErrInvalidCommitment = errors.New("frost: invalid commitment")

	// ErrMalformedSignature names the error kind for a signature whose R
	// or z component fails canonical decoding. No function in this package
	// returns it: Verify reports a malformed signature as false.
	ErrMalformedSignature = errors.New("frost: malformed signature")

	// ErrShareVerificationFailed is returned by AggregateSignatures when a
	// signature share fails the individual verification check it runs
	// against each share before summing (the same check VerifyShare
	// exposes as a bool for standalone use).
	ErrShareVerificationFailed = errors.New("frost: signature share verification failed")

	// ErrNotAParticipant is returned when a KeyShare's ParticipantId does
	// not appear in the signing package passed to Round2.
	ErrNotAParticipant = errors.New("frost: not a participant in this signing package")

	// ErrMissingBindingFactor is returned when Round2 cannot find a
	// binding factor for the signer's own participant id, which can only
	// happen if the signing package was constructed incorrectly.
	ErrMissingBindingFactor = errors.New("frost: missing binding factor")

	// ErrCryptoInternal wraps any failure in the underlying curve library
	// that spec.md's other named error kinds do not already cover (e.g.
	// an impossible decode of an internally-generated value).
	ErrCryptoInternal = errors.New("frost: internal cryptographic error")

	// ErrNoncesConsumed is returned by Round2 when called with a Nonces
	// value that has already been consumed by a prior Round2 call. Nonce
	// reuse across signing sessions breaks the scheme's security, so
	// Nonces are move-only: each value signs at most once.
	ErrNoncesConsumed = errors.New("frost: nonces already consumed")
)
