package frost

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// ParticipantId identifies a signer within a group. Ids are 1-based and
// distinct within a group; 0 is never a valid id (spec.md §3).
type ParticipantId uint32

// NonceCommitment is the public output of round 1: D = d*G, E = e*G.
type NonceCommitment struct {
	Hiding  *Element // D
	Binding *Element // E
}

// CommitmentShare pairs a participant id with its round-1 commitment, the
// unit the coordinator collects before building a SigningPackage.
type CommitmentShare struct {
	ParticipantId ParticipantId
	Commitment    NonceCommitment
}

// bindingFactors maps participant id to its binding factor rho_i, computed
// once per signing package and shared by every signer and the coordinator.
type bindingFactors map[ParticipantId]*Scalar

// encodeGroupCommitment implements the commitment list encoding (spec.md
// §4.2): for each commitment in ascending id order, emit
// len(id_ascii) || id_ascii || u32-BE(len(D||E)) || D || E. ids and
// commitments must already be aligned and sorted by id; validateCommitments
// guarantees this before callers reach here. This exact byte layout is a
// binding protocol contract: any deviation produces signatures that do not
// verify against another conformant implementation.
func encodeGroupCommitment(ids []ParticipantId, commitments []NonceCommitment) []byte {
	b := make([]byte, 0, len(ids)*96)
	for i, id := range ids {
		idAscii := []byte(strconv.FormatUint(uint64(id), 10))
		de := concat(commitments[i].Hiding.Bytes(), commitments[i].Binding.Bytes())

		var deLenBuf [4]byte
		binary.BigEndian.PutUint32(deLenBuf[:], uint32(len(de)))

		b = append(b, byte(len(idAscii)))
		b = append(b, idAscii...)
		b = append(b, deLenBuf[:]...)
		b = append(b, de...)
	}
	return b
}

// computeBindingFactors implements compute_binding_factors ([FROST] §4.4).
// ids and commitments must be aligned and sorted by id.
func computeBindingFactors(ciphersuite Ciphersuite, groupPublicKey *Element, message []byte, ids []ParticipantId, commitments []NonceCommitment) bindingFactors {
	groupPublicKeyEncoded := groupPublicKey.Bytes()
	msgHash := ciphersuite.H4(message)
	encodedCommitments := encodeGroupCommitment(ids, commitments)
	encodedCommitHash := ciphersuite.H5(encodedCommitments)

	rhoInputPrefix := concat(groupPublicKeyEncoded, msgHash, encodedCommitHash)

	factors := make(bindingFactors, len(ids))
	for _, id := range ids {
		var idBuf [4]byte
		binary.BigEndian.PutUint32(idBuf[:], uint32(id))
		rhoInput := concat(rhoInputPrefix, idBuf[:])
		factors[id] = ciphersuite.H1(rhoInput)
	}
	return factors
}

// computeGroupCommitment implements compute_group_commitment ([FROST] §4.5):
// R = sum_i (D_i + rho_i * E_i).
func computeGroupCommitment(ciphersuite Ciphersuite, ids []ParticipantId, commitments []NonceCommitment, factors bindingFactors) *Element {
	r := ciphersuite.Identity()
	for i, id := range ids {
		rho := factors[id]
		bindingTerm := ciphersuite.EcMul(commitments[i].Binding, rho)
		r = ciphersuite.EcAdd(r, ciphersuite.EcAdd(commitments[i].Hiding, bindingTerm))
	}
	return r
}

// computeChallenge implements the per-message challenge ([FROST] §4.6):
// c = H2(R || PK || m), with no additional domain separator so the result
// matches a stock Ed25519 challenge.
func computeChallenge(ciphersuite Ciphersuite, groupCommitment, groupPublicKey *Element, message []byte) *Scalar {
	return ciphersuite.H2(groupCommitment.Bytes(), groupPublicKey.Bytes(), message)
}

// lagrangeCoefficient implements derive_interpolating_value ([FROST] §4.2):
// lambda_i = prod_{j in L, j != i} x_j / (x_j - x_i), evaluated at x = 0.
func lagrangeCoefficient(xi ParticipantId, participants []ParticipantId) *Scalar {
	num := scalarFromUint64(1)
	den := scalarFromUint64(1)
	xiScalar := scalarFromUint64(uint64(xi))

	for _, xj := range participants {
		if xj == xi {
			continue
		}
		xjScalar := scalarFromUint64(uint64(xj))
		num = newScalar().Multiply(num, xjScalar)

		diff := newScalar().Subtract(xjScalar, xiScalar)
		den = newScalar().Multiply(den, diff)
	}

	denInv := newScalar().Invert(den)
	return newScalar().Multiply(num, denInv)
}

// validateCommitments enforces spec.md §4.6 steps 1-3 and returns the
// participant ids and their commitments, both sorted by ascending id.
func validateCommitments(ciphersuite Ciphersuite, threshold uint32, participants []ParticipantId, commitmentsByID map[ParticipantId]NonceCommitment) ([]ParticipantId, []NonceCommitment, error) {
	if uint32(len(participants)) < threshold {
		return nil, nil, fmt.Errorf("have %d participants, need %d: %w", len(participants), threshold, ErrInsufficientSigners)
	}

	seen := make(map[ParticipantId]bool, len(participants))
	for _, id := range participants {
		if seen[id] {
			return nil, nil, fmt.Errorf("participant %d appears twice: %w", id, ErrDuplicateParticipant)
		}
		seen[id] = true
	}

	if len(commitmentsByID) != len(participants) {
		return nil, nil, fmt.Errorf("have %d commitments for %d participants: %w", len(commitmentsByID), len(participants), ErrMismatchedCommitments)
	}

	sortedIds := sortParticipantIds(participants)

	commitments := make([]NonceCommitment, 0, len(sortedIds))
	for _, id := range sortedIds {
		c, ok := commitmentsByID[id]
		if !ok {
			return nil, nil, fmt.Errorf("participant %d has no commitment: %w", id, ErrMismatchedCommitments)
		}
		if c.Hiding.Equal(identityElement()) == 1 || c.Binding.Equal(identityElement()) == 1 {
			return nil, nil, fmt.Errorf("participant %d: %w", id, ErrInvalidCommitment)
		}
		if !ciphersuite.IsInPrimeOrderSubgroup(c.Hiding) || !ciphersuite.IsInPrimeOrderSubgroup(c.Binding) {
			return nil, nil, fmt.Errorf("participant %d: %w", id, ErrInvalidCommitment)
		}
		commitments = append(commitments, c)
	}
	return sortedIds, commitments, nil
}

func identityElement() *Element { return newElement() }

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	b := make([]byte, 0, n)
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}
