package frost

import "golang.org/x/exp/slices"

// sortParticipantIds returns a sorted copy of ids, ascending. Ascending id
// order is part of the protocol contract (spec.md §4.2): the binding factor
// and group commitment depend on the commitment list's encoded order.
func sortParticipantIds(ids []ParticipantId) []ParticipantId {
	sorted := make([]ParticipantId, len(ids))
	copy(sorted, ids)
	slices.SortFunc(sorted, func(a, b ParticipantId) int { return int(a) - int(b) })
	return sorted
}

func containsParticipantId(ids []ParticipantId, id ParticipantId) bool {
	return slices.Contains(ids, id)
}
