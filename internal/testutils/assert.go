package testutils

import (
	"fmt"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"golang.org/x/exp/slices"
)

// AssertBigIntsEqual checks if two not-nil big integers are equal. If not, it
// reports a test failure.
func AssertBigIntsEqual(t *testing.T, description string, expected *big.Int, actual *big.Int) {
	if expected.Cmp(actual) != 0 {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertBytesEqual checks if the two bytes array are equal. If not, it reports
// a test failure.
func AssertBytesEqual(t *testing.T, expectedBytes []byte, actualBytes []byte) {
	err := testBytesEqual(expectedBytes, actualBytes)

	if err != nil {
		t.Error(err)
	}
}

func testBytesEqual(expectedBytes []byte, actualBytes []byte) error {
	minLen := len(expectedBytes)
	diffCount := 0
	if actualLen := len(actualBytes); actualLen < minLen {
		diffCount = minLen - actualLen
		minLen = actualLen
	} else {
		diffCount = actualLen - minLen
	}

	for i := 0; i < minLen; i++ {
		if expectedBytes[i] != actualBytes[i] {
			diffCount++
		}
	}

	if diffCount != 0 {
		return fmt.Errorf(
			"byte slices differ in %v places\nexpected: [%v]\nactual:   [%v]",
			diffCount,
			expectedBytes,
			actualBytes,
		)
	}

	return nil
}

// AssertUint32SlicesEqual checks if two slices of a uint32-based type are
// equal, e.g. two frost.ParticipantId orderings. If not, it reports a test
// failure.
func AssertUint32SlicesEqual[T ~uint32](
	t *testing.T,
	description string,
	expected []T,
	actual []T,
) {
	if !slices.Equal(expected, actual) {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertScalarsEqual checks if two Ed25519 scalars are equal by curve-library
// comparison rather than byte comparison, so it still passes if a caller
// hands it a non-canonically-reduced value. If not equal, it reports a test
// failure.
func AssertScalarsEqual(t *testing.T, description string, expected, actual *edwards25519.Scalar) {
	if expected.Equal(actual) != 1 {
		t.Errorf(
			"unexpected %s\nexpected: %x\nactual:   %x\n",
			description,
			expected.Bytes(),
			actual.Bytes(),
		)
	}
}

// AssertElementsEqual checks if two Ed25519 curve points are equal. If not,
// it reports a test failure.
func AssertElementsEqual(t *testing.T, description string, expected, actual *edwards25519.Point) {
	if expected.Equal(actual) != 1 {
		t.Errorf(
			"unexpected %s\nexpected: %x\nactual:   %x\n",
			description,
			expected.Bytes(),
			actual.Bytes(),
		)
	}
}
