package testutils

import (
	"crypto/rand"
	"math/big"
)

// Ed25519Order is l, the prime order of the Ed25519 base-point subgroup.
// GenerateKeyShares is used in tests as an independent reference
// implementation of Shamir sharing over this specific field, to cross-check
// frost.GenerateKeys/frost.evaluatePolynomial/frost.lagrangeCoefficient — it
// is intentionally not parameterized over an arbitrary group order, since
// this package exists only to cross-check this one ciphersuite. Exported so
// callers can convert between this package's big.Int shares and frost.Scalar's
// little-endian encoding.
var Ed25519Order, _ = new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

// GenerateKeyShares generates secret key shares for the group of the given
// size with the required signing threshold, over the Ed25519 scalar field.
func GenerateKeyShares(
	secretKey *big.Int,
	groupSize int,
	threshold int,
) []*big.Int {
	coefficients := generatePolynomial(secretKey, threshold)

	secretKeyShares := make([]*big.Int, groupSize)
	for i := 0; i < groupSize; i++ {
		j := i + 1
		secretKeyShares[i] = calculatePolynomial(coefficients, j)
	}

	return secretKeyShares
}

// generatePolynomial generates a polynomial of degree `threshold - 1`
// (`threshold` coefficients, the first being `secretKey`) with random
// higher coefficients, reduced modulo the Ed25519 scalar field order.
func generatePolynomial(
	secretKey *big.Int,
	threshold int,
) []*big.Int {
	arr := make([]*big.Int, threshold)
	arr[0] = secretKey
	for i := 1; i < threshold; i++ {
		random, err := rand.Int(rand.Reader, Ed25519Order)
		if err != nil {
			panic(err)
		}
		arr[i] = random
	}

	return arr
}

// calculatePolynomial calculates the polynomial value for the given `x`
// modulo the Ed25519 scalar field order. Polynomial `coefficients` need to
// be passed as parameters.
func calculatePolynomial(
	coefficients []*big.Int,
	x int,
) *big.Int {
	result := new(big.Int)

	bigX := big.NewInt(int64(x))

	for i, c := range coefficients {
		tmp := new(big.Int).Exp(bigX, big.NewInt(int64(i)), Ed25519Order)
		tmp.Mul(tmp, c)
		result.Add(result, tmp)
	}

	return new(big.Int).Mod(result, Ed25519Order)
}
