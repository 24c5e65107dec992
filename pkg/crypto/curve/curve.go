// Package curve provides a uniform abstraction over the elliptic curve
// groups used by the stealth address protocol.
//
// # Supported Curves
//
// The package supports two curve groups:
//
//   - secp256k1: The curve used by Bitcoin, Ethereum and the Cosmos
//     ecosystem. Points serialize to 33 bytes (compressed), scalars to
//     32 bytes big-endian.
//
//   - ed25519: The twisted Edwards curve used by Solana, NEAR, Aptos and
//     Sui. Points and scalars both serialize to 32 bytes; scalars use the
//     canonical little-endian encoding.
//
// # Protocol Requirements
//
// The stealth protocol and the Pedersen commitment engine are written once
// over this interface. Beyond the usual group operations they need:
//
//   - Deterministic reduction of a hash digest into the scalar field
//     (the "tweak" derived from an ECDH shared secret).
//   - Scalar addition mod the group order (spend key + tweak, blinding
//     factor arithmetic).
//   - Point negation (homomorphic commitment subtraction).
//   - A representable identity element: subtracting a commitment from
//     itself must yield a value that serializes, round-trips and compares
//     equal. The identity serializes as all-zero bytes of the curve's
//     point width on both curves.
//
// # Security Properties
//
// All implementations must reject points that are not valid group elements
// and scalars outside [1, q-1] at the parsing boundary. ValidatePoint
// additionally rejects the identity, which is never a legitimate public
// key. Randomness is always an explicit parameter so callers can inject a
// deterministic source for reproducible test vectors.
package curve

import (
	"errors"
	"io"
	"math/big"
)

// Point represents an element of an elliptic curve group.
type Point interface {
	// Bytes returns the canonical serialization of the point.
	// For secp256k1: 33 bytes (compressed, 0x02/0x03 prefix + x-coordinate).
	// For ed25519: 32 bytes (canonical Edwards y encoding).
	// The group identity serializes as all-zero bytes of the point width.
	Bytes() []byte

	// Equal checks if two points are equal.
	Equal(other Point) bool

	// IsIdentity checks if this is the identity element of the group.
	IsIdentity() bool
}

// Scalar represents a scalar value modulo the curve's group order.
type Scalar interface {
	// Bytes returns the scalar as a fixed 32-byte slice, in the curve's
	// canonical scalar encoding (big-endian for secp256k1, little-endian
	// for ed25519).
	Bytes() []byte

	// BigInt returns the scalar value as a big.Int.
	BigInt() *big.Int
}

// Curve abstracts the group operations the stealth protocol needs.
//
// Implementations are stateless and safe for concurrent use; every method
// is a pure function of its inputs (GenerateScalar draws from the supplied
// reader only).
type Curve interface {
	// Name returns the curve identifier ("secp256k1" or "ed25519").
	Name() string

	// PointSize returns the serialized point length in bytes.
	PointSize() int

	// ScalarSize returns the serialized scalar length in bytes.
	ScalarSize() int

	// ParsePoint deserializes a point from its fixed-length encoding.
	// The all-zero encoding parses to the group identity; any other
	// input must be a valid group element.
	ParsePoint(b []byte) (Point, error)

	// ParseScalar deserializes a scalar and validates it is in [1, q-1].
	ParseScalar(b []byte) (Scalar, error)

	// NewScalarFromBig converts a non-negative integer below the group
	// order into a scalar. Unlike ParseScalar, zero is permitted; the
	// commitment engine commits to zero values.
	NewScalarFromBig(v *big.Int) (Scalar, error)

	// ScalarFromHash deterministically reduces a hash digest into the
	// scalar field (interpreting the digest as a big-endian integer
	// mod q).
	ScalarFromHash(digest []byte) Scalar

	// GenerateScalar draws a uniformly random scalar in [1, q-1] from
	// the provided randomness source.
	GenerateScalar(rand io.Reader) (Scalar, error)

	// ScalarBaseMult computes s * G.
	ScalarBaseMult(s Scalar) Point

	// ScalarMult computes s * P.
	ScalarMult(p Point, s Scalar) Point

	// Add computes P + Q.
	Add(p, q Point) Point

	// Negate computes -P.
	Negate(p Point) Point

	// AddScalars computes a + b mod q.
	AddScalars(a, b Scalar) Scalar

	// SubScalars computes a - b mod q.
	SubScalars(a, b Scalar) Scalar

	// Order returns q, the order of the curve's prime-order group.
	Order() *big.Int

	// ValidatePoint checks that a point is usable as a public key.
	// Rejects the identity and malformed elements.
	ValidatePoint(p Point) error
}

var (
	// ErrInvalidPoint indicates an invalid point
	ErrInvalidPoint = errors.New("invalid point")

	// ErrInvalidScalar indicates an invalid scalar
	ErrInvalidScalar = errors.New("invalid scalar")

	// ErrIdentityPoint indicates the point is the identity point
	ErrIdentityPoint = errors.New("point is identity")

	// ErrPointNotOnCurve indicates the point is not on the curve
	ErrPointNotOnCurve = errors.New("point is not on curve")
)

// allZero reports whether every byte of b is zero.
func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
