package curve

import (
	"fmt"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	secp256k1PointSize  = 33
	secp256k1ScalarSize = 32
)

// Secp256k1Point represents a point on the secp256k1 curve.
//
// The point is held in affine Jacobian form (Z == 1) except for the group
// identity, which is represented with Z == 0.
type Secp256k1Point struct {
	point secp.JacobianPoint
}

// newSecp256k1Point normalizes a Jacobian result into an affine point.
func newSecp256k1Point(jac *secp.JacobianPoint) *Secp256k1Point {
	p := &Secp256k1Point{}
	if jac.Z.IsZero() || ((jac.X.IsZero() && jac.Y.IsZero())) {
		// Point at infinity stays all-zero.
		return p
	}
	jac.ToAffine()
	p.point.Set(jac)
	p.point.X.Normalize()
	p.point.Y.Normalize()
	p.point.Z.Normalize()
	return p
}

// Bytes returns the compressed point encoding (33 bytes). The identity
// encodes as 33 zero bytes.
func (p *Secp256k1Point) Bytes() []byte {
	if p.IsIdentity() {
		return make([]byte, secp256k1PointSize)
	}
	return secp.NewPublicKey(&p.point.X, &p.point.Y).SerializeCompressed()
}

// Equal checks if two points are equal.
func (p *Secp256k1Point) Equal(other Point) bool {
	otherSecp, ok := other.(*Secp256k1Point)
	if !ok {
		return false
	}
	if p.IsIdentity() || otherSecp.IsIdentity() {
		return p.IsIdentity() && otherSecp.IsIdentity()
	}
	return p.point.X.Equals(&otherSecp.point.X) && p.point.Y.Equals(&otherSecp.point.Y)
}

// IsIdentity checks if this is the identity point (point at infinity).
func (p *Secp256k1Point) IsIdentity() bool {
	return p.point.Z.IsZero()
}

// Secp256k1Scalar represents a scalar modulo the secp256k1 group order.
type Secp256k1Scalar struct {
	scalar secp.ModNScalar
}

// Bytes returns the scalar as a 32-byte big-endian slice.
func (s *Secp256k1Scalar) Bytes() []byte {
	b := s.scalar.Bytes()
	return b[:]
}

// BigInt returns the scalar as a big.Int.
func (s *Secp256k1Scalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(s.Bytes())
}

// Secp256k1Curve implements the Curve interface for secp256k1.
type Secp256k1Curve struct{}

// NewSecp256k1 creates a new secp256k1 curve instance.
func NewSecp256k1() Curve {
	return &Secp256k1Curve{}
}

// Name returns the curve name.
func (c *Secp256k1Curve) Name() string {
	return "secp256k1"
}

// PointSize returns the compressed point length.
func (c *Secp256k1Curve) PointSize() int {
	return secp256k1PointSize
}

// ScalarSize returns the scalar length.
func (c *Secp256k1Curve) ScalarSize() int {
	return secp256k1ScalarSize
}

// ParsePoint parses a 33-byte compressed point. The all-zero encoding
// parses to the group identity.
func (c *Secp256k1Curve) ParsePoint(b []byte) (Point, error) {
	if len(b) != secp256k1PointSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPoint, secp256k1PointSize, len(b))
	}
	if allZero(b) {
		return &Secp256k1Point{}, nil
	}

	pubKey, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}

	p := &Secp256k1Point{}
	pubKey.AsJacobian(&p.point)
	p.point.X.Normalize()
	p.point.Y.Normalize()
	p.point.Z.Normalize()
	return p, nil
}

// ParseScalar parses a scalar from 32 big-endian bytes and validates it is
// in the range [1, n-1].
func (c *Secp256k1Curve) ParseScalar(b []byte) (Scalar, error) {
	if len(b) != secp256k1ScalarSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidScalar, secp256k1ScalarSize, len(b))
	}

	var buf [32]byte
	copy(buf[:], b)
	s := &Secp256k1Scalar{}
	if overflow := s.scalar.SetBytes(&buf); overflow != 0 {
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidScalar)
	}
	if s.scalar.IsZero() {
		return nil, fmt.Errorf("%w: scalar is zero", ErrInvalidScalar)
	}
	return s, nil
}

// NewScalarFromBig converts a non-negative integer below the group order
// into a scalar. Zero is permitted.
func (c *Secp256k1Curve) NewScalarFromBig(v *big.Int) (Scalar, error) {
	if v.Sign() < 0 || v.Cmp(c.Order()) >= 0 {
		return nil, fmt.Errorf("%w: value out of range", ErrInvalidScalar)
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	s := &Secp256k1Scalar{}
	s.scalar.SetBytes(&buf)
	return s, nil
}

// ScalarFromHash reduces a hash digest into the scalar field mod n.
func (c *Secp256k1Curve) ScalarFromHash(digest []byte) Scalar {
	s := &Secp256k1Scalar{}
	s.scalar.SetByteSlice(digest)
	return s
}

// GenerateScalar draws a uniformly random scalar in [1, n-1] from rand.
func (c *Secp256k1Curve) GenerateScalar(rand io.Reader) (Scalar, error) {
	privKey, err := secp.GeneratePrivateKeyFromRand(rand)
	if err != nil {
		return nil, fmt.Errorf("failed to generate scalar: %w", err)
	}
	return &Secp256k1Scalar{scalar: privKey.Key}, nil
}

// ScalarBaseMult computes s * G.
func (c *Secp256k1Curve) ScalarBaseMult(s Scalar) Point {
	secpScalar, ok := s.(*Secp256k1Scalar)
	if !ok {
		return nil
	}

	var result secp.JacobianPoint
	secp.ScalarBaseMultNonConst(&secpScalar.scalar, &result)
	return newSecp256k1Point(&result)
}

// ScalarMult computes s * P.
func (c *Secp256k1Curve) ScalarMult(p Point, s Scalar) Point {
	secpPoint, ok := p.(*Secp256k1Point)
	if !ok {
		return nil
	}
	secpScalar, ok := s.(*Secp256k1Scalar)
	if !ok {
		return nil
	}
	if secpPoint.IsIdentity() {
		return &Secp256k1Point{}
	}

	var result secp.JacobianPoint
	secp.ScalarMultNonConst(&secpScalar.scalar, &secpPoint.point, &result)
	return newSecp256k1Point(&result)
}

// Add computes P + Q.
func (c *Secp256k1Curve) Add(p, q Point) Point {
	secpP, ok := p.(*Secp256k1Point)
	if !ok {
		return nil
	}
	secpQ, ok := q.(*Secp256k1Point)
	if !ok {
		return nil
	}

	// AddNonConst treats an all-zero point as infinity, but handle the
	// identity explicitly so the invariants do not depend on it.
	if secpP.IsIdentity() {
		cp := &Secp256k1Point{}
		cp.point.Set(&secpQ.point)
		return cp
	}
	if secpQ.IsIdentity() {
		cp := &Secp256k1Point{}
		cp.point.Set(&secpP.point)
		return cp
	}

	var result secp.JacobianPoint
	secp.AddNonConst(&secpP.point, &secpQ.point, &result)
	return newSecp256k1Point(&result)
}

// Negate computes -P.
func (c *Secp256k1Curve) Negate(p Point) Point {
	secpP, ok := p.(*Secp256k1Point)
	if !ok {
		return nil
	}
	if secpP.IsIdentity() {
		return &Secp256k1Point{}
	}

	neg := &Secp256k1Point{}
	neg.point.Set(&secpP.point)
	neg.point.Y.Negate(1)
	neg.point.Y.Normalize()
	return neg
}

// AddScalars computes a + b mod n.
func (c *Secp256k1Curve) AddScalars(a, b Scalar) Scalar {
	sa, ok := a.(*Secp256k1Scalar)
	if !ok {
		return nil
	}
	sb, ok := b.(*Secp256k1Scalar)
	if !ok {
		return nil
	}

	result := &Secp256k1Scalar{scalar: sa.scalar}
	result.scalar.Add(&sb.scalar)
	return result
}

// SubScalars computes a - b mod n.
func (c *Secp256k1Curve) SubScalars(a, b Scalar) Scalar {
	sa, ok := a.(*Secp256k1Scalar)
	if !ok {
		return nil
	}
	sb, ok := b.(*Secp256k1Scalar)
	if !ok {
		return nil
	}

	neg := sb.scalar
	neg.Negate()
	result := &Secp256k1Scalar{scalar: sa.scalar}
	result.scalar.Add(&neg)
	return result
}

// Order returns the order of the secp256k1 group.
func (c *Secp256k1Curve) Order() *big.Int {
	return new(big.Int).Set(secp.S256().N)
}

// ValidatePoint validates that a point is usable as a public key.
func (c *Secp256k1Curve) ValidatePoint(p Point) error {
	secpP, ok := p.(*Secp256k1Point)
	if !ok {
		return ErrInvalidPoint
	}
	if secpP.IsIdentity() {
		return ErrIdentityPoint
	}
	return nil
}
