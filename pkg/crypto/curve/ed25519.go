package curve

import (
	"fmt"
	"io"
	"math/big"

	"filippo.io/edwards25519"
)

const (
	ed25519PointSize  = 32
	ed25519ScalarSize = 32
)

// Ed25519Point represents a point on the edwards25519 curve.
type Ed25519Point struct {
	point *edwards25519.Point
}

// Bytes returns the canonical 32-byte encoding of the point. The identity
// encodes as 32 zero bytes.
func (p *Ed25519Point) Bytes() []byte {
	if p == nil || p.point == nil {
		return nil
	}
	if p.IsIdentity() {
		return make([]byte, ed25519PointSize)
	}

	encoded := p.point.Bytes()
	out := make([]byte, len(encoded))
	copy(out, encoded)
	return out
}

// Equal reports whether two points are identical.
func (p *Ed25519Point) Equal(other Point) bool {
	otherEd, ok := other.(*Ed25519Point)
	if !ok {
		return false
	}

	switch {
	case p == nil && otherEd == nil:
		return true
	case p == nil || otherEd == nil:
		return false
	}

	return p.point.Equal(otherEd.point) == 1
}

// IsIdentity reports whether the point is the identity element.
func (p *Ed25519Point) IsIdentity() bool {
	if p == nil || p.point == nil {
		return true
	}
	return p.point.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Ed25519Scalar represents a scalar modulo the ed25519 group order l.
type Ed25519Scalar struct {
	scalar *edwards25519.Scalar
}

// Bytes returns the canonical 32-byte little-endian encoding.
func (s *Ed25519Scalar) Bytes() []byte {
	if s == nil || s.scalar == nil {
		return nil
	}

	le := s.scalar.Bytes()
	out := make([]byte, len(le))
	copy(out, le)
	return out
}

// BigInt returns the scalar value as a big.Int.
func (s *Ed25519Scalar) BigInt() *big.Int {
	if s == nil || s.scalar == nil {
		return big.NewInt(0)
	}

	le := s.scalar.Bytes()
	be := make([]byte, len(le))
	for i := range le {
		be[len(le)-1-i] = le[i]
	}
	return new(big.Int).SetBytes(be)
}

// Ed25519Curve implements the Curve interface for the edwards25519 group.
//
// Scalars are raw values mod l: no EdDSA signing clamp is ever applied,
// because the stealth derivation adds tweak scalars directly to the
// spending scalar and the result must satisfy stealthPub == (spend+tweak)*B.
type Ed25519Curve struct{}

// NewEd25519 creates a new ed25519 curve instance.
func NewEd25519() Curve {
	return &Ed25519Curve{}
}

// Name returns the canonical group name.
func (c *Ed25519Curve) Name() string {
	return "ed25519"
}

// PointSize returns the encoded point length.
func (c *Ed25519Curve) PointSize() int {
	return ed25519PointSize
}

// ScalarSize returns the encoded scalar length.
func (c *Ed25519Curve) ScalarSize() int {
	return ed25519ScalarSize
}

// ParsePoint decodes a canonical 32-byte Edwards point encoding. The
// all-zero encoding parses to the group identity.
func (c *Ed25519Curve) ParsePoint(b []byte) (Point, error) {
	if len(b) != ed25519PointSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPoint, ed25519PointSize, len(b))
	}
	if allZero(b) {
		return &Ed25519Point{point: edwards25519.NewIdentityPoint()}, nil
	}

	point, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}

	return &Ed25519Point{point: point}, nil
}

// ParseScalar decodes a canonical little-endian scalar encoding and
// validates it is in [1, l-1].
func (c *Ed25519Curve) ParseScalar(b []byte) (Scalar, error) {
	if len(b) != ed25519ScalarSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidScalar, ed25519ScalarSize, len(b))
	}

	sc, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}
	if sc.Equal(edwards25519.NewScalar()) == 1 {
		return nil, fmt.Errorf("%w: scalar is zero", ErrInvalidScalar)
	}

	return &Ed25519Scalar{scalar: sc}, nil
}

// NewScalarFromBig converts a non-negative integer below the group order
// into a scalar. Zero is permitted.
func (c *Ed25519Curve) NewScalarFromBig(v *big.Int) (Scalar, error) {
	if v.Sign() < 0 || v.Cmp(c.Order()) >= 0 {
		return nil, fmt.Errorf("%w: value out of range", ErrInvalidScalar)
	}

	be := v.FillBytes(make([]byte, ed25519ScalarSize))
	le := make([]byte, ed25519ScalarSize)
	for i := range be {
		le[i] = be[len(be)-1-i]
	}

	sc, err := edwards25519.NewScalar().SetCanonicalBytes(le)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}
	return &Ed25519Scalar{scalar: sc}, nil
}

// ScalarFromHash reduces a hash digest (big-endian integer) mod l.
func (c *Ed25519Curve) ScalarFromHash(digest []byte) Scalar {
	v := new(big.Int).SetBytes(digest)
	v.Mod(v, c.Order())

	s, err := c.NewScalarFromBig(v)
	if err != nil {
		// Unreachable: v is reduced mod l above.
		return nil
	}
	return s
}

// GenerateScalar draws a uniformly random scalar in [1, l-1] from rand.
func (c *Ed25519Curve) GenerateScalar(rand io.Reader) (Scalar, error) {
	seed := make([]byte, 64)
	for {
		if _, err := io.ReadFull(rand, seed); err != nil {
			return nil, fmt.Errorf("failed to generate random scalar: %w", err)
		}

		sc, err := edwards25519.NewScalar().SetUniformBytes(seed)
		if err != nil {
			return nil, fmt.Errorf("failed to derive scalar: %w", err)
		}
		if sc.Equal(edwards25519.NewScalar()) == 1 {
			continue
		}
		return &Ed25519Scalar{scalar: sc}, nil
	}
}

// ScalarBaseMult returns s*B, where B is the Ed25519 basepoint.
func (c *Ed25519Curve) ScalarBaseMult(s Scalar) Point {
	edScalar, ok := s.(*Ed25519Scalar)
	if !ok || edScalar.scalar == nil {
		return nil
	}

	point := new(edwards25519.Point).ScalarBaseMult(edScalar.scalar)
	return &Ed25519Point{point: point}
}

// ScalarMult computes s * P.
func (c *Ed25519Curve) ScalarMult(p Point, s Scalar) Point {
	edPoint, ok := p.(*Ed25519Point)
	if !ok || edPoint.point == nil {
		return nil
	}
	edScalar, ok := s.(*Ed25519Scalar)
	if !ok || edScalar.scalar == nil {
		return nil
	}

	point := new(edwards25519.Point).ScalarMult(edScalar.scalar, edPoint.point)
	return &Ed25519Point{point: point}
}

// Add returns P + Q.
func (c *Ed25519Curve) Add(p, q Point) Point {
	ep, ok := p.(*Ed25519Point)
	if !ok || ep.point == nil {
		return nil
	}
	eq, ok := q.(*Ed25519Point)
	if !ok || eq.point == nil {
		return nil
	}

	point := new(edwards25519.Point).Add(ep.point, eq.point)
	return &Ed25519Point{point: point}
}

// Negate returns -P.
func (c *Ed25519Curve) Negate(p Point) Point {
	ep, ok := p.(*Ed25519Point)
	if !ok || ep.point == nil {
		return nil
	}

	point := new(edwards25519.Point).Negate(ep.point)
	return &Ed25519Point{point: point}
}

// AddScalars computes a + b mod l.
func (c *Ed25519Curve) AddScalars(a, b Scalar) Scalar {
	sa, ok := a.(*Ed25519Scalar)
	if !ok || sa.scalar == nil {
		return nil
	}
	sb, ok := b.(*Ed25519Scalar)
	if !ok || sb.scalar == nil {
		return nil
	}

	sum := edwards25519.NewScalar().Add(sa.scalar, sb.scalar)
	return &Ed25519Scalar{scalar: sum}
}

// SubScalars computes a - b mod l.
func (c *Ed25519Curve) SubScalars(a, b Scalar) Scalar {
	sa, ok := a.(*Ed25519Scalar)
	if !ok || sa.scalar == nil {
		return nil
	}
	sb, ok := b.(*Ed25519Scalar)
	if !ok || sb.scalar == nil {
		return nil
	}

	diff := edwards25519.NewScalar().Subtract(sa.scalar, sb.scalar)
	return &Ed25519Scalar{scalar: diff}
}

// Order returns the order of the prime-order subgroup.
func (c *Ed25519Curve) Order() *big.Int {
	// l = 2^252 + 27742317777372353535851937790883648493
	order := new(big.Int).Lsh(big.NewInt(1), 252)
	addend, _ := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	order.Add(order, addend)
	return order
}

// ValidatePoint ensures the point is non-identity and properly decoded.
func (c *Ed25519Curve) ValidatePoint(p Point) error {
	ep, ok := p.(*Ed25519Point)
	if !ok || ep.point == nil {
		return ErrInvalidPoint
	}

	if ep.IsIdentity() {
		return ErrIdentityPoint
	}

	return nil
}
