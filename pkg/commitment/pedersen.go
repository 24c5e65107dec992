// Package commitment implements Pedersen commitments over the curve
// abstraction: C = value*G + blinding*H for two generators whose discrete
// log relation is unknown.
//
// Commitments are hiding (the blinding factor masks the value), binding
// (opening to a different value requires solving a discrete log), and
// additively homomorphic:
//
//	Commit(a, r1) + Commit(b, r2) == Commit(a+b, r1+r2 mod q)
//
// which lets a verifier check conservation of value across a set of
// transfers without learning any amount. Whoever needs to re-open a
// combined commitment must track the combined blinding with AddBlindings
// and SubBlindings.
package commitment

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/sip-protocol/sip-go/pkg/crypto/curve"
)

// Nothing-up-my-sleeve domain tags for deriving the second generator H.
// These are fixed protocol constants: changing either one changes every
// commitment on that curve.
const (
	hDomainSecp256k1 = "SIP-PEDERSEN-GENERATOR-H-v1"
	hDomainEd25519   = "SIP-PEDERSEN-GENERATOR-H-ED25519-v1"
)

var (
	// ErrValueOutOfRange indicates a committed value outside [0, q-1].
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidBlindingLength indicates a blinding factor that is not
	// exactly one scalar width.
	ErrInvalidBlindingLength = errors.New("invalid blinding length")

	// ErrInvalidCommitment indicates bytes that do not decode to a
	// commitment point.
	ErrInvalidCommitment = errors.New("invalid commitment")
)

// Commitment is a Pedersen commitment point. The zero-value commitment
// (the group identity) is what subtracting a commitment from itself
// yields; it serializes as all-zero bytes and opens to value 0 with a
// zero blinding.
type Commitment struct {
	point curve.Point
}

// Bytes returns the commitment's serialized point.
func (c *Commitment) Bytes() []byte {
	return c.point.Bytes()
}

// Equal reports whether two commitments are the same point.
func (c *Commitment) Equal(other *Commitment) bool {
	return c.point.Equal(other.point)
}

// IsZero reports whether the commitment is the group identity.
func (c *Commitment) IsZero() bool {
	return c.point.IsIdentity()
}

// Engine holds a curve and its derived generator H.
//
// Engines are stateless once constructed and safe for concurrent use.
type Engine struct {
	crv curve.Curve
	h   curve.Point
}

// New creates a commitment engine for the given curve, deriving the
// nothing-up-my-sleeve generator H.
func New(crv curve.Curve) (*Engine, error) {
	h, err := deriveH(crv)
	if err != nil {
		return nil, err
	}
	return &Engine{crv: crv, h: h}, nil
}

// deriveH derives the second generator via the fixed hash-to-curve
// procedure for each curve:
//
//   - secp256k1: SHA-256 of "<domain>:<counter>" taken as the
//     x-coordinate of a compressed even-Y point; the first counter that
//     decodes to a curve point wins. This reproduces the original SIP
//     derivation exactly.
//   - ed25519: SHA-256 of "<domain>:<counter>" tried as a canonical
//     point encoding, multiplied by the cofactor 8 to land in the
//     prime-order subgroup; the first non-identity result wins.
//
// In both procedures nobody knows the discrete log of H relative to G.
func deriveH(crv curve.Curve) (curve.Point, error) {
	switch crv.Name() {
	case "secp256k1":
		for counter := 0; counter < 256; counter++ {
			hash := sha256.Sum256([]byte(fmt.Sprintf("%s:%d", hDomainSecp256k1, counter)))

			candidate := make([]byte, crv.PointSize())
			candidate[0] = 0x02 // compressed, even y
			copy(candidate[1:], hash[:])

			if p, err := crv.ParsePoint(candidate); err == nil {
				return p, nil
			}
		}

	case "ed25519":
		eight, err := crv.NewScalarFromBig(big.NewInt(8))
		if err != nil {
			return nil, err
		}

		for counter := 0; counter < 256; counter++ {
			hash := sha256.Sum256([]byte(fmt.Sprintf("%s:%d", hDomainEd25519, counter)))

			p, err := crv.ParsePoint(hash[:])
			if err != nil {
				continue
			}

			h := crv.ScalarMult(p, eight)
			if h == nil || h.IsIdentity() {
				continue
			}
			return h, nil
		}
	}

	return nil, fmt.Errorf("failed to derive generator H for %s", crv.Name())
}

// Generators returns the serialized G and H points, for handing to
// external proof systems that must agree on the commitment basis.
func (e *Engine) Generators() (g, h []byte) {
	one, _ := e.crv.NewScalarFromBig(big.NewInt(1))
	return e.crv.ScalarBaseMult(one).Bytes(), e.h.Bytes()
}

// Commit commits to a value with a fresh random blinding factor drawn
// from rand. Returns the commitment and the blinding; the blinding is
// secret and must be retained by whoever will later open or combine the
// commitment.
func (e *Engine) Commit(rand io.Reader, value uint64) (*Commitment, []byte, error) {
	r, err := e.crv.GenerateScalar(rand)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate blinding: %w", err)
	}

	c, err := e.compute(value, r)
	if err != nil {
		return nil, nil, err
	}
	return c, r.Bytes(), nil
}

// CommitWith commits to a value with a caller-supplied blinding factor.
// The blinding must be exactly one scalar width and non-zero.
func (e *Engine) CommitWith(value uint64, blinding []byte) (*Commitment, error) {
	if len(blinding) != e.crv.ScalarSize() {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidBlindingLength, e.crv.ScalarSize(), len(blinding))
	}

	r, err := e.crv.ParseScalar(blinding)
	if err != nil {
		return nil, fmt.Errorf("invalid blinding: %w", err)
	}

	return e.compute(value, r)
}

// compute evaluates C = value*G + r*H.
func (e *Engine) compute(value uint64, r curve.Scalar) (*Commitment, error) {
	vBig := new(big.Int).SetUint64(value)
	if vBig.Cmp(e.crv.Order()) >= 0 {
		return nil, fmt.Errorf("%w: value exceeds group order", ErrValueOutOfRange)
	}

	rH := e.crv.ScalarMult(e.h, r)

	if value == 0 {
		// Only the blinding contributes: C = r*H.
		return &Commitment{point: rH}, nil
	}

	v, err := e.crv.NewScalarFromBig(vBig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValueOutOfRange, err)
	}

	return &Commitment{point: e.crv.Add(e.crv.ScalarBaseMult(v), rH)}, nil
}

// VerifyOpening checks that a commitment opens to the claimed value and
// blinding by recomputing value*G + blinding*H and comparing points.
//
// Unlike CommitWith, an all-zero blinding is accepted here: subtracting
// two commitments with equal blindings legitimately produces the
// degenerate zero-blinding opening.
func (e *Engine) VerifyOpening(c *Commitment, value uint64, blinding []byte) (bool, error) {
	if len(blinding) != e.crv.ScalarSize() {
		return false, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidBlindingLength, e.crv.ScalarSize(), len(blinding))
	}

	r, err := e.blindingScalar(blinding)
	if err != nil {
		return false, err
	}

	expected, err := e.compute(value, r)
	if err != nil {
		return false, err
	}

	return expected.Equal(c), nil
}

// blindingScalar parses a blinding, permitting the zero scalar.
func (e *Engine) blindingScalar(blinding []byte) (curve.Scalar, error) {
	zero := true
	for _, b := range blinding {
		if b != 0 {
			zero = false
			break
		}
	}
	if zero {
		return e.crv.NewScalarFromBig(big.NewInt(0))
	}

	r, err := e.crv.ParseScalar(blinding)
	if err != nil {
		return nil, fmt.Errorf("invalid blinding: %w", err)
	}
	return r, nil
}

// ParseCommitment decodes a serialized commitment point. The all-zero
// encoding decodes to the zero commitment.
func (e *Engine) ParseCommitment(b []byte) (*Commitment, error) {
	p, err := e.crv.ParsePoint(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCommitment, err)
	}
	return &Commitment{point: p}, nil
}

// Add combines two commitments homomorphically:
// Commit(a, r1) + Commit(b, r2) = Commit(a+b, r1+r2).
func (e *Engine) Add(c1, c2 *Commitment) *Commitment {
	return &Commitment{point: e.crv.Add(c1.point, c2.point)}
}

// Subtract combines two commitments homomorphically:
// Commit(a, r1) - Commit(b, r2) = Commit(a-b, r1-r2). Subtracting a
// commitment from itself yields the zero commitment.
func (e *Engine) Subtract(c1, c2 *Commitment) *Commitment {
	return &Commitment{point: e.crv.Add(c1.point, e.crv.Negate(c2.point))}
}

// AddBlindings adds blinding factors mod the group order, tracking the
// blinding of an Add-combined commitment.
func (e *Engine) AddBlindings(b1, b2 []byte) ([]byte, error) {
	s1, s2, err := e.blindingPair(b1, b2)
	if err != nil {
		return nil, err
	}
	return e.crv.AddScalars(s1, s2).Bytes(), nil
}

// SubBlindings subtracts blinding factors mod the group order, tracking
// the blinding of a Subtract-combined commitment.
func (e *Engine) SubBlindings(b1, b2 []byte) ([]byte, error) {
	s1, s2, err := e.blindingPair(b1, b2)
	if err != nil {
		return nil, err
	}
	return e.crv.SubScalars(s1, s2).Bytes(), nil
}

func (e *Engine) blindingPair(b1, b2 []byte) (curve.Scalar, curve.Scalar, error) {
	if len(b1) != e.crv.ScalarSize() || len(b2) != e.crv.ScalarSize() {
		return nil, nil, fmt.Errorf("%w: expected %d bytes", ErrInvalidBlindingLength, e.crv.ScalarSize())
	}

	s1, err := e.blindingScalar(b1)
	if err != nil {
		return nil, nil, err
	}
	s2, err := e.blindingScalar(b2)
	if err != nil {
		return nil, nil, err
	}
	return s1, s2, nil
}

// VerifyBalance checks that the inputs and outputs of a transfer commit
// to the same total: sum(inputs) == sum(outputs) as points. This proves
// conservation of value without revealing any amount.
func (e *Engine) VerifyBalance(inputs, outputs []*Commitment) bool {
	if len(inputs) == 0 || len(outputs) == 0 {
		return false
	}

	inputSum := inputs[0]
	for _, c := range inputs[1:] {
		inputSum = e.Add(inputSum, c)
	}

	outputSum := outputs[0]
	for _, c := range outputs[1:] {
		outputSum = e.Add(outputSum, c)
	}

	return inputSum.Equal(outputSum)
}
