package curve

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"math/big"
	"testing"
)

func TestEd25519Curve(t *testing.T) {
	curve := NewEd25519()

	t.Run("Name", func(t *testing.T) {
		if curve.Name() != "ed25519" {
			t.Errorf("expected curve name 'ed25519', got %s", curve.Name())
		}
	})

	t.Run("Sizes", func(t *testing.T) {
		if curve.PointSize() != 32 {
			t.Errorf("expected point size 32, got %d", curve.PointSize())
		}
		if curve.ScalarSize() != 32 {
			t.Errorf("expected scalar size 32, got %d", curve.ScalarSize())
		}
	})

	t.Run("GenerateScalar", func(t *testing.T) {
		s1, err := curve.GenerateScalar(rand.Reader)
		if err != nil {
			t.Fatalf("failed to generate scalar: %v", err)
		}

		s2, err := curve.GenerateScalar(rand.Reader)
		if err != nil {
			t.Fatalf("failed to generate second scalar: %v", err)
		}

		if bytes.Equal(s1.Bytes(), s2.Bytes()) {
			t.Error("generated scalars should be different")
		}

		if s1.BigInt().Sign() <= 0 {
			t.Error("scalar should be positive")
		}

		if s1.BigInt().Cmp(curve.Order()) >= 0 {
			t.Error("scalar should be less than group order")
		}
	})

	t.Run("ScalarBaseMult", func(t *testing.T) {
		scalar, err := curve.GenerateScalar(rand.Reader)
		if err != nil {
			t.Fatalf("failed to generate scalar: %v", err)
		}

		point := curve.ScalarBaseMult(scalar)
		if point == nil {
			t.Fatal("ScalarBaseMult returned nil")
		}

		if point.IsIdentity() {
			t.Error("point should not be identity")
		}

		if err := curve.ValidatePoint(point); err != nil {
			t.Errorf("invalid point: %v", err)
		}
	})

	t.Run("ParsePoint", func(t *testing.T) {
		scalar, _ := curve.GenerateScalar(rand.Reader)
		originalPoint := curve.ScalarBaseMult(scalar)
		pointBytes := originalPoint.Bytes()

		if len(pointBytes) != curve.PointSize() {
			t.Fatalf("expected %d-byte encoding, got %d", curve.PointSize(), len(pointBytes))
		}

		parsedPoint, err := curve.ParsePoint(pointBytes)
		if err != nil {
			t.Fatalf("failed to parse point: %v", err)
		}

		if !originalPoint.Equal(parsedPoint) {
			t.Error("parsed point should equal original")
		}
	})

	t.Run("ParsePointRejectsGarbage", func(t *testing.T) {
		garbage := bytes.Repeat([]byte{0xff}, curve.PointSize())
		if _, err := curve.ParsePoint(garbage); err == nil {
			t.Error("expected error for non-canonical encoding")
		}

		if _, err := curve.ParsePoint([]byte{0x01, 0x02}); err == nil {
			t.Error("expected error for short input")
		}
	})

	t.Run("IdentityRoundTrip", func(t *testing.T) {
		zero := make([]byte, curve.PointSize())

		identity, err := curve.ParsePoint(zero)
		if err != nil {
			t.Fatalf("failed to parse identity encoding: %v", err)
		}

		if !identity.IsIdentity() {
			t.Error("all-zero encoding should parse to identity")
		}

		if !bytes.Equal(identity.Bytes(), zero) {
			t.Error("identity should serialize to all-zero bytes")
		}

		if err := curve.ValidatePoint(identity); !errors.Is(err, ErrIdentityPoint) {
			t.Errorf("ValidatePoint should reject identity, got %v", err)
		}
	})

	t.Run("ScalarMult", func(t *testing.T) {
		scalar1, _ := curve.GenerateScalar(rand.Reader)
		scalar2, _ := curve.GenerateScalar(rand.Reader)

		point := curve.ScalarBaseMult(scalar1)
		result := curve.ScalarMult(point, scalar2)

		if result == nil {
			t.Fatal("ScalarMult returned nil")
		}

		other := curve.ScalarMult(curve.ScalarBaseMult(scalar2), scalar1)
		if !result.Equal(other) {
			t.Error("scalar multiplication should commute")
		}
	})

	t.Run("Add", func(t *testing.T) {
		a, _ := curve.GenerateScalar(rand.Reader)
		b, _ := curve.GenerateScalar(rand.Reader)

		pa := curve.ScalarBaseMult(a)
		pb := curve.ScalarBaseMult(b)

		sum := curve.Add(pa, pb)
		direct := curve.ScalarBaseMult(curve.AddScalars(a, b))
		if !sum.Equal(direct) {
			t.Error("point addition should match scalar addition")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		s, _ := curve.GenerateScalar(rand.Reader)
		p := curve.ScalarBaseMult(s)

		sum := curve.Add(p, curve.Negate(p))
		if !sum.IsIdentity() {
			t.Error("P + (-P) should be the identity")
		}

		if !bytes.Equal(sum.Bytes(), make([]byte, curve.PointSize())) {
			t.Error("P + (-P) should serialize to all-zero bytes")
		}
	})

	t.Run("SubScalars", func(t *testing.T) {
		a, _ := curve.GenerateScalar(rand.Reader)
		b, _ := curve.GenerateScalar(rand.Reader)

		diff := curve.SubScalars(a, b)
		back := curve.AddScalars(diff, b)

		if back.BigInt().Cmp(a.BigInt()) != 0 {
			t.Error("(a-b)+b should equal a")
		}
	})

	t.Run("ScalarFromHash", func(t *testing.T) {
		digest := sha256.Sum256([]byte("shared secret"))

		s1 := curve.ScalarFromHash(digest[:])
		s2 := curve.ScalarFromHash(digest[:])

		if !bytes.Equal(s1.Bytes(), s2.Bytes()) {
			t.Error("hash reduction should be deterministic")
		}

		if s1.BigInt().Cmp(curve.Order()) >= 0 {
			t.Error("reduced scalar should be below the order")
		}
	})

	t.Run("ScalarRoundTrip", func(t *testing.T) {
		s, _ := curve.GenerateScalar(rand.Reader)

		parsed, err := curve.ParseScalar(s.Bytes())
		if err != nil {
			t.Fatalf("failed to parse scalar: %v", err)
		}

		if parsed.BigInt().Cmp(s.BigInt()) != 0 {
			t.Error("parsed scalar should equal original")
		}
	})

	t.Run("ParseScalarBounds", func(t *testing.T) {
		zero := make([]byte, curve.ScalarSize())
		if _, err := curve.ParseScalar(zero); err == nil {
			t.Error("expected error for zero scalar")
		}

		// The group order is not a canonical scalar encoding.
		nonCanonical := bytes.Repeat([]byte{0xff}, curve.ScalarSize())
		if _, err := curve.ParseScalar(nonCanonical); err == nil {
			t.Error("expected error for non-canonical scalar")
		}
	})

	t.Run("NewScalarFromBig", func(t *testing.T) {
		zero, err := curve.NewScalarFromBig(big.NewInt(0))
		if err != nil {
			t.Fatalf("zero should be permitted: %v", err)
		}
		if zero.BigInt().Sign() != 0 {
			t.Error("expected zero scalar")
		}

		// Round-trip an arbitrary small value through the little-endian
		// encoding.
		small, err := curve.NewScalarFromBig(big.NewInt(8))
		if err != nil {
			t.Fatalf("failed to build scalar: %v", err)
		}
		if small.BigInt().Int64() != 8 {
			t.Errorf("expected 8, got %v", small.BigInt())
		}

		if _, err := curve.NewScalarFromBig(curve.Order()); err == nil {
			t.Error("expected error for value equal to the order")
		}
	})
}
