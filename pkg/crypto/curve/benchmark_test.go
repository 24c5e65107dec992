package curve

import (
	"crypto/rand"
	"testing"
)

func BenchmarkSecp256k1_GenerateScalar(b *testing.B) {
	curve := NewSecp256k1()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := curve.GenerateScalar(rand.Reader)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSecp256k1_ScalarBaseMult(b *testing.B) {
	curve := NewSecp256k1()
	scalar, _ := curve.GenerateScalar(rand.Reader)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		point := curve.ScalarBaseMult(scalar)
		if point == nil {
			b.Fatal("point should not be nil")
		}
	}
}

func BenchmarkSecp256k1_ScalarMult(b *testing.B) {
	curve := NewSecp256k1()
	scalar1, _ := curve.GenerateScalar(rand.Reader)
	scalar2, _ := curve.GenerateScalar(rand.Reader)
	point := curve.ScalarBaseMult(scalar1)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := curve.ScalarMult(point, scalar2)
		if result == nil {
			b.Fatal("result should not be nil")
		}
	}
}

func BenchmarkSecp256k1_Add(b *testing.B) {
	curve := NewSecp256k1()
	s1, _ := curve.GenerateScalar(rand.Reader)
	s2, _ := curve.GenerateScalar(rand.Reader)
	p1 := curve.ScalarBaseMult(s1)
	p2 := curve.ScalarBaseMult(s2)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := curve.Add(p1, p2)
		if result == nil {
			b.Fatal("result should not be nil")
		}
	}
}

func BenchmarkEd25519_GenerateScalar(b *testing.B) {
	curve := NewEd25519()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, err := curve.GenerateScalar(rand.Reader)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEd25519_ScalarBaseMult(b *testing.B) {
	curve := NewEd25519()
	scalar, _ := curve.GenerateScalar(rand.Reader)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		point := curve.ScalarBaseMult(scalar)
		if point == nil {
			b.Fatal("point should not be nil")
		}
	}
}

func BenchmarkEd25519_ScalarMult(b *testing.B) {
	curve := NewEd25519()
	scalar1, _ := curve.GenerateScalar(rand.Reader)
	scalar2, _ := curve.GenerateScalar(rand.Reader)
	point := curve.ScalarBaseMult(scalar1)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := curve.ScalarMult(point, scalar2)
		if result == nil {
			b.Fatal("result should not be nil")
		}
	}
}

func BenchmarkEd25519_Add(b *testing.B) {
	curve := NewEd25519()
	s1, _ := curve.GenerateScalar(rand.Reader)
	s2, _ := curve.GenerateScalar(rand.Reader)
	p1 := curve.ScalarBaseMult(s1)
	p2 := curve.ScalarBaseMult(s2)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		result := curve.Add(p1, p2)
		if result == nil {
			b.Fatal("result should not be nil")
		}
	}
}
