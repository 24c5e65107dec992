package stealth

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/sip-protocol/sip-go/pkg/crypto/curve"
)

// chainFor maps each supported curve to a chain that uses it.
func chainFor(t *testing.T, curveName string) string {
	t.Helper()
	switch curveName {
	case "secp256k1":
		return "ethereum"
	case "ed25519":
		return "solana"
	}
	t.Fatalf("no chain for curve %s", curveName)
	return ""
}

func TestGenerateMetaAddress(t *testing.T) {
	for _, curveName := range curve.SupportedCurves() {
		t.Run(curveName, func(t *testing.T) {
			crv, err := curve.FromName(curveName)
			if err != nil {
				t.Fatal(err)
			}
			chain := chainFor(t, curveName)

			meta, spendPriv, viewPriv, err := GenerateMetaAddress(crv, rand.Reader, chain, "savings")
			if err != nil {
				t.Fatalf("failed to generate meta-address: %v", err)
			}

			if meta.Chain != chain {
				t.Errorf("expected chain %s, got %s", chain, meta.Chain)
			}
			if meta.Label != "savings" {
				t.Errorf("expected label 'savings', got %s", meta.Label)
			}

			if len(meta.SpendingPubKey) != crv.PointSize() {
				t.Errorf("spending key should be %d bytes, got %d", crv.PointSize(), len(meta.SpendingPubKey))
			}
			if len(meta.ViewingPubKey) != crv.PointSize() {
				t.Errorf("viewing key should be %d bytes, got %d", crv.PointSize(), len(meta.ViewingPubKey))
			}

			if bytes.Equal(meta.SpendingPubKey, meta.ViewingPubKey) {
				t.Error("spending and viewing keys should be independent")
			}

			// Private scalars must correspond to the published keys.
			if !bytes.Equal(crv.ScalarBaseMult(spendPriv).Bytes(), meta.SpendingPubKey) {
				t.Error("spending private key does not match public key")
			}
			if !bytes.Equal(crv.ScalarBaseMult(viewPriv).Bytes(), meta.ViewingPubKey) {
				t.Error("viewing private key does not match public key")
			}
		})
	}
}

func TestGenerateMetaAddressCurveMismatch(t *testing.T) {
	secp, _ := curve.FromName("secp256k1")

	// solana addresses live on ed25519
	_, _, _, err := GenerateMetaAddress(secp, rand.Reader, "solana", "")
	if !errors.Is(err, ErrCurveMismatch) {
		t.Errorf("expected ErrCurveMismatch, got %v", err)
	}
}

func TestStealthRoundTrip(t *testing.T) {
	for _, curveName := range curve.SupportedCurves() {
		t.Run(curveName, func(t *testing.T) {
			crv, _ := curve.FromName(curveName)
			chain := chainFor(t, curveName)

			meta, spendPriv, viewPriv, err := GenerateMetaAddress(crv, rand.Reader, chain, "")
			if err != nil {
				t.Fatal(err)
			}

			for i := 0; i < 500; i++ {
				addr, secret, err := GenerateAddress(crv, rand.Reader, meta)
				if err != nil {
					t.Fatalf("iteration %d: failed to generate address: %v", i, err)
				}

				if len(secret) != 32 {
					t.Fatalf("iteration %d: expected 32-byte shared secret digest, got %d", i, len(secret))
				}
				if addr.ViewTag != secret[0] {
					t.Fatalf("iteration %d: view tag should be the first digest byte", i)
				}

				// The recipient detects the payment.
				ok, err := Check(crv, addr, spendPriv, viewPriv)
				if err != nil {
					t.Fatalf("iteration %d: check failed: %v", i, err)
				}
				if !ok {
					t.Fatalf("iteration %d: recipient should detect own payment", i)
				}

				// The recovered key controls the stealth address.
				rec, err := DerivePrivateKey(crv, addr, spendPriv, viewPriv)
				if err != nil {
					t.Fatalf("iteration %d: recovery failed: %v", i, err)
				}
				derived := crv.ScalarBaseMult(rec.PrivateKey)
				if !bytes.Equal(derived.Bytes(), addr.StealthPubKey) {
					t.Fatalf("iteration %d: recovered key does not control stealth address", i)
				}
			}
		})
	}
}

func TestCheckRejectsForeignPayment(t *testing.T) {
	for _, curveName := range curve.SupportedCurves() {
		t.Run(curveName, func(t *testing.T) {
			crv, _ := curve.FromName(curveName)
			chain := chainFor(t, curveName)

			// A payment for recipient A, scanned by recipient B.
			metaA, _, _, err := GenerateMetaAddress(crv, rand.Reader, chain, "")
			if err != nil {
				t.Fatal(err)
			}
			_, spendB, viewB, err := GenerateMetaAddress(crv, rand.Reader, chain, "")
			if err != nil {
				t.Fatal(err)
			}

			// A single scan can false-positive on the 1/256 view tag, so
			// require rejection across a batch.
			for i := 0; i < 32; i++ {
				addr, _, err := GenerateAddress(crv, rand.Reader, metaA)
				if err != nil {
					t.Fatal(err)
				}

				ok, err := Check(crv, addr, spendB, viewB)
				if err != nil {
					t.Fatalf("check failed: %v", err)
				}
				if ok {
					t.Fatal("recipient should not detect a foreign payment")
				}
			}
		})
	}
}

func TestCheckWrongViewingKey(t *testing.T) {
	crv, _ := curve.FromName("secp256k1")

	meta, spendPriv, _, err := GenerateMetaAddress(crv, rand.Reader, "ethereum", "")
	if err != nil {
		t.Fatal(err)
	}

	wrongView, err := crv.GenerateScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 32; i++ {
		addr, _, err := GenerateAddress(crv, rand.Reader, meta)
		if err != nil {
			t.Fatal(err)
		}

		ok, err := Check(crv, addr, spendPriv, wrongView)
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if ok {
			t.Fatal("wrong viewing key should not detect the payment")
		}
	}
}

func TestAddressUnlinkability(t *testing.T) {
	crv, _ := curve.FromName("secp256k1")

	meta, _, _, err := GenerateMetaAddress(crv, rand.Reader, "ethereum", "")
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		addr, _, err := GenerateAddress(crv, rand.Reader, meta)
		if err != nil {
			t.Fatal(err)
		}

		key := string(addr.StealthPubKey)
		if seen[key] {
			t.Fatal("stealth addresses for the same recipient should be distinct")
		}
		seen[key] = true

		// The stealth key must not leak either published key.
		if bytes.Equal(addr.StealthPubKey, meta.SpendingPubKey) {
			t.Fatal("stealth address should differ from the spending key")
		}
		if bytes.Equal(addr.StealthPubKey, meta.ViewingPubKey) {
			t.Fatal("stealth address should differ from the viewing key")
		}
	}
}

func TestGenerateAddressRejectsBadKeys(t *testing.T) {
	crv, _ := curve.FromName("secp256k1")

	meta, _, _, err := GenerateMetaAddress(crv, rand.Reader, "ethereum", "")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("MalformedSpendingKey", func(t *testing.T) {
		bad := &MetaAddress{
			SpendingPubKey: bytes.Repeat([]byte{0xff}, crv.PointSize()),
			ViewingPubKey:  meta.ViewingPubKey,
			Chain:          meta.Chain,
		}
		if _, _, err := GenerateAddress(crv, rand.Reader, bad); err == nil {
			t.Error("expected error for malformed spending key")
		}
	})

	t.Run("IdentitySpendingKey", func(t *testing.T) {
		bad := &MetaAddress{
			SpendingPubKey: make([]byte, crv.PointSize()),
			ViewingPubKey:  meta.ViewingPubKey,
			Chain:          meta.Chain,
		}
		if _, _, err := GenerateAddress(crv, rand.Reader, bad); !errors.Is(err, curve.ErrIdentityPoint) {
			t.Errorf("expected ErrIdentityPoint, got %v", err)
		}
	})

	t.Run("IdentityViewingKey", func(t *testing.T) {
		bad := &MetaAddress{
			SpendingPubKey: meta.SpendingPubKey,
			ViewingPubKey:  make([]byte, crv.PointSize()),
			Chain:          meta.Chain,
		}
		if _, _, err := GenerateAddress(crv, rand.Reader, bad); !errors.Is(err, curve.ErrIdentityPoint) {
			t.Errorf("expected ErrIdentityPoint, got %v", err)
		}
	})
}

func TestCheckRejectsMalformedCandidate(t *testing.T) {
	crv, _ := curve.FromName("secp256k1")

	meta, spendPriv, viewPriv, err := GenerateMetaAddress(crv, rand.Reader, "ethereum", "")
	if err != nil {
		t.Fatal(err)
	}
	addr, _, err := GenerateAddress(crv, rand.Reader, meta)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("BadEphemeralKey", func(t *testing.T) {
		bad := *addr
		bad.EphemeralPubKey = []byte{0x01, 0x02}
		if _, err := Check(crv, &bad, spendPriv, viewPriv); err == nil {
			t.Error("expected error for malformed ephemeral key")
		}
	})

	t.Run("BadStealthKey", func(t *testing.T) {
		bad := *addr
		bad.StealthPubKey = bytes.Repeat([]byte{0xff}, crv.PointSize())
		if _, err := Check(crv, &bad, spendPriv, viewPriv); err == nil {
			t.Error("expected error for malformed stealth key")
		}
	})
}

func TestGenerateKeyPair(t *testing.T) {
	for _, curveName := range curve.SupportedCurves() {
		t.Run(curveName, func(t *testing.T) {
			crv, _ := curve.FromName(curveName)

			kp, err := GenerateKeyPair(crv, rand.Reader)
			if err != nil {
				t.Fatalf("failed to generate keypair: %v", err)
			}

			point, err := crv.ParsePoint(kp.PublicKey)
			if err != nil {
				t.Fatalf("public key should parse: %v", err)
			}
			if err := crv.ValidatePoint(point); err != nil {
				t.Errorf("public key should validate: %v", err)
			}

			if !bytes.Equal(crv.ScalarBaseMult(kp.PrivateKey).Bytes(), kp.PublicKey) {
				t.Error("private key does not match public key")
			}
		})
	}
}
