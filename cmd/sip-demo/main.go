// Command sip-demo walks through the full stealth payment lifecycle on a
// single chain: meta-address generation, one-time address derivation,
// recipient-side scanning, spending key recovery, amount commitments and
// the chain-native address encoding.
package main

import (
	"bytes"
	"crypto/rand"
	"flag"
	"fmt"
	"log"

	"github.com/sip-protocol/sip-go/pkg/address"
	"github.com/sip-protocol/sip-go/pkg/chains"
	"github.com/sip-protocol/sip-go/pkg/commitment"
	"github.com/sip-protocol/sip-go/pkg/crypto/curve"
	"github.com/sip-protocol/sip-go/pkg/privacy"
	"github.com/sip-protocol/sip-go/pkg/stealth"
)

func main() {
	var (
		chainID = flag.String("chain", "ethereum", "Target chain (ethereum|solana|near|cosmos|aptos|sui|...)")
		amount  = flag.Uint64("amount", 1_000_000, "Amount to commit to")
	)
	flag.Parse()

	log.Println("SIP Stealth Address Demo")
	log.Println("========================")
	log.Printf("Chain: %s", *chainID)
	log.Println()

	curveName, err := chains.CurveFor(*chainID)
	if err != nil {
		log.Fatalf("Unsupported chain %q: %v", *chainID, err)
	}
	crv, err := curve.FromName(curveName)
	if err != nil {
		log.Fatalf("Unsupported curve %q: %v", curveName, err)
	}
	log.Printf("Curve: %s", crv.Name())

	// Recipient: publish a reusable meta-address.
	meta, spendPriv, viewPriv, err := stealth.GenerateMetaAddress(crv, rand.Reader, *chainID, "demo")
	if err != nil {
		log.Fatalf("Failed to generate meta-address: %v", err)
	}
	encoded := stealth.EncodeMetaAddress(meta)
	log.Println()
	log.Println("1. Recipient publishes a meta-address:")
	log.Printf("   %s", encoded)

	// Sender: derive a fresh one-time address from the published form.
	decoded, err := stealth.DecodeMetaAddress(encoded)
	if err != nil {
		log.Fatalf("Failed to decode meta-address: %v", err)
	}
	payment, _, err := stealth.GenerateAddress(crv, rand.Reader, decoded)
	if err != nil {
		log.Fatalf("Failed to generate stealth address: %v", err)
	}
	log.Println()
	log.Println("2. Sender derives a one-time stealth address:")
	log.Printf("   stealth key:   0x%x", payment.StealthPubKey)
	log.Printf("   ephemeral key: 0x%x", payment.EphemeralPubKey)
	log.Printf("   view tag:      0x%02x", payment.ViewTag)

	chainAddr, err := address.ForChain(*chainID, payment.StealthPubKey)
	if err != nil {
		log.Fatalf("Failed to encode chain address: %v", err)
	}
	log.Printf("   %s address: %s", *chainID, chainAddr)

	// Recipient: scan the announcement.
	ok, err := stealth.Check(crv, payment, spendPriv, viewPriv)
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}
	log.Println()
	log.Printf("3. Recipient scans the announcement: match=%v", ok)
	if !ok {
		log.Fatal("Expected the recipient to detect the payment")
	}

	// Recipient: recover the one-time spending key.
	rec, err := stealth.DerivePrivateKey(crv, payment, spendPriv, viewPriv)
	if err != nil {
		log.Fatalf("Recovery failed: %v", err)
	}
	controlled := crv.ScalarBaseMult(rec.PrivateKey)
	log.Println()
	log.Println("4. Recipient recovers the one-time spending key:")
	log.Printf("   controls stealth address: %v", bytes.Equal(controlled.Bytes(), payment.StealthPubKey))

	// Commit to the amount.
	eng, err := commitment.New(crv)
	if err != nil {
		log.Fatalf("Failed to build commitment engine: %v", err)
	}
	c, blinding, err := eng.Commit(rand.Reader, *amount)
	if err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}
	opens, err := eng.VerifyOpening(c, *amount, blinding)
	if err != nil {
		log.Fatalf("Failed to verify opening: %v", err)
	}
	log.Println()
	log.Printf("5. Amount committed (Pedersen): 0x%x", c.Bytes())
	log.Printf("   opens to %d: %v", *amount, opens)

	// Subtracting the commitment from itself proves balance.
	zero := eng.Subtract(c, c)
	log.Printf("   C - C is zero commitment: %v", zero.IsZero())

	// Selective disclosure for an auditor.
	vk, err := privacy.GenerateViewingKey(rand.Reader, "auditor")
	if err != nil {
		log.Fatalf("Failed to generate viewing key: %v", err)
	}
	memo := fmt.Sprintf(`{"intent":"%s","amount":%d}`, privacy.NewIntentID(), *amount)
	sealed, err := privacy.Encrypt(rand.Reader, vk.Key, []byte(memo))
	if err != nil {
		log.Fatalf("Failed to encrypt memo: %v", err)
	}
	opened, err := privacy.Decrypt(vk.Key, sealed)
	if err != nil {
		log.Fatalf("Failed to decrypt memo: %v", err)
	}
	log.Println()
	log.Println("6. Auditor memo sealed under a viewing key:")
	log.Printf("   key hash: 0x%x", vk.KeyHash)
	log.Printf("   decrypts to: %s", opened)

	log.Println()
	log.Println("Demo complete.")
}
