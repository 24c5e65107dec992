// Package stealth implements the dual-key stealth address protocol over
// the curve abstraction.
//
// # Protocol Overview
//
// A recipient publishes a reusable meta-address holding two public keys:
// a spending key and a viewing key. For every payment the sender:
//
//  1. Draws a fresh ephemeral keypair (r, R = r*G).
//  2. Computes the shared secret point S = r * ViewingPub (ECDH).
//  3. Hashes the serialized S; the first digest byte becomes the view
//     tag, and the digest reduced mod q becomes the tweak t.
//  4. Publishes R, the view tag, and the one-time stealth public key
//     P = SpendingPub + t*G.
//
// The recipient scans announcements by recomputing S = viewPriv * R. The
// single-byte view tag comparison rejects 255/256 of foreign
// announcements before any second point operation. On a full match the
// one-time spending key is (spendPriv + t) mod q, which no observer can
// link to the meta-address without the viewing private key.
//
// Both halves of the protocol are pure functions of their inputs: the
// package holds no state, performs no I/O, and never retains a secret
// beyond the call that produced it.
package stealth

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/sip-protocol/sip-go/pkg/chains"
	"github.com/sip-protocol/sip-go/pkg/crypto/curve"
)

var (
	// ErrCurveMismatch indicates a meta-address or candidate whose chain
	// implies a different curve than the caller supplied.
	ErrCurveMismatch = errors.New("curve mismatch")
)

// GenerateKeyPair draws a random keypair on the given curve.
func GenerateKeyPair(crv curve.Curve, rand io.Reader) (*KeyPair, error) {
	priv, err := crv.GenerateScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}

	return &KeyPair{
		PrivateKey: priv,
		PublicKey:  crv.ScalarBaseMult(priv).Bytes(),
	}, nil
}

// checkChainCurve verifies that chain's addresses live on crv.
func checkChainCurve(crv curve.Curve, chain string) error {
	curveName, err := chains.CurveFor(chain)
	if err != nil {
		return err
	}
	if curveName != crv.Name() {
		return fmt.Errorf("%w: chain %s uses %s, got %s", ErrCurveMismatch, chain, curveName, crv.Name())
	}
	return nil
}

// GenerateMetaAddress creates a new recipient identity for a chain.
//
// Returns the public meta-address together with the spending and viewing
// private scalars. The two keypairs are drawn independently; neither
// scalar is ever derived from the other, so the viewing key can be handed
// to a watch-only scanner without exposing funds.
func GenerateMetaAddress(crv curve.Curve, rand io.Reader, chain, label string) (*MetaAddress, curve.Scalar, curve.Scalar, error) {
	if err := checkChainCurve(crv, chain); err != nil {
		return nil, nil, nil, err
	}

	spending, err := GenerateKeyPair(crv, rand)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to generate spending key: %w", err)
	}

	viewing, err := GenerateKeyPair(crv, rand)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to generate viewing key: %w", err)
	}

	meta := &MetaAddress{
		SpendingPubKey: spending.PublicKey,
		ViewingPubKey:  viewing.PublicKey,
		Chain:          chain,
		Label:          label,
	}

	return meta, spending.PrivateKey, viewing.PrivateKey, nil
}

// sharedSecretDigest computes SHA-256 over the serialized ECDH point
// priv * pub. The digest exists only for the duration of the enclosing
// call; callers must not retain it beyond deriving the tag and tweak.
func sharedSecretDigest(crv curve.Curve, priv curve.Scalar, pub []byte) ([32]byte, error) {
	var digest [32]byte

	point, err := crv.ParsePoint(pub)
	if err != nil {
		return digest, err
	}
	if err := crv.ValidatePoint(point); err != nil {
		return digest, err
	}

	shared := crv.ScalarMult(point, priv)
	if shared == nil || shared.IsIdentity() {
		return digest, fmt.Errorf("%w: shared secret is identity", curve.ErrInvalidPoint)
	}

	return sha256.Sum256(shared.Bytes()), nil
}

// GenerateAddress creates a one-time stealth address for a recipient.
//
// The returned 32-byte shared-secret digest lets the sender derive
// auxiliary material (for example an encryption key for a payment memo);
// it must be discarded once consumed. The ephemeral private key never
// leaves this function.
func GenerateAddress(crv curve.Curve, rand io.Reader, meta *MetaAddress) (*Address, []byte, error) {
	if err := checkChainCurve(crv, meta.Chain); err != nil {
		return nil, nil, err
	}

	spendingPub, err := crv.ParsePoint(meta.SpendingPubKey)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid spending public key: %w", err)
	}
	if err := crv.ValidatePoint(spendingPub); err != nil {
		return nil, nil, fmt.Errorf("invalid spending public key: %w", err)
	}

	ephemeral, err := GenerateKeyPair(crv, rand)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate ephemeral key: %w", err)
	}

	digest, err := sharedSecretDigest(crv, ephemeral.PrivateKey, meta.ViewingPubKey)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid viewing public key: %w", err)
	}

	tweak := crv.ScalarFromHash(digest[:])
	stealthPub := crv.Add(spendingPub, crv.ScalarBaseMult(tweak))

	addr := &Address{
		StealthPubKey:   stealthPub.Bytes(),
		EphemeralPubKey: ephemeral.PublicKey,
		ViewTag:         digest[0],
		Chain:           meta.Chain,
	}

	return addr, digest[:], nil
}

// Check reports whether a candidate announcement belongs to the holder of
// the given spending and viewing private keys.
//
// The view tag is compared before any second point operation: a scanning
// recipient runs this against every observed announcement, and the
// single-byte compare skips the expensive derivation for the vast
// majority that are not theirs. A tag match alone is a 1/256 filter, not
// proof; the full stealth key comparison decides.
//
// A false result is the expected majority outcome of scanning, not an
// error. Errors indicate malformed candidate data.
func Check(crv curve.Curve, candidate *Address, spendPriv, viewPriv curve.Scalar) (bool, error) {
	digest, err := sharedSecretDigest(crv, viewPriv, candidate.EphemeralPubKey)
	if err != nil {
		return false, fmt.Errorf("invalid ephemeral public key: %w", err)
	}

	if digest[0] != candidate.ViewTag {
		return false, nil
	}

	tweak := crv.ScalarFromHash(digest[:])
	expected := crv.ScalarBaseMult(crv.AddScalars(spendPriv, tweak))

	provided, err := crv.ParsePoint(candidate.StealthPubKey)
	if err != nil {
		return false, fmt.Errorf("invalid stealth public key: %w", err)
	}

	return expected.Equal(provided), nil
}

// DerivePrivateKey computes the one-time spending key for a candidate:
// (spendPriv + tweak) mod q.
//
// It deliberately does not re-verify the candidate, so bulk-scan
// pipelines that already called Check pay no redundant curve operations.
// Called on a non-matching candidate it returns a scalar unrelated to the
// candidate's stealth key; guard call sites with Check.
func DerivePrivateKey(crv curve.Curve, candidate *Address, spendPriv, viewPriv curve.Scalar) (*Recovery, error) {
	digest, err := sharedSecretDigest(crv, viewPriv, candidate.EphemeralPubKey)
	if err != nil {
		return nil, fmt.Errorf("invalid ephemeral public key: %w", err)
	}

	tweak := crv.ScalarFromHash(digest[:])

	return &Recovery{
		StealthPubKey:   candidate.StealthPubKey,
		EphemeralPubKey: candidate.EphemeralPubKey,
		PrivateKey:      crv.AddScalars(spendPriv, tweak),
	}, nil
}
