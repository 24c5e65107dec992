package stealth

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/sip-protocol/sip-go/pkg/chains"
	"github.com/sip-protocol/sip-go/pkg/crypto/curve"
)

// Meta-address text format: sip:<chain>:<spendingKeyHex>:<viewingKeyHex>
// with 0x-prefixed hex keys whose length matches the chain's curve.
const metaAddressScheme = "sip"

var (
	// ErrMalformedMetaAddress indicates a string that is not a
	// colon-delimited sip: meta-address.
	ErrMalformedMetaAddress = errors.New("malformed meta-address")

	// ErrKeySizeMismatch indicates a key whose length does not match the
	// curve implied by the chain identifier.
	ErrKeySizeMismatch = errors.New("key size mismatch")
)

// EncodeMetaAddress renders a meta-address in the canonical text form,
// sip:<chain>:<spendingKeyHex>:<viewingKeyHex>.
func EncodeMetaAddress(meta *MetaAddress) string {
	return fmt.Sprintf("%s:%s:0x%x:0x%x", metaAddressScheme, meta.Chain, meta.SpendingPubKey, meta.ViewingPubKey)
}

// DecodeMetaAddress parses and validates the canonical text form.
//
// The chain identifier must be in the registry, both keys must decode as
// hex, match the serialized point length of the chain's curve, and be
// valid non-identity points on it.
func DecodeMetaAddress(encoded string) (*MetaAddress, error) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 4 || parts[0] != metaAddressScheme {
		return nil, fmt.Errorf("%w: expected sip:<chain>:<spendingKey>:<viewingKey>", ErrMalformedMetaAddress)
	}

	chain := parts[1]
	if chain == "" {
		return nil, fmt.Errorf("%w: empty chain identifier", ErrMalformedMetaAddress)
	}

	curveName, err := chains.CurveFor(chain)
	if err != nil {
		return nil, err
	}
	crv, err := curve.FromName(curveName)
	if err != nil {
		return nil, err
	}

	spendingPub, err := decodeKey(crv, "spending key", parts[2])
	if err != nil {
		return nil, err
	}
	viewingPub, err := decodeKey(crv, "viewing key", parts[3])
	if err != nil {
		return nil, err
	}

	return &MetaAddress{
		SpendingPubKey: spendingPub,
		ViewingPubKey:  viewingPub,
		Chain:          chain,
	}, nil
}

// decodeKey decodes one 0x-prefixed hex key and validates it against crv.
func decodeKey(crv curve.Curve, field, keyHex string) ([]byte, error) {
	raw := strings.TrimPrefix(keyHex, "0x")
	if raw == "" {
		return nil, fmt.Errorf("%w: empty %s", ErrMalformedMetaAddress, field)
	}

	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not hex: %v", ErrMalformedMetaAddress, field, err)
	}

	if len(key) != crv.PointSize() {
		return nil, fmt.Errorf("%w: %s is %d bytes, %s expects %d",
			ErrKeySizeMismatch, field, len(key), crv.Name(), crv.PointSize())
	}

	point, err := crv.ParsePoint(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	if err := crv.ValidatePoint(point); err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	return key, nil
}
