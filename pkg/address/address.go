// Package address maps serialized public-key points to chain-native
// address strings.
//
// Every encoder is a pure, total function over a valid serialized point of
// the right curve: same point in, same address out, nothing retained and
// nothing logged. Length validation happens before any hashing so a
// wrong-curve key fails loudly instead of producing a plausible-looking
// address on the wrong chain.
package address

import (
	"errors"
	"fmt"

	"github.com/sip-protocol/sip-go/pkg/chains"
)

// ErrInvalidKeyLength indicates a public key whose length does not match
// the serialized point size expected by the chain family.
var ErrInvalidKeyLength = errors.New("invalid key length")

const (
	compressedPointLen = 33
	ed25519PointLen    = 32
)

// ForChain encodes a serialized public key as the chain's native address
// string, dispatching on the chain registry.
func ForChain(chainID string, pubKey []byte) (string, error) {
	chars, err := chains.Lookup(chainID)
	if err != nil {
		return "", err
	}

	switch chars.Family {
	case chains.FamilyEVM:
		return EVM(pubKey)
	case chains.FamilySolana:
		return Solana(pubKey)
	case chains.FamilyNear:
		return NEAR(pubKey)
	case chains.FamilyCosmos:
		return Cosmos(chars.Bech32HRP, pubKey)
	case chains.FamilyAptos:
		return Aptos(pubKey)
	case chains.FamilySui:
		return Sui(pubKey)
	default:
		return "", fmt.Errorf("no address codec for chain family %s", chars.Family)
	}
}

// checkLen validates a key length for a chain family.
func checkLen(family string, pubKey []byte, want int) error {
	if len(pubKey) != want {
		return fmt.Errorf("%w: %s expects %d-byte keys, got %d", ErrInvalidKeyLength, family, want, len(pubKey))
	}
	return nil
}
