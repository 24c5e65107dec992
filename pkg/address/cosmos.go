package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Cosmos encodes a compressed secp256k1 public key as a Cosmos-family
// bech32 address: RIPEMD160(SHA256(compressed point)) under the chain's
// human-readable prefix (e.g. "cosmos", "osmo", "inj").
func Cosmos(hrp string, pubKey []byte) (string, error) {
	if err := checkLen("cosmos", pubKey, compressedPointLen); err != nil {
		return "", err
	}
	if hrp == "" {
		return "", fmt.Errorf("empty bech32 prefix")
	}

	hash160 := btcutil.Hash160(pubKey)

	converted, err := bech32.ConvertBits(hash160, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("bech32 conversion failed: %w", err)
	}

	encoded, err := bech32.Encode(hrp, converted)
	if err != nil {
		return "", fmt.Errorf("bech32 encoding failed: %w", err)
	}

	return encoded, nil
}
