package address

import "github.com/btcsuite/btcd/btcutil/base58"

// Solana encodes a 32-byte ed25519 public key as a Solana address: the
// raw point, base58-encoded, no hashing.
func Solana(pubKey []byte) (string, error) {
	if err := checkLen("solana", pubKey, ed25519PointLen); err != nil {
		return "", err
	}

	return base58.Encode(pubKey), nil
}
