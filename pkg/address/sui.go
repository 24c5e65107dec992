package address

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// suiFlagEd25519 is the Sui Ed25519 signature scheme flag, prepended to
// the key before hashing.
const suiFlagEd25519 = 0x00

// Sui encodes a 32-byte ed25519 public key as a Sui address:
// BLAKE2b-256(flagByte || point), 0x-prefixed hex.
func Sui(pubKey []byte) (string, error) {
	if err := checkLen("sui", pubKey, ed25519PointLen); err != nil {
		return "", err
	}

	preimage := make([]byte, 0, ed25519PointLen+1)
	preimage = append(preimage, suiFlagEd25519)
	preimage = append(preimage, pubKey...)

	hash := blake2b.Sum256(preimage)
	return "0x" + hex.EncodeToString(hash[:]), nil
}
