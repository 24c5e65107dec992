package address

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// aptosSchemeEd25519 is the Aptos single-key Ed25519 authentication
// scheme identifier, appended to the key before hashing.
const aptosSchemeEd25519 = 0x00

// Aptos encodes a 32-byte ed25519 public key as an Aptos account
// address: SHA3-256(point || schemeByte), 0x-prefixed hex.
func Aptos(pubKey []byte) (string, error) {
	if err := checkLen("aptos", pubKey, ed25519PointLen); err != nil {
		return "", err
	}

	preimage := make([]byte, 0, ed25519PointLen+1)
	preimage = append(preimage, pubKey...)
	preimage = append(preimage, aptosSchemeEd25519)

	hash := sha3.Sum256(preimage)
	return "0x" + hex.EncodeToString(hash[:]), nil
}
