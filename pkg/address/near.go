package address

import "encoding/hex"

// NEAR encodes a 32-byte ed25519 public key as a NEAR implicit account:
// the raw point, lower-case hex, 64 characters.
func NEAR(pubKey []byte) (string, error) {
	if err := checkLen("near", pubKey, ed25519PointLen); err != nil {
		return "", err
	}

	return hex.EncodeToString(pubKey), nil
}
