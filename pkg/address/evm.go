package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// EVM encodes a compressed secp256k1 public key as an Ethereum-family
// address: keccak256 of the uncompressed point body, last 20 bytes,
// EIP-55 checksummed hex.
func EVM(pubKey []byte) (string, error) {
	if err := checkLen("evm", pubKey, compressedPointLen); err != nil {
		return "", err
	}

	pk, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return "", fmt.Errorf("invalid public key: %w", err)
	}

	// Drop the 0x04 prefix; the address commits to the raw coordinates.
	uncompressed := pk.SerializeUncompressed()
	hash := crypto.Keccak256(uncompressed[1:])

	return common.BytesToAddress(hash[12:]).Hex(), nil
}
