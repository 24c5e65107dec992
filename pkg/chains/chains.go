// Package chains holds the static chain registry: which family and curve
// each supported chain uses, plus the per-chain characteristics consumed by
// the fee optimization helpers.
//
// The registry is the single source of truth for the chain-id to curve
// mapping; the stealth and address packages consult it rather than
// inferring a curve from key material.
package chains

import (
	"errors"
	"fmt"
	"strings"
)

// Family represents the blockchain family a chain belongs to.
type Family string

const (
	FamilySolana  Family = "solana"
	FamilyEVM     Family = "evm"
	FamilyNear    Family = "near"
	FamilyBitcoin Family = "bitcoin"
	FamilyCosmos  Family = "cosmos"
	FamilyAptos   Family = "aptos"
	FamilySui     Family = "sui"
)

// ErrUnknownChain is returned when a chain identifier is not in the registry.
var ErrUnknownChain = errors.New("unknown chain")

// Characteristics describes a chain's static properties.
type Characteristics struct {
	Family      Family
	CurveName   string // "secp256k1" or "ed25519"
	Bech32HRP   string // Cosmos-family address prefix, empty elsewhere
	BlockTime   float64
	HasEIP1559  bool
	IsL2        bool
	CostTier    int // 1=cheapest, 5=most expensive
	NativeToken string
}

var registry = map[string]Characteristics{
	"ethereum": {
		Family:      FamilyEVM,
		CurveName:   "secp256k1",
		BlockTime:   12.0,
		HasEIP1559:  true,
		CostTier:    5,
		NativeToken: "ETH",
	},
	"arbitrum": {
		Family:      FamilyEVM,
		CurveName:   "secp256k1",
		BlockTime:   0.25,
		HasEIP1559:  true,
		IsL2:        true,
		CostTier:    2,
		NativeToken: "ETH",
	},
	"optimism": {
		Family:      FamilyEVM,
		CurveName:   "secp256k1",
		BlockTime:   2.0,
		HasEIP1559:  true,
		IsL2:        true,
		CostTier:    2,
		NativeToken: "ETH",
	},
	"base": {
		Family:      FamilyEVM,
		CurveName:   "secp256k1",
		BlockTime:   2.0,
		HasEIP1559:  true,
		IsL2:        true,
		CostTier:    2,
		NativeToken: "ETH",
	},
	"polygon": {
		Family:      FamilyEVM,
		CurveName:   "secp256k1",
		BlockTime:   2.0,
		HasEIP1559:  true,
		IsL2:        true,
		CostTier:    2,
		NativeToken: "MATIC",
	},
	"bsc": {
		Family:      FamilyEVM,
		CurveName:   "secp256k1",
		BlockTime:   3.0,
		CostTier:    1,
		NativeToken: "BNB",
	},
	"solana": {
		Family:      FamilySolana,
		CurveName:   "ed25519",
		BlockTime:   0.4,
		CostTier:    1,
		NativeToken: "SOL",
	},
	"near": {
		Family:      FamilyNear,
		CurveName:   "ed25519",
		BlockTime:   1.0,
		CostTier:    1,
		NativeToken: "NEAR",
	},
	"cosmos": {
		Family:      FamilyCosmos,
		CurveName:   "secp256k1",
		Bech32HRP:   "cosmos",
		BlockTime:   6.0,
		CostTier:    1,
		NativeToken: "ATOM",
	},
	"osmosis": {
		Family:      FamilyCosmos,
		CurveName:   "secp256k1",
		Bech32HRP:   "osmo",
		BlockTime:   6.0,
		CostTier:    1,
		NativeToken: "OSMO",
	},
	"injective": {
		Family:      FamilyCosmos,
		CurveName:   "secp256k1",
		Bech32HRP:   "inj",
		BlockTime:   0.8,
		CostTier:    1,
		NativeToken: "INJ",
	},
	"aptos": {
		Family:      FamilyAptos,
		CurveName:   "ed25519",
		BlockTime:   0.3,
		CostTier:    1,
		NativeToken: "APT",
	},
	"sui": {
		Family:      FamilySui,
		CurveName:   "ed25519",
		BlockTime:   0.5,
		CostTier:    1,
		NativeToken: "SUI",
	},
}

// normalize reduces a chain identifier to its registry key, tolerating
// suffixed network names like "solana-mainnet".
func normalize(chainID string) (string, bool) {
	id := strings.ToLower(chainID)
	if _, ok := registry[id]; ok {
		return id, true
	}

	if base, _, found := strings.Cut(id, "-"); found {
		if _, ok := registry[base]; ok {
			return base, true
		}
	}
	return id, false
}

// Lookup returns the characteristics for a known chain identifier, or
// ErrUnknownChain when the identifier is not in the registry.
func Lookup(chainID string) (Characteristics, error) {
	id, ok := normalize(chainID)
	if !ok {
		return Characteristics{}, fmt.Errorf("%w: %s", ErrUnknownChain, chainID)
	}
	return registry[id], nil
}

// CurveFor returns the curve name a chain's addresses are built on.
func CurveFor(chainID string) (string, error) {
	chars, err := Lookup(chainID)
	if err != nil {
		return "", err
	}
	return chars.CurveName, nil
}

// Supported lists the chain identifiers understood by Lookup.
func Supported() []string {
	out := make([]string, 0, len(registry))
	for id := range registry {
		out = append(out, id)
	}
	return out
}

// DetectFamily guesses the chain family from an arbitrary identifier.
// Unlike Lookup this never fails; unrecognized chains default to EVM.
func DetectFamily(chainID string) Family {
	normalized := strings.ToLower(chainID)

	switch {
	case strings.Contains(normalized, "solana"):
		return FamilySolana
	case strings.Contains(normalized, "near"):
		return FamilyNear
	case strings.Contains(normalized, "aptos"):
		return FamilyAptos
	case strings.Contains(normalized, "sui"):
		return FamilySui
	case strings.Contains(normalized, "bitcoin"), strings.Contains(normalized, "btc"):
		return FamilyBitcoin
	case strings.Contains(normalized, "cosmos"), strings.Contains(normalized, "osmosis"),
		strings.Contains(normalized, "injective"):
		return FamilyCosmos
	default:
		return FamilyEVM
	}
}

// ForChain returns characteristics for a chain, falling back to an
// EVM-mainnet-like default for identifiers outside the registry. The fee
// optimization helpers use this lenient variant; address and meta-address
// codecs use Lookup and fail on unknown chains.
func ForChain(chainID string) Characteristics {
	if chars, err := Lookup(chainID); err == nil {
		return chars
	}

	return Characteristics{
		Family:      DetectFamily(chainID),
		CurveName:   "secp256k1",
		BlockTime:   12.0,
		HasEIP1559:  true,
		CostTier:    3,
		NativeToken: "ETH",
	}
}
