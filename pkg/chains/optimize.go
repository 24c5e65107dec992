package chains

import "sort"

// OptimizationProfile selects the fee/latency tradeoff for a transfer.
type OptimizationProfile string

const (
	ProfileEconomy  OptimizationProfile = "economy"  // Lowest fees
	ProfileStandard OptimizationProfile = "standard" // Balanced
	ProfileFast     OptimizationProfile = "fast"     // Higher fees
	ProfileUrgent   OptimizationProfile = "urgent"   // Maximum priority
)

// SolanaComputeBudget is a Solana compute budget configuration.
type SolanaComputeBudget struct {
	Units                    uint32
	MicrolamportsPerCU       uint64
	TotalPriorityFeeLamports uint64
}

// EVMGasConfig is an EVM gas configuration.
type EVMGasConfig struct {
	GasLimit             uint64
	MaxFeePerGas         uint64 // wei
	MaxPriorityFeePerGas uint64 // wei
}

// OptimizationResult is the unified per-chain optimization result.
type OptimizationResult struct {
	Chain           string
	Family          Family
	Solana          *SolanaComputeBudget
	EVM             *EVMGasConfig
	Recommendations []string
}

const (
	SolanaDefaultCU          uint32 = 200_000
	SolanaMaxCU              uint32 = 1_400_000
	SolanaDefaultPriorityFee uint64 = 1_000

	EVMBaseGasPrice uint64 = 30_000_000_000 // 30 gwei
	OneGwei         uint64 = 1_000_000_000
)

var profileMultipliers = map[OptimizationProfile]float64{
	ProfileEconomy:  0.5,
	ProfileStandard: 1.0,
	ProfileFast:     2.0,
	ProfileUrgent:   5.0,
}

var evmProfileMultipliers = map[OptimizationProfile]float64{
	ProfileEconomy:  0.8,
	ProfileStandard: 1.0,
	ProfileFast:     1.5,
	ProfileUrgent:   2.5,
}

// CalculateSolanaBudget sizes a Solana compute budget for a privacy
// transfer, adding a 20% headroom buffer over the estimate.
func CalculateSolanaBudget(estimatedCU uint32, profile OptimizationProfile, currentMedianFee *uint64) SolanaComputeBudget {
	units := uint32(float64(estimatedCU) * 1.2)
	if units > SolanaMaxCU {
		units = SolanaMaxCU
	}

	multiplier, ok := profileMultipliers[profile]
	if !ok {
		multiplier = 1.0
	}

	baseFee := SolanaDefaultPriorityFee
	if currentMedianFee != nil {
		baseFee = *currentMedianFee
	}

	microlamportsPerCU := uint64(float64(baseFee) * multiplier)
	if microlamportsPerCU < 100 {
		microlamportsPerCU = 100
	}

	totalPriorityFeeLamports := (uint64(units) * microlamportsPerCU) / 1_000_000

	return SolanaComputeBudget{
		Units:                    units,
		MicrolamportsPerCU:       microlamportsPerCU,
		TotalPriorityFeeLamports: totalPriorityFeeLamports,
	}
}

// EstimateSolanaPrivacyCU estimates compute units for a Solana privacy
// transaction with the given shape.
func EstimateSolanaPrivacyCU(transferCount int, createsATAs, includesMemo bool) uint32 {
	cu := uint32(5_000) // base overhead
	cu += 300           // compute budget instructions

	perTransfer := uint32(10_000)
	if createsATAs {
		perTransfer = 35_000
	}
	cu += perTransfer * uint32(transferCount)

	if includesMemo {
		cu += 500
	}

	cu += 2_000 // stealth key derivation

	return cu
}

// CalculateEVMGas sizes an EVM gas configuration for a privacy transfer.
func CalculateEVMGas(estimatedGas uint64, profile OptimizationProfile, baseFee *uint64) EVMGasConfig {
	base := EVMBaseGasPrice
	if baseFee != nil {
		base = *baseFee
	}

	multiplier, ok := evmProfileMultipliers[profile]
	if !ok {
		multiplier = 1.0
	}

	basePriority := 2 * OneGwei
	maxPriorityFeePerGas := uint64(float64(basePriority) * multiplier)
	maxFeePerGas := base*2 + maxPriorityFeePerGas

	gasLimit := uint64(float64(estimatedGas) * 1.2)

	return EVMGasConfig{
		GasLimit:             gasLimit,
		MaxFeePerGas:         maxFeePerGas,
		MaxPriorityFeePerGas: maxPriorityFeePerGas,
	}
}

// EstimateEVMPrivacyGas estimates gas for an EVM privacy transaction.
func EstimateEVMPrivacyGas(transferCount int, includesApproval, includesAnnouncement bool) uint64 {
	gas := uint64(21_000)

	gas += 65_000 * uint64(transferCount)

	if includesApproval {
		gas += 46_000
	}

	if includesAnnouncement {
		gas += 80_000
	}

	return gas
}

// SelectOptimalConfig builds a fee configuration for a chain, profile and
// complexity bucket ("simple", "medium" or "complex").
func SelectOptimalConfig(chainID string, profile OptimizationProfile, complexity string) OptimizationResult {
	characteristics := ForChain(chainID)
	recommendations := []string{}

	var solanaBudget *SolanaComputeBudget
	var evmConfig *EVMGasConfig

	switch characteristics.Family {
	case FamilySolana:
		cuMap := map[string]uint32{
			"simple":  50_000,
			"medium":  150_000,
			"complex": 300_000,
		}
		estimatedCU := cuMap["medium"]
		if cu, ok := cuMap[complexity]; ok {
			estimatedCU = cu
		}

		budget := CalculateSolanaBudget(estimatedCU, profile, nil)
		solanaBudget = &budget

		recommendations = append(recommendations, "Solana: use versioned transactions for complex operations")
		if characteristics.CostTier == 1 {
			recommendations = append(recommendations, "Solana: very low cost - prioritize speed over savings")
		}

	case FamilyEVM:
		gasMap := map[string]uint64{
			"simple":  50_000,
			"medium":  150_000,
			"complex": 500_000,
		}
		estimatedGas := gasMap["medium"]
		if gas, ok := gasMap[complexity]; ok {
			estimatedGas = gas
		}

		config := CalculateEVMGas(estimatedGas, profile, nil)
		evmConfig = &config

		if characteristics.IsL2 {
			recommendations = append(recommendations, "L2: lower fees, optimize calldata for L1 data costs")
		}

	default:
		recommendations = append(recommendations, "chain "+chainID+" not fully optimized yet")
	}

	if characteristics.CostTier >= 4 {
		recommendations = append(recommendations, "high cost chain - consider L2 alternatives")
	}

	return OptimizationResult{
		Chain:           chainID,
		Family:          characteristics.Family,
		Solana:          solanaBudget,
		EVM:             evmConfig,
		Recommendations: recommendations,
	}
}

// CostComparison is one entry of a cross-chain cost ranking.
type CostComparison struct {
	Chain          string
	CostTier       int
	Recommendation string
}

var costTierRecommendations = map[int]string{
	1: "Excellent - very low costs",
	2: "Good - affordable for frequent use",
	3: "Moderate - suitable for medium value txs",
	4: "Expensive - use for high value only",
	5: "Very expensive - consider alternatives",
}

// CompareCosts ranks chains by cost tier, cheapest first.
func CompareCosts(chainIDs []string) []CostComparison {
	results := make([]CostComparison, 0, len(chainIDs))

	for _, chain := range chainIDs {
		chars := ForChain(chain)
		rec := costTierRecommendations[chars.CostTier]
		if rec == "" {
			rec = "Unknown"
		}

		results = append(results, CostComparison{
			Chain:          chain,
			CostTier:       chars.CostTier,
			Recommendation: rec,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CostTier < results[j].CostTier
	})

	return results
}

// RecommendCheapest picks the cheapest chain meeting an optional block
// time constraint. Returns the empty string when no chain qualifies.
func RecommendCheapest(chainIDs []string, maxBlockTime *float64) string {
	var cheapest string
	cheapestTier := 999

	for _, chain := range chainIDs {
		chars := ForChain(chain)

		if maxBlockTime != nil && chars.BlockTime > *maxBlockTime {
			continue
		}

		if chars.CostTier < cheapestTier {
			cheapestTier = chars.CostTier
			cheapest = chain
		}
	}

	return cheapest
}
