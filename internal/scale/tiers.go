package scale

import (
	"fmt"

	"github.com/tkondra/constella/internal/model"
)

// tierSpec is one row of the fixed scaling table: an inclusive word
// range, the node-count multiplier and the particle-budget multiplier.
type tierSpec struct {
	tier               model.Tier
	minWords           int
	maxWords           int
	multiplier         float64
	particleMultiplier float64
}

// tierTable is ordered by word range. The ranges are contiguous and
// non-overlapping; compatible output depends on these exact values, so
// the table is validated at init and never computed.
var tierTable = [...]tierSpec{
	{model.TierMicroBoost, 1, 3, 3.0, 1.20},
	{model.TierMicroEnhance, 4, 8, 2.2, 1.15},
	{model.TierMicroStandard, 9, 15, 1.8, 1.10},
	{model.TierSmallPlus, 16, 30, 1.5, 1.05},
	{model.TierSmallStandard, 31, 60, 1.2, 1.00},
	{model.TierSmallCompress, 61, 100, 1.0, 0.95},
	{model.TierMediumStandard, 101, 200, 0.95, 0.90},
	{model.TierMediumCompress, 201, 350, 0.85, 0.85},
	{model.TierMediumMax, 351, 500, 0.75, 0.80},
	{model.TierLargeStandard, 501, 800, 0.70, 0.75},
	{model.TierLargeCompress, 801, 1200, 0.60, 0.70},
	{model.TierLargeHeavy, 1201, 2000, 0.50, 0.65},
	{model.TierMassiveStandard, 2001, 3500, 0.45, 0.60},
	{model.TierMassiveCompress, 3501, 5000, 0.40, 0.55},
	{model.TierMassiveMax, 5001, 7000, 0.35, 0.50},
	{model.TierEpicStandard, 7001, 10000, 0.30, 0.45},
	{model.TierEpicMaximum, 10001, 12500, 0.25, 0.40},
}

func init() {
	if len(tierTable) != model.TierCount {
		panic(fmt.Sprintf("scale: tier table has %d rows, want %d", len(tierTable), model.TierCount))
	}
	for i, row := range tierTable {
		if row.tier != model.Tier(i) {
			panic(fmt.Sprintf("scale: tier table row %d out of order: %s", i, row.tier))
		}
		if i > 0 && row.minWords != tierTable[i-1].maxWords+1 {
			panic(fmt.Sprintf("scale: tier table gap before %s", row.tier))
		}
		if row.minWords > row.maxWords {
			panic(fmt.Sprintf("scale: inverted range for %s", row.tier))
		}
		if row.multiplier <= 0 || row.multiplier > 3.0 {
			panic(fmt.Sprintf("scale: multiplier out of range for %s", row.tier))
		}
		if row.particleMultiplier < 0.4 || row.particleMultiplier > 1.2 {
			panic(fmt.Sprintf("scale: particle multiplier out of range for %s", row.tier))
		}
	}
}

// lookupTier selects the row containing the word count. Word counts
// below the table fall back to the first row, counts above it to the
// last (lowest-multiplier) row.
func lookupTier(wordCount int) tierSpec {
	if wordCount < tierTable[0].minWords {
		return tierTable[0]
	}
	for _, row := range tierTable {
		if wordCount >= row.minWords && wordCount <= row.maxWords {
			return row
		}
	}
	return tierTable[len(tierTable)-1]
}
