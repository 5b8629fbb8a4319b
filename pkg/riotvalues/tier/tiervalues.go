package tiervalues

import (
	"strings"
)

var tierValues = map[string]int{
	"IRON":        0,
	"BRONZE":      10000,
	"SILVER":      20000,
	"GOLD":        30000,
	"PLATINUM":    40000,
	"EMERALD":     50000,
	"DIAMOND":     60000,
	"MASTER":      70000,
	"GRANDMASTER": 80000,
	"CHALLENGER":  90000,
}

// Path segment of each apex league on league-v4.
var apexDivisions = map[string]string{
	"challengerleagues":  "CHALLENGER",
	"grandmasterleagues": "GRANDMASTER",
	"masterleagues":      "MASTER",
}

// ApexTier returns the tier served by a league-v4 apex division path.
func ApexTier(division string) (string, bool) {
	tier, exists := apexDivisions[strings.ToLower(strings.TrimSpace(division))]
	return tier, exists
}

// Calculate numeric rank of an apex player from the tier and lp.
// Apex tiers have no divisions, so only the base value is added.
func CalculateRank(tier string, lp int) int {
	// Normalize the tier entry.
	tier = strings.ToUpper(strings.TrimSpace(tier))

	baseValue, exists := tierValues[tier]
	if !exists {
		return 0 // Unknown tier
	}

	return baseValue + lp
}
