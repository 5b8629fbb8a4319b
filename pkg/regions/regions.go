package regions

import (
	"fmt"
	"strings"
)

// Simple package containing the region list.
// Platform (sub region) hosts serve league data, routing (main region) hosts serve match data.
// Create the types for clarity.
type (
	MainRegion string
	SubRegion  string
)

// List of regions.
var RegionList = map[MainRegion][]SubRegion{
	"AMERICAS": {"BR1", "LA1", "LA2", "NA1"},
	"EUROPE":   {"EUN1", "EUW1", "TR1", "ME1", "RU"},
	"ASIA":     {"KR", "JP1"},
	"SEA":      {"OC1", "SG2", "TW2", "VN2"},
}

// Host suffix shared by every Riot API endpoint.
const apiHost = "api.riotgames.com"

// ParseSubRegion normalizes a platform value and verifies it exists.
func ParseSubRegion(value string) (SubRegion, error) {
	sub := SubRegion(strings.ToUpper(strings.TrimSpace(value)))
	if _, err := RoutingFor(sub); err != nil {
		return "", err
	}
	return sub, nil
}

// ParseMainRegion normalizes a routing value and verifies it exists.
func ParseMainRegion(value string) (MainRegion, error) {
	main := MainRegion(strings.ToUpper(strings.TrimSpace(value)))
	if _, exists := RegionList[main]; !exists {
		return "", fmt.Errorf("the region %s doesn't exist or isn't a main region", value)
	}
	return main, nil
}

// RoutingFor returns the main region that is the parent of the sub region.
func RoutingFor(sub SubRegion) (MainRegion, error) {
	for main, subs := range RegionList {
		for _, s := range subs {
			if s == sub {
				return main, nil
			}
		}
	}
	return "", fmt.Errorf("the region %s doesn't exist or isn't a sub region", sub)
}

// BaseURL of the platform host, e.g. https://jp1.api.riotgames.com.
func (s SubRegion) BaseURL() string {
	return fmt.Sprintf("https://%s.%s", strings.ToLower(string(s)), apiHost)
}

// BaseURL of the routing host, e.g. https://asia.api.riotgames.com.
func (m MainRegion) BaseURL() string {
	return fmt.Sprintf("https://%s.%s", strings.ToLower(string(m)), apiHost)
}
