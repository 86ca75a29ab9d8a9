package domain

import (
	"fmt"
	"strings"
)

// Ore identifies a minable block type that can carry a reward.
// The set is closed: configuration entries naming anything else are
// rejected at load time.
type Ore string

// Rewardable ore identifiers
const (
	OreCoal              Ore = "COAL_ORE"
	OreDeepslateCoal     Ore = "DEEPSLATE_COAL_ORE"
	OreCopper            Ore = "COPPER_ORE"
	OreDeepslateCopper   Ore = "DEEPSLATE_COPPER_ORE"
	OreIron              Ore = "IRON_ORE"
	OreDeepslateIron     Ore = "DEEPSLATE_IRON_ORE"
	OreGold              Ore = "GOLD_ORE"
	OreDeepslateGold     Ore = "DEEPSLATE_GOLD_ORE"
	OreRedstone          Ore = "REDSTONE_ORE"
	OreDeepslateRedstone Ore = "DEEPSLATE_REDSTONE_ORE"
	OreLapis             Ore = "LAPIS_ORE"
	OreDeepslateLapis    Ore = "DEEPSLATE_LAPIS_ORE"
	OreDiamond           Ore = "DIAMOND_ORE"
	OreDeepslateDiamond  Ore = "DEEPSLATE_DIAMOND_ORE"
	OreEmerald           Ore = "EMERALD_ORE"
	OreDeepslateEmerald  Ore = "DEEPSLATE_EMERALD_ORE"
	OreNetherQuartz      Ore = "NETHER_QUARTZ_ORE"
	OreNetherGold        Ore = "NETHER_GOLD_ORE"
	OreAncientDebris     Ore = "ANCIENT_DEBRIS"
)

// knownOres is the closed set used by ParseOre
var knownOres = map[Ore]struct{}{
	OreCoal: {}, OreDeepslateCoal: {},
	OreCopper: {}, OreDeepslateCopper: {},
	OreIron: {}, OreDeepslateIron: {},
	OreGold: {}, OreDeepslateGold: {},
	OreRedstone: {}, OreDeepslateRedstone: {},
	OreLapis: {}, OreDeepslateLapis: {},
	OreDiamond: {}, OreDeepslateDiamond: {},
	OreEmerald: {}, OreDeepslateEmerald: {},
	OreNetherQuartz: {}, OreNetherGold: {},
	OreAncientDebris: {},
}

// ParseOre validates a raw ore token against the closed set.
// Matching is case-insensitive; the canonical upper-case form is returned.
func ParseOre(raw string) (Ore, error) {
	ore := Ore(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := knownOres[ore]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOre, raw)
	}
	return ore, nil
}

// String returns the canonical identifier
func (o Ore) String() string {
	return string(o)
}

// DisplayName formats the identifier for presentation,
// e.g. "DEEPSLATE_IRON_ORE" becomes "Deepslate Iron Ore".
func (o Ore) DisplayName() string {
	words := strings.Split(strings.ToLower(string(o)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
