package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOre(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Ore
		wantErr bool
	}{
		{name: "canonical", raw: "IRON_ORE", want: OreIron},
		{name: "lower case", raw: "iron_ore", want: OreIron},
		{name: "mixed case with spaces", raw: "  Deepslate_Gold_Ore ", want: OreDeepslateGold},
		{name: "ancient debris", raw: "ancient_debris", want: OreAncientDebris},
		{name: "unknown block", raw: "GRASS_BLOCK", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOre(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownOre)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Iron Ore", OreIron.DisplayName())
	assert.Equal(t, "Deepslate Iron Ore", OreDeepslateIron.DisplayName())
	assert.Equal(t, "Ancient Debris", OreAncientDebris.DisplayName())
}

func TestMiningEventHasPermission(t *testing.T) {
	e := MiningEvent{Permissions: []string{"orevault.earn", "orevault.multiplier.2"}}

	assert.True(t, e.HasPermission("orevault.earn"))
	assert.False(t, e.HasPermission("orevault.admin"))
	assert.False(t, MiningEvent{}.HasPermission("orevault.earn"))
}
