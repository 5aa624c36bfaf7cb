package lottery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinVault_Go/internal/domain"
)

func TestNewTierTable_Validation(t *testing.T) {
	tests := []struct {
		name    string
		bands   []Band
		wantErr bool
	}{
		{"valid", []Band{{"epic", 0.15}, {"rare", 0.5}, {"common", 1}}, false},
		{"single band", []Band{{"common", 1}}, false},
		{"equal thresholds allowed", []Band{{"epic", 0.5}, {"rare", 0.5}, {"common", 1}}, false},
		{"float noise at end", []Band{{"epic", 0.3}, {"common", 0.9999999999}}, false},
		{"empty", nil, true},
		{"does not reach one", []Band{{"epic", 0.15}, {"common", 0.9}}, true},
		{"decreasing", []Band{{"epic", 0.5}, {"rare", 0.2}, {"common", 1}}, true},
		{"negative", []Band{{"epic", -0.1}, {"common", 1}}, true},
		{"above one", []Band{{"epic", 0.5}, {"common", 1.5}}, true},
		{"missing tier", []Band{{"", 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTierTable(tt.bands)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidTierTable)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, table)
		})
	}
}

func TestTierTable_Select(t *testing.T) {
	table := MustTierTable([]Band{{"epic", 0.15}, {"rare", 0.5}, {"common", 1}})

	assert.Equal(t, domain.Tier("epic"), table.Select(0))
	assert.Equal(t, domain.Tier("epic"), table.Select(0.1499))
	assert.Equal(t, domain.Tier("rare"), table.Select(0.15), "threshold is exclusive")
	assert.Equal(t, domain.Tier("rare"), table.Select(0.4999))
	assert.Equal(t, domain.Tier("common"), table.Select(0.5))
	assert.Equal(t, domain.Tier("common"), table.Select(0.9999))
}

func TestTierTable_ZeroWidthBandNeverSelected(t *testing.T) {
	table := MustTierTable([]Band{{"mythic", 0}, {"common", 1}})
	assert.Equal(t, domain.Tier("common"), table.Select(0))
}

func TestTierTable_Probabilities(t *testing.T) {
	table := MustTierTable([]Band{{"legendary", 0.05}, {"epic", 0.2}, {"common", 1}}, "common")

	p := table.Probabilities()
	assert.InDelta(t, 0.05, p["legendary"], 1e-9)
	assert.InDelta(t, 0.15, p["epic"], 1e-9)
	assert.InDelta(t, 0.80, p["common"], 1e-9)
	assert.Equal(t, []domain.Tier{"common"}, table.Base())
	assert.Len(t, table.Bands(), 3)
}

func TestMustTierTable_Panics(t *testing.T) {
	assert.Panics(t, func() { MustTierTable([]Band{{"common", 0.5}}) })
}
