package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAxis(t *testing.T) {
	for input, want := range map[string]Axis{"D": Dominance, " i ": Influence, "s": Steadiness, "C": Conformity} {
		got, err := ParseAxis(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseAxis("X")
	assert.Error(t, err)
	_, err = ParseAxis("")
	assert.Error(t, err)
}

func TestAxis_RankAndLabel(t *testing.T) {
	assert.Equal(t, 0, Dominance.Rank())
	assert.Equal(t, 3, Conformity.Rank())
	assert.Equal(t, len(Axes), UnknownAxis.Rank())

	assert.Equal(t, "S", Steadiness.Label())
	assert.Equal(t, UnknownProfile, UnknownAxis.Label())
	assert.Equal(t, UnknownProfile, Axis("Z").Label())
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("HIGH")
	require.NoError(t, err)
	assert.Equal(t, TierHigh, tier)

	_, err = ParseTier("alto")
	assert.Error(t, err)
}

func TestComboKey(t *testing.T) {
	key := ComboKey{Primary: Dominance, Tier: TierHigh}
	assert.Equal(t, "D_high", key.String())

	parsed, err := ParseComboKey("D_high")
	require.NoError(t, err)
	assert.Equal(t, key, parsed)

	parsed, err = ParseComboKey("c_Significant")
	require.NoError(t, err)
	assert.Equal(t, ComboKey{Primary: Conformity, Tier: TierSignificant}, parsed)

	for _, bad := range []string{"", "D", "Dhigh", "X_high", "D_alto", "_high"} {
		_, err := ParseComboKey(bad)
		assert.Error(t, err, bad)
	}
}
