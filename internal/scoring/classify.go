package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NeyGuaiume2/sdisc/internal/types"
)

// Tier scheme names accepted by BandsFor
const (
	SchemeStandard = "standard"
	SchemeWide     = "wide"
)

// Bands are the lower bounds of the significant and high tiers.
// Any score below SignificantFrom, negatives included, is moderate.
type Bands struct {
	SignificantFrom int `json:"significant_from"`
	HighFrom        int `json:"high_from"`
}

var (
	// StandardBands: moderate < 6, significant 6..10, high >= 11
	StandardBands = Bands{SignificantFrom: 6, HighFrom: 11}
	// WideBands: moderate 0..8, significant 9..15, high >= 16
	WideBands = Bands{SignificantFrom: 9, HighFrom: 16}
)

// BandsFor returns the bands of a named scheme. An empty name selects the standard scheme.
func BandsFor(scheme string) (Bands, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", SchemeStandard:
		return StandardBands, nil
	case SchemeWide:
		return WideBands, nil
	}
	return Bands{}, fmt.Errorf("unknown tier scheme %q (expected %s or %s)", scheme, SchemeStandard, SchemeWide)
}

// Validate checks that the bands are positive and ordered.
func (b Bands) Validate() error {
	if b.SignificantFrom <= 0 {
		return fmt.Errorf("significant band must start above 0, got %d", b.SignificantFrom)
	}
	if b.HighFrom <= b.SignificantFrom {
		return fmt.Errorf("high band (%d) must start above the significant band (%d)", b.HighFrom, b.SignificantFrom)
	}
	return nil
}

// TierFor maps a raw score to its tier.
func (b Bands) TierFor(score int) types.Tier {
	switch {
	case score >= b.HighFrom:
		return types.TierHigh
	case score >= b.SignificantFrom:
		return types.TierSignificant
	default:
		return types.TierModerate
	}
}

// Rank orders the four axes by score descending, ties broken in D, I, S, C order.
func Rank(scores types.AxisScores) []types.AxisScore {
	ranking := make([]types.AxisScore, 0, len(types.Axes))
	for _, axis := range types.Axes {
		ranking = append(ranking, types.AxisScore{Axis: axis, Score: scores.Get(axis)})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Score != ranking[j].Score {
			return ranking[i].Score > ranking[j].Score
		}
		return ranking[i].Axis.Rank() < ranking[j].Axis.Rank()
	})
	return ranking
}

// Classify picks the primary and secondary axes and tiers every score.
// It is a pure function of its inputs.
func Classify(scores types.AxisScores, bands Bands) types.Profile {
	ranking := Rank(scores)

	primary := ranking[0].Axis
	secondary := primary
	for _, entry := range ranking[1:] {
		if entry.Axis != primary {
			secondary = entry.Axis
			break
		}
	}

	levels := make(map[types.Axis]types.Tier, len(types.Axes))
	for _, axis := range types.Axes {
		levels[axis] = bands.TierFor(scores.Get(axis))
	}

	return types.Profile{
		Primary:   primary,
		Secondary: secondary,
		Scores:    scores,
		Levels:    levels,
		Ranking:   ranking,
	}
}
