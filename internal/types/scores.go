// Package types provides type definitions for structured data used throughout the DISC assessment system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AxisScores holds the signed per-axis tallies of one assessment
type AxisScores struct {
	D int `json:"D"`
	I int `json:"I"`
	S int `json:"S"`
	C int `json:"C"`
}

// Get returns the score of an axis (0 for an invalid axis).
func (s AxisScores) Get(a Axis) int {
	switch a {
	case Dominance:
		return s.D
	case Influence:
		return s.I
	case Steadiness:
		return s.S
	case Conformity:
		return s.C
	}
	return 0
}

// Add applies delta to the given axis. Invalid axes are ignored.
func (s *AxisScores) Add(a Axis, delta int) {
	switch a {
	case Dominance:
		s.D += delta
	case Influence:
		s.I += delta
	case Steadiness:
		s.S += delta
	case Conformity:
		s.C += delta
	}
}

// Sum returns the total across the four axes.
func (s AxisScores) Sum() int {
	return s.D + s.I + s.S + s.C
}

// Map returns the scores keyed by axis letter.
func (s AxisScores) Map() map[Axis]int {
	return map[Axis]int{
		Dominance:  s.D,
		Influence:  s.I,
		Steadiness: s.S,
		Conformity: s.C,
	}
}

// AxisScore pairs an axis with its score
type AxisScore struct {
	Axis  Axis `json:"axis"`
	Score int  `json:"score"`
}

// Profile is the classification of an AxisScores set
type Profile struct {
	Primary   Axis          `json:"primary"`
	Secondary Axis          `json:"secondary"`
	Scores    AxisScores    `json:"scores"`
	Levels    map[Axis]Tier `json:"levels"`
	// Ranking is the full descending order used to pick primary and secondary
	Ranking []AxisScore `json:"ranking"`
}

// Level returns the tier computed for an axis.
func (p Profile) Level(a Axis) Tier {
	return p.Levels[a]
}
