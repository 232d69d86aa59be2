// Package types provides type definitions for structured data used throughout the DISC assessment system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Axis is one of the four DISC behavioral dimensions
type Axis string

// DISC axes in declared order
const (
	Dominance   Axis = "D"
	Influence   Axis = "I"
	Steadiness  Axis = "S"
	Conformity  Axis = "C"
	UnknownAxis Axis = ""
)

// UnknownProfile is the profile label used when scoring could not determine an axis
const UnknownProfile = "?"

// Axes lists the four axes in tie-break order (D, I, S, C).
var Axes = []Axis{Dominance, Influence, Steadiness, Conformity}

// Valid reports whether a is one of the four DISC axes.
func (a Axis) Valid() bool {
	switch a {
	case Dominance, Influence, Steadiness, Conformity:
		return true
	}
	return false
}

// Rank returns the position of a in tie-break order, or len(Axes) for an invalid axis.
func (a Axis) Rank() int {
	for i, axis := range Axes {
		if axis == a {
			return i
		}
	}
	return len(Axes)
}

// Label returns the single-letter profile label, or UnknownProfile when a is not valid.
func (a Axis) Label() string {
	if !a.Valid() {
		return UnknownProfile
	}
	return string(a)
}

// ParseAxis parses a single-letter axis code (case-insensitive, surrounding space ignored).
func ParseAxis(s string) (Axis, error) {
	a := Axis(strings.ToUpper(strings.TrimSpace(s)))
	if !a.Valid() {
		return UnknownAxis, fmt.Errorf("invalid DISC axis %q", s)
	}
	return a, nil
}

// Tier is an intensity band for a raw axis score
type Tier string

// Intensity tiers, lowest to highest
const (
	TierModerate    Tier = "moderate"
	TierSignificant Tier = "significant"
	TierHigh        Tier = "high"
)

// Tiers lists the tiers from lowest to highest band.
var Tiers = []Tier{TierModerate, TierSignificant, TierHigh}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierModerate, TierSignificant, TierHigh:
		return true
	}
	return false
}

// ParseTier parses a tier name (case-insensitive).
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid intensity tier %q", s)
	}
	return t, nil
}

// ComboKey identifies a secondary-combination row: the primary axis and the primary's own tier.
type ComboKey struct {
	Primary Axis
	Tier    Tier
}

// String renders the key in reference-file form, e.g. "D_high".
func (k ComboKey) String() string {
	return string(k.Primary) + "_" + string(k.Tier)
}

// ParseComboKey parses "D_high" style keys.
func ParseComboKey(s string) (ComboKey, error) {
	axisPart, tierPart, ok := strings.Cut(strings.TrimSpace(s), "_")
	if !ok {
		return ComboKey{}, fmt.Errorf("invalid combination key %q: expected <axis>_<tier>", s)
	}
	axis, err := ParseAxis(axisPart)
	if err != nil {
		return ComboKey{}, fmt.Errorf("invalid combination key %q: %w", s, err)
	}
	tier, err := ParseTier(tierPart)
	if err != nil {
		return ComboKey{}, fmt.Errorf("invalid combination key %q: %w", s, err)
	}
	return ComboKey{Primary: axis, Tier: tier}, nil
}
