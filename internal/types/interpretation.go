// Package types provides type definitions for structured data used throughout the DISC assessment system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Entry is one authored block of narrative interpretation text.
// General and professional tables share the shape; unused fields stay empty.
type Entry struct {
	Description      string `json:"description,omitempty" yaml:"description,omitempty"`
	Motivation       string `json:"motivation,omitempty" yaml:"motivation,omitempty"`
	Characteristics  string `json:"characteristics,omitempty" yaml:"characteristics,omitempty"`
	Strengths        string `json:"strengths,omitempty" yaml:"strengths,omitempty"`
	DevelopmentAreas string `json:"development_areas,omitempty" yaml:"development_areas,omitempty"`
	RelationshipTips string `json:"relationship_tips,omitempty" yaml:"relationship_tips,omitempty"`
	HowYouAre        string `json:"how_you_are,omitempty" yaml:"how_you_are,omitempty"`
	HowToImprove     string `json:"how_to_improve,omitempty" yaml:"how_to_improve,omitempty"`

	// Professional tables
	WorkStyle        string `json:"work_style,omitempty" yaml:"work_style,omitempty"`
	Leadership       string `json:"leadership,omitempty" yaml:"leadership,omitempty"`
	Communication    string `json:"communication,omitempty" yaml:"communication,omitempty"`
	IdealEnvironment string `json:"ideal_environment,omitempty" yaml:"ideal_environment,omitempty"`
}

// IsZero reports whether no text was authored in the entry.
func (e Entry) IsZero() bool {
	return e == Entry{}
}

// PrimaryTable indexes entries by axis, then by tier
type PrimaryTable map[Axis]map[Tier]Entry

// Lookup returns the entry for (axis, tier) and whether it exists.
func (t PrimaryTable) Lookup(a Axis, tier Tier) (Entry, bool) {
	byTier, ok := t[a]
	if !ok {
		return Entry{}, false
	}
	e, ok := byTier[tier]
	return e, ok
}

// SecondaryTable indexes entries by (primary axis, primary tier), then by secondary axis
type SecondaryTable map[ComboKey]map[Axis]Entry

// Lookup returns the entry for the combination and whether it exists.
func (t SecondaryTable) Lookup(key ComboKey, secondary Axis) (Entry, bool) {
	byAxis, ok := t[key]
	if !ok {
		return Entry{}, false
	}
	e, ok := byAxis[secondary]
	return e, ok
}

// Description is the flat, tier-independent description of an axis
type Description struct {
	Title            string   `json:"title" yaml:"title"`
	Motivation       string   `json:"motivation" yaml:"motivation"`
	Characteristics  []string `json:"characteristics" yaml:"characteristics"`
	Strengths        []string `json:"strengths" yaml:"strengths"`
	Weaknesses       []string `json:"weaknesses" yaml:"weaknesses"`
	HowToWorkWith    string   `json:"how_to_work_with" yaml:"how_to_work_with"`
	DevelopmentAreas []string `json:"development_areas,omitempty" yaml:"development_areas,omitempty"`
}

// EntryStatus tells whether interpretation text was resolved
type EntryStatus string

// Entry statuses
const (
	StatusAvailable   EntryStatus = "available"
	StatusUnavailable EntryStatus = "unavailable"
	// StatusSkipped marks a secondary lookup that was not attempted because secondary == primary
	StatusSkipped EntryStatus = "skipped"
)

// Interpretation is a resolved entry enriched with the axis metadata it describes.
// Metadata is attached whether or not text was found.
type Interpretation struct {
	Type    Axis        `json:"type"`
	Level   Tier        `json:"level"`
	Score   int         `json:"score"`
	Title   string      `json:"title,omitempty"`
	Status  EntryStatus `json:"status"`
	Content *Entry      `json:"content,omitempty"`
}

// Available reports whether text content was resolved.
func (i Interpretation) Available() bool {
	return i.Status == StatusAvailable
}

// InterpretationPair holds the primary and secondary interpretation of one table family
type InterpretationPair struct {
	Primary   Interpretation `json:"primary"`
	Secondary Interpretation `json:"secondary"`
}

// Bundle is the full set of resolved interpretations
type Bundle struct {
	General      InterpretationPair `json:"general"`
	Professional InterpretationPair `json:"professional"`
}

// Unavailable counts sub-bundles whose text could not be resolved (skipped ones excluded).
func (b Bundle) Unavailable() int {
	n := 0
	for _, i := range []Interpretation{
		b.General.Primary, b.General.Secondary,
		b.Professional.Primary, b.Professional.Secondary,
	} {
		if i.Status == StatusUnavailable {
			n++
		}
	}
	return n
}
