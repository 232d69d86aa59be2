package interpretation

import (
	"fmt"
	"strings"

	"github.com/NeyGuaiume2/sdisc/internal/types"
)

// Descriptions provides the flat per-axis descriptions. *refdata.Store satisfies it.
type Descriptions interface {
	Description(a types.Axis) (types.Description, bool)
}

const (
	maxSummaryTraits   = 5
	maxSecondaryTraits = 3
)

// Summarize writes the plain-language digest of a profile from the axis descriptions.
// Axes without a description fall back to their letter; an unknown primary yields an empty summary text.
func Summarize(p types.Profile, descriptions Descriptions) types.Summary {
	if !p.Primary.Valid() {
		return types.Summary{}
	}

	primary, _ := descriptions.Description(p.Primary)
	secondary, _ := descriptions.Description(p.Secondary)
	primaryTitle := titleOr(primary, p.Primary)
	secondaryTitle := titleOr(secondary, p.Secondary)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Seu perfil DISC é predominantemente %s (%s)", primaryTitle, p.Primary)
	if p.Secondary.Valid() && p.Secondary != p.Primary {
		fmt.Fprintf(&sb, ", com %s (%s) como secundário", secondaryTitle, p.Secondary)
	}
	sb.WriteString(".\n\nSeus níveis DISC são:\n")
	for _, axis := range types.Axes {
		d, _ := descriptions.Description(axis)
		fmt.Fprintf(&sb, "- %s (%s): %s\n", axis, titleOr(d, axis), p.Level(axis))
	}
	if primary.Motivation != "" {
		fmt.Fprintf(&sb, "\nComo perfil %s dominante, você tende a ser motivado por: %s.\n", p.Primary, primary.Motivation)
	}
	if traits := head(primary.Characteristics, maxSummaryTraits); len(traits) > 0 {
		sb.WriteString("\nSuas principais características incluem:\n")
		for _, c := range traits {
			fmt.Fprintf(&sb, "- %s\n", c)
		}
	}

	s := types.Summary{
		Text:             sb.String(),
		PrimaryTitle:     primaryTitle,
		HowToWorkWith:    primary.HowToWorkWith,
		DevelopmentAreas: append([]string(nil), primary.DevelopmentAreas...),
	}
	if p.Secondary.Valid() && p.Secondary != p.Primary {
		s.SecondaryTitle = secondaryTitle
		if traits := head(secondary.Characteristics, maxSecondaryTraits); len(traits) > 0 {
			s.SecondaryInfluence = fmt.Sprintf("Seu perfil secundário %s (%s) adiciona características de %s.",
				p.Secondary, secondaryTitle, strings.Join(traits, ", "))
		}
	}
	return s
}

func titleOr(d types.Description, a types.Axis) string {
	if d.Title != "" {
		return d.Title
	}
	return string(a)
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
