// Package interpretation joins a classified profile against the general and professional
// interpretation tables.
package interpretation

import (
	"github.com/NeyGuaiume2/sdisc/internal/logging"
	"github.com/NeyGuaiume2/sdisc/internal/types"
	"go.uber.org/zap"
)

// Table names used in logs and metrics
const (
	TableGeneralPrimary        = "general_primary"
	TableGeneralSecondary      = "general_secondary"
	TableProfessionalPrimary   = "professional_primary"
	TableProfessionalSecondary = "professional_secondary"
)

// Tables is the read-only reference data the resolver looks entries up in.
// *refdata.Store satisfies it.
type Tables interface {
	GeneralPrimary() types.PrimaryTable
	ProfessionalPrimary() types.PrimaryTable
	GeneralSecondary() types.SecondaryTable
	ProfessionalSecondary() types.SecondaryTable
	Title(a types.Axis) string
}

// Resolver resolves interpretation bundles. It is safe for concurrent use.
type Resolver struct {
	tables Tables
	logger *zap.Logger
}

// NewResolver creates a Resolver over tables.
func NewResolver(tables Tables, logger *zap.Logger) *Resolver {
	return &Resolver{tables: tables, logger: logging.OrNop(logger)}
}

// ResolveProfile resolves the bundle of a classified profile.
func (r *Resolver) ResolveProfile(p types.Profile) types.Bundle {
	return r.Resolve(p.Primary, p.Level(p.Primary), p.Secondary, p.Scores, p.Levels)
}

// Resolve looks up the four sub-bundles. Primary entries are keyed by (primary, primaryTier);
// secondary entries by (primary, primaryTier) then secondary, so the secondary text depends on
// the primary's tier rather than the secondary's own. Secondary lookups are skipped when
// secondary equals primary. Missing entries, and entries with no authored text, come back with
// StatusUnavailable; Resolve never fails.
//
// Every interpretation carries the axis it describes, that axis's own tier from levels and its score
// whether or not text was found.
func (r *Resolver) Resolve(
	primary types.Axis,
	primaryTier types.Tier,
	secondary types.Axis,
	scores types.AxisScores,
	levels map[types.Axis]types.Tier,
) types.Bundle {
	key := types.ComboKey{Primary: primary, Tier: primaryTier}
	validKey := primary.Valid() && primaryTier.Valid()

	lookupPrimary := func(table string, t types.PrimaryTable) types.Interpretation {
		in := r.metadata(primary, scores, levels)
		if !validKey {
			return r.unavailable(in, table, key)
		}
		entry, ok := t.Lookup(primary, primaryTier)
		if !ok || entry.IsZero() {
			return r.unavailable(in, table, key)
		}
		return available(in, entry)
	}

	lookupSecondary := func(table string, t types.SecondaryTable) types.Interpretation {
		in := r.metadata(secondary, scores, levels)
		if secondary == primary {
			in.Status = types.StatusSkipped
			return in
		}
		if !validKey || !secondary.Valid() {
			return r.unavailable(in, table, key)
		}
		entry, ok := t.Lookup(key, secondary)
		if !ok || entry.IsZero() {
			return r.unavailable(in, table, key)
		}
		return available(in, entry)
	}

	return types.Bundle{
		General: types.InterpretationPair{
			Primary:   lookupPrimary(TableGeneralPrimary, r.tables.GeneralPrimary()),
			Secondary: lookupSecondary(TableGeneralSecondary, r.tables.GeneralSecondary()),
		},
		Professional: types.InterpretationPair{
			Primary:   lookupPrimary(TableProfessionalPrimary, r.tables.ProfessionalPrimary()),
			Secondary: lookupSecondary(TableProfessionalSecondary, r.tables.ProfessionalSecondary()),
		},
	}
}

func (r *Resolver) metadata(axis types.Axis, scores types.AxisScores, levels map[types.Axis]types.Tier) types.Interpretation {
	in := types.Interpretation{
		Type:  axis,
		Level: levels[axis],
		Score: scores.Get(axis),
	}
	if axis.Valid() {
		in.Title = r.tables.Title(axis)
	}
	return in
}

func (r *Resolver) unavailable(in types.Interpretation, table string, key types.ComboKey) types.Interpretation {
	r.logger.Warn("interpretation entry not found",
		zap.String("table", table),
		zap.String("key", key.String()),
		zap.String("axis", string(in.Type)))
	in.Status = types.StatusUnavailable
	return in
}

func available(in types.Interpretation, entry types.Entry) types.Interpretation {
	// Copy so the result never points into the reference tables
	content := entry
	in.Status = types.StatusAvailable
	in.Content = &content
	return in
}
