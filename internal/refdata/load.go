package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"reflect"
	"strings"

	"github.com/NeyGuaiume2/sdisc/data"
	"github.com/NeyGuaiume2/sdisc/internal/logging"
	"github.com/NeyGuaiume2/sdisc/internal/schemas"
	"github.com/NeyGuaiume2/sdisc/internal/types"
	embedded "github.com/NeyGuaiume2/sdisc/schemas"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Reference document base names. Each may be stored as .json, .yaml or .yml.
const (
	DocQuestions             = "questions"
	DocDescriptions          = "descriptions"
	DocGeneralPrimary        = "general_primary"
	DocGeneralSecondary      = "general_secondary"
	DocProfessionalPrimary   = "professional_primary"
	DocProfessionalSecondary = "professional_secondary"
)

var extensions = []string{".json", ".yaml", ".yml"}

// entryKeys is the set of field names an authored entry object may carry
var entryKeys = func() map[string]bool {
	keys := map[string]bool{}
	t := reflect.TypeOf(types.Entry{})
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		keys[name] = true
	}
	return keys
}()

// FS returns the reference data filesystem: the embedded copy when dir is empty, the directory otherwise.
func FS(dir string) fs.FS {
	if dir == "" {
		return data.FS
	}
	return os.DirFS(dir)
}

// Load reads every reference document from fsys, validates each against its schema and
// builds a Store. Documents are loaded concurrently.
// The question bank and the descriptions are required. A missing interpretation table
// is replaced by an empty one and a warning is logged.
func Load(ctx context.Context, fsys fs.FS, logger *zap.Logger) (*Store, error) {
	logger = logging.OrNop(logger)

	var (
		c Contents
		// One slot per table goroutine
		tableIssues = make([][]Issue, 4)
		missing     = make([]string, 4)
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		doc, name, err := readDocument(ctx, fsys, DocQuestions)
		if err != nil {
			return err
		}
		if err := validateDocument(name, embedded.Questions, doc); err != nil {
			return err
		}
		if err := json.Unmarshal(doc, &c.Questions); err != nil {
			return &LoadError{Path: name, Message: "failed to unmarshal questions", Cause: err}
		}
		return nil
	})

	g.Go(func() error {
		doc, name, err := readDocument(ctx, fsys, DocDescriptions)
		if err != nil {
			return err
		}
		if err := validateDocument(name, embedded.Descriptions, doc); err != nil {
			return err
		}
		descriptions, err := decodeDescriptions(doc)
		if err != nil {
			return &LoadError{Path: name, Message: "failed to unmarshal descriptions", Cause: err}
		}
		c.Descriptions = descriptions
		return nil
	})

	g.Go(func() error {
		table, issues, err := loadPrimary(ctx, fsys, DocGeneralPrimary, &missing[0])
		c.GeneralPrimary, tableIssues[0] = table, issues
		return err
	})

	g.Go(func() error {
		table, issues, err := loadPrimary(ctx, fsys, DocProfessionalPrimary, &missing[1])
		c.ProfessionalPrimary, tableIssues[1] = table, issues
		return err
	})

	g.Go(func() error {
		table, issues, err := loadSecondary(ctx, fsys, DocGeneralSecondary, &missing[2])
		c.GeneralSecondary, tableIssues[2] = table, issues
		return err
	})

	g.Go(func() error {
		table, issues, err := loadSecondary(ctx, fsys, DocProfessionalSecondary, &missing[3])
		c.ProfessionalSecondary, tableIssues[3] = table, issues
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var loadIssues []Issue
	for _, doc := range missing {
		if doc == "" {
			continue
		}
		logger.Warn("interpretation table not found, using an empty table", zap.String("document", doc))
		loadIssues = append(loadIssues, Issue{
			Severity: SeverityWarning,
			Code:     CodeMissingDocument,
			Message:  fmt.Sprintf("document %s not found; its interpretations will be unavailable", doc),
		})
	}
	for _, issues := range tableIssues {
		loadIssues = append(loadIssues, issues...)
	}

	store := newStore(c, loadIssues)
	for _, issue := range store.Issues() {
		fields := []zap.Field{zap.String("code", string(issue.Code)), zap.String("message", issue.Message)}
		if issue.QuestionID != 0 {
			fields = append(fields, zap.Int("question_id", issue.QuestionID))
		}
		switch issue.Severity {
		case SeverityError, SeverityWarning:
			logger.Warn("reference data issue", fields...)
		default:
			logger.Debug("reference data issue", fields...)
		}
	}

	logger.Info("reference data loaded",
		zap.Int("questions", store.Len()),
		zap.Int("issues", len(store.issues)))

	return store, nil
}

// LoadEmbedded loads the reference data compiled into the binary.
func LoadEmbedded(ctx context.Context, logger *zap.Logger) (*Store, error) {
	return Load(ctx, data.FS, logger)
}

// readDocument finds base under one of the known extensions and returns it as JSON.
// YAML documents are converted so that one schema and one decoder serve both formats.
func readDocument(ctx context.Context, fsys fs.FS, base string) ([]byte, string, error) {
	for _, ext := range extensions {
		if err := ctx.Err(); err != nil {
			return nil, base, err
		}

		name := base + ext
		content, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, name, &LoadError{Path: name, Message: "failed to read file", Cause: err}
		}

		if path.Ext(name) == ".json" {
			return content, name, nil
		}

		converted, err := yamlToJSON(content)
		if err != nil {
			return nil, name, &LoadError{Path: name, Message: "failed to parse YAML", Cause: err}
		}
		return converted, name, nil
	}

	return nil, base, &LoadError{
		Path:    base,
		Message: fmt.Sprintf("no %s document found (tried %v)", base, extensions),
		Cause:   fs.ErrNotExist,
	}
}

func validateDocument(name, schema string, doc []byte) error {
	if err := schemas.ValidateDocument(schema, doc); err != nil {
		return &LoadError{Path: name, Message: "schema validation failed", Cause: err}
	}
	return nil
}

func yamlToJSON(content []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(content, &v); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeYAML(v))
}

// normalizeYAML turns map[any]any produced for non-string keys into JSON-compatible maps.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalizeYAML(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalizeYAML(item)
		}
		return val
	}
	return v
}

func decodeDescriptions(doc []byte) (map[types.Axis]types.Description, error) {
	var raw map[string]types.Description
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, err
	}
	out := make(map[types.Axis]types.Description, len(raw))
	for key, d := range raw {
		axis, err := types.ParseAxis(key)
		if err != nil {
			return nil, err
		}
		out[axis] = d
	}
	return out, nil
}

// loadPrimary loads an optional primary table. When the document is absent, missing is set to its name.
func loadPrimary(ctx context.Context, fsys fs.FS, base string, missing *string) (types.PrimaryTable, []Issue, error) {
	doc, name, err := readDocument(ctx, fsys, base)
	if errors.Is(err, fs.ErrNotExist) {
		*missing = base
		return types.PrimaryTable{}, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if err := validateDocument(name, embedded.PrimaryTable, doc); err != nil {
		return nil, nil, err
	}

	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, nil, &LoadError{Path: name, Message: "failed to unmarshal primary table", Cause: err}
	}

	var issues []Issue
	table := make(types.PrimaryTable, len(raw))
	for axisKey, byTier := range raw {
		axis, err := types.ParseAxis(axisKey)
		if err != nil {
			issues = append(issues, invalidKey(name, axisKey, err))
			continue
		}
		for tierKey, rawEntry := range byTier {
			tier, err := types.ParseTier(tierKey)
			if err != nil {
				issues = append(issues, invalidKey(name, axisKey+"."+tierKey, err))
				continue
			}
			entry, entryIssues, err := decodeEntry(name, axisKey+"."+tierKey, rawEntry)
			if err != nil {
				return nil, nil, &LoadError{Path: name, Message: "failed to unmarshal primary table", Cause: err}
			}
			issues = append(issues, entryIssues...)
			if table[axis] == nil {
				table[axis] = map[types.Tier]types.Entry{}
			}
			table[axis][tier] = entry
		}
	}
	return table, issues, nil
}

// loadSecondary loads an optional secondary-combination table.
// An entry may be authored as a bare string (its description) or as a full entry object.
func loadSecondary(ctx context.Context, fsys fs.FS, base string, missing *string) (types.SecondaryTable, []Issue, error) {
	doc, name, err := readDocument(ctx, fsys, base)
	if errors.Is(err, fs.ErrNotExist) {
		*missing = base
		return types.SecondaryTable{}, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if err := validateDocument(name, embedded.SecondaryTable, doc); err != nil {
		return nil, nil, err
	}

	var (
		issues    []Issue
		decodeErr error
	)
	table := types.SecondaryTable{}

	gjson.ParseBytes(doc).ForEach(func(comboKey, row gjson.Result) bool {
		key, err := types.ParseComboKey(comboKey.String())
		if err != nil {
			issues = append(issues, invalidKey(name, comboKey.String(), err))
			return true
		}

		row.ForEach(func(axisKey, value gjson.Result) bool {
			axis, err := types.ParseAxis(axisKey.String())
			if err != nil {
				issues = append(issues, invalidKey(name, key.String()+"."+axisKey.String(), err))
				return true
			}

			var entry types.Entry
			switch {
			case value.Type == gjson.String:
				entry = types.Entry{Description: value.String()}
				if entry.IsZero() {
					issues = append(issues, blankEntry(name, key.String()+"."+axisKey.String()))
				}
			case value.IsObject():
				var entryIssues []Issue
				entry, entryIssues, err = decodeEntry(name, key.String()+"."+axisKey.String(), []byte(value.Raw))
				if err != nil {
					decodeErr = fmt.Errorf("entry %s.%s: %w", key, axis, err)
					return false
				}
				issues = append(issues, entryIssues...)
			default:
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Code:     CodeInvalidKey,
					Message:  fmt.Sprintf("%s: entry %s.%s is neither text nor an object", name, key, axis),
				})
				return true
			}

			if table[key] == nil {
				table[key] = map[types.Axis]types.Entry{}
			}
			table[key][axis] = entry
			return true
		})
		return decodeErr == nil
	})

	if decodeErr != nil {
		return nil, nil, &LoadError{Path: name, Message: "failed to unmarshal secondary table", Cause: decodeErr}
	}
	return table, issues, nil
}

// decodeEntry decodes one entry object. Unknown field names and entries without any text
// are reported; such an entry still loads and resolves as unavailable.
func decodeEntry(doc, at string, raw []byte) (types.Entry, []Issue, error) {
	var entry types.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return types.Entry{}, nil, err
	}

	var issues []Issue
	gjson.ParseBytes(raw).ForEach(func(field, _ gjson.Result) bool {
		if !entryKeys[field.String()] {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Code:     CodeInvalidKey,
				Message:  fmt.Sprintf("%s: entry %s has unknown field %q", doc, at, field.String()),
			})
		}
		return true
	})
	if entry.IsZero() {
		issues = append(issues, blankEntry(doc, at))
	}
	return entry, issues, nil
}

func blankEntry(doc, at string) Issue {
	return Issue{
		Severity: SeverityWarning,
		Code:     CodeMissingEntry,
		Message:  fmt.Sprintf("%s: entry %s has no text; it will be unavailable", doc, at),
	}
}

func invalidKey(doc, key string, err error) Issue {
	return Issue{
		Severity: SeverityWarning,
		Code:     CodeInvalidKey,
		Message:  fmt.Sprintf("%s: skipping key %q: %v", doc, key, err),
	}
}
