package assessment

import (
	"errors"
	"fmt"

	"github.com/NeyGuaiume2/sdisc/internal/interpretation"
	"github.com/NeyGuaiume2/sdisc/internal/logging"
	"github.com/NeyGuaiume2/sdisc/internal/refdata"
	"github.com/NeyGuaiume2/sdisc/internal/scoring"
	"github.com/NeyGuaiume2/sdisc/internal/types"
	"go.uber.org/zap"
)

// Engine scores submissions against a reference data store.
// It keeps no per-request state and is safe for concurrent use.
type Engine struct {
	store       *refdata.Store
	resolver    *scoring.WordResolver
	aggregator  *scoring.Aggregator
	interpreter *interpretation.Resolver
	bands       scoring.Bands
	logger      *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger used by every pipeline stage.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logging.OrNop(logger)
	}
}

// WithBands sets the tier bands. The default is scoring.StandardBands.
func WithBands(bands scoring.Bands) Option {
	return func(e *Engine) {
		e.bands = bands
	}
}

// Outcome is the full output of one evaluation
type Outcome struct {
	Profile types.Profile
	Report  scoring.Report
	Result  *types.Result
}

// New builds an Engine over store.
func New(store *refdata.Store, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, errors.New("reference data store is required")
	}

	e := &Engine{
		store:  store,
		bands:  scoring.StandardBands,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.bands.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tier bands: %w", err)
	}

	e.resolver = scoring.NewWordResolver(store, e.logger)
	e.aggregator = scoring.NewAggregator(e.resolver, e.logger)
	e.interpreter = interpretation.NewResolver(store, e.logger)

	return e, nil
}

// Store returns the reference data the engine scores against.
func (e *Engine) Store() *refdata.Store {
	return e.store
}

// Bands returns the tier bands in use.
func (e *Engine) Bands() scoring.Bands {
	return e.bands
}

// Evaluate scores answers and assembles the result.
// Only a total input failure is returned as an error; it matches scoring.ErrTotalInputFailure.
func (e *Engine) Evaluate(answers []types.Answer) (*types.Result, error) {
	out, err := e.evaluate(answers, 0)
	if err != nil {
		return nil, err
	}
	return out.Result, nil
}

// EvaluateJSON decodes answers with types.DecodeAnswers and scores them.
// Elements that fail to decode count as skipped answers.
func (e *Engine) EvaluateJSON(raw []byte) (*types.Result, error) {
	out, err := e.EvaluateJSONOutcome(raw)
	if err != nil {
		return nil, err
	}
	return out.Result, nil
}

// EvaluateJSONOutcome is EvaluateJSON returning the intermediate profile and report as well.
// When err matches scoring.ErrTotalInputFailure the returned Outcome still carries the report.
func (e *Engine) EvaluateJSONOutcome(raw []byte) (Outcome, error) {
	answers, skipped, err := types.DecodeAnswers(raw)
	if err != nil {
		return Outcome{}, fmt.Errorf("invalid answers payload: %w", err)
	}
	return e.evaluate(answers, skipped)
}

// EvaluateOutcome is Evaluate returning the intermediate profile and report as well.
func (e *Engine) EvaluateOutcome(answers []types.Answer) (Outcome, error) {
	return e.evaluate(answers, 0)
}

func (e *Engine) evaluate(answers []types.Answer, decodeSkipped int) (Outcome, error) {
	scores, report, err := e.aggregator.Aggregate(answers)
	report.Total += decodeSkipped
	report.Skipped += decodeSkipped

	if errors.Is(err, scoring.ErrNoAnswers) && decodeSkipped > 0 {
		err = scoring.ErrNoResolvableAnswers
	}
	if err != nil {
		e.logger.Info("assessment rejected",
			zap.Error(err),
			zap.Int("total", report.Total),
			zap.Int("skipped", report.Skipped))
		return Outcome{Report: report, Result: Unknown(report)}, err
	}

	profile := scoring.Classify(scores, e.bands)
	bundle := e.interpreter.ResolveProfile(profile)
	summary := interpretation.Summarize(profile, e.store)

	result := Assemble(profile, report, bundle, summary, integrityWarnings(report))

	e.logger.Debug("assessment evaluated",
		zap.String("primary", result.PrimaryProfile),
		zap.String("secondary", result.SecondaryProfile),
		zap.Bool("incomplete", result.Incomplete))

	return Outcome{Profile: profile, Report: report, Result: result}, nil
}

// integrityWarnings describes the ambiguous words the submitted picks resolved through.
func integrityWarnings(report scoring.Report) []string {
	var out []string
	for _, c := range report.Collisions {
		out = append(out, fmt.Sprintf("question %d: word %q is listed for axes %v", c.QuestionID, c.Word, c.Axes))
	}
	return out
}
