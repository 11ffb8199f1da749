package episodic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// DefaultDatasetURL is the dialogue dataset analyzed when no source is
// configured.
const DefaultDatasetURL = "https://raw.githubusercontent.com/austinminihan/IAA_TextAnalyticsProject/refs/heads/main/avatar.csv"

// DefaultSummaryPath is where the episode aggregation table is written when
// no sink is configured.
const DefaultSummaryPath = "new.df.csv"

// A PipelineOpt represents a setting that changes pipeline construction.
//
// For example, it might supply a fixture source:
//
//	p, err := episodic.NewPipeline(episodic.WithSource(src))
type PipelineOpt func(*pipelineOpts)

type pipelineOpts struct {
	source      Source
	sink        Sink
	logger      *slog.Logger
	lang        Language
	lexiconPath string
	normsPath   string
	preview     bool
}

// WithSource supplies the dialogue line source.
func WithSource(src Source) PipelineOpt {
	return func(o *pipelineOpts) { o.source = src }
}

// WithSink supplies the destination for the episode aggregation table.
func WithSink(sink Sink) PipelineOpt {
	return func(o *pipelineOpts) { o.sink = sink }
}

// WithLogger supplies a structured logger. The default discards nothing and
// writes through slog's default handler.
func WithLogger(logger *slog.Logger) PipelineOpt {
	return func(o *pipelineOpts) { o.logger = logger }
}

// WithLanguage sets the stopword language.
func WithLanguage(lang Language) PipelineOpt {
	return func(o *pipelineOpts) { o.lang = lang }
}

// WithExternalLexicon loads an external intensity lexicon over the built-in.
func WithExternalLexicon(path string) PipelineOpt {
	return func(o *pipelineOpts) { o.lexiconPath = path }
}

// WithAffectNorms loads external affective norms over the built-in.
func WithAffectNorms(path string) PipelineOpt {
	return func(o *pipelineOpts) { o.normsPath = path }
}

// WithPreview enables the per-sentence diagnostic preview of the first
// cleaned episode, logged at debug level.
func WithPreview(enable bool) PipelineOpt {
	return func(o *pipelineOpts) { o.preview = enable }
}

// A Pipeline runs the five analysis stages: load, aggregate, normalize,
// score, merge. Analyzers and lexicons are constructed once here and reused
// across runs.
type Pipeline struct {
	source     Source
	sink       Sink
	logger     *slog.Logger
	normalizer *Normalizer
	polarity   *SentimentIntensityAnalyzer
	affect     *AffectRater
	segmenter  *SentenceSegmenter
	preview    bool
}

// NewPipeline creates a pipeline according to the user-specified options.
func NewPipeline(opts ...PipelineOpt) (*Pipeline, error) {
	base := pipelineOpts{
		lang:    English,
		preview: false,
	}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	if base.source == nil {
		base.source = NewHTTPSource(DefaultDatasetURL)
	}
	if base.sink == nil {
		base.sink = &CSVSink{Path: DefaultSummaryPath}
	}
	if base.logger == nil {
		base.logger = slog.Default()
	}

	polarity := NewSentimentIntensityAnalyzer()
	if base.lexiconPath != "" {
		var err error
		polarity, err = NewSentimentIntensityAnalyzerWithExternal(base.lexiconPath)
		if err != nil {
			return nil, err
		}
	}

	affect := NewAffectRater()
	if base.normsPath != "" {
		var err error
		affect, err = NewAffectRaterWithExternal(base.normsPath)
		if err != nil {
			return nil, err
		}
	}

	segmenter, err := NewSentenceSegmenter()
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		source:     base.source,
		sink:       base.sink,
		logger:     base.logger,
		normalizer: NewNormalizer(base.lang),
		polarity:   polarity,
		affect:     affect,
		segmenter:  segmenter,
		preview:    base.preview,
	}, nil
}

// Run executes the pipeline and returns the final analysis table, one row
// per scored episode.
func (p *Pipeline) Run(ctx context.Context) ([]Row, error) {
	lines, err := p.source.Lines(ctx)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("load: %w", ErrEmptyDataset)
	}
	p.logger.Info("dataset loaded", "lines", len(lines))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	episodes, err := Aggregate(lines)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	p.logger.Info("episodes aggregated", "episodes", len(episodes))

	if err := p.sink.Write(ctx, episodes); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned := p.normalizer.NormalizeAll(episodes)
	if dropped := len(episodes) - len(cleaned); dropped > 0 {
		p.logger.Warn("episodes dropped as stop phrases", "dropped", dropped)
	}

	if p.preview && len(cleaned) > 0 {
		p.previewSentences(cleaned[0])
	}

	rows, err := p.score(episodes, cleaned)
	if err != nil {
		return nil, err
	}
	p.logger.Info("analysis complete", "rows", len(rows))
	return rows, nil
}

// score computes polarity and affect per cleaned episode and merges the
// results with episode metadata, joining on the aggregated group index. The
// index is validated against the episode ID: a cleaned entry pointing at a
// group it did not come from means the stages have drifted apart and is
// reported instead of silently corrupting the table. The episode ID alone
// cannot serve as the join key because duplicate (season, chapter) groups
// with different ratings share it.
func (p *Pipeline) score(episodes []Episode, cleaned []CleanText) ([]Row, error) {
	rows := make([]Row, 0, len(cleaned))
	for _, ct := range cleaned {
		if ct.Group < 0 || ct.Group >= len(episodes) || episodes[ct.Group].ID != ct.EpisodeID {
			return nil, fmt.Errorf("score: episode %s: %w", ct.EpisodeID, ErrMisaligned)
		}
		ep := episodes[ct.Group]

		polarity := p.polarity.PolarityScores(ct.Text)
		terms := strings.Fields(ct.Text)
		affect := p.affect.Rate(terms)

		rows = append(rows, Row{
			ID:          len(rows),
			EpisodeID:   ep.ID,
			Negative:    polarity.Negative,
			Neutral:     polarity.Neutral,
			Positive:    polarity.Positive,
			Compound:    polarity.Compound,
			Text:        ct.Text,
			Arousal:     affect.Arousal,
			Valence:     affect.Valence,
			Description: affect.Describe(),
			Rating:      ep.Rating,
			Season:      ep.Season,
		})
	}
	return rows, nil
}

// previewSentences logs per-sentence compounds for one episode. Diagnostic
// only; nothing downstream consumes these scores.
func (p *Pipeline) previewSentences(ct CleanText) {
	for _, sentence := range p.segmenter.Segment(ct.Text) {
		score := p.polarity.PolarityScores(sentence)
		p.logger.Debug("sentence preview",
			"episode", ct.EpisodeID,
			"sentence", sentence,
			"compound", score.Compound,
		)
	}
}
