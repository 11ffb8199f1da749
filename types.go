package episodic

import "fmt"

// A LineRecord represents a single line of dialogue from the source dataset,
// tagged with the episode it belongs to.
type LineRecord struct {
	Season  int     // Season (book) number
	Chapter int     // Chapter (episode) number within the season
	Rating  float64 // Audience rating for the episode
	Text    string  // The raw spoken words for this line
}

// An Episode represents all dialogue for one (season, chapter, rating) group.
type Episode struct {
	ID      string  // Derived "season-chapter" identifier
	Season  int     // Season number
	Chapter int     // Chapter number
	Rating  float64 // Audience rating
	Text    string  // All dialogue concatenated in source order
}

// EpisodeID formats a season/chapter pair the way the dataset does: "1-7".
func EpisodeID(season, chapter int) string {
	return fmt.Sprintf("%d-%d", season, chapter)
}

// A CleanText pairs a normalized episode string with the aggregated group it
// came from. Group indexes the aggregation output, which keeps duplicate
// (season, chapter) groups with different ratings distinct; EpisodeID repeats
// the group's "season-chapter" key for logging and display.
type CleanText struct {
	EpisodeID string
	Group     int
	Text      string
}

// A PolarityScore holds the four rule-based polarity measures for a text.
// Negative, Neutral and Positive are proportions in [0, 1]; Compound is the
// normalized composite in [-1, 1].
type PolarityScore struct {
	Negative float64
	Neutral  float64
	Positive float64
	Compound float64
}

// An AffectScore holds lexicon-derived affective ratings on a 1-9 scale,
// where 5 is the neutral midpoint.
type AffectScore struct {
	Valence float64 // Pleasantness: 1 unpleasant, 9 pleasant
	Arousal float64 // Activation: 1 calm, 9 excited
}

// A Row is one line of the final analysis table: per-episode polarity and
// affect joined with the episode's metadata.
type Row struct {
	ID          int     // Positional row index, 0-based
	EpisodeID   string  // "season-chapter" key the stages were joined on
	Negative    float64 // Polarity proportions
	Neutral     float64
	Positive    float64
	Compound    float64
	Text        string // Normalized dialogue the scores were computed from
	Arousal     float64
	Valence     float64
	Description string // Categorical affect label
	Rating      float64
	Season      int
}

// Language identifies the stopword list and lexicons to use.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
)
