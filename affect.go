package episodic

import (
	"gonum.org/v1/gonum/stat"
)

// affectMidpoint is the neutral point of the 1-9 affective rating scale.
const affectMidpoint = 5.0

// affectBand is the half-width of the neutral dead zone around the midpoint
// used when describing a score.
const affectBand = 0.25

// An AffectRater scores text against a table of per-word affective norms
// (valence and arousal on a 1-9 scale). Construct it once; the norms are
// loaded at construction and reused per call.
type AffectRater struct {
	norms map[string]AffectScore
}

// NewAffectRater creates a rater backed by the built-in affective norms.
func NewAffectRater() *AffectRater {
	norms := make(map[string]AffectScore, len(builtinAffectNorms))
	for word, score := range builtinAffectNorms {
		norms[word] = score
	}
	return &AffectRater{norms: norms}
}

// NewAffectRaterWithExternal creates a rater whose built-in norms are
// extended (and overridden where words collide) by a tab-separated
// "word<TAB>valence<TAB>arousal" file.
func NewAffectRaterWithExternal(path string) (*AffectRater, error) {
	rater := NewAffectRater()
	external, err := loadAffectNorms(path)
	if err != nil {
		return nil, err
	}
	for word, score := range external {
		rater.norms[word] = score
	}
	return rater, nil
}

// Rate averages the valence and arousal norms of every term found in the
// table. Terms absent from the table contribute nothing; if no term matches,
// both dimensions rate at the neutral midpoint.
func (r *AffectRater) Rate(terms []string) AffectScore {
	var valences, arousals []float64
	for _, term := range terms {
		if score, ok := r.norms[term]; ok {
			valences = append(valences, score.Valence)
			arousals = append(arousals, score.Arousal)
		}
	}
	if len(valences) == 0 {
		return AffectScore{Valence: affectMidpoint, Arousal: affectMidpoint}
	}
	return AffectScore{
		Valence: stat.Mean(valences, nil),
		Arousal: stat.Mean(arousals, nil),
	}
}

// Describe buckets the mean affect of terms into a categorical label:
// pleasant or unpleasant crossed with active or calm, with a neutral dead
// zone around the scale midpoint.
func (r *AffectRater) Describe(terms []string) string {
	return r.Rate(terms).Describe()
}

// Describe returns the categorical label for a score.
func (s AffectScore) Describe() string {
	var valence, arousal string

	switch {
	case s.Valence > affectMidpoint+affectBand:
		valence = "pleasant"
	case s.Valence < affectMidpoint-affectBand:
		valence = "unpleasant"
	}
	switch {
	case s.Arousal > affectMidpoint+affectBand:
		arousal = "active"
	case s.Arousal < affectMidpoint-affectBand:
		arousal = "calm"
	}

	switch {
	case valence == "" && arousal == "":
		return "neutral"
	case valence == "":
		return arousal
	case arousal == "":
		return valence
	default:
		return valence + "-" + arousal
	}
}
