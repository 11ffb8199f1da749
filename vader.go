package episodic

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Empirically derived constants from the VADER rule set.
const (
	boostIncr = 0.293  // mean intensity increase for booster words
	boostDecr = -0.293 // mean intensity decrease for dampener words
	capsIncr  = 0.733  // mean intensity increase for ALLCAPS emphasis
	negScalar = -0.74  // valence multiplier under negation
	normAlpha = 15.0   // normalization denominator constant
)

var negationWords = map[string]struct{}{
	"aint": {}, "arent": {}, "cannot": {}, "cant": {}, "couldnt": {}, "darent": {},
	"didnt": {}, "doesnt": {}, "ain't": {}, "aren't": {}, "can't": {}, "couldn't": {},
	"daren't": {}, "didn't": {}, "doesn't": {}, "dont": {}, "hadnt": {}, "hasnt": {},
	"havent": {}, "isnt": {}, "mightnt": {}, "mustnt": {}, "neither": {}, "don't": {},
	"hadn't": {}, "hasn't": {}, "haven't": {}, "isn't": {}, "mightn't": {},
	"mustn't": {}, "neednt": {}, "needn't": {}, "never": {}, "none": {}, "nope": {},
	"nor": {}, "not": {}, "nothing": {}, "nowhere": {}, "oughtnt": {}, "shant": {},
	"shouldnt": {}, "uhuh": {}, "wasnt": {}, "werent": {}, "oughtn't": {},
	"shan't": {}, "shouldn't": {}, "uh-uh": {}, "wasn't": {}, "weren't": {},
	"without": {}, "wont": {}, "wouldnt": {}, "won't": {}, "wouldn't": {},
	"rarely": {}, "seldom": {}, "despite": {},
}

// Degree adverbs that boost or dampen the valence of the word they modify.
var boosterMap = map[string]float64{
	"absolutely": boostIncr, "amazingly": boostIncr, "awfully": boostIncr,
	"completely": boostIncr, "considerably": boostIncr, "decidedly": boostIncr,
	"deeply": boostIncr, "enormously": boostIncr, "entirely": boostIncr,
	"especially": boostIncr, "exceptionally": boostIncr, "extremely": boostIncr,
	"fabulously": boostIncr, "fully": boostIncr, "greatly": boostIncr,
	"highly": boostIncr, "hugely": boostIncr, "incredibly": boostIncr,
	"intensely": boostIncr, "majorly": boostIncr, "more": boostIncr,
	"most": boostIncr, "particularly": boostIncr, "purely": boostIncr,
	"quite": boostIncr, "really": boostIncr, "remarkably": boostIncr,
	"so": boostIncr, "substantially": boostIncr, "thoroughly": boostIncr,
	"totally": boostIncr, "tremendously": boostIncr, "uber": boostIncr,
	"unbelievably": boostIncr, "unusually": boostIncr, "utterly": boostIncr,
	"very": boostIncr,
	"almost": boostDecr, "barely": boostDecr, "hardly": boostDecr,
	"just enough": boostDecr, "kind of": boostDecr, "kinda": boostDecr,
	"kindof": boostDecr, "kind-of": boostDecr, "less": boostDecr,
	"little": boostDecr, "marginally": boostDecr, "occasionally": boostDecr,
	"partly": boostDecr, "scarcely": boostDecr, "slightly": boostDecr,
	"somewhat": boostDecr, "sort of": boostDecr, "sorta": boostDecr,
	"sortof": boostDecr, "sort-of": boostDecr,
}

// Idioms containing lexicon words whose literal word scores mislead.
var specialCaseIdioms = map[string]float64{
	"the shit": 3, "the bomb": 3, "bad ass": 1.5, "yeah right": -2,
	"kiss of death": -1.5, "cut the mustard": 2, "hand to mouth": -2,
	"back handed": -2,
}

// A SentimentIntensityAnalyzer assigns rule-based polarity scores to text.
// Construct it once and reuse it; the lexicon is loaded at construction.
type SentimentIntensityAnalyzer struct {
	lexicon map[string]float64
	idioms  map[string]float64
}

// NewSentimentIntensityAnalyzer creates an analyzer backed by the built-in
// intensity lexicon.
func NewSentimentIntensityAnalyzer() *SentimentIntensityAnalyzer {
	lexicon := make(map[string]float64, len(builtinIntensityLexicon))
	for word, measure := range builtinIntensityLexicon {
		lexicon[word] = measure
	}
	return &SentimentIntensityAnalyzer{
		lexicon: lexicon,
		idioms:  specialCaseIdioms,
	}
}

// NewSentimentIntensityAnalyzerWithExternal creates an analyzer whose
// built-in lexicon is extended (and overridden where words collide) by a
// tab-separated "word<TAB>measure" lexicon file.
func NewSentimentIntensityAnalyzerWithExternal(path string) (*SentimentIntensityAnalyzer, error) {
	sia := NewSentimentIntensityAnalyzer()
	external, err := loadIntensityLexicon(path)
	if err != nil {
		return nil, err
	}
	for word, measure := range external {
		sia.lexicon[word] = measure
	}
	return sia, nil
}

// sentiText is the analyzer's working view of one input: its word tokens and
// whether capitalization differs across them (the ALLCAPS emphasis signal).
type sentiText struct {
	words     []string
	isCapDiff bool
}

func newSentiText(text string) sentiText {
	words := wordsAndEmoticons(text)
	return sentiText{words: words, isCapDiff: allCapDifferential(words)}
}

// wordsAndEmoticons splits text into words, dropping single-character tokens
// and peeling punctuation fringe off everything that is not an emoticon.
func wordsAndEmoticons(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		if utf8.RuneCountInString(field) <= 1 {
			continue
		}
		if _, ok := emoticonSet[field]; ok {
			words = append(words, field)
			continue
		}
		trimmed := strings.TrimFunc(field, unicode.IsPunct)
		if utf8.RuneCountInString(trimmed) > 1 {
			words = append(words, trimmed)
			continue
		}
		words = append(words, field)
	}
	return words
}

// allCapDifferential reports whether some but not all words are ALLCAPS.
func allCapDifferential(words []string) bool {
	allcap := 0
	for _, word := range words {
		if word == strings.ToUpper(word) {
			allcap++
		}
	}
	diff := len(words) - allcap
	return diff > 0 && diff < len(words)
}

// negated reports whether any of the words is a negation.
func negated(words []string) bool {
	for i, word := range words {
		lower := strings.ToLower(word)
		if _, ok := negationWords[lower]; ok {
			return true
		}
		if strings.Contains(lower, "n't") {
			return true
		}
		if lower == "least" && (i == 0 || strings.ToLower(words[i-1]) != "at") {
			return true
		}
	}
	return false
}

// normalizeScore maps an unbounded valence sum into [-1, 1].
func normalizeScore(score float64) float64 {
	normalized := score / math.Sqrt(score*score+normAlpha)
	return math.Max(-1, math.Min(1, normalized))
}

// scalarIncDec returns the boost a preceding word contributes to a valence.
func scalarIncDec(word string, valence float64, isCapDiff bool) float64 {
	lower := strings.ToLower(word)
	s, ok := boosterMap[lower]
	if !ok {
		return 0
	}
	if valence < 0 {
		s = -s
	}
	if isCapDiff && word == strings.ToUpper(word) {
		if valence > 0 {
			s += capsIncr
		} else {
			s -= capsIncr
		}
	}
	return s
}

// PolarityScores computes negative/neutral/positive proportions and the
// normalized compound score for text.
func (sia *SentimentIntensityAnalyzer) PolarityScores(text string) PolarityScore {
	st := newSentiText(text)

	sentiments := make([]float64, 0, len(st.words))
	for i, word := range st.words {
		lower := strings.ToLower(word)

		// Boosters and the leading half of "kind of" carry no valence of
		// their own; they only modify neighbors.
		if _, ok := boosterMap[lower]; ok {
			sentiments = append(sentiments, 0)
			continue
		}
		if lower == "kind" && i+1 < len(st.words) && strings.ToLower(st.words[i+1]) == "of" {
			sentiments = append(sentiments, 0)
			continue
		}

		sentiments = append(sentiments, sia.wordValence(st, i))
	}

	sentiments = butCheck(st.words, sentiments)
	return sia.scoreValence(sentiments, text)
}

// wordValence resolves the valence of the word at position i, applying caps
// emphasis, preceding boosters, negation, idiom and "least" checks.
func (sia *SentimentIntensityAnalyzer) wordValence(st sentiText, i int) float64 {
	word := st.words[i]
	lower := strings.ToLower(word)

	valence, ok := sia.lexicon[lower]
	if !ok {
		return 0
	}

	if st.isCapDiff && word == strings.ToUpper(word) {
		if valence > 0 {
			valence += capsIncr
		} else {
			valence -= capsIncr
		}
	}

	// Walk up to three preceding words. Boosters further away contribute
	// less; negation anywhere in the window flips and weakens the valence.
	for dist := 0; dist <= 2; dist++ {
		if i <= dist {
			continue
		}
		prev := st.words[i-(dist+1)]
		if _, inLexicon := sia.lexicon[strings.ToLower(prev)]; inLexicon {
			continue
		}
		s := scalarIncDec(prev, valence, st.isCapDiff)
		if dist == 1 && s != 0 {
			s *= 0.95
		}
		if dist == 2 && s != 0 {
			s *= 0.9
		}
		valence += s
		valence = negationCheck(valence, st.words, dist, i)
		if dist == 2 {
			valence = sia.idiomsCheck(valence, st.words, i)
		}
	}

	return leastCheck(valence, st.words, i, sia.lexicon)
}

// negationCheck adjusts valence for negations at the given distance before i.
func negationCheck(valence float64, words []string, dist, i int) float64 {
	lower := func(j int) string { return strings.ToLower(words[j]) }

	switch dist {
	case 0:
		if negated([]string{lower(i - 1)}) {
			valence *= negScalar
		}
	case 1:
		if lower(i-2) == "never" && (lower(i-1) == "so" || lower(i-1) == "this") {
			valence *= 1.25
		} else if lower(i-2) == "without" && lower(i-1) == "doubt" {
			// "without doubt" is emphasis, not negation
		} else if negated([]string{lower(i - 2)}) {
			valence *= negScalar
		}
	case 2:
		if lower(i-3) == "never" && (lower(i-2) == "so" || lower(i-2) == "this" || lower(i-1) == "so" || lower(i-1) == "this") {
			valence *= 1.25
		} else if lower(i-3) == "without" && (lower(i-2) == "doubt" || lower(i-1) == "doubt") {
			// as above
		} else if negated([]string{lower(i - 3)}) {
			valence *= negScalar
		}
	}

	return valence
}

// leastCheck handles "least X" as negation unless preceded by "at"/"very".
func leastCheck(valence float64, words []string, i int, lexicon map[string]float64) float64 {
	if i == 0 {
		return valence
	}
	prev := strings.ToLower(words[i-1])
	if _, inLexicon := lexicon[prev]; inLexicon || prev != "least" {
		return valence
	}
	if i > 1 {
		before := strings.ToLower(words[i-2])
		if before == "at" || before == "very" {
			return valence
		}
	}
	return valence * negScalar
}

// butCheck shifts weight across the contrastive conjunction "but": sentiment
// before it is halved, sentiment after it amplified.
func butCheck(words []string, sentiments []float64) []float64 {
	for bi, word := range words {
		if strings.ToLower(word) != "but" {
			continue
		}
		for si := range sentiments {
			if si < bi {
				sentiments[si] *= 0.5
			} else if si > bi {
				sentiments[si] *= 1.5
			}
		}
	}
	return sentiments
}

// idiomsCheck overrides valence when the surrounding words form a known idiom.
func (sia *SentimentIntensityAnalyzer) idiomsCheck(valence float64, words []string, i int) float64 {
	lower := make([]string, len(words))
	for j, w := range words {
		lower[j] = strings.ToLower(w)
	}

	join := func(js ...int) string {
		parts := make([]string, len(js))
		for k, j := range js {
			parts[k] = lower[j]
		}
		return strings.Join(parts, " ")
	}

	sequences := []string{
		join(i-1, i),
		join(i-2, i-1, i),
		join(i-2, i-1),
	}
	if i >= 3 {
		sequences = append(sequences, join(i-3, i-2, i-1), join(i-3, i-2))
	}
	for _, seq := range sequences {
		if v, ok := sia.idioms[seq]; ok {
			valence = v
			break
		}
	}

	if i+1 < len(lower) {
		if v, ok := sia.idioms[join(i, i+1)]; ok {
			valence = v
		}
	}
	if i+2 < len(lower) {
		if v, ok := sia.idioms[join(i, i+1, i+2)]; ok {
			valence = v
		}
	}

	// Booster bi-grams such as "sort of" preceding the word.
	grams := []string{join(i-2, i-1)}
	if i >= 3 {
		grams = append(grams, join(i-3, i-2, i-1), join(i-3, i-2))
	}
	for _, gram := range grams {
		if v, ok := boosterMap[gram]; ok {
			valence += v
		}
	}

	return valence
}

var (
	exclamationRE = regexp.MustCompile(`!`)
	questionRE    = regexp.MustCompile(`\?`)
)

// punctuationEmphasis measures added intensity from ! and ? in the raw text.
func punctuationEmphasis(text string) float64 {
	epCount := len(exclamationRE.FindAllStringIndex(text, -1))
	if epCount > 4 {
		epCount = 4
	}
	amplifier := float64(epCount) * 0.292

	qmCount := len(questionRE.FindAllStringIndex(text, -1))
	if qmCount > 1 {
		if qmCount <= 3 {
			amplifier += float64(qmCount) * 0.18
		} else {
			amplifier += 0.96
		}
	}
	return amplifier
}

// siftSentimentScores separates positive, negative and neutral word scores.
// The ±1 offsets compensate for neutral words, which each count as 1.
func siftSentimentScores(sentiments []float64) (posSum, negSum float64, neuCount int) {
	for _, sentiment := range sentiments {
		switch {
		case sentiment > 0:
			posSum += sentiment + 1
		case sentiment < 0:
			negSum += sentiment - 1
		default:
			neuCount++
		}
	}
	return posSum, negSum, neuCount
}

func (sia *SentimentIntensityAnalyzer) scoreValence(sentiments []float64, text string) PolarityScore {
	if len(sentiments) == 0 {
		return PolarityScore{}
	}

	sum := floats.Sum(sentiments)
	amplifier := punctuationEmphasis(text)
	if sum > 0 {
		sum += amplifier
	} else if sum < 0 {
		sum -= amplifier
	}
	compound := normalizeScore(sum)

	posSum, negSum, neuCount := siftSentimentScores(sentiments)
	if posSum > math.Abs(negSum) {
		posSum += amplifier
	} else if posSum < math.Abs(negSum) {
		negSum -= amplifier
	}

	total := posSum + math.Abs(negSum) + float64(neuCount)
	if total == 0 {
		return PolarityScore{}
	}

	return PolarityScore{
		Negative: scalar.Round(math.Abs(negSum/total), 3),
		Neutral:  scalar.Round(math.Abs(float64(neuCount)/total), 3),
		Positive: scalar.Round(math.Abs(posSum/total), 3),
		Compound: scalar.Round(compound, 4),
	}
}
