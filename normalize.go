package episodic

import (
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"
	"golang.org/x/text/unicode/norm"
)

// nonWord matches everything that is neither a word character nor whitespace.
var nonWord = regexp.MustCompile(`[^\w\s]`)

// A Normalizer prepares episode text for lexicon scoring: NFC normalization,
// lowercasing, punctuation stripping, a stop-phrase check, then tokenize and
// rejoin on single spaces. Normalization is idempotent: running it twice on
// the same text yields the same string.
type Normalizer struct {
	lang      Language
	tokenizer Tokenizer
}

// NewNormalizer constructs a normalizer for the given language.
func NewNormalizer(lang Language, opts ...TokenizerOptFunc) *Normalizer {
	return &Normalizer{
		lang:      lang,
		tokenizer: NewWordTokenizer(opts...),
	}
}

// Normalize cleans one episode's text. The boolean reports whether the text
// survived the stop-phrase filter; stopword-only episodes return ("", false)
// and are dropped from scoring.
func (n *Normalizer) Normalize(text string) (string, bool) {
	cleaned := norm.NFC.String(text)
	cleaned = strings.ToLower(cleaned)
	cleaned = nonWord.ReplaceAllString(cleaned, "")

	if n.IsStopPhrase(cleaned) {
		return "", false
	}

	return strings.Join(n.tokenizer.Tokenize(cleaned), " "), true
}

// NormalizeAll cleans every episode, carrying the group index and episode ID
// with each result so later stages join each text back to exactly the group it
// came from. Episodes whose text is entirely stopwords are omitted; the
// returned slice may be shorter than the input.
func (n *Normalizer) NormalizeAll(episodes []Episode) []CleanText {
	cleaned := make([]CleanText, 0, len(episodes))
	for i, ep := range episodes {
		text, ok := n.Normalize(ep.Text)
		if !ok {
			continue
		}
		cleaned = append(cleaned, CleanText{EpisodeID: ep.ID, Group: i, Text: text})
	}
	return cleaned
}

// IsStopPhrase reports whether nothing of the text survives stopword
// filtering. Multi-word dialogue essentially never trips this; it exists for
// degenerate entries like a line consisting only of "the".
func (n *Normalizer) IsStopPhrase(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	return strings.TrimSpace(stopwords.CleanString(text, string(n.lang), false)) == ""
}
