package episodic

import (
	"strings"
	"unicode/utf8"
)

// A Tokenizer splits text into word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// wordTokenizer splits a cleaned episode string into words. It preserves
// emoticons and contractions intact, since the polarity lexicon scores both,
// and peels leading/trailing punctuation off everything else.
type wordTokenizer struct {
	sanitizer *strings.Replacer
	suffixes  []string
	prefixes  []string
	emoticons map[string]struct{}
}

// TokenizerOptFunc configures a tokenizer under construction.
type TokenizerOptFunc func(*wordTokenizer)

// UsingEmoticons replaces the set of tokens treated as unsplittable emoticons.
func UsingEmoticons(set map[string]struct{}) TokenizerOptFunc {
	return func(t *wordTokenizer) {
		t.emoticons = set
	}
}

// UsingSanitizer replaces the character sanitizer applied before splitting.
func UsingSanitizer(r *strings.Replacer) TokenizerOptFunc {
	return func(t *wordTokenizer) {
		t.sanitizer = r
	}
}

// NewWordTokenizer constructs the default tokenizer.
func NewWordTokenizer(opts ...TokenizerOptFunc) Tokenizer {
	tok := &wordTokenizer{
		sanitizer: wordSanitizer,
		suffixes:  []string{",", ")", `"`, "]", ";", ":", "'"},
		prefixes:  []string{"$", "(", `"`, "["},
		emoticons: emoticonSet,
	}
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	return tok
}

// Tokenize splits text on whitespace and strips punctuation fringe from each
// field. Terminal ! and ? are kept attached: the polarity scorer reads them
// as emphasis.
func (t *wordTokenizer) Tokenize(text string) []string {
	fields := strings.Fields(t.sanitizer.Replace(text))

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, t.split(field)...)
	}
	return tokens
}

func (t *wordTokenizer) split(token string) []string {
	var tokens, suffs []string

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if _, found := t.emoticons[token]; found {
			// Emoticons pass through whole; peeling ")" off ":)" would
			// destroy it.
			tokens = append(tokens, token)
			return append(tokens, suffs...)
		}
		last = utf8.RuneCountInString(token)
		switch {
		case hasAnyPrefix(token, t.prefixes):
			tokens = append(tokens, string(token[0]))
			token = token[1:]
		case hasAnySuffix(token, t.suffixes):
			suffs = append([]string{string(token[len(token)-1])}, suffs...)
			token = token[:len(token)-1]
		default:
			tokens = append(tokens, token)
		}
	}

	return append(tokens, suffs...)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

var wordSanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")

var emoticonSet = map[string]struct{}{
	"(-:":  {},
	"(:":   {},
	"(=":   {},
	"8-)":  {},
	"8-D":  {},
	":(":   {},
	":((":  {},
	":)":   {},
	":))":  {},
	":-(":  {},
	":-)":  {},
	":-*":  {},
	":-/":  {},
	":-D":  {},
	":-P":  {},
	":-|":  {},
	":/":   {},
	":D":   {},
	":P":   {},
	":[":   {},
	":]":   {},
	":`(":  {},
	":`)":  {},
	":o)":  {},
	":|":   {},
	";)":   {},
	";-)":  {},
	"=(":   {},
	"=)":   {},
	"=D":   {},
	"=|":   {},
	"D:":   {},
	"xD":   {},
	"<3":   {},
	"</3":  {},
	":'(":  {},
	":')":  {},
}
