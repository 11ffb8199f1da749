package episodic

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A SentenceSegmenter splits text into sentences. The pipeline uses it for
// the per-sentence diagnostic preview; episode scoring always operates on the
// whole string.
type SentenceSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSentenceSegmenter constructs a Punkt-trained English segmenter.
func NewSentenceSegmenter() (*SentenceSegmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load sentence tokenizer: %w", err)
	}
	return &SentenceSegmenter{tokenizer: tokenizer}, nil
}

// Segment returns the trimmed, non-empty sentences of text.
func (s *SentenceSegmenter) Segment(text string) []string {
	raw := s.tokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sentence := range raw {
		trimmed := strings.TrimSpace(sentence.Text)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
