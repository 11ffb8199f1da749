package episodic

import (
	"testing"
)

func TestSegment(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	if err != nil {
		t.Fatalf("new segmenter: %v", err)
	}

	tests := []struct {
		name string
		text string
		want int
	}{
		{"two sentences", "Water. Earth. ", 2},
		{"question and exclamation", "Where is he? Right here!", 2},
		{"single", "One long thought with no terminal break", 1},
		{"empty", "", 0},
		{"abbreviation", "Mr. Lee arrived. He sat down.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seg.Segment(tt.text)
			if len(got) != tt.want {
				t.Errorf("got %d sentences %q, want %d", len(got), got, tt.want)
			}
		})
	}
}

func TestSegmentTrimsWhitespace(t *testing.T) {
	seg, err := NewSentenceSegmenter()
	if err != nil {
		t.Fatalf("new segmenter: %v", err)
	}
	for _, s := range seg.Segment("  First thing.   Second thing.  ") {
		if s != "First thing." && s != "Second thing." {
			t.Errorf("sentence not trimmed: %q", s)
		}
	}
}
