package episodic

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestPolarityScoreRanges(t *testing.T) {
	texts := []string{
		"the book was good",
		"the book was not good",
		"this is absolutely terrible",
		"i love this so much",
		"hello world",
		"war death destruction everywhere",
		"what a wonderful happy day",
	}

	sia := NewSentimentIntensityAnalyzer()

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			score := sia.PolarityScores(text)

			for name, v := range map[string]float64{
				"negative": score.Negative,
				"neutral":  score.Neutral,
				"positive": score.Positive,
			} {
				if v < 0 || v > 1 {
					t.Errorf("%s score %v outside [0,1]", name, v)
				}
			}
			if score.Compound < -1 || score.Compound > 1 {
				t.Errorf("compound %v outside [-1,1]", score.Compound)
			}
			if sum := score.Negative + score.Neutral + score.Positive; math.Abs(sum-1) > 0.01 {
				t.Errorf("proportions sum to %v, want ~1", sum)
			}
		})
	}
}

func TestPolarityScoresSign(t *testing.T) {
	tests := []struct {
		text string
		want int // sign of the expected compound
		desc string
	}{
		{"the book was good", 1, "positive word"},
		{"the book was terrible", -1, "negative word"},
		{"hello world", 0, "no lexicon words"},
		{"goodbye world", 0, "no lexicon words either"},
		{"the book was not good", -1, "negated positive"},
		{"i do not hate this", 1, "negated negative"},
		{"the plot was good but the dialog was horrible", -1, "contrastive but favors later clause"},
		{"", 0, "empty text"},
	}

	sia := NewSentimentIntensityAnalyzer()

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := sia.PolarityScores(tt.text).Compound
			switch {
			case tt.want > 0 && got <= 0.05:
				t.Errorf("compound for %q = %v, want positive", tt.text, got)
			case tt.want < 0 && got >= -0.05:
				t.Errorf("compound for %q = %v, want negative", tt.text, got)
			case tt.want == 0 && math.Abs(got) > 0.1:
				t.Errorf("compound for %q = %v, want near zero", tt.text, got)
			}
		})
	}
}

func TestBoosterRaisesIntensity(t *testing.T) {
	sia := NewSentimentIntensityAnalyzer()

	plain := sia.PolarityScores("the plan was good").Compound
	boosted := sia.PolarityScores("the plan was very good").Compound
	if boosted <= plain {
		t.Errorf("booster did not raise compound: plain %v, boosted %v", plain, boosted)
	}

	dampened := sia.PolarityScores("the plan was slightly good").Compound
	if dampened >= plain {
		t.Errorf("dampener did not lower compound: plain %v, dampened %v", plain, dampened)
	}
}

func TestCapsEmphasis(t *testing.T) {
	sia := NewSentimentIntensityAnalyzer()

	plain := sia.PolarityScores("this is good news").Compound
	shouted := sia.PolarityScores("this is GOOD news").Compound
	if shouted <= plain {
		t.Errorf("ALLCAPS did not raise compound: plain %v, shouted %v", plain, shouted)
	}
}

func TestPunctuationEmphasis(t *testing.T) {
	sia := NewSentimentIntensityAnalyzer()

	plain := sia.PolarityScores("the rescue was great").Compound
	excited := sia.PolarityScores("the rescue was great!!!").Compound
	if excited <= plain {
		t.Errorf("exclamation points did not raise compound: plain %v, excited %v", plain, excited)
	}
}

func TestEmoticonsScore(t *testing.T) {
	sia := NewSentimentIntensityAnalyzer()

	if got := sia.PolarityScores("see you tomorrow :)").Compound; got <= 0 {
		t.Errorf("positive emoticon scored %v, want > 0", got)
	}
	if got := sia.PolarityScores("see you tomorrow :(").Compound; got >= 0 {
		t.Errorf("negative emoticon scored %v, want < 0", got)
	}
}

func TestExternalLexiconOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.txt")
	content := "# custom entries\nflameo\t2.4\ngood\t-3.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	sia, err := NewSentimentIntensityAnalyzerWithExternal(path)
	if err != nil {
		t.Fatalf("load external lexicon: %v", err)
	}

	if got := sia.PolarityScores("flameo hotman").Compound; got <= 0 {
		t.Errorf("external word scored %v, want > 0", got)
	}
	// The external file flips "good" negative; the override must win.
	if got := sia.PolarityScores("that was good").Compound; got >= 0 {
		t.Errorf("overridden word scored %v, want < 0", got)
	}
}

func TestExternalLexiconMissingFile(t *testing.T) {
	if _, err := NewSentimentIntensityAnalyzerWithExternal(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing lexicon file")
	}
}
