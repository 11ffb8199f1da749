package episodic

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestAffectRate(t *testing.T) {
	rater := NewAffectRater()

	tests := []struct {
		name    string
		terms   []string
		valence float64
		arousal float64
	}{
		{"single word", []string{"love"}, 8.72, 6.44},
		{"mean of two", []string{"war", "peace"}, (2.08 + 7.72) / 2, (7.49 + 2.95) / 2},
		{"unknown ignored", []string{"zzxqy", "calm"}, 6.89, 2.97},
		{"all unknown", []string{"zzxqy", "qwfp"}, 5.0, 5.0},
		{"empty", nil, 5.0, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rater.Rate(tt.terms)
			if math.Abs(got.Valence-tt.valence) > 0.001 {
				t.Errorf("valence %.3f, want %.3f", got.Valence, tt.valence)
			}
			if math.Abs(got.Arousal-tt.arousal) > 0.001 {
				t.Errorf("arousal %.3f, want %.3f", got.Arousal, tt.arousal)
			}
		})
	}
}

func TestAffectDescribe(t *testing.T) {
	tests := []struct {
		name  string
		score AffectScore
		want  string
	}{
		{"pleasant active", AffectScore{Valence: 8.2, Arousal: 6.5}, "pleasant-active"},
		{"unpleasant active", AffectScore{Valence: 2.1, Arousal: 7.5}, "unpleasant-active"},
		{"pleasant calm", AffectScore{Valence: 7.7, Arousal: 3.0}, "pleasant-calm"},
		{"unpleasant calm", AffectScore{Valence: 2.5, Arousal: 4.0}, "unpleasant-calm"},
		{"neutral", AffectScore{Valence: 5.0, Arousal: 5.0}, "neutral"},
		{"dead zone edges", AffectScore{Valence: 5.2, Arousal: 4.8}, "neutral"},
		{"valence only", AffectScore{Valence: 8.0, Arousal: 5.1}, "pleasant"},
		{"arousal only", AffectScore{Valence: 5.0, Arousal: 2.0}, "calm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.score.Describe(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAffectRaterDescribeTerms(t *testing.T) {
	rater := NewAffectRater()
	if got := rater.Describe([]string{"war", "anger"}); got != "unpleasant-active" {
		t.Errorf("got %q, want unpleasant-active", got)
	}
}

func TestAffectExternalNorms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "norms.txt")
	content := "# custom norms\nsokka\t7.5\t6.0\nlove\t1.0\t1.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rater, err := NewAffectRaterWithExternal(path)
	if err != nil {
		t.Fatalf("load norms: %v", err)
	}

	got := rater.Rate([]string{"sokka"})
	if got.Valence != 7.5 || got.Arousal != 6.0 {
		t.Errorf("new word not loaded: %+v", got)
	}

	got = rater.Rate([]string{"love"})
	if got.Valence != 1.0 {
		t.Errorf("override not applied: %+v", got)
	}
}

func TestAffectExternalNormsMissing(t *testing.T) {
	if _, err := NewAffectRaterWithExternal(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing norms file")
	}
}
