package episodic

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureCSV = `id,book_num,chapter_num,imdb_rating,character_words
1,1,1,8.5,"Hello world. "
2,1,1,8.5,"More words."
3,1,2,9.0,"Goodbye world."
4,2,1,NA,"Unaired episode."
5,2,2,,"Also unrated."
`

func TestParseLines(t *testing.T) {
	lines, skipped, err := parseLines(strings.NewReader(fixtureCSV))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if skipped != 2 {
		t.Errorf("got %d skipped, want 2", skipped)
	}

	first := lines[0]
	if first.Season != 1 || first.Chapter != 1 || first.Rating != 8.5 {
		t.Errorf("unexpected first line: %+v", first)
	}
	if first.Text != "Hello world. " {
		t.Errorf("text not preserved verbatim: %q", first.Text)
	}
}

func TestParseLinesMissingColumn(t *testing.T) {
	_, _, err := parseLines(strings.NewReader("book_num,chapter_num,imdb_rating\n1,1,8.5\n"))
	if !errors.Is(err, ErrMalformedDataset) {
		t.Fatalf("got %v, want ErrMalformedDataset", err)
	}
}

func TestParseLinesBadNumber(t *testing.T) {
	csv := "book_num,chapter_num,imdb_rating,character_words\none,1,8.5,hi\n"
	_, _, err := parseLines(strings.NewReader(csv))
	if !errors.Is(err, ErrMalformedDataset) {
		t.Fatalf("got %v, want ErrMalformedDataset", err)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	src := &FileSource{Path: path}
	lines, err := src.Lines(context.Background())
	if err != nil {
		t.Fatalf("lines: %v", err)
	}
	if len(lines) != 3 {
		t.Errorf("got %d lines, want 3", len(lines))
	}
	if src.Skipped != 2 {
		t.Errorf("got %d skipped, want 2", src.Skipped)
	}
}

func TestFileSourceMissing(t *testing.T) {
	src := &FileSource{Path: filepath.Join(t.TempDir(), "absent.csv")}
	if _, err := src.Lines(context.Background()); !errors.Is(err, ErrFetch) {
		t.Fatalf("got %v, want ErrFetch", err)
	}
}
