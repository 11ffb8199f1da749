package episodic

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAggregateGrouping(t *testing.T) {
	lines := []LineRecord{
		{Season: 1, Chapter: 1, Rating: 8.5, Text: "Hello world. "},
		{Season: 1, Chapter: 1, Rating: 8.5, Text: "More words."},
		{Season: 1, Chapter: 2, Rating: 9.0, Text: "Goodbye world."},
		{Season: 2, Chapter: 1, Rating: 8.1, Text: "A new season."},
	}

	episodes, err := Aggregate(lines)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	// One output row per distinct (season, chapter, rating) key.
	if len(episodes) != 3 {
		t.Fatalf("got %d episodes, want 3", len(episodes))
	}

	if episodes[0].Text != "Hello world. More words." {
		t.Errorf("concatenated text = %q", episodes[0].Text)
	}

	wantIDs := []string{"1-1", "1-2", "2-1"}
	for i, want := range wantIDs {
		if episodes[i].ID != want {
			t.Errorf("episode %d ID = %q, want %q", i, episodes[i].ID, want)
		}
	}
}

func TestAggregateDuplicateKeyDifferentRating(t *testing.T) {
	// Same (season, chapter) but different ratings form separate groups;
	// the dataset does not promise key uniqueness.
	lines := []LineRecord{
		{Season: 1, Chapter: 1, Rating: 8.5, Text: "a"},
		{Season: 1, Chapter: 1, Rating: 7.0, Text: "b"},
	}

	episodes, err := Aggregate(lines)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("got %d episodes, want 2", len(episodes))
	}
	if episodes[0].ID != "1-1" || episodes[1].ID != "1-1" {
		t.Errorf("both groups should share the ID 1-1: %q %q", episodes[0].ID, episodes[1].ID)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if _, err := Aggregate(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("got %v, want ErrEmptyDataset", err)
	}
}

func TestEpisodeIDFormat(t *testing.T) {
	tests := []struct {
		season, chapter int
		want            string
	}{
		{1, 1, "1-1"},
		{1, 20, "1-20"},
		{3, 7, "3-7"},
	}
	for _, tt := range tests {
		if got := EpisodeID(tt.season, tt.chapter); got != tt.want {
			t.Errorf("EpisodeID(%d, %d) = %q, want %q", tt.season, tt.chapter, got, tt.want)
		}
	}
}

func TestCSVSinkWriteAndOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	sink := &CSVSink{Path: path}

	episodes := []Episode{
		{ID: "1-1", Season: 1, Chapter: 1, Rating: 8.5, Text: "Hello world."},
		{ID: "1-2", Season: 1, Chapter: 2, Rating: 9.0, Text: "Goodbye world."},
	}
	if err := sink.Write(context.Background(), episodes); err != nil {
		t.Fatalf("write: %v", err)
	}

	// A second write replaces the file outright.
	if err := sink.Write(context.Background(), episodes[:1]); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	content := string(data)

	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 2 { // header + one episode
		t.Fatalf("got %d lines after overwrite, want 2:\n%s", len(lines), content)
	}
	if !strings.HasPrefix(lines[0], "book_num,chapter_num,imdb_rating,character_words,season-episode") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "1-1") {
		t.Errorf("episode row missing identifier: %q", lines[1])
	}
}

func TestMemorySink(t *testing.T) {
	sink := &MemorySink{}
	episodes := []Episode{{ID: "1-1"}}
	if err := sink.Write(context.Background(), episodes); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(sink.Episodes) != 1 || sink.Episodes[0].ID != "1-1" {
		t.Errorf("sink retained %+v", sink.Episodes)
	}
}
