package episodic

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/gofrs/flock"
)

// Aggregate groups dialogue lines by (season, chapter, rating) and
// concatenates their text in source order, producing one episode per group in
// first-appearance order. Duplicate (season, chapter) pairs with different
// ratings form separate groups; the dataset does not promise uniqueness and
// neither does this function.
func Aggregate(lines []LineRecord) ([]Episode, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no dialogue lines to aggregate", ErrEmptyDataset)
	}

	type groupKey struct {
		season  int
		chapter int
		rating  float64
	}

	index := make(map[groupKey]int, len(lines)/64)
	var episodes []Episode

	for _, line := range lines {
		key := groupKey{line.Season, line.Chapter, line.Rating}
		if i, ok := index[key]; ok {
			episodes[i].Text += line.Text
			continue
		}
		index[key] = len(episodes)
		episodes = append(episodes, Episode{
			ID:      EpisodeID(line.Season, line.Chapter),
			Season:  line.Season,
			Chapter: line.Chapter,
			Rating:  line.Rating,
			Text:    line.Text,
		})
	}

	return episodes, nil
}

// A Sink accepts the episode aggregation table. The pipeline writes the table
// through a sink before scoring so the summary survives as a durable artifact.
type Sink interface {
	Write(ctx context.Context, episodes []Episode) error
}

// A CSVSink writes the aggregation table to a CSV file, unconditionally
// overwriting any existing file at the path. It holds an advisory lock on a
// sibling lock file while writing so concurrent runs do not interleave output.
type CSVSink struct {
	Path string
}

// Write renders the episode table to c.Path.
func (c *CSVSink) Write(ctx context.Context, episodes []Episode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := flock.New(c.Path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", c.Path, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: held by another process", c.Path)
	}
	defer lock.Unlock()

	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{colSeason, colChapter, colRating, colText, "season-episode"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, ep := range episodes {
		record := []string{
			strconv.Itoa(ep.Season),
			strconv.Itoa(ep.Chapter),
			strconv.FormatFloat(ep.Rating, 'f', -1, 64),
			ep.Text,
			ep.ID,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write episode %s: %w", ep.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", c.Path, err)
	}

	return f.Close()
}

// A MemorySink retains the episode table in memory. Useful in tests and when
// no durable summary is wanted.
type MemorySink struct {
	Episodes []Episode
}

func (m *MemorySink) Write(_ context.Context, episodes []Episode) error {
	m.Episodes = append(m.Episodes[:0], episodes...)
	return nil
}
