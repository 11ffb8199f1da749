package episodic

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// A Source supplies the dialogue lines the pipeline analyzes. Implementations
// exist for remote CSV resources and local files; tests supply fixtures.
type Source interface {
	Lines(ctx context.Context) ([]LineRecord, error)
}

// Column names the loader requires in the dataset header.
const (
	colSeason  = "book_num"
	colChapter = "chapter_num"
	colRating  = "imdb_rating"
	colText    = "character_words"
)

// An HTTPSource fetches a CSV dataset from a remote URL.
type HTTPSource struct {
	URL    string
	Client *http.Client

	// Skipped counts lines dropped during the last load because their
	// rating cell was empty or "NA". Grouping on a missing rating has no
	// meaning, so such lines never reach the aggregator.
	Skipped int
}

// NewHTTPSource creates a source for the given URL with a default client.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Lines downloads and parses the dataset.
func (s *HTTPSource) Lines(ctx context.Context) ([]LineRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %v", ErrFetch, s.URL, err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrFetch, s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: get %s: unexpected status %s", ErrFetch, s.URL, resp.Status)
	}

	lines, skipped, err := parseLines(resp.Body)
	if err != nil {
		return nil, err
	}
	s.Skipped = skipped
	return lines, nil
}

// A FileSource reads the same CSV shape from a local file.
type FileSource struct {
	Path    string
	Skipped int
}

// Lines opens and parses the dataset file.
func (s *FileSource) Lines(ctx context.Context) ([]LineRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrFetch, s.Path, err)
	}
	defer f.Close()

	lines, skipped, err := parseLines(f)
	if err != nil {
		return nil, err
	}
	s.Skipped = skipped
	return lines, nil
}

// parseLines reads a header-addressed CSV stream into line records. Lines
// whose rating cell is empty or "NA" are skipped and counted; the returned
// int reports how many.
func parseLines(r io.Reader) ([]LineRecord, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read header: %v", ErrMalformedDataset, err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colSeason, colChapter, colRating, colText} {
		if _, ok := idx[required]; !ok {
			return nil, 0, fmt.Errorf("%w: missing column %q", ErrMalformedDataset, required)
		}
	}

	var (
		lines   []LineRecord
		skipped int
		lineNum = 1
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		if err != nil {
			return nil, 0, fmt.Errorf("%w: line %d: %v", ErrMalformedDataset, lineNum, err)
		}

		ratingCell := strings.TrimSpace(record[idx[colRating]])
		if ratingCell == "" || strings.EqualFold(ratingCell, "na") {
			skipped++
			continue
		}
		rating, err := strconv.ParseFloat(ratingCell, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: line %d: rating %q: %v", ErrMalformedDataset, lineNum, ratingCell, err)
		}

		season, err := strconv.Atoi(strings.TrimSpace(record[idx[colSeason]]))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: line %d: season %q: %v", ErrMalformedDataset, lineNum, record[idx[colSeason]], err)
		}
		chapter, err := strconv.Atoi(strings.TrimSpace(record[idx[colChapter]]))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: line %d: chapter %q: %v", ErrMalformedDataset, lineNum, record[idx[colChapter]], err)
		}

		lines = append(lines, LineRecord{
			Season:  season,
			Chapter: chapter,
			Rating:  rating,
			Text:    record[idx[colText]],
		})
	}

	return lines, skipped, nil
}
