package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"paperboard/internal/model"
)

// DefaultDataPath is the data file the widget has always read.
const DefaultDataPath = "data/collected_papers.json"

const fetchTimeout = 30 * time.Second

// LoadError reports that the data resource could not be read or parsed. It is terminal for
// the session: callers show it and stop, no partial data is kept.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load papers from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Records is the loaded record set. The slice is owned by Records; All hands out copies so
// no caller can reorder the store.
type Records struct {
	papers []*model.Paper
}

func NewRecords(papers []*model.Paper) Records {
	return Records{papers: slices.Clone(papers)}
}

func (r Records) All() []*model.Paper { return slices.Clone(r.papers) }

func (r Records) Len() int { return len(r.papers) }

// Load reads source (a file path or an http(s) URL) and returns its records in the order a
// browser's Object.values would produce. Keys are discarded.
func Load(ctx context.Context, source string) (Records, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		source = DefaultDataPath
	}
	b, err := readSource(ctx, source)
	if err != nil {
		return Records{}, &LoadError{Source: source, Err: err}
	}
	papers, err := DecodeRecords(b)
	if err != nil {
		return Records{}, &LoadError{Source: source, Err: err}
	}
	slog.Debug("papers loaded", "source", source, "count", len(papers))
	return NewRecords(papers), nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func readSource(ctx context.Context, source string) ([]byte, error) {
	if !isURL(source) {
		return os.ReadFile(source)
	}
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

type keyedRecord struct {
	key string
	raw json.RawMessage
}

// DecodeRecords parses a JSON object of id -> record.
//
// Order matches JavaScript property enumeration: keys that are canonical array indices come
// first in ascending numeric order, then every other key in document order. A repeated key
// keeps its first position and its last value.
func DecodeRecords(b []byte) ([]*model.Paper, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("invalid data: top level must be an object of records")
	}

	var entries []keyedRecord
	seen := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid json at %q: %w", key, err)
		}
		if i, ok := seen[key]; ok {
			entries[i].raw = raw
			continue
		}
		seen[key] = len(entries)
		entries = append(entries, keyedRecord{key: key, raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("invalid json: trailing data after object")
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ai, aok := arrayIndex(entries[i].key)
		bi, bok := arrayIndex(entries[j].key)
		switch {
		case aok && bok:
			return ai < bi
		case aok:
			return true
		default:
			return false
		}
	})

	papers := make([]*model.Paper, 0, len(entries))
	for _, e := range entries {
		trimmed := bytes.TrimSpace(e.raw)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("invalid data: record %q is not an object", e.key)
		}
		var p model.Paper
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return nil, fmt.Errorf("invalid record %q: %w", e.key, err)
		}
		papers = append(papers, &p)
	}
	return papers, nil
}

// arrayIndex reports whether key is a canonical array index ("0", "17"; not "017" or "-1").
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == 1<<32-1 {
		return 0, false
	}
	return n, true
}
