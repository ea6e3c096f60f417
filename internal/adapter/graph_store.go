package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "minipack.dev/pkg/minipack/internal/model"
)

// GraphFormat is a serialization format for a built graph.
type GraphFormat string

const (
	// FormatJSON writes the graph as a single indented JSON array.
	FormatJSON GraphFormat = "json"
	// FormatJSONLines writes one asset record per line.
	FormatJSONLines GraphFormat = "jsonl"
	// FormatYAML writes the graph as a YAML sequence.
	FormatYAML GraphFormat = "yaml"
)

// FormatForPath picks a GraphFormat from the file extension of path.
func FormatForPath(path m.Path) (GraphFormat, error) {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".json":
		return FormatJSON, nil
	case ".jsonl", ".ndjson":
		return FormatJSONLines, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("cannot infer graph format from %q (use .json, .jsonl or .yaml)", path)
}

// GraphStore persists graphs so they can be inspected without a rebuild.
type GraphStore interface {
	SaveGraph(ctx context.Context, path m.Path, graph m.Graph) error
	LoadGraph(ctx context.Context, path m.Path) (m.Graph, error)
}

type graphStore struct {
	fs SourceFSAdapter
}

// NewGraphStore creates a GraphStore that reads and writes through fs.
func NewGraphStore(fs SourceFSAdapter) GraphStore {
	return &graphStore{fs: fs}
}

func (s *graphStore) SaveGraph(ctx context.Context, path m.Path, graph m.Graph) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	content, err := encodeGraph(graph, format)
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}

	if err := s.fs.WriteFile(ctx, path, content, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func (s *graphStore) LoadGraph(ctx context.Context, path m.Path) (m.Graph, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	content, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	graph, err := decodeGraph(content, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := graph.Validate(); err != nil {
		return nil, fmt.Errorf("invalid graph in %s: %w", path, err)
	}

	return graph, nil
}

func encodeGraph(graph m.Graph, format GraphFormat) ([]byte, error) {
	if graph == nil {
		graph = m.Graph{}
	}

	switch format {
	case FormatJSON:
		return json.MarshalIndent(graph, "", "  ")
	case FormatJSONLines:
		var buf bytes.Buffer

		encoder := json.NewEncoder(&buf)
		for _, asset := range graph {
			if err := encoder.Encode(asset); err != nil {
				return nil, err
			}
		}

		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(graph)
	}

	return nil, fmt.Errorf("unsupported graph format %q", format)
}

func decodeGraph(content []byte, format GraphFormat) (m.Graph, error) {
	var graph m.Graph

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(content, &graph); err != nil {
			return nil, err
		}
	case FormatJSONLines:
		scanner := bufio.NewScanner(bytes.NewReader(content))
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

		for line := 1; scanner.Scan(); line++ {
			text := bytes.TrimSpace(scanner.Bytes())
			if len(text) == 0 {
				continue
			}

			var asset m.Asset
			if err := json.Unmarshal(text, &asset); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}

			graph = append(graph, asset)
		}

		if err := scanner.Err(); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &graph); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported graph format %q", format)
	}

	return graph, nil
}
