package domain_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minipack.dev/pkg/minipack/internal/domain"
	m "minipack.dev/pkg/minipack/internal/model"
)

func exampleEntry(t *testing.T, parts ...string) m.Path {
	t.Helper()

	path, err := filepath.Abs(filepath.Join(append([]string{"..", "..", "examples"}, parts...)...))
	require.NoError(t, err)

	return m.Path(path)
}

func TestExamples(t *testing.T) {
	tests := []struct {
		name       string
		entry      []string
		opts       domain.BuildOptions
		wantAssets int
		wantErr    error
		wantKind   domain.ErrorKind
	}{
		{name: "simple", entry: []string{"simple", "index.js"}, wantAssets: 4},
		{name: "diamond", entry: []string{"diamond", "index.js"}, wantAssets: 5},
		{name: "diamond deduped", entry: []string{"diamond", "index.js"}, opts: domain.BuildOptions{Dedupe: true}, wantAssets: 4},
		{name: "cycle", entry: []string{"cycle", "a.js"}, wantErr: domain.ErrCycleDetected},
		{name: "cycle deduped", entry: []string{"cycle", "a.js"}, opts: domain.BuildOptions{Dedupe: true}, wantAssets: 2},
		{name: "missing", entry: []string{"missing", "index.js"}, wantKind: domain.KindIO},
		{name: "invalid", entry: []string{"invalid", "index.js"}, wantKind: domain.KindParse},
		{name: "modern", entry: []string{"modern", "index.js"}, opts: domain.BuildOptions{Target: m.TargetES2015}, wantAssets: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph, err := newGraphBuilder().Build(context.Background(), exampleEntry(t, tt.entry...), tt.opts)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantKind != "":
				require.Error(t, err)

				kind, ok := domain.ExtractErrorKind(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantKind, kind)
			default:
				require.NoError(t, err)
				assert.Len(t, graph, tt.wantAssets)
				assert.NoError(t, graph.Validate())
			}
		})
	}
}

func TestExamples_SimpleMapping(t *testing.T) {
	graph, err := newGraphBuilder().Build(context.Background(), exampleEntry(t, "simple", "index.js"), domain.BuildOptions{})
	require.NoError(t, err)
	require.Len(t, graph, 4)

	assert.Equal(t, m.Mapping{"./greet.js": 1, "./lib/name.js": 2}, graph[0].Mapping)
	assert.Equal(t, m.Mapping{"./lib/punctuation.js": 3}, graph[1].Mapping)
	assert.Empty(t, graph[2].Mapping)
	assert.Empty(t, graph[3].Mapping)
	assert.Equal(t, exampleEntry(t, "simple", "lib", "punctuation.js"), graph[3].Filename)
}
