package domain_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "minipack.dev/pkg/minipack/internal/adapter/mocks"
	controllermocks "minipack.dev/pkg/minipack/internal/controller/mocks"
	"minipack.dev/pkg/minipack/internal/domain"
	domainmocks "minipack.dev/pkg/minipack/internal/domain/mocks"
	m "minipack.dev/pkg/minipack/internal/model"
)

func workflowGraph() m.Graph {
	return m.Graph{
		{ID: 0, Filename: "index.js", Dependencies: []string{"./a.js"}, Mapping: m.Mapping{"./a.js": 1}},
		{ID: 1, Filename: "/p/a.js", Dependencies: []string{}, Mapping: m.Mapping{}},
	}
}

func TestWorkflow_Graph_Success(t *testing.T) {
	// Arrange
	mockBuilder := domainmocks.NewMockGraphBuilder(t)
	mockStore := adaptermocks.NewMockGraphStore(t)
	mockUI := controllermocks.NewMockUI(t)
	graph := workflowGraph()

	mockUI.EXPECT().Start(mock.Anything).Return(nil).Once()
	mockBuilder.EXPECT().Build(mock.Anything, m.Path("index.js"), mock.MatchedBy(func(opts domain.BuildOptions) bool {
		return opts.Target == m.TargetES2017 && opts.Dedupe && opts.MaxAssets == 50 && opts.OnAsset != nil
	})).RunAndReturn(func(_ context.Context, _ m.Path, opts domain.BuildOptions) (m.Graph, error) {
		for _, asset := range graph {
			opts.OnAsset(asset)
		}

		return graph, nil
	}).Once()
	mockUI.EXPECT().DisplayProgress(mock.Anything, graph[0]).Return().Once()
	mockUI.EXPECT().DisplayProgress(mock.Anything, graph[1]).Return().Once()
	mockUI.EXPECT().DisplayGraph(mock.Anything, graph, nil).Return(nil).Once()
	mockStore.EXPECT().SaveGraph(mock.Anything, m.Path("graph.json"), graph).Return(nil).Once()
	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockBuilder, mockStore, mockUI)

	// Act
	err := wf.Graph(context.Background(), domain.GraphArgs{
		Entry:     "index.js",
		Target:    m.TargetES2017,
		Dedupe:    true,
		MaxAssets: 50,
		Output:    "graph.json",
	})

	// Assert
	assert.NoError(t, err)
}

func TestWorkflow_Graph_NoOutput(t *testing.T) {
	mockBuilder := domainmocks.NewMockGraphBuilder(t)
	mockStore := adaptermocks.NewMockGraphStore(t)
	mockUI := controllermocks.NewMockUI(t)
	graph := workflowGraph()

	mockUI.EXPECT().Start(mock.Anything).Return(nil).Once()
	mockBuilder.EXPECT().Build(mock.Anything, m.Path("index.js"), mock.Anything).Return(graph, nil).Once()
	mockUI.EXPECT().DisplayGraph(mock.Anything, graph, nil).Return(nil).Once()
	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockBuilder, mockStore, mockUI)

	err := wf.Graph(context.Background(), domain.GraphArgs{Entry: "index.js"})
	assert.NoError(t, err)
	mockStore.AssertNotCalled(t, "SaveGraph", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Graph_BuildError(t *testing.T) {
	mockBuilder := domainmocks.NewMockGraphBuilder(t)
	mockStore := adaptermocks.NewMockGraphStore(t)
	mockUI := controllermocks.NewMockUI(t)
	buildErr := &domain.ExtractError{Kind: domain.KindIO, Path: "missing.js", Err: errors.New("not found")}

	mockUI.EXPECT().Start(mock.Anything).Return(nil).Once()
	mockBuilder.EXPECT().Build(mock.Anything, m.Path("index.js"), mock.Anything).Return(nil, buildErr).Once()
	mockUI.EXPECT().DisplayGraph(mock.Anything, mock.Anything, buildErr).Return(buildErr).Once()
	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockBuilder, mockStore, mockUI)

	err := wf.Graph(context.Background(), domain.GraphArgs{Entry: "index.js", Output: "graph.json"})

	require.Error(t, err)
	assert.ErrorIs(t, err, buildErr)

	kind, ok := domain.ExtractErrorKind(err)
	assert.True(t, ok)
	assert.Equal(t, domain.KindIO, kind)
}

func TestWorkflow_Graph_StartError(t *testing.T) {
	mockBuilder := domainmocks.NewMockGraphBuilder(t)
	mockStore := adaptermocks.NewMockGraphStore(t)
	mockUI := controllermocks.NewMockUI(t)
	startErr := errors.New("start failed")

	mockUI.EXPECT().Start(mock.Anything).Return(startErr).Once()

	wf := domain.NewWorkflow(mockBuilder, mockStore, mockUI)

	err := wf.Graph(context.Background(), domain.GraphArgs{Entry: "index.js"})
	assert.ErrorIs(t, err, startErr)
}

func TestWorkflow_Graph_SaveError(t *testing.T) {
	mockBuilder := domainmocks.NewMockGraphBuilder(t)
	mockStore := adaptermocks.NewMockGraphStore(t)
	mockUI := controllermocks.NewMockUI(t)
	graph := workflowGraph()
	saveErr := errors.New("disk full")

	mockUI.EXPECT().Start(mock.Anything).Return(nil).Once()
	mockBuilder.EXPECT().Build(mock.Anything, m.Path("index.js"), mock.Anything).Return(graph, nil).Once()
	mockUI.EXPECT().DisplayGraph(mock.Anything, graph, nil).Return(nil).Once()
	mockStore.EXPECT().SaveGraph(mock.Anything, m.Path("graph.yaml"), graph).Return(saveErr).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockBuilder, mockStore, mockUI)

	err := wf.Graph(context.Background(), domain.GraphArgs{Entry: "index.js", Output: "graph.yaml"})
	require.ErrorIs(t, err, saveErr)
	assert.Contains(t, err.Error(), "save graph")
}

func TestWorkflow_View_Success(t *testing.T) {
	mockBuilder := domainmocks.NewMockGraphBuilder(t)
	mockStore := adaptermocks.NewMockGraphStore(t)
	mockUI := controllermocks.NewMockUI(t)
	graph := workflowGraph()

	mockStore.EXPECT().LoadGraph(mock.Anything, m.Path("graph.jsonl")).Return(graph, nil).Once()
	mockUI.EXPECT().Start(mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayGraph(mock.Anything, graph, nil).Return(nil).Once()
	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockBuilder, mockStore, mockUI)

	err := wf.View(context.Background(), domain.ViewArgs{Input: "graph.jsonl"})
	assert.NoError(t, err)
}

func TestWorkflow_View_LoadError(t *testing.T) {
	mockBuilder := domainmocks.NewMockGraphBuilder(t)
	mockStore := adaptermocks.NewMockGraphStore(t)
	mockUI := controllermocks.NewMockUI(t)
	loadErr := errors.New("invalid graph")

	mockStore.EXPECT().LoadGraph(mock.Anything, m.Path("graph.json")).Return(nil, loadErr).Once()

	wf := domain.NewWorkflow(mockBuilder, mockStore, mockUI)

	err := wf.View(context.Background(), domain.ViewArgs{Input: "graph.json"})
	require.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "load graph")
}

func TestWorkflow_Graph_WithRealBuilder(t *testing.T) {
	root := simpleProject(t)
	entry := m.Path(filepath.Join(root, "index.js"))

	mockStore := adaptermocks.NewMockGraphStore(t)
	mockUI := controllermocks.NewMockUI(t)

	var progressed []m.AssetID

	mockUI.EXPECT().Start(mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayProgress(mock.Anything, mock.Anything).Run(func(_ context.Context, asset m.Asset) {
		progressed = append(progressed, asset.ID)
	}).Return().Times(4)
	mockUI.EXPECT().DisplayGraph(mock.Anything, mock.MatchedBy(func(graph m.Graph) bool {
		return len(graph) == 4 && graph.Validate() == nil
	}), nil).Return(nil).Once()
	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(newGraphBuilder(), mockStore, mockUI)

	err := wf.Graph(context.Background(), domain.GraphArgs{Entry: entry, MaxAssets: domain.DefaultMaxAssets})
	require.NoError(t, err)
	assert.Equal(t, []m.AssetID{0, 1, 2, 3}, progressed)
}
