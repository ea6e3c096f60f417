package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"minipack.dev/pkg/minipack/internal/adapter"
	"minipack.dev/pkg/minipack/internal/controller"
	m "minipack.dev/pkg/minipack/internal/model"
)

// progressBuffer is the number of extracted assets that may be queued for
// display before the build blocks on the UI.
const progressBuffer = 64

// GraphArgs contains the arguments for building a dependency graph.
type GraphArgs struct {
	Entry     m.Path
	Target    m.Target
	Dedupe    bool
	MaxAssets int
	Output    m.Path
}

// ViewArgs contains the arguments for displaying a saved graph.
type ViewArgs struct {
	Input m.Path
}

// Workflow defines the interface for the bundler front end commands.
type Workflow interface {
	Graph(ctx context.Context, args GraphArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	GraphBuilder
	adapter.GraphStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(builder GraphBuilder, store adapter.GraphStore, ui controller.UI) Workflow {
	return &workflow{
		GraphBuilder: builder,
		GraphStore:   store,
		UI:           ui,
	}
}

func (w *workflow) Graph(ctx context.Context, args GraphArgs) error {
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}
	defer w.Close(ctx)

	graph, buildErr := w.buildWithProgress(ctx, args)

	if err := w.DisplayGraph(ctx, graph, buildErr); err != nil {
		slog.Error("Failed to build graph", "entry", args.Entry, "error", err)
		w.Wait(ctx)

		return fmt.Errorf("build graph: %w", err)
	}

	if args.Output != "" {
		if err := w.SaveGraph(ctx, args.Output, graph); err != nil {
			return fmt.Errorf("save graph: %w", err)
		}
	}

	w.Wait(ctx)

	return nil
}

// buildWithProgress runs the build and streams each extracted asset to the
// UI from a second goroutine.
func (w *workflow) buildWithProgress(ctx context.Context, args GraphArgs) (m.Graph, error) {
	progress := make(chan m.Asset, progressBuffer)

	var graph m.Graph

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(progress)

		built, err := w.Build(groupCtx, args.Entry, BuildOptions{
			Target:    args.Target,
			Dedupe:    args.Dedupe,
			MaxAssets: args.MaxAssets,
			OnAsset: func(asset m.Asset) {
				select {
				case progress <- asset:
				case <-groupCtx.Done():
				}
			},
		})
		if err != nil {
			return err
		}

		graph = built

		return nil
	})

	group.Go(func() error {
		for asset := range progress {
			w.DisplayProgress(ctx, asset)
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return graph, nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	graph, err := w.LoadGraph(ctx, args.Input)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start UI: %w", err)
	}
	defer w.Close(ctx)

	if err := w.DisplayGraph(ctx, graph, nil); err != nil {
		return fmt.Errorf("display graph: %w", err)
	}

	w.Wait(ctx)

	return nil
}
