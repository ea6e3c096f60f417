package domain

import (
	"context"
	"fmt"
	"log/slog"

	"minipack.dev/pkg/minipack/internal/adapter"
	m "minipack.dev/pkg/minipack/internal/model"
)

// DefaultMaxAssets bounds a build when no explicit limit is configured.
const DefaultMaxAssets = 10000

// BuildOptions tune a single graph build.
type BuildOptions struct {
	// Target is the dialect modules are lowered to.
	Target m.Target
	// Dedupe makes every resolved path map to a single asset. When false each
	// dependency occurrence is extracted separately and cycles are rejected.
	Dedupe bool
	// MaxAssets caps the number of assets in the graph. Zero disables the cap.
	MaxAssets int
	// OnAsset is called after every extraction, in ID order.
	OnAsset func(m.Asset)
}

// GraphBuilder builds the dependency graph reachable from an entry file.
type GraphBuilder interface {
	Build(ctx context.Context, entry m.Path, opts BuildOptions) (m.Graph, error)
}

type graphBuilder struct {
	adapter.SourceFSAdapter
	Extractor
}

// NewGraphBuilder creates a new GraphBuilder instance.
func NewGraphBuilder(fsAdapter adapter.SourceFSAdapter, extractor Extractor) GraphBuilder {
	return &graphBuilder{
		SourceFSAdapter: fsAdapter,
		Extractor:       extractor,
	}
}

// queued is an asset waiting for its dependencies to be processed. key is the
// absolute path used for cycle and dedupe checks; parent links form the chain
// of files that led to this asset.
type queued struct {
	asset  *m.Asset
	key    m.Path
	parent *queued
}

// chainTo returns the ancestor chain from the entry down to q followed by
// next, or nil when next does not already appear on that chain.
func (q *queued) chainTo(next m.Path) []m.Path {
	found := false

	var reversed []m.Path

	for node := q; node != nil; node = node.parent {
		reversed = append(reversed, node.key)

		if node.key == next {
			found = true
			break
		}
	}

	if !found {
		return nil
	}

	chain := make([]m.Path, 0, len(reversed)+1)
	for i := len(reversed) - 1; i >= 0; i-- {
		chain = append(chain, reversed[i])
	}

	return append(chain, next)
}

// idCounter hands out consecutive asset IDs for a single build.
type idCounter struct {
	next m.AssetID
}

func (c *idCounter) take() m.AssetID {
	id := c.next
	c.next++

	return id
}

func (b *graphBuilder) Build(ctx context.Context, entry m.Path, opts BuildOptions) (m.Graph, error) {
	if b.SourceFSAdapter == nil || b.Extractor == nil {
		return nil, fmt.Errorf("missing adapters")
	}

	var ids idCounter

	entryKey, err := b.AbsPath(entry)
	if err != nil {
		return nil, fmt.Errorf("resolve entry %s: %w", entry, err)
	}

	root, err := b.extract(ctx, entry, &ids, opts)
	if err != nil {
		return nil, err
	}

	queue := []*queued{{asset: root, key: entryKey}}
	seen := map[m.Path]m.AssetID{entryKey: root.ID}

	for i := 0; i < len(queue); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := queue[i]

		children, err := b.resolveDependencies(ctx, current, seen, &ids, len(queue), opts)
		if err != nil {
			return nil, err
		}

		queue = append(queue, children...)
	}

	graph := make(m.Graph, 0, len(queue))
	for _, item := range queue {
		graph = append(graph, *item.asset)
	}

	slog.Debug("Built dependency graph", "entry", entry, "assets", len(graph), "dedupe", opts.Dedupe)

	return graph, nil
}

// resolveDependencies attaches the mapping of current and returns the newly
// extracted children in declaration order. total is the number of assets
// extracted so far.
func (b *graphBuilder) resolveDependencies(
	ctx context.Context,
	current *queued,
	seen map[m.Path]m.AssetID,
	ids *idCounter,
	total int,
	opts BuildOptions,
) ([]*queued, error) {
	asset := current.asset
	dir := b.Dir(asset.Filename)
	asset.Mapping = make(m.Mapping, len(asset.Dependencies))

	var children []*queued

	for _, reference := range asset.Dependencies {
		resolved, err := b.ResolvePath(dir, reference)
		if err != nil {
			return nil, &ResolutionError{Parent: asset.Filename, Reference: reference, Err: err}
		}

		if opts.Dedupe {
			if id, ok := seen[resolved]; ok {
				asset.Mapping[reference] = id
				continue
			}
		} else if chain := current.chainTo(resolved); chain != nil {
			slog.Error("Dependency cycle detected", "filename", asset.Filename, "reference", reference)
			return nil, &ResolutionError{Parent: asset.Filename, Reference: reference, Resolved: resolved, Err: &CycleError{Chain: chain}}
		}

		if opts.MaxAssets > 0 && total+len(children) >= opts.MaxAssets {
			return nil, fmt.Errorf("%w: more than %d assets reachable from the entry", ErrAssetLimitExceeded, opts.MaxAssets)
		}

		child, err := b.extract(ctx, resolved, ids, opts)
		if err != nil {
			return nil, &ResolutionError{Parent: asset.Filename, Reference: reference, Resolved: resolved, Err: err}
		}

		asset.Mapping[reference] = child.ID
		if opts.Dedupe {
			seen[resolved] = child.ID
		}
		children = append(children, &queued{asset: child, key: resolved, parent: current})
	}

	return children, nil
}

func (b *graphBuilder) extract(ctx context.Context, filename m.Path, ids *idCounter, opts BuildOptions) (*m.Asset, error) {
	asset, err := b.Extract(ctx, filename, ids.take(), opts.Target)
	if err != nil {
		return nil, err
	}

	if opts.OnAsset != nil {
		opts.OnAsset(asset)
	}

	return &asset, nil
}
