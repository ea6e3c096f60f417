// Package domain contains the graph-building workflow and its core logic.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"minipack.dev/pkg/minipack/internal/adapter"
	m "minipack.dev/pkg/minipack/internal/model"
)

// Extractor turns a single file into an asset.
type Extractor interface {
	// Extract loads filename, enumerates its imports and lowers it to target.
	// The returned asset carries id and has no mapping yet.
	Extract(ctx context.Context, filename m.Path, id m.AssetID, target m.Target) (m.Asset, error)
}

// extractor handles per-file loading, analysis and lowering.
type extractor struct {
	adapter.SourceFSAdapter
	adapter.ScriptAdapter
	adapter.TransformAdapter
}

// NewExtractor creates a new Extractor instance.
func NewExtractor(
	fsAdapter adapter.SourceFSAdapter,
	scriptAdapter adapter.ScriptAdapter,
	transformAdapter adapter.TransformAdapter,
) Extractor {
	return &extractor{
		SourceFSAdapter:  fsAdapter,
		ScriptAdapter:    scriptAdapter,
		TransformAdapter: transformAdapter,
	}
}

func (e *extractor) Extract(ctx context.Context, filename m.Path, id m.AssetID, target m.Target) (m.Asset, error) {
	if err := ctx.Err(); err != nil {
		return m.Asset{}, err
	}

	if err := e.validateAdapters(); err != nil {
		return m.Asset{}, err
	}

	content, err := e.ReadFile(ctx, filename)
	if err != nil {
		slog.Error("Failed to read module", "filename", filename, "error", err)
		return m.Asset{}, &ExtractError{Kind: KindIO, Path: filename, Err: err}
	}

	module, err := e.Parse(ctx, filename, content)
	if err != nil {
		slog.Error("Failed to parse module", "filename", filename, "error", err)
		return m.Asset{}, &ExtractError{Kind: KindParse, Path: filename, Err: err}
	}

	dependencies := e.EnumerateImports(module)
	if dependencies == nil {
		dependencies = []string{}
	}

	code, err := e.Lower(ctx, module, target)
	if err != nil {
		slog.Error("Failed to lower module", "filename", filename, "target", target, "error", err)
		return m.Asset{}, &ExtractError{Kind: KindTransform, Path: filename, Err: err}
	}

	slog.Debug("Extracted asset", "id", id, "filename", filename, "dependencies", len(dependencies))

	return m.Asset{
		ID:           id,
		Filename:     filename,
		Code:         code,
		Dependencies: dependencies,
	}, nil
}

func (e *extractor) validateAdapters() error {
	if e.SourceFSAdapter == nil || e.ScriptAdapter == nil || e.TransformAdapter == nil {
		return fmt.Errorf("missing adapters")
	}

	return nil
}
