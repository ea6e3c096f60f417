package adapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	lru "github.com/hashicorp/golang-lru/v2"

	m "minipack.dev/pkg/minipack/internal/model"
)

// DefaultTransformCacheSize bounds how many lowered modules are memoized.
const DefaultTransformCacheSize = 256

// TransformAdapter lowers a parsed module into CommonJS code written in an
// older dialect.
type TransformAdapter interface {
	Lower(ctx context.Context, module *ParsedModule, target m.Target) (string, error)
}

// LocalTransformAdapter lowers modules with esbuild. Results are memoized by
// content hash and target so that re-extracting the same file within one run
// does not pay for a second transform.
type LocalTransformAdapter struct {
	cache *lru.Cache[string, string]
}

// NewLocalTransformAdapter constructs a LocalTransformAdapter with a cache of
// DefaultTransformCacheSize entries.
func NewLocalTransformAdapter() *LocalTransformAdapter {
	adapter, err := NewLocalTransformAdapterWithCache(DefaultTransformCacheSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}

	return adapter
}

// NewLocalTransformAdapterWithCache constructs a LocalTransformAdapter with a
// cache holding up to size entries.
func NewLocalTransformAdapterWithCache(size int) (*LocalTransformAdapter, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create transform cache: %w", err)
	}

	return &LocalTransformAdapter{cache: cache}, nil
}

var esbuildTargets = map[m.Target]api.Target{
	m.TargetES5:    api.ES5,
	m.TargetES2015: api.ES2015,
	m.TargetES2016: api.ES2016,
	m.TargetES2017: api.ES2017,
	m.TargetES2018: api.ES2018,
	m.TargetES2019: api.ES2019,
	m.TargetES2020: api.ES2020,
	m.TargetES2021: api.ES2021,
	m.TargetES2022: api.ES2022,
	m.TargetES2023: api.ES2023,
	m.TargetES2024: api.ES2024,
	m.TargetESNext: api.ESNext,
}

// Lower transforms module into CommonJS code for target.
func (a *LocalTransformAdapter) Lower(ctx context.Context, module *ParsedModule, target m.Target) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if module == nil {
		return "", errors.New("nil module")
	}

	if target == "" {
		target = m.DefaultTarget
	}

	esTarget, ok := esbuildTargets[target]
	if !ok {
		return "", fmt.Errorf("unsupported target %q", target)
	}

	key := cacheKey(module.Source, target)
	if code, ok := a.cache.Get(key); ok {
		slog.Debug("transform cache hit", "filename", module.Filename, "target", target)
		return code, nil
	}

	result := api.Transform(string(module.Source), api.TransformOptions{
		Loader:     api.LoaderJS,
		Format:     api.FormatCommonJS,
		Target:     esTarget,
		Sourcefile: string(module.Filename),
		LogLevel:   api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		return "", transformError(module.Filename, result.Errors)
	}

	code := string(result.Code)
	a.cache.Add(key, code)

	return code, nil
}

func cacheKey(source []byte, target m.Target) string {
	return fmt.Sprintf("%s:%x", target, sha256.Sum256(source))
}

func transformError(filename m.Path, messages []api.Message) error {
	parts := make([]string, 0, len(messages))

	for _, msg := range messages {
		if msg.Location != nil {
			parts = append(parts, fmt.Sprintf("%d:%d: %s", msg.Location.Line, msg.Location.Column, msg.Text))
			continue
		}

		parts = append(parts, msg.Text)
	}

	return fmt.Errorf("%s: %s", filename, strings.Join(parts, "; "))
}
