package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"minipack.dev/pkg/minipack/internal/domain"
	m "minipack.dev/pkg/minipack/internal/model"
)

func TestCycleError(t *testing.T) {
	err := &domain.CycleError{Chain: []m.Path{"/p/a.js", "/p/b.js", "/p/a.js"}}

	assert.Equal(t, "cycle detected: /p/a.js -> /p/b.js -> /p/a.js", err.Error())
	assert.ErrorIs(t, err, domain.ErrCycleDetected)
	assert.NotErrorIs(t, err, domain.ErrAssetLimitExceeded)
}

func TestResolutionError(t *testing.T) {
	cause := &domain.ExtractError{Kind: domain.KindIO, Path: "/p/x.js", Err: errors.New("no such file")}
	err := fmt.Errorf("build: %w", &domain.ResolutionError{Parent: "/p/index.js", Reference: "./x.js", Resolved: "/p/x.js", Err: cause})

	assert.Equal(t, "build: resolve \"./x.js\" from /p/index.js: io error in /p/x.js: no such file", err.Error())

	kind, ok := domain.ExtractErrorKind(err)
	assert.True(t, ok)
	assert.Equal(t, domain.KindIO, kind)
}

func TestExtractErrorKind_NotExtractError(t *testing.T) {
	kind, ok := domain.ExtractErrorKind(errors.New("plain"))

	assert.False(t, ok)
	assert.Empty(t, kind)
}
