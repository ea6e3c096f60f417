package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "minipack.dev/pkg/minipack/internal/model"
)

func TestQueued_ChainTo(t *testing.T) {
	entry := &queued{key: "/p/a.js"}
	child := &queued{key: "/p/b.js", parent: entry}
	grandchild := &queued{key: "/p/c.js", parent: child}

	assert.Equal(t, []m.Path{"/p/a.js", "/p/b.js", "/p/c.js", "/p/a.js"}, grandchild.chainTo("/p/a.js"))
	assert.Equal(t, []m.Path{"/p/b.js", "/p/c.js", "/p/b.js"}, grandchild.chainTo("/p/b.js"))
	assert.Equal(t, []m.Path{"/p/c.js", "/p/c.js"}, grandchild.chainTo("/p/c.js"))
	assert.Nil(t, grandchild.chainTo("/p/d.js"))
	assert.Nil(t, child.chainTo("/p/c.js"))
}

func TestIDCounter(t *testing.T) {
	var ids idCounter

	assert.Equal(t, m.AssetID(0), ids.take())
	assert.Equal(t, m.AssetID(1), ids.take())
	assert.Equal(t, m.AssetID(2), ids.take())
}
