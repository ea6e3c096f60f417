package controller

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "minipack.dev/pkg/minipack/internal/model"
)

func update(t *testing.T, gm graphModel, msg tea.Msg) graphModel {
	t.Helper()

	next, _ := gm.Update(msg)

	updated, ok := next.(graphModel)
	require.True(t, ok)

	return updated
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestGraphModel_Progress(t *testing.T) {
	gm := newGraphModel()

	gm = update(t, gm, assetExtractedMsg{asset: m.Asset{ID: 0, Filename: "/src/index.js"}})
	gm = update(t, gm, assetExtractedMsg{asset: m.Asset{ID: 1, Filename: "/src/a.js"}})

	view := gm.View()
	assert.Contains(t, view, "2 assets extracted")
	assert.Contains(t, view, "#0 /src/index.js")
	assert.Contains(t, view, "#1 /src/a.js")
}

func TestGraphModel_GraphBuilt(t *testing.T) {
	gm := update(t, newGraphModel(), graphBuiltMsg{graph: sampleGraph()})

	view := gm.View()
	assert.Contains(t, view, "3 assets, 2 edges")
	assert.Contains(t, view, "> #0 /src/index.js")
	assert.Contains(t, view, "./a.js -> 1, ./b.js -> 2")
}

func TestGraphModel_BuildFailed(t *testing.T) {
	gm := update(t, newGraphModel(), graphBuiltMsg{err: errors.New("parse error in /src/bad.js")})

	view := gm.View()
	assert.Contains(t, view, "build failed")
	assert.Contains(t, view, "parse error in /src/bad.js")
}

func TestGraphModel_Selection(t *testing.T) {
	gm := update(t, newGraphModel(), graphBuiltMsg{graph: sampleGraph()})

	gm = update(t, gm, key("up"))
	assert.Equal(t, 0, gm.selected)

	gm = update(t, gm, key("down"))
	gm = update(t, gm, key("j"))
	gm = update(t, gm, key("down"))
	assert.Equal(t, 2, gm.selected)
	assert.Contains(t, gm.View(), "> #2 /src/b.js")

	gm = update(t, gm, key("k"))
	assert.Equal(t, 1, gm.selected)
}

func TestGraphModel_ShowCode(t *testing.T) {
	gm := update(t, newGraphModel(), graphBuiltMsg{graph: sampleGraph()})

	assert.NotContains(t, gm.View(), "require(")

	gm = update(t, gm, key("enter"))
	view := gm.View()
	assert.Contains(t, view, "Asset #0")
	assert.Contains(t, view, "./a.js => #1")
	assert.Contains(t, view, "require(\"./a.js\")")

	gm = update(t, gm, key("enter"))
	assert.NotContains(t, gm.View(), "require(")
}

func TestGraphModel_WindowSize(t *testing.T) {
	gm := update(t, newGraphModel(), tea.WindowSizeMsg{Width: 80, Height: 24})
	require.True(t, gm.ready)
	assert.Equal(t, 24-reservedLines, gm.viewport.Height)

	gm = update(t, gm, graphBuiltMsg{graph: sampleGraph()})
	assert.Contains(t, gm.View(), "/src/a.js")

	gm = update(t, gm, tea.WindowSizeMsg{Width: 100, Height: 2})
	assert.Equal(t, 100, gm.viewport.Width)
	assert.Equal(t, 1, gm.viewport.Height)
}

func TestGraphModel_Quit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		t.Run(k, func(t *testing.T) {
			next, cmd := newGraphModel().Update(key(k))
			require.NotNil(t, cmd)

			gm, ok := next.(graphModel)
			require.True(t, ok)
			assert.True(t, gm.quitting)
			assert.Empty(t, gm.View())
		})
	}
}

func TestTUI_WithoutProgram(t *testing.T) {
	tui := NewTUI(nil, nil)
	ctx := context.Background()
	buildErr := errors.New("boom")

	tui.DisplayProgress(ctx, m.Asset{})
	tui.Wait(ctx)
	tui.Close(ctx)

	assert.NoError(t, tui.DisplayGraph(ctx, sampleGraph(), nil))
	assert.ErrorIs(t, tui.DisplayGraph(ctx, nil, buildErr), buildErr)
}
