package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	m "minipack.dev/pkg/minipack/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input   io.Reader
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

type assetExtractedMsg struct {
	asset m.Asset
}

type graphBuiltMsg struct {
	graph m.Graph
	err   error
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.program = tea.NewProgram(
		newGraphModel(),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			slog.Error("TUI program stopped", "error", err)
		}
	}()

	return nil
}

// Close stops the program and waits for the terminal to be restored.
func (t *TUI) Close(_ context.Context) {
	if t.program == nil {
		return
	}

	t.program.Quit()
	<-t.done
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait(ctx context.Context) {
	if t.done == nil {
		return
	}

	select {
	case <-t.done:
	case <-ctx.Done():
	}
}

// DisplayProgress forwards an extracted asset to the program.
func (t *TUI) DisplayProgress(ctx context.Context, asset m.Asset) {
	if t.program == nil || ctx.Err() != nil {
		return
	}

	t.program.Send(assetExtractedMsg{asset: asset})
}

// DisplayGraph hands the finished graph (or the build error) to the program.
func (t *TUI) DisplayGraph(ctx context.Context, graph m.Graph, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if t.program != nil {
		t.program.Send(graphBuiltMsg{graph: graph, err: err})
	}

	return err
}

// reservedLines is the space taken by header and footer around the viewport.
const reservedLines = 5

// graphModel is the Bubble Tea model behind the TUI.
type graphModel struct {
	progress []m.Asset
	graph    m.Graph
	built    bool
	err      error
	selected int
	showCode bool
	viewport viewport.Model
	ready    bool
	quitting bool
	styles   styles
}

func newGraphModel() graphModel {
	return graphModel{styles: defaultStyles()}
}

func (gm graphModel) Init() tea.Cmd {
	return nil
}

func (gm graphModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - reservedLines
		if height < 1 {
			height = 1
		}

		if !gm.ready {
			gm.viewport = viewport.New(msg.Width, height)
			gm.ready = true
		} else {
			gm.viewport.Width = msg.Width
			gm.viewport.Height = height
		}

		gm.viewport.SetContent(gm.content())

		return gm, nil

	case assetExtractedMsg:
		gm.progress = append(gm.progress, msg.asset)

		return gm.refresh(), nil

	case graphBuiltMsg:
		gm.graph = msg.graph
		gm.err = msg.err
		gm.built = true
		gm.selected = 0

		return gm.refresh(), nil

	case tea.KeyMsg:
		return gm.handleKeyPress(msg)
	}

	return gm, nil
}

//nolint:exhaustive // Only navigation keys are handled here.
func (gm graphModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		gm.quitting = true
		return gm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		gm.quitting = true
		return gm, tea.Quit

	case "down", "j":
		if gm.selected < len(gm.graph)-1 {
			gm.selected++
		}

		return gm.refresh(), nil

	case "up", "k":
		if gm.selected > 0 {
			gm.selected--
		}

		return gm.refresh(), nil

	case "enter", " ":
		gm.showCode = !gm.showCode

		return gm.refresh(), nil
	}

	if !gm.ready {
		return gm, nil
	}

	var cmd tea.Cmd

	gm.viewport, cmd = gm.viewport.Update(msg)

	return gm, cmd
}

func (gm graphModel) refresh() graphModel {
	if gm.ready {
		gm.viewport.SetContent(gm.content())
	}

	return gm
}

func (gm graphModel) View() string {
	if gm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(gm.styles.Title.Render("minipack · dependency graph"))
	b.WriteString("\n")
	b.WriteString(gm.status())
	b.WriteString("\n\n")

	if gm.ready {
		b.WriteString(gm.viewport.View())
	} else {
		b.WriteString(gm.content())
	}

	b.WriteString("\n")
	b.WriteString(gm.styles.Help.Render("↑/↓ select • enter code • pgup/pgdn scroll • q quit"))

	return b.String()
}

func (gm graphModel) status() string {
	switch {
	case gm.built && gm.err != nil:
		return gm.styles.Failure.Render("build failed")
	case gm.built:
		return gm.styles.Success.Render(fmt.Sprintf("%d assets, %d edges", len(gm.graph), len(gm.graph.Edges())))
	default:
		return gm.styles.Subtitle.Render(fmt.Sprintf("building… %d assets extracted", len(gm.progress)))
	}
}

func (gm graphModel) content() string {
	var b strings.Builder

	switch {
	case gm.built && gm.err != nil:
		b.WriteString(gm.styles.Failure.Render(gm.err.Error()))
		b.WriteString("\n")
	case gm.built:
		gm.writeAssets(&b)
	default:
		for _, asset := range gm.progress {
			fmt.Fprintf(&b, "  #%d %s\n", asset.ID, asset.Filename)
		}
	}

	return b.String()
}

func (gm graphModel) writeAssets(b *strings.Builder) {
	if len(gm.graph) == 0 {
		b.WriteString("  No assets\n")
		return
	}

	for i, asset := range gm.graph {
		line := fmt.Sprintf("#%d %s  [%s]", asset.ID, asset.Filename, formatMapping(asset))
		if i == gm.selected {
			b.WriteString(gm.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(gm.styles.Normal.Render("  " + line))
		}

		b.WriteString("\n")
	}

	if !gm.showCode || gm.selected >= len(gm.graph) {
		return
	}

	asset := gm.graph[gm.selected]

	b.WriteString("\n")
	b.WriteString(gm.styles.Title.Render(fmt.Sprintf("Asset #%d · %s", asset.ID, asset.Filename)))
	b.WriteString("\n")

	for _, ref := range sortedReferences(asset.Mapping) {
		fmt.Fprintf(b, "  %s => #%d\n", ref, asset.Mapping[ref])
	}

	b.WriteString("\n")
	b.WriteString(gm.styles.Code.Render(strings.TrimRight(asset.Code, "\n")))
	b.WriteString("\n")
}
