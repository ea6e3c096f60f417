package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "minipack.dev/pkg/minipack/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayProgress prints one line per extracted asset.
func (s *SimpleUI) DisplayProgress(ctx context.Context, asset m.Asset) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("extracted #%d %s (%d dependencies)\n", asset.ID, asset.Filename, len(asset.Dependencies))
}

// DisplayGraph prints the asset table or the build error.
func (s *SimpleUI) DisplayGraph(ctx context.Context, graph m.Graph, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("build error: %v\n", err)
		return err
	}

	s.printf("\n%s", renderGraphTable(graph))

	return nil
}

func renderGraphTable(graph m.Graph) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Filename", "Dependencies"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	edges := 0

	for _, asset := range graph {
		table.Append([]string{
			fmt.Sprintf("%d", asset.ID),
			string(asset.Filename),
			formatMapping(asset),
		})

		edges += len(asset.Mapping)
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d", len(graph)),
		"Assets",
		fmt.Sprintf("%d Edges", edges),
	})

	table.Render()

	return tableBuffer.String()
}

// formatMapping renders "ref -> id" pairs in declaration order, each
// reference once.
func formatMapping(asset m.Asset) string {
	if len(asset.Dependencies) == 0 {
		return "-"
	}

	seen := make(map[string]struct{}, len(asset.Dependencies))
	parts := make([]string, 0, len(asset.Dependencies))

	for _, ref := range asset.Dependencies {
		if _, ok := seen[ref]; ok {
			continue
		}

		seen[ref] = struct{}{}

		if id, ok := asset.Mapping[ref]; ok {
			parts = append(parts, fmt.Sprintf("%s -> %d", ref, id))
		} else {
			parts = append(parts, ref+" -> ?")
		}
	}

	return strings.Join(parts, ", ")
}

// sortedReferences returns the mapping keys in lexical order.
func sortedReferences(mapping m.Mapping) []string {
	refs := make([]string, 0, len(mapping))
	for ref := range mapping {
		refs = append(refs, ref)
	}

	sort.Strings(refs)

	return refs
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
