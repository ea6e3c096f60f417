package adapter

import (
	"context"
	"fmt"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"

	m "minipack.dev/pkg/minipack/internal/model"
)

// ParsedModule is the structural form of a module. The domain layer treats it
// as opaque and only hands it back to adapters.
type ParsedModule struct {
	Filename m.Path
	Source   []byte

	ast *js.AST
}

// ScriptAdapter encapsulates JavaScript-specific parsing and import
// discovery so the domain layer can build graphs without inspecting syntax
// trees.
type ScriptAdapter interface {
	// Parse builds a syntax tree for the module source.
	Parse(ctx context.Context, filename m.Path, src []byte) (*ParsedModule, error)

	// EnumerateImports returns the module specifiers of top-level import
	// declarations in declaration order. Dynamic import() calls and
	// require() are not followed.
	EnumerateImports(module *ParsedModule) []string
}

// LocalScriptAdapter provides a ScriptAdapter backed by tdewolff/parse.
type LocalScriptAdapter struct{}

// NewLocalScriptAdapter constructs a LocalScriptAdapter.
func NewLocalScriptAdapter() *LocalScriptAdapter {
	return &LocalScriptAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalScriptAdapter) Parse(ctx context.Context, filename m.Path, src []byte) (*ParsedModule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree, err := js.Parse(parse.NewInputBytes(src), js.Options{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &ParsedModule{
		Filename: filename,
		Source:   src,
		ast:      tree,
	}, nil
}

// EnumerateImports walks the module body for import declarations.
func (a *LocalScriptAdapter) EnumerateImports(module *ParsedModule) []string {
	imports := make([]string, 0)

	if module == nil || module.ast == nil {
		return imports
	}

	for _, stmt := range module.ast.List {
		importStmt, ok := stmt.(*js.ImportStmt)
		if !ok || importStmt.Module == nil {
			continue
		}

		imports = append(imports, unquote(importStmt.Module))
	}

	return imports
}

// unquote strips the string delimiters the lexer keeps on module specifiers.
func unquote(literal []byte) string {
	if len(literal) >= 2 {
		first, last := literal[0], literal[len(literal)-1]
		if first == last && (first == '"' || first == '\'') {
			return string(literal[1 : len(literal)-1])
		}
	}

	return string(literal)
}
