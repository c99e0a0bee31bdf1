package lints

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

// ParseError reports source text that could not be turned into a syntax
// tree. It carries the position where parsing broke so the caller can
// record the failure as a single finding and move on to the next file.
type ParseError struct {
	Filename string
	Line     int
	Column   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error", e.Filename, e.Line, e.Column)
}

// File is the parsed representation of one Python source file. It owns the
// raw text and the tree for the duration of a single lint pass and is
// discarded afterwards.
type File struct {
	Path      string
	Source    []byte
	Lines     []string
	Tree      *sitter.Tree
	Root      *sitter.Node
	Framework tt.Framework

	// Aliases maps local constructor names to their canonical type names,
	// built once from the file's import statements before traversal.
	Aliases map[string]string
}

// Close releases the underlying tree. The File must not be used afterwards.
func (f *File) Close() {
	if f.Tree != nil {
		f.Tree.Close()
		f.Tree = nil
	}
}

// ParseSource parses Python source text into a File. A file that cannot be
// parsed yields a *ParseError and no partial tree.
func ParseSource(path string, src []byte) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	root := tree.RootNode()
	if root == nil || root.HasError() {
		line, col := firstSyntaxError(root)
		tree.Close()
		return nil, &ParseError{Filename: path, Line: line, Column: col}
	}

	file := &File{
		Path:   path,
		Source: src,
		Lines:  strings.Split(string(src), "\n"),
		Tree:   tree,
		Root:   root,
	}
	file.Framework = DetectFramework(file)
	file.Aliases = BuildAliasMap(file)

	return file, nil
}

// firstSyntaxError locates the first error or missing node in the tree.
func firstSyntaxError(root *sitter.Node) (line, col int) {
	if root == nil {
		return 1, 1
	}

	line, col = 0, 0
	Inspect(root, func(n *sitter.Node) bool {
		if line > 0 {
			return false
		}
		if n.IsError() || n.IsMissing() {
			line = int(n.StartPoint().Row) + 1
			col = int(n.StartPoint().Column) + 1
			return false
		}
		return true
	})

	if line == 0 {
		line = int(root.StartPoint().Row) + 1
		col = int(root.StartPoint().Column) + 1
	}
	return line, col
}
