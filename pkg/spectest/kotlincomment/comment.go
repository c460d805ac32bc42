// Package kotlincomment extracts comments from Kotlin source files using
// tree-sitter. Scanning the parse tree rather than the raw text keeps
// annotation-shaped strings inside code (e.g. string literals) out of the
// results.
//
// Parsers are created fresh per parse. Reusing parsers across cancelled
// contexts leaves the tree-sitter cancellation flag set and fails later
// parses, so pooling is deliberately avoided.
package kotlincomment

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/kotlin"
)

// MaxTreeDepth caps recursion when walking parse trees.
const MaxTreeDepth = 1000

// Comment is a single comment found in Kotlin source, in source order.
type Comment struct {
	// Text is the comment body with the comment markers stripped.
	Text string
	// Block reports whether this was a /* ... */ comment.
	Block bool
	// Row is the 0-based source line the comment starts on.
	Row int
}

// Collect parses source as Kotlin and returns every comment in order of
// appearance. Malformed Kotlin still yields comments: tree-sitter produces
// a best-effort tree with error nodes rather than failing outright.
func Collect(ctx context.Context, source []byte) ([]Comment, error) {
	clean := Sanitize(source)

	parser := sitter.NewParser()
	parser.SetLanguage(kotlin.GetLanguage())
	defer parser.Close()

	tree, err := parser.ParseCtx(ctx, nil, clean)
	if err != nil {
		return nil, fmt.Errorf("parse kotlin source: %w", err)
	}
	defer tree.Close()

	var comments []Comment
	walk(tree.RootNode(), 0, func(node *sitter.Node) bool {
		if !isCommentNode(node.Type()) {
			return true
		}
		text := node.Content(clean)
		comments = append(comments, Comment{
			Text:  stripMarkers(text),
			Block: strings.HasPrefix(text, "/*"),
			Row:   int(node.StartPoint().Row),
		})
		return false
	})

	return comments, nil
}

// Blocks groups comments into logical annotation blocks: each block comment
// stands alone, while a run of line comments on adjacent rows merges into
// one block joined by newlines.
func Blocks(comments []Comment) []string {
	var blocks []string
	var run []string
	lastRow := -2

	flush := func() {
		if len(run) > 0 {
			blocks = append(blocks, strings.Join(run, "\n"))
			run = nil
		}
	}

	for _, c := range comments {
		if c.Block {
			flush()
			blocks = append(blocks, c.Text)
			lastRow = -2
			continue
		}
		if c.Row != lastRow+1 {
			flush()
		}
		run = append(run, c.Text)
		lastRow = c.Row
	}
	flush()

	return blocks
}

// Sanitize replaces NUL bytes that would break tree-sitter parsing.
func Sanitize(source []byte) []byte {
	if !bytes.ContainsRune(source, 0) {
		return source
	}
	return bytes.Map(func(r rune) rune {
		if r == 0 {
			return ' '
		}
		return r
	}, source)
}

func isCommentNode(nodeType string) bool {
	switch nodeType {
	case "comment", "line_comment", "multiline_comment", "block_comment":
		return true
	}
	return false
}

func stripMarkers(text string) string {
	if strings.HasPrefix(text, "/*") {
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
		return text
	}
	return strings.TrimPrefix(text, "//")
}

func walk(node *sitter.Node, depth int, visitor func(*sitter.Node) bool) {
	if depth > MaxTreeDepth {
		return
	}
	if !visitor(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), depth+1, visitor)
	}
}
