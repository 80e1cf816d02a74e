package lsp

import (
	"encoding/json"
	"fmt"

	"github.com/lal-lang/lal/internal/ast"
	"github.com/lal-lang/lal/internal/astdump"
)

// HoverParams represents hover request parameters.
type HoverParams struct {
	TextDocumentPositionParams
}

// Hover represents hover information.
type Hover struct {
	Contents MarkupContent `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

func (s *Server) handleHover(msg *jsonrpcMessage) *jsonrpcResponse {
	var params HoverParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return failure(msg.ID, codeInvalidParams, "Invalid params: %v", err)
	}

	doc, ok := s.document(params.TextDocument.URI)
	if !ok || doc.Program == nil {
		return result(msg.ID, nil)
	}

	if hover := getHover(doc, params.Position); hover != nil {
		return result(msg.ID, hover)
	}
	return result(msg.ID, nil)
}

// getHover describes the innermost node under pos.
func getHover(doc *Document, pos Position) *Hover {
	offset := positionToOffset(doc.Content, pos)

	node := nodeAt(doc.Program, offset)
	if node == nil {
		return nil
	}

	kind := astdump.Build(node).Kind
	rng := spanRange(doc.Content, node.Span())

	return &Hover{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: fmt.Sprintf("```lal\n%s\n```\n%s", node.String(), kind),
		},
		Range: &rng,
	}
}

// nodeAt returns the deepest node whose span contains offset. The program
// root is never returned.
func nodeAt(program *ast.Program, offset int) ast.Node {
	var found ast.Node

	ast.Walk(program, func(n ast.Node) bool {
		if _, ok := n.(*ast.Program); ok {
			return true
		}

		span := n.Span()
		if offset < span.Start || offset >= span.End {
			return false
		}

		found = n
		return true
	})

	return found
}

func identAt(program *ast.Program, offset int) *ast.Ident {
	ident, _ := nodeAt(program, offset).(*ast.Ident)
	return ident
}
