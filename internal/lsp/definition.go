package lsp

import (
	"encoding/json"

	"github.com/lal-lang/lal/internal/ast"
)

// DefinitionParams represents definition request parameters.
type DefinitionParams struct {
	TextDocumentPositionParams
}

// Location represents a location in a document.
type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

func (s *Server) handleDefinition(msg *jsonrpcMessage) *jsonrpcResponse {
	var params DefinitionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return failure(msg.ID, codeInvalidParams, "Invalid params: %v", err)
	}

	doc, ok := s.document(params.TextDocument.URI)
	if !ok || doc.Program == nil {
		return result(msg.ID, nil)
	}

	if loc := findDefinition(doc, params.Position); loc != nil {
		return result(msg.ID, loc)
	}
	return result(msg.ID, nil)
}

// findDefinition resolves the identifier under pos to the closest preceding
// declaration of the same name, falling back to the first later one so
// that calls to procedures declared further down still resolve.
func findDefinition(doc *Document, pos Position) *Location {
	ident := identAt(doc.Program, positionToOffset(doc.Content, pos))
	if ident == nil {
		return nil
	}

	var target *ast.Ident
	for _, decl := range declarations(doc.Program) {
		if decl.Name != ident.Name {
			continue
		}
		if decl.Span().Start <= ident.Span().Start {
			target = decl
			continue
		}
		if target == nil {
			target = decl
		}
		break
	}

	if target == nil {
		return nil
	}

	return &Location{
		URI:   doc.URI,
		Range: spanRange(doc.Content, target.Span()),
	}
}

// declarations lists every declared name in source order: bindings,
// procedures and parameters.
func declarations(program *ast.Program) []*ast.Ident {
	var decls []*ast.Ident

	ast.Walk(program, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.LetStmt:
			if n.Name != nil {
				decls = append(decls, n.Name)
			}
		case *ast.ProcedureStmt:
			decls = append(decls, n.Name)
		case *ast.Param:
			decls = append(decls, n.Name)
		}
		return true
	})

	return decls
}
