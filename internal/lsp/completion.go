package lsp

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode"

	"github.com/lal-lang/lal/internal/ast"
)

// CompletionParams represents completion request parameters.
type CompletionParams struct {
	TextDocumentPositionParams
}

// CompletionList represents a list of completion items.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// CompletionItem represents a completion item.
type CompletionItem struct {
	Label  string `json:"label"`
	Kind   int    `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

// Completion item kinds from the protocol.
const (
	completionKindFunction = 3
	completionKindVariable = 6
	completionKindKeyword  = 14
)

var keywords = []string{"else", "false", "if", "int", "return", "true", "void"}

func (s *Server) handleCompletion(msg *jsonrpcMessage) *jsonrpcResponse {
	var params CompletionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return failure(msg.ID, codeInvalidParams, "Invalid params: %v", err)
	}

	doc, ok := s.document(params.TextDocument.URI)
	if !ok {
		return result(msg.ID, CompletionList{Items: []CompletionItem{}})
	}

	return result(msg.ID, completions(doc, params.Position))
}

// completions offers keywords and declared names starting with the word
// being typed at pos.
func completions(doc *Document, pos Position) CompletionList {
	prefix := wordBefore(doc.Content, positionToOffset(doc.Content, pos))

	seen := make(map[string]bool)
	items := []CompletionItem{}

	add := func(item CompletionItem) {
		if seen[item.Label] || !strings.HasPrefix(item.Label, prefix) {
			return
		}
		seen[item.Label] = true
		items = append(items, item)
	}

	for _, kw := range keywords {
		add(CompletionItem{Label: kw, Kind: completionKindKeyword, Detail: "keyword"})
	}

	if doc.Program != nil {
		ast.Walk(doc.Program, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.ProcedureStmt:
				add(CompletionItem{Label: n.Name.Name, Kind: completionKindFunction, Detail: "procedure"})
			case *ast.LetStmt:
				if n.Name != nil {
					add(CompletionItem{Label: n.Name.Name, Kind: completionKindVariable, Detail: "int"})
				}
			case *ast.Param:
				add(CompletionItem{Label: n.Name.Name, Kind: completionKindVariable, Detail: "parameter"})
			}
			return true
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Label < items[j].Label
	})

	return CompletionList{Items: items}
}

// wordBefore returns the identifier characters immediately before offset.
func wordBefore(content string, offset int) string {
	runes := []rune(content)
	if offset > len(runes) {
		offset = len(runes)
	}

	start := offset
	for start > 0 {
		r := runes[start-1]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		start--
	}

	return string(runes[start:offset])
}
