package lsp

import (
	"github.com/lal-lang/lal/internal/diag"
	"github.com/lal-lang/lal/internal/lexer"
)

// positionToOffset converts a zero-based line/character position into a rune
// offset. Positions past the end clamp to the end of content.
func positionToOffset(content string, pos Position) int {
	line, col, offset := 0, 0, 0

	for _, r := range content {
		if line == pos.Line && col == pos.Character {
			return offset
		}
		if r == '\n' {
			if line == pos.Line {
				return offset
			}
			line++
			col = 0
		} else {
			col++
		}
		offset++
	}

	return offset
}

// offsetToPosition is the inverse of positionToOffset.
func offsetToPosition(content string, offset int) Position {
	var pos Position

	i := 0
	for _, r := range content {
		if i == offset {
			break
		}
		if r == '\n' {
			pos.Line++
			pos.Character = 0
		} else {
			pos.Character++
		}
		i++
	}

	return pos
}

func spanRange(content string, span lexer.Span) Range {
	return Range{
		Start: Position{Line: span.Line - 1, Character: span.Column - 1},
		End:   offsetToPosition(content, span.End),
	}
}

func diagRange(content string, span diag.Span) Range {
	if !span.IsValid() {
		return Range{}
	}
	return Range{
		Start: Position{Line: span.Line - 1, Character: span.Column - 1},
		End:   offsetToPosition(content, span.End),
	}
}
