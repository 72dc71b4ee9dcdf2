package discovery

import (
	"strings"
	"unicode/utf8"

	"tcr/internal/domain"
)

// QueryAt builds a cursor query from a zero-based line and a zero-based column counted in characters,
// the way editors report positions. Positions past the end are clamped.
func QueryAt(text string, line, column int) domain.CursorQuery {
	pos := 0
	for l := 0; l < line; l++ {
		nl := strings.IndexByte(text[pos:], '\n')
		if nl < 0 {
			pos = len(text)
			break
		}
		pos += nl + 1
	}

	for c := 0; c < column && pos < len(text) && text[pos] != '\n'; c++ {
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}

	return QueryAtOffset(text, pos)
}

// QueryAtOffset builds a cursor query from a byte offset. The query text runs through the end
// of the cursor's line so a declaration whose name starts on that line is still matched.
func QueryAtOffset(text string, offset int) domain.CursorQuery {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	end := len(text)
	if nl := strings.IndexByte(text[offset:], '\n'); nl >= 0 {
		end = offset + nl + 1
	}

	return domain.CursorQuery{Text: text[:end], Offset: offset}
}
