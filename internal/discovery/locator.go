package discovery

import (
	"regexp"
	"strings"

	"tcr/internal/domain"
)

// Locator finds the test or fixture that encloses a cursor position
type Locator interface {
	Locate(text string, cursorOffset int) domain.RunTarget
}

var (
	// fixturePattern matches fixture(`name`), fixture('name') and fixture `name`,
	// optionally preceded by a statement boundary or a comment opener.
	fixturePattern = regexp.MustCompile(`(?m)(^|;|\s+|//|/\*)fixture\s*(\(.+?\)|\x60.+?\x60)`)

	// testPattern matches test('name', ...) with any chain of modifiers between the
	// keyword and the call, e.g. test.skip('name', ...) or test.page('url')('name', ...).
	// The trailing comma requires a test body argument after the name.
	testPattern = regexp.MustCompile(`(?m)(^|;|\s+|//|/\*)test\s*(?:\.[a-zA-Z]+\([^)]*\))*\s*\(\s*(.+?)\s*('|"|\x60)\s*,`)

	// cleanupNamePattern strips one opening and one closing quote, with an adjacent parenthesis
	cleanupNamePattern = regexp.MustCompile(`(^\(?\s*['"\x60])|(['"\x60]\s*\)?$)`)
)

// RegexLocator locates declarations by textual proximity. It does not parse the source,
// so declarations inside strings or comments are matched as well.
type RegexLocator struct{}

// NewRegexLocator creates a new RegexLocator
func NewRegexLocator() *RegexLocator {
	return &RegexLocator{}
}

// Locate returns the nearest declaration starting at or before cursorOffset
func (l *RegexLocator) Locate(text string, cursorOffset int) domain.RunTarget {
	decls := l.Declarations(text)
	for i := len(decls) - 1; i >= 0; i-- {
		if cursorOffset >= decls[i].Offset {
			return domain.RunTarget{Kind: decls[i].Kind, Name: decls[i].Name}
		}
	}
	return domain.RunTarget{}
}

type match struct {
	decl       domain.Declaration
	start, end int
}

// Declarations returns every fixture and test declaration in text, ordered by offset.
// Scanning resumes at the end of each accepted match; at the same position a fixture wins over a test.
func (l *RegexLocator) Declarations(text string) []domain.Declaration {
	decls := []domain.Declaration{}
	for pos := 0; pos < len(text); {
		m, ok := nextMatch(text, pos)
		if !ok {
			break
		}
		decls = append(decls, m.decl)
		pos = m.end
	}
	return decls
}

// nextMatch finds the leftmost declaration of either kind starting at or after pos
func nextMatch(text string, pos int) (match, bool) {
	var best match
	found := false
	for _, re := range []*regexp.Regexp{fixturePattern, testPattern} {
		m, ok := findFrom(re, text, pos)
		if ok && (!found || m.start < best.start) {
			best, found = m, true
		}
	}
	return best, found
}

// findFrom runs re on text[pos:]. A "^" boundary at the cut only counts when pos is a real line start.
func findFrom(re *regexp.Regexp, text string, pos int) (match, bool) {
	for from := pos; from <= len(text); from++ {
		loc := re.FindStringSubmatchIndex(text[from:])
		if loc == nil {
			return match{}, false
		}
		if loc[0] == 0 && loc[3] == 0 && from > 0 && text[from-1] != '\n' {
			continue
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += from
			}
		}
		return newMatch(text, loc), true
	}
	return match{}, false
}

// newMatch builds a declaration from a match; group 2 of both patterns captures the name
func newMatch(text string, loc []int) match {
	start, end := loc[0], loc[1]
	statement := cropStatement(text[start:end])

	kind := domain.KindFixture
	if strings.HasPrefix(statement, "test") {
		kind = domain.KindTest
	}

	return match{
		decl: domain.Declaration{
			Kind:   kind,
			Name:   CleanName(text[loc[4]:loc[5]]),
			Offset: end - len(statement),
		},
		start: start,
		end:   end,
	}
}

// cropStatement trims the boundary a match consumed before the test/fixture keyword
func cropStatement(s string) string {
	s = strings.TrimSpace(s)
	for _, sep := range []string{";", "//", "/*"} {
		if strings.HasPrefix(s, sep) {
			s = s[len(sep):]
			break
		}
	}
	return strings.TrimSpace(s)
}

// CleanName strips the quotes (and a wrapping parenthesis) around a declaration name
func CleanName(raw string) string {
	return cleanupNamePattern.ReplaceAllString(raw, "")
}
