package domain

// Kind identifies what a run targets
type Kind string

const (
	KindNone    Kind = ""
	KindTest    Kind = "test"
	KindFixture Kind = "fixture"
	KindFile    Kind = "file"
)

// Flag returns the runner flag selecting this kind (e.g. "--test")
func (k Kind) Flag() string {
	return "--" + string(k)
}

// Valid reports whether k is one of the runnable kinds
func (k Kind) Valid() bool {
	switch k {
	case KindTest, KindFixture, KindFile:
		return true
	}
	return false
}

// Declaration is one test or fixture declaration found in source text
type Declaration struct {
	Kind   Kind   // KindTest or KindFixture
	Name   string // Literal name with quotes stripped
	Offset int    // Byte offset of the test/fixture keyword
}

// CursorQuery is the text up to the end of the cursor's line and the cursor offset within it
type CursorQuery struct {
	Text   string
	Offset int
}

// RunTarget is the declaration a run resolves to
type RunTarget struct {
	Kind Kind
	Name string
}

// Empty reports whether no target was found
func (t RunTarget) Empty() bool {
	return t.Kind == KindNone
}
