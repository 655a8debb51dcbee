package generator

import "fmt"

// Unit is the rendered code for one unique operation nickname: a free
// wrapper function, plus a chained ImageRef method when the operation
// has exactly one image input and one image output. Immutable once
// built.
type Unit struct {
	Nickname  string
	FuncName  string
	Text      string
	HasMethod bool
}

// SkippedEntry records an operation that failed generation, typically
// because an argument type has no mapping. It surfaces in the output
// as a comment so a reviewer sees exactly what was dropped.
type SkippedEntry struct {
	Nickname string
	Err      error
}

// Comment formats the entry the way it appears in the generated file.
func (s SkippedEntry) Comment() string {
	return fmt.Sprintf("// Unsupported: %s: %v", s.Nickname, s.Err)
}
