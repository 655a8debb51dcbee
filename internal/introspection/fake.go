package introspection

import "fmt"

// FakeClass is an in-memory Class node for tests of the generator
// pipeline, which never needs a loaded libvips.
type FakeClass struct {
	ClassName string
	Abstract  bool
	Nick      string
	Args      []Argument
	Kids      []*FakeClass
}

func (c *FakeClass) Name() string { return c.ClassName }

// FakeRegistry serves a hand-built class tree through the Registry
// interface.
type FakeRegistry struct {
	RootClass *FakeClass
}

func (r *FakeRegistry) Root() Class { return r.RootClass }

func (r *FakeRegistry) Children(c Class) []Class {
	fc := c.(*FakeClass)
	children := make([]Class, 0, len(fc.Kids))
	for _, child := range fc.Kids {
		children = append(children, child)
	}
	return children
}

func (r *FakeRegistry) IsAbstract(c Class) bool {
	return c.(*FakeClass).Abstract
}

func (r *FakeRegistry) Nickname(c Class) (string, error) {
	fc := c.(*FakeClass)
	if fc.Nick == "" {
		return "", fmt.Errorf("no nickname registered for type %s", fc.ClassName)
	}
	return fc.Nick, nil
}

func (r *FakeRegistry) Arguments(c Class) ([]Argument, error) {
	return c.(*FakeClass).Args, nil
}
