package introspection

// Class is a node in the native operation class hierarchy. Handles are
// owned by the Registry that produced them and are valid for the
// duration of one generation run.
type Class interface {
	Name() string
}

// Registry provides read-only access to the native library's operation
// type system. The generator core depends only on this interface so it
// never touches the GObject reflection API directly; the cgo-backed
// implementation lives in vips.go and tests supply in-memory fakes.
type Registry interface {
	// Root returns the abstract base class all operations descend from.
	Root() Class

	// Children returns the direct subclasses of c. The native
	// hierarchy is a tree by construction, so the walk needs no cycle
	// protection.
	Children(c Class) []Class

	// IsAbstract reports whether c can never be instantiated. Abstract
	// classes are traversed for their children but generate nothing.
	IsAbstract(c Class) bool

	// Nickname resolves the canonical short name used for dispatch and
	// deduplication. A failed lookup means the registry itself is
	// broken and aborts the run.
	Nickname(c Class) (string, error)

	// Arguments returns the declared arguments of c with their flags,
	// priority and value type, in registry declaration order.
	Arguments(c Class) ([]Argument, error)
}

// Walk visits every class reachable from the registry root, the root
// included, depth-first in child-declaration order. The visit callback
// sees abstract classes too; a non-nil error stops the walk.
func Walk(reg Registry, visit func(Class) error) error {
	return walk(reg, reg.Root(), visit)
}

func walk(reg Registry, c Class, visit func(Class) error) error {
	if err := visit(c); err != nil {
		return err
	}
	for _, child := range reg.Children(c) {
		if err := walk(reg, child, visit); err != nil {
			return err
		}
	}
	return nil
}
