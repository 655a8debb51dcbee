package introspection

// ArgumentFlags describes how an operation argument participates in a
// call. The values mirror the native VipsArgumentFlags bits.
type ArgumentFlags int

const (
	ArgumentRequired   ArgumentFlags = 1
	ArgumentConstruct  ArgumentFlags = 2
	ArgumentSetOnce    ArgumentFlags = 4
	ArgumentSetAlways  ArgumentFlags = 8
	ArgumentInput      ArgumentFlags = 16
	ArgumentOutput     ArgumentFlags = 32
	ArgumentDeprecated ArgumentFlags = 64
	ArgumentModify     ArgumentFlags = 128
)

// IsRequired reports whether the argument must be supplied.
func (f ArgumentFlags) IsRequired() bool { return f&ArgumentRequired != 0 }

// IsOutput reports whether the operation returns a value through the argument.
func (f ArgumentFlags) IsOutput() bool { return f&ArgumentOutput != 0 }

// IsDeprecated reports whether the argument is kept only for compatibility.
func (f ArgumentFlags) IsDeprecated() bool { return f&ArgumentDeprecated != 0 }

// Argument represents one declared argument of a libvips operation.
// Name is unique within an operation and is the key the native call
// dispatches on, so it is carried verbatim alongside any Go-side
// respelling.
type Argument struct {
	Name     string
	TypeName string // native value type name, e.g. "gdouble" or "VipsImage"
	Flags    ArgumentFlags
	Priority int // lower sorts first in the generated signature
	IsImage  bool
	IsEnum   bool
}

// Operation is a concrete operation class resolved to its nickname and
// its qualifying required arguments, already priority-sorted with
// deprecated arguments dropped.
type Operation struct {
	Nickname string
	Required []Argument
}
