package introspection

/*
#cgo pkg-config: vips
#include <stdlib.h>
#include <vips/vips.h>

typedef struct {
	char *name;
	char *type_name;
	int flags;
	int priority;
	int is_image;
	int is_enum;
} ArgInfo;

static GType *gen_list_children(GType parent, guint *n) {
	return g_type_children(parent, n);
}

static int gen_type_is_abstract(GType t) {
	return G_TYPE_IS_ABSTRACT(t);
}

static const char *gen_nickname(GType t) {
	return vips_nickname_find(t);
}

static ArgInfo *gen_list_args(const char *nickname, int *n) {
	VipsOperation *op;
	GParamSpec **pspecs;
	guint n_props;
	ArgInfo *out;
	int count = 0;
	guint i;

	op = vips_operation_new(nickname);
	if (op == NULL) {
		*n = -1;
		return NULL;
	}

	pspecs = g_object_class_list_properties(G_OBJECT_GET_CLASS(op), &n_props);
	out = calloc(n_props ? n_props : 1, sizeof(ArgInfo));
	for (i = 0; i < n_props; i++) {
		GParamSpec *pspec = pspecs[i];
		VipsArgumentClass *argument_class;
		VipsArgumentInstance *argument_instance;
		GType value_type;

		// Plain GObject properties that are not vips arguments are
		// not part of the operation's call signature.
		if (vips_object_get_argument(VIPS_OBJECT(op),
			g_param_spec_get_name(pspec),
			&pspec, &argument_class, &argument_instance) != 0)
			continue;

		value_type = G_PARAM_SPEC_VALUE_TYPE(pspec);
		out[count].name = g_strdup(g_param_spec_get_name(pspec));
		out[count].type_name = g_strdup(g_type_name(value_type));
		out[count].flags = (int) argument_class->flags;
		out[count].priority = argument_class->priority;
		out[count].is_image = g_type_is_a(value_type, VIPS_TYPE_IMAGE) ? 1 : 0;
		out[count].is_enum = G_IS_PARAM_SPEC_ENUM(pspec) ? 1 : 0;
		count++;
	}
	g_free(pspecs);
	g_object_unref(op);
	*n = count;
	return out;
}

static void gen_free_args(ArgInfo *args, int n) {
	int i;
	for (i = 0; i < n; i++) {
		g_free(args[i].name);
		g_free(args[i].type_name);
	}
	free(args);
}
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// VipsRegistry reads the operation hierarchy of the loaded libvips
// library through GObject reflection. It initializes libvips once and
// holds no state of its own; all handles are GType values.
type VipsRegistry struct {
	root gtypeClass
}

// NewVipsRegistry initializes libvips and locates the root operation
// type.
func NewVipsRegistry() (*VipsRegistry, error) {
	name := C.CString("gen-operators")
	defer C.free(unsafe.Pointer(name))
	if C.vips_init(name) != 0 {
		return nil, fmt.Errorf("failed to initialize libvips")
	}

	rootName := C.CString("VipsOperation")
	defer C.free(unsafe.Pointer(rootName))
	root := C.g_type_from_name(rootName)
	if root == 0 {
		return nil, fmt.Errorf("VipsOperation type not registered")
	}
	return &VipsRegistry{root: gtypeClass(root)}, nil
}

// Shutdown releases libvips. The registry is unusable afterwards.
func (r *VipsRegistry) Shutdown() {
	C.vips_shutdown()
}

// Root returns the abstract VipsOperation base class.
func (r *VipsRegistry) Root() Class {
	return r.root
}

// Children returns the direct subclasses of c.
func (r *VipsRegistry) Children(c Class) []Class {
	var n C.guint
	childPtr := C.gen_list_children(C.GType(c.(gtypeClass)), &n)
	if childPtr == nil || n == 0 {
		return nil
	}
	defer C.g_free(C.gpointer(unsafe.Pointer(childPtr)))

	childSlice := (*[1 << 20]C.GType)(unsafe.Pointer(childPtr))[:n:n]
	children := make([]Class, 0, int(n))
	for _, gtype := range childSlice {
		children = append(children, gtypeClass(gtype))
	}
	return children
}

// IsAbstract reports whether c can be instantiated.
func (r *VipsRegistry) IsAbstract(c Class) bool {
	return C.gen_type_is_abstract(C.GType(c.(gtypeClass))) != 0
}

// Nickname resolves the canonical operation name for c.
func (r *VipsRegistry) Nickname(c Class) (string, error) {
	nickname := C.gen_nickname(C.GType(c.(gtypeClass)))
	if nickname == nil {
		return "", fmt.Errorf("no nickname registered for type %s", c.Name())
	}
	return C.GoString(nickname), nil
}

// Arguments instantiates a representative operation for c and lists its
// declared arguments in registry order.
func (r *VipsRegistry) Arguments(c Class) ([]Argument, error) {
	nickname, err := r.Nickname(c)
	if err != nil {
		return nil, err
	}

	cNickname := C.CString(nickname)
	defer C.free(unsafe.Pointer(cNickname))

	var n C.int
	argsPtr := C.gen_list_args(cNickname, &n)
	if n < 0 {
		return nil, fmt.Errorf("cannot instantiate operation %s", nickname)
	}
	if argsPtr == nil || n == 0 {
		return nil, nil
	}
	defer C.gen_free_args(argsPtr, n)

	argsSlice := (*[1 << 20]C.ArgInfo)(unsafe.Pointer(argsPtr))[:n:n]
	args := make([]Argument, 0, int(n))
	for _, cArg := range argsSlice {
		args = append(args, Argument{
			Name:     C.GoString(cArg.name),
			TypeName: C.GoString(cArg.type_name),
			Flags:    ArgumentFlags(cArg.flags),
			Priority: int(cArg.priority),
			IsImage:  cArg.is_image != 0,
			IsEnum:   cArg.is_enum != 0,
		})
	}
	return args, nil
}

// gtypeClass wraps a GType as a Class handle.
type gtypeClass C.GType

func (c gtypeClass) Name() string {
	return C.GoString(C.g_type_name(C.GType(c)))
}
