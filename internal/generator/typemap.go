package generator

import (
	"fmt"

	"github.com/codeon/govips/internal/introspection"
)

// goTypes maps native value type names to the Go types the generated
// signatures use.
var goTypes = map[string]string{
	"gboolean":                "bool",
	"gchararray":              "string",
	"gdouble":                 "float64",
	"gint":                    "int",
	"VipsBlob":                "*Blob",
	"VipsImage":               "*C.VipsImage",
	"VipsInterpolate":         "*Interpolator",
	"VipsOperationMath":       "OperationMath",
	"VipsOperationMath2":      "OperationMath2",
	"VipsOperationRound":      "OperationRound",
	"VipsOperationRelational": "OperationRelational",
	"VipsOperationBoolean":    "OperationBoolean",
	"VipsOperationComplex":    "OperationComplex",
	"VipsOperationComplex2":   "OperationComplex2",
	"VipsOperationComplexget": "OperationComplexGet",
	"VipsDirection":           "Direction",
	"VipsAngle":               "Angle",
	"VipsAngle45":             "Angle45",
	"VipsCoding":              "Coding",
	"VipsInterpretation":      "Interpretation",
	"VipsBandFormat":          "BandFormat",
	"VipsOperationMorphology": "OperationMorphology",
}

// optionMethodNames maps native value type names to the suffix of the
// typed Input/Output option constructor used when building the options
// list for the underlying call.
var optionMethodNames = map[string]string{
	"gboolean":        "Bool",
	"gchararray":      "String",
	"gdouble":         "Double",
	"gint":            "Int",
	"VipsArrayDouble": "DoubleArray",
	"VipsArrayImage":  "ImageArray",
	"VipsImage":       "Image",
}

// goTypeName resolves the Go type for an argument. A miss makes the
// whole operation unsupported.
func goTypeName(arg introspection.Argument) (string, error) {
	goType, ok := goTypes[arg.TypeName]
	if !ok {
		return "", fmt.Errorf("no Go type mapping for %s", arg.TypeName)
	}
	return goType, nil
}

// optionMethodName resolves the option constructor suffix for an
// argument. Enums are always passed by their integer value, whatever
// the specific enum type.
func optionMethodName(arg introspection.Argument) (string, error) {
	if arg.IsEnum {
		return "Int", nil
	}
	name, ok := optionMethodNames[arg.TypeName]
	if !ok {
		return "", fmt.Errorf("no option method mapping for %s", arg.TypeName)
	}
	return name, nil
}
