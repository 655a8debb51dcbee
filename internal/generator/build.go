package generator

import (
	"fmt"
	"strings"

	"github.com/codeon/govips/internal/introspection"
)

// Build renders the code for one operation. Outputs become return
// values declared as local slots whose addresses are passed as output
// options; inputs become value parameters, with enums coerced to their
// integer representation. An unmappable argument type fails the whole
// operation, which the caller records as skipped.
func Build(op introspection.Operation) (Unit, error) {
	funcName := UpperCamel(op.Nickname)

	var (
		args          []string
		decls         []string
		returnTypes   []string
		returnValues  []string
		inputOptions  []string
		outputOptions []string
		methodArgs    []string
		callValues    []string
		imagesIn      int
		imagesOut     int
	)

	for _, arg := range op.Required {
		name := LowerCamel(arg.Name)
		goType, err := goTypeName(arg)
		if err != nil {
			return Unit{}, err
		}
		optionMethod, err := optionMethodName(arg)
		if err != nil {
			return Unit{}, err
		}

		if arg.Flags.IsOutput() {
			if arg.IsImage {
				imagesOut++
			} else {
				methodArgs = append(methodArgs, fmt.Sprintf("%s *%s", name, goType))
			}
			returnTypes = append(returnTypes, goType)
			decls = append(decls, fmt.Sprintf("var %s %s", name, goType))
			returnValues = append(returnValues, name)
			// The option is keyed by the original native name, not the
			// Go spelling: that name is what the call dispatches on.
			outputOptions = append(outputOptions,
				fmt.Sprintf("Output%s(%q, &%s),", optionMethod, arg.Name, name))
		} else {
			if arg.IsImage {
				imagesIn++
			} else {
				callValues = append(callValues, name)
				methodArgs = append(methodArgs, fmt.Sprintf("%s %s", name, goType))
			}
			args = append(args, fmt.Sprintf("%s %s", name, goType))
			argName := name
			if arg.IsEnum {
				argName = fmt.Sprintf("int(%s)", name)
			}
			inputOptions = append(inputOptions,
				fmt.Sprintf("Input%s(%q, %s),", optionMethod, arg.Name, argName))
		}
	}

	args = append(args, "options ...*Option")
	decls = append(decls, "var err error")
	returnTypes = append(returnTypes, "error")
	returnValues = append(returnValues, "err")
	methodArgs = append(methodArgs, "options ...*Option")
	callValues = append(callValues, "options...")

	d := funcData{
		OpName:       op.Nickname,
		FuncName:     funcName,
		Args:         strings.Join(args, ", "),
		ReturnTypes:  strings.Join(returnTypes, ", "),
		Decls:        strings.Join(decls, "\n\t"),
		Options:      strings.Join(append(inputOptions, outputOptions...), "\n\t\t"),
		ReturnValues: strings.Join(returnValues, ", "),
		MethodArgs:   strings.Join(methodArgs, ", "),
		CallValues:   strings.Join(callValues, ", "),
	}

	text, err := renderPrimary(d)
	if err != nil {
		return Unit{}, fmt.Errorf("rendering %s: %w", op.Nickname, err)
	}

	hasMethod := imagesIn == 1 && imagesOut == 1
	if hasMethod {
		method, err := renderMethod(d)
		if err != nil {
			return Unit{}, fmt.Errorf("rendering %s method: %w", op.Nickname, err)
		}
		text = text + "\n" + method
	}

	return Unit{
		Nickname:  op.Nickname,
		FuncName:  funcName,
		Text:      text,
		HasMethod: hasMethod,
	}, nil
}
