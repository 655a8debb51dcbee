package generator

import (
	"strings"
	"text/template"
)

// The templates reproduce the shape of the hand-maintained operator
// file they replaced: the trailing variadic is named options so the
// body can append the typed input and output options to it before
// dispatching by nickname.
const primaryTemplate = `
// {{.FuncName}} executes the '{{.OpName}}' operation
func {{.FuncName}}({{.Args}}) ({{.ReturnTypes}}) {
	{{.Decls}}
	options = append(options,
		{{.Options}}
	)
	incOpCounter("{{.OpName}}")
	err = vipsCall("{{.OpName}}", options)
	return {{.ReturnValues}}
}
`

// The method form mutates the receiver's held image only after the
// wrapped function succeeds.
const methodTemplate = `
// {{.FuncName}} executes the '{{.OpName}}' operation
func (in *ImageRef) {{.FuncName}}({{.MethodArgs}}) error {
	out, err := {{.FuncName}}(in.image, {{.CallValues}})
	if err != nil {
		return err
	}
	in.SetImage(out)
	return nil
}
`

var (
	primaryTmpl = template.Must(template.New("primary").Parse(primaryTemplate))
	methodTmpl  = template.Must(template.New("method").Parse(methodTemplate))
)

// funcData is the intermediate representation one operation renders
// from: every field is already formatted Go source, so the templates
// only lay lines out.
type funcData struct {
	OpName       string
	FuncName     string
	Args         string
	ReturnTypes  string
	Decls        string
	Options      string
	ReturnValues string
	MethodArgs   string
	CallValues   string
}

func renderPrimary(d funcData) (string, error) {
	var b strings.Builder
	if err := primaryTmpl.Execute(&b, d); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderMethod(d funcData) (string, error) {
	var b strings.Builder
	if err := methodTmpl.Execute(&b, d); err != nil {
		return "", err
	}
	return b.String(), nil
}
