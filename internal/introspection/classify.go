package introspection

import (
	"fmt"
	"sort"
)

// RequiredArguments filters args down to the ones that must appear in a
// generated signature: the REQUIRED flag set and DEPRECATED clear. The
// result is sorted by ascending priority; the sort is stable so
// equal-priority arguments keep their registry declaration order.
func RequiredArguments(args []Argument) []Argument {
	var required []Argument
	for _, arg := range args {
		if !arg.Flags.IsRequired() {
			continue
		}
		if arg.Flags.IsDeprecated() {
			continue
		}
		required = append(required, arg)
	}
	sort.SliceStable(required, func(i, j int) bool {
		return required[i].Priority < required[j].Priority
	})
	return required
}

// FirstOutput returns the first argument flagged OUTPUT, if any. The
// renderer collects every output as a return value; this query only
// answers whether the operation produces a result at all.
func FirstOutput(args []Argument) (Argument, bool) {
	for _, arg := range args {
		if arg.Flags.IsOutput() {
			return arg, true
		}
	}
	return Argument{}, false
}

// Resolve builds the Operation for a concrete class: nickname plus its
// qualifying arguments in generation order.
func Resolve(reg Registry, c Class) (Operation, error) {
	nickname, err := reg.Nickname(c)
	if err != nil {
		return Operation{}, fmt.Errorf("resolving nickname of %s: %w", c.Name(), err)
	}
	args, err := reg.Arguments(c)
	if err != nil {
		return Operation{}, fmt.Errorf("listing arguments of %s: %w", nickname, err)
	}
	return Operation{
		Nickname: nickname,
		Required: RequiredArguments(args),
	}, nil
}
