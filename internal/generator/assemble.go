package generator

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

const preamble = `package vips

//golint:ignore

/***
 * NOTE: This file is autogenerated so you shouldn't modify it.
 * See cmd/gen-operators.
 *
 * Generated at %s
 */

// #cgo pkg-config: vips
// #include "vips/vips.h"
import "C"

// See http://www.vips.ecs.soton.ac.uk/supported/current/doc/html/libvips/func-list.html`

const timestampLayout = "03:04PM on January 02, 2006"

// Assemble writes the complete generated source unit: the header, the
// skipped-operation comments sorted and newline-joined, then every
// unit's text sorted lexicographically and blank-line-joined. Apart
// from the timestamp the output is a pure function of its inputs, so
// regenerating against an unchanged registry is byte-identical.
func Assemble(w io.Writer, units []Unit, skipped []SkippedEntry, now time.Time) error {
	texts := make([]string, 0, len(units))
	for _, unit := range units {
		texts = append(texts, unit.Text)
	}
	sort.Strings(texts)

	comments := make([]string, 0, len(skipped))
	for _, entry := range skipped {
		comments = append(comments, entry.Comment())
	}
	sort.Strings(comments)

	var b strings.Builder
	fmt.Fprintf(&b, preamble, now.Format(timestampLayout))
	b.WriteString("\n\n")
	if len(comments) > 0 {
		b.WriteString(strings.Join(comments, "\n"))
		b.WriteString("\n\n")
	}
	b.WriteString(strings.Join(texts, "\n\n"))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
