package generator

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeon/govips/internal/introspection"
)

var fixedNow = func() time.Time {
	return time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
}

func imageClass(className, nickname string, extra ...introspection.Argument) *introspection.FakeClass {
	args := []introspection.Argument{
		{Name: "in", TypeName: "VipsImage", Flags: introspection.ArgumentRequired | introspection.ArgumentInput, Priority: 0, IsImage: true},
		{Name: "out", TypeName: "VipsImage", Flags: introspection.ArgumentRequired | introspection.ArgumentOutput, Priority: 1, IsImage: true},
	}
	return &introspection.FakeClass{
		ClassName: className,
		Nick:      nickname,
		Args:      append(args, extra...),
	}
}

func generate(t *testing.T, reg introspection.Registry, cfg Config) string {
	t.Helper()
	if cfg.Now == nil {
		cfg.Now = fixedNow
	}
	var buf bytes.Buffer
	require.NoError(t, Generate(reg, cfg, &buf))
	return buf.String()
}

func TestGenerateFullOutput(t *testing.T) {
	root := &introspection.FakeClass{
		ClassName: "VipsOperation",
		Abstract:  true,
		Kids: []*introspection.FakeClass{
			imageClass("VipsInvert", "invert"),
			{
				ClassName: "VipsThumbnailSource",
				Nick:      "thumbnail_source",
				Args: []introspection.Argument{
					{Name: "source", TypeName: "VipsSource", Flags: introspection.ArgumentRequired | introspection.ArgumentInput},
				},
			},
		},
	}
	reg := &introspection.FakeRegistry{RootClass: root}

	got := generate(t, reg, Config{})

	want := `package vips

//golint:ignore

/***
 * NOTE: This file is autogenerated so you shouldn't modify it.
 * See cmd/gen-operators.
 *
 * Generated at 02:30PM on March 05, 2026
 */

// #cgo pkg-config: vips
// #include "vips/vips.h"
import "C"

// See http://www.vips.ecs.soton.ac.uk/supported/current/doc/html/libvips/func-list.html

// Unsupported: thumbnail_source: no Go type mapping for VipsSource


// Invert executes the 'invert' operation
func Invert(in *C.VipsImage, options ...*Option) (*C.VipsImage, error) {
	var out *C.VipsImage
	var err error
	options = append(options,
		InputImage("in", in),
		OutputImage("out", &out),
	)
	incOpCounter("invert")
	err = vipsCall("invert", options)
	return out, err
}


// Invert executes the 'invert' operation
func (in *ImageRef) Invert(options ...*Option) error {
	out, err := Invert(in.image, options...)
	if err != nil {
		return err
	}
	in.SetImage(out)
	return nil
}

`
	assert.Equal(t, want, got)
}

func TestGenerateSynonymsEmittedOnce(t *testing.T) {
	root := &introspection.FakeClass{
		ClassName: "VipsOperation",
		Abstract:  true,
		Kids: []*introspection.FakeClass{
			imageClass("VipsInvert", "invert"),
			imageClass("VipsInvertV2", "invert"),
		},
	}
	reg := &introspection.FakeRegistry{RootClass: root}

	got := generate(t, reg, Config{})

	assert.Equal(t, 1, strings.Count(got, "func Invert(in *C.VipsImage"))
	assert.Equal(t, 1, strings.Count(got, "func (in *ImageRef) Invert("))
}

func TestGenerateAbstractClassesProduceNothing(t *testing.T) {
	root := &introspection.FakeClass{
		ClassName: "VipsOperation",
		Abstract:  true,
		Kids: []*introspection.FakeClass{
			{
				ClassName: "VipsArithmetic",
				Abstract:  true,
				Kids: []*introspection.FakeClass{
					imageClass("VipsInvert", "invert"),
				},
			},
		},
	}
	reg := &introspection.FakeRegistry{RootClass: root}

	got := generate(t, reg, Config{})

	assert.Contains(t, got, "func Invert(")
	assert.NotContains(t, got, "Arithmetic")
}

func TestGenerateSkipIsolation(t *testing.T) {
	// The unmappable operation sits between two good ones; it must
	// turn into a comment without affecting either neighbour.
	root := &introspection.FakeClass{
		ClassName: "VipsOperation",
		Abstract:  true,
		Kids: []*introspection.FakeClass{
			imageClass("VipsInvert", "invert"),
			{
				ClassName: "VipsThumbnailSource",
				Nick:      "thumbnail_source",
				Args: []introspection.Argument{
					{Name: "source", TypeName: "VipsSource", Flags: introspection.ArgumentRequired | introspection.ArgumentInput},
				},
			},
			imageClass("VipsFlip", "flip"),
		},
	}
	reg := &introspection.FakeRegistry{RootClass: root}

	got := generate(t, reg, Config{})

	assert.Contains(t, got, "// Unsupported: thumbnail_source: no Go type mapping for VipsSource")
	assert.NotContains(t, got, "func ThumbnailSource(")
	assert.Contains(t, got, "func Invert(")
	assert.Contains(t, got, "func Flip(")

	// Skipped comments come before the first generated function.
	assert.Less(t,
		strings.Index(got, "// Unsupported: thumbnail_source"),
		strings.Index(got, "func Flip("))
}

func TestGenerateDeprecatedArgumentExcluded(t *testing.T) {
	deprecated := introspection.Argument{
		Name:     "profile",
		TypeName: "gchararray",
		Flags:    introspection.ArgumentRequired | introspection.ArgumentInput | introspection.ArgumentDeprecated,
		Priority: 5,
	}
	root := &introspection.FakeClass{
		ClassName: "VipsOperation",
		Abstract:  true,
		Kids: []*introspection.FakeClass{
			imageClass("VipsIccImport", "icc_import", deprecated),
		},
	}
	reg := &introspection.FakeRegistry{RootClass: root}

	got := generate(t, reg, Config{})

	assert.Contains(t, got, "func IccImport(in *C.VipsImage, options ...*Option)")
	assert.NotContains(t, got, "profile")
}

func TestGenerateRequiredArgumentPriorityOrder(t *testing.T) {
	// Declared out of order in the registry; priorities decide the
	// generated signature.
	class := &introspection.FakeClass{
		ClassName: "VipsGamma",
		Nick:      "gamma",
		Args: []introspection.Argument{
			{Name: "exponent", TypeName: "gdouble", Flags: introspection.ArgumentRequired | introspection.ArgumentInput, Priority: 3},
			{Name: "out", TypeName: "VipsImage", Flags: introspection.ArgumentRequired | introspection.ArgumentOutput, Priority: 1, IsImage: true},
			{Name: "in", TypeName: "VipsImage", Flags: introspection.ArgumentRequired | introspection.ArgumentInput, Priority: 0, IsImage: true},
			{Name: "threshold", TypeName: "gdouble", Flags: introspection.ArgumentRequired | introspection.ArgumentInput, Priority: 2},
		},
	}
	root := &introspection.FakeClass{ClassName: "VipsOperation", Abstract: true, Kids: []*introspection.FakeClass{class}}
	reg := &introspection.FakeRegistry{RootClass: root}

	got := generate(t, reg, Config{})

	assert.Contains(t, got,
		"func Gamma(in *C.VipsImage, threshold float64, exponent float64, options ...*Option) (*C.VipsImage, error)")
}

func TestGenerateExcludedOperations(t *testing.T) {
	root := &introspection.FakeClass{
		ClassName: "VipsOperation",
		Abstract:  true,
		Kids: []*introspection.FakeClass{
			imageClass("VipsInvert", "invert"),
			imageClass("VipsSequential", "sequential"),
		},
	}
	reg := &introspection.FakeRegistry{RootClass: root}

	got := generate(t, reg, Config{Excluded: DefaultExcludedOperations()})

	assert.Contains(t, got, "func Invert(")
	assert.NotContains(t, got, "Sequential")
	assert.NotContains(t, got, "// Unsupported: sequential")
}

func TestGenerateNicknameFailureAborts(t *testing.T) {
	root := &introspection.FakeClass{
		ClassName: "VipsOperation",
		Abstract:  true,
		Kids: []*introspection.FakeClass{
			{ClassName: "VipsBroken"},
		},
	}
	reg := &introspection.FakeRegistry{RootClass: root}

	var buf bytes.Buffer
	err := Generate(reg, Config{Now: fixedNow}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VipsBroken")
	assert.Zero(t, buf.Len())
}

func TestGenerateOutputSortedByText(t *testing.T) {
	// Registry order is zmorph before add; the file sorts by rendered
	// text, which leads with the function name.
	root := &introspection.FakeClass{
		ClassName: "VipsOperation",
		Abstract:  true,
		Kids: []*introspection.FakeClass{
			imageClass("VipsZmorph", "zmorph"),
			imageClass("VipsAdd2", "add2"),
		},
	}
	reg := &introspection.FakeRegistry{RootClass: root}

	got := generate(t, reg, Config{})

	assert.Less(t, strings.Index(got, "func Add2("), strings.Index(got, "func Zmorph("))
}

func TestGenerateDeterministic(t *testing.T) {
	root := &introspection.FakeClass{
		ClassName: "VipsOperation",
		Abstract:  true,
		Kids: []*introspection.FakeClass{
			imageClass("VipsInvert", "invert"),
			imageClass("VipsFlip", "flip"),
			{
				ClassName: "VipsThumbnailSource",
				Nick:      "thumbnail_source",
				Args: []introspection.Argument{
					{Name: "source", TypeName: "VipsSource", Flags: introspection.ArgumentRequired | introspection.ArgumentInput},
				},
			},
		},
	}
	reg := &introspection.FakeRegistry{RootClass: root}

	first := generate(t, reg, Config{})
	second := generate(t, reg, Config{})

	assert.Equal(t, first, second)
}
