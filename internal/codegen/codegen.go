// Package codegen renders precompiled literal matchers as standalone Go
// source. The emitted file bakes in the pattern bytes and its prefix
// table, so the generated matcher needs no dependency on this module and
// pays no table construction cost at run time.
package codegen

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"

	kmp "github.com/TechieQuokka/kmp-go"
)

// Config describes one matcher to generate.
type Config struct {
	// Pattern is the literal byte pattern to bake in.
	Pattern string

	// Name is the identifier prefix for the generated type and its
	// Compiled variable. Must be a valid ASCII Go identifier; use an
	// exported name to export the generated API.
	Name string

	// Package is the package name for the generated file.
	Package string

	// OutputFile is the path the generated code is written to. Only
	// required by Generate, not by Source.
	OutputFile string
}

// Validate checks that the config can produce a compilable matcher.
func (c Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if !isIdentifier(c.Name) {
		return fmt.Errorf("name %q is not a valid Go identifier", c.Name)
	}
	if !isIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", c.Package)
	}
	return nil
}

// Source renders the generated matcher and returns it as formatted Go
// source.
func Source(c Config) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	pattern := []byte(c.Pattern)
	failure := kmp.ComputeFailureOptimized(pattern)
	m := len(pattern)

	patVar := lowerFirst(c.Name) + "Pattern"
	failVar := lowerFirst(c.Name) + "Failure"

	f := jen.NewFile(c.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by kmpgen for pattern %q. DO NOT EDIT.", c.Pattern))

	f.Var().Id(patVar).Op("=").Index().Byte().Parens(jen.Lit(c.Pattern))
	failLits := make([]jen.Code, m)
	for i, v := range failure {
		failLits[i] = jen.Lit(v)
	}
	f.Var().Id(failVar).Op("=").Index().Int().Values(failLits...)
	f.Line()

	f.Type().Id(c.Name).Struct()
	f.Line()
	f.Var().Id("Compiled" + c.Name).Op("=").Id(c.Name).Values()
	f.Line()

	// Find: first occurrence, or -1.
	firstMatch := jen.Return(jen.Id("i"))
	if m > 1 {
		firstMatch = jen.Return(jen.Id("i").Op("-").Lit(m - 1))
	}
	f.Func().Params(jen.Id(c.Name)).Id("Find").
		Params(jen.Id("text").Index().Byte()).
		Int().
		Block(
			jen.Id("j").Op(":=").Lit(0),
			jen.For(
				jen.Id("i").Op(":=").Lit(0),
				jen.Id("i").Op("<").Len(jen.Id("text")),
				jen.Id("i").Op("++"),
			).Block(
				jen.For(
					jen.Id("j").Op(">").Lit(0).Op("&&").
						Id("text").Index(jen.Id("i")).Op("!=").Id(patVar).Index(jen.Id("j")),
				).Block(
					jen.Id("j").Op("=").Id(failVar).Index(jen.Id("j").Op("-").Lit(1)),
				),
				jen.If(
					jen.Id("text").Index(jen.Id("i")).Op("==").Id(patVar).Index(jen.Id("j")),
				).Block(
					jen.Id("j").Op("++"),
				),
				jen.If(jen.Id("j").Op("==").Lit(m)).Block(firstMatch),
			),
			jen.Return(jen.Lit(-1)),
		)

	// FindString: string convenience wrapper.
	f.Func().Params(jen.Id(c.Name)).Id("FindString").
		Params(jen.Id("s").String()).
		Int().
		Block(
			jen.Return(
				jen.Id(c.Name).Values().Dot("Find").Call(
					jen.Index().Byte().Parens(jen.Id("s")),
				),
			),
		)

	// Count: overlapping occurrences, continuing through the pattern's
	// longest border after each match.
	f.Func().Params(jen.Id(c.Name)).Id("Count").
		Params(jen.Id("text").Index().Byte()).
		Int().
		Block(
			jen.Id("n").Op(":=").Lit(0),
			jen.Id("j").Op(":=").Lit(0),
			jen.For(
				jen.Id("i").Op(":=").Lit(0),
				jen.Id("i").Op("<").Len(jen.Id("text")),
				jen.Id("i").Op("++"),
			).Block(
				jen.For(
					jen.Id("j").Op(">").Lit(0).Op("&&").
						Id("text").Index(jen.Id("i")).Op("!=").Id(patVar).Index(jen.Id("j")),
				).Block(
					jen.Id("j").Op("=").Id(failVar).Index(jen.Id("j").Op("-").Lit(1)),
				),
				jen.If(
					jen.Id("text").Index(jen.Id("i")).Op("==").Id(patVar).Index(jen.Id("j")),
				).Block(
					jen.Id("j").Op("++"),
				),
				jen.If(jen.Id("j").Op("==").Lit(m)).Block(
					jen.Id("n").Op("++"),
					jen.Id("j").Op("=").Id(failVar).Index(jen.Lit(m-1)),
				),
			),
			jen.Return(jen.Id("n")),
		)

	// Contains: boolean convenience wrapper.
	f.Func().Params(jen.Id(c.Name)).Id("Contains").
		Params(jen.Id("text").Index().Byte()).
		Bool().
		Block(
			jen.Return(
				jen.Id(c.Name).Values().Dot("Find").Call(jen.Id("text")).Op(">=").Lit(0),
			),
		)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render matcher: %w", err)
	}
	return buf.Bytes(), nil
}

// Generate renders the matcher and writes it to c.OutputFile.
func Generate(c Config) error {
	if c.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	src, err := Source(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.OutputFile, src, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.OutputFile, err)
	}
	return nil
}

// isIdentifier reports whether s is a valid ASCII Go identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// lowerFirst converts a leading upper-case ASCII letter to lowercase.
func lowerFirst(s string) string {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
