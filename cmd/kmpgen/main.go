// Command kmpgen generates standalone Go source for matching one literal
// pattern. The emitted file bakes in the pattern and its precomputed
// prefix table and depends on nothing outside the standard library, so it
// can be dropped into any package.
//
// Usage:
//
//	kmpgen -pattern needle -name Needle -pkg scanner -o needle_kmp.go
//
// The generated API mirrors the compiled-pattern API of this module:
// CompiledNeedle.Find, FindString, Count, and Contains.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/TechieQuokka/kmp-go/internal/codegen"
)

var (
	pattern = flag.String("pattern", "", "literal pattern to bake into the generated matcher (required)")
	name    = flag.String("name", "", "identifier prefix for the generated type (required)")
	pkg     = flag.String("pkg", "main", "package name for the generated file")
	output  = flag.String("o", "", "output file (default: lowercased NAME plus _kmp.go)")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("kmpgen: ")
	flag.Usage = usage
	flag.Parse()

	if *pattern == "" || *name == "" {
		usage()
		os.Exit(2)
	}

	out := *output
	if out == "" {
		out = strings.ToLower(*name) + "_kmp.go"
	}

	cfg := codegen.Config{
		Pattern:    *pattern,
		Name:       *name,
		Package:    *pkg,
		OutputFile: out,
	}
	if err := codegen.Generate(cfg); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", out)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: kmpgen -pattern PATTERN -name NAME [-pkg PACKAGE] [-o FILE]\n\n")
	fmt.Fprintf(os.Stderr, "Generates a standalone Go matcher for one literal pattern.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExample:\n  kmpgen -pattern needle -name Needle -pkg scanner -o needle_kmp.go\n")
}
