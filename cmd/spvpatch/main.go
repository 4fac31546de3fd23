package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	spverrors "github.com/shadertools/spvpatch/errors"
	"github.com/shadertools/spvpatch/patch"
	"github.com/shadertools/spvpatch/spv"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to input SPIR-V binary")
		outFile     = flag.String("o", "out.spv", "Path to patched output binary")
		fileIdx     = flag.Int("file", 0, "Debug source file index to resolve")
		line        = flag.Int("line", 20, "Source line to resolve")
		info        = flag.Bool("info", false, "Print module summary and exit")
		verify      = flag.Bool("verify", false, "Re-validate the stream after patching")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive debug-info browser")
	)
	flag.Parse()

	if *inFile == "" && flag.NArg() > 0 {
		*inFile = flag.Arg(0)
	}
	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: spvpatch [-o out.spv] [-file N] [-line N] <shader.spv>")
		fmt.Fprintln(os.Stderr, "       spvpatch -info <shader.spv>")
		fmt.Fprintln(os.Stderr, "       spvpatch -i <shader.spv>  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		patch.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*inFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *outFile, *fileIdx, uint32(*line), *info, *verify); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, outFile string, fileIdx int, line uint32, infoOnly, verify bool) error {
	data, err := os.ReadFile(inFile)
	if err != nil {
		return spverrors.ReadFailed(inFile, err)
	}

	module, err := spv.Decode(data)
	if err != nil {
		return err
	}

	fmt.Printf("Module: %s\n", inFile)
	fmt.Printf("Version: %d.%d\n", module.Header.VersionMajor(), module.Header.VersionMinor())
	fmt.Printf("Bound: %d\n", module.Header.Bound)
	fmt.Printf("Addressing model: %s\n", module.AddressingModel())
	fmt.Printf("Capabilities: %d\n", len(module.Capabilities()))
	fmt.Printf("Extensions: %d\n", len(module.Extensions()))
	fmt.Printf("Source files: %d\n", module.NumSources())
	fmt.Printf("Functions: %d\n", len(module.Functions()))

	if infoOnly {
		printInfo(module)
		return nil
	}

	result, err := patch.Apply(module, patch.Options{FileIndex: fileIdx, Line: line})
	if err != nil {
		return err
	}

	loc := result.Location
	if !loc.Exact {
		fmt.Printf("\nno exact match found: %d vs %d\n", line, loc.Marker.Line)
	}
	fmt.Printf("\nin function %s\n", loc.FunctionName)
	for _, local := range loc.Locals {
		fmt.Printf(" >> var %s\n", local.Name)
	}

	if verify {
		if err := spv.ValidateWords(result.Words); err != nil {
			return err
		}
	}

	if err := os.WriteFile(outFile, spv.EncodeWords(result.Words), 0o644); err != nil {
		return spverrors.WriteFailed(outFile, err)
	}
	fmt.Printf("\nwrote %s (%d words)\n", outFile, len(result.Words))
	return nil
}

func printInfo(m *spv.Module) {
	fmt.Printf("\nSection offsets (words):\n")
	fmt.Printf("  capabilities:  %d\n", m.Sections.Capabilities)
	fmt.Printf("  extensions:    %d\n", m.Sections.Extensions)
	fmt.Printf("  memory model:  %d\n", m.Sections.MemoryModel)
	fmt.Printf("  functions:     %d\n", m.Sections.Functions)

	if caps := m.Capabilities(); len(caps) > 0 {
		fmt.Printf("\nCapabilities:\n")
		for _, c := range caps {
			fmt.Printf("  %s\n", c)
		}
	}
	if exts := m.Extensions(); len(exts) > 0 {
		fmt.Printf("\nExtensions:\n")
		for _, e := range exts {
			fmt.Printf("  %s\n", e)
		}
	}

	for i := 0; i < m.NumSources(); i++ {
		src, _ := m.SourceAt(i)
		name := src.Name
		if name == "" {
			name = fmt.Sprintf("<file %%%d>", src.File)
		}
		fmt.Printf("\nSource %d: %s (%d line markers)\n", i, name, len(src.Markers))
	}

	for _, fn := range m.Functions() {
		name := m.Name(fn.ID)
		if name == "" {
			name = fmt.Sprintf("%%%d", fn.ID)
		}
		fmt.Printf("\nFunction %s: %d locals\n", name, len(fn.Locals))
		for _, id := range fn.Locals {
			lname := m.Name(id)
			if lname == "" {
				lname = fmt.Sprintf("%%%d", id)
			}
			fmt.Printf("  var %s\n", lname)
		}
	}
}
