// Command spag is the collaborator CLI driver: it loads scanner and parser
// specification files, invokes the core compilers, and optionally emits
// generated source. None of this logic lives in the core packages.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/projectdiscovery/gologger"

	"github.com/rrozansk/spag-go/internal/emit"
	"github.com/rrozansk/spag-go/internal/runner"
	"github.com/rrozansk/spag-go/internal/specfile"
	"github.com/rrozansk/spag-go/parser"
	"github.com/rrozansk/spag-go/scanner"
)

const version = "0.1.0"

func main() {
	opts := runner.ParseFlags()

	if opts.Version {
		fmt.Println(version)
		os.Exit(int(runner.ExitSuccess))
	}

	if len(opts.Scanners) == 0 && len(opts.Parsers) == 0 {
		gologger.Error().Msg("no scanner or parser specifications given")
		os.Exit(int(runner.ExitInvalidArgs))
	}

	for _, path := range opts.Scanners {
		if err := runScanner(opts, path); err != nil {
			gologger.Error().Msgf("scanner %s: %v", path, err)
			os.Exit(int(runner.ExitInvalidScanner))
		}
	}

	for _, path := range opts.Parsers {
		if err := runParser(opts, path); err != nil {
			gologger.Error().Msgf("parser %s: %v", path, err)
			os.Exit(int(runner.ExitInvalidParser))
		}
	}

	os.Exit(int(runner.ExitSuccess))
}

func runScanner(opts *runner.Options, path string) error {
	start := time.Now()

	name, expressions, err := specfile.LoadScanner(path)
	if err != nil {
		return err
	}

	artifact, err := scanner.New(name, expressions)
	if err != nil {
		return err
	}

	if opts.Time {
		gologger.Info().Msgf("compiled scanner %q in %s", name, time.Since(start))
	}
	if opts.Verbose {
		gologger.Verbose().Msgf("scanner %q: |Q|=%d |V|=%d", name, len(artifact.Q()), len(artifact.V()))
	}

	for _, lang := range opts.Generate {
		if lang != "go" {
			continue
		}
		if err := emitGoScanner(opts, artifact); err != nil {
			gologger.Error().Msgf("emission failed for %q: %v", name, err)
			os.Exit(int(runner.ExitFailGenerate))
		}
	}

	return nil
}

func runParser(opts *runner.Options, path string) error {
	start := time.Now()

	name, productions, startSym, err := specfile.LoadParser(path)
	if err != nil {
		return err
	}

	artifact, err := parser.New(name, productions, startSym)
	if err != nil {
		return err
	}

	if opts.Time {
		gologger.Info().Msgf("compiled parser %q in %s", name, time.Since(start))
	}

	conflicts := artifact.Conflicts()
	if len(conflicts) > 0 {
		gologger.Warning().Msgf("grammar %q is not LL(1): %d conflict(s)", name, len(conflicts))
		for _, c := range conflicts {
			gologger.Warning().Msgf("  %s on %s: rules %v", c.Nonterminal, c.Lookahead, c.Rules)
		}
	} else if opts.Verbose {
		gologger.Verbose().Msgf("grammar %q is LL(1)", name)
	}

	return nil
}

func emitGoScanner(opts *runner.Options, artifact *scanner.ScannerArtifact) error {
	outPath := opts.Output + ".go"
	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists (use -f to overwrite)", outPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	src, err := emit.GoTable(artifact, filepath.Base(opts.Output))
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(src), 0o644)
}
