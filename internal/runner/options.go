// Package runner parses the driver's command-line surface and config file,
// and owns the exit-code mapping described by the specification's CLI
// section. The core packages never know exit codes exist.
package runner

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Exit enumerates the driver's process exit codes.
type Exit int

const (
	ExitSuccess Exit = iota
	ExitInvalidArgs
	ExitInvalidScanner
	ExitInvalidParser
	ExitFailGenerate
)

// Options holds the parsed command-line and config-file surface.
type Options struct {
	Scanners       goflags.StringSlice
	Parsers        goflags.StringSlice
	Generate       goflags.StringSlice
	Encoding       string
	Match          string
	Output         string
	Force          bool
	Config         string
	GenerateConfig string
	Time           bool
	Verbose        bool
	Version        bool
}

// ParseFlags parses os.Args and any merged config file into Options.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Scanner/parser generator: compiles named regular expressions into a minimal DFA and a BNF grammar into an LL(1) parse table.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Scanners, "scanner", "s", nil, "scanner specification file(s)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringSliceVarP(&opts.Parsers, "parser", "p", nil, "parser specification file(s)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringSliceVarP(&opts.Generate, "generate", "g", nil, "target language(s) for emission", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Encoding, "encoding", "e", "table", "code-generation encoding (table, direct)"),
		flagSet.StringVarP(&opts.Match, "match", "m", "longest", "match policy hint (longest, shortest); not read by the go emitter"),
		flagSet.StringVarP(&opts.Output, "output", "o", "out", "output base filename"),
		flagSet.BoolVarP(&opts.Force, "force", "f", false, "overwrite pre-existing outputs"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVarP(&opts.Config, "config", "c", "", "load a YAML runtime configuration"),
		flagSet.CallbackVarP(writeTemplateConfigCallback(&opts.GenerateConfig), "generate-config", "G", "write a template configuration and exit"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&opts.Time, "time", "t", false, "report timings"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose progress"),
		flagSet.BoolVarP(&opts.Version, "version", "V", false, "print version and exit"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file: %v", err)
		}
	}

	if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	return opts
}

func writeTemplateConfigCallback(dest *string) func() {
	return func() {
		path := *dest
		if path == "" {
			path = "spag-config.yaml"
		}
		if err := WriteTemplateConfig(path); err != nil {
			gologger.Fatal().Msgf("could not write template configuration: %v", err)
		}
		fmt.Printf("wrote template configuration to %s\n", path)
		os.Exit(int(ExitSuccess))
	}
}
