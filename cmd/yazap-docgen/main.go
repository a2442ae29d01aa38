// yazap-docgen turns command manifests into reference documentation. It
// loads a TOML or YAML manifest describing a command surface and emits
// markdown or DocBook, and can scaffold a starter manifest to begin from.
package main

import (
	"fmt"
	"os"

	"github.com/tenderlove/yazap/internal/version"
	"github.com/tenderlove/yazap/pkg/app"
	"github.com/tenderlove/yazap/pkg/command"
	"github.com/tenderlove/yazap/pkg/docs"
	"github.com/tenderlove/yazap/pkg/errors"
	"github.com/tenderlove/yazap/pkg/logging"
	"github.com/tenderlove/yazap/pkg/manifest"
	"github.com/tenderlove/yazap/pkg/parser"
)

func main() {
	a := buildApp()

	matches, err := a.ParseProcess()
	if err != nil {
		if errors.IsHelpRequested(err) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		_ = a.DisplayHelp()
		os.Exit(1)
	}

	verbosity := 0
	if matches.ContainsArg("verbose") {
		verbosity = 2
	}
	logging.SetupLogger(verbosity)

	if err := run(matches); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildApp() *app.App {
	a := app.New("yazap-docgen", "Generate documentation from command manifests")

	root := a.RootCommand()
	root.AddArg(command.NewBooleanOption("verbose", 'v', "Enable debug logging"))
	root.RequireSubcommand()

	generate := a.CreateCommand("generate", "Generate documentation from a manifest")
	generate.AddArg(command.NewPositional("MANIFEST", "Manifest file describing the command surface"))
	generate.RequirePositionalArgs()
	generate.AddArgs(
		command.NewSingleValueOptionWithValidValues("format", 'f', "Documentation format", "markdown", "docbook").
			SetDefaultValue("markdown"),
		command.NewSingleValueOption("output", 'o', "Write to this file instead of standard output").
			SetValuePlaceholder("FILE"),
		command.NewBooleanOption("preview", 'p', "Style markdown for the terminal"),
	)
	root.AddSubcommand(generate)

	scaffold := a.CreateCommand("scaffold", "Write a starter manifest")
	scaffold.AddArgs(
		command.NewSingleValueOptionWithValidValues("format", 'f', "Manifest format", "toml", "yaml").
			SetDefaultValue("toml"),
		command.NewSingleValueOption("output", 'o', "Write to this file instead of standard output").
			SetValuePlaceholder("FILE"),
	)
	root.AddSubcommand(scaffold)

	root.AddSubcommand(command.New("version", "Print version information"))

	if err := a.EnableEnvDefaults("YAZAP_DOCGEN"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return a
}

func run(matches *parser.Matches) error {
	name, sub, ok := matches.Subcommand()
	if !ok {
		return nil
	}

	switch name {
	case "generate":
		return runGenerate(sub)
	case "scaffold":
		return runScaffold(sub)
	case "version":
		fmt.Printf("yazap-docgen version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	}
	return nil
}

func runGenerate(matches *parser.Matches) error {
	path, _ := matches.GetSingleValue("MANIFEST")
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	cmd := m.Build()

	format, _ := matches.GetSingleValue("format")
	var out string
	switch format {
	case "docbook":
		out, err = docs.DocBook(cmd)
		if err != nil {
			return err
		}
	default:
		out = docs.Markdown(cmd)
	}

	if file, ok := matches.GetSingleValue("output"); ok {
		return writeFile(file, out)
	}
	if format != "docbook" && matches.ContainsArg("preview") {
		out = docs.Preview(out, os.Stdout)
	}
	fmt.Print(out)
	return nil
}

func runScaffold(matches *parser.Matches) error {
	format, _ := matches.GetSingleValue("format")
	out, err := manifest.Scaffold(format)
	if err != nil {
		return err
	}

	if file, ok := matches.GetSingleValue("output"); ok {
		return writeFile(file, out)
	}
	fmt.Print(out)
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "writing %s", path)
	}
	return nil
}
