// yazap-demo is a small command-line tool built on the yazap packages. It
// exists to exercise the declarative command model, the parser and the help
// renderer end to end, and doubles as a living usage example.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/tenderlove/yazap/internal/version"
	"github.com/tenderlove/yazap/pkg/app"
	"github.com/tenderlove/yazap/pkg/command"
	"github.com/tenderlove/yazap/pkg/errors"
	"github.com/tenderlove/yazap/pkg/logging"
	"github.com/tenderlove/yazap/pkg/parser"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func main() {
	a := buildApp()

	matches, err := a.ParseProcess()
	if err != nil {
		if errors.IsHelpRequested(err) {
			return
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		fmt.Fprintln(os.Stderr)
		_ = a.DisplayHelp()
		os.Exit(1)
	}

	verbosity := 0
	if matches.ContainsArg("verbose") {
		verbosity = 2
	}
	logging.SetupLogger(verbosity)

	if err := run(matches); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

func buildApp() *app.App {
	a := app.New("yazap-demo", "Showcase for the yazap argument parser and help renderer")

	root := a.RootCommand()
	root.AddArg(command.NewBooleanOption("verbose", 'v', "Enable debug logging"))
	root.AddArg(command.NewSingleValueOptionWithValidValues("color", 0, "When to colorize output", "auto", "always", "never").
		SetDefaultValue("auto"))
	root.RequireSubcommand()

	parse := a.CreateCommand("parse", "Parse tokens and print the resulting matches")
	parse.AddArg(command.NewPositional("TOKEN", "Tokens recorded as positional values").
		SetTakesMultipleValues(true))
	parse.AddArgs(
		command.NewSingleValueOption("name", 'n', "Name recorded in the table"),
		command.NewMultiValuesOption("tag", 't', "Tags to attach", 3),
		command.NewSingleValueOptionWithValidValues("format", 'f', "Output format", "table", "plain").
			SetDefaultValue("table"),
	)
	root.AddSubcommand(parse)

	root.AddSubcommand(command.New("version", "Print version information"))

	// Defaults declared above can be overridden through YAZAP_DEMO_* vars.
	if err := a.EnableEnvDefaults("YAZAP_DEMO"); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
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
	case "version":
		printVersion()
	case "parse":
		return printMatches(sub, useColor(matches))
	}
	return nil
}

func printVersion() {
	fmt.Printf("yazap-demo version %s\n", version.Version)
	fmt.Printf("  commit: %s\n", version.Commit)
	fmt.Printf("  built:  %s\n", version.Date)
}

// printMatches shows what the parser extracted from the command line, as a
// table or as plain key=value lines.
func printMatches(matches *parser.Matches, styled bool) error {
	rows := pterm.TableData{{"Argument", "Values"}}
	if v, ok := matches.GetSingleValue("name"); ok {
		rows = append(rows, []string{"--name", v})
	}
	if tags := matches.GetMultiValues("tag"); len(tags) > 0 {
		rows = append(rows, []string{"--tag", strings.Join(tags, ", ")})
	}
	if tokens := matches.GetMultiValues("TOKEN"); len(tokens) > 0 {
		rows = append(rows, []string{"TOKEN", strings.Join(tokens, ", ")})
	}

	if len(rows) == 1 {
		fmt.Println("Nothing to report, pass some tokens or options.")
		return nil
	}

	format, _ := matches.GetSingleValue("format")
	if format == "plain" {
		for _, row := range rows[1:] {
			fmt.Printf("%s=%s\n", row[0], row[1])
		}
		return nil
	}

	if styled {
		pterm.EnableColor()
		fmt.Println(titleStyle.Render("Parsed matches"))
	} else {
		pterm.DisableColor()
		fmt.Println("Parsed matches")
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// useColor applies the --color policy, falling back to terminal detection
// for auto.
func useColor(matches *parser.Matches) bool {
	when, _ := matches.GetSingleValue("color")
	switch when {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
