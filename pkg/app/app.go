// Package app is the yazap entry point: it owns the root command, runs the
// parser over process arguments, and renders help to a configurable sink
// when a parse asks for it.
package app

import (
	"io"
	"os"

	"github.com/tenderlove/yazap/pkg/command"
	"github.com/tenderlove/yazap/pkg/errors"
	"github.com/tenderlove/yazap/pkg/help"
	"github.com/tenderlove/yazap/pkg/logging"
	"github.com/tenderlove/yazap/pkg/parser"
)

// App ties the command model, the parser and the help renderer together.
type App struct {
	root       *command.Command
	parser     *parser.Parser
	helpWriter io.Writer
}

// New creates an app whose root command carries the given name and
// description. Help output goes to standard error until SetHelpWriter
// changes the sink.
func New(name, description string) *App {
	return &App{
		root:       command.New(name, description),
		parser:     parser.New(),
		helpWriter: os.Stderr,
	}
}

// RootCommand returns the root command for declaring args and subcommands.
func (a *App) RootCommand() *command.Command {
	return a.root
}

// CreateCommand returns a new detached command, ready to be attached with
// AddSubcommand.
func (a *App) CreateCommand(name, description string) *command.Command {
	return command.New(name, description)
}

// SetHelpWriter redirects help output. A nil writer restores standard error.
func (a *App) SetHelpWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	a.helpWriter = w
}

// ParseProcess parses the process arguments. See ParseFrom.
func (a *App) ParseProcess() (*parser.Matches, error) {
	return a.ParseFrom(os.Args[1:])
}

// ParseFrom parses argv against the root command. When the arguments request
// help, the help text for the targeted command is rendered to the sink and
// the HELP_REQUESTED sentinel is returned so the caller can exit cleanly;
// errors.IsHelpRequested distinguishes it from real parse failures.
func (a *App) ParseFrom(argv []string) (*parser.Matches, error) {
	matches, err := a.parser.Parse(a.root, argv)
	if err == nil {
		return matches, nil
	}
	if !errors.IsHelpRequested(err) {
		return nil, err
	}

	path, _ := errors.GetErrorDetails(err)["path"].([]string)
	if renderErr := a.DisplaySubcommandHelp(path...); renderErr != nil {
		return nil, renderErr
	}
	return nil, err
}

// DisplayHelp renders the root command's help to the sink.
func (a *App) DisplayHelp() error {
	return a.DisplaySubcommandHelp()
}

// DisplaySubcommandHelp renders help for the subcommand reached by following
// path from the root; an empty path targets the root itself.
func (a *App) DisplaySubcommandHelp(path ...string) error {
	cmd := a.root
	for _, name := range path {
		sub := cmd.FindSubcommand(name)
		if sub == nil {
			return errors.Newf(errors.ErrInvalidInput, "no such subcommand: %s", name).
				WithDetail("subcommand", name)
		}
		cmd = sub
	}
	logger := logging.GetLogger("app")
	logger.Debug().Str("command", cmd.Name).Msg("rendering help")
	return help.NewRenderer(a.helpWriter).Render(cmd)
}
