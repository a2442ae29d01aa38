// Package docs generates reference documentation from a command tree:
// markdown for sites and READMEs, DocBook refentry XML for man-page
// toolchains, and a styled terminal preview of the markdown output. The
// signatures and usage lines match what the help renderer prints.
package docs

import (
	"fmt"
	"strings"

	"github.com/tenderlove/yazap/pkg/command"
	"github.com/tenderlove/yazap/pkg/help"
	"github.com/tenderlove/yazap/pkg/logging"
)

// Markdown renders the reference documentation for cmd and every subcommand
// below it as one markdown document. The root gets a level-1 heading;
// subcommands follow with deeper headings titled by their command path.
func Markdown(cmd *command.Command) string {
	var sb strings.Builder
	writeMarkdownCommand(&sb, cmd, nil)
	logger := logging.GetLogger("docs")
	logger.Debug().Str("command", cmd.Name).Int("bytes", sb.Len()).Msg("markdown generated")
	return sb.String()
}

func writeMarkdownCommand(sb *strings.Builder, cmd *command.Command, path []string) {
	title := strings.Join(append(append([]string{}, path...), cmd.Name), " ")
	level := len(path) + 1
	if level > 6 {
		level = 6
	}
	fmt.Fprintf(sb, "%s %s\n\n", strings.Repeat("#", level), title)

	if cmd.Description != "" {
		fmt.Fprintf(sb, "%s\n\n", cmd.Description)
	}

	fmt.Fprintf(sb, "```\n%s\n```\n\n", help.UsageLine(cmd))

	if cmd.CountPositionalArgs() > 0 {
		sb.WriteString("**Arguments:**\n\n")
		for _, arg := range cmd.PositionalArgs {
			token := arg.Name
			if arg.TakesMultipleValues {
				token += "..."
			}
			writeBullet(sb, token, arg.Description)
		}
		sb.WriteString("\n")
	}

	if cmd.CountSubcommands() > 0 {
		sb.WriteString("**Commands:**\n\n")
		for _, sub := range cmd.Subcommands {
			writeBullet(sb, sub.Name, sub.Description)
		}
		sb.WriteString("\n")
	}

	if cmd.CountOptions() > 0 {
		sb.WriteString("**Options:**\n\n")
		for _, opt := range cmd.Options {
			writeBullet(sb, help.OptionSignature(opt), optionDescription(opt))
		}
		helpOpt := help.HelpOption()
		writeBullet(sb, help.OptionSignature(helpOpt), helpOpt.Description)
		sb.WriteString("\n")
	}

	for _, sub := range cmd.Subcommands {
		writeMarkdownCommand(sb, sub, append(path, cmd.Name))
	}
}

func writeBullet(sb *strings.Builder, term, description string) {
	if description == "" {
		fmt.Fprintf(sb, "- `%s`\n", term)
		return
	}
	fmt.Fprintf(sb, "- `%s`: %s\n", term, description)
}

// optionDescription folds an option's valid values into its description the
// way the help renderer lists them.
func optionDescription(opt *command.Arg) string {
	if !opt.HasValidValues() {
		return opt.Description
	}
	values := "values: " + strings.Join(opt.ValidValues, ", ")
	if opt.Description == "" {
		return values
	}
	return opt.Description + " (" + values + ")"
}
