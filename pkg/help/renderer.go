package help

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tenderlove/yazap/pkg/command"
	"github.com/tenderlove/yazap/pkg/errors"
)

const (
	// signatureWidth is the byte width of the left column of every help row.
	signatureWidth = 50

	// descriptionWidth caps how much description text fits on one row before
	// overflowing to a continuation.
	descriptionWidth = 50

	// sectionIndent is the left padding of every entry row. Long-only option
	// signatures get it twice so long names line up with siblings that also
	// carry a short name.
	sectionIndent = 4

	// valuesIndent is the left padding of the valid-values row emitted under
	// an option that has both a description and a value set.
	valuesIndent = 2
)

// HelpOption returns the synthetic -h, --help option that closes every
// options section.
func HelpOption() *command.Arg {
	return command.NewBooleanOption("help", 'h', "Print help and exit")
}

// Renderer writes formatted help text for a command to an output sink. The
// text is assembled in an internal buffer and flushed in a single write, so
// a failed render leaves the sink untouched.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out. A nil out falls back to
// standard error.
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stderr
	}
	return &Renderer{out: out}
}

// Render formats the help text for cmd and flushes it to the sink. Rendering
// the same command twice produces byte-identical output.
func (r *Renderer) Render(cmd *command.Command) error {
	var buf bytes.Buffer
	if err := writeCommand(&buf, cmd); err != nil {
		return err
	}
	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, errors.ErrHelpWrite, "failed to write help output")
	}
	return nil
}

func writeCommand(buf *bytes.Buffer, cmd *command.Command) error {
	writeDescription(buf, cmd)
	writeUsage(buf, cmd)
	if err := writePositionalArgs(buf, cmd); err != nil {
		return err
	}
	if err := writeSubcommands(buf, cmd); err != nil {
		return err
	}
	if err := writeOptions(buf, cmd); err != nil {
		return err
	}
	writeFooter(buf, cmd)
	return nil
}

func writeDescription(buf *bytes.Buffer, cmd *command.Command) {
	if cmd.Description == "" {
		return
	}
	buf.WriteString(cmd.Description)
	buf.WriteString("\n\n")
}

func writeUsage(buf *bytes.Buffer, cmd *command.Command) {
	buf.WriteString(UsageLine(cmd))
	buf.WriteByte('\n')
}

// UsageLine returns the usage header for cmd without the trailing newline:
// the command name, one bracketed token per positional arg, then [OPTIONS]
// and a COMMAND token when options or subcommands exist. Required collections
// render in angle brackets, optional ones in square brackets.
func UsageLine(cmd *command.Command) string {
	var sb strings.Builder
	sb.WriteString("Usage: ")
	sb.WriteString(cmd.Name)

	for _, arg := range cmd.PositionalArgs {
		token := arg.Name
		if arg.TakesMultipleValues {
			token += "..."
		}
		sb.WriteByte(' ')
		sb.WriteString(bracket(token, cmd.PositionalArgRequired))
	}
	if cmd.CountOptions() > 0 {
		sb.WriteString(" [OPTIONS]")
	}
	if cmd.CountSubcommands() > 0 {
		sb.WriteByte(' ')
		sb.WriteString(bracket("COMMAND", cmd.SubcommandRequired))
	}
	return sb.String()
}

// bracket wraps token in angle brackets when required, square brackets
// otherwise.
func bracket(token string, required bool) string {
	if required {
		return "<" + token + ">"
	}
	return "[" + token + "]"
}

func writePositionalArgs(buf *bytes.Buffer, cmd *command.Command) error {
	if cmd.CountPositionalArgs() == 0 {
		return nil
	}
	buf.WriteString("\nArgs:\n")
	for _, arg := range cmd.PositionalArgs {
		signature := arg.Name
		if arg.TakesMultipleValues {
			signature += "..."
		}
		if err := writeRow(buf, signatureWidth, sectionIndent, signature, arg.Description); err != nil {
			return err
		}
	}
	return nil
}

func writeSubcommands(buf *bytes.Buffer, cmd *command.Command) error {
	if cmd.CountSubcommands() == 0 {
		return nil
	}
	buf.WriteString("\nCommands:\n")
	for _, sub := range cmd.Subcommands {
		if err := writeRow(buf, signatureWidth, sectionIndent, sub.Name, sub.Description); err != nil {
			return err
		}
	}
	return nil
}

func writeOptions(buf *bytes.Buffer, cmd *command.Command) error {
	if cmd.CountOptions() == 0 {
		return nil
	}
	buf.WriteString("\nOptions:\n")
	for _, opt := range cmd.Options {
		if err := writeOptionRows(buf, opt); err != nil {
			return err
		}
	}
	return writeOptionRows(buf, HelpOption())
}

// writeOptionRows emits the rows for a single option. An option with a
// description gets one row; a valid-values set adds either the values text in
// the same row (no description) or a second row indented by valuesIndent.
// An option with neither produces no row at all.
func writeOptionRows(buf *bytes.Buffer, opt *command.Arg) error {
	signature := OptionSignature(opt)
	if opt.ShortName == 0 {
		signature = strings.Repeat(" ", sectionIndent) + signature
	}

	switch {
	case opt.Description != "" && opt.HasValidValues():
		if err := writeRow(buf, signatureWidth, sectionIndent, signature, opt.Description); err != nil {
			return err
		}
		return writeRow(buf, valuesIndent, valuesIndent, "", validValuesText(opt))
	case opt.Description != "":
		return writeRow(buf, signatureWidth, sectionIndent, signature, opt.Description)
	case opt.HasValidValues():
		return writeRow(buf, signatureWidth, sectionIndent, signature, validValuesText(opt))
	default:
		return nil
	}
}

// OptionSignature returns the dashed form of an option without indentation:
// "-s, --long" when both names exist, then "=<PLACEHOLDER>" if the option
// takes a value and "..." if it takes several.
func OptionSignature(opt *command.Arg) string {
	var sb strings.Builder
	switch {
	case opt.ShortName != 0 && opt.LongName != "":
		fmt.Fprintf(&sb, "-%c, --%s", opt.ShortName, opt.LongName)
	case opt.ShortName != 0:
		fmt.Fprintf(&sb, "-%c", opt.ShortName)
	default:
		sb.WriteString("--")
		sb.WriteString(opt.LongName)
	}
	if opt.TakesValue {
		fmt.Fprintf(&sb, "=<%s>", opt.Placeholder())
		if opt.TakesMultipleValues {
			sb.WriteString("...")
		}
	}
	return sb.String()
}

func validValuesText(opt *command.Arg) string {
	return "values: " + strings.Join(opt.ValidValues, ", ")
}

func writeFooter(buf *bytes.Buffer, cmd *command.Command) {
	if cmd.CountSubcommands() == 0 {
		return
	}
	fmt.Fprintf(buf, "\nRun '%s <command> -h' or '%s <command> --help' to get help for specific command\n",
		cmd.Name, cmd.Name)
}

// writeRow emits one entry row: indent spaces and the signature text in a
// sigWidth column, the description text beside it, and any overflow drained
// into continuations carrying the same indent.
func writeRow(buf *bytes.Buffer, sigWidth, indent int, signature, description string) error {
	ln := newLine(sigWidth, indent)
	ln.signature.appendPadding(indent)
	if signature != "" {
		if err := ln.signature.append(signature); err != nil {
			return err
		}
	}
	if description != "" {
		if err := ln.description.append(description); err != nil {
			return err
		}
	}
	return ln.format(buf)
}
