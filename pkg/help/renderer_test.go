package help_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenderlove/yazap/pkg/command"
	"github.com/tenderlove/yazap/pkg/errors"
	"github.com/tenderlove/yazap/pkg/help"
)

const sigWidth = 50

// row builds one aligned help row: the signature text space-filled to the
// signature column width, then the description, then a newline.
func row(signature, description string) string {
	return signature + strings.Repeat(" ", sigWidth-len(signature)) + description + "\n"
}

func render(t *testing.T, cmd *command.Command) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, help.NewRenderer(&buf).Render(cmd))
	return buf.String()
}

func TestRenderRequiredPositional(t *testing.T) {
	cmd := command.New("mycmd", "")
	cmd.AddArg(command.NewPositional("FILE", ""))
	cmd.RequirePositionalArgs()

	want := "Usage: mycmd <FILE>\n" +
		"\nArgs:\n" +
		row("    FILE", "")

	if diff := cmp.Diff(want, render(t, cmd)); diff != "" {
		t.Errorf("help output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDescriptionSection(t *testing.T) {
	cmd := command.New("mycmd", "Does one thing well")

	want := "Does one thing well\n\n" +
		"Usage: mycmd\n"
	assert.Equal(t, want, render(t, cmd))
}

func TestUsageLine(t *testing.T) {
	tests := []struct {
		name  string
		build func() *command.Command
		want  string
	}{
		{
			name:  "bare command",
			build: func() *command.Command { return command.New("tool", "") },
			want:  "Usage: tool",
		},
		{
			name: "optional positional",
			build: func() *command.Command {
				return command.New("tool", "").AddArg(command.NewPositional("FILE", ""))
			},
			want: "Usage: tool [FILE]",
		},
		{
			name: "required positional",
			build: func() *command.Command {
				return command.New("tool", "").
					AddArg(command.NewPositional("FILE", "")).
					RequirePositionalArgs()
			},
			want: "Usage: tool <FILE>",
		},
		{
			name: "multi-value positional",
			build: func() *command.Command {
				files := command.NewPositional("FILES", "").SetTakesMultipleValues(true)
				return command.New("tool", "").AddArg(files)
			},
			want: "Usage: tool [FILES...]",
		},
		{
			name: "options only",
			build: func() *command.Command {
				return command.New("tool", "").AddArg(command.NewBooleanOption("verbose", 'v', ""))
			},
			want: "Usage: tool [OPTIONS]",
		},
		{
			name: "optional subcommand",
			build: func() *command.Command {
				return command.New("tool", "").AddSubcommand(command.New("run", ""))
			},
			want: "Usage: tool [COMMAND]",
		},
		{
			name: "required subcommand",
			build: func() *command.Command {
				return command.New("tool", "").
					AddSubcommand(command.New("run", "")).
					RequireSubcommand()
			},
			want: "Usage: tool <COMMAND>",
		},
		{
			name: "all collections",
			build: func() *command.Command {
				return command.New("tool", "").
					AddArgs(command.NewPositional("SRC", ""), command.NewPositional("DST", "")).
					RequirePositionalArgs().
					AddArg(command.NewBooleanOption("force", 'f', "")).
					AddSubcommand(command.New("sync", "")).
					RequireSubcommand()
			},
			want: "Usage: tool <SRC> <DST> [OPTIONS] <COMMAND>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, help.UsageLine(tt.build()))
		})
	}
}

func TestRenderLongOnlyOptionAligns(t *testing.T) {
	cmd := command.New("net", "")
	cmd.AddArg(command.NewBooleanOption("time", 't', "Measure transfer time"))
	cmd.AddArg(command.NewBooleanOption("max-time", 0, "Cap the transfer time"))

	want := "Usage: net [OPTIONS]\n" +
		"\nOptions:\n" +
		row("    -t, --time", "Measure transfer time") +
		row("        --max-time", "Cap the transfer time") +
		row("    -h, --help", "Print help and exit")

	out := render(t, cmd)
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("help output mismatch (-want +got):\n%s", diff)
	}

	for _, line := range strings.Split(out, "\n") {
		if i := strings.Index(line, "--time"); i >= 0 {
			assert.Equal(t, 8, i, "long name with a short sibling starts at column 8")
		}
		if i := strings.Index(line, "--max-time"); i >= 0 {
			assert.Equal(t, 8, i, "long-only name starts at column 8 too")
		}
	}
}

func TestRenderShortOnlyOption(t *testing.T) {
	quiet := command.NewBooleanOption("quiet", 'q', "Suppress output")
	quiet.LongName = ""
	cmd := command.New("tool", "").AddArg(quiet)

	want := "Usage: tool [OPTIONS]\n" +
		"\nOptions:\n" +
		row("    -q", "Suppress output") +
		row("    -h, --help", "Print help and exit")
	assert.Equal(t, want, render(t, cmd))
}

func TestRenderValuePlaceholders(t *testing.T) {
	cmd := command.New("req", "")
	cmd.AddArg(command.NewSingleValueOption("timeout", 'T', "Give up after SECS").SetValuePlaceholder("SECS"))
	cmd.AddArg(command.NewMultiValuesOption("header", 'H', "Extra request header", 0))

	want := "Usage: req [OPTIONS]\n" +
		"\nOptions:\n" +
		row("    -T, --timeout=<SECS>", "Give up after SECS") +
		row("    -H, --header=<header>...", "Extra request header") +
		row("    -h, --help", "Print help and exit")

	if diff := cmp.Diff(want, render(t, cmd)); diff != "" {
		t.Errorf("help output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDescriptionOverflow(t *testing.T) {
	long := strings.Repeat("a", 50) + "0123456789"
	cmd := command.New("tool", "")
	cmd.AddArg(command.NewBooleanOption("all", 'a', long))

	want := "Usage: tool [OPTIONS]\n" +
		"\nOptions:\n" +
		row("    -a, --all", strings.Repeat("a", 50)) +
		strings.Repeat(" ", sigWidth) + "0123456789\n" +
		row("    -h, --help", "Print help and exit")

	if diff := cmp.Diff(want, render(t, cmd)); diff != "" {
		t.Errorf("help output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderValidValuesWithDescription(t *testing.T) {
	cmd := command.New("conv", "")
	cmd.AddArg(command.NewSingleValueOptionWithValidValues("format", 'f', "Output format", "json", "yaml"))

	want := "Usage: conv [OPTIONS]\n" +
		"\nOptions:\n" +
		row("    -f, --format=<format>", "Output format") +
		"  values: json, yaml\n" +
		row("    -h, --help", "Print help and exit")

	if diff := cmp.Diff(want, render(t, cmd)); diff != "" {
		t.Errorf("help output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderValidValuesWithoutDescription(t *testing.T) {
	cmd := command.New("conv", "")
	cmd.AddArg(command.NewSingleValueOptionWithValidValues("level", 'l', "", "debug", "info"))

	want := "Usage: conv [OPTIONS]\n" +
		"\nOptions:\n" +
		row("    -l, --level=<level>", "values: debug, info") +
		row("    -h, --help", "Print help and exit")
	assert.Equal(t, want, render(t, cmd))
}

func TestRenderOptionWithoutDescriptionOrValues(t *testing.T) {
	cmd := command.New("tool", "")
	cmd.AddArg(command.NewBooleanOption("force", 'f', ""))

	want := "Usage: tool [OPTIONS]\n" +
		"\nOptions:\n" +
		row("    -h, --help", "Print help and exit")
	assert.Equal(t, want, render(t, cmd), "an option with neither description nor values produces no row")
}

func TestRenderSubcommandsAndFooter(t *testing.T) {
	cmd := command.New("mycli", "")
	cmd.AddSubcommands(
		command.New("build", "Compile the project"),
		command.New("clean", "Remove build output"),
	)

	want := "Usage: mycli [COMMAND]\n" +
		"\nCommands:\n" +
		row("    build", "Compile the project") +
		row("    clean", "Remove build output") +
		"\nRun 'mycli <command> -h' or 'mycli <command> --help' to get help for specific command\n"

	if diff := cmp.Diff(want, render(t, cmd)); diff != "" {
		t.Errorf("help output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderNoFooterWithoutSubcommands(t *testing.T) {
	cmd := command.New("tool", "")
	cmd.AddArg(command.NewBooleanOption("verbose", 'v', "Talk more"))

	assert.NotContains(t, render(t, cmd), "Run '")
}

func TestRenderMultiValuePositionalSuffix(t *testing.T) {
	files := command.NewPositional("FILES", "Files to pack").SetTakesMultipleValues(true)
	cmd := command.New("pack", "").AddArg(files)

	want := "Usage: pack [FILES...]\n" +
		"\nArgs:\n" +
		row("    FILES...", "Files to pack")
	assert.Equal(t, want, render(t, cmd))
}

func buildFetchCommand() *command.Command {
	cmd := command.New("fetch", "Download files from mirrors")
	cmd.AddArgs(
		command.NewPositional("URL", "Source location"),
		command.NewPositional("DEST", ""),
	)
	cmd.RequirePositionalArgs()
	cmd.AddSubcommands(
		command.New("resume", "Continue a partial download"),
		command.New("verify", "Check a finished download"),
	)
	cmd.AddArg(command.NewSingleValueOption("output", 'o', "Write to file"))
	cmd.AddArg(command.NewSingleValueOptionWithValidValues("retry", 'r', "Retry policy", "never", "on-error", "always"))
	cmd.AddArg(command.NewBooleanOption("insecure", 0, "Skip TLS verification"))
	return cmd
}

func TestRenderFullCommand(t *testing.T) {
	want := "Download files from mirrors\n\n" +
		"Usage: fetch <URL> <DEST> [OPTIONS] [COMMAND]\n" +
		"\nArgs:\n" +
		row("    URL", "Source location") +
		row("    DEST", "") +
		"\nCommands:\n" +
		row("    resume", "Continue a partial download") +
		row("    verify", "Check a finished download") +
		"\nOptions:\n" +
		row("    -o, --output=<output>", "Write to file") +
		row("    -r, --retry=<retry>", "Retry policy") +
		"  values: never, on-error, always\n" +
		row("        --insecure", "Skip TLS verification") +
		row("    -h, --help", "Print help and exit") +
		"\nRun 'fetch <command> -h' or 'fetch <command> --help' to get help for specific command\n"

	if diff := cmp.Diff(want, render(t, buildFetchCommand())); diff != "" {
		t.Errorf("help output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderIdempotent(t *testing.T) {
	cmd := buildFetchCommand()
	assert.Equal(t, render(t, cmd), render(t, cmd))
}

func TestRenderCapacityViolation(t *testing.T) {
	cmd := command.New("tool", "")
	cmd.AddArg(command.NewBooleanOption("all", 'a', strings.Repeat("x", 150)))

	var buf bytes.Buffer
	err := help.NewRenderer(&buf).Render(cmd)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBlockCapacity))
	assert.Zero(t, buf.Len(), "a failed render must not flush partial output")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRenderWriteFailure(t *testing.T) {
	err := help.NewRenderer(failWriter{}).Render(command.New("tool", ""))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHelpWrite))
}

func TestOptionSignature(t *testing.T) {
	tests := []struct {
		name string
		arg  *command.Arg
		want string
	}{
		{
			name: "short and long",
			arg:  command.NewBooleanOption("time", 't', ""),
			want: "-t, --time",
		},
		{
			name: "short only",
			arg:  &command.Arg{Name: "verbose", ShortName: 'v'},
			want: "-v",
		},
		{
			name: "long only",
			arg:  command.NewBooleanOption("max-time", 0, ""),
			want: "--max-time",
		},
		{
			name: "single value",
			arg:  command.NewSingleValueOption("output", 'o', ""),
			want: "-o, --output=<output>",
		},
		{
			name: "explicit placeholder",
			arg:  command.NewSingleValueOption("timeout", 'T', "").SetValuePlaceholder("SECS"),
			want: "-T, --timeout=<SECS>",
		},
		{
			name: "multiple values",
			arg:  command.NewMultiValuesOption("header", 'H', "", 0),
			want: "-H, --header=<header>...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, help.OptionSignature(tt.arg))
		})
	}
}
