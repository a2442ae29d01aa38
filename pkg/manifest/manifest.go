// Package manifest loads declarative command definitions from TOML or YAML
// files and builds command trees from them, so a CLI's surface can live in a
// config file instead of Go code.
package manifest

import (
	"strings"
	"unicode/utf8"

	"github.com/tenderlove/yazap/pkg/command"
	"github.com/tenderlove/yazap/pkg/errors"
)

// Manifest describes one command. Subcommands nest recursively, so the root
// of a manifest file is the same shape as every command below it.
type Manifest struct {
	Name           string       `koanf:"name" toml:"name" yaml:"name"`
	Description    string       `koanf:"description" toml:"description,omitempty" yaml:"description,omitempty"`
	RequireArgs    bool         `koanf:"require_args" toml:"require_args" yaml:"require_args"`
	RequireCommand bool         `koanf:"require_command" toml:"require_command" yaml:"require_command"`
	Args           []ArgSpec    `koanf:"args" toml:"args,omitempty" yaml:"args,omitempty"`
	Options        []OptionSpec `koanf:"options" toml:"options,omitempty" yaml:"options,omitempty"`
	Commands       []Manifest   `koanf:"commands" toml:"commands,omitempty" yaml:"commands,omitempty"`
}

// ArgSpec describes a positional argument.
type ArgSpec struct {
	Name        string `koanf:"name" toml:"name" yaml:"name"`
	Description string `koanf:"description" toml:"description,omitempty" yaml:"description,omitempty"`
	Multiple    bool   `koanf:"multiple" toml:"multiple,omitempty" yaml:"multiple,omitempty"`
	Required    bool   `koanf:"required" toml:"required,omitempty" yaml:"required,omitempty"`
}

// OptionSpec describes an option. Long defaults to Name when empty.
type OptionSpec struct {
	Name        string   `koanf:"name" toml:"name" yaml:"name"`
	Short       string   `koanf:"short" toml:"short,omitempty" yaml:"short,omitempty"`
	Long        string   `koanf:"long" toml:"long,omitempty" yaml:"long,omitempty"`
	Description string   `koanf:"description" toml:"description,omitempty" yaml:"description,omitempty"`
	Placeholder string   `koanf:"placeholder" toml:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	TakesValue  bool     `koanf:"takes_value" toml:"takes_value,omitempty" yaml:"takes_value,omitempty"`
	Multiple    bool     `koanf:"multiple" toml:"multiple,omitempty" yaml:"multiple,omitempty"`
	MaxValues   int      `koanf:"max_values" toml:"max_values,omitempty" yaml:"max_values,omitempty"`
	Values      []string `koanf:"values" toml:"values,omitempty" yaml:"values,omitempty"`
	Default     string   `koanf:"default" toml:"default,omitempty" yaml:"default,omitempty"`
	Delimiter   string   `koanf:"delimiter" toml:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	Required    bool     `koanf:"required" toml:"required,omitempty" yaml:"required,omitempty"`
	AllowEmpty  bool     `koanf:"allow_empty" toml:"allow_empty,omitempty" yaml:"allow_empty,omitempty"`
}

// Validate checks the manifest for structural problems: empty names,
// multi-character short names, value settings on options that take no value,
// duplicate option or subcommand names.
func (m *Manifest) Validate() error {
	return validateCommand(m, m.Name)
}

func validateCommand(m *Manifest, path string) error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New(errors.ErrManifestInvalid, "command name must not be empty").
			WithDetail("command", path)
	}

	for _, arg := range m.Args {
		if strings.TrimSpace(arg.Name) == "" {
			return errors.New(errors.ErrManifestInvalid, "positional arg name must not be empty").
				WithDetail("command", path)
		}
	}

	seenOptions := make(map[string]bool)
	for _, opt := range m.Options {
		if strings.TrimSpace(opt.Name) == "" {
			return errors.New(errors.ErrManifestInvalid, "option name must not be empty").
				WithDetail("command", path)
		}
		if seenOptions[opt.Name] {
			return errors.Newf(errors.ErrManifestInvalid, "duplicate option: %s", opt.Name).
				WithDetail("command", path).
				WithDetail("option", opt.Name)
		}
		seenOptions[opt.Name] = true

		if opt.Short != "" && utf8.RuneCountInString(opt.Short) != 1 {
			return errors.Newf(errors.ErrManifestInvalid, "short name of option %s must be a single character", opt.Name).
				WithDetail("command", path).
				WithDetail("option", opt.Name).
				WithDetail("short", opt.Short)
		}
		if !opt.TakesValue && !opt.Multiple && hasValueSettings(opt) {
			return errors.Newf(errors.ErrManifestInvalid, "option %s declares value settings but takes no value", opt.Name).
				WithDetail("command", path).
				WithDetail("option", opt.Name)
		}
	}

	seenCommands := make(map[string]bool)
	for i := range m.Commands {
		sub := &m.Commands[i]
		if seenCommands[sub.Name] {
			return errors.Newf(errors.ErrManifestInvalid, "duplicate subcommand: %s", sub.Name).
				WithDetail("command", path).
				WithDetail("subcommand", sub.Name)
		}
		seenCommands[sub.Name] = true
		if err := validateCommand(sub, path+" "+sub.Name); err != nil {
			return err
		}
	}
	return nil
}

func hasValueSettings(opt OptionSpec) bool {
	return len(opt.Values) > 0 || opt.Placeholder != "" || opt.Default != "" ||
		opt.Delimiter != "" || opt.MaxValues > 0
}

// Build constructs the command tree the manifest describes. Call Validate
// first; Build does not re-check.
func (m *Manifest) Build() *command.Command {
	cmd := command.New(m.Name, m.Description)
	for _, spec := range m.Args {
		arg := command.NewPositional(spec.Name, spec.Description)
		if spec.Multiple {
			arg.SetTakesMultipleValues(true)
		}
		arg.SetRequired(spec.Required)
		cmd.AddArg(arg)
	}
	for i := range m.Options {
		cmd.AddArg(m.Options[i].build())
	}
	for i := range m.Commands {
		cmd.AddSubcommand(m.Commands[i].Build())
	}
	if m.RequireArgs {
		cmd.RequirePositionalArgs()
	}
	if m.RequireCommand {
		cmd.RequireSubcommand()
	}
	return cmd
}

func (o *OptionSpec) build() *command.Arg {
	short := rune(0)
	if o.Short != "" {
		short, _ = utf8.DecodeRuneInString(o.Short)
	}

	var arg *command.Arg
	switch {
	case o.Multiple:
		arg = command.NewMultiValuesOption(o.Name, short, o.Description, o.MaxValues)
	case o.TakesValue:
		arg = command.NewSingleValueOption(o.Name, short, o.Description)
	default:
		arg = command.NewBooleanOption(o.Name, short, o.Description)
	}

	if o.Long != "" {
		arg.LongName = o.Long
	}
	if o.Placeholder != "" {
		arg.SetValuePlaceholder(o.Placeholder)
	}
	if len(o.Values) > 0 {
		arg.SetValidValues(o.Values...)
	}
	if o.Default != "" {
		arg.SetDefaultValue(o.Default)
	}
	if o.Delimiter != "" {
		arg.SetValuesDelimiter(o.Delimiter)
	}
	arg.SetRequired(o.Required)
	arg.SetAllowEmptyValue(o.AllowEmpty)
	return arg
}
