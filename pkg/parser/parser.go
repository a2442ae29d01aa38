// Package parser walks a raw argv slice against a command tree and produces
// Matches: which options were set, the values they carry, which positional
// slots were filled, and which subcommand was dispatched. The walk is a
// single pass; -h and --help are reserved and stop it with a help request
// for the command being parsed at that point.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/tenderlove/yazap/pkg/command"
	"github.com/tenderlove/yazap/pkg/errors"
	"github.com/tenderlove/yazap/pkg/logging"
)

// Parser matches argv tokens against a command tree.
type Parser struct {
	defaults map[string]string
}

func New() *Parser {
	return &Parser{}
}

// SetDefaults supplies fallback values by arg name. An option absent from
// argv takes its value from here before falling back to its own
// DefaultValue.
func (p *Parser) SetDefaults(values map[string]string) {
	p.defaults = values
}

// Parse walks argv against cmd. On a -h or --help token it returns a
// HELP_REQUESTED error whose "path" detail names the subcommand chain the
// help targets, empty for the root command.
func (p *Parser) Parse(cmd *command.Command, argv []string) (*Matches, error) {
	logging.LogParse(cmd.Name, argv)
	return p.parseCommand(cmd, argv, nil)
}

func (p *Parser) parseCommand(cmd *command.Command, argv []string, path []string) (*Matches, error) {
	m := newMatches(cmd.Name)
	positionalIndex := 0
	positionalOnly := false

	for i := 0; i < len(argv); {
		token := argv[i]
		switch {
		case !positionalOnly && token == "--":
			positionalOnly = true
			i++
		case !positionalOnly && strings.HasPrefix(token, "--"):
			consumed, err := p.parseLongOption(cmd, m, token[2:], argv[i+1:], path)
			if err != nil {
				return nil, err
			}
			i += 1 + consumed
		case !positionalOnly && len(token) > 1 && token[0] == '-':
			consumed, err := p.parseShortChain(cmd, m, token[1:], argv[i+1:], path)
			if err != nil {
				return nil, err
			}
			i += 1 + consumed
		default:
			if !positionalOnly {
				if sub := cmd.FindSubcommand(token); sub != nil {
					subMatches, err := p.parseCommand(sub, argv[i+1:], append(path, sub.Name))
					if err != nil {
						return nil, err
					}
					m.sub = subMatches
					logger := logging.GetLogger("parser")
					logger.Debug().Str("command", cmd.Name).Str("subcommand", sub.Name).Msg("dispatched subcommand")
					i = len(argv)
					continue
				}
			}
			if err := consumePositional(cmd, m, &positionalIndex, token); err != nil {
				return nil, err
			}
			i++
		}
	}

	if err := p.applyDefaults(cmd, m); err != nil {
		return nil, err
	}
	if m.sub == nil {
		if err := validateRequired(cmd, m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// parseLongOption handles one --name or --name=value token. body is the
// token without the leading dashes; rest is every token after it. It returns
// how many of the following tokens it consumed as values.
func (p *Parser) parseLongOption(cmd *command.Command, m *Matches, body string, rest []string, path []string) (int, error) {
	name := body
	value := ""
	hasValue := false
	if eq := strings.Index(body, "="); eq >= 0 {
		name, value, hasValue = body[:eq], body[eq+1:], true
	}

	if name == "help" {
		return 0, helpRequested(path)
	}
	opt := cmd.FindLongOption(name)
	if opt == nil {
		return 0, errors.Newf(errors.ErrUnknownFlag, "unknown flag: --%s", name).
			WithDetail("flag", "--"+name)
	}

	if !opt.TakesValue {
		if hasValue {
			return 0, errors.Newf(errors.ErrUnexpectedValue, "option --%s does not take a value", name).
				WithDetail("flag", "--"+name).
				WithDetail("value", value)
		}
		m.setFlag(opt.Name)
		return 0, nil
	}
	if hasValue {
		return 0, recordProvidedValue(opt, m, value)
	}
	return consumeFollowingValues(opt, m, rest)
}

// parseShortChain handles one -a, -abc, -ovalue or -o=value token. body is
// the token without the leading dash. A value-taking option inside a chain
// consumes the remainder of the chain as its value, or the following tokens
// when the chain ends with it.
func (p *Parser) parseShortChain(cmd *command.Command, m *Matches, body string, rest []string, path []string) (int, error) {
	for i, ch := range body {
		if ch == 'h' {
			return 0, helpRequested(path)
		}
		opt := cmd.FindShortOption(ch)
		if opt == nil {
			return 0, errors.Newf(errors.ErrUnknownFlag, "unknown flag: -%c", ch).
				WithDetail("flag", "-"+string(ch))
		}

		next := body[i+utf8.RuneLen(ch):]
		if !opt.TakesValue {
			if strings.HasPrefix(next, "=") {
				return 0, errors.Newf(errors.ErrUnexpectedValue, "option -%c does not take a value", ch).
					WithDetail("flag", "-"+string(ch)).
					WithDetail("value", strings.TrimPrefix(next, "="))
			}
			m.setFlag(opt.Name)
			continue
		}

		if next == "" {
			return consumeFollowingValues(opt, m, rest)
		}
		return 0, recordProvidedValue(opt, m, strings.TrimPrefix(next, "="))
	}
	return 0, nil
}

// consumePositional fills the next positional slot with token. A multi-value
// positional keeps its slot and accumulates every further token.
func consumePositional(cmd *command.Command, m *Matches, index *int, token string) error {
	if *index >= cmd.CountPositionalArgs() {
		return errors.Newf(errors.ErrUnexpectedArgument, "unexpected argument: %s", token).
			WithDetail("argument", token)
	}

	arg := cmd.PositionalArgs[*index]
	vals, err := splitAndValidate(arg, token)
	if err != nil {
		return err
	}
	if arg.TakesMultipleValues {
		m.appendValues(arg.Name, vals...)
		return checkMaxValues(arg, m)
	}
	m.setValues(arg.Name, vals)
	*index++
	return nil
}

// consumeFollowingValues resolves the value of a bare --opt or -o from the
// tokens after it: one token for a single-value option, every non-option
// token up to MaxValues for a multi-value one.
func consumeFollowingValues(opt *command.Arg, m *Matches, rest []string) (int, error) {
	if opt.TakesMultipleValues {
		consumed := 0
		var vals []string
		for _, token := range rest {
			if isOptionToken(token) {
				break
			}
			split, err := splitAndValidate(opt, token)
			if err != nil {
				return 0, err
			}
			vals = append(vals, split...)
			consumed++
			if opt.MaxValues > 0 && len(m.GetMultiValues(opt.Name))+len(vals) >= opt.MaxValues {
				break
			}
		}
		if len(vals) == 0 {
			if !opt.AllowEmptyValue {
				return 0, missingValue(opt)
			}
			m.setFlag(opt.Name)
			return 0, nil
		}
		m.appendValues(opt.Name, vals...)
		if err := checkMaxValues(opt, m); err != nil {
			return 0, err
		}
		return consumed, nil
	}

	if len(rest) == 0 || isOptionToken(rest[0]) {
		if opt.AllowEmptyValue {
			m.setValues(opt.Name, []string{""})
			return 0, nil
		}
		return 0, missingValue(opt)
	}
	vals, err := splitAndValidate(opt, rest[0])
	if err != nil {
		return 0, err
	}
	m.setValues(opt.Name, vals)
	return 1, nil
}

// recordProvidedValue stores a value given in the --opt=value or -ovalue
// form. Multi-value options accumulate across repeats; single-value options
// keep the last occurrence.
func recordProvidedValue(opt *command.Arg, m *Matches, raw string) error {
	vals, err := splitAndValidate(opt, raw)
	if err != nil {
		return err
	}
	if opt.TakesMultipleValues {
		m.appendValues(opt.Name, vals...)
		return checkMaxValues(opt, m)
	}
	m.setValues(opt.Name, vals)
	return nil
}

// splitAndValidate applies the arg's delimiter and checks every resulting
// value against its valid-values set.
func splitAndValidate(arg *command.Arg, raw string) ([]string, error) {
	if raw == "" {
		if !arg.AllowEmptyValue {
			return nil, missingValue(arg)
		}
		return []string{""}, nil
	}

	vals := []string{raw}
	if arg.ValuesDelimiter != "" && strings.Contains(raw, arg.ValuesDelimiter) {
		vals = strings.Split(raw, arg.ValuesDelimiter)
	}
	for _, v := range vals {
		if !arg.IsValidValue(v) {
			return nil, errors.Newf(errors.ErrInvalidValue, "invalid value %q for %s, valid values: %s",
				v, displayName(arg), strings.Join(arg.ValidValues, ", ")).
				WithDetail("arg", arg.Name).
				WithDetail("value", v)
		}
	}
	return vals, nil
}

// applyDefaults fills absent value-taking options from the injected defaults
// first, the arg's own DefaultValue second. Defaults go through the same
// valid-values check as command-line input.
func (p *Parser) applyDefaults(cmd *command.Command, m *Matches) error {
	for _, opt := range cmd.Options {
		if !opt.TakesValue || m.ContainsArg(opt.Name) {
			continue
		}
		v, fromInjected := p.defaults[opt.Name]
		if !fromInjected {
			if opt.DefaultValue == "" {
				continue
			}
			v = opt.DefaultValue
		}
		if !opt.IsValidValue(v) {
			return errors.Newf(errors.ErrInvalidValue, "invalid default value %q for %s, valid values: %s",
				v, displayName(opt), strings.Join(opt.ValidValues, ", ")).
				WithDetail("arg", opt.Name).
				WithDetail("value", v)
		}
		m.setValues(opt.Name, []string{v})
		if fromInjected {
			logger := logging.GetLogger("parser")
			logger.Trace().Str("option", opt.Name).Msg("applied environment default")
		}
	}
	return nil
}

// validateRequired enforces the required flags on the deepest command of the
// parse: dispatching to a subcommand moves the whole obligation there.
func validateRequired(cmd *command.Command, m *Matches) error {
	if cmd.SubcommandRequired {
		return errors.Newf(errors.ErrMissingSubcommand, "command '%s' requires a subcommand", cmd.Name).
			WithDetail("command", cmd.Name)
	}
	if cmd.PositionalArgRequired && !anyPositionalProvided(cmd, m) {
		return errors.Newf(errors.ErrMissingRequired, "command '%s' requires positional arguments", cmd.Name).
			WithDetail("command", cmd.Name)
	}
	for _, arg := range cmd.PositionalArgs {
		if arg.Required && !m.ContainsArg(arg.Name) {
			return errors.Newf(errors.ErrMissingRequired, "missing required argument: %s", arg.Name).
				WithDetail("arg", arg.Name)
		}
	}
	for _, opt := range cmd.Options {
		if opt.Required && !m.ContainsArg(opt.Name) {
			return errors.Newf(errors.ErrMissingRequired, "missing required option: %s", displayName(opt)).
				WithDetail("arg", opt.Name)
		}
	}
	return nil
}

func anyPositionalProvided(cmd *command.Command, m *Matches) bool {
	for _, arg := range cmd.PositionalArgs {
		if m.ContainsArg(arg.Name) {
			return true
		}
	}
	return false
}

// isOptionToken reports whether token looks like an option rather than a
// value. A bare dash is a value by convention.
func isOptionToken(token string) bool {
	return len(token) > 1 && token[0] == '-'
}

func missingValue(arg *command.Arg) error {
	return errors.Newf(errors.ErrMissingValue, "missing value for %s", displayName(arg)).
		WithDetail("arg", arg.Name)
}

func checkMaxValues(arg *command.Arg, m *Matches) error {
	if arg.MaxValues > 0 && len(m.GetMultiValues(arg.Name)) > arg.MaxValues {
		return errors.Newf(errors.ErrTooManyValues, "%s accepts at most %d values", displayName(arg), arg.MaxValues).
			WithDetail("arg", arg.Name).
			WithDetail("max", arg.MaxValues)
	}
	return nil
}

func displayName(arg *command.Arg) string {
	switch {
	case arg.LongName != "":
		return "--" + arg.LongName
	case arg.ShortName != 0:
		return "-" + string(arg.ShortName)
	default:
		return arg.Name
	}
}

func helpRequested(path []string) error {
	return errors.New(errors.ErrHelpRequested, "help requested").
		WithDetail("path", append([]string(nil), path...))
}
