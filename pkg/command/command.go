// Package command defines the declarative model of a command-line interface:
// commands, subcommands, options and positional arguments. The model is
// consumed read-only by the parser, the help renderer and the documentation
// generators.
package command

// Command represents a command or subcommand with its arguments.
type Command struct {
	// Name is the word that invokes the command
	Name string

	// Description is the free-text explanation shown in help output
	Description string

	// PositionalArgs are filled from non-option tokens in declaration order
	PositionalArgs []*Arg

	// Options are matched by short or long name
	Options []*Arg

	// Subcommands are dispatched by exact first-token match
	Subcommands []*Command

	// PositionalArgRequired requires at least one positional to be provided
	PositionalArgRequired bool

	// SubcommandRequired requires a subcommand to be provided
	SubcommandRequired bool
}

// New creates a command with the given name and description.
func New(name, description string) *Command {
	return &Command{
		Name:        name,
		Description: description,
	}
}

// AddArg attaches arg to the command, routing options and positionals by
// whether the arg carries a short or long name.
func (c *Command) AddArg(arg *Arg) *Command {
	if arg.IsOption() {
		c.Options = append(c.Options, arg)
	} else {
		c.PositionalArgs = append(c.PositionalArgs, arg)
	}
	return c
}

// AddArgs attaches several args at once.
func (c *Command) AddArgs(args ...*Arg) *Command {
	for _, arg := range args {
		c.AddArg(arg)
	}
	return c
}

// AddSubcommand attaches a subcommand.
func (c *Command) AddSubcommand(sub *Command) *Command {
	c.Subcommands = append(c.Subcommands, sub)
	return c
}

// AddSubcommands attaches several subcommands at once.
func (c *Command) AddSubcommands(subs ...*Command) *Command {
	c.Subcommands = append(c.Subcommands, subs...)
	return c
}

// RequirePositionalArgs makes providing at least one positional mandatory.
// It also switches the usage line to render positionals in angle brackets.
func (c *Command) RequirePositionalArgs() *Command {
	c.PositionalArgRequired = true
	return c
}

// RequireSubcommand makes providing a subcommand mandatory.
func (c *Command) RequireSubcommand() *Command {
	c.SubcommandRequired = true
	return c
}

// CountPositionalArgs returns the number of positional arguments.
func (c *Command) CountPositionalArgs() int {
	return len(c.PositionalArgs)
}

// CountOptions returns the number of options.
func (c *Command) CountOptions() int {
	return len(c.Options)
}

// CountSubcommands returns the number of subcommands.
func (c *Command) CountSubcommands() int {
	return len(c.Subcommands)
}

// FindSubcommand returns the subcommand with the given name, or nil.
func (c *Command) FindSubcommand(name string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// FindShortOption returns the option with the given short name, or nil.
func (c *Command) FindShortOption(short rune) *Arg {
	for _, opt := range c.Options {
		if opt.ShortName == short {
			return opt
		}
	}
	return nil
}

// FindLongOption returns the option whose long name or canonical name
// matches, or nil. Short-only options carry an empty long name, so the
// empty string matches nothing.
func (c *Command) FindLongOption(long string) *Arg {
	if long == "" {
		return nil
	}
	for _, opt := range c.Options {
		if opt.LongName == long || opt.Name == long {
			return opt
		}
	}
	return nil
}
