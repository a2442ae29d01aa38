package command

// Arg represents a single positional argument or option of a command.
// An Arg with a short or long name is an option; otherwise it is positional.
type Arg struct {
	// Name is the canonical identifier, used for lookups in parse results
	Name string

	// ShortName is the single-character option name (0 = none)
	ShortName rune

	// LongName is the long option name without dashes ("" = none)
	LongName string

	// Description is the free-text explanation shown in help output
	Description string

	// ValuePlaceholder overrides the value name shown in help (e.g. SECS)
	ValuePlaceholder string

	// ValidValues restricts accepted values when non-empty
	ValidValues []string

	// DefaultValue is used when the option is absent from the command line
	DefaultValue string

	// ValuesDelimiter splits a single provided value into several (e.g. ",")
	ValuesDelimiter string

	// MaxValues caps how many values a multi-value arg accepts (0 = unbounded)
	MaxValues int

	TakesValue          bool
	TakesMultipleValues bool
	Required            bool
	AllowEmptyValue     bool
}

// NewPositional creates a positional argument. Positionals are filled in
// declaration order; the command-level PositionalArgRequired flag controls
// whether at least one must be provided.
func NewPositional(name, description string) *Arg {
	return &Arg{
		Name:        name,
		Description: description,
	}
}

// NewBooleanOption creates an option that takes no value. The long name
// defaults to the arg name; pass 0 to omit the short name.
func NewBooleanOption(name string, short rune, description string) *Arg {
	return &Arg{
		Name:        name,
		ShortName:   short,
		LongName:    name,
		Description: description,
	}
}

// NewSingleValueOption creates an option that takes exactly one value.
func NewSingleValueOption(name string, short rune, description string) *Arg {
	return &Arg{
		Name:        name,
		ShortName:   short,
		LongName:    name,
		Description: description,
		TakesValue:  true,
	}
}

// NewSingleValueOptionWithValidValues creates a single-value option that only
// accepts one of the given values.
func NewSingleValueOptionWithValidValues(name string, short rune, description string, values ...string) *Arg {
	arg := NewSingleValueOption(name, short, description)
	arg.ValidValues = values
	return arg
}

// NewMultiValuesOption creates an option that accepts up to maxValues values
// (0 = unbounded).
func NewMultiValuesOption(name string, short rune, description string, maxValues int) *Arg {
	return &Arg{
		Name:                name,
		ShortName:           short,
		LongName:            name,
		Description:         description,
		TakesValue:          true,
		TakesMultipleValues: true,
		MaxValues:           maxValues,
	}
}

// NewMultiValuesOptionWithValidValues creates a multi-value option that only
// accepts the given values.
func NewMultiValuesOptionWithValidValues(name string, short rune, description string, maxValues int, values ...string) *Arg {
	arg := NewMultiValuesOption(name, short, description, maxValues)
	arg.ValidValues = values
	return arg
}

// SetValuePlaceholder sets the value name shown in help output.
func (a *Arg) SetValuePlaceholder(placeholder string) *Arg {
	a.ValuePlaceholder = placeholder
	return a
}

// SetValidValues restricts the values this arg accepts.
func (a *Arg) SetValidValues(values ...string) *Arg {
	a.ValidValues = values
	return a
}

// SetDefaultValue sets the value used when the arg is absent.
func (a *Arg) SetDefaultValue(value string) *Arg {
	a.DefaultValue = value
	return a
}

// SetValuesDelimiter makes the parser split provided values on delim.
func (a *Arg) SetValuesDelimiter(delim string) *Arg {
	a.ValuesDelimiter = delim
	return a
}

// SetRequired marks the arg as mandatory.
func (a *Arg) SetRequired(required bool) *Arg {
	a.Required = required
	return a
}

// SetAllowEmptyValue permits `--opt=` and a bare `--opt` for value options.
func (a *Arg) SetAllowEmptyValue(allow bool) *Arg {
	a.AllowEmptyValue = allow
	return a
}

// SetTakesMultipleValues marks the arg as accepting several values.
func (a *Arg) SetTakesMultipleValues(multiple bool) *Arg {
	a.TakesMultipleValues = multiple
	if multiple {
		a.TakesValue = true
	}
	return a
}

// IsOption reports whether the arg is an option rather than a positional.
func (a *Arg) IsOption() bool {
	return a.ShortName != 0 || a.LongName != ""
}

// HasValidValues reports whether the arg restricts its values.
func (a *Arg) HasValidValues() bool {
	return len(a.ValidValues) > 0
}

// IsValidValue reports whether v is accepted by this arg. Args without a
// valid-values set accept everything.
func (a *Arg) IsValidValue(v string) bool {
	if !a.HasValidValues() {
		return true
	}
	for _, valid := range a.ValidValues {
		if v == valid {
			return true
		}
	}
	return false
}

// Placeholder returns the value name for help and documentation output:
// the explicit placeholder when set, the arg name otherwise.
func (a *Arg) Placeholder() string {
	if a.ValuePlaceholder != "" {
		return a.ValuePlaceholder
	}
	return a.Name
}
