package parser

// Matches holds the parse result for one command level: which args were
// provided, their values, and the chosen subcommand when one was dispatched.
type Matches struct {
	name   string
	values map[string][]string
	sub    *Matches
}

func newMatches(name string) *Matches {
	return &Matches{
		name:   name,
		values: make(map[string][]string),
	}
}

// CommandName returns the name of the command these matches belong to.
func (m *Matches) CommandName() string {
	return m.name
}

// ContainsArg reports whether the named arg was provided, either on the
// command line or through a default.
func (m *Matches) ContainsArg(name string) bool {
	_, ok := m.values[name]
	return ok
}

// GetSingleValue returns the first value recorded for the named arg. ok is
// false when the arg is absent or carries no value (a bare flag).
func (m *Matches) GetSingleValue(name string) (string, bool) {
	vals, ok := m.values[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// GetMultiValues returns all values recorded for the named arg, nil when
// absent.
func (m *Matches) GetMultiValues(name string) []string {
	return m.values[name]
}

// Subcommand returns the dispatched subcommand's name and matches. ok is
// false when no subcommand was provided.
func (m *Matches) Subcommand() (string, *Matches, bool) {
	if m.sub == nil {
		return "", nil, false
	}
	return m.sub.name, m.sub, true
}

// SubcommandMatches returns the matches of the named subcommand, nil unless
// that subcommand was the one dispatched.
func (m *Matches) SubcommandMatches(name string) *Matches {
	if m.sub != nil && m.sub.name == name {
		return m.sub
	}
	return nil
}

func (m *Matches) setFlag(name string) {
	if _, ok := m.values[name]; !ok {
		m.values[name] = []string{}
	}
}

func (m *Matches) setValues(name string, vals []string) {
	m.values[name] = vals
}

func (m *Matches) appendValues(name string, vals ...string) {
	m.values[name] = append(m.values[name], vals...)
}
