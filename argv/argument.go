package argv

// PositionalArity describes how many tokens a positional slot consumes.
type PositionalArity int

const (
	// PositionalSingle binds exactly one token.
	PositionalSingle PositionalArity = iota
	// PositionalTrailing binds every remaining positional token. At most one
	// trailing positional may exist per command and it must be declared last.
	PositionalTrailing
)

// Positional describes a positional argument slot on a command. Slots bind
// tokens in declaration order.
type Positional struct {
	Name        string
	Description string
	Arity       PositionalArity
	Required    bool
	Parser      ValueParser
}

func (p *Positional) convert(raw string) (any, error) {
	if p.Parser == nil {
		return raw, nil
	}
	return p.Parser(raw)
}

// PositionalBuilder configures a positional slot fluently.
type PositionalBuilder struct {
	pos *Positional
	cmd *Command
}

// Required marks the slot as mandatory.
func (b *PositionalBuilder) Required() *PositionalBuilder {
	b.pos.Required = true
	return b
}

// Trailing makes the slot consume all remaining positional tokens. Only
// valid on the last declared slot; validation enforces placement.
func (b *PositionalBuilder) Trailing() *PositionalBuilder {
	b.pos.Arity = PositionalTrailing
	return b
}

// Parse sets the value parser applied to each bound token.
func (b *PositionalBuilder) Parse(fn ValueParser) *PositionalBuilder {
	b.pos.Parser = fn
	return b
}

// Done returns to the owning command.
func (b *PositionalBuilder) Done() *Command {
	return b.cmd
}

// Positional declares a positional argument slot on the command.
func (c *Command) Positional(name, description string) *PositionalBuilder {
	pos := &Positional{
		Name:        name,
		Description: description,
		Arity:       PositionalSingle,
	}
	c.positionals = append(c.positionals, pos)
	return &PositionalBuilder{pos: pos, cmd: c}
}
