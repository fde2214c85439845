package argv

// Arity describes how many values an option consumes.
type Arity int

const (
	// ArityNone marks a presence-only flag; no value token is consumed.
	ArityNone Arity = iota
	// AritySingle consumes exactly one value per occurrence; repeating the
	// option replaces the previous value.
	AritySingle
	// ArityMultiple consumes one value per occurrence and accumulates them
	// across repeated occurrences of the option token.
	ArityMultiple
)

// ValueParser converts a raw argument string into a typed value. A non-nil
// error marks the raw string as rejected for the target shape and surfaces
// as an invalid-option-value parse error; the engine itself performs no
// semantic validation beyond this contract.
type ValueParser func(raw string) (any, error)

// Option describes a named option on a command. Long and Short are both
// optional but at least one must be set. Short names are usually a single
// character; longer short names are accepted but make the option ineligible
// for clustering (and force the clustering default off).
type Option struct {
	Long        string
	Short       string
	Description string
	Arity       Arity
	Required    bool
	Global      bool // visible from descendant commands
	Default     any
	Parser      ValueParser
}

// takesValue reports whether the option consumes a value token.
func (o *Option) takesValue() bool {
	return o.Arity != ArityNone
}

// displayName returns the option's user-facing spelling, preferring the
// long form.
func (o *Option) displayName() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return "-" + o.Short
}

// convert runs the raw value through the option's parser. Options without a
// parser bind the raw string unchanged.
func (o *Option) convert(raw string) (any, error) {
	if o.Parser == nil {
		return raw, nil
	}
	return o.Parser(raw)
}

// OptionBuilder configures a single option fluently and returns to its
// command via Done.
type OptionBuilder struct {
	opt *Option
	cmd *Command
}

// Short sets the short name. Single-character shorts participate in
// clustering; longer shorts are legal but disable the clustering default
// for the whole tree.
func (b *OptionBuilder) Short(short string) *OptionBuilder {
	b.opt.Short = short
	return b
}

// Required marks the option as mandatory; a finished parse without a
// binding for it fails.
func (b *OptionBuilder) Required() *OptionBuilder {
	b.opt.Required = true
	return b
}

// Global makes the option visible while any descendant command is active.
func (b *OptionBuilder) Global() *OptionBuilder {
	b.opt.Global = true
	return b
}

// Default sets the value bound when the option does not appear.
func (b *OptionBuilder) Default(value any) *OptionBuilder {
	b.opt.Default = value
	return b
}

// Parse replaces the option's value parser.
func (b *OptionBuilder) Parse(fn ValueParser) *OptionBuilder {
	b.opt.Parser = fn
	return b
}

// Done returns to the owning command for continued chaining.
func (b *OptionBuilder) Done() *Command {
	return b.cmd
}

// Typed option constructors. Each picks the arity and built-in parser for
// the shape; Parse can override the parser afterwards.

// Flag adds a presence-only option (arity none, bool shape).
func (c *Command) Flag(long, description string) *OptionBuilder {
	return c.addOption(&Option{
		Long:        long,
		Description: description,
		Arity:       ArityNone,
		Parser:      ParseBool,
	})
}

// StringOption adds a single-value string option.
func (c *Command) StringOption(long, description string) *OptionBuilder {
	return c.addOption(&Option{
		Long:        long,
		Description: description,
		Arity:       AritySingle,
	})
}

// IntOption adds a single-value integer option (decimal or 0x hex).
func (c *Command) IntOption(long, description string) *OptionBuilder {
	return c.addOption(&Option{
		Long:        long,
		Description: description,
		Arity:       AritySingle,
		Parser:      ParseInt,
	})
}

// FloatOption adds a single-value float64 option.
func (c *Command) FloatOption(long, description string) *OptionBuilder {
	return c.addOption(&Option{
		Long:        long,
		Description: description,
		Arity:       AritySingle,
		Parser:      ParseFloat,
	})
}

// DurationOption adds a single-value time.Duration option.
func (c *Command) DurationOption(long, description string) *OptionBuilder {
	return c.addOption(&Option{
		Long:        long,
		Description: description,
		Arity:       AritySingle,
		Parser:      ParseDuration,
	})
}

// StringsOption adds a repeatable string option; each occurrence consumes
// one value and values accumulate in order.
func (c *Command) StringsOption(long, description string) *OptionBuilder {
	return c.addOption(&Option{
		Long:        long,
		Description: description,
		Arity:       ArityMultiple,
	})
}

// IntsOption adds a repeatable integer option.
func (c *Command) IntsOption(long, description string) *OptionBuilder {
	return c.addOption(&Option{
		Long:        long,
		Description: description,
		Arity:       ArityMultiple,
		Parser:      ParseInt,
	})
}

// Option registers a fully specified option descriptor, for embedders that
// build their model programmatically rather than through the typed helpers.
func (c *Command) Option(opt *Option) *Command {
	c.addOption(opt)
	return c
}
