package argv

import "time"

// optionBinding accumulates the values bound to one option during a parse.
// Raws keeps the exact argument text; Values holds the converted forms.
type optionBinding struct {
	raws     []string
	values   []any
	explicit bool // false when only a default was applied
}

// positionalBinding accumulates the tokens bound to one positional slot.
type positionalBinding struct {
	raws   []string
	values []any
}

// Result is the outcome of one Parse invocation: the resolved command, the
// option and positional bindings, and whatever the unrecognized-argument
// policy accumulated. A Result is built fresh per parse and shares no
// mutable state with other invocations.
type Result struct {
	// Command is the most deeply resolved command node.
	Command *Command

	// Positionals are the raw positional tokens in binding order.
	Positionals []string

	// Unrecognized holds the tokens the collect and stop policies set
	// aside, in encounter order.
	Unrecognized []string

	// Issues holds the non-fatal errors accumulated under the collect
	// policy, suggestions attached.
	Issues []*ParseError

	parser      *Parser
	options     map[*Option]*optionBinding
	positionals map[*Positional]*positionalBinding
}

func newResult(p *Parser, root *Command) *Result {
	return &Result{
		Command:     root,
		parser:      p,
		options:     make(map[*Option]*optionBinding),
		positionals: make(map[*Positional]*positionalBinding),
	}
}

func (r *Result) bindOption(opt *Option, raw string, value any) {
	b := r.options[opt]
	if b == nil || !b.explicit {
		b = &optionBinding{explicit: true}
		r.options[opt] = b
	}
	if opt.Arity == ArityMultiple {
		b.raws = append(b.raws, raw)
		b.values = append(b.values, value)
		return
	}
	// Single and presence options keep the last occurrence.
	b.raws = append(b.raws[:0], raw)
	b.values = append(b.values[:0], value)
}

func (r *Result) bindDefault(opt *Option, value any) {
	r.options[opt] = &optionBinding{values: []any{value}}
}

func (r *Result) bindPositional(def *Positional, raw string, value any) {
	b := r.positionals[def]
	if b == nil {
		b = &positionalBinding{}
		r.positionals[def] = b
	}
	b.raws = append(b.raws, raw)
	b.values = append(b.values, value)
	r.Positionals = append(r.Positionals, raw)
}

func (r *Result) optionSeen(opt *Option) bool {
	b := r.options[opt]
	return b != nil && b.explicit
}

func (r *Result) positionalCount(def *Positional) int {
	if b := r.positionals[def]; b != nil {
		return len(b.raws)
	}
	return 0
}

// option resolves a long or short name against the resolved command's
// visible scope. Ambiguous names resolve to nothing.
func (r *Result) option(name string) *Option {
	folded := r.parser.cfg.fold(name)
	defs := r.parser.lookupLong(r.Command, folded)
	if len(defs) == 0 {
		defs = r.parser.lookupShort(r.Command, folded)
	}
	if len(defs) != 1 {
		return nil
	}
	return defs[0]
}

// Seen reports whether the option appeared in the argument list.
// Default-only bindings do not count.
func (r *Result) Seen(name string) bool {
	opt := r.option(name)
	return opt != nil && r.optionSeen(opt)
}

// Value returns the converted value bound to the option. For multiple-arity
// options it returns the last value; Values returns them all.
func (r *Result) Value(name string) (any, bool) {
	opt := r.option(name)
	if opt == nil {
		return nil, false
	}
	b := r.options[opt]
	if b == nil || len(b.values) == 0 {
		return nil, false
	}
	return b.values[len(b.values)-1], true
}

// Values returns every converted value bound to the option, in order.
func (r *Result) Values(name string) []any {
	opt := r.option(name)
	if opt == nil {
		return nil
	}
	if b := r.options[opt]; b != nil {
		return b.values
	}
	return nil
}

// Raw returns the raw string values bound to the option, in order.
func (r *Result) Raw(name string) []string {
	opt := r.option(name)
	if opt == nil {
		return nil
	}
	if b := r.options[opt]; b != nil {
		return b.raws
	}
	return nil
}

// String returns the option's value as a string.
func (r *Result) String(name string) (string, bool) {
	v, ok := r.Value(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool reports whether a presence flag is set (or a bool option is true).
func (r *Result) Bool(name string) bool {
	v, ok := r.Value(name)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// Int returns the option's value as an int.
func (r *Result) Int(name string) (int, bool) {
	v, ok := r.Value(name)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// Float returns the option's value as a float64.
func (r *Result) Float(name string) (float64, bool) {
	v, ok := r.Value(name)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// Duration returns the option's value as a time.Duration.
func (r *Result) Duration(name string) (time.Duration, bool) {
	v, ok := r.Value(name)
	if !ok {
		return 0, false
	}
	d, ok := v.(time.Duration)
	return d, ok
}

// Strings returns the raw values of a repeatable string option.
func (r *Result) Strings(name string) []string {
	return r.Raw(name)
}

// Ints returns the converted values of a repeatable int option.
func (r *Result) Ints(name string) []int {
	values := r.Values(name)
	if len(values) == 0 {
		return nil
	}
	out := make([]int, 0, len(values))
	for _, v := range values {
		if n, ok := v.(int); ok {
			out = append(out, n)
		}
	}
	return out
}

// positionalByName finds a slot of the resolved command by name.
func (r *Result) positionalByName(name string) *Positional {
	folded := r.parser.cfg.fold(name)
	for _, def := range r.Command.positionals {
		if r.parser.cfg.fold(def.Name) == folded {
			return def
		}
	}
	return nil
}

// Arg returns the raw token bound to the named positional slot. For a
// trailing slot it returns the first token; Trailing returns them all.
func (r *Result) Arg(name string) (string, bool) {
	def := r.positionalByName(name)
	if def == nil {
		return "", false
	}
	b := r.positionals[def]
	if b == nil || len(b.raws) == 0 {
		return "", false
	}
	return b.raws[0], true
}

// ArgValue returns the converted value bound to the named positional slot.
func (r *Result) ArgValue(name string) (any, bool) {
	def := r.positionalByName(name)
	if def == nil {
		return nil, false
	}
	b := r.positionals[def]
	if b == nil || len(b.values) == 0 {
		return nil, false
	}
	return b.values[0], true
}

// Trailing returns every raw token bound to the named slot, which is how a
// trailing-multiple positional is read back.
func (r *Result) Trailing(name string) []string {
	def := r.positionalByName(name)
	if def == nil {
		return nil
	}
	if b := r.positionals[def]; b != nil {
		return b.raws
	}
	return nil
}
