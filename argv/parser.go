package argv

import (
	"log/slog"

	"github.com/cliware/argv/internal/fuzzy"
	"github.com/cliware/argv/internal/intern"
	"github.com/cliware/argv/internal/pool"
)

const (
	maxSuggestions     = 5
	suggestionDistance = 2
)

// scope holds one command's lookup tables, keyed by folded name. A folded
// key may map to several options under case-insensitive comparison; hitting
// such a key at parse time is an ambiguous-option error.
type scope struct {
	long     map[string][]*Option
	short    map[string][]*Option
	children map[string]*Command
}

// Parser resolves raw argument lists against one command tree and one
// configuration. Both are read-only after construction, so a single Parser
// may serve concurrent Parse calls as long as no caller mutates the tree
// or configuration underneath it.
type Parser struct {
	root       *Command
	cfg        *Config
	scopes     map[*Command]*scope
	clustering bool
	names      *intern.Interner
}

// NewParser validates the configuration and the tree, builds the lookup
// index, and returns a ready parser. Validation failures carry the
// invalid-configuration kind and happen here, never mid-parse.
func NewParser(root *Command, cfg *Config) (*Parser, error) {
	if root == nil {
		return nil, newParseError(ErrInvalidConfiguration, "command tree must not be nil")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(root); err != nil {
		return nil, err
	}
	if err := root.validate(cfg.fold); err != nil {
		return nil, err
	}

	p := &Parser{
		root:       root,
		cfg:        cfg,
		scopes:     make(map[*Command]*scope),
		clustering: cfg.clusteringEnabled(root),
		names:      intern.NewInterner(64),
	}
	p.index(root)
	return p, nil
}

// Root returns the tree the parser resolves against.
func (p *Parser) Root() *Command { return p.root }

// Config returns the active configuration.
func (p *Parser) Config() *Config { return p.cfg }

func (p *Parser) index(cmd *Command) {
	s := &scope{
		long:     make(map[string][]*Option, len(cmd.options)),
		short:    make(map[string][]*Option, len(cmd.options)),
		children: make(map[string]*Command, len(cmd.children)),
	}
	for _, opt := range cmd.options {
		if opt.Long != "" {
			key := p.names.Intern(p.cfg.fold(opt.Long))
			s.long[key] = append(s.long[key], opt)
		}
		if opt.Short != "" {
			key := p.names.Intern(p.cfg.fold(opt.Short))
			s.short[key] = append(s.short[key], opt)
		}
	}
	for _, child := range cmd.children {
		s.children[p.names.Intern(p.cfg.fold(child.name))] = child
		p.index(child)
	}
	p.scopes[cmd] = s
}

// lookupLong resolves a folded long name against the active command and its
// ancestors. The active command's own options match first; ancestor options
// match only when marked Global, and a hit at a nearer level shadows
// farther ones.
func (p *Parser) lookupLong(cmd *Command, name string) []*Option {
	return p.lookup(cmd, name, func(s *scope) map[string][]*Option { return s.long })
}

// lookupShort resolves a folded short name with the same visibility rules.
func (p *Parser) lookupShort(cmd *Command, name string) []*Option {
	return p.lookup(cmd, name, func(s *scope) map[string][]*Option { return s.short })
}

func (p *Parser) lookup(cmd *Command, name string, table func(*scope) map[string][]*Option) []*Option {
	for level := cmd; level != nil; level = level.parent {
		defs := table(p.scopes[level])[name]
		if level != cmd {
			defs = globalOnly(defs)
		}
		if len(defs) > 0 {
			return defs
		}
	}
	return nil
}

func globalOnly(defs []*Option) []*Option {
	var out []*Option
	for _, opt := range defs {
		if opt.Global {
			out = append(out, opt)
		}
	}
	return out
}

// scratch is the pooled per-parse working set. Results are never pooled;
// only this transient buffer space is reused across invocations.
type scratch struct {
	cluster    []pendingBinding
	candidates []candidate
	bare       []string
}

type pendingBinding struct {
	opt *Option
	raw string
}

type candidate struct {
	bare    string
	display string
}

var scratchPool = pool.NewWithReset(
	func() *scratch {
		return &scratch{
			cluster:    make([]pendingBinding, 0, 8),
			candidates: make([]candidate, 0, 32),
			bare:       make([]string, 0, 32),
		}
	},
	func(s *scratch) {
		s.cluster = s.cluster[:0]
		s.candidates = s.candidates[:0]
		s.bare = s.bare[:0]
	},
)

// parseRun is the state of one Parse invocation. Everything here is scoped
// to the single call; nothing survives into the next parse.
type parseRun struct {
	p        *Parser
	cfg      *Config
	args     []string
	pos      int
	cmd      *Command
	res      *Result
	forced   bool // past a bare "--": every token is positional
	stopped  bool // stop-parsing policy triggered
	posIndex int  // next positional slot of the active command
	scratch  *scratch
}

// Parse processes one argument list to completion and returns a fresh
// Result. It is synchronous and does no blocking IO beyond the optional
// response-file reads up front.
func (p *Parser) Parse(args []string) (*Result, error) {
	if p.cfg.ResponseFiles == ResponseFilesEnabled {
		var err error
		args, err = expandResponseFiles(args)
		if err != nil {
			return nil, err
		}
	}

	run := &parseRun{
		p:       p,
		cfg:     p.cfg,
		args:    args,
		cmd:     p.root,
		res:     newResult(p, p.root),
		scratch: scratchPool.Get(),
	}
	defer scratchPool.Put(run.scratch)

	for run.pos < len(args) && !run.stopped {
		arg := args[run.pos]
		if len(arg) == 0 {
			run.pos++
			continue
		}
		if err := run.step(arg); err != nil {
			return nil, err
		}
		run.pos++
	}

	if err := run.finalize(); err != nil {
		return nil, err
	}
	return run.res, nil
}

// step classifies and handles one token.
func (run *parseRun) step(arg string) error {
	if run.forced {
		return run.positional(arg)
	}
	if arg == "--" {
		if run.cfg.AllowArgumentSeparator {
			run.trace("argument separator", slog.Int("pos", run.pos))
			run.forced = true
			return nil
		}
		return run.unrecognized(arg)
	}
	switch {
	case len(arg) > 2 && arg[0] == '-' && arg[1] == '-':
		return run.longOption(arg)
	case len(arg) > 1 && arg[0] == '-':
		return run.shortToken(arg)
	default:
		return run.positional(arg)
	}
}

// longOption handles --name, --name<sep>value and --name value forms.
func (run *parseRun) longOption(arg string) error {
	body := arg[2:]
	name, value, hasValue := run.splitSeparator(body)

	defs := run.p.lookupLong(run.cmd, run.cfg.fold(name))
	switch {
	case len(defs) == 0:
		return run.unrecognized(arg)
	case len(defs) > 1:
		return run.ambiguous(arg, defs)
	}
	opt := defs[0]

	if !opt.takesValue() {
		if hasValue {
			return run.bindOption(opt, value, arg)
		}
		return run.bindOption(opt, "true", arg)
	}
	if hasValue {
		return run.bindOption(opt, value, arg)
	}
	return run.bindFromNextToken(opt, arg)
}

// shortToken handles -x, -x<sep>value, -xvalue and clustered -xyz forms,
// in that precedence: clustering first, then the single-option
// interpretations, finally the unrecognized policy.
func (run *parseRun) shortToken(arg string) error {
	body := arg[1:]

	if run.p.clustering && len(body) >= 2 {
		handled, err := run.tryCluster(body)
		if handled || err != nil {
			return err
		}
	}

	// Whole body as one short name.
	if defs := run.p.lookupShort(run.cmd, run.cfg.fold(body)); len(defs) > 0 {
		if len(defs) > 1 {
			return run.ambiguous(arg, defs)
		}
		opt := defs[0]
		if !opt.takesValue() {
			return run.bindOption(opt, "true", arg)
		}
		return run.bindFromNextToken(opt, arg)
	}

	// Separator-split form: -x=value, -x:value.
	if name, value, hasValue := run.splitSeparator(body); hasValue {
		defs := run.p.lookupShort(run.cmd, run.cfg.fold(name))
		if len(defs) > 1 {
			return run.ambiguous(arg, defs)
		}
		if len(defs) == 1 {
			return run.bindOption(defs[0], value, arg)
		}
	}

	// Attached-value form: the longest registered short name that prefixes
	// the body and takes a value consumes the remaining suffix.
	if opt, value := run.attachedValue(body); opt != nil {
		return run.bindOption(opt, value, arg)
	}

	return run.unrecognized(arg)
}

// tryCluster resolves a clustered short token. All characters before the
// first value-taking option must be presence flags; the value-taker
// consumes the remaining suffix (or the next token). The cluster applies
// all-or-nothing: any unmatched character rejects it so the fallback
// interpretations get their turn.
func (run *parseRun) tryCluster(body string) (bool, error) {
	s := run.scratch
	s.cluster = s.cluster[:0]

	for i := 0; i < len(body); i++ {
		name := intern.Char(body[i])
		defs := run.p.lookupShort(run.cmd, run.cfg.fold(name))
		if len(defs) != 1 {
			return false, nil
		}
		opt := defs[0]
		if !opt.takesValue() {
			s.cluster = append(s.cluster, pendingBinding{opt: opt, raw: "true"})
			continue
		}

		suffix := body[i+1:]
		if suffix == "" {
			// Value comes from the next token; commit the cluster first.
			if err := run.applyCluster(); err != nil {
				return true, err
			}
			return true, run.bindFromNextToken(opt, "-"+body)
		}
		if run.cfg.hasSeparator(rune(suffix[0])) && suffix[0] != ' ' && len(suffix) > 1 {
			suffix = suffix[1:]
		}
		s.cluster = append(s.cluster, pendingBinding{opt: opt, raw: suffix})
		if err := run.applyCluster(); err != nil {
			return true, err
		}
		return true, nil
	}

	return true, run.applyCluster()
}

func (run *parseRun) applyCluster() error {
	for _, pb := range run.scratch.cluster {
		if err := run.bindOption(pb.opt, pb.raw, pb.opt.displayName()); err != nil {
			return err
		}
	}
	return nil
}

// attachedValue finds the longest short name prefixing body whose option
// takes a value; the rest of the body, minus one optional separator
// character, is the value.
func (run *parseRun) attachedValue(body string) (*Option, string) {
	var best *Option
	bestLen := 0
	for level := run.cmd; level != nil; level = level.parent {
		for _, opt := range level.options {
			if level != run.cmd && !opt.Global {
				continue
			}
			if opt.Short == "" || !opt.takesValue() || len(opt.Short) >= len(body) {
				continue
			}
			if run.cfg.fold(body[:len(opt.Short)]) != run.cfg.fold(opt.Short) {
				continue
			}
			if len(opt.Short) > bestLen {
				best = opt
				bestLen = len(opt.Short)
			}
		}
	}
	if best == nil {
		return nil, ""
	}
	value := body[bestLen:]
	if len(value) > 1 && run.cfg.hasSeparator(rune(value[0])) && value[0] != ' ' {
		value = value[1:]
	}
	return best, value
}

// bindFromNextToken consumes the following token as the option's value.
// That form is only available when space is a registered separator.
func (run *parseRun) bindFromNextToken(opt *Option, token string) error {
	if !run.cfg.spaceSeparated() || run.pos+1 >= len(run.args) {
		return newParseError(ErrMissingOptionValue,
			"option '"+opt.displayName()+"' requires a value").
			withToken(token).withCommand(run.cmd)
	}
	run.pos++
	return run.bindOption(opt, run.args[run.pos], token)
}

// bindOption converts and records one option value. Rejections from the
// value parser are fatal in every unrecognized-argument mode.
func (run *parseRun) bindOption(opt *Option, raw, token string) error {
	value, err := opt.convert(raw)
	if err != nil {
		return newParseError(ErrInvalidOptionValue,
			"invalid value '"+raw+"' for option '"+opt.displayName()+"': "+err.Error()).
			withToken(token).withCommand(run.cmd).withCause(err)
	}
	run.trace("bind option", slog.String("option", opt.displayName()), slog.String("raw", raw))
	run.res.bindOption(opt, raw, value)
	return nil
}

// positional handles a token with no option shape: subcommand descent
// first, then the declared positional slots, finally the unrecognized
// policy. Tokens forced positional by "--" skip descent.
func (run *parseRun) positional(token string) error {
	if !run.forced {
		if child, ok := run.p.scopes[run.cmd].children[run.cfg.fold(token)]; ok {
			run.trace("descend", slog.String("command", child.Path()))
			run.cmd = child
			run.res.Command = child
			run.posIndex = 0
			return nil
		}
	}

	defs := run.cmd.positionals
	if run.posIndex < len(defs) {
		def := defs[run.posIndex]
		value, err := def.convert(token)
		if err != nil {
			return newParseError(ErrInvalidOptionValue,
				"invalid value '"+token+"' for argument '"+def.Name+"': "+err.Error()).
				withToken(token).withCommand(run.cmd).withCause(err)
		}
		run.trace("bind positional", slog.String("arg", def.Name), slog.String("raw", token))
		run.res.bindPositional(def, token, value)
		if def.Arity != PositionalTrailing {
			run.posIndex++
		}
		return nil
	}

	return run.unrecognized(token)
}

// unrecognized applies the configured policy to a token that matched
// nothing.
func (run *parseRun) unrecognized(token string) error {
	switch run.cfg.OnUnrecognized {
	case UnrecognizedCollect:
		run.trace("collect unrecognized", slog.String("token", token))
		run.res.Unrecognized = append(run.res.Unrecognized, token)
		run.res.Issues = append(run.res.Issues, run.unrecognizedError(token))
		return nil
	case UnrecognizedStop:
		run.trace("stop parsing", slog.String("token", token))
		run.res.Unrecognized = append(run.res.Unrecognized, run.args[run.pos:]...)
		run.stopped = true
		return nil
	default:
		return run.unrecognizedError(token)
	}
}

func (run *parseRun) unrecognizedError(token string) *ParseError {
	perr := newParseError(ErrUnrecognizedArgument, "unrecognized argument: "+token).
		withToken(token).withCommand(run.cmd)
	if run.cfg.Suggestions {
		perr.Suggestions = run.suggestions(token)
	}
	return perr
}

// ambiguous reports a token matching several definitions under the active
// comparison mode.
func (run *parseRun) ambiguous(token string, defs []*Option) error {
	msg := "ambiguous option: " + token + " matches"
	for _, opt := range defs {
		msg += " '" + opt.displayName() + "'"
	}
	return newParseError(ErrAmbiguousOption, msg).withToken(token).withCommand(run.cmd)
}

// suggestions ranks every option and command name visible from the active
// command against the offending token, dashes stripped for scoring.
func (run *parseRun) suggestions(token string) []string {
	s := run.scratch
	s.candidates = s.candidates[:0]
	s.bare = s.bare[:0]

	optionLike := len(token) > 0 && token[0] == '-'
	input := token
	for len(input) > 0 && input[0] == '-' {
		input = input[1:]
	}

	for level := run.cmd; level != nil; level = level.parent {
		for _, opt := range level.options {
			if level != run.cmd && !opt.Global {
				continue
			}
			if opt.Long != "" {
				s.candidates = append(s.candidates, candidate{bare: opt.Long, display: "--" + opt.Long})
			}
			if opt.Short != "" {
				s.candidates = append(s.candidates, candidate{bare: opt.Short, display: "-" + opt.Short})
			}
		}
	}
	if !optionLike {
		for _, child := range run.cmd.children {
			s.candidates = append(s.candidates, candidate{bare: child.name, display: child.name})
		}
	}

	display := make(map[string]string, len(s.candidates))
	for _, c := range s.candidates {
		if _, taken := display[c.bare]; taken {
			continue
		}
		display[c.bare] = c.display
		s.bare = append(s.bare, c.bare)
	}

	ranked := fuzzy.Suggest(input, s.bare, suggestionDistance, maxSuggestions)
	out := make([]string, 0, len(ranked))
	for _, name := range ranked {
		out = append(out, display[name])
	}
	return out
}

// splitSeparator splits an option body at the first non-space separator
// character.
func (run *parseRun) splitSeparator(body string) (name, value string, hasValue bool) {
	for i, r := range body {
		if r != ' ' && run.cfg.hasSeparator(r) {
			return body[:i], body[i+1:], true
		}
	}
	return body, "", false
}

// finalize applies defaults and checks required options and positionals
// against the resolved command.
func (run *parseRun) finalize() error {
	for level := run.cmd; level != nil; level = level.parent {
		for _, opt := range level.options {
			if level != run.cmd && !opt.Global {
				continue
			}
			if run.res.optionSeen(opt) {
				continue
			}
			if opt.Required {
				return newParseError(ErrMissingRequiredOption,
					"missing required option '"+opt.displayName()+"'").withCommand(run.cmd)
			}
			if opt.Default != nil {
				run.res.bindDefault(opt, opt.Default)
			}
		}
	}

	for _, def := range run.cmd.positionals {
		if !def.Required {
			continue
		}
		if run.res.positionalCount(def) == 0 {
			return newParseError(ErrMissingRequiredPositional,
				"missing required argument '"+def.Name+"'").withCommand(run.cmd)
		}
	}
	return nil
}

func (run *parseRun) trace(msg string, attrs ...slog.Attr) {
	if run.cfg.Logger == nil {
		return
	}
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	run.cfg.Logger.Debug(msg, args...)
}
