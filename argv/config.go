package argv

import "log/slog"

// NameComparison selects how option and command names are matched.
type NameComparison int

const (
	// Ordinal matches names byte for byte.
	Ordinal NameComparison = iota
	// OrdinalIgnoreCase matches names case-insensitively. Under this mode a
	// token may match more than one registered definition, which surfaces as
	// an ambiguous-option parse error.
	OrdinalIgnoreCase
)

// ResponseFileMode controls @file argument expansion.
type ResponseFileMode int

const (
	ResponseFilesDisabled ResponseFileMode = iota
	ResponseFilesEnabled
)

// UnrecognizedMode controls what happens when a token matches neither a
// known option nor a command or positional slot.
type UnrecognizedMode int

const (
	// UnrecognizedFail aborts on the first unrecognized token.
	UnrecognizedFail UnrecognizedMode = iota
	// UnrecognizedCollect records unrecognized tokens and keeps parsing.
	UnrecognizedCollect
	// UnrecognizedStop stops interpreting at the first unrecognized token;
	// it and every remaining token are appended verbatim to the result.
	UnrecognizedStop
)

// ClusterMode is the tri-state clustering switch. The zero value defers to
// the model: clustering defaults on unless any option in the tree registers
// a short name longer than one character.
type ClusterMode int

const (
	ClusterDefault ClusterMode = iota
	ClusterOn
	ClusterOff
)

// Config is the parser policy object. It is validated once when the parser
// is built and must not be mutated while a parse is in flight.
type Config struct {
	// Clustering controls short-flag clustering (-abc == -a -b -c).
	Clustering ClusterMode

	// Separators are the characters accepted between an option name and its
	// inline value. A space entry enables consuming the following standalone
	// token as the value. The set must never be empty.
	Separators []rune

	// NameComparison selects ordinal or case-insensitive name matching.
	NameComparison NameComparison

	// ResponseFiles enables one-level @file expansion of the raw arguments.
	ResponseFiles ResponseFileMode

	// OnUnrecognized selects the unrecognized-argument policy.
	OnUnrecognized UnrecognizedMode

	// Suggestions enables did-you-mean candidates on unrecognized tokens.
	Suggestions bool

	// AllowArgumentSeparator makes a bare "--" force every subsequent token
	// positional.
	AllowArgumentSeparator bool

	// Logger receives debug traces of parser decisions. Nil disables tracing.
	Logger *slog.Logger
}

// DefaultConfig returns the default policy: clustering deferred to the
// model, space/colon/equals separators, ordinal comparison, response files
// off, fail on unrecognized tokens, suggestions on.
func DefaultConfig() *Config {
	return &Config{
		Clustering:     ClusterDefault,
		Separators:     []rune{' ', ':', '='},
		NameComparison: Ordinal,
		OnUnrecognized: UnrecognizedFail,
		Suggestions:    true,
	}
}

// validate checks the configuration against the command tree it will parse
// for. The separator set must be non-empty, and an explicit ClusterOn
// conflicts with any multi-character short name in the tree.
func (c *Config) validate(root *Command) error {
	if len(c.Separators) == 0 {
		return newParseError(ErrInvalidConfiguration, "separator set must not be empty")
	}
	if c.Clustering == ClusterOn {
		if opt := firstMultiCharShort(root); opt != nil {
			return newParseError(ErrInvalidConfiguration,
				"clustering cannot be enabled: option '"+opt.displayName()+"' has multi-character short name '"+opt.Short+"'")
		}
	}
	return nil
}

// clusteringEnabled resolves the tri-state switch against the tree. The
// default is re-evaluated here rather than captured at registration time,
// so the answer does not depend on registration order.
func (c *Config) clusteringEnabled(root *Command) bool {
	switch c.Clustering {
	case ClusterOn:
		return true
	case ClusterOff:
		return false
	default:
		return firstMultiCharShort(root) == nil
	}
}

// hasSeparator reports whether r is an accepted name/value separator.
func (c *Config) hasSeparator(r rune) bool {
	for _, s := range c.Separators {
		if s == r {
			return true
		}
	}
	return false
}

// spaceSeparated reports whether a following standalone token may serve as
// an option value.
func (c *Config) spaceSeparated() bool {
	return c.hasSeparator(' ')
}

// fold canonicalizes a name under the active comparison mode.
func (c *Config) fold(name string) string {
	if c.NameComparison == OrdinalIgnoreCase {
		return lowerASCII(name)
	}
	return name
}

// lowerASCII lowercases without the unicode tables; option and command
// names are ASCII in practice and byte folding keeps lookups cheap.
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for ; i < len(b); i++ {
				if b[i] >= 'A' && b[i] <= 'Z' {
					b[i] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// firstMultiCharShort finds any option in the tree whose short name is
// longer than one character. Used both for the clustering default and for
// explicit-on validation.
func firstMultiCharShort(cmd *Command) *Option {
	if cmd == nil {
		return nil
	}
	for _, opt := range cmd.options {
		if len(opt.Short) > 1 {
			return opt
		}
	}
	for _, child := range cmd.children {
		if opt := firstMultiCharShort(child); opt != nil {
			return opt
		}
	}
	return nil
}
