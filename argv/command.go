package argv

// Command is a node in the command tree: a name, its options, its
// positional slots, and any child commands. The tree is built once before
// parsing and is never mutated by a parse; concurrent read-only parses may
// share it, but mutation requires exclusive access arranged by the caller.
type Command struct {
	name        string
	description string
	parent      *Command
	children    []*Command
	options     []*Option
	positionals []*Positional
}

// New creates the root of a command tree.
func New(name, description string) *Command {
	return &Command{name: name, description: description}
}

// Name returns the command's name.
func (c *Command) Name() string { return c.name }

// Description returns the command's one-line description.
func (c *Command) Description() string { return c.description }

// Parent returns the parent node, nil for the root. Ownership flows
// parent to children; this is a back-reference only.
func (c *Command) Parent() *Command { return c.parent }

// Children returns the child commands in declaration order.
func (c *Command) Children() []*Command { return c.children }

// Options returns the command's own option definitions in declaration
// order, not including inherited globals.
func (c *Command) Options() []*Option { return c.options }

// Positionals returns the declared positional slots in order.
func (c *Command) Positionals() []*Positional { return c.positionals }

// Command adds a child command and returns it for continued building.
func (c *Command) Command(name, description string) *Command {
	child := &Command{name: name, description: description, parent: c}
	c.children = append(c.children, child)
	return child
}

// Root walks up to the tree root.
func (c *Command) Root() *Command {
	n := c
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Path returns the command's full name from the root, space-joined.
func (c *Command) Path() string {
	if c.parent == nil {
		return c.name
	}
	return c.parent.Path() + " " + c.name
}

func (c *Command) addOption(opt *Option) *OptionBuilder {
	c.options = append(c.options, opt)
	return &OptionBuilder{opt: opt, cmd: c}
}

// validate checks the subtree rooted at c for construction-time errors:
// nameless options, duplicate long/short names within a command, duplicate
// child names, and misplaced trailing positionals. fold is the active
// name-comparison canonicalizer; exact duplicates are rejected here while
// case-only collisions under OrdinalIgnoreCase are left to surface as
// ambiguous-option errors at parse time.
func (c *Command) validate(fold func(string) string) error {
	longSeen := make(map[string]*Option, len(c.options))
	shortSeen := make(map[string]*Option, len(c.options))
	for _, opt := range c.options {
		if opt.Long == "" && opt.Short == "" {
			return newParseError(ErrInvalidConfiguration,
				"command '"+c.Path()+"' has an option with neither long nor short name")
		}
		if opt.Long != "" {
			if _, dup := longSeen[opt.Long]; dup {
				return newParseError(ErrInvalidConfiguration,
					"command '"+c.Path()+"' registers option '--"+opt.Long+"' twice")
			}
			longSeen[opt.Long] = opt
		}
		if opt.Short != "" {
			if _, dup := shortSeen[opt.Short]; dup {
				return newParseError(ErrInvalidConfiguration,
					"command '"+c.Path()+"' registers short option '-"+opt.Short+"' twice")
			}
			shortSeen[opt.Short] = opt
		}
	}

	trailing := -1
	for i, pos := range c.positionals {
		if pos.Name == "" {
			return newParseError(ErrInvalidConfiguration,
				"command '"+c.Path()+"' has an unnamed positional")
		}
		if pos.Arity == PositionalTrailing {
			if trailing != -1 {
				return newParseError(ErrInvalidConfiguration,
					"command '"+c.Path()+"' declares more than one trailing positional")
			}
			trailing = i
		}
	}
	if trailing != -1 && trailing != len(c.positionals)-1 {
		return newParseError(ErrInvalidConfiguration,
			"command '"+c.Path()+"': trailing positional '"+c.positionals[trailing].Name+"' must be declared last")
	}

	childSeen := make(map[string]struct{}, len(c.children))
	for _, child := range c.children {
		if child.name == "" {
			return newParseError(ErrInvalidConfiguration,
				"command '"+c.Path()+"' has an unnamed child command")
		}
		key := fold(child.name)
		if _, dup := childSeen[key]; dup {
			return newParseError(ErrInvalidConfiguration,
				"command '"+c.Path()+"' registers child command '"+child.name+"' twice")
		}
		childSeen[key] = struct{}{}
		if err := child.validate(fold); err != nil {
			return err
		}
	}
	return nil
}
