package argv

// Step is one pure construction-time transformation over the model pair.
// Steps run in order, each receiving the previous step's output; none of
// them may run once parsing has begun.
type Step func(root *Command, cfg *Config) (*Command, *Config, error)

// Build applies the steps in order and hands the final pair to NewParser.
// It is the deterministic replacement for convention-style model plugins:
// every contribution to the tree or the configuration happens here, in a
// fixed sequence, before the first parse.
func Build(root *Command, cfg *Config, steps ...Step) (*Parser, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	for _, step := range steps {
		var err error
		root, cfg, err = step(root, cfg)
		if err != nil {
			return nil, newParseError(ErrInvalidConfiguration,
				"construction step failed: "+err.Error()).withCause(err)
		}
	}
	return NewParser(root, cfg)
}
