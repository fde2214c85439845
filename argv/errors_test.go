package argv

import (
	"errors"
	"strings"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	err := newParseError(ErrUnrecognizedArgument, "unrecognized argument: --bogus")
	if err.Error() != "unrecognized argument: --bogus" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	err.Suggestions = []string{"--verbose", "--version"}
	msg := err.Error()
	if !strings.Contains(msg, "did you mean") {
		t.Errorf("expected did-you-mean clause, got %q", msg)
	}
	if !strings.Contains(msg, "'--verbose', '--version'") {
		t.Errorf("expected suggestions listed, got %q", msg)
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newParseError(ErrInvalidOptionValue, "bad value").withCause(cause)
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable via errors.Is")
	}
}

func TestBuildAppliesSteps(t *testing.T) {
	addDebug := func(root *Command, cfg *Config) (*Command, *Config, error) {
		root.Flag("debug", "enable debug output")
		return root, cfg, nil
	}
	collectUnrecognized := func(root *Command, cfg *Config) (*Command, *Config, error) {
		cfg.OnUnrecognized = UnrecognizedCollect
		return root, cfg, nil
	}

	p, err := Build(New("tool", ""), nil, addDebug, collectUnrecognized)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	res, err := p.Parse([]string{"--debug", "stray"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !res.Bool("debug") {
		t.Error("expected step-contributed option bound")
	}
	if len(res.Unrecognized) != 1 {
		t.Errorf("expected step-contributed policy active, got %v", res.Unrecognized)
	}
}

func TestBuildStepFailure(t *testing.T) {
	failing := func(root *Command, cfg *Config) (*Command, *Config, error) {
		return nil, nil, errors.New("bad step")
	}
	_, err := Build(New("tool", ""), nil, failing)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ErrInvalidConfiguration {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
}
