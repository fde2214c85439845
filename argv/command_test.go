package argv

import (
	"errors"
	"testing"
)

func expectInvalidConfiguration(t *testing.T, root *Command) {
	t.Helper()
	_, err := NewParser(root, DefaultConfig())
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ErrInvalidConfiguration {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
}

func TestDuplicateLongOptionRejected(t *testing.T) {
	root := New("tool", "")
	root.Flag("verbose", "")
	root.Flag("verbose", "")
	expectInvalidConfiguration(t, root)
}

func TestDuplicateShortOptionRejected(t *testing.T) {
	root := New("tool", "")
	root.Flag("verbose", "").Short("v")
	root.Flag("version", "").Short("v")
	expectInvalidConfiguration(t, root)
}

func TestNamelessOptionRejected(t *testing.T) {
	root := New("tool", "")
	root.Option(&Option{Arity: AritySingle})
	expectInvalidConfiguration(t, root)
}

func TestDuplicateChildRejected(t *testing.T) {
	root := New("tool", "")
	root.Command("serve", "")
	root.Command("serve", "")
	expectInvalidConfiguration(t, root)
}

func TestCaseFoldedDuplicateChildRejected(t *testing.T) {
	root := New("tool", "")
	root.Command("serve", "")
	root.Command("Serve", "")

	cfg := DefaultConfig()
	cfg.NameComparison = OrdinalIgnoreCase
	_, err := NewParser(root, cfg)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ErrInvalidConfiguration {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
}

func TestTrailingPositionalMustBeLast(t *testing.T) {
	root := New("tool", "")
	root.Positional("files", "").Trailing()
	root.Positional("dest", "")
	expectInvalidConfiguration(t, root)
}

func TestMultipleTrailingPositionalsRejected(t *testing.T) {
	root := New("tool", "")
	root.Positional("a", "").Trailing()
	root.Positional("b", "").Trailing()
	expectInvalidConfiguration(t, root)
}

func TestSameNameAcrossLevelsAllowed(t *testing.T) {
	// Duplicate names are only a conflict within one command.
	root := New("tool", "")
	root.Flag("verbose", "")
	sub := root.Command("serve", "")
	sub.Flag("verbose", "")

	if _, err := NewParser(root, DefaultConfig()); err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
}

func TestPathAndRoot(t *testing.T) {
	root := New("git", "")
	remote := root.Command("remote", "")
	add := remote.Command("add", "")

	if got := add.Path(); got != "git remote add" {
		t.Errorf("expected path 'git remote add', got %q", got)
	}
	if add.Root() != root {
		t.Error("expected Root to return the tree root")
	}
	if add.Parent() != remote {
		t.Error("expected Parent to return the enclosing command")
	}
}
