package argv

import (
	"errors"
	"testing"
)

func TestEmptySeparatorsRejected(t *testing.T) {
	root := New("tool", "")
	cfg := DefaultConfig()
	cfg.Separators = nil

	_, err := NewParser(root, cfg)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ErrInvalidConfiguration {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
}

func TestClusteringDefaultOffWithMultiCharShort(t *testing.T) {
	root := New("tool", "")
	root.Option(&Option{Short: "a", Arity: ArityNone, Parser: ParseBool})
	root.Option(&Option{Short: "b", Arity: ArityNone, Parser: ParseBool})
	root.Option(&Option{Short: "ab", Arity: ArityNone, Parser: ParseBool})

	p, err := NewParser(root, DefaultConfig())
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	res, err := p.Parse([]string{"-ab"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// With clustering suppressed, -ab is the multi-character short, not
	// the pair -a -b.
	if !res.Bool("ab") {
		t.Error("expected -ab bound as one option")
	}
	if res.Bool("a") || res.Bool("b") {
		t.Error("expected -a and -b untouched")
	}
}

func TestClusteringDefaultOnWithoutMultiCharShort(t *testing.T) {
	p, err := NewParser(clusterTree(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	res, err := p.Parse([]string{"-abc"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !res.Bool("a") || !res.Bool("b") || !res.Bool("c") {
		t.Error("expected flags bound via clustering")
	}
}

func TestExplicitClusterOnConflictsWithMultiCharShort(t *testing.T) {
	root := New("tool", "")
	root.Option(&Option{Short: "ab", Arity: ArityNone, Parser: ParseBool})

	cfg := DefaultConfig()
	cfg.Clustering = ClusterOn
	_, err := NewParser(root, cfg)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ErrInvalidConfiguration {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
}

func TestExplicitClusterOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Clustering = ClusterOff
	cfg.OnUnrecognized = UnrecognizedCollect
	p, err := NewParser(clusterTree(), cfg)
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	res, err := p.Parse([]string{"-abc"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Bool("a") {
		t.Error("clustering disabled; -abc must not bind -a")
	}
	if len(res.Unrecognized) != 1 || res.Unrecognized[0] != "-abc" {
		t.Errorf("expected [-abc] unrecognized, got %v", res.Unrecognized)
	}
}

func TestFoldModes(t *testing.T) {
	ordinal := DefaultConfig()
	if ordinal.fold("MiXeD") != "MiXeD" {
		t.Error("ordinal fold must be identity")
	}

	insensitive := DefaultConfig()
	insensitive.NameComparison = OrdinalIgnoreCase
	if insensitive.fold("MiXeD") != "mixed" {
		t.Errorf("expected lowercase fold, got %q", insensitive.fold("MiXeD"))
	}
	if insensitive.fold("already-lower") != "already-lower" {
		t.Error("lowercase input must fold to itself")
	}
}

func TestNilConfigUsesDefaults(t *testing.T) {
	p, err := NewParser(clusterTree(), nil)
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	if !p.Config().Suggestions {
		t.Error("expected default configuration with suggestions enabled")
	}
}
