package fuzzy

import "testing"

func TestSuggestRanksTransposition(t *testing.T) {
	got := Suggest("pshu", []string{"push", "pull", "fetch", "status"}, 2, 5)
	if len(got) == 0 || got[0] != "push" {
		t.Errorf("expected push first, got %v", got)
	}
	for _, s := range got {
		if s == "fetch" || s == "status" {
			t.Errorf("candidate %q is beyond the distance gate", s)
		}
	}
}

func TestSuggestDistanceGate(t *testing.T) {
	got := Suggest("verbsoe", []string{"verbose", "version", "help"}, 2, 5)
	if len(got) == 0 || got[0] != "verbose" {
		t.Errorf("expected verbose first, got %v", got)
	}
}

func TestSuggestSkipsExactMatch(t *testing.T) {
	got := Suggest("push", []string{"push", "pull"}, 2, 5)
	for _, s := range got {
		if s == "push" {
			t.Error("exact match must not be suggested")
		}
	}
}

func TestSuggestShortInput(t *testing.T) {
	if got := Suggest("p", []string{"push", "p2"}, 2, 5); got != nil {
		t.Errorf("one-character input must not suggest, got %v", got)
	}
}

func TestSuggestLimit(t *testing.T) {
	candidates := []string{"aab", "aac", "aad", "aae", "aaf", "aag", "aah"}
	got := Suggest("aaa", candidates, 2, 5)
	if len(got) != 5 {
		t.Errorf("expected 5 suggestions, got %d", len(got))
	}
}

func TestSuggestNothingClose(t *testing.T) {
	if got := Suggest("zzzzzz", []string{"push", "pull"}, 2, 5); got != nil {
		t.Errorf("expected no suggestions, got %v", got)
	}
}

func TestBest(t *testing.T) {
	if best := Best("comit", []string{"commit", "config"}, 2); best != "commit" {
		t.Errorf("expected commit, got %q", best)
	}
	if best := Best("unrelated", []string{"commit"}, 2); best != "" {
		t.Errorf("expected empty best, got %q", best)
	}
}

func TestRankReportsDistance(t *testing.T) {
	matches := Rank("pshu", []string{"push"}, 2)
	if len(matches) != 1 {
		t.Fatalf("expected one match, got %d", len(matches))
	}
	if matches[0].Distance != 2 {
		t.Errorf("expected distance 2, got %d", matches[0].Distance)
	}
	if matches[0].Score <= 0 {
		t.Errorf("expected positive similarity score, got %v", matches[0].Score)
	}
}
