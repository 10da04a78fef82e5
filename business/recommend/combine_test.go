package recommend

import (
	"math"
	"testing"
)

func TestCombineScoresWeights(t *testing.T) {
	cfg := DefaultConfig()

	content := map[string]*candidate{"a": {score: 10, reasons: []string{"content reason"}}}
	collaborative := map[string]*candidate{"a": {score: 20, reasons: []string{"collab reason"}}}
	category := map[string]*candidate{"a": {score: 4, reasons: []string{"category reason"}}}

	out := combineScores(cfg, content, collaborative, category, 5)

	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}

	want := 10*0.4 + 20*0.35 + 4*0.25
	if math.Abs(out[0].Score-want) > 1e-9 {
		t.Errorf("combined score = %f, want %f", out[0].Score, want)
	}
	if len(out[0].Reasons) != 3 {
		t.Errorf("expected 3 merged reasons, got %v", out[0].Reasons)
	}
}

func TestCombineScoresMissingEntriesScoreZero(t *testing.T) {
	cfg := DefaultConfig()

	out := combineScores(cfg,
		map[string]*candidate{"a": {score: 5, reasons: []string{"only content"}}},
		map[string]*candidate{},
		map[string]*candidate{},
		5,
	)

	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}
	if math.Abs(out[0].Score-2.0) > 1e-9 {
		t.Errorf("score = %f, want 5*0.4 = 2.0", out[0].Score)
	}
	if len(out[0].Reasons) != 1 {
		t.Errorf("missing scorers must contribute no reasons, got %v", out[0].Reasons)
	}
}

func TestCombineScoresReasonDedupAndCap(t *testing.T) {
	cfg := DefaultConfig()

	content := map[string]*candidate{"a": {score: 1, reasons: []string{"r1", "r2"}}}
	collaborative := map[string]*candidate{"a": {score: 1, reasons: []string{"r2", "r3"}}}
	category := map[string]*candidate{"a": {score: 1, reasons: []string{"r4"}}}

	out := combineScores(cfg, content, collaborative, category, 5)

	reasons := out[0].Reasons
	if len(reasons) != 3 {
		t.Fatalf("reasons must be capped at 3, got %v", reasons)
	}
	// first-seen order preserved
	if reasons[0] != "r1" || reasons[1] != "r2" || reasons[2] != "r3" {
		t.Errorf("unexpected reason order %v", reasons)
	}

	seen := make(map[string]bool)
	for _, r := range reasons {
		if seen[r] {
			t.Errorf("duplicate reason %q", r)
		}
		seen[r] = true
	}
}

func TestCombineScoresOrderingAndTruncation(t *testing.T) {
	cfg := DefaultConfig()

	content := map[string]*candidate{
		"low":  {score: 1},
		"high": {score: 100},
		"mid":  {score: 10},
	}

	out := combineScores(cfg, content, nil, nil, 2)

	if len(out) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(out))
	}
	if out[0].ProductID != "high" || out[1].ProductID != "mid" {
		t.Errorf("expected [high mid], got [%s %s]", out[0].ProductID, out[1].ProductID)
	}
	if out[0].Score < out[1].Score {
		t.Error("output must be sorted by score descending")
	}
}

func TestCombineScoresDeterministicTieBreak(t *testing.T) {
	cfg := DefaultConfig()

	content := map[string]*candidate{
		"zeta":  {score: 7},
		"alpha": {score: 7},
	}

	for i := 0; i < 10; i++ {
		out := combineScores(cfg, content, nil, nil, 5)
		if out[0].ProductID != "alpha" || out[1].ProductID != "zeta" {
			t.Fatalf("tie must break on product id: got [%s %s]", out[0].ProductID, out[1].ProductID)
		}
	}
}
