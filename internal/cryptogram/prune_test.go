package cryptogram

import "testing"

func TestPruneRemovesInconsistentCandidates(test *testing.T) {
	alphabet := DefaultAlphabet()
	order := []string{"xyyx"}
	wc := WordCandidates{"xyyx": {"noon", "peep", "deed"}}

	lc := computeLetterDomains(order, wc, alphabet)
	// Narrow x's domain by hand to only allow n, simulating an external
	// constraint (as another word sharing the x letter would produce).
	lc['x'] = alphabet.bit('n')

	pruned, feasible := prune(order, wc, lc, alphabet)
	if !feasible {
		test.Fatalf("expected a feasible prune")
	}
	if got := pruned["xyyx"]; len(got) != 1 || got[0] != "noon" {
		test.Errorf("expected pruning to leave only noon, got %v", got)
	}
}

func TestPruneInfeasibleWhenCandidateSetEmpties(test *testing.T) {
	alphabet := DefaultAlphabet()
	order := []string{"xyyx"}
	wc := WordCandidates{"xyyx": {"noon"}}
	lc := LetterDomains{'x': alphabet.bit('z'), 'y': alphabet.Full()}

	_, feasible := prune(order, wc, lc, alphabet)
	if feasible {
		test.Errorf("expected infeasible prune when x's domain excludes noon's n")
	}
}

func TestPruneIsIdempotent(test *testing.T) {
	alphabet := DefaultAlphabet()
	order := []string{"xyyx"}
	wc := WordCandidates{"xyyx": {"noon", "peep", "deed"}}

	lc := computeLetterDomains(order, wc, alphabet)
	once, ok := prune(order, wc, lc, alphabet)
	if !ok {
		test.Fatalf("expected feasible prune")
	}

	lc2 := computeLetterDomains(order, once, alphabet)
	twice, ok := prune(order, once, lc2, alphabet)
	if !ok {
		test.Fatalf("expected feasible prune on second pass")
	}

	if len(once["xyyx"]) != len(twice["xyyx"]) {
		test.Errorf("prune(prune(wc)) changed candidate count: %v vs %v", once["xyyx"], twice["xyyx"])
	}
}
