package cryptogram

import "testing"

func TestPartitionSpansFixAndRemainder(test *testing.T) {
	order := []string{"xyyx", "ab"}
	wc := WordCandidates{
		"xyyx": {"deed", "noon", "peep"},
		"ab":   {"at"},
	}

	children := partition(order, wc)
	if len(children) != 2 {
		test.Fatalf("expected 2 children (1 fix + 1 remainder), got %d", len(children))
	}

	fixChild := children[0]
	if len(fixChild["xyyx"]) != 1 || fixChild["xyyx"][0] != "deed" {
		test.Errorf("expected first child to fix xyyx to its first candidate deed, got %v", fixChild["xyyx"])
	}
	if len(fixChild["ab"]) != 1 || fixChild["ab"][0] != "at" {
		test.Errorf("expected untouched word ab to be carried over unchanged, got %v", fixChild["ab"])
	}

	remainder := children[1]
	if len(remainder["xyyx"]) != 2 {
		test.Errorf("expected remainder to drop xyyx's first candidate, got %v", remainder["xyyx"])
	}
	for _, c := range remainder["xyyx"] {
		if c == "deed" {
			test.Errorf("expected remainder to have removed deed, got %v", remainder["xyyx"])
		}
	}
}

func TestPartitionMutationIsIsolated(test *testing.T) {
	order := []string{"xyyx"}
	wc := WordCandidates{"xyyx": {"deed", "noon"}}

	children := partition(order, wc)
	children[0]["xyyx"][0] = "mutated"

	if wc["xyyx"][0] != "deed" {
		test.Errorf("mutating a child must not affect the parent WC, got %v", wc["xyyx"])
	}
}

func TestPartitionNoopWhenNoMultiCandidateWord(test *testing.T) {
	order := []string{"ab"}
	wc := WordCandidates{"ab": {"at"}}

	if children := partition(order, wc); children != nil {
		test.Errorf("expected nil children when no word has multiple candidates, got %v", children)
	}
}
