package cryptogram

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestSolveTrivialIdentity(test *testing.T) {
	dict := newTestDictionary(map[string]float64{"cat": 1, "dog": 1})

	solutions, err := Solve("cat", dict, 10, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if len(solutions) != 1 {
		test.Fatalf("expected exactly one solution, got %d: %v", len(solutions), solutions)
	}
	if solutions[0].Plaintext != "cat" {
		test.Errorf("expected plaintext cat, got %q", solutions[0].Plaintext)
	}

	want := map[string]string{"c": "c", "a": "a", "t": "t"}
	for _, entry := range solutions[0].Cipher {
		if want[entry.Cipher] != entry.Plain {
			test.Errorf("cipher entry %+v did not match expected identity mapping", entry)
		}
	}
}

func TestSolveSimpleShift(test *testing.T) {
	dict := newTestDictionary(map[string]float64{"hello": 5, "world": 4})

	solutions, err := Solve("ifmmp xpsme", dict, 10, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if len(solutions) != 1 {
		test.Fatalf("expected exactly one solution, got %d: %v", len(solutions), solutions)
	}
	if solutions[0].Plaintext != "hello world" {
		test.Errorf("expected plaintext %q, got %q", "hello world", solutions[0].Plaintext)
	}
}

func TestSolveMultipleSolutionsRankedByFrequency(test *testing.T) {
	dict := newTestDictionary(map[string]float64{"noon": 10, "peep": 3, "deed": 1})

	solutions, err := Solve("xyyx", dict, 10, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"noon", "peep", "deed"}
	if len(solutions) != len(wantOrder) {
		test.Fatalf("expected %d solutions, got %d: %v", len(wantOrder), len(solutions), solutions)
	}
	for i, want := range wantOrder {
		if solutions[i].Plaintext != want {
			test.Errorf("position %d: expected %q, got %q", i, want, solutions[i].Plaintext)
		}
	}
}

func TestSolveNonAlphabetCharactersPreserved(test *testing.T) {
	dict := newTestDictionary(map[string]float64{"hello": 5, "world": 4})

	solutions, err := Solve("ifmmp, xpsme!", dict, 10, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if len(solutions) != 1 {
		test.Fatalf("expected exactly one solution, got %d: %v", len(solutions), solutions)
	}
	if want := "hello, world!"; solutions[0].Plaintext != want {
		test.Errorf("expected plaintext %q, got %q", want, solutions[0].Plaintext)
	}
}

func TestSolveArcConsistencyInfeasibleTerminates(test *testing.T) {
	// "abc" and "cab" share the same three-distinct-letter pattern but
	// place their common letters at different positions. Against a
	// dictionary of "dog" and "cat", the two words' allowed sets for the
	// shared letter 'a' are disjoint ({d,c} vs {o,a}), so letter-domain
	// propagation empties LC(a) before any branching is needed.
	dict := newTestDictionary(map[string]float64{"dog": 1, "cat": 1})

	solutions, err := Solve("abc cab", dict, 10, time.Second)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if len(solutions) != 0 {
		test.Errorf("expected no solutions once arc consistency empties a letter domain, got %v", solutions)
	}
}

func TestSolveTimeoutReturnsPartialResultsWithoutHanging(test *testing.T) {
	dict := NewDictionary(DefaultAlphabet())
	// A single ciphertext word with a deliberately huge fan-out of same
	// pattern candidates drives heavy branching.
	letters := "abcdefghijklmnopqrstuvwxyz"
	for i := 0; i < len(letters); i++ {
		word := string(letters[i]) + string(letters[(i+1)%len(letters)])
		dict.AddWord(word, 1)
	}

	done := make(chan struct{})
	var err error
	go func() {
		_, err = Solve("qz", dict, 1000000, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
		if err != nil {
			test.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		test.Fatal("Solve did not respect its timeout")
	}
}

func TestSolveInvalidInput(test *testing.T) {
	dict := newTestDictionary(map[string]float64{"cat": 1})

	if _, err := Solve("cat", dict, 0, 0); !errors.Is(err, ErrInvalidInput) {
		test.Errorf("expected ErrInvalidInput for max_solutions=0, got %v", err)
	}

	if _, err := Solve("1234", dict, 10, 0); !errors.Is(err, ErrInvalidInput) {
		test.Errorf("expected ErrInvalidInput for a ciphertext with no alphabet words, got %v", err)
	}
}

func TestSolveEmptyDictionaryReturnsNoSolutions(test *testing.T) {
	dict := NewDictionary(DefaultAlphabet())

	solutions, err := Solve("cat", dict, 10, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if len(solutions) != 0 {
		test.Errorf("expected no solutions against an empty dictionary, got %v", solutions)
	}
}

func TestSolveDeterministicAcrossRepeatedCalls(test *testing.T) {
	dict := newTestDictionary(map[string]float64{"noon": 10, "peep": 3, "deed": 1, "toot": 2})

	first, err := Solve("xyyx", dict, 10, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	second, err := Solve("xyyx", dict, 10, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		test.Fatalf("expected deterministic solution counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Plaintext != second[i].Plaintext {
			test.Errorf("position %d differed across calls: %q vs %q", i, first[i].Plaintext, second[i].Plaintext)
		}
	}
}

func TestSolveMeanFrequencyCountsRepeatedWordsPerOccurrence(test *testing.T) {
	// "ab" repeats, "cd" does not; both share the two-distinct-letter
	// pattern, so each can independently decode to "on" (freq 10) or "am"
	// (freq 0). Whichever word "ab" decodes to is counted twice because it
	// occurs twice in the ciphertext -- mean_frequency must reflect that,
	// not divide by the two distinct words.
	dict := NewDictionary(DefaultAlphabet())
	dict.AddWord("on", 10)
	dict.AddWord("am", 0)

	solutions, err := Solve("ab ab cd", dict, 10, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if len(solutions) == 0 {
		test.Fatalf("expected at least one solution")
	}

	for _, solution := range solutions {
		words := strings.Fields(solution.Plaintext)
		if len(words) != 3 {
			test.Fatalf("expected 3 plaintext words, got %v", words)
		}
		var sum float64
		for _, w := range words {
			sum += dict.WordFrequency(w)
		}
		want := sum / float64(len(words))
		if math.Abs(solution.MeanFrequency-want) > 1e-9 {
			test.Errorf("expected mean frequency %v counting every occurrence of %q, got %v", want, solution.Plaintext, solution.MeanFrequency)
		}
	}
}

func TestSolveMonotonicityOfMaxSolutions(test *testing.T) {
	dict := newTestDictionary(map[string]float64{"noon": 10, "peep": 3, "deed": 1})

	small, err := Solve("xyyx", dict, 1, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	large, err := Solve("xyyx", dict, 10, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}

	if len(small) > len(large) {
		test.Errorf("increasing max_solutions should never reduce the result count: %d vs %d", len(small), len(large))
	}
}
