package cryptogram

import (
	"fmt"
	"sort"
	"time"
)

// Solve implements the sole public operation of spec.md §6:
//
//	solve(ciphertext, dictionary, max_solutions, timeout) -> ranked solutions
//
// It is CPU-bound, single-threaded per call, and performs no I/O. The
// dictionary is read-only and may be shared by reference across
// concurrent calls to Solve; all other state is owned exclusively by the
// calling goroutine. timeout <= 0 means no deadline.
func Solve(ciphertext string, dict *Dictionary, maxSolutions int, timeout time.Duration) ([]Solution, error) {
	if maxSolutions <= 0 {
		return nil, fmt.Errorf("%w: max_solutions must be positive, got %d", ErrInvalidInput, maxSolutions)
	}

	alphabet := dict.Alphabet()
	order := Tokenize(ciphertext, alphabet)
	if len(order) == 0 {
		return nil, fmt.Errorf("%w: ciphertext contains no alphabet words", ErrInvalidInput)
	}

	wc0 := buildInitialCandidates(order, dict)
	if wc0.anyEmpty(order) {
		return []Solution{}, nil
	}

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	stack := []WordCandidates{wc0}
	solutions := make([]Solution, 0, maxSolutions)
	seenPlaintext := make(map[string]bool)

	for len(stack) > 0 && len(solutions) < maxSolutions {
		if pastDeadline(deadline) {
			break
		}

		wc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lc := computeLetterDomains(order, wc, alphabet)
		prunedWC, feasible := prune(order, wc, lc, alphabet)
		if !feasible {
			continue
		}

		if multi := prunedWC.multiCandidateWords(order); len(multi) > 0 {
			if pastDeadline(deadline) {
				break
			}
			children := partition(order, prunedWC)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
			continue
		}

		solution, err := assemble(ciphertext, order, prunedWC, dict)
		if err != nil {
			return nil, err
		}
		if seenPlaintext[solution.Plaintext] {
			continue
		}
		seenPlaintext[solution.Plaintext] = true
		solutions = append(solutions, solution)
	}

	sort.SliceStable(solutions, func(i, j int) bool {
		return solutions[i].MeanFrequency > solutions[j].MeanFrequency
	})

	return solutions, nil
}

func pastDeadline(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}
