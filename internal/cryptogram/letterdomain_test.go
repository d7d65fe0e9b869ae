package cryptogram

import "testing"

func TestComputeLetterDomainsArcConsistency(test *testing.T) {
	alphabet := DefaultAlphabet()
	order := []string{"xyyx"}
	wc := WordCandidates{"xyyx": {"noon", "peep", "deed"}}

	lc := computeLetterDomains(order, wc, alphabet)

	expect := func(letter byte, plain ...byte) {
		var want uint32
		for _, p := range plain {
			want |= alphabet.bit(p)
		}
		if lc[letter] != want {
			test.Errorf("LC(%c) = %026b, expected %026b", letter, lc[letter], want)
		}
	}

	expect('x', 'n', 'p', 'd')
	expect('y', 'o', 'e')
}

func TestPigeonholeClosureClaimsSharedDomain(test *testing.T) {
	alphabet := DefaultAlphabet()
	letters := []byte{'a', 'b', 'c', 'd'}
	lc := LetterDomains{
		'a': alphabet.bit('x') | alphabet.bit('y'),
		'b': alphabet.bit('x') | alphabet.bit('y'),
		'c': alphabet.bit('x') | alphabet.bit('y') | alphabet.bit('z'),
		'd': alphabet.Full(),
	}

	pigeonholeClosure(letters, lc)

	if lc['a'] != alphabet.bit('x')|alphabet.bit('y') {
		test.Errorf("expected a's domain unchanged, got %026b", lc['a'])
	}
	if lc['c']&(alphabet.bit('x')|alphabet.bit('y')) != 0 {
		test.Errorf("expected c to lose x and y to a/b's pigeonhole claim, got %026b", lc['c'])
	}
	if lc['d']&(alphabet.bit('x')|alphabet.bit('y')) != 0 {
		test.Errorf("expected d to lose x and y to a/b's pigeonhole claim, got %026b", lc['d'])
	}
}

func TestPigeonholeClosureStrictViolationStillStrips(test *testing.T) {
	// Three ciphertext letters sharing a two-element domain is a strict
	// Hall violation; spec.md §9 says the implementation still strips
	// those letters from everyone else and lets word-pruning reject the
	// resulting (always infeasible) WC.
	alphabet := DefaultAlphabet()
	letters := []byte{'a', 'b', 'c', 'd'}
	shared := alphabet.bit('x') | alphabet.bit('y')
	lc := LetterDomains{
		'a': shared,
		'b': shared,
		'c': shared,
		'd': alphabet.Full(),
	}

	pigeonholeClosure(letters, lc)

	if lc['d']&shared != 0 {
		test.Errorf("expected d to lose x and y even under a strict pigeonhole violation, got %026b", lc['d'])
	}
}
