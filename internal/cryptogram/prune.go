package cryptogram

import "math/bits"

// prune implements spec.md §4.4: given wc and the LC derived from it,
// keep only candidates whose every letter lies inside that letter's
// current domain. Returns the pruned WC and false if any word's
// candidate set became empty, or if some domain is shared by more
// ciphertext letters than it has plaintext letters (a strict pigeonhole
// violation no injective cipher can satisfy).
func prune(order []string, wc WordCandidates, lc LetterDomains, alphabet Alphabet) (WordCandidates, bool) {
	sharers := make(map[uint32]int, len(lc))
	for _, domain := range lc {
		sharers[domain]++
	}
	for domain, n := range sharers {
		if bits.OnesCount32(domain) < n {
			return nil, false
		}
	}

	pruned := make(WordCandidates, len(wc))
	for _, word := range order {
		candidates := wc[word]
		kept := make([]string, 0, len(candidates))
		for _, candidate := range candidates {
			if candidateFitsDomains(word, candidate, lc, alphabet) {
				kept = append(kept, candidate)
			}
		}
		if len(kept) == 0 {
			return nil, false
		}
		pruned[word] = kept
	}
	return pruned, true
}

func candidateFitsDomains(word, candidate string, lc LetterDomains, alphabet Alphabet) bool {
	if len(candidate) != len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		domain := lc[word[i]]
		if domain&alphabet.bit(candidate[i]) == 0 {
			return false
		}
	}
	return true
}
