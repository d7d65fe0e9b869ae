package cryptogram

import (
	"math/bits"
	"sort"
)

// LetterDomains (LC in spec.md §3/§4.3) maps each ciphertext letter to a
// bitset, over the dictionary alphabet, of plaintext letters it could
// still map to.
type LetterDomains map[byte]uint32

// cipherLetters returns the distinct ciphertext letters appearing across
// every word in order, sorted ascending -- the deterministic order
// spec.md §4.3 requires for the fixpoint iteration.
func cipherLetters(order []string) []byte {
	seen := make(map[byte]bool)
	var letters []byte
	for _, word := range order {
		for i := 0; i < len(word); i++ {
			if !seen[word[i]] {
				seen[word[i]] = true
				letters = append(letters, word[i])
			}
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// computeLetterDomains derives LC from wc per spec.md §4.3:
//  1. per-word letter constraints: allowed_w(l) is the union, over every
//     candidate word of w, of the candidate's letter at any position l
//     occupies in w (pattern guarantees every such position agrees).
//  2. intersection: LC(l) is the intersection of allowed_w(l) across
//     every word w containing l.
//  3. pigeonhole closure: iterate to a fixpoint, stripping claimed
//     letters from every domain that doesn't own them.
func computeLetterDomains(order []string, wc WordCandidates, alphabet Alphabet) LetterDomains {
	letters := cipherLetters(order)
	lc := make(LetterDomains, len(letters))
	for _, l := range letters {
		lc[l] = alphabet.Full()
	}

	for _, word := range order {
		candidates := wc[word]
		// allowed[i] accumulates the union of candidate letters seen at
		// position i of word.
		allowed := make([]uint32, len(word))
		for _, candidate := range candidates {
			if len(candidate) != len(word) {
				continue
			}
			for i := 0; i < len(word); i++ {
				allowed[i] |= alphabet.bit(candidate[i])
			}
		}
		for i := 0; i < len(word); i++ {
			lc[word[i]] &= allowed[i]
		}
	}

	pigeonholeClosure(letters, lc)
	return lc
}

// pigeonholeClosure implements spec.md §4.3 step 3-4: group ciphertext
// letters by identical current domain; if the domain's popcount is at
// most the number of letters sharing it (an exact Hall-condition match,
// or a strict violation that is itself a proof of infeasibility), those
// domain bits are claimed and stripped from every other letter's domain.
// Repeat until no domain changes, for at most len(letters)+1 iterations.
func pigeonholeClosure(letters []byte, lc LetterDomains) {
	if len(letters) == 0 {
		return
	}

	bound := len(letters) + 1
	for iteration := 0; iteration < bound; iteration++ {
		groups := make(map[uint32][]byte)
		for _, l := range letters {
			groups[lc[l]] = append(groups[lc[l]], l)
		}

		changed := false
		for domain, owners := range groups {
			if domain == 0 {
				continue
			}
			n := len(owners)
			if bits.OnesCount32(domain) > n {
				continue
			}
			isOwner := make(map[byte]bool, n)
			for _, o := range owners {
				isOwner[o] = true
			}
			for _, l := range letters {
				if isOwner[l] {
					continue
				}
				stripped := lc[l] &^ domain
				if stripped != lc[l] {
					lc[l] = stripped
					changed = true
				}
			}
		}

		if !changed {
			return
		}
	}
}
