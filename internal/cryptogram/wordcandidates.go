package cryptogram

// WordCandidates (WC in spec.md §3) maps each distinct ciphertext word to
// the nonempty set of dictionary words sharing its pattern. The order of
// distinct ciphertext words a WC was built over is passed alongside it
// as a separate order slice rather than kept inside the map, since that order never
// changes across a search path -- only the candidate slices shrink.
type WordCandidates map[string][]string

// clone makes a shallow copy-on-branch: every candidate slice is copied
// so a child node can shrink its own copy without disturbing its parent
// or siblings still referencing the original slices.
func (wc WordCandidates) clone() WordCandidates {
	out := make(WordCandidates, len(wc))
	for word, candidates := range wc {
		cp := make([]string, len(candidates))
		copy(cp, candidates)
		out[word] = cp
	}
	return out
}

// buildInitialCandidates constructs WC0 from spec.md §4.2: for each
// distinct ciphertext word, fetch the dictionary words sharing its
// pattern. A word whose pattern is unknown to the dictionary gets an
// empty candidate slice.
func buildInitialCandidates(order []string, dict *Dictionary) WordCandidates {
	wc := make(WordCandidates, len(order))
	for _, word := range order {
		p := Pattern(word)
		candidates := dict.CandidatesForPattern(p)
		cp := make([]string, len(candidates))
		copy(cp, candidates)
		wc[word] = cp
	}
	return wc
}

// anyEmpty reports whether any word in order has zero candidates, which
// means no solution exists along this WC.
func (wc WordCandidates) anyEmpty(order []string) bool {
	for _, word := range order {
		if len(wc[word]) == 0 {
			return true
		}
	}
	return false
}

// multiCandidateWords returns, in order, the words from order that
// currently have more than one candidate.
func (wc WordCandidates) multiCandidateWords(order []string) []string {
	var multi []string
	for _, word := range order {
		if len(wc[word]) > 1 {
			multi = append(multi, word)
		}
	}
	return multi
}
