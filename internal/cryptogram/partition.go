package cryptogram

// partition implements the branching step of spec.md §4.5. It is only
// called once wc is locally consistent and some word has more than one
// candidate. For every word with more than one candidate, it emits a
// child that fixes that word to its first candidate, leaving every other
// word untouched; a final "remainder" child has every such word's first
// candidate removed instead. The order of returned children is
// fix-word-1, fix-word-2, ..., fix-word-m, remainder -- the driver pushes
// them in reverse so the first multi-candidate word's first candidate is
// explored first, a left-most greedy dive.
func partition(order []string, wc WordCandidates) []WordCandidates {
	multi := wc.multiCandidateWords(order)
	if len(multi) == 0 {
		return nil
	}

	children := make([]WordCandidates, 0, len(multi)+1)
	for _, word := range multi {
		child := wc.clone()
		child[word] = []string{wc[word][0]}
		children = append(children, child)
	}

	remainder := wc.clone()
	for _, word := range multi {
		remainder[word] = remainder[word][1:]
	}
	children = append(children, remainder)

	return children
}
