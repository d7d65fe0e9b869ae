package cryptogram

// Tokenize implements the tokenizer contract from spec.md §6:
// parse_words(text, alphabet) -> set of words. It extracts maximal runs of
// alphabet characters (case-insensitive) as words, folds them to the
// alphabet's lowercase canonical form, and deduplicates them. The
// returned order is deterministic (first occurrence in text) so that
// candidate initialization and reporting are reproducible; the core
// search itself does not depend on this order for correctness.
//
// This dedup is specific to candidate initialization's ciphertext-word set
// (spec.md §4.2); callers that need every occurrence, repeats included
// (spec.md §3's mean_frequency formula), must use TokenizeOccurrences.
func Tokenize(text string, alphabet Alphabet) []string {
	occurrences := TokenizeOccurrences(text, alphabet)

	words := make([]string, 0, len(occurrences))
	seen := make(map[string]bool, len(occurrences))
	for _, w := range occurrences {
		if seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

// TokenizeOccurrences extracts the same maximal runs of alphabet characters
// as Tokenize, folded to lowercase, but keeps every occurrence instead of
// deduplicating. spec.md §3 defines mean_frequency as a sum over the
// alphabet-only words of the plaintext -- a repeated word contributes its
// frequency once per occurrence, not once total.
func TokenizeOccurrences(text string, alphabet Alphabet) []string {
	words := make([]string, 0, 8)
	word := make([]byte, 0, 16)

	flush := func() {
		if len(word) == 0 {
			return
		}
		words = append(words, string(word))
		word = word[:0]
	}

	for i := 0; i < len(text); i++ {
		b := text[i]
		folded := toLowerASCII(b)
		if alphabet.Contains(folded) {
			word = append(word, folded)
		} else {
			flush()
		}
	}
	flush()

	return words
}
