package cryptogram

import "fmt"

// Solution is a single ranked candidate plaintext, per spec.md §3/§6.
type Solution struct {
	Plaintext     string
	Cipher        []CipherEntry
	MeanFrequency float64
}

// assemble implements spec.md §4.6: wc must have exactly one candidate
// per word. It zips each ciphertext word against its sole candidate to
// build the cipher, asserts injectivity, applies the cipher to the full
// ciphertext, and computes the mean dictionary frequency of the resulting
// plaintext's alphabet-only words.
func assemble(ciphertext string, order []string, wc WordCandidates, dict *Dictionary) (Solution, error) {
	cipher := make(Cipher)

	for _, word := range order {
		candidate := wc[word][0]
		if len(candidate) != len(word) {
			return Solution{}, fmt.Errorf("%w: candidate %q does not match length of ciphertext word %q", ErrInternalError, candidate, word)
		}
		for i := 0; i < len(word); i++ {
			cipherLetter, plainLetter := word[i], candidate[i]
			existing, ok := cipher[cipherLetter]
			if !ok {
				cipher[cipherLetter] = plainLetter
				continue
			}
			if existing != plainLetter {
				return Solution{}, fmt.Errorf("%w: %q maps to both %q and %q", ErrInternalError, string(cipherLetter), string(existing), string(plainLetter))
			}
		}
	}

	seenPlain := make(map[byte]byte, len(cipher))
	for cipherLetter, plainLetter := range cipher {
		if otherCipher, ok := seenPlain[plainLetter]; ok && otherCipher != cipherLetter {
			return Solution{}, fmt.Errorf("%w: cipher not injective, %q and %q both map to %q", ErrInternalError, string(otherCipher), string(cipherLetter), string(plainLetter))
		}
		seenPlain[plainLetter] = cipherLetter
	}

	alphabet := dict.Alphabet()
	plaintext := cipher.apply(ciphertext, alphabet)
	meanFreq := meanFrequency(plaintext, alphabet, dict)

	return Solution{
		Plaintext:     plaintext,
		Cipher:        cipher.entries(),
		MeanFrequency: meanFreq,
	}, nil
}

// meanFrequency implements the formula from spec.md §3: the mean of
// freq(w) over the alphabet-only words of plaintext, treating an absent
// word's frequency as 0. This sums per occurrence, so a repeated plaintext
// word (the cipher is a bijection, so a repeated ciphertext word always
// decodes to the same repeated plaintext word) contributes its frequency
// once per occurrence -- TokenizeOccurrences, not Tokenize, is required
// here.
func meanFrequency(plaintext string, alphabet Alphabet, dict *Dictionary) float64 {
	words := TokenizeOccurrences(plaintext, alphabet)
	if len(words) == 0 {
		return 0
	}
	var sum float64
	for _, w := range words {
		sum += dict.WordFrequency(w)
	}
	return sum / float64(len(words))
}
