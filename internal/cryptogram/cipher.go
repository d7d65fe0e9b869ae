package cryptogram

import "sort"

// CipherEntry is a single ciphertext-letter to plaintext-letter mapping,
// used to report a Cipher in the ascending ciphertext-letter order
// spec.md §4.6 requires.
type CipherEntry struct {
	Cipher string `json:"cipher"`
	Plain  string `json:"plain"`
}

// Cipher is a partial bijection from ciphertext letters to plaintext
// letters: no two ciphertext letters map to the same plaintext letter.
type Cipher map[byte]byte

// entries returns the mapping as ascending-ciphertext-letter CipherEntry
// values.
func (c Cipher) entries() []CipherEntry {
	keys := make([]byte, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	entries := make([]CipherEntry, len(keys))
	for i, k := range keys {
		entries[i] = CipherEntry{Cipher: string(k), Plain: string(c[k])}
	}
	return entries
}

// apply maps alphabet letters in text through the cipher, preserving the
// original casing of each letter and copying every other character
// verbatim. Letters without a mapping are left untouched (this never
// happens for a fully assembled solution, since every ciphertext letter
// appearing in the input is covered).
func (c Cipher) apply(text string, alphabet Alphabet) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		folded := toLowerASCII(b)
		if !alphabet.Contains(folded) {
			out[i] = b
			continue
		}
		plain, ok := c[folded]
		if !ok {
			out[i] = b
			continue
		}
		if isUpperASCII(b) {
			out[i] = toUpperASCII(plain)
		} else {
			out[i] = plain
		}
	}
	return string(out)
}
