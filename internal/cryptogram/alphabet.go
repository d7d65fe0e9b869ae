package cryptogram

import "sort"

// maxAlphabetSize bounds the letter-domain bitset to a uint32: plenty of
// room for the 26-letter English alphabet plus growth.
const maxAlphabetSize = 32

// Alphabet is an ordered set of lowercase letters. Index returns the
// bitset position a letter occupies, which lets letter domains be stored
// as uint32 bitsets (see letterdomain.go) instead of map[byte]struct{}.
type Alphabet struct {
	letters []byte
	index   map[byte]int
}

// DefaultAlphabet returns the 26-letter lowercase English alphabet.
func DefaultAlphabet() Alphabet {
	letters := make([]byte, 26)
	for i := range letters {
		letters[i] = byte('a' + i)
	}
	return NewAlphabet(letters)
}

// NewAlphabet builds an Alphabet from an arbitrary set of lowercase
// letters, deduplicating and sorting them for a deterministic index.
func NewAlphabet(letters []byte) Alphabet {
	seen := make(map[byte]bool, len(letters))
	unique := make([]byte, 0, len(letters))
	for _, l := range letters {
		if seen[l] {
			continue
		}
		seen[l] = true
		unique = append(unique, l)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	index := make(map[byte]int, len(unique))
	for i, l := range unique {
		index[l] = i
	}
	return Alphabet{letters: unique, index: index}
}

// Letters returns the alphabet's letters in sorted order.
func (a Alphabet) Letters() []byte {
	return append([]byte(nil), a.letters...)
}

// Len returns the number of letters in the alphabet.
func (a Alphabet) Len() int {
	return len(a.letters)
}

// Contains reports whether b is a member of the alphabet.
func (a Alphabet) Contains(b byte) bool {
	_, ok := a.index[b]
	return ok
}

// IndexOf returns the bitset position for letter b, or -1 if b is not in
// the alphabet.
func (a Alphabet) IndexOf(b byte) int {
	if idx, ok := a.index[b]; ok {
		return idx
	}
	return -1
}

// Full returns the bitset with every alphabet letter set.
func (a Alphabet) Full() uint32 {
	if len(a.letters) == 0 {
		return 0
	}
	return uint32(1)<<uint(len(a.letters)) - 1
}

// bit returns the single-bit mask for letter b, or 0 if b is not in the
// alphabet.
func (a Alphabet) bit(b byte) uint32 {
	idx := a.IndexOf(b)
	if idx < 0 {
		return 0
	}
	return 1 << uint(idx)
}

// letterAt returns the letter occupying bitset position idx.
func (a Alphabet) letterAt(idx int) byte {
	return a.letters[idx]
}

func isLowerASCII(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func toLowerASCII(b byte) byte {
	if isUpperASCII(b) {
		return b + ('a' - 'A')
	}
	return b
}

func toUpperASCII(b byte) byte {
	if isLowerASCII(b) {
		return b - ('a' - 'A')
	}
	return b
}
