package cryptogram

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Dictionary is the read-only, immutable collaborator described in
// spec.md §6. It is safe to share by reference across concurrent solves:
// nothing in this package ever mutates a Dictionary after construction.
type Dictionary struct {
	alphabet        Alphabet
	patternWords    map[string][]string
	wordFrequencies map[string]float64
}

// NewDictionary builds an empty dictionary over the given alphabet.
func NewDictionary(alphabet Alphabet) *Dictionary {
	return &Dictionary{
		alphabet:        alphabet,
		patternWords:    make(map[string][]string),
		wordFrequencies: make(map[string]float64),
	}
}

// Alphabet returns the dictionary's alphabet.
func (d *Dictionary) Alphabet() Alphabet {
	return d.alphabet
}

// WordFrequency returns the frequency recorded for word, or 0 if absent.
func (d *Dictionary) WordFrequency(word string) float64 {
	return d.wordFrequencies[strings.ToLower(word)]
}

// CandidatesForPattern returns the dictionary words sharing pattern p, in
// a stable lexicographic order. The returned slice must not be mutated by
// callers; make a copy before editing.
func (d *Dictionary) CandidatesForPattern(p string) []string {
	return d.patternWords[p]
}

// AddWord inserts word with the given frequency. word is folded to
// lowercase on insert, so a Dictionary can be populated from a mixed-case
// word list. A word already present has its frequency overwritten.
func (d *Dictionary) AddWord(word string, frequency float64) {
	if word == "" {
		return
	}
	word = strings.ToLower(word)
	for i := 0; i < len(word); i++ {
		if !d.alphabet.Contains(word[i]) {
			return
		}
	}

	if _, exists := d.wordFrequencies[word]; !exists {
		p := Pattern(word)
		list := d.patternWords[p]
		idx := sort.SearchStrings(list, word)
		list = append(list, "")
		copy(list[idx+1:], list[idx:])
		list[idx] = word
		d.patternWords[p] = list
	}
	d.wordFrequencies[word] = frequency
}

// LoadDictionary is the reference implementation of the dictionary file
// contract: one word per line, optionally followed by a tab and a
// nonnegative frequency ("word\tfrequency"). A bare word defaults to
// frequency 1. Blank lines are skipped. This is the concrete collaborator
// spec.md §6 treats as external; the core package only depends on the
// Dictionary struct above.
func LoadDictionary(r io.Reader, alphabet Alphabet) (*Dictionary, error) {
	dict := NewDictionary(alphabet)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, "\t", 2)
		word := fields[0]
		frequency := 1.0
		if len(fields) == 2 {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
			if err != nil {
				return nil, err
			}
			frequency = parsed
		}
		dict.AddWord(word, frequency)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dict, nil
}
