package cryptogram

import (
	"strings"
	"testing"
)

func newTestDictionary(entries map[string]float64) *Dictionary {
	dict := NewDictionary(DefaultAlphabet())
	for word, freq := range entries {
		dict.AddWord(word, freq)
	}
	return dict
}

func TestAddWordIndexesByPattern(test *testing.T) {
	dict := newTestDictionary(map[string]float64{
		"noon": 10,
		"peep": 3,
		"deed": 1,
		"cat":  5,
	})

	got := dict.CandidatesForPattern(Pattern("noon"))
	if len(got) != 3 {
		test.Fatalf("expected 3 candidates sharing noon's pattern, got %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			test.Errorf("expected candidates sorted ascending, got %v", got)
		}
	}
}

func TestWordFrequencyIsCaseInsensitive(test *testing.T) {
	dict := newTestDictionary(map[string]float64{"hello": 7})
	if freq := dict.WordFrequency("HELLO"); freq != 7 {
		test.Errorf("expected frequency 7 for HELLO, got %v", freq)
	}
	if freq := dict.WordFrequency("missing"); freq != 0 {
		test.Errorf("expected frequency 0 for an absent word, got %v", freq)
	}
}

func TestLoadDictionaryParsesTabSeparatedFrequency(test *testing.T) {
	input := "hello\t5\nworld\t4\nbare\n"
	dict, err := LoadDictionary(strings.NewReader(input), DefaultAlphabet())
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if freq := dict.WordFrequency("hello"); freq != 5 {
		test.Errorf("expected hello frequency 5, got %v", freq)
	}
	if freq := dict.WordFrequency("bare"); freq != 1 {
		test.Errorf("expected bare's default frequency 1, got %v", freq)
	}
}
