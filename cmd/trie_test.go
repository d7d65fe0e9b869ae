package cmd

import (
	"testing"
	"time"
)

func TestAdds(test *testing.T) {
	trie := newTrie()
	trie.addValueForString("HELLO", nil)

	hChild := trie.children['H'-ASCII_A]
	if hChild == nil {
		test.Errorf("H should have been present as a child but was not")
	}

	if hChild.children['E'-ASCII_A] == nil {
		test.Errorf("E should have been present within H but was not")
	}
}

type addRetrieveTest struct {
	input           string
	value           interface{}
	shouldBePresent bool
}

func TestAddingRetrieving(test *testing.T) {
	tests := []addRetrieveTest{
		{"THIRSTY", 123, true},
		{"THI", nil, true},
		{"THIS", nil, false},
	}
	for index, testCase := range tests {
		trie := newTrie()
		if testCase.shouldBePresent {
			trie.addValueForString(testCase.input, testCase.value)
		}

		value, stringWasPresent := trie.GetValueForString(testCase.input)
		if stringWasPresent != testCase.shouldBePresent {
			test.Errorf("Test case %d: expected %v for string's presence, got %v", index, testCase.shouldBePresent, stringWasPresent)
		}

		if value != testCase.value {
			test.Errorf("Test case %d: Expected value of %v but got %v", index, testCase.value, value)
		}
	}
}

func TestIterateWords(test *testing.T) {
	tests := map[string]int{
		"STRINGING": 123,
		"STRING":    456,
	}

	trie := newTrie()
	for testWord, testValue := range tests {
		trie.addValueForString(testWord, testValue)
	}

	words := make(chan TrieWord)
	timer := time.NewTimer(1 * time.Second)

	go trie.FeedWordsToChannel(words)
	for len(tests) > 0 {
		select {
		case foundTrieWord := <-words:
			testCount, wasPresent := tests[foundTrieWord.Word]
			if !wasPresent {
				test.Errorf("Channel put out a word that's not in test case: %s", foundTrieWord.Word)
			}

			if testCount != foundTrieWord.Value {
				test.Errorf("Expected count of %d for %s but got %d", testCount, foundTrieWord.Word, foundTrieWord.Value)
			}
			delete(tests, foundTrieWord.Word)
		case <-timer.C:
			if len(tests) != 0 {
				test.Errorf("Tests should be empty but had %d items in it", len(tests))
			}
			return
		}
	}
}
