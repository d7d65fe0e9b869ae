package cmd

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// dictionaryFile is shared by every subcommand that consumes a word list:
// substitution solve, transposal, and letterbank all populate it from the
// same --dictionary/-d flag.
var dictionaryFile string

// profile turns on coarse timing output while hillclimb reads its ngram
// frequency file.
var profile bool

// lettersRegex matches a single ASCII letter of either case; it is used to
// filter corpora and puzzle arguments down to the alphabet the trie and
// ngram scanners operate over (callers fold matches to uppercase).
var lettersRegex = regexp.MustCompile("^[A-Za-z]$")

// jsonOutput switches outputResponse's rendering from one-result-per-line
// text to an indented JSON array.
var jsonOutput bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "print coarse timing information for corpus-heavy commands")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit results as a JSON array instead of one per line")
}

// outputResponse renders a slice of results either as one-per-line text
// (the default) or as a JSON array when --json is set. The caesar,
// substitution solve, transposal, and letterbank commands funnel their
// output through here so they share one presentation layer; hillclimb
// prints its candidates directly.

func outputResponse(results []interface{}) {
	if jsonOutput {
		encoded, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			fmt.Printf("Could not encode results as JSON: %v\n", err)
			return
		}
		fmt.Println(string(encoded))
		return
	}

	for _, result := range results {
		fmt.Println(result)
	}
}
