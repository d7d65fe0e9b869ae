//go:build http

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/liteblogging/cipher-solver/cmd"
	"github.com/liteblogging/cipher-solver/internal/cryptogram"
	"github.com/liteblogging/cipher-solver/mcp_server"
)

func main() {
	var dictionaryFile string
	var ngramFrequencyFile string
	var maxSolutions int
	var timeout time.Duration

	flag.StringVar(&dictionaryFile, "dictionary", "", "path to the dictionary file (required for transposal, letterbank, and substitution)")
	flag.StringVar(&ngramFrequencyFile, "ngram-frequency-file", "", "path to the ngram frequency file (required for hillclimb)")
	flag.IntVar(&maxSolutions, "max-solutions", 10, "default cap on substitution solutions per request")
	flag.DurationVar(&timeout, "timeout", 0, "default wall-clock budget for substitution solves (0 means unlimited)")
	flag.Parse()

	if dictionaryFile == "" {
		fmt.Println("Error: --dictionary flag is required for MCP server transposal, letterbank, and substitution services")
		os.Exit(1)
	}

	// Load the trie for transposal/letterbank.
	dictChannel := make(chan string)
	go func() {
		cmd.FeedDictionaryPaths(dictChannel, dictionaryFile)
	}()
	dictionary := cmd.ReadDictionaryToTrie(dictChannel)

	// Load the same word list into a pattern-indexed Dictionary for the
	// substitution solver.
	dictFile, err := os.Open(dictionaryFile)
	if err != nil {
		log.Fatalf("Error opening dictionary file: %v", err)
	}
	defer dictFile.Close()
	cryptogramDict, err := cryptogram.LoadDictionary(dictFile, cryptogram.DefaultAlphabet())
	if err != nil {
		log.Fatalf("Error parsing dictionary file: %v", err)
	}

	var ngramFrequencyMap map[string]float64
	var detectedNgramSize int

	if ngramFrequencyFile != "" {
		ngramReader, err := os.Open(ngramFrequencyFile)
		if err != nil {
			log.Fatalf("Error opening ngram frequency file: %v", err)
		}
		defer ngramReader.Close()
		ngramFrequencyMap, detectedNgramSize = cmd.PopulateFrequencyMapFromReader(ngramReader)
		if detectedNgramSize == 0 {
			log.Println("Warning: Could not determine ngram size from frequency file. Defaulting to 4 for services.")
		}
	} else {
		log.Println("Warning: --ngram-frequency-file not provided. The hillclimb service may not function correctly.")
	}

	caesarService := mcp_server.NewCaesarService(cryptogramDict)
	http.HandleFunc("/caesar/shift", mcp_server.HandleCaesarShift(caesarService))

	transposalService := mcp_server.NewTransposalService(dictionary)
	http.HandleFunc("/transposal/solve", mcp_server.HandleTransposalSolve(transposalService))

	letterBankService := mcp_server.NewLetterBankService(dictionary, cryptogramDict)
	http.HandleFunc("/letterbank/solve", mcp_server.HandleLetterBankSolve(letterBankService))

	substitutionService := mcp_server.NewSubstitutionService(cryptogramDict, maxSolutions, timeout)
	http.HandleFunc("/substitution/solve", mcp_server.HandleSubstitutionSolve(substitutionService))

	hillclimbService := mcp_server.NewHillclimbService(ngramFrequencyMap, detectedNgramSize)
	http.HandleFunc("/hillclimb/solve", mcp_server.HandleHillclimbSolve(hillclimbService))

	log.Println("Starting MCP server on :8080")
	err = http.ListenAndServe(":8080", nil)
	if err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
