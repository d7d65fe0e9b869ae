/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/liteblogging/cipher-solver/internal/cryptogram"
)

var substitutionCommand = regexp.MustCompile("[A-Z]=[a-z]")

// substitutionShell creates a loop which lets you interactively solve a substitution cipher.
// It will prompt for commands and show the current state of cipher text and plain text.
// Command reference:
//
//	A=z will replace A in ciphertext with a z in plaintext
func substitutionShell(cmd *cobra.Command, args []string) {
	cipherString := strings.ToUpper(strings.Join(args, " "))
	cipherToPlain := make(map[byte]byte)

	reader := bufio.NewReader(os.Stdin)

	for {
		plainString := ""
		for _, cipherByte := range []byte(cipherString) {
			if isUppercaseAscii(cipherByte) {
				plainByte, solved := cipherToPlain[cipherByte]
				if solved {
					plainString += string(plainByte)
				} else {
					plainString += "_"
				}
			} else {
				plainString += string(cipherByte)
			}
		}

		fmt.Println(cipherString)
		fmt.Println(plainString)

		fmt.Print("? ")
		command, _ := reader.ReadString('\n')
		commandAsBytes := []byte(command)

		if substitutionCommand.Match(commandAsBytes) {
			// 0 will be cipher character, 1 will be = and 2 will be plaintext
			cipherToPlain[commandAsBytes[0]] = commandAsBytes[2]
			continue
		}
	}
}

// substitutionSolve loads dictionaryFile into an internal/cryptogram.Dictionary
// and solves one or more cryptogram lines against it. If args are given,
// they're joined into a single line (matching the original CLI's
// word-at-a-time invocation); otherwise lines are read from stdin and
// solved concurrently, bounded by --concurrency, since each line's Solve
// call is independent of the others.
func substitutionSolve(cmd *cobra.Command, args []string) {
	dictionary := loadSubstitutionDictionary(dictionaryFile)

	if len(args) > 0 {
		printSolutions(strings.Join(args, " "), dictionary)
		return
	}

	lines := readLines(os.Stdin)
	semaphore := make(chan struct{}, concurrency)
	var waitGroup sync.WaitGroup
	var mutex sync.Mutex
	for _, line := range lines {
		waitGroup.Add(1)
		semaphore <- struct{}{}
		go func(line string) {
			defer waitGroup.Done()
			defer func() { <-semaphore }()
			solutions, err := cryptogram.Solve(line, dictionary, configuredMaxSolutions(maxSolutions), configuredTimeout(solveTimeout))
			mutex.Lock()
			defer mutex.Unlock()
			if err != nil {
				fmt.Printf("%s: error: %v\n", line, err)
				return
			}
			var output []interface{}
			for _, solution := range solutions {
				output = append(output, solution.Plaintext)
			}
			outputResponse(output)
		}(line)
	}
	waitGroup.Wait()
}

func loadSubstitutionDictionary(path string) *cryptogram.Dictionary {
	var reader *bufio.Reader
	if path == "-" {
		reader = bufio.NewReader(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			fmt.Printf("Could not access file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		reader = bufio.NewReader(file)
	}

	dictionary, err := cryptogram.LoadDictionary(reader, cryptogram.DefaultAlphabet())
	if err != nil {
		fmt.Printf("Error loading dictionary: %v\n", err)
		os.Exit(1)
	}
	return dictionary
}

func printSolutions(cipherText string, dictionary *cryptogram.Dictionary) {
	solutions, err := cryptogram.Solve(cipherText, dictionary, configuredMaxSolutions(maxSolutions), configuredTimeout(solveTimeout))
	if err != nil {
		fmt.Printf("%s: error: %v\n", cipherText, err)
		return
	}

	var output []interface{}
	for _, solution := range solutions {
		output = append(output, solution.Plaintext)
	}
	outputResponse(output)
}

func readLines(file *os.File) []string {
	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

var maxSolutions int
var solveTimeout time.Duration
