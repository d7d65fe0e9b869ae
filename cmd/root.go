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
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cryptogram-solver",
	Short: "A toolbox for cryptanalysis of cryptograms and related word puzzles",
	Long: `cryptogram-solver finds plaintext candidates for monoalphabetic
substitution ciphers using pattern matching and constraint propagation
against a dictionary, along with a handful of related puzzle tools
(Caesar shifts, transposals, letter banks, frequency analysis, and an
independent hill-climbing fallback).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cryptogram-solver.yaml)")
}

// initConfig reads in config file and ENV variables if set. Defaults set
// here back substitution solve's --max-solutions/--timeout flags so a user
// can pin their preferred budget once in $HOME/.cryptogram-solver.yaml
// instead of passing it on every invocation.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".cryptogram-solver")
	}

	viper.SetDefault("max-solutions", 10)
	viper.SetDefault("timeout", "0s")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// configuredMaxSolutions returns the effective max-solutions budget:
// an explicit flag value wins, otherwise viper's config/env/default.
func configuredMaxSolutions(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return viper.GetInt("max-solutions")
}

// configuredTimeout returns the effective timeout budget the same way.
func configuredTimeout(flagValue time.Duration) time.Duration {
	if flagValue > 0 {
		return flagValue
	}
	return viper.GetDuration("timeout")
}

// FeedDictionaryPaths reads through each of files (or stdin for "-"),
// pushing every line, folded to uppercase, to feed. The trie-backed
// tools (transposal, letterbank) key their nodes on uppercase ASCII, so
// this is the shared entry point they stream a dictionary file through.
func FeedDictionaryPaths(feed chan string, files ...string) {
	readers := make([]*bufio.Reader, 0, len(files))
	for _, file := range files {
		if file == "-" {
			readers = append(readers, bufio.NewReader(os.Stdin))
			continue
		}
		f, err := os.Open(file)
		if err != nil {
			fmt.Printf("Could not access file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		readers = append(readers, bufio.NewReader(f))
	}
	feedDictionaryReaders(feed, readers...)
}

// feedDictionaryReaders reads every line from readers and pushes it to
// feed, closing feed when every reader is exhausted. Separated out from
// FeedDictionaryPaths to make it testable without real files.
func feedDictionaryReaders(feed chan string, readers ...*bufio.Reader) {
	for _, reader := range readers {
		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			feed <- strings.ToUpper(strings.TrimSpace(scanner.Text()))
		}
	}
	close(feed)
}
