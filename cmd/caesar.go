package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liteblogging/cipher-solver/internal/cryptogram"
)

// CaesarShiftResult represents a single shifted string, including the shift
// amount. Score is the mean dictionary frequency of the shifted text's
// words (the same measure internal/cryptogram.Solution.MeanFrequency
// reports); it is left at 0 until RankCaesarShifts scores it against a
// dictionary.
type CaesarShiftResult struct {
	ShiftedText string
	Shift       int
	Score       float64
}

// String implements fmt.Stringer for CaesarShiftResult.
func (csr CaesarShiftResult) String() string {
	if csr.Score == 0 {
		return fmt.Sprintf("%d. %s", csr.Shift, csr.ShiftedText)
	}
	return fmt.Sprintf("%d. %s (score: %.4f)", csr.Shift, csr.ShiftedText, csr.Score)
}

// PerformCaesarShifts contains the core logic for generating all Caesar shifts.
func PerformCaesarShifts(inputText string) []CaesarShiftResult {
	var results []CaesarShiftResult

	for shift := 1; shift <= 25; shift++ {
		var shiftedString strings.Builder
		for _, curByte := range []byte(inputText) {
			shiftedString.WriteByte(ShiftByte(curByte, shift))
		}
		results = append(results, CaesarShiftResult{
			ShiftedText: shiftedString.String(),
			Shift:       shift,
		})
	}
	return results
}

// RankCaesarShifts scores every shift by the mean dictionary frequency of
// its words and sorts the best-scoring shift first. A Caesar shift is a
// 26-key special case of the general substitution cipher, so this reuses
// the same word-frequency measure internal/cryptogram.Solution reports
// instead of leaving the caller to eyeball all 25 rotations. dict may be
// nil, in which case results is returned unchanged.
func RankCaesarShifts(results []CaesarShiftResult, dict *cryptogram.Dictionary) []CaesarShiftResult {
	if dict == nil {
		return results
	}

	alphabet := dict.Alphabet()
	ranked := make([]CaesarShiftResult, len(results))
	copy(ranked, results)
	for i := range ranked {
		words := cryptogram.TokenizeOccurrences(ranked[i].ShiftedText, alphabet)
		if len(words) == 0 {
			continue
		}
		var sum float64
		for _, w := range words {
			sum += dict.WordFrequency(w)
		}
		ranked[i].Score = sum / float64(len(words))
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

// ShiftByte shifts a single byte by the given amount.
func ShiftByte(byteToShift byte, shiftAmount int) byte {
	var startByte byte
	var endByte byte
	if IsUppercaseAscii(byteToShift) {
		startByte = 'A'
		endByte = 'Z'
	} else if IsLowercaseAscii(byteToShift) {
		startByte = 'a'
		endByte = 'z'
	} else {
		return byteToShift
	}

	newByte := byteToShift + byte(shiftAmount)
	if newByte > endByte {
		newByte = startByte + (newByte - endByte - byte(1))
	}
	return newByte
}

// IsUppercaseAscii checks if a byte is an uppercase ASCII letter.
func IsUppercaseAscii(char byte) bool {
	return 'A' <= char && char <= 'Z'
}

// IsLowercaseAscii checks if a byte is a lowercase ASCII letter.
func IsLowercaseAscii(char byte) bool {
	return 'a' <= char && char <= 'z'
}

// caesarDictionaryFile optionally points at the same kind of dictionary
// file substitutionSolveCmd uses; when set, printCaesarShifts ranks the 25
// rotations by dictionary word frequency instead of printing them in raw
// shift order.
var caesarDictionaryFile string

// printCaesarShifts handles the cobra command for Caesar cipher.
func printCaesarShifts(command *cobra.Command, args []string) {
	fullString := strings.Join(args, " ")
	results := PerformCaesarShifts(fullString)

	if caesarDictionaryFile != "" {
		dict := loadSubstitutionDictionary(caesarDictionaryFile)
		results = RankCaesarShifts(results, dict)
	}

	// Convert results to fmt.Stringer slice for outputResponse
	var output []interface{}
	for _, res := range results {
		output = append(output, res)
	}
	outputResponse(output)
}
