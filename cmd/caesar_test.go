package cmd

import (
	"testing"

	"github.com/liteblogging/cipher-solver/internal/cryptogram"
)

type shiftTest struct {
	start       byte
	shiftAmount int
	expected    byte
}

func TestShiftByte(test *testing.T) {
	tests := []shiftTest{
		shiftTest{'A', 1, 'B'},
		shiftTest{'Z', 2, 'B'},
		shiftTest{' ', 10, ' '},
		shiftTest{'y', 5, 'd'},
	}

	for _, curTest := range tests {
		shiftedByte := ShiftByte(curTest.start, curTest.shiftAmount)
		if shiftedByte != curTest.expected {
			test.Errorf("Expected %c from shiftByte(%c, %d) but got %c",
				curTest.expected, curTest.start, curTest.shiftAmount, shiftedByte)
		}
	}
}

func TestRankCaesarShiftsNilDictionaryReturnsInputUnchanged(test *testing.T) {
	results := PerformCaesarShifts("ifmmp")
	ranked := RankCaesarShifts(results, nil)

	if len(ranked) != len(results) {
		test.Fatalf("expected %d results, got %d", len(results), len(ranked))
	}
	for i := range results {
		if ranked[i] != results[i] {
			test.Errorf("position %d: expected unchanged result %+v, got %+v", i, results[i], ranked[i])
		}
	}
}

func TestRankCaesarShiftsSortsBestScoreFirst(test *testing.T) {
	dict := cryptogram.NewDictionary(cryptogram.DefaultAlphabet())
	dict.AddWord("hello", 10)

	// Shift 3 turns "ebiil" into "hello"; everything else scores 0.
	results := PerformCaesarShifts("ebiil")
	ranked := RankCaesarShifts(results, dict)

	if len(ranked) != len(results) {
		test.Fatalf("expected %d results, got %d", len(results), len(ranked))
	}
	if ranked[0].ShiftedText != "hello" {
		test.Errorf("expected the highest-scoring rotation first, got %q", ranked[0].ShiftedText)
	}
	if ranked[0].Score <= 0 {
		test.Errorf("expected a positive score for the matching rotation, got %v", ranked[0].Score)
	}
	for _, r := range ranked[1:] {
		if r.Score > ranked[0].Score {
			test.Errorf("expected %+v to score no higher than the leader %+v", r, ranked[0])
		}
	}
}
