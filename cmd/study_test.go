package cmd

import (
	"bufio"
	"strings"
	"testing"

	"github.com/okanta/memloop/internal/atom"
	"github.com/okanta/memloop/internal/diagnosis"
)

func scan(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}

func TestReadResponse_TiredInput(t *testing.T) {
	a := &atom.Atom{Type: atom.TypeFlashcard, Prompt: "p", Answer: "a"}
	resp, action := readResponse(scan("tired\n"), a)
	if resp != nil || action != actionTired {
		t.Errorf("got (%v, %d), want (nil, actionTired)", resp, action)
	}
}

func TestPromptFatigue_ValidRating(t *testing.T) {
	v, ok := promptFatigue(scan("4\n"))
	if !ok {
		t.Fatal("rating 4 should be accepted")
	}
	if v != fatigueFromDrain(4) {
		t.Errorf("got %+v, want %+v", v, fatigueFromDrain(4))
	}
}

func TestPromptFatigue_RejectsBadInput(t *testing.T) {
	for _, input := range []string{"nah\n", "0\n", "6\n", ""} {
		if _, ok := promptFatigue(scan(input)); ok {
			t.Errorf("input %q should be rejected", strings.TrimSpace(input))
		}
	}
}

func TestFatigueFromDrain_ThresholdCrossing(t *testing.T) {
	// A low rating must not trip the break heuristic; a mid-to-high one
	// must push the vector norm past it.
	for _, level := range []int{1, 2} {
		if n := fatigueFromDrain(level).Norm(); n > diagnosis.FatigueNormThreshold {
			t.Errorf("drain %d norm %.2f should stay under %.2f", level, n, diagnosis.FatigueNormThreshold)
		}
	}
	for _, level := range []int{3, 4, 5} {
		if n := fatigueFromDrain(level).Norm(); n <= diagnosis.FatigueNormThreshold {
			t.Errorf("drain %d norm %.2f should exceed %.2f", level, n, diagnosis.FatigueNormThreshold)
		}
	}
}

func TestFatigueFromDrain_Clamps(t *testing.T) {
	if fatigueFromDrain(-3) != fatigueFromDrain(1) {
		t.Error("ratings below 1 should clamp to 1")
	}
	if fatigueFromDrain(9) != fatigueFromDrain(5) {
		t.Error("ratings above 5 should clamp to 5")
	}
}
