package bench

import (
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func discardLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

func TestParseLineValid(t *testing.T) {
	c, err := ParseLine(1, "11111122222234333334444455555567676776767 0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Key != "11111122222234333334444455555567676776767" || c.Expected != 0 {
		t.Errorf("got %+v", c)
	}
}

func TestParseLineNegativeScore(t *testing.T) {
	c, err := ParseLine(1, "1111112222223433333444445555556766 -2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Expected != -2 {
		t.Errorf("expected = %d, want -2", c.Expected)
	}
}

func TestParseLineWrongFieldCount(t *testing.T) {
	_, err := ParseLine(3, "1234567")
	var target InvalidBenchmarkLine
	if !asInvalidBenchmarkLine(err, &target) {
		t.Fatalf("expected InvalidBenchmarkLine, got %v (%T)", err, err)
	}
	if target.Line != 3 {
		t.Errorf("line = %d, want 3", target.Line)
	}
}

func asInvalidBenchmarkLine(err error, target *InvalidBenchmarkLine) bool {
	e, ok := err.(InvalidBenchmarkLine)
	if ok {
		*target = e
	}
	return ok
}

func TestParseLineBadScoreField(t *testing.T) {
	_, err := ParseLine(1, "123 notanumber")
	if _, ok := err.(InvalidScoreField); !ok {
		t.Fatalf("expected InvalidScoreField, got %v (%T)", err, err)
	}
}

func TestBuildPositionRejectsBadCharacter(t *testing.T) {
	_, err := BuildPosition(1, "12a3")
	if _, ok := err.(InvalidCharacter); !ok {
		t.Fatalf("expected InvalidCharacter, got %v (%T)", err, err)
	}
}

func TestBuildPositionRejectsFullColumn(t *testing.T) {
	_, err := BuildPosition(1, "1111111")
	if _, ok := err.(InvalidFullColumnMove); !ok {
		t.Fatalf("expected InvalidFullColumnMove, got %v (%T)", err, err)
	}
}

func TestBuildPositionRejectsWinningMove(t *testing.T) {
	_, err := BuildPosition(1, "1212121")
	if _, ok := err.(InvalidWinningMove); !ok {
		t.Fatalf("expected InvalidWinningMove, got %v (%T)", err, err)
	}
}

func TestBuildPositionValidKey(t *testing.T) {
	pos, err := BuildPosition(1, "112233")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.MovesPlayed() != 6 {
		t.Errorf("moves played = %d, want 6", pos.MovesPlayed())
	}
}

func TestRunScoresWellFormedLines(t *testing.T) {
	input := strings.Join([]string{
		"11111122222234333334444455555567676776767 0",
		"1111112222223433333444445555556767 3",
		"1111112222223433333444445555556766 -2",
	}, "\n")

	report := Run(discardLogger(), strings.NewReader(input), 0)

	if report.Total != 3 {
		t.Fatalf("total = %d, want 3", report.Total)
	}
	if report.Correct != 3 {
		t.Fatalf("correct = %d, want 3", report.Correct)
	}
}

func TestRunSkipsMalformedLinesWithoutFailing(t *testing.T) {
	input := strings.Join([]string{
		"not a valid line at all",
		"1111112222223433333444445555556767 3",
	}, "\n")

	report := Run(discardLogger(), strings.NewReader(input), 0)

	if report.Total != 1 {
		t.Fatalf("total = %d, want 1 (malformed line skipped)", report.Total)
	}
}

func TestRunFileReturnsZeroReportWhenFileIsMissing(t *testing.T) {
	report := RunFile(discardLogger(), "/nonexistent/path/to/benchmark.txt", 0)
	if report.Total != 0 {
		t.Errorf("total = %d, want 0 for a missing file", report.Total)
	}
}
