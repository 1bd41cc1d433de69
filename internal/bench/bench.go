// Package bench is the external test harness kept separate from the
// solver core: it loads benchmark files of `<key> <score>` lines,
// replays each key through the position engine, calls solver.Score,
// and reports aggregate statistics. None of this is reachable from
// solver.Score itself.
package bench

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"c4solver/internal/position"
	"c4solver/solver"
)

// Case is one benchmark line: a move-sequence key and its reference
// exact score.
type Case struct {
	Line     int
	Key      string
	Expected int8
}

// ParseLine decodes one `<key> <score>` benchmark line. lineNo is
// carried through only for error messages.
func ParseLine(lineNo int, raw string) (Case, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return Case{}, InvalidBenchmarkLine{Line: lineNo, Text: raw}
	}

	scoreVal, err := strconv.ParseInt(fields[1], 10, 8)
	if err != nil {
		return Case{}, InvalidScoreField{Line: lineNo, Field: fields[1]}
	}

	return Case{Line: lineNo, Key: fields[0], Expected: int8(scoreVal)}, nil
}

// BuildPosition replays key -- a string of 1-indexed column digits
// '1'..'7' -- through position.New and MakeMove, rejecting any digit
// that is out of range, plays a full column, or would already win the
// game (the solver only accepts non-terminal positions).
func BuildPosition(lineNo int, key string) (*position.Position, error) {
	pos := position.New()
	for i, r := range key {
		if r < '1' || r > '7' {
			return nil, InvalidCharacter{Line: lineNo, Character: r, Index: i}
		}
		col := int(r - '1')

		if !pos.IsLegalMove(col) {
			return nil, InvalidFullColumnMove{Line: lineNo, Column: col, Index: i}
		}
		if pos.IsWinningMove(col) {
			return nil, InvalidWinningMove{Line: lineNo, Column: col, Index: i}
		}
		pos.MakeMove(col)
	}
	return pos, nil
}

// Result is one scored benchmark case.
type Result struct {
	Case
	Predicted         int8
	PositionsSearched uint64
	Duration          time.Duration
}

// Report aggregates a benchmark run. The zero value (Total == 0) is
// the sentinel returned when the input could not be read at all.
type Report struct {
	Total                 int
	Correct               int
	MeanDuration          time.Duration
	MeanPositionsSearched uint64
	Results               []Result
}

// Run scores every well-formed line read from r, logging and skipping
// lines that fail to parse or that decode to an illegal or
// already-won position, and returns the aggregate Report. A
// non-positive ttCapacity uses solver.Score's built-in default.
func Run(logger zerolog.Logger, r io.Reader, ttCapacity int) Report {
	var (
		report         Report
		totalDuration  time.Duration
		totalPositions uint64
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}

		c, err := ParseLine(lineNo, raw)
		if err != nil {
			logger.Error().Err(err).Msg("skipping malformed benchmark line")
			continue
		}

		pos, err := BuildPosition(lineNo, c.Key)
		if err != nil {
			logger.Error().Err(err).Msg("skipping unplayable benchmark key")
			continue
		}

		start := time.Now()
		predicted, searched := solver.ScoreWithTableSize(pos, ttCapacity)
		elapsed := time.Since(start)

		report.Results = append(report.Results, Result{
			Case:              c,
			Predicted:         predicted,
			PositionsSearched: searched,
			Duration:          elapsed,
		})
		report.Total++
		totalDuration += elapsed
		totalPositions += searched

		if predicted == c.Expected {
			report.Correct++
		} else {
			logger.Warn().
				Int("line", lineNo).
				Str("key", c.Key).
				Int8("expected", c.Expected).
				Int8("predicted", predicted).
				Msg("benchmark mismatch")
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error().Err(err).Msg("error reading benchmark input")
	}

	if report.Total > 0 {
		report.MeanDuration = totalDuration / time.Duration(report.Total)
		report.MeanPositionsSearched = totalPositions / uint64(report.Total)
	}
	return report
}

// RunFile opens path and delegates to Run. A file that cannot be
// opened is logged and surfaced as the zero-valued Report rather than
// propagated to the caller.
func RunFile(logger zerolog.Logger, path string, ttCapacity int) Report {
	f, err := os.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to open benchmark file")
		return Report{}
	}
	defer f.Close()

	return Run(logger, f, ttCapacity)
}
