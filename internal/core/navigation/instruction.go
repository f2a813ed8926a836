package navigation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// Instruction is one parsed command line, e.g. "F10".
type Instruction struct {
	Action    Action
	Magnitude int
}

func (i Instruction) String() string {
	return i.Action.String() + strconv.Itoa(i.Magnitude)
}

// Instructions is an ordered, read-only command sequence.
type Instructions []Instruction

// Digest fingerprints the sequence. Equal sequences always have equal digests.
func (ins Instructions) Digest() uint64 {
	d := xxhash.New()
	for _, i := range ins {
		_, _ = d.WriteString(i.String())
		_, _ = d.WriteString("\n")
	}
	return d.Sum64()
}

// ParseOptions controls how lenient the parser is.
type ParseOptions struct {
	// LegacyFallback coerces unknown action letters to MoveNorth instead of
	// failing.
	LegacyFallback bool
}

// ParseLine parses a single command line: an action letter immediately
// followed by a non-negative base-10 magnitude.
func ParseLine(line string, opts ParseOptions) (Instruction, error) {
	if len(line) < 2 {
		return Instruction{}, &ParseError{Text: line, Err: ErrMalformedLine}
	}

	action, ok := ParseAction(line[0])
	if !ok && !opts.LegacyFallback {
		return Instruction{}, &ParseError{Text: line, Err: ErrUnknownAction}
	}

	magnitude, err := strconv.Atoi(line[1:])
	if err != nil {
		return Instruction{}, &ParseError{Text: line, Err: fmt.Errorf("%w: %w", ErrInvalidMagnitude, err)}
	}
	if magnitude < 0 {
		return Instruction{}, &ParseError{Text: line, Err: ErrNegativeMagnitude}
	}

	return Instruction{Action: action, Magnitude: magnitude}, nil
}

// Parse converts lines into instructions, stopping at the first bad line.
func Parse(lines []string, opts ParseOptions) (Instructions, error) {
	out := make(Instructions, 0, len(lines))
	for n, line := range lines {
		ins, err := ParseLine(line, opts)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = n + 1
			}
			return nil, err
		}
		out = append(out, ins)
	}
	return out, nil
}

// maxLineSize bounds a single input line; longer lines are malformed.
const maxLineSize = 1024 * 1024

// Read scans r line by line and parses the result.
func Read(r io.Reader, opts ParseOptions) (Instructions, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Line: len(lines) + 1, Err: fmt.Errorf("%w: %w", ErrMalformedLine, err)}
		}
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	return Parse(lines, opts)
}

// ReadFile parses the file at path. Files ending in ".zst" are decompressed
// on the fly.
func ReadFile(path string, opts ParseOptions) (Instructions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, ".zst") {
		return Read(f, opts)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer dec.Close()

	return Read(dec, opts)
}
