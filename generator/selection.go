package generator

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineRange selects lines Start..End of a document, 1-based and inclusive.
// A zero Start means the first line, a zero End means the last.
type LineRange struct {
	Start int
	End   int
}

// ParseLineRange accepts "A:B", "A:" and "A". An empty string selects
// everything.
func ParseLineRange(s string) (LineRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LineRange{}, nil
	}

	startStr, endStr, hasColon := strings.Cut(s, ":")
	start, err := parseLine(startStr)
	if err != nil {
		return LineRange{}, fmt.Errorf("invalid line range %q: %w", s, err)
	}
	if !hasColon {
		return LineRange{Start: start, End: start}, nil
	}

	var end int
	if endStr != "" {
		end, err = parseLine(endStr)
		if err != nil {
			return LineRange{}, fmt.Errorf("invalid line range %q: %w", s, err)
		}
		if start != 0 && end < start {
			return LineRange{}, fmt.Errorf("invalid line range %q: end before start", s)
		}
	}
	return LineRange{Start: start, End: end}, nil
}

func parseLine(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("line %d out of range", n)
	}
	return n, nil
}

// ReadSelection returns the lines of r covered by lr, clamped to the
// document.
func ReadSelection(r io.Reader, lr LineRange) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read selection: %w", err)
	}
	text := string(data)
	if lr == (LineRange{}) {
		return text, nil
	}

	lines := strings.Split(text, "\n")
	start := max(lr.Start, 1)
	end := lr.End
	if end == 0 || end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return "", nil
	}
	return strings.Join(lines[start-1:end], "\n"), nil
}
