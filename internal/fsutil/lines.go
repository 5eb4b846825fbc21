package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single input line. Puzzle inputs stay far below it.
const maxLineSize = 1 << 20

// ReadLines opens the file at path and returns its lines without line
// terminators. Both "\n" and "\r\n" endings are accepted.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	lines, err := ScanLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return lines, nil
}

// ScanLines splits everything readable from r into lines.
func ScanLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
