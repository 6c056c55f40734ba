package diagnostics

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileLocation is a 1-based line/column position. The zero line is used for
// locations that do not point into a source file (e.g. the prelude context).
type FileLocation struct {
	Filename string
	Line     int
	Col      int
}

func NewLocation(filename string, line, col int) FileLocation {
	return FileLocation{Filename: filename, Line: line, Col: col}
}

func (l FileLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Col)
}

// SourceInfo is one loaded source file: its full text and its lines.
type SourceInfo struct {
	Filename string
	Text     string
	lines    []string
}

// LoadSource reads filename, reporting failures against context (the
// location of whatever asked for the file).
func LoadSource(filename string, context FileLocation) (*SourceInfo, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, New(FileOpenFailure{Filename: filename, Err: err}, context)
	}
	defer f.Close()

	var sb strings.Builder
	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			sb.WriteString(line)
			lines = append(lines, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, New(FileReadFailure{Filename: filename, Line: len(lines), Err: err}, context)
		}
	}
	return &SourceInfo{Filename: filename, Text: sb.String(), lines: lines}, nil
}

// SourceFromString wraps in-memory text (REPL input, tests).
func SourceFromString(filename, text string) *SourceInfo {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &SourceInfo{Filename: filename, Text: text, lines: lines}
}

// Line returns line n (1-based) without its terminator.
func (s *SourceInfo) Line(n int) (string, bool) {
	if s == nil || n < 1 || n > len(s.lines) {
		return "", false
	}
	return strings.TrimRight(s.lines[n-1], "\r\n"), true
}

// LineCount is the number of lines in the source.
func (s *SourceInfo) LineCount() int {
	return len(s.lines)
}
