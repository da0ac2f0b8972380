package input

import (
	"io"
	"regexp"
	"strings"
)

// Parser extracts card names from an input stream. Each implementation
// handles one notation; ParserFor picks the right one from the content.
type Parser interface {
	ParseCards(r io.Reader) ([]string, error)
}

// PlainParser reads one raw card name per line.
type PlainParser struct{}

func (PlainParser) ParseCards(r io.Reader) ([]string, error) {
	return readLines(r)
}

// setNotation matches lines like "Card Name (ZNR)" or "Card Name (ZNR) 123",
// capturing the bare card name.
var setNotation = regexp.MustCompile(`^(.*\S)\s+\(([0-9A-Za-z]{3,5})\)(?:\s+(\S+))?$`)

// SetNotationParser reads lines in set notation and extracts the bare card
// name. Lines that do not match the notation are kept as-is.
type SetNotationParser struct{}

func (SetNotationParser) ParseCards(r io.Reader) ([]string, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if m := setNotation.FindStringSubmatch(line); m != nil {
			names = append(names, m[1])
			continue
		}
		names = append(names, line)
	}
	return names, nil
}

// ParserFor sniffs file content and selects the parser matching its
// notation: set notation wins when the majority of non-blank lines carry a
// parenthesized set code.
func ParserFor(content []byte) Parser {
	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return PlainParser{}
	}
	matched := 0
	for _, line := range lines {
		if setNotation.MatchString(line) {
			matched++
		}
	}
	if matched*2 > len(lines) {
		return SetNotationParser{}
	}
	return PlainParser{}
}
