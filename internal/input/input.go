// Package input supplies the raw card-name sequence for one invocation:
// positional arguments, an input file, or stdin, in that priority order.
package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// CardNames returns the card names for one invocation. Positional args win
// over the input file, which wins over stdin.
func CardNames(args []string, inputPath string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if inputPath != "" {
		return fromFile(inputPath)
	}
	return fromStdin()
}

func fromFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}
	parser := ParserFor(content)
	log.Debugf("Using parser %T", parser)
	return parser.ParseCards(bytes.NewReader(content))
}

func fromStdin() ([]string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		log.Info("Reading card names from stdin, one per line (EOF to finish).")
	}
	return readLines(os.Stdin)
}

// readLines collects non-blank, whitespace-trimmed lines.
func readLines(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
