// Package listing renders the results of a card search as plain text or
// JSON, to stdout or a file.
package listing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/manaforge/scry/internal/scryfall"
)

// ErrEmptyQuery is returned when list mode is invoked without any card name
// tokens to build a query from.
var ErrEmptyQuery = errors.New("no query provided for listing cards")

// Options selects the output format and destination.
type Options struct {
	JSON      bool
	WithBlock bool
	WithCN    bool
	WithSet   bool

	// Output is printed to stdout when it names an existing directory,
	// otherwise the rendered text is written to that path.
	Output string
}

// Client is the search surface the lister needs.
type Client interface {
	Search(query string) (*scryfall.SearchResult, error)
}

// List joins the name tokens into one search query, runs it, and renders
// the result set.
func List(client Client, names []string, opts Options) error {
	query := strings.Join(names, " ")
	if query == "" {
		return ErrEmptyQuery
	}

	result, err := client.Search(query)
	if err != nil {
		return err
	}
	log.Infof("Found %d cards.", len(result.Data))

	output, err := Render(result, opts)
	if err != nil {
		return err
	}
	return write(output, opts.Output)
}

// Render produces the full output text for a result set.
func Render(result *scryfall.SearchResult, opts Options) (string, error) {
	if opts.JSON {
		var buf bytes.Buffer
		if err := json.Indent(&buf, result.RawJSON(), "", "  "); err != nil {
			return "", fmt.Errorf("failed to format search response: %w", err)
		}
		return buf.String(), nil
	}

	lines := make([]string, 0, len(result.Data))
	for _, card := range result.Data {
		lines = append(lines, Line(card, opts))
	}
	return strings.Join(lines, "\n"), nil
}

// Line renders one card. Field order is fixed as
// "Name (SetCode) CollectorNumber SetName"; trailing fields are dropped
// when their flag is unset.
func Line(card scryfall.Card, opts Options) string {
	switch {
	case opts.WithBlock && opts.WithCN && opts.WithSet:
		return fmt.Sprintf("%s (%s) %s %s", card.Name, card.Set, card.CollectorNumber, card.SetName)
	case opts.WithBlock && opts.WithCN:
		return fmt.Sprintf("%s (%s) %s", card.Name, card.Set, card.CollectorNumber)
	case opts.WithBlock:
		return fmt.Sprintf("%s (%s)", card.Name, card.Set)
	default:
		return card.Name
	}
}

// write prints the output to stdout unless path names something other than
// an existing directory, in which case the text is written there verbatim.
func write(output, path string) error {
	if path != "" {
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			if err := os.WriteFile(path, []byte(output), 0644); err != nil {
				return fmt.Errorf("error writing results to %s: %w", path, err)
			}
			log.Infof("Results saved to %s", path)
			return nil
		}
	}
	fmt.Println(output)
	return nil
}
