// Package resolver turns raw card names into Card records, one exact
// lookup per name. Failed lookups are recorded, not raised, so a single
// bad name never aborts the batch.
package resolver

import (
	log "github.com/sirupsen/logrus"

	"github.com/manaforge/scry/internal/scryfall"
)

// Client is the lookup surface the resolver needs.
type Client interface {
	CardNamed(name string) (*scryfall.Card, error)
}

// Resolution is the outcome of one exact-name lookup: either a card or the
// reason the name could not be resolved.
type Resolution struct {
	Name string
	Card *scryfall.Card
	Err  error
}

// Resolve looks up every name in order and records each outcome.
func Resolve(client Client, names []string) []Resolution {
	resolutions := make([]Resolution, 0, len(names))
	for _, name := range names {
		card, err := client.CardNamed(name)
		if err != nil {
			log.Errorf("Card not found: %s", name)
			resolutions = append(resolutions, Resolution{Name: name, Err: err})
			continue
		}
		resolutions = append(resolutions, Resolution{Name: name, Card: card})
	}
	return resolutions
}

// Cards filters resolutions down to the successfully resolved cards,
// preserving input order.
func Cards(resolutions []Resolution) []scryfall.Card {
	cards := make([]scryfall.Card, 0, len(resolutions))
	for _, r := range resolutions {
		if r.Err != nil {
			continue
		}
		cards = append(cards, *r.Card)
	}
	return cards
}

// ResolveCards resolves the names and returns the cards that were found.
func ResolveCards(client Client, names []string) []scryfall.Card {
	cards := Cards(Resolve(client, names))
	log.Infof("Found %d cards.", len(cards))
	return cards
}
