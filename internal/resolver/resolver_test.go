package resolver

import (
	"fmt"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaforge/scry/internal/scryfall"
)

// fakeClient resolves every name except those listed in missing.
type fakeClient struct {
	missing map[string]bool
}

func (f *fakeClient) CardNamed(name string) (*scryfall.Card, error) {
	if f.missing[name] {
		return nil, &scryfall.StatusError{URL: "http://example.com/cards/named", StatusCode: 404}
	}
	return &scryfall.Card{ID: "id-" + name, Name: name}, nil
}

func TestResolveSkipsFailedLookups(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	client := &fakeClient{missing: map[string]bool{"NotACard123": true}}
	names := []string{"Lightning Bolt", "NotACard123", "Black Lotus"}

	cards := Cards(Resolve(client, names))

	require.Len(t, cards, 2)
	assert.Equal(t, "Lightning Bolt", cards[0].Name)
	assert.Equal(t, "Black Lotus", cards[1].Name)

	var failures int
	for _, entry := range hook.AllEntries() {
		if entry.Level == log.ErrorLevel {
			failures++
			assert.Contains(t, entry.Message, "NotACard123")
		}
	}
	assert.Equal(t, 1, failures)
}

func TestResolveRecordsEveryOutcome(t *testing.T) {
	client := &fakeClient{missing: map[string]bool{"gone": true}}
	resolutions := Resolve(client, []string{"a", "gone", "b"})

	require.Len(t, resolutions, 3)
	assert.NoError(t, resolutions[0].Err)
	assert.Error(t, resolutions[1].Err)
	assert.Equal(t, "gone", resolutions[1].Name)
	assert.Nil(t, resolutions[1].Card)
	assert.Equal(t, "b", resolutions[2].Card.Name)
}

func TestResolveEmptyInput(t *testing.T) {
	cards := Cards(Resolve(&fakeClient{}, nil))
	assert.Empty(t, cards)
}

func TestResolveCardsLogsCount(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	client := &fakeClient{missing: map[string]bool{"x": true}}
	cards := ResolveCards(client, []string{"a", "x", "b", "c"})

	assert.Len(t, cards, 3)
	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, log.InfoLevel, last.Level)
	assert.Equal(t, fmt.Sprintf("Found %d cards.", 3), last.Message)
}
