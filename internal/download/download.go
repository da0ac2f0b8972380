// Package download writes card artwork to disk, one PNG per card face.
package download

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/manaforge/scry/internal/scryfall"
)

// Client is the image-fetch surface the downloader needs.
type Client interface {
	CardImage(id string, face scryfall.Face) (io.ReadCloser, error)
}

// Downloader streams card images into OutputDir. In dry-run mode it only
// reports what it would download.
type Downloader struct {
	Client    Client
	OutputDir string
	DryRun    bool
}

// Run downloads artwork for every card in order. The output directory is
// created up front; failure to create it or to write a file is fatal, while
// a failed image fetch only skips the affected card.
func (d *Downloader) Run(cards []scryfall.Card) error {
	if err := os.MkdirAll(d.OutputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory %s: %w", d.OutputDir, err)
	}
	for _, card := range cards {
		if d.DryRun {
			fmt.Printf("%s: Downloading %s\n", color.GreenString("DRYRUN"), card.Name)
			continue
		}
		if err := d.download(card); err != nil {
			return err
		}
	}
	return nil
}

// download fetches every face of one card. A fetch failure is logged and
// abandons the card's remaining faces; only filesystem errors propagate.
func (d *Downloader) download(card scryfall.Card) error {
	for _, face := range card.Faces() {
		body, err := d.Client.CardImage(card.ID, face)
		if err != nil {
			log.Errorf("Failed to fetch image for %q: %v", card.Name, err)
			return nil
		}
		filename := filepath.Join(d.OutputDir, FaceFilename(card.Name, face))
		if err := save(filename, body); err != nil {
			return err
		}
	}
	return nil
}

// save streams body into filename, truncating any leftover file from a
// prior run. The handle is closed before the next artifact is started.
func save(filename string, body io.ReadCloser) error {
	defer body.Close()

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", filename, err)
	}
	defer f.Close()

	log.Infof("Saving %q", filename)
	if _, err := io.Copy(f, body); err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}
	return nil
}

// FaceFilename returns the artifact name for one face of a card.
func FaceFilename(cardName string, face scryfall.Face) string {
	if face == scryfall.FaceBack {
		return Slugify(cardName) + "_back.png"
	}
	return Slugify(cardName) + ".png"
}
