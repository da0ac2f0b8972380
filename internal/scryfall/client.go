package scryfall

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultServerURL is the public Scryfall API root.
const DefaultServerURL = "https://api.scryfall.com"

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d", e.URL, e.StatusCode)
}

// NotFound reports whether the server answered 404.
func (e *StatusError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client issues synchronous, single-shot requests against a Scryfall
// server. There is no caching, retrying, or rate limiting.
type Client struct {
	serverURL string
	httpc     *http.Client
}

// New returns a client for the given server URL. An empty URL selects the
// public API.
func New(serverURL string) *Client {
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		httpc:     http.DefaultClient,
	}
}

// CardNamed looks up a single card by its exact name.
func (c *Client) CardNamed(name string) (*Card, error) {
	body, err := c.get("cards/named", url.Values{"exact": {name}})
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var card Card
	if err := json.NewDecoder(body).Decode(&card); err != nil {
		return nil, fmt.Errorf("failed to decode card: %w", err)
	}
	return &card, nil
}

// CardImage fetches the PNG image for one face of a card. The caller must
// close the returned stream.
func (c *Client) CardImage(id string, face Face) (io.ReadCloser, error) {
	return c.get("cards/"+id, url.Values{
		"format":  {"image"},
		"version": {"png"},
		"face":    {string(face)},
	})
}

// SearchResult holds the cards matched by a search query along with the raw
// response payload.
type SearchResult struct {
	Data []Card `json:"data"`

	raw []byte
}

// RawJSON returns the unmodified response payload of the search.
func (r *SearchResult) RawJSON() []byte {
	return r.raw
}

// ParseSearchResult decodes a raw search payload, retaining the original
// bytes for JSON output.
func ParseSearchResult(raw []byte) (*SearchResult, error) {
	result := &SearchResult{raw: raw}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return result, nil
}

// Search runs a free-text search query and returns the matched cards.
func (c *Client) Search(query string) (*SearchResult, error) {
	body, err := c.get("cards/search", url.Values{"q": {query}})
	if err != nil {
		return nil, err
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	return ParseSearchResult(raw)
}

func (c *Client) get(endpoint string, params url.Values) (io.ReadCloser, error) {
	u := fmt.Sprintf("%s/%s?%s", c.serverURL, endpoint, params.Encode())
	log.Debugf("GET %s", u)
	resp, err := c.httpc.Get(u)
	if err != nil {
		return nil, err
	}
	log.Debugf("RESPONSE %s", resp.Status)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{URL: u, StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}
