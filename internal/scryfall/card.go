package scryfall

// Card is a single card record as returned by the API. It is only ever
// constructed by decoding a successful response.
type Card struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Set             string     `json:"set"`
	SetName         string     `json:"set_name"`
	CollectorNumber string     `json:"collector_number"`
	CardFaces       []CardFace `json:"card_faces,omitempty"`
}

// CardFace is one printed side of a card.
type CardFace struct {
	Name string `json:"name"`
}

// IsDoubleFaced reports whether the card has more than one printed face.
func (c *Card) IsDoubleFaced() bool {
	return len(c.CardFaces) > 1
}

// Face selects which side of a card an image request targets.
type Face string

const (
	FaceFront Face = "front"
	FaceBack  Face = "back"
)

// Faces returns the faces to fetch for this card: the front, plus the back
// for double-faced cards.
func (c *Card) Faces() []Face {
	if c.IsDoubleFaced() {
		return []Face{FaceFront, FaceBack}
	}
	return []Face{FaceFront}
}
