package kakao

// Carousel is a swipeable row of cards of one kind. Images of all cards should
// share one aspect ratio (all 1:1 or all 2:1).
type Carousel struct {
	Type   string          `json:"type,omitempty"`
	Items  []Component     `json:"items,omitempty"`
	Header *CarouselHeader `json:"header,omitempty"`
}

func NewCarousel() *Carousel { return &Carousel{} }

func (*Carousel) Kind() Kind { return KindCarousel }

// AddCard appends card and fixes Type from the first card. Nil cards, non-card components
// and cards of a different kind than the ones already present are rejected.
// A tagged Output is unwrapped first.
func (c *Carousel) AddCard(card Component) (*Carousel, error) {
	if o, ok := card.(Output); ok {
		card = o.Component()
	}
	if isNil(card) {
		return c, unknownType("carousel card", "nil")
	}
	kind := card.Kind()
	if !cardKinds[kind] {
		return c, unknownType("carousel card", kind.String())
	}
	tag := kind.Tag()
	if c.Type != "" && c.Type != tag {
		return c, unknownType("carousel of "+c.Type, tag)
	}
	c.Type = tag
	c.Items = append(c.Items, card)
	return c, nil
}

func (c *Carousel) SetHeader(h *CarouselHeader) *Carousel {
	c.Header = h
	return c
}
