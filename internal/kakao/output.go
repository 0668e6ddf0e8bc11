package kakao

import "reflect"

// Kind is the discriminant of every component that can be an output or a
// carousel item.
type Kind int

const (
	KindSimpleText Kind = iota + 1
	KindSimpleImage
	KindBasicCard
	KindCommerceCard
	KindListCard
	KindItemCard
	KindCarousel
)

// outputTags maps each kind to the single key wrapping it in template.outputs.
// A new output type needs one entry here and a Kind method.
var outputTags = map[Kind]string{
	KindSimpleText:   "simpleText",
	KindSimpleImage:  "simpleImage",
	KindBasicCard:    "basicCard",
	KindCommerceCard: "commerceCard",
	KindListCard:     "listCard",
	KindItemCard:     "itemCard",
	KindCarousel:     "carousel",
}

// cardKinds are the kinds a carousel may hold.
var cardKinds = map[Kind]bool{
	KindBasicCard:    true,
	KindCommerceCard: true,
	KindListCard:     true,
	KindItemCard:     true,
}

// Tag returns the wrapper key of k, or "" for an unknown kind.
func (k Kind) Tag() string {
	return outputTags[k]
}

func (k Kind) String() string {
	if tag, ok := outputTags[k]; ok {
		return tag
	}
	return "unknown"
}

// Component is anything that can be placed in template.outputs.
type Component interface {
	Kind() Kind
}

// Output is a component tagged with its wrapper key. It serializes as
// {"<tag>": <component>}.
type Output struct {
	kind  Kind
	value Component
}

// NewOutput tags c. Nil components and components of an unknown kind are
// rejected. An Output is passed through after the same checks.
func NewOutput(c Component) (Output, error) {
	if o, ok := c.(Output); ok {
		if _, known := outputTags[o.kind]; !known || isNil(o.value) {
			return Output{}, unknownType("output", o.kind.String())
		}
		return o, nil
	}
	if isNil(c) {
		return Output{}, unknownType("output", "nil")
	}
	kind := c.Kind()
	if _, ok := outputTags[kind]; !ok {
		return Output{}, unknownType("output", kind.String())
	}
	return Output{kind: kind, value: c}, nil
}

// isNil reports whether c is nil or a nil pointer behind the interface.
func isNil(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (o Output) Kind() Kind { return o.kind }

// Component returns the wrapped component.
func (o Output) Component() Component { return o.value }

func (o Output) MarshalJSON() ([]byte, error) {
	tag, ok := outputTags[o.kind]
	if !ok || o.value == nil {
		return nil, unknownType("output", o.kind.String())
	}
	body, err := encode(o.value)
	if err != nil {
		return nil, err
	}
	return wrap(tag, body), nil
}

// SimpleText is shortened by the client after 500 characters, with a button to
// expand it.
type SimpleText struct {
	Text string `json:"text"`
}

func NewSimpleText(text string) *SimpleText { return &SimpleText{Text: text} }

func (*SimpleText) Kind() Kind { return KindSimpleText }

type SimpleImage struct {
	ImageURL string `json:"imageUrl"`
	AltText  string `json:"altText"`
}

func NewSimpleImage(imageURL, altText string) *SimpleImage {
	return &SimpleImage{ImageURL: imageURL, AltText: altText}
}

func (*SimpleImage) Kind() Kind { return KindSimpleImage }
