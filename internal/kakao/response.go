// Package kakao builds skill responses for the Kakao i Open Builder chatbot
// platform and serializes them to the exact JSON the platform parses.
//
// Components are mutable and shared by reference: adding one *Button to two
// cards and then editing it changes both cards. Build a fresh tree per request
// and do not share a Response between goroutines.
package kakao

// Version is the only skill response schema version modeled here.
const Version = "2.0"

// Template holds what the user sees, in display order.
type Template struct {
	Outputs      []Output      `json:"outputs,omitempty"`
	QuickReplies []*QuickReply `json:"quickReplies,omitempty"`
}

// Response is the root of a skill response.
type Response struct {
	Version  string          `json:"version"`
	Template Template        `json:"template"`
	Context  *ContextControl `json:"context,omitempty"`
	Data     map[string]any  `json:"data,omitzero"`
}

func NewResponse() *Response {
	return &Response{Version: Version}
}

// Clear drops every output, quick reply, context value and data so the
// response can be reused for another reply.
func (r *Response) Clear() *Response {
	r.Template = Template{}
	r.Context = nil
	r.Data = nil
	return r
}

// AddQuickReply appends a message quick reply. Without messageText the label
// itself is sent as the utterance.
func (r *Response) AddQuickReply(label string, messageText ...string) *Response {
	text := label
	if len(messageText) > 0 {
		text = messageText[0]
	}
	return r.AppendQuickReply(NewQuickReply(QuickReplyMessage, label, text))
}

func (r *Response) AddQuickReplyAction(action QuickReplyAction, label, messageText string) *Response {
	return r.AppendQuickReply(NewQuickReply(action, label, messageText))
}

func (r *Response) AppendQuickReply(qr ...*QuickReply) *Response {
	r.Template.QuickReplies = append(r.Template.QuickReplies, qr...)
	return r
}

func (r *Response) AddSimpleText(text string) *Response {
	r.Template.Outputs = append(r.Template.Outputs, Output{kind: KindSimpleText, value: NewSimpleText(text)})
	return r
}

func (r *Response) AddSimpleImage(url, altText string) *Response {
	r.Template.Outputs = append(r.Template.Outputs, Output{kind: KindSimpleImage, value: NewSimpleImage(url, altText)})
	return r
}

// AddOutput tags c with the wrapper key of its kind and appends it. An Output
// is appended as is.
func (r *Response) AddOutput(c Component) error {
	o, err := NewOutput(c)
	if err != nil {
		return err
	}
	r.Template.Outputs = append(r.Template.Outputs, o)
	return nil
}

// AddContext appends a context value; params may be nil.
func (r *Response) AddContext(name string, lifeSpan int, params map[string]string) *Response {
	if r.Context == nil {
		r.Context = &ContextControl{}
	}
	r.Context.Values = append(r.Context.Values, &ContextValue{Name: name, LifeSpan: lifeSpan, Params: params})
	return r
}

// SetData sets the free-form data object returned to the block.
func (r *Response) SetData(data map[string]any) *Response {
	r.Data = data
	return r
}

// Init* return fresh components for chaining. They never touch r.

func (r *Response) InitButton(label string) *Button { return NewButton(label) }

func (r *Response) InitBasicCard() *BasicCard { return NewBasicCard() }

// InitCommerceCard returns an empty commerce card already in CurrencyWon.
func (r *Response) InitCommerceCard() *CommerceCard {
	return &CommerceCard{Currency: CurrencyWon}
}

func (r *Response) InitListCard() *ListCard { return NewListCard() }

func (r *Response) InitListItem(title string) *ListItem { return NewListItem(title) }

func (r *Response) InitItemCard() *ItemCard { return NewItemCard() }

func (r *Response) InitCarousel() *Carousel { return NewCarousel() }

func (r *Response) InitThumbnail(imageURL string) *Thumbnail { return NewThumbnail(imageURL) }

// JSON serializes the response as one compact line. Unset optional fields are
// omitted at every level. It does not modify r.
func (r *Response) JSON() ([]byte, error) {
	return encode(r)
}

func (r *Response) String() string {
	b, err := r.JSON()
	if err != nil {
		return "kakao: " + err.Error()
	}
	return string(b)
}
