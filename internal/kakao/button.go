package kakao

// ButtonAction is what a button does when tapped.
type ButtonAction string

const (
	ButtonWebLink  ButtonAction = "webLink"  // open WebLinkURL
	ButtonMessage  ButtonAction = "message"  // send MessageText as the user's utterance
	ButtonPhone    ButtonAction = "phone"    // dial PhoneNumber
	ButtonBlock    ButtonAction = "block"    // call the block BlockID
	ButtonShare    ButtonAction = "share"    // share the bubble
	ButtonOperator ButtonAction = "operator" // hand over to a human operator
)

var buttonActions = map[ButtonAction]bool{
	ButtonWebLink:  true,
	ButtonMessage:  true,
	ButtonPhone:    true,
	ButtonBlock:    true,
	ButtonShare:    true,
	ButtonOperator: true,
}

// Placeholders written by the SetAction* helpers so a half-built button still
// carries the field its action needs.
const (
	PlaceholderWebLinkURL  = "http://CHANGE.ME"
	PlaceholderPhoneNumber = "010-CHANGE-ME"
	PlaceholderBlockID     = "id-change-me"
)

// Button is shared by basic, commerce, list and item cards. Only the field
// matching Action is meaningful, but nothing stops a caller from setting the
// others.
//
// Label and Action are omitted while empty.
type Button struct {
	Label       string         `json:"label,omitempty"`
	Action      ButtonAction   `json:"action,omitempty"`
	WebLinkURL  *string        `json:"webLinkUrl,omitempty"`
	MessageText *string        `json:"messageText,omitempty"`
	PhoneNumber *string        `json:"phoneNumber,omitempty"`
	BlockID     *string        `json:"blockId,omitempty"`
	Extra       map[string]any `json:"extra,omitzero"`
}

// NewButton returns a button with no action. The first of SetLink, SetMsg or
// SetNumber decides the action unless one is set explicitly before.
func NewButton(label string) *Button {
	return &Button{Label: label}
}

func (b *Button) SetLabel(label string) *Button {
	b.Label = label
	return b
}

// SetLink sets WebLinkURL and, if no action is set yet, makes it a webLink button.
func (b *Button) SetLink(url string) *Button {
	if b.Action == "" {
		b.Action = ButtonWebLink
	}
	b.WebLinkURL = &url
	return b
}

// SetMsg sets MessageText and, if no action is set yet, makes it a message button.
func (b *Button) SetMsg(text string) *Button {
	if b.Action == "" {
		b.Action = ButtonMessage
	}
	b.MessageText = &text
	return b
}

// SetNumber sets PhoneNumber and, if no action is set yet, makes it a phone button.
func (b *Button) SetNumber(number string) *Button {
	if b.Action == "" {
		b.Action = ButtonPhone
	}
	b.PhoneNumber = &number
	return b
}

func (b *Button) SetBlockID(id string) *Button {
	b.BlockID = &id
	return b
}

func (b *Button) SetExtra(extra map[string]any) *Button {
	b.Extra = extra
	return b
}

// SetAction overwrites the action. Values outside the ButtonAction constants are
// rejected and leave the button untouched.
func (b *Button) SetAction(action ButtonAction) (*Button, error) {
	if !buttonActions[action] {
		return b, invalidValue("button action", string(action))
	}
	b.Action = action
	return b, nil
}

func (b *Button) SetActionWeb() *Button {
	b.Action = ButtonWebLink
	b.WebLinkURL = ptr(PlaceholderWebLinkURL)
	return b
}

func (b *Button) SetActionMsg() *Button {
	b.Action = ButtonMessage
	return b
}

func (b *Button) SetActionCall() *Button {
	b.Action = ButtonPhone
	b.PhoneNumber = ptr(PlaceholderPhoneNumber)
	return b
}

func (b *Button) SetActionBlock() *Button {
	b.Action = ButtonBlock
	b.BlockID = ptr(PlaceholderBlockID)
	return b
}

func (b *Button) SetActionShare() *Button {
	b.Action = ButtonShare
	return b
}

func (b *Button) SetActionOperator() *Button {
	b.Action = ButtonOperator
	return b
}
