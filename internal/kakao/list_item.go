package kakao

type ListItemAction string

const (
	ListItemMessage ListItemAction = "message"
	ListItemBlock   ListItemAction = "block"
)

// ListItem is a row of a list card, and also its header.
type ListItem struct {
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	ImageURL    *string        `json:"imageUrl,omitempty"`
	Link        *Link          `json:"link,omitempty"`
	Action      ListItemAction `json:"action,omitempty"`
	BlockID     *string        `json:"blockId,omitempty"`
	MessageText *string        `json:"messageText,omitempty"`
	Extra       map[string]any `json:"extra,omitzero"`
}

// NewListItem sets only the title; unlike SetTitle it does not infer an action,
// which keeps list card headers action-free.
func NewListItem(title string) *ListItem {
	return &ListItem{Title: title}
}

// SetAction rejects anything but message and block.
func (i *ListItem) SetAction(action ListItemAction) (*ListItem, error) {
	if action != ListItemMessage && action != ListItemBlock {
		return i, invalidValue("list item action", string(action))
	}
	i.Action = action
	return i, nil
}

func (i *ListItem) SetActionMessage() *ListItem {
	i.Action = ListItemMessage
	return i
}

func (i *ListItem) SetActionBlock() *ListItem {
	i.Action = ListItemBlock
	return i
}

// SetTitle, SetDesc and SetMsg default the action to message when none is set.

func (i *ListItem) SetTitle(title string) *ListItem {
	i.defaultAction()
	i.Title = title
	return i
}

func (i *ListItem) SetDesc(desc string) *ListItem {
	i.defaultAction()
	i.Description = &desc
	return i
}

func (i *ListItem) SetMsg(text string) *ListItem {
	i.defaultAction()
	i.MessageText = &text
	return i
}

func (i *ListItem) SetImage(url string) *ListItem {
	i.ImageURL = &url
	return i
}

func (i *ListItem) SetBlockID(id string) *ListItem {
	i.BlockID = &id
	return i
}

func (i *ListItem) SetExtra(extra map[string]any) *ListItem {
	i.Extra = extra
	return i
}

// SetLink sets the web URL, creating the link if needed. Web wins over pc and
// mobile on every device.
func (i *ListItem) SetLink(url string) *ListItem {
	i.link().SetWeb(url)
	return i
}

func (i *ListItem) SetLinkPC(url string) *ListItem {
	i.link().SetPC(url)
	return i
}

func (i *ListItem) SetLinkMobile(url string) *ListItem {
	i.link().SetMobile(url)
	return i
}

func (i *ListItem) link() *Link {
	if i.Link == nil {
		i.Link = NewLink()
	}
	return i.Link
}

func (i *ListItem) defaultAction() {
	if i.Action == "" {
		i.Action = ListItemMessage
	}
}
