package kakao

// Documented client limits (not enforced here; the platform validates them):
// commerce card 1-3 buttons, list card 5 items and 2 buttons, item card 10
// itemList entries and 3 buttons.

// BasicCard is a thumbnail with title, description and buttons.
type BasicCard struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Thumbnail   *Thumbnail `json:"thumbnail,omitempty"`
	Profile     *Profile   `json:"profile,omitempty"`
	Social      *Social    `json:"social,omitempty"`
	Buttons     []*Button  `json:"buttons,omitempty"`
	Forwardable *bool      `json:"forwardable,omitempty"`
}

func NewBasicCard() *BasicCard { return &BasicCard{} }

func (*BasicCard) Kind() Kind { return KindBasicCard }

func (c *BasicCard) SetTitle(title string) *BasicCard {
	c.Title = &title
	return c
}

func (c *BasicCard) SetDesc(desc string) *BasicCard {
	c.Description = &desc
	return c
}

// SetImage replaces the thumbnail with a bare one pointing at url.
func (c *BasicCard) SetImage(url string) *BasicCard {
	c.Thumbnail = NewThumbnail(url)
	return c
}

func (c *BasicCard) SetThumbnail(t *Thumbnail) *BasicCard {
	c.Thumbnail = t
	return c
}

func (c *BasicCard) SetProfile(p *Profile) *BasicCard {
	c.Profile = p
	return c
}

func (c *BasicCard) SetSocial(s *Social) *BasicCard {
	c.Social = s
	return c
}

// SetForwardable shows the forward icon on the bubble.
func (c *BasicCard) SetForwardable(forwardable bool) *BasicCard {
	c.Forwardable = &forwardable
	return c
}

// AddButton appends b as is; the card keeps a reference, it does not copy.
func (c *BasicCard) AddButton(b *Button) *BasicCard {
	c.Buttons = append(c.Buttons, b)
	return c
}

// CurrencyWon is the only currency the platform accepts.
const CurrencyWon = "won"

// CommerceCard shows a product. When several discount fields are set the client
// displays DiscountedPrice first, then DiscountRate, then Discount.
type CommerceCard struct {
	Description     string       `json:"description"`
	Price           int          `json:"price"`
	Currency        string       `json:"currency"`
	Discount        *int         `json:"discount,omitempty"`
	DiscountRate    *int         `json:"discountRate,omitempty"`
	DiscountedPrice *int         `json:"discountedPrice,omitempty"`
	Thumbnails      []*Thumbnail `json:"thumbnails,omitempty"`
	Profile         *Profile     `json:"profile,omitempty"`
	Buttons         []*Button    `json:"buttons,omitempty"`
}

// NewCommerceCard fails unless currency is CurrencyWon.
func NewCommerceCard(description string, price int, currency string) (*CommerceCard, error) {
	c := &CommerceCard{Description: description, Price: price}
	if _, err := c.SetCurrency(currency); err != nil {
		return nil, err
	}
	return c, nil
}

func (*CommerceCard) Kind() Kind { return KindCommerceCard }

func (c *CommerceCard) SetDesc(desc string) *CommerceCard {
	c.Description = desc
	return c
}

func (c *CommerceCard) SetPrice(price int) *CommerceCard {
	c.Price = price
	return c
}

// SetCurrency rejects anything but CurrencyWon and leaves the card unchanged.
func (c *CommerceCard) SetCurrency(currency string) (*CommerceCard, error) {
	if currency != CurrencyWon {
		return c, invalidValue("currency", currency)
	}
	c.Currency = currency
	return c, nil
}

func (c *CommerceCard) SetDiscount(discount int) *CommerceCard {
	c.Discount = &discount
	return c
}

func (c *CommerceCard) SetDiscountRate(rate int) *CommerceCard {
	c.DiscountRate = &rate
	return c
}

func (c *CommerceCard) SetDiscountedPrice(price int) *CommerceCard {
	c.DiscountedPrice = &price
	return c
}

// AddThumbnail appends to Thumbnails. The client renders only the first one.
func (c *CommerceCard) AddThumbnail(t *Thumbnail) *CommerceCard {
	c.Thumbnails = append(c.Thumbnails, t)
	return c
}

func (c *CommerceCard) SetProfile(p *Profile) *CommerceCard {
	c.Profile = p
	return c
}

func (c *CommerceCard) AddButton(b *Button) *CommerceCard {
	c.Buttons = append(c.Buttons, b)
	return c
}

type ListCard struct {
	Header  *ListItem   `json:"header,omitempty"`
	Items   []*ListItem `json:"items,omitempty"`
	Buttons []*Button   `json:"buttons,omitempty"`
}

func NewListCard() *ListCard { return &ListCard{} }

func (*ListCard) Kind() Kind { return KindListCard }

// SetHeader replaces the header with a title-only list item.
func (c *ListCard) SetHeader(title string) *ListCard {
	c.Header = NewListItem(title)
	return c
}

func (c *ListCard) AddItem(item *ListItem, more ...*ListItem) *ListCard {
	c.Items = append(c.Items, item)
	c.Items = append(c.Items, more...)
	return c
}

func (c *ListCard) AddButton(b *Button) *ListCard {
	c.Buttons = append(c.Buttons, b)
	return c
}

type Alignment string

const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"
)

type ButtonLayout string

const (
	LayoutVertical   ButtonLayout = "vertical"
	LayoutHorizontal ButtonLayout = "horizontal"
)

type ItemListEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ItemListSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Head struct {
	Title string `json:"title"`
}

type ImageTitle struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// ItemCard is a receipt-like card of title/description rows. Build it with
// NewItemCard or Response.InitItemCard: the platform requires itemList, and a
// bare &ItemCard{} serializes it as null.
type ItemCard struct {
	ItemList          []ItemListEntry  `json:"itemList"`
	Thumbnail         *Thumbnail       `json:"thumbnail,omitempty"`
	Head              *Head            `json:"head,omitempty"`
	Profile           *Profile         `json:"profile,omitempty"`
	ImageTitle        *ImageTitle      `json:"imageTitle,omitempty"`
	ItemListAlignment Alignment        `json:"itemListAlignment,omitempty"`
	ItemListSummary   *ItemListSummary `json:"itemListSummary,omitempty"`
	Title             *string          `json:"title,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Buttons           []*Button        `json:"buttons,omitempty"`
	ButtonLayout      ButtonLayout     `json:"buttonLayout,omitempty"`
}

// NewItemCard starts with an empty, non-nil itemList so the required key is
// always present.
func NewItemCard() *ItemCard {
	return &ItemCard{ItemList: []ItemListEntry{}}
}

func (*ItemCard) Kind() Kind { return KindItemCard }

func (c *ItemCard) AddItem(title, description string) *ItemCard {
	c.ItemList = append(c.ItemList, ItemListEntry{Title: title, Description: description})
	return c
}

func (c *ItemCard) SetThumbnail(t *Thumbnail) *ItemCard {
	c.Thumbnail = t
	return c
}

func (c *ItemCard) SetHead(title string) *ItemCard {
	c.Head = &Head{Title: title}
	return c
}

func (c *ItemCard) SetProfile(p *Profile) *ItemCard {
	c.Profile = p
	return c
}

func (c *ItemCard) SetImageTitle(it *ImageTitle) *ItemCard {
	c.ImageTitle = it
	return c
}

func (c *ItemCard) SetItemListAlignment(a Alignment) *ItemCard {
	c.ItemListAlignment = a
	return c
}

func (c *ItemCard) SetItemListSummary(title, description string) *ItemCard {
	c.ItemListSummary = &ItemListSummary{Title: title, Description: description}
	return c
}

func (c *ItemCard) SetTitle(title string) *ItemCard {
	c.Title = &title
	return c
}

func (c *ItemCard) SetDesc(desc string) *ItemCard {
	c.Description = &desc
	return c
}

func (c *ItemCard) AddButton(b *Button) *ItemCard {
	c.Buttons = append(c.Buttons, b)
	return c
}

func (c *ItemCard) SetButtonLayout(l ButtonLayout) *ItemCard {
	c.ButtonLayout = l
	return c
}
