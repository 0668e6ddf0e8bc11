package kakao

// Link holds per-device URLs. The platform prefers web over pc and mobile when
// both are present.
type Link struct {
	PC     *string `json:"pc,omitempty"`
	Mobile *string `json:"mobile,omitempty"`
	Web    *string `json:"web,omitempty"`
}

func NewLink() *Link { return &Link{} }

func (l *Link) SetPC(url string) *Link {
	l.PC = &url
	return l
}

func (l *Link) SetMobile(url string) *Link {
	l.Mobile = &url
	return l
}

func (l *Link) SetWeb(url string) *Link {
	l.Web = &url
	return l
}

// Thumbnail is the image block of a card. Width and height only matter when
// FixedRatio is true.
type Thumbnail struct {
	ImageURL   string `json:"imageUrl"`
	Link       *Link  `json:"link,omitempty"`
	FixedRatio *bool  `json:"fixedRatio,omitempty"`
	Width      *int   `json:"width,omitempty"`
	Height     *int   `json:"height,omitempty"`
}

func NewThumbnail(imageURL string) *Thumbnail {
	return &Thumbnail{ImageURL: imageURL}
}

func (t *Thumbnail) SetImage(url string) *Thumbnail {
	t.ImageURL = url
	return t
}

func (t *Thumbnail) SetLink(link *Link) *Thumbnail {
	t.Link = link
	return t
}

func (t *Thumbnail) SetFixedRatio(fixed bool) *Thumbnail {
	t.FixedRatio = &fixed
	return t
}

func (t *Thumbnail) SetSize(width, height int) *Thumbnail {
	t.Width = &width
	t.Height = &height
	return t
}

// ForListCard sets the image and its size in one call, the shape list card
// images use.
func (t *Thumbnail) ForListCard(url string, width, height int) *Thumbnail {
	t.ImageURL = url
	return t.SetSize(width, height)
}

// Profile is the author block of a card. Item cards reuse the same structure
// with Title, Width and Height instead of Nickname.
type Profile struct {
	Nickname *string `json:"nickname,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Width    *int    `json:"width,omitempty"`
	Height   *int    `json:"height,omitempty"`
	Title    *string `json:"title,omitempty"`
}

func NewProfile() *Profile { return &Profile{} }

func (p *Profile) SetNickname(nickname string) *Profile {
	p.Nickname = &nickname
	return p
}

func (p *Profile) SetImage(url string) *Profile {
	p.ImageURL = &url
	return p
}

// ForItemCard fills the item card variant of the profile. An empty imageURL and
// non-positive sizes are left unset.
func (p *Profile) ForItemCard(title, imageURL string, width, height int) *Profile {
	p.Title = &title
	if imageURL != "" {
		p.ImageURL = &imageURL
	}
	if width > 0 {
		p.Width = &width
	}
	if height > 0 {
		p.Height = &height
	}
	return p
}

// Social counters shown under a basic card. Not rendered by every client.
type Social struct {
	Like    *int `json:"like,omitempty"`
	Comment *int `json:"comment,omitempty"`
	Share   *int `json:"share,omitempty"`
}

func NewSocial() *Social { return &Social{} }

func (s *Social) SetLike(n int) *Social {
	s.Like = &n
	return s
}

func (s *Social) SetComment(n int) *Social {
	s.Comment = &n
	return s
}

func (s *Social) SetShare(n int) *Social {
	s.Share = &n
	return s
}

// CarouselHeader is the optional cover of a carousel. All fields are required.
type CarouselHeader struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Thumbnail   *Thumbnail `json:"thumbnail"`
}

func NewCarouselHeader(title, description string, thumbnail *Thumbnail) *CarouselHeader {
	return &CarouselHeader{Title: title, Description: description, Thumbnail: thumbnail}
}

// ContextValue opens or closes a block context for LifeSpan turns.
type ContextValue struct {
	Name     string            `json:"name"`
	LifeSpan int               `json:"lifeSpan"`
	Params   map[string]string `json:"params,omitzero"`
}

type ContextControl struct {
	Values []*ContextValue `json:"values"`
}
