package skill

// --- Incoming skill request ---
// Reference: https://kakaobusiness.gitbook.io/main/tool/chatbot/skill_guide/answer_json_format

type Request struct {
	Intent      Intent      `json:"intent"`
	UserRequest UserRequest `json:"userRequest"`
	Bot         Bot         `json:"bot"`
	Action      Action      `json:"action"`

	// Route is the {block} path segment the request arrived on, if any.
	Route string `json:"-"`
}

type Intent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserRequest struct {
	Timezone  string            `json:"timezone"`
	Params    map[string]string `json:"params,omitempty"`
	Block     Block             `json:"block"`
	Utterance string            `json:"utterance"`
	Lang      *string           `json:"lang,omitempty"`
	User      User              `json:"user"`
}

type Block struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties,omitempty"`
}

type Bot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Action struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Params       map[string]any         `json:"params,omitempty"`
	DetailParams map[string]DetailParam `json:"detailParams,omitempty"`
	ClientExtra  map[string]any         `json:"clientExtra,omitempty"`
}

// DetailParam is the resolved entity behind an action parameter.
type DetailParam struct {
	Origin    string `json:"origin"`
	Value     string `json:"value"`
	GroupName string `json:"groupName"`
}

// UserID is the bot-scoped user key, falling back to the plusfriend key in
// properties when the platform leaves ID empty.
func (r *Request) UserID() string {
	if r.UserRequest.User.ID != "" {
		return r.UserRequest.User.ID
	}
	return r.UserRequest.User.Properties["plusfriendUserKey"]
}

// Param returns action parameter key as a string, or "" when absent.
func (r *Request) Param(key string) string {
	if dp, ok := r.Action.DetailParams[key]; ok && dp.Value != "" {
		return dp.Value
	}
	if v, ok := r.Action.Params[key].(string); ok {
		return v
	}
	return ""
}
