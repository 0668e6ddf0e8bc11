package kakao

type QuickReplyAction string

const (
	QuickReplyMessage QuickReplyAction = "message"
	QuickReplyBlock   QuickReplyAction = "block"
)

// QuickReply is a suggestion chip under the last bubble. Tapping it sends
// MessageText as an utterance, or calls BlockID for block replies.
type QuickReply struct {
	Action      QuickReplyAction `json:"action"`
	Label       string           `json:"label"`
	MessageText string           `json:"messageText"`
	BlockID     *string          `json:"blockId,omitempty"`
	Extra       map[string]any   `json:"extra,omitzero"`
}

func NewQuickReply(action QuickReplyAction, label, messageText string) *QuickReply {
	return &QuickReply{Action: action, Label: label, MessageText: messageText}
}

func (q *QuickReply) SetBlockID(id string) *QuickReply {
	q.BlockID = &id
	return q
}

func (q *QuickReply) SetExtra(extra map[string]any) *QuickReply {
	q.Extra = extra
	return q
}
