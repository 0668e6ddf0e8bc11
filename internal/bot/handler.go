package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lojasmm/kakaoskill/internal/kakao"
	"github.com/lojasmm/kakaoskill/internal/session"
	"github.com/lojasmm/kakaoskill/internal/skill"
	"github.com/lojasmm/kakaoskill/internal/store"
)

var ErrNoUser = errors.New("bot: request has no user id")

type Handler struct {
	store    store.Store
	sessions *session.Manager
	log      *log.Logger
}

func NewHandler(s store.Store, sessions *session.Manager, logger *log.Logger) *Handler {
	return &Handler{store: s, sessions: sessions, log: logger.WithPrefix("bot")}
}

// Respond implements skill.Responder. It builds the reply for the route and
// records the turn, holding the user's lock so history reads and writes of one
// user never interleave.
func (h *Handler) Respond(ctx context.Context, req *skill.Request) (*kakao.Response, error) {
	userID := req.UserID()
	if userID == "" {
		return nil, ErrNoUser
	}

	var resp *kakao.Response
	err := h.sessions.WithLock(userID, func() error {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		resp, err = h.reply(userID, req)
		if err != nil {
			return err
		}

		body, err := resp.JSON()
		if err != nil {
			return fmt.Errorf("serializing reply: %w", err)
		}
		_, err = h.store.AppendTurn(userID, store.Turn{
			BlockID:   req.UserRequest.Block.ID,
			Action:    req.Action.Name,
			Utterance: req.UserRequest.Utterance,
			Response:  body,
		})
		if err != nil {
			// the reply is still worth sending
			h.log.Warn("failed to record turn", "user", userID, "err", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (h *Handler) reply(userID string, req *skill.Request) (*kakao.Response, error) {
	switch route(req) {
	case "list":
		return listReply()
	case "carousel":
		size, _ := strconv.Atoi(req.Param("count"))
		return carouselReply(size)
	case "commerce":
		return commerceReply()
	case "receipt":
		return receiptReply()
	case "image":
		return imageReply()
	case "history":
		turns, err := h.store.GetHistory(userID)
		if err != nil {
			return nil, fmt.Errorf("reading history: %w", err)
		}
		return historyReply(turns)
	default:
		return helpReply()
	}
}

// keywords maps utterance prefixes to routes when no block route is given.
var keywords = []struct {
	prefix string
	route  string
}{
	{"리스트", "list"},
	{"캐러셀", "carousel"},
	{"상품", "commerce"},
	{"영수증", "receipt"},
	{"이미지", "image"},
	{"최근", "history"},
}

func route(req *skill.Request) string {
	if req.Route != "" {
		return req.Route
	}
	if req.Action.Name != "" && req.Action.Name != "fallback" {
		return req.Action.Name
	}

	utterance := strings.TrimSpace(req.UserRequest.Utterance)
	for _, kw := range keywords {
		if strings.HasPrefix(utterance, kw.prefix) {
			return kw.route
		}
	}
	return strings.ToLower(utterance)
}
