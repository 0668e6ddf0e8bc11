package skill

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/lojasmm/kakaoskill/internal/kakao"
	"github.com/lojasmm/kakaoskill/internal/schema"
)

// maxBodyBytes bounds a skill request; real payloads are a few kilobytes.
const maxBodyBytes = 1 << 20

// FallbackText is sent as a simpleText with status 200 when the responder fails.
const FallbackText = "죄송합니다. 요청을 처리하지 못했어요. 잠시 후 다시 시도해 주세요."

// Responder builds the reply to one skill request. It must build a fresh
// response per call; responses are not safe to share between requests.
type Responder func(ctx context.Context, req *Request) (*kakao.Response, error)

type Handler struct {
	respond   Responder
	validator *schema.Validator
	log       *log.Logger
}

// NewHandler returns the skill endpoint. validator may be nil to skip schema
// checks.
func NewHandler(respond Responder, validator *schema.Validator, logger *log.Logger) *Handler {
	return &Handler{
		respond:   respond,
		validator: validator,
		log:       logger.WithPrefix("skill"),
	}
}

// HandleSkill decodes a skill request, asks the responder for a reply and
// writes it as the JSON body.
func (h *Handler) HandleSkill(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.log.Warn("failed to decode payload", "err", err)
		http.Error(w, "invalid skill payload", http.StatusBadRequest)
		return
	}
	req.Route = chi.URLParam(r, "block")

	resp, err := h.respond(r.Context(), &req)
	if err != nil {
		h.log.Error("responder failed", "user", req.UserID(), "route", req.Route, "err", err)
		resp = kakao.NewResponse().AddSimpleText(FallbackText)
	}

	body, err := resp.JSON()
	if err != nil {
		h.log.Error("failed to serialize response", "user", req.UserID(), "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if h.validator != nil {
		if err := h.validator.Validate(body); err != nil {
			h.log.Warn("response does not match schema", "route", req.Route, "err", err)
		}
	}

	h.log.Debug("served", "user", req.UserID(), "route", req.Route, "utterance", req.UserRequest.Utterance)
	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
