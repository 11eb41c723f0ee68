// internal/handler/message.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/joao-vitor-prudente/personia/internal/middleware"
	"github.com/joao-vitor-prudente/personia/internal/repository"
	"github.com/joao-vitor-prudente/personia/internal/service"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type SendMessageResponse struct {
	BaseResponse
	WorkflowID string `json:"workflow_id"`
}

// Send enqueues one turn. A 409 means the previous turn still has pending
// replies; the caller should wait and retry.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	experimentID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid experiment id")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	workflowID, err := h.messageService.Send(r.Context(), identity, service.SendMessageInput{
		ExperimentID: experimentID,
		Content:      req.Content,
	})
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, SendMessageResponse{
		BaseResponse: BaseResponse{Ok: true},
		WorkflowID:   workflowID,
	})
}

// List serves the reverse-chronological message feed with reply authors
// resolved.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFrom(r.Context())
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	experimentID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid experiment id")
		return
	}

	opts := repository.PaginationOpts{Cursor: r.URL.Query().Get("cursor")}
	if raw := r.URL.Query().Get("num_items"); raw != "" {
		numItems, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid num_items")
			return
		}
		opts.NumItems = numItems
	}

	feed, err := h.messageService.List(r.Context(), identity, experimentID, opts)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, feed)
}
